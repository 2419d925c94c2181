package history

import (
	"context"

	"github.com/robalyx/warden/internal/database/models"
	"github.com/robalyx/warden/internal/database/types"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
)

// PostgresStore keeps ledgers in the escalation_records table.
type PostgresStore struct {
	model *models.EscalationModel
}

// NewPostgresStore creates a store over the escalation model.
func NewPostgresStore(model *models.EscalationModel) *PostgresStore {
	return &PostgresStore{model: model}
}

func (s *PostgresStore) Append(ctx context.Context, kind enum.HistoryKind, key string, entry *Entry) (int, error) {
	return s.model.Append(ctx, &types.EscalationRecord{
		Kind:       kind,
		Identity:   key,
		UserID:     entry.User.ID,
		UserName:   entry.User.Name,
		ReportID:   entry.ReportID,
		Severity:   entry.Severity,
		RecordedAt: entry.RecordedAt,
	})
}

func (s *PostgresStore) List(ctx context.Context, kind enum.HistoryKind, key string) ([]*Entry, error) {
	records, err := s.model.List(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &Entry{
			ReportID:   record.ReportID,
			User:       report.User{ID: record.UserID, Name: record.UserName},
			Severity:   record.Severity,
			RecordedAt: record.RecordedAt,
		})
	}

	return entries, nil
}
