package models

import (
	"context"
	"fmt"

	"github.com/robalyx/warden/internal/database/dbretry"
	"github.com/robalyx/warden/internal/database/types"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// EscalationModel handles database operations for the escalation ledgers.
type EscalationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewEscalation creates a new EscalationModel instance.
func NewEscalation(db *bun.DB, logger *zap.Logger) *EscalationModel {
	return &EscalationModel{
		db:     db,
		logger: logger.Named("db_escalation"),
	}
}

// Append inserts a record and returns the size of its ledger afterwards.
// The insert and the count run in one transaction so concurrent appends
// for the same identity each see their own position.
func (m *EscalationModel) Append(ctx context.Context, record *types.EscalationRecord) (int, error) {
	var count int

	err := dbretry.Transaction(ctx, m.db, func(ctx context.Context, tx bun.Tx) error {
		// Serialize appends to the same ledger
		_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(?, hashtext(?))",
			int(record.Kind), record.Identity)
		if err != nil {
			return fmt.Errorf("failed to lock ledger: %w", err)
		}

		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert escalation record: %w", err)
		}

		count, err = tx.NewSelect().
			Model((*types.EscalationRecord)(nil)).
			Where("kind = ?", record.Kind).
			Where("identity = ?", record.Identity).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count escalation records: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	m.logger.Debug("Appended escalation record",
		zap.String("kind", record.Kind.String()),
		zap.String("identity", record.Identity),
		zap.Int("count", count))

	return count, nil
}

// List returns a ledger in insertion order.
func (m *EscalationModel) List(
	ctx context.Context, kind enum.HistoryKind, identity string,
) ([]*types.EscalationRecord, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.EscalationRecord, error) {
		var records []*types.EscalationRecord

		err := m.db.NewSelect().
			Model(&records).
			Where("kind = ?", kind).
			Where("identity = ?", identity).
			Order("id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list escalation records: %w", err)
		}

		return records, nil
	})
}
