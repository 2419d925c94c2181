// Package history keeps the append-only ledgers used to escalate repeat
// offenders: false reports per reporting user and confirmed violations per
// reported user.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"go.uber.org/zap"
)

// EscalationThreshold is the ledger size above which consequences escalate.
const EscalationThreshold = 2

// Entry is one recorded decision in a ledger.
type Entry struct {
	ReportID   uuid.UUID
	User       report.User
	Severity   enum.Severity
	RecordedAt time.Time
}

// Store persists ledgers. Append must be atomic per ledger and return the
// ledger size including the new entry.
type Store interface {
	Append(ctx context.Context, kind enum.HistoryKind, key string, entry *Entry) (int, error)
	List(ctx context.Context, kind enum.HistoryKind, key string) ([]*Entry, error)
}

// History records escalation-relevant decisions.
type History struct {
	store  Store
	logger *zap.Logger
}

// New creates a History over the given store.
func New(store Store, logger *zap.Logger) *History {
	return &History{
		store:  store,
		logger: logger.Named("history"),
	}
}

// Escalates reports whether a ledger size crosses the escalation threshold.
func Escalates(count int) bool {
	return count > EscalationThreshold
}

// RecordFalseReport appends the report to its reporter's false-report ledger
// and returns the ledger size afterwards.
func (h *History) RecordFalseReport(ctx context.Context, r *report.Report) (int, error) {
	return h.record(ctx, enum.HistoryKindFalseReport, r.Reporter, r)
}

// RecordViolation appends the report to the reported user's violation ledger
// and returns the ledger size afterwards.
func (h *History) RecordViolation(ctx context.Context, r *report.Report) (int, error) {
	return h.record(ctx, enum.HistoryKindViolation, r.Reported, r)
}

// FalseReports returns the false reports filed by a user.
func (h *History) FalseReports(ctx context.Context, user report.User) ([]*Entry, error) {
	return h.store.List(ctx, enum.HistoryKindFalseReport, user.Key())
}

// Violations returns the confirmed violations of a user.
func (h *History) Violations(ctx context.Context, user report.User) ([]*Entry, error) {
	return h.store.List(ctx, enum.HistoryKindViolation, user.Key())
}

func (h *History) record(
	ctx context.Context, kind enum.HistoryKind, user report.User, r *report.Report,
) (int, error) {
	var severity enum.Severity
	if r.Severity != nil {
		severity = *r.Severity
	}

	count, err := h.store.Append(ctx, kind, user.Key(), &Entry{
		ReportID:   r.ID,
		User:       user,
		Severity:   severity,
		RecordedAt: time.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record %s for %s: %w", kind, user.Key(), err)
	}

	h.logger.Info("Recorded escalation entry",
		zap.String("kind", kind.String()),
		zap.String("user", user.Key()),
		zap.String("reportID", r.ID.String()),
		zap.Int("count", count))

	return count, nil
}
