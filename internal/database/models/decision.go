package models

import (
	"context"
	"fmt"

	"github.com/robalyx/warden/internal/database/dbretry"
	"github.com/robalyx/warden/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// DecisionModel handles database operations for the moderation audit log.
type DecisionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewDecision creates a new DecisionModel instance.
func NewDecision(db *bun.DB, logger *zap.Logger) *DecisionModel {
	return &DecisionModel{
		db:     db,
		logger: logger.Named("db_decision"),
	}
}

// Record stores the outcome of a reviewed report.
func (m *DecisionModel) Record(ctx context.Context, decision *types.ModerationDecision) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(decision).
			On("CONFLICT (report_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to record decision: %w", err)
		}

		return nil
	})
}

// GetByReported returns the most recent decisions about a reported user.
func (m *DecisionModel) GetByReported(
	ctx context.Context, reportedID uint64, limit int,
) ([]*types.ModerationDecision, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ModerationDecision, error) {
		var decisions []*types.ModerationDecision

		err := m.db.NewSelect().
			Model(&decisions).
			Where("reported_id = ?", reportedID).
			Order("decided_at DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get decisions: %w", err)
		}

		return decisions, nil
	})
}
