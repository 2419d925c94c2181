package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_escalation_records_ledger
			 ON escalation_records (kind, identity, id)`,
			`CREATE INDEX IF NOT EXISTS idx_moderation_decisions_reported
			 ON moderation_decisions (reported_id, decided_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_moderation_decisions_reporter
			 ON moderation_decisions (reporter_id, decided_at DESC)`,
		}

		for _, stmt := range indexes {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"idx_escalation_records_ledger",
			"idx_moderation_decisions_reported",
			"idx_moderation_decisions_reporter",
		}

		for _, name := range indexes {
			if _, err := db.ExecContext(ctx, "DROP INDEX IF EXISTS "+name); err != nil {
				return fmt.Errorf("failed to drop index %s: %w", name, err)
			}
		}

		return nil
	})
}
