package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/uptrace/bun"
)

// EscalationRecord is one entry in a false-report or violation ledger.
type EscalationRecord struct {
	bun.BaseModel `bun:"table:escalation_records,alias:er"`

	ID         int64            `bun:",pk,autoincrement"` // Insertion order
	Kind       enum.HistoryKind `bun:",notnull"`          // Which ledger the entry belongs to
	Identity   string           `bun:",notnull"`          // User ID, or name for accounts without one
	UserID     uint64           `bun:",notnull"`          // Discord ID of the recorded user (0 for auto mod)
	UserName   string           `bun:",notnull"`          // Display name at the time of the decision
	ReportID   uuid.UUID        `bun:",type:uuid,notnull"`
	Severity   enum.Severity    `bun:",notnull"`
	RecordedAt time.Time        `bun:",notnull"`
}
