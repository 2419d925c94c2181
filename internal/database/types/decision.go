package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/uptrace/bun"
)

// ModerationDecision is the audit record of a reviewed report.
type ModerationDecision struct {
	bun.BaseModel `bun:"table:moderation_decisions,alias:md"`

	ReportID     uuid.UUID     `bun:",pk,type:uuid"`
	Source       enum.Source   `bun:",notnull"`
	Category     string        `bun:",notnull"`
	Priority     enum.Priority `bun:",notnull"`
	ReporterID   uint64        `bun:",notnull"` // 0 for classifier-raised reports
	ReporterName string        `bun:",notnull"`
	ReportedID   uint64        `bun:",notnull"`
	ReportedName string        `bun:",notnull"`
	Content      string        `bun:",type:text"`
	Comment      string        `bun:",type:text"`
	Severity     enum.Severity `bun:",notnull"`
	SystemAction string        `bun:",type:text"` // What the system did in response
	Response     string        `bun:",type:text"` // DM sent to the affected party, empty if none
	Broadcast    bool          `bun:",notnull"`   // Whether a ban notice was posted
	BlockApplied bool          `bun:",notnull"`
	DecidedBy    uint64        `bun:",notnull"` // Discord ID of the moderator
	DecidedAt    time.Time     `bun:",notnull"`
}
