package enum

// Priority is the triage tier a report is queued under.
//
//go:generate go tool enumer -type=Priority -trimprefix=Priority
type Priority int

const (
	// PriorityHigh is served before every other tier.
	PriorityHigh Priority = iota
	// PriorityMedium is served once the high tier is drained.
	PriorityMedium
	// PriorityLow is served last.
	PriorityLow
)

// Severity is the moderator's verdict on a reviewed report.
//
//go:generate go tool enumer -type=Severity -trimprefix=Severity -transform=lower
type Severity int

const (
	// SeverityFalse marks the report itself as abusive.
	SeverityFalse Severity = iota
	// Severity0 means the content is allowed and no action is taken.
	Severity0
	// Severity1 takes the post down and warns the author.
	Severity1
	// Severity2 removes the author's account.
	Severity2
	// Severity3 removes the account and escalates to a manager.
	Severity3
)

// Source records how a report entered the queue.
//
//go:generate go tool enumer -type=Source -trimprefix=Source
type Source int

const (
	// SourceUser is a report filed through the DM intake flow.
	SourceUser Source = iota
	// SourceAutoMod is a report raised by the content classifier.
	SourceAutoMod
)

// HistoryKind selects one of the two escalation ledgers.
//
//go:generate go tool enumer -type=HistoryKind -trimprefix=HistoryKind
type HistoryKind int

const (
	// HistoryKindFalseReport is keyed by the reporting identity.
	HistoryKindFalseReport HistoryKind = iota
	// HistoryKindViolation is keyed by the reported identity.
	HistoryKindViolation
)
