package moderation

import (
	"strings"

	"github.com/robalyx/warden/internal/report/enum"
	"golang.org/x/text/cases"
)

// State is the phase of the review cycle.
//
//go:generate go tool enumer -type=State -trimprefix=State
type State int

const (
	// StateIdle has no report checked out.
	StateIdle State = iota
	// StateAwaitingSeverity holds one checked-out report until a verdict arrives.
	StateAwaitingSeverity
)

// Command is a moderator keyword.
//
//go:generate go tool enumer -type=Command -trimprefix=Command
type Command int

const (
	CommandStartMod Command = iota
	CommandQuit
	CommandHelp
	CommandNext
	CommandCount
	CommandPreview
)

var commandTokens = map[string]Command{
	`\start mod`:  CommandStartMod,
	`\quit`:       CommandQuit,
	`\help`:       CommandHelp,
	`\next`:       CommandNext,
	`\start next`: CommandNext,
	`\count`:      CommandCount,
	`\preview`:    CommandPreview,
}

// ParseCommand matches text against the moderator keywords, ignoring case
// and surrounding whitespace.
func ParseCommand(text string) (Command, bool) {
	folded := cases.Fold().String(strings.Join(strings.Fields(text), " "))
	command, ok := commandTokens[folded]

	return command, ok
}

// ParseSeverity matches text against the severity tokens.
func ParseSeverity(text string) (enum.Severity, bool) {
	severity, err := enum.SeverityString(cases.Fold().String(strings.TrimSpace(text)))
	if err != nil {
		return 0, false
	}

	return severity, true
}
