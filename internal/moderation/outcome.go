package moderation

import (
	"fmt"
	"strings"

	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
)

// Outcome is everything a verdict causes.
type Outcome struct {
	Severity enum.Severity
	// Count is the ledger size after recording this report, zero when no
	// ledger was touched.
	Count int
	// System describes the action taken by the platform.
	System string
	// Recipient receives Response as a direct message.
	Recipient report.User
	Response  string
	// Broadcast is posted to the group channel when non-empty.
	Broadcast string
	// Block and BlockResponse are set when the reporter asked for a block.
	Block         string
	BlockResponse string
	// Escalated marks reports forwarded to a manager.
	Escalated bool
}

// BuildOutcome applies the decision table to a report. The count is the
// size of the relevant ledger after the report was recorded in it.
func BuildOutcome(r *report.Report, severity enum.Severity, count int) Outcome {
	o := Outcome{Severity: severity, Count: count}

	switch severity {
	case enum.SeverityFalse:
		o.Recipient = r.Reporter

		if history.Escalates(count) {
			o.System = fmt.Sprintf("False Report. User account %s (id: %s) has been removed due to too many false reports.",
				r.Reporter.Name, userID(r.Reporter))
			o.Response = fmt.Sprintf("Your account has been removed due to repeated false reporting offenses. "+
				"You most recently reported %s's post.", r.Reported.Name)
		} else {
			o.System = fmt.Sprintf("False Report. User account %s (id: %s) has been warned about making false reports, "+
				"and this has been internally recorded.", r.Reporter.Name, userID(r.Reporter))
			o.Response = fmt.Sprintf("Warning: Please refrain from falsely reporting posts. "+
				"Subsequent offenses will result in a ban. You recently reported %s's post.", r.Reported.Name)
		}

		// A false report never blocks the reported user
		return o

	case enum.Severity0:
		o.System = "Severity 0. No action taken"

	case enum.Severity1:
		o.Recipient = r.Reported

		if history.Escalates(count) {
			o.System = "Severity 1. " + removalSystem(r.Reported)
			o.Response = removalResponse
			o.Broadcast = banBroadcast(r.Reported)
		} else {
			o.System = fmt.Sprintf("Severity 1. User account %s (id: %s) has been warned and their post taken down.",
				r.Reported.Name, userID(r.Reported))
			o.Response = "Warning: This post violates our Community Standards. We have taken it down, " +
				"and future offenses will result in the removal of your account."
		}

	case enum.Severity2:
		o.Recipient = r.Reported
		o.System = "Severity 2. " + removalSystem(r.Reported)
		o.Response = removalResponse
		o.Broadcast = banBroadcast(r.Reported)

	case enum.Severity3:
		o.Recipient = r.Reported
		o.System = "Severity 3! " + removalSystem(r.Reported) +
			"\nReport has also been forwarded to manager to review, so they can alert authorities if necessary."
		o.Response = removalResponse
		o.Broadcast = banBroadcast(r.Reported)
		o.Escalated = true
	}

	if r.BlockRequested {
		o.Block = fmt.Sprintf("%s has been blocked for %s since they requested the block in their report.",
			r.Reported.Name, r.Reporter.Name)
		o.BlockResponse = fmt.Sprintf("%s has been blocked for you since you requested it in your most recent report",
			r.Reported.Name)
	}

	return o
}

// RecordsViolation reports whether a severity counts against the reported user.
func RecordsViolation(severity enum.Severity) bool {
	return severity >= enum.Severity1
}

// Result renders the acknowledgment shown to the moderator.
func (o Outcome) Result() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Report assigned severity %s.\n\n", o.Severity)
	b.WriteString("The system has made the following action(s): \n`" + o.System + "`\n")

	if o.Block != "" {
		b.WriteString("`" + o.Block + "`\n")
	}

	b.WriteString("\n")

	if o.Response != "" {
		fmt.Fprintf(&b, "The following response has been sent to %s: `%s`\n\n", o.Recipient.Name, o.Response)
	} else {
		b.WriteString("No response has been sent.\n\n")
	}

	b.WriteString("COMPLETE: The report has been reviewed and removed from the queue.")

	return b.String()
}

const removalResponse = "Your post has been taken down and your account removed " +
	"for violating our Community Standards too many times."

func removalSystem(u report.User) string {
	return fmt.Sprintf("User account %s (id: %s) has been removed and their post taken down "+
		"due to too many reports against them.", u.Name, userID(u))
}

func banBroadcast(u report.User) string {
	return fmt.Sprintf("User %s has been banned for violating Community Standards.", u.Name)
}

func userID(u report.User) string {
	if u.ID == 0 {
		return "none"
	}

	return fmt.Sprintf("%d", u.ID)
}
