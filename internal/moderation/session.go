// Package moderation implements the moderator's review cycle: checking a
// report out of the queue, applying a severity verdict and notifying everyone
// the verdict affects.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robalyx/warden/internal/database/types"
	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/metrics"
	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/robalyx/warden/internal/transport"
	"go.uber.org/zap"
)

const (
	emptyReply     = "There are no reports in the queue."
	severityPrompt = "Please assign a severity level to this report.\nOptions are: false, 0, 1, 2, 3."
	invalidReply   = "Invalid severity level. Please try again.\nOptions are: false, 0, 1, 2, 3."
	noCheckout     = "ERROR: Awaiting severity level, but no report is currently being moderated."
	idleHint       = "Mod mode is currently enabled. Use the `\\help` command for more information."
	busyReply      = "A report is already being moderated. Assign it a severity before requesting the next one.\n" +
		"Options are: false, 0, 1, 2, 3."

	helpReply = "Use the `\\count` command to see how many reports are in the queue.\n" +
		"Use the `\\preview` command to see the category and priority of the next report.\n" +
		"Use the `\\next` command to start moderating the next report.\n" +
		"Use the `\\quit` command to disable mod mode."
)

// Replies acknowledging mod mode changes.
const (
	EnabledReply  = "Mod mode enabled. Use the `\\help` command for more information."
	DisabledReply = "Mod mode disabled."
)

// AuditLog persists reviewed reports.
type AuditLog interface {
	Record(ctx context.Context, decision *types.ModerationDecision) error
}

// Config names the channels verdicts are announced in.
type Config struct {
	ModChannelID   uint64
	GroupChannelID uint64
}

// Session is the single review cycle shared by all moderators. Every
// operation runs under one lock, so the checkout, the queue pop and the
// ledger updates of a verdict never interleave.
type Session struct {
	mu       sync.Mutex
	state    State
	checkout *report.Report

	queue   *queue.Queue
	history *history.History
	sender  transport.Sender
	audit   AuditLog
	metrics *metrics.Metrics
	config  Config
	logger  *zap.Logger
}

// New creates an idle session. The audit log may be nil.
func New(
	q *queue.Queue, h *history.History, sender transport.Sender, audit AuditLog,
	m *metrics.Metrics, config Config, logger *zap.Logger,
) *Session {
	return &Session{
		state:   StateIdle,
		queue:   q,
		history: h,
		sender:  sender,
		audit:   audit,
		metrics: m,
		config:  config,
		logger:  logger.Named("moderation"),
	}
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Checkout returns the report under review, or nil.
func (s *Session) Checkout() *report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.checkout
}

// Handle dispatches a message from a moderator in mod mode. Mode changes are
// handled by the caller.
func (s *Session) Handle(ctx context.Context, moderatorID uint64, text string) ([]string, error) {
	if command, ok := ParseCommand(text); ok {
		switch command {
		case CommandHelp:
			return []string{helpReply}, nil
		case CommandNext:
			return s.Next(ctx)
		case CommandCount:
			return s.Count(ctx)
		case CommandPreview:
			return s.Preview(ctx)
		case CommandStartMod:
			return []string{EnabledReply}, nil
		case CommandQuit:
			return []string{DisabledReply}, nil
		}
	}

	return s.Decide(ctx, moderatorID, text)
}

// Next checks out the next report.
func (s *Session) Next(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAwaitingSeverity {
		return []string{busyReply}, nil
	}

	r, err := s.queue.Pop(ctx)
	if err != nil {
		if errors.Is(err, queue.ErrQueueEmpty) {
			return []string{emptyReply}, nil
		}

		return nil, fmt.Errorf("failed to check out report: %w", err)
	}

	s.checkout = r
	s.state = StateAwaitingSeverity

	s.logger.Info("Checked out report",
		zap.String("reportID", r.ID.String()),
		zap.String("priority", r.Priority.String()))

	return []string{r.Render(), severityPrompt}, nil
}

// Count reports the queue size.
func (s *Session) Count(ctx context.Context) ([]string, error) {
	counts, err := s.queue.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	total := 0
	tiers := make([]string, 0, len(counts))

	for _, priority := range enum.PriorityValues() {
		total += counts[priority]
		tiers = append(tiers, fmt.Sprintf("%s: %d", priority, counts[priority]))
	}

	return []string{fmt.Sprintf("There are %d reports in the queue.\n%s", total, strings.Join(tiers, ", "))}, nil
}

// Preview describes the next report without checking it out.
func (s *Session) Preview(ctx context.Context) ([]string, error) {
	r, err := s.queue.Peek(ctx)
	if err != nil {
		if errors.Is(err, queue.ErrQueueEmpty) {
			return []string{emptyReply}, nil
		}

		return nil, fmt.Errorf("failed to preview report: %w", err)
	}

	return []string{fmt.Sprintf("Next report: %s, Priority: %s", r.AbuseName(), r.Priority)}, nil
}

// Decide applies a verdict to the checked-out report. Text that is not a
// severity gets a re-prompt or, while idle, a hint. A returned error leaves
// the report checked out so the verdict can be retried.
func (s *Session) Decide(ctx context.Context, moderatorID uint64, text string) ([]string, error) {
	severity, ok := ParseSeverity(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		if ok {
			s.logger.Warn("Severity received with no report checked out",
				zap.Uint64("moderatorID", moderatorID))
			return []string{noCheckout}, nil
		}

		return []string{idleHint}, nil
	}

	if !ok {
		return []string{invalidReply}, nil
	}

	r := s.checkout

	count, err := s.record(ctx, r, severity)
	if err != nil {
		return nil, err
	}

	r.Severity = &severity
	outcome := BuildOutcome(r, severity, count)
	notes := s.notify(ctx, r, &outcome)

	result := outcome.Result()
	if len(notes) > 0 {
		result += "\n\n" + strings.Join(notes, "\n")
	}

	summary := "REPORT REVIEW SUMMARY: For the following report...\n`" + r.Render() + "`\n\n" + result
	if err := s.sender.Send(ctx, s.config.ModChannelID, summary); err != nil {
		s.logger.Error("Failed to post review summary", zap.Error(err))
	}

	s.writeAudit(ctx, r, &outcome, moderatorID)
	s.metrics.Decisions.WithLabelValues(severity.String()).Inc()

	s.logger.Info("Report decided",
		zap.String("reportID", r.ID.String()),
		zap.String("severity", severity.String()),
		zap.Int("count", count),
		zap.Uint64("moderatorID", moderatorID))

	s.checkout = nil
	s.state = StateIdle

	return []string{result}, nil
}

// record appends the report to the ledger the severity affects.
func (s *Session) record(ctx context.Context, r *report.Report, severity enum.Severity) (int, error) {
	switch {
	case severity == enum.SeverityFalse:
		return s.history.RecordFalseReport(ctx, r)
	case RecordsViolation(severity):
		return s.history.RecordViolation(ctx, r)
	default:
		return 0, nil
	}
}

// notify delivers the direct messages and broadcast of an outcome. Delivery
// failures are returned as notes and never undo the verdict.
func (s *Session) notify(ctx context.Context, r *report.Report, o *Outcome) []string {
	var notes []string

	if o.Response != "" {
		if note := s.sendDM(ctx, o.Recipient, o.Response); note != "" {
			notes = append(notes, note)
		}
	}

	if o.BlockResponse != "" {
		if note := s.sendDM(ctx, r.Reporter, o.BlockResponse); note != "" {
			notes = append(notes, note)
		}
	}

	if o.Broadcast != "" {
		if err := s.sender.Send(ctx, s.config.GroupChannelID, o.Broadcast); err != nil {
			s.logger.Error("Failed to broadcast ban notice", zap.Error(err))
			notes = append(notes, "NOTE: The ban notice could not be posted to the group channel.")
		}
	}

	return notes
}

func (s *Session) sendDM(ctx context.Context, user report.User, text string) string {
	if user.ID == 0 {
		s.logger.Debug("Skipping direct message to account without an ID", zap.String("user", user.Name))
		return ""
	}

	if err := s.sender.SendDM(ctx, user.ID, text); err != nil {
		s.metrics.DeliveryFailures.Inc()
		s.logger.Warn("Failed to deliver direct message",
			zap.Uint64("userID", user.ID),
			zap.Error(err))

		return fmt.Sprintf("NOTE: The direct message to %s could not be delivered.", user.Name)
	}

	return ""
}

func (s *Session) writeAudit(ctx context.Context, r *report.Report, o *Outcome, moderatorID uint64) {
	if s.audit == nil {
		return
	}

	var category string
	if r.Classification != nil {
		category = r.Classification.Label()
	}

	err := s.audit.Record(ctx, &types.ModerationDecision{
		ReportID:     r.ID,
		Source:       r.Source,
		Category:     category,
		Priority:     r.Priority,
		ReporterID:   r.Reporter.ID,
		ReporterName: r.Reporter.Name,
		ReportedID:   r.Reported.ID,
		ReportedName: r.Reported.Name,
		Content:      r.Content,
		Comment:      r.Comment,
		Severity:     o.Severity,
		SystemAction: o.System,
		Response:     o.Response,
		Broadcast:    o.Broadcast != "",
		BlockApplied: o.Block != "",
		DecidedBy:    moderatorID,
		DecidedAt:    time.Now(),
	})
	if err != nil {
		s.logger.Error("Failed to record decision", zap.String("reportID", r.ID.String()), zap.Error(err))
	}
}
