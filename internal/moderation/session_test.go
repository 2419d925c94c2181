package moderation_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robalyx/warden/internal/database/types"
	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/metrics"
	"github.com/robalyx/warden/internal/moderation"
	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/robalyx/warden/internal/transport/transporttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	modChannel   = 900
	groupChannel = 901
	moderatorID  = 42
)

var (
	reporter = report.User{ID: 1, Name: "reporter"}
	reported = report.User{ID: 2, Name: "offender"}
)

type fakeAudit struct {
	mu        sync.Mutex
	decisions []*types.ModerationDecision
}

func (a *fakeAudit) Record(_ context.Context, d *types.ModerationDecision) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.decisions = append(a.decisions, d)

	return nil
}

type harness struct {
	session   *moderation.Session
	queue     *queue.Queue
	history   *history.History
	transport *transporttest.Transport
	metrics   *metrics.Metrics
	audit     *fakeAudit
}

func newHarness(t *testing.T, store history.Store) *harness {
	t.Helper()

	if store == nil {
		store = history.NewMemoryStore()
	}

	h := &harness{
		queue:     queue.New(queue.NewMemoryStore(), zap.NewNop()),
		history:   history.New(store, zap.NewNop()),
		transport: transporttest.New(),
		metrics:   metrics.New(),
		audit:     &fakeAudit{},
	}
	h.session = moderation.New(h.queue, h.history, h.transport, h.audit, h.metrics,
		moderation.Config{ModChannelID: modChannel, GroupChannelID: groupChannel}, zap.NewNop())

	return h
}

func newReport(c report.Classification) *report.Report {
	r := report.New(reporter)
	r.Reported = reported
	r.Content = "offending post"
	r.Classification = c

	return r
}

// review enqueues the report, checks it out and applies the severity.
func (h *harness) review(t *testing.T, r *report.Report, severity string) string {
	t.Helper()

	ctx := t.Context()

	_, err := h.queue.Add(ctx, r)
	require.NoError(t, err)

	out, err := h.session.Next(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	out, err = h.session.Decide(ctx, moderatorID, severity)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, moderation.StateIdle, h.session.State())
	require.Nil(t, h.session.Checkout())

	return out[0]
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want moderation.Command
		ok   bool
	}{
		{text: `\start mod`, want: moderation.CommandStartMod, ok: true},
		{text: `  \START   Mod `, want: moderation.CommandStartMod, ok: true},
		{text: `\quit`, want: moderation.CommandQuit, ok: true},
		{text: `\Help`, want: moderation.CommandHelp, ok: true},
		{text: `\next`, want: moderation.CommandNext, ok: true},
		{text: `\start next`, want: moderation.CommandNext, ok: true},
		{text: `\count`, want: moderation.CommandCount, ok: true},
		{text: `\preview`, want: moderation.CommandPreview, ok: true},
		{text: `next`, ok: false},
		{text: `1`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got, ok := moderation.ParseCommand(tt.text)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	for text, want := range map[string]enum.Severity{
		"false": enum.SeverityFalse,
		"FALSE": enum.SeverityFalse,
		" 0 ":   enum.Severity0,
		"1":     enum.Severity1,
		"2":     enum.Severity2,
		"3":     enum.Severity3,
	} {
		got, ok := moderation.ParseSeverity(text)
		assert.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}

	for _, text := range []string{"4", "-1", "true", "", "severity 1"} {
		_, ok := moderation.ParseSeverity(text)
		assert.False(t, ok, text)
	}
}

func TestScenarioEmptyQueue(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)

	out, err := h.session.Next(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"There are no reports in the queue."}, out)
	assert.Equal(t, moderation.StateIdle, h.session.State())
}

func TestScenarioThirdFalseReport(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	ctx := t.Context()

	for range 2 {
		prior := newReport(report.Spam{})
		severity := enum.SeverityFalse
		prior.Severity = &severity

		_, err := h.history.RecordFalseReport(ctx, prior)
		require.NoError(t, err)
	}

	result := h.review(t, newReport(report.Spam{}), "false")

	dms := h.transport.DMsTo(reporter.ID)
	require.Len(t, dms, 1)
	assert.Equal(t, "Your account has been removed due to repeated false reporting offenses. "+
		"You most recently reported offender's post.", dms[0])
	assert.Contains(t, result, "has been removed due to too many false reports")
	assert.Empty(t, h.transport.DMsTo(reported.ID))

	entries, err := h.history.FalseReports(ctx, reporter)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestFalseReportWarningsBeforeThreshold(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)

	for i := range 3 {
		h.review(t, newReport(report.Harassment{}), "false")

		dms := h.transport.DMsTo(reporter.ID)
		require.Len(t, dms, i+1)

		if i < 2 {
			assert.True(t, strings.HasPrefix(dms[i], "Warning: Please refrain from falsely reporting posts."), "report %d", i+1)
		} else {
			assert.True(t, strings.HasPrefix(dms[i], "Your account has been removed"), "report %d", i+1)
		}
	}
}

func TestViolationBroadcastThreshold(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)

	for i := range 3 {
		h.review(t, newReport(report.Spam{}), "1")

		broadcasts := h.transport.SentTo(groupChannel)
		dms := h.transport.DMsTo(reported.ID)

		if i < 2 {
			assert.Empty(t, broadcasts, "violation %d", i+1)
			assert.True(t, strings.HasPrefix(dms[i], "Warning: This post violates our Community Standards."))
		} else {
			assert.Equal(t, []string{"User offender has been banned for violating Community Standards."}, broadcasts)
			assert.True(t, strings.HasPrefix(dms[i], "Your post has been taken down and your account removed"))
		}
	}
}

func TestSeverityOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity  string
		system    string
		dm        bool
		broadcast bool
	}{
		{severity: "0", system: "Severity 0. No action taken", dm: false, broadcast: false},
		{severity: "1", system: "Severity 1. User account offender (id: 2) has been warned", dm: true, broadcast: false},
		{severity: "2", system: "Severity 2. User account offender (id: 2) has been removed", dm: true, broadcast: true},
		{severity: "3", system: "forwarded to manager", dm: true, broadcast: true},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, nil)
			result := h.review(t, newReport(report.Spam{}), tt.severity)

			assert.Contains(t, result, "Report assigned severity "+tt.severity+".")
			assert.Contains(t, result, tt.system)
			assert.Contains(t, result, "COMPLETE: The report has been reviewed and removed from the queue.")
			assert.Equal(t, tt.dm, len(h.transport.DMsTo(reported.ID)) == 1)
			assert.Equal(t, tt.broadcast, len(h.transport.SentTo(groupChannel)) == 1)
			assert.Empty(t, h.transport.DMsTo(reporter.ID))

			summaries := h.transport.SentTo(modChannel)
			require.Len(t, summaries, 1)
			assert.True(t, strings.HasPrefix(summaries[0], "REPORT REVIEW SUMMARY:"))
			assert.Contains(t, summaries[0], "Severity: "+tt.severity)

			violations, err := h.history.Violations(t.Context(), reported)
			require.NoError(t, err)
			assert.Equal(t, tt.severity != "0", len(violations) == 1)
		})
	}
}

func TestBlockRequested(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	r := newReport(report.Harassment{})
	r.BlockRequested = true

	result := h.review(t, r, "1")

	assert.Contains(t, result, "offender has been blocked for reporter since they requested the block in their report.")
	assert.Equal(t,
		[]string{"offender has been blocked for you since you requested it in your most recent report"},
		h.transport.DMsTo(reporter.ID))

	// A false report never triggers the block
	h = newHarness(t, nil)
	r = newReport(report.Harassment{})
	r.BlockRequested = true

	result = h.review(t, r, "false")
	assert.NotContains(t, result, "has been blocked")
	assert.Len(t, h.transport.DMsTo(reporter.ID), 1)

	// Severity 0 sends nothing to the reported user but still confirms the block
	h = newHarness(t, nil)
	r = newReport(report.Harassment{})
	r.BlockRequested = true

	result = h.review(t, r, "0")
	assert.Contains(t, result, "offender has been blocked for reporter since they requested the block in their report.")
	assert.Empty(t, h.transport.DMsTo(reported.ID))
	assert.Equal(t,
		[]string{"offender has been blocked for you since you requested it in your most recent report"},
		h.transport.DMsTo(reporter.ID))
}

func TestDeliveryFailureDoesNotRollBack(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	h.transport.BlockDMs(reported.ID)

	result := h.review(t, newReport(report.Spam{}), "2")

	assert.Contains(t, result, "NOTE: The direct message to offender could not be delivered.")
	assert.InDelta(t, 1, testutil.ToFloat64(h.metrics.DeliveryFailures), 0)

	violations, err := h.history.Violations(t.Context(), reported)
	require.NoError(t, err)
	assert.Len(t, violations, 1)
	assert.Len(t, h.transport.SentTo(groupChannel), 1)
}

func TestAutoModFalseReport(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)

	r, err := report.NewAutoMod(reported, report.Link{GuildID: 1, ChannelID: 2, MessageID: 3},
		"join us", enum.ExtremistKindRecruitment, "recruiting language")
	require.NoError(t, err)

	h.review(t, r, "false")

	assert.Zero(t, h.transport.DMCount())

	entries, err := h.history.FalseReports(t.Context(), report.User{Name: report.AutoModName})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSeverityWhileIdle(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)

	out, err := h.session.Decide(t.Context(), moderatorID, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"ERROR: Awaiting severity level, but no report is currently being moderated."}, out)
	assert.Equal(t, moderation.StateIdle, h.session.State())

	out, err = h.session.Decide(t.Context(), moderatorID, "hello")
	require.NoError(t, err)
	assert.Contains(t, out[0], "Mod mode is currently enabled.")
}

func TestInvalidSeverityKeepsCheckout(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	ctx := t.Context()

	r := newReport(report.Spam{})
	_, err := h.queue.Add(ctx, r)
	require.NoError(t, err)

	_, err = h.session.Next(ctx)
	require.NoError(t, err)

	out, err := h.session.Decide(ctx, moderatorID, "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"Invalid severity level. Please try again.\nOptions are: false, 0, 1, 2, 3."}, out)
	assert.Equal(t, moderation.StateAwaitingSeverity, h.session.State())
	assert.Equal(t, r.ID, h.session.Checkout().ID)
	assert.Nil(t, h.session.Checkout().Severity)

	// Asking for another report keeps the current one
	out, err = h.session.Next(ctx)
	require.NoError(t, err)
	assert.Contains(t, out[0], "already being moderated")
	assert.Equal(t, r.ID, h.session.Checkout().ID)
}

type failingStore struct{}

var errLedger = errors.New("ledger unavailable")

func (failingStore) Append(context.Context, enum.HistoryKind, string, *history.Entry) (int, error) {
	return 0, errLedger
}

func (failingStore) List(context.Context, enum.HistoryKind, string) ([]*history.Entry, error) {
	return nil, errLedger
}

func TestHistoryFailureKeepsCheckout(t *testing.T) {
	t.Parallel()

	h := newHarness(t, failingStore{})
	ctx := t.Context()

	_, err := h.queue.Add(ctx, newReport(report.Spam{}))
	require.NoError(t, err)

	_, err = h.session.Next(ctx)
	require.NoError(t, err)

	_, err = h.session.Decide(ctx, moderatorID, "1")
	require.ErrorIs(t, err, errLedger)
	assert.Equal(t, moderation.StateAwaitingSeverity, h.session.State())
	assert.Nil(t, h.session.Checkout().Severity)
	assert.Zero(t, h.transport.DMCount())

	// Severity 0 touches no ledger and still completes
	out, err := h.session.Decide(ctx, moderatorID, "0")
	require.NoError(t, err)
	assert.Contains(t, out[0], "Severity 0. No action taken")
	assert.Equal(t, moderation.StateIdle, h.session.State())
}

func TestCountAndPreview(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	ctx := t.Context()

	out, err := h.session.Preview(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"There are no reports in the queue."}, out)

	threat, err := report.NewThreat(enum.ThreatKindOthers)
	require.NoError(t, err)

	for _, c := range []report.Classification{report.Spam{}, threat, report.Harassment{}} {
		_, err := h.queue.Add(ctx, newReport(c))
		require.NoError(t, err)
	}

	out, err = h.session.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"There are 3 reports in the queue.\nHigh: 1, Medium: 0, Low: 2"}, out)

	out, err = h.session.Preview(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Next report: Threat, Priority: High"}, out)
}

func TestHandleRoutesCommands(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	ctx := t.Context()

	out, err := h.session.Handle(ctx, moderatorID, `\help`)
	require.NoError(t, err)
	assert.Contains(t, out[0], "`\\next`")

	_, err = h.queue.Add(ctx, newReport(report.Spam{}))
	require.NoError(t, err)

	out, err = h.session.Handle(ctx, moderatorID, `\NEXT`)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "Reported user: offender")
	assert.Equal(t, "Please assign a severity level to this report.\nOptions are: false, 0, 1, 2, 3.", out[1])

	out, err = h.session.Handle(ctx, moderatorID, "0")
	require.NoError(t, err)
	assert.Contains(t, out[0], "Report assigned severity 0.")
}

func TestDecisionAudited(t *testing.T) {
	t.Parallel()

	h := newHarness(t, nil)
	r := newReport(report.Spam{})
	r.Comment = "context"

	h.review(t, r, "3")

	require.Len(t, h.audit.decisions, 1)

	d := h.audit.decisions[0]
	assert.Equal(t, r.ID, d.ReportID)
	assert.Equal(t, enum.Severity3, d.Severity)
	assert.Equal(t, "Spam", d.Category)
	assert.True(t, d.Broadcast)
	assert.False(t, d.BlockApplied)
	assert.Equal(t, uint64(moderatorID), d.DecidedBy)
	assert.Equal(t, "context", d.Comment)
	assert.InDelta(t, 1, testutil.ToFloat64(h.metrics.Decisions.WithLabelValues("3")), 0)
}
