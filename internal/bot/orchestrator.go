// Package bot routes inbound chat messages to the intake conversations, the
// moderator's review cycle and the automatic content classifier.
package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/robalyx/warden/internal/classifier"
	"github.com/robalyx/warden/internal/intake"
	"github.com/robalyx/warden/internal/metrics"
	"github.com/robalyx/warden/internal/moderation"
	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/transport"
	"github.com/robalyx/warden/pkg/utils"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	generalHelp = "Use the `report` command to begin the reporting process.\n" +
		"Use the `cancel` command to cancel the report process.\n" +
		"MOD USE ONLY: Use the `\\start mod` command to enable mod mode."
	failureReply = "Something went wrong while processing your message. Please try again."

	defaultSessionTimeout = 30 * time.Minute
	defaultRequestTimeout = 30 * time.Second
)

// Config controls routing.
type Config struct {
	ModChannelID   uint64
	GroupChannelID uint64
	Moderators     []uint64
	SessionTimeout time.Duration
	RequestTimeout time.Duration
}

// Orchestrator dispatches inbound messages. Each reporting user's intake
// session is independent; the review cycle, queue and ledgers are shared
// and serialized by their own locks.
type Orchestrator struct {
	transport  transport.Transport
	classifier classifier.Classifier
	queue      *queue.Queue
	moderation *moderation.Session
	sessions   *utils.TTLMap[uint64, *intake.Session]
	modes      *ModeRegistry
	moderators map[uint64]struct{}
	metrics    *metrics.Metrics
	config     Config
	logger     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	pool   *pool.Pool
}

// New creates an orchestrator. Close must be called to release it.
func New(
	tr transport.Transport, cl classifier.Classifier, q *queue.Queue, mod *moderation.Session,
	m *metrics.Metrics, config Config, logger *zap.Logger,
) *Orchestrator {
	ctx, cancel := context.WithCancel(context.Background())
	logger = logger.Named("bot")

	if config.SessionTimeout <= 0 {
		config.SessionTimeout = defaultSessionTimeout
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = defaultRequestTimeout
	}

	moderators := make(map[uint64]struct{}, len(config.Moderators))
	for _, id := range config.Moderators {
		moderators[id] = struct{}{}
	}

	o := &Orchestrator{
		transport:  tr,
		classifier: cl,
		queue:      q,
		moderation: mod,
		modes:      NewModeRegistry(),
		moderators: moderators,
		metrics:    m,
		config:     config,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		pool:       pool.New(),
	}

	o.sessions = utils.NewTTLMap(config.SessionTimeout, func(userID uint64, _ *intake.Session) {
		o.metrics.IntakeSessions.WithLabelValues("expired").Inc()
		o.logger.Debug("Intake session expired", zap.Uint64("userID", userID))
	})

	return o
}

// ActiveSessions returns the number of open intake conversations.
func (o *Orchestrator) ActiveSessions() int {
	return o.sessions.Len()
}

// Dispatch handles a message on its own goroutine and returns immediately.
func (o *Orchestrator) Dispatch(in *transport.Inbound) {
	o.pool.Go(func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				o.logger.Error("Panic while handling message",
					zap.Any("panic", r),
					zap.String("stack", string(debug.Stack())))
			}
			o.logger.Debug("Message handled",
				zap.Uint64("channelID", in.ChannelID),
				zap.Duration("duration", time.Since(start)))
		}()

		ctx, cancel := context.WithTimeout(o.ctx, o.config.RequestTimeout)
		defer cancel()

		o.Handle(ctx, in)
	})
}

// Close waits for in-flight messages and stops session expiry.
func (o *Orchestrator) Close() {
	o.pool.Wait()
	o.cancel()
	o.sessions.Stop()
}

// Handle routes one inbound message synchronously.
func (o *Orchestrator) Handle(ctx context.Context, in *transport.Inbound) {
	if in.AuthorBot {
		return
	}

	if in.IsDM() {
		o.HandleDM(ctx, in)
		return
	}

	o.HandleChannelMessage(ctx, in)
}

// enqueue adds a finished report to the queue and announces it to the
// moderation channel.
func (o *Orchestrator) enqueue(ctx context.Context, r *report.Report) error {
	priority, err := o.queue.Add(ctx, r)
	if err != nil {
		return fmt.Errorf("failed to enqueue report: %w", err)
	}

	o.metrics.ReportsEnqueued.WithLabelValues(r.Source.String(), priority.String()).Inc()
	o.logger.Info("Report enqueued",
		zap.String("reportID", r.ID.String()),
		zap.String("source", r.Source.String()),
		zap.String("priority", priority.String()))

	notice := "NEW REPORT:\nA new report was generated and has been added to the queue:\n`" + r.Render() + "`"
	if err := o.transport.Send(ctx, o.config.ModChannelID, notice); err != nil {
		o.logger.Error("Failed to announce report", zap.Error(err))
	}

	return nil
}

func (o *Orchestrator) reply(ctx context.Context, channelID uint64, replies []string) {
	for _, text := range replies {
		if err := o.transport.Send(ctx, channelID, text); err != nil {
			o.logger.Error("Failed to send reply",
				zap.Uint64("channelID", channelID),
				zap.Error(err))

			return
		}
	}
}
