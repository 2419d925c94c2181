package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/robalyx/warden/internal/intake"
	"github.com/robalyx/warden/internal/moderation"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/transport"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// startKeyword opens a new intake conversation.
const startKeyword = "report"

const fileFailedReply = "Your report could not be filed. Please try again later."

// HandleDM routes a direct message to mod mode, an open intake session or a
// new one.
func (o *Orchestrator) HandleDM(ctx context.Context, in *transport.Inbound) {
	command, isCommand := moderation.ParseCommand(in.Content)

	if o.isModerator(in.AuthorID) && isCommand && command == moderation.CommandStartMod {
		o.modes.Enable(in.AuthorID)
		o.logger.Info("Mod mode enabled", zap.Uint64("moderatorID", in.AuthorID))
		o.reply(ctx, in.ChannelID, []string{moderation.EnabledReply})

		return
	}

	if o.modes.Enabled(in.AuthorID) {
		if isCommand && command == moderation.CommandQuit {
			o.modes.Disable(in.AuthorID)
			o.logger.Info("Mod mode disabled", zap.Uint64("moderatorID", in.AuthorID))
			o.reply(ctx, in.ChannelID, []string{moderation.DisabledReply})

			return
		}

		replies, err := o.moderation.Handle(ctx, in.AuthorID, in.Content)
		if err != nil {
			o.logger.Error("Failed to handle moderator message", zap.Error(err))
			replies = []string{failureReply}
		}

		o.reply(ctx, in.ChannelID, replies)

		return
	}

	token, isToken := intake.ParseToken(in.Content)

	session, ok := o.sessions.Touch(in.AuthorID)
	if !ok {
		switch {
		case isToken && token == intake.TokenHelp:
			o.reply(ctx, in.ChannelID, []string{generalHelp})
			return
		case strings.HasPrefix(cases.Fold().String(strings.TrimSpace(in.Content)), startKeyword):
			reporter := report.User{ID: in.AuthorID, Name: in.AuthorName}
			session, _ = o.sessions.GetOrCreate(in.AuthorID, func() *intake.Session {
				return intake.NewSession(reporter, o.transport)
			})
		default:
			return
		}
	}

	replies, err := session.Handle(ctx, in.Content)
	if err != nil {
		if errors.Is(err, intake.ErrSessionComplete) {
			return
		}

		o.logger.Error("Failed to handle intake message",
			zap.Uint64("userID", in.AuthorID),
			zap.Error(err))
		replies = []string{failureReply}
	}

	o.reply(ctx, in.ChannelID, replies)

	if session.Complete() {
		o.finish(ctx, in, session)
	}
}

// finish retires a completed session and queues its report when valid.
func (o *Orchestrator) finish(ctx context.Context, in *transport.Inbound, session *intake.Session) {
	r, err := session.Take()
	if err != nil {
		// Another message already retired this session
		return
	}

	o.sessions.Delete(in.AuthorID)

	if !r.Valid {
		o.metrics.IntakeSessions.WithLabelValues("cancelled").Inc()
		return
	}

	o.metrics.IntakeSessions.WithLabelValues("filed").Inc()

	if err := o.enqueue(ctx, r); err != nil {
		o.logger.Error("Failed to file report",
			zap.String("reportID", r.ID.String()),
			zap.Error(err))
		o.reply(ctx, in.ChannelID, []string{fileFailedReply})
	}
}

func (o *Orchestrator) isModerator(userID uint64) bool {
	_, ok := o.moderators[userID]
	return ok
}
