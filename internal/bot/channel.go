package bot

import (
	"context"

	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/transport"
	"go.uber.org/zap"
)

// HandleChannelMessage runs the classifier on a message posted in the
// watched group channel and queues a report when it is flagged.
func (o *Orchestrator) HandleChannelMessage(ctx context.Context, in *transport.Inbound) {
	if in.ChannelID != o.config.GroupChannelID || in.Content == "" {
		return
	}

	// No lock is held here so slow classifications never stall other users
	result, err := o.classifier.Classify(ctx, in.Content)
	if err != nil {
		o.metrics.ClassifierCalls.WithLabelValues("error").Inc()
		o.logger.Warn("Classification failed",
			zap.Uint64("messageID", in.MessageID),
			zap.Error(err))

		if sendErr := o.transport.Send(ctx, o.config.ModChannelID, "Error: "+err.Error()); sendErr != nil {
			o.logger.Error("Failed to report classifier error", zap.Error(sendErr))
		}

		return
	}

	kind, flagged := result.ExtremistKind()
	if !flagged {
		o.metrics.ClassifierCalls.WithLabelValues("clean").Inc()
		return
	}

	o.metrics.ClassifierCalls.WithLabelValues("flagged").Inc()

	r, err := report.NewAutoMod(
		report.User{ID: in.AuthorID, Name: in.AuthorName},
		report.Link{GuildID: in.GuildID, ChannelID: in.ChannelID, MessageID: in.MessageID},
		in.Content, kind, result.Reason,
	)
	if err != nil {
		o.logger.Error("Failed to build automatic report", zap.Error(err))
		return
	}

	if err := o.enqueue(ctx, r); err != nil {
		o.logger.Error("Failed to file automatic report",
			zap.String("reportID", r.ID.String()),
			zap.Error(err))
	}
}
