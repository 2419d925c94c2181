// Package discord connects the bot to Discord: it implements the transport
// used by the core and turns gateway events into inbound messages.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/robalyx/warden/internal/transport"
	"github.com/robalyx/warden/pkg/utils"
	"go.uber.org/zap"
)

// Transport implements transport.Transport over the Discord REST API.
type Transport struct {
	client bot.Client
	retry  utils.RetryOptions
	logger *zap.Logger
}

// NewTransport creates a transport that retries direct messages up to
// retries times.
func NewTransport(client bot.Client, retries uint64, logger *zap.Logger) *Transport {
	t := &Transport{
		client: client,
		retry:  utils.GetDeliveryRetryOptions(retries),
		logger: logger.Named("discord_transport"),
	}

	t.retry.Notify = func(err error, next time.Duration) {
		t.logger.Warn("Retrying direct message", zap.Error(err), zap.Duration("next", next))
	}

	return t
}

// ResolveGuild checks that the bot is a member of the guild.
func (t *Transport) ResolveGuild(ctx context.Context, guildID uint64) error {
	if _, ok := t.client.Caches().Guild(snowflake.ID(guildID)); ok {
		return nil
	}

	if _, err := t.client.Rest().GetGuild(snowflake.ID(guildID), false, rest.WithCtx(ctx)); err != nil {
		if isMissing(err) {
			return fmt.Errorf("%w: %d", transport.ErrGuildNotFound, guildID)
		}

		return fmt.Errorf("failed to get guild: %w", err)
	}

	return nil
}

// ResolveChannel checks that the channel exists and belongs to the guild.
func (t *Transport) ResolveChannel(ctx context.Context, guildID, channelID uint64) error {
	channel, err := t.client.Rest().GetChannel(snowflake.ID(channelID), rest.WithCtx(ctx))
	if err != nil {
		if isMissing(err) {
			return fmt.Errorf("%w: %d", transport.ErrChannelNotFound, channelID)
		}

		return fmt.Errorf("failed to get channel: %w", err)
	}

	guildChannel, ok := channel.(discord.GuildChannel)
	if !ok || uint64(guildChannel.GuildID()) != guildID {
		return fmt.Errorf("%w: %d is not in guild %d", transport.ErrChannelNotFound, channelID, guildID)
	}

	return nil
}

// FetchMessage loads a message and its author.
func (t *Transport) FetchMessage(ctx context.Context, channelID, messageID uint64) (*transport.Message, error) {
	msg, err := t.client.Rest().GetMessage(snowflake.ID(channelID), snowflake.ID(messageID), rest.WithCtx(ctx))
	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %d", transport.ErrMessageNotFound, messageID)
		}

		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	result := &transport.Message{
		ID:         uint64(msg.ID),
		ChannelID:  uint64(msg.ChannelID),
		AuthorID:   uint64(msg.Author.ID),
		AuthorName: msg.Author.Username,
		Content:    msg.Content,
	}
	if msg.GuildID != nil {
		result.GuildID = uint64(*msg.GuildID)
	}

	return result, nil
}

// Send posts text to a channel, split to fit Discord's length limit.
func (t *Transport) Send(ctx context.Context, channelID uint64, text string) error {
	return NewDelivery(text).Resume(func(chunk string) error {
		return t.createMessage(ctx, snowflake.ID(channelID), chunk)
	})
}

// SendDM delivers text to a user's direct messages. Users who cannot be
// reached fail with transport.ErrDeliveryFailed without further retries.
// Retries resume after the last delivered chunk.
func (t *Transport) SendDM(ctx context.Context, userID uint64, text string) error {
	delivery := NewDelivery(text)

	var channelID snowflake.ID

	_, err := utils.WithRetry(ctx, func() (struct{}, error) {
		if channelID == 0 {
			channel, err := t.client.Rest().CreateDMChannel(snowflake.ID(userID), rest.WithCtx(ctx))
			if err != nil {
				return struct{}{}, classifyDeliveryError(err)
			}

			channelID = channel.ID()
		}

		return struct{}{}, classifyDeliveryError(delivery.Resume(func(chunk string) error {
			return t.createMessage(ctx, channelID, chunk)
		}))
	}, t.retry)
	if err != nil {
		if errors.Is(err, transport.ErrDeliveryFailed) {
			return err
		}

		return fmt.Errorf("%w: %w", transport.ErrDeliveryFailed, err)
	}

	return nil
}

func (t *Transport) createMessage(ctx context.Context, channelID snowflake.ID, chunk string) error {
	_, err := t.client.Rest().CreateMessage(channelID,
		discord.NewMessageCreateBuilder().SetContent(chunk).Build(),
		rest.WithCtx(ctx))
	if err != nil {
		var restErr *rest.Error
		if errors.As(err, &restErr) {
			t.logger.Error("Failed to create message",
				zap.Uint64("channelID", uint64(channelID)),
				zap.String("message", restErr.Message),
				zap.String("response", string(restErr.RsBody)))
		}

		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// classifyDeliveryError marks client errors as permanent so they are not
// retried. Nil stays nil.
func classifyDeliveryError(err error) error {
	if err == nil {
		return nil
	}

	if status := statusCode(err); status >= 400 && status < 500 && status != http.StatusTooManyRequests {
		return backoff.Permanent(fmt.Errorf("%w: %w", transport.ErrDeliveryFailed, err))
	}

	return err
}

// isMissing reports whether Discord answered that a resource does not exist
// or is not visible to the bot.
func isMissing(err error) bool {
	status := statusCode(err)
	return status == http.StatusNotFound || status == http.StatusForbidden
}

func statusCode(err error) int {
	var restErr *rest.Error
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}

	return 0
}
