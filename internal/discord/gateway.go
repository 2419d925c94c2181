package discord

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/robalyx/warden/internal/transport"
	"go.uber.org/zap"
)

// Dispatcher receives inbound messages. Dispatch must not block.
type Dispatcher interface {
	Dispatch(in *transport.Inbound)
}

// Gateway owns the Discord client and forwards message events.
type Gateway struct {
	client     bot.Client
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewGateway creates the Discord client. The dispatcher may be attached
// later with SetDispatcher, before Open.
func NewGateway(token string, logger *zap.Logger) (*Gateway, error) {
	g := &Gateway{
		logger: logger.Named("discord_gateway"),
	}

	client, err := disgo.New(token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentDirectMessages,
				gateway.IntentMessageContent,
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds, cache.FlagChannels),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnGuildMessageCreate: g.handleGuildMessage,
			OnDMMessageCreate:    g.handleDMMessage,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord client: %w", err)
	}

	g.client = client

	return g, nil
}

// Client returns the underlying Discord client.
func (g *Gateway) Client() bot.Client {
	return g.client
}

// SetDispatcher attaches the receiver of inbound messages.
func (g *Gateway) SetDispatcher(d Dispatcher) {
	g.dispatcher = d
}

// Open connects to the gateway.
func (g *Gateway) Open(ctx context.Context) error {
	g.logger.Info("Opening gateway")
	return g.client.OpenGateway(ctx)
}

// Close disconnects from the gateway.
func (g *Gateway) Close(ctx context.Context) {
	g.logger.Info("Closing gateway")
	g.client.Close(ctx)
}

func (g *Gateway) handleGuildMessage(event *events.GuildMessageCreate) {
	g.forward(event.Message)
}

func (g *Gateway) handleDMMessage(event *events.DMMessageCreate) {
	g.forward(event.Message)
}

func (g *Gateway) forward(msg discord.Message) {
	if g.dispatcher == nil {
		g.logger.Warn("Dropping message received before dispatcher was attached")
		return
	}

	g.dispatcher.Dispatch(ToInbound(msg))
}

// ToInbound converts a Discord message to the transport-neutral form.
func ToInbound(msg discord.Message) *transport.Inbound {
	in := &transport.Inbound{
		ChannelID:  uint64(msg.ChannelID),
		MessageID:  uint64(msg.ID),
		AuthorID:   uint64(msg.Author.ID),
		AuthorName: msg.Author.Username,
		AuthorBot:  msg.Author.Bot,
		Content:    msg.Content,
	}
	if msg.GuildID != nil {
		in.GuildID = uint64(*msg.GuildID)
	}

	return in
}
