// Package transport defines what the report pipeline needs from the chat
// platform it runs on.
package transport

import (
	"context"
	"errors"
)

var (
	// ErrGuildNotFound indicates the bot is not a member of the guild.
	ErrGuildNotFound = errors.New("guild not found")
	// ErrChannelNotFound indicates the channel is gone or belongs to another guild.
	ErrChannelNotFound = errors.New("channel not found")
	// ErrMessageNotFound indicates the message was deleted or never existed.
	ErrMessageNotFound = errors.New("message not found")
	// ErrDeliveryFailed indicates a direct message could not be delivered.
	ErrDeliveryFailed = errors.New("message delivery failed")
)

// Message is a snapshot of a fetched chat message.
type Message struct {
	ID         uint64
	ChannelID  uint64
	GuildID    uint64
	AuthorID   uint64
	AuthorName string
	Content    string
}

// Inbound is a message delivered to the bot by the gateway.
type Inbound struct {
	ChannelID  uint64
	GuildID    uint64
	MessageID  uint64
	AuthorID   uint64
	AuthorName string
	AuthorBot  bool
	Content    string
}

// IsDM reports whether the message arrived in a direct message channel.
func (m *Inbound) IsDM() bool {
	return m.GuildID == 0
}

// Resolver looks up the guild, channel and message a report link points at.
type Resolver interface {
	// ResolveGuild returns ErrGuildNotFound if the bot cannot see the guild.
	ResolveGuild(ctx context.Context, guildID uint64) error
	// ResolveChannel returns ErrChannelNotFound if the channel is not in the guild.
	ResolveChannel(ctx context.Context, guildID, channelID uint64) error
	// FetchMessage returns ErrMessageNotFound if the message does not exist.
	FetchMessage(ctx context.Context, channelID, messageID uint64) (*Message, error)
}

// Sender delivers outbound text.
type Sender interface {
	// Send posts text to a channel, including DM channels.
	Send(ctx context.Context, channelID uint64, text string) error
	// SendDM opens a direct message with the user and posts text there. Failures
	// wrap ErrDeliveryFailed.
	SendDM(ctx context.Context, userID uint64, text string) error
}

// Transport is the full chat platform surface.
type Transport interface {
	Resolver
	Sender
}
