// Package transporttest provides an in-memory transport for tests.
package transporttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/robalyx/warden/internal/transport"
)

// Sent is one recorded outbound message.
type Sent struct {
	ChannelID uint64
	UserID    uint64
	Text      string
}

// Transport records outbound messages and serves lookups from fixtures.
type Transport struct {
	mu       sync.Mutex
	guilds   map[uint64]struct{}
	channels map[uint64]uint64
	messages map[uint64]*transport.Message
	blocked  map[uint64]struct{}
	sent     []Sent
	dms      []Sent
}

// New creates an empty transport.
func New() *Transport {
	return &Transport{
		guilds:   make(map[uint64]struct{}),
		channels: make(map[uint64]uint64),
		messages: make(map[uint64]*transport.Message),
		blocked:  make(map[uint64]struct{}),
	}
}

// AddMessage registers a message along with its guild and channel.
func (t *Transport) AddMessage(msg *transport.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.guilds[msg.GuildID] = struct{}{}
	t.channels[msg.ChannelID] = msg.GuildID
	t.messages[msg.ID] = msg
}

// AddGuild registers a guild without any channels.
func (t *Transport) AddGuild(guildID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.guilds[guildID] = struct{}{}
}

// AddChannel registers a channel without any messages.
func (t *Transport) AddChannel(guildID, channelID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.guilds[guildID] = struct{}{}
	t.channels[channelID] = guildID
}

// BlockDMs makes every direct message to the user fail.
func (t *Transport) BlockDMs(userID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.blocked[userID] = struct{}{}
}

func (t *Transport) ResolveGuild(_ context.Context, guildID uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.guilds[guildID]; !ok {
		return transport.ErrGuildNotFound
	}

	return nil
}

func (t *Transport) ResolveChannel(_ context.Context, guildID, channelID uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if owner, ok := t.channels[channelID]; !ok || owner != guildID {
		return transport.ErrChannelNotFound
	}

	return nil
}

func (t *Transport) FetchMessage(_ context.Context, channelID, messageID uint64) (*transport.Message, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg, ok := t.messages[messageID]
	if !ok || msg.ChannelID != channelID {
		return nil, transport.ErrMessageNotFound
	}

	copied := *msg

	return &copied, nil
}

func (t *Transport) Send(_ context.Context, channelID uint64, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sent = append(t.sent, Sent{ChannelID: channelID, Text: text})

	return nil
}

func (t *Transport) SendDM(_ context.Context, userID uint64, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.blocked[userID]; ok {
		return fmt.Errorf("%w: user %d has DMs closed", transport.ErrDeliveryFailed, userID)
	}

	t.dms = append(t.dms, Sent{UserID: userID, Text: text})

	return nil
}

// SentTo returns the texts posted to a channel in order.
func (t *Transport) SentTo(channelID uint64) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []string

	for _, s := range t.sent {
		if s.ChannelID == channelID {
			out = append(out, s.Text)
		}
	}

	return out
}

// DMsTo returns the texts delivered to a user in order.
func (t *Transport) DMsTo(userID uint64) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []string

	for _, s := range t.dms {
		if s.UserID == userID {
			out = append(out, s.Text)
		}
	}

	return out
}

// DMCount returns the number of delivered direct messages.
func (t *Transport) DMCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.dms)
}
