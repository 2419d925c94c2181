package discord_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/robalyx/warden/internal/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "short", text: "hello", limit: 10, want: []string{"hello"}},
		{name: "exact", text: "0123456789", limit: 10, want: []string{"0123456789"}},
		{name: "hard cut", text: "0123456789abc", limit: 10, want: []string{"0123456789", "abc"}},
		{name: "line break", text: "first\nsecond line", limit: 10, want: []string{"first", "second lin", "e"}},
		{name: "multibyte", text: "ééééé", limit: 2, want: []string{"éé", "éé", "é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, discord.SplitMessage(tt.text, tt.limit))
		})
	}
}

func TestSplitMessageRespectsLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("Report ID: 1234\nSeverity: 3\n", 200)

	chunks := discord.SplitMessage(text, discord.MaxMessageLength)
	assert.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), discord.MaxMessageLength)
	}
}

func TestDeliveryResumesAfterFailure(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("Report ID: 1234\nSeverity: 3\n", 200)
	want := discord.SplitMessage(text, discord.MaxMessageLength)
	require.Greater(t, len(want), 2)

	errTransient := errors.New("gateway timeout")

	var (
		delivered []string
		calls     int
	)

	send := func(chunk string) error {
		calls++
		if calls == 2 {
			return errTransient
		}

		delivered = append(delivered, chunk)

		return nil
	}

	delivery := discord.NewDelivery(text)

	err := delivery.Resume(send)
	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, delivery.Sent())

	require.NoError(t, delivery.Resume(send))
	assert.Equal(t, want, delivered)
	assert.Equal(t, len(want), delivery.Sent())

	// A finished delivery sends nothing more
	require.NoError(t, delivery.Resume(send))
	assert.Len(t, delivered, len(want))
}
