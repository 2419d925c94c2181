package discord

import (
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is Discord's limit on message content, in characters.
const MaxMessageLength = 2000

// SplitMessage breaks text into pieces no longer than limit characters,
// preferring to cut at line breaks.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string

	for utf8.RuneCountInString(text) > limit {
		runes := []rune(text)
		cut := limit

		if idx := strings.LastIndex(string(runes[:limit]), "\n"); idx > 0 {
			cut = utf8.RuneCountInString(string(runes[:limit])[:idx])
		}

		chunks = append(chunks, string(runes[:cut]))
		text = strings.TrimPrefix(string(runes[cut:]), "\n")
	}

	if text != "" {
		chunks = append(chunks, text)
	}

	return chunks
}

// Delivery tracks how far a split message got, so a retried send resumes at
// the first chunk that was not delivered.
type Delivery struct {
	chunks []string
	sent   int
}

// NewDelivery splits text into Discord-sized chunks.
func NewDelivery(text string) *Delivery {
	return &Delivery{chunks: SplitMessage(text, MaxMessageLength)}
}

// Resume sends the remaining chunks in order and stops at the first failure.
func (d *Delivery) Resume(send func(chunk string) error) error {
	for d.sent < len(d.chunks) {
		if err := send(d.chunks[d.sent]); err != nil {
			return err
		}

		d.sent++
	}

	return nil
}

// Sent returns the number of chunks delivered so far.
func (d *Delivery) Sent() int {
	return d.sent
}
