package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
)

// KeyPrefix namespaces the ledger lists in Redis.
const KeyPrefix = "warden:history:"

// redisEntry is the stored form of an Entry.
type redisEntry struct {
	ReportID   uuid.UUID     `json:"reportId"`
	UserID     uint64        `json:"userId,string"`
	UserName   string        `json:"userName"`
	Severity   enum.Severity `json:"severity"`
	RecordedAt time.Time     `json:"recordedAt"`
}

// RedisStore keeps each ledger in a Redis list. RPUSH reports the list
// length after the push, which makes append-and-count a single command.
type RedisStore struct {
	client rueidis.Client
}

// NewRedisStore creates a store over an existing Redis client.
func NewRedisStore(client rueidis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// LedgerKey returns the list key of a ledger.
func LedgerKey(kind enum.HistoryKind, key string) string {
	return KeyPrefix + strings.ToLower(kind.String()) + ":" + key
}

func (s *RedisStore) Append(ctx context.Context, kind enum.HistoryKind, key string, entry *Entry) (int, error) {
	data, err := sonic.Marshal(&redisEntry{
		ReportID:   entry.ReportID,
		UserID:     entry.User.ID,
		UserName:   entry.User.Name,
		Severity:   entry.Severity,
		RecordedAt: entry.RecordedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal entry: %w", err)
	}

	cmd := s.client.B().Rpush().Key(LedgerKey(kind, key)).Element(string(data)).Build()

	count, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, fmt.Errorf("failed to append entry: %w", err)
	}

	return int(count), nil
}

func (s *RedisStore) List(ctx context.Context, kind enum.HistoryKind, key string) ([]*Entry, error) {
	cmd := s.client.B().Lrange().Key(LedgerKey(kind, key)).Start(0).Stop(-1).Build()

	items, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entries := make([]*Entry, 0, len(items))

	for _, item := range items {
		var e redisEntry
		if err := sonic.UnmarshalString(item, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
		}

		entries = append(entries, &Entry{
			ReportID:   e.ReportID,
			User:       report.User{ID: e.UserID, Name: e.UserName},
			Severity:   e.Severity,
			RecordedAt: e.RecordedAt,
		})
	}

	return entries, nil
}
