package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/rueidis"
	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
)

// KeyPrefix namespaces the tier lists in Redis.
const KeyPrefix = "warden:queue:"

// RedisStore keeps each tier in a Redis list so queued reports survive restarts.
type RedisStore struct {
	client rueidis.Client
}

// NewRedisStore creates a store over an existing Redis client.
func NewRedisStore(client rueidis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// TierKey returns the list key of a tier.
func TierKey(priority enum.Priority) string {
	return KeyPrefix + strings.ToLower(priority.String())
}

func (s *RedisStore) Push(ctx context.Context, priority enum.Priority, r *report.Report) error {
	data, err := report.Encode(r)
	if err != nil {
		return err
	}

	cmd := s.client.B().Rpush().Key(TierKey(priority)).Element(string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to push report: %w", err)
	}

	return nil
}

func (s *RedisStore) Pop(ctx context.Context, priority enum.Priority) (*report.Report, error) {
	data, err := s.client.Do(ctx, s.client.B().Lpop().Key(TierKey(priority)).Build()).AsBytes()
	if rueidis.IsRedisNil(err) {
		return nil, ErrQueueEmpty
	}

	if err != nil {
		return nil, fmt.Errorf("failed to pop report: %w", err)
	}

	return report.Decode(data)
}

func (s *RedisStore) Peek(ctx context.Context, priority enum.Priority) (*report.Report, error) {
	data, err := s.client.Do(ctx, s.client.B().Lindex().Key(TierKey(priority)).Index(0).Build()).AsBytes()
	if rueidis.IsRedisNil(err) {
		return nil, ErrQueueEmpty
	}

	if err != nil {
		return nil, fmt.Errorf("failed to peek report: %w", err)
	}

	return report.Decode(data)
}

func (s *RedisStore) Len(ctx context.Context, priority enum.Priority) (int, error) {
	n, err := s.client.Do(ctx, s.client.B().Llen().Key(TierKey(priority)).Build()).AsInt64()
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}

	return int(n), nil
}
