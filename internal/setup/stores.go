package setup

import (
	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/moderation"
	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/redis"
	"github.com/robalyx/warden/internal/setup/config"
)

// QueueStore returns the tier storage selected by storage.queue_backend.
func (s *App) QueueStore() (queue.Store, error) {
	switch s.Config.Common.Storage.QueueBackend {
	case config.BackendRedis:
		client, err := s.RedisManager.GetClient(redis.QueueDBIndex)
		if err != nil {
			return nil, err
		}

		return queue.NewRedisStore(client), nil
	default:
		return queue.NewMemoryStore(), nil
	}
}

// HistoryStore returns the ledger storage selected by storage.history_backend.
func (s *App) HistoryStore() (history.Store, error) {
	switch s.Config.Common.Storage.HistoryBackend {
	case config.BackendRedis:
		client, err := s.RedisManager.GetClient(redis.HistoryDBIndex)
		if err != nil {
			return nil, err
		}

		return history.NewRedisStore(client), nil
	case config.BackendPostgres:
		return history.NewPostgresStore(s.DB.Model().Escalation()), nil
	default:
		return history.NewMemoryStore(), nil
	}
}

// AuditLog returns the decision log, or nil when storage.audit_log is off.
func (s *App) AuditLog() moderation.AuditLog {
	if !s.Config.Common.Storage.AuditLog || s.DB == nil {
		return nil
	}

	return s.DB.Model().Decision()
}
