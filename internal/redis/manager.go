// Package redis hands out one rueidis client per logical database.
package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/rueidis"
	"github.com/robalyx/warden/internal/setup/config"
	"go.uber.org/zap"
)

const (
	// QueueDBIndex holds the triage queue tiers.
	QueueDBIndex = 0

	// HistoryDBIndex holds the false report and violation ledgers.
	HistoryDBIndex = 1
)

// Manager lazily connects one client per database index and shares it
// between callers.
type Manager struct {
	clients map[int]rueidis.Client
	option  rueidis.ClientOption
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewManager creates a manager for the configured server.
func NewManager(cfg *config.Redis, logger *zap.Logger) *Manager {
	return &Manager{
		clients: make(map[int]rueidis.Client),
		option: rueidis.ClientOption{
			InitAddress:  []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
			Username:     cfg.Username,
			Password:     cfg.Password,
			ClientName:   "warden",
			DisableCache: cfg.DisableCache,
		},
		logger: logger.Named("redis"),
	}
}

// GetClient returns the client for a database index, connecting on first use.
func (m *Manager) GetClient(dbIndex int) (rueidis.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if client, exists := m.clients[dbIndex]; exists {
		return client, nil
	}

	option := m.option
	option.SelectDB = dbIndex

	client, err := rueidis.NewClient(option)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client for DB %d: %w", dbIndex, err)
	}

	m.clients[dbIndex] = client
	m.logger.Info("Created new Redis client", zap.Int("dbIndex", dbIndex))

	return client, nil
}

// Ping checks every connected client.
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for dbIndex, client := range m.clients {
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			return fmt.Errorf("redis DB %d unreachable: %w", dbIndex, err)
		}
	}

	return nil
}

// Close shuts down every client. It is safe to call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for dbIndex, client := range m.clients {
		client.Close()
		delete(m.clients, dbIndex)
		m.logger.Info("Closed Redis client", zap.Int("dbIndex", dbIndex))
	}
}
