package setup

import (
	"testing"

	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStores(t *testing.T) {
	t.Parallel()

	app := &App{Config: &config.Config{Common: config.CommonConfig{
		Storage: config.Storage{
			QueueBackend:   config.BackendMemory,
			HistoryBackend: config.BackendMemory,
			AuditLog:       true,
		},
	}}}

	qs, err := app.QueueStore()
	require.NoError(t, err)
	assert.IsType(t, &queue.MemoryStore{}, qs)

	hs, err := app.HistoryStore()
	require.NoError(t, err)
	assert.IsType(t, &history.MemoryStore{}, hs)

	// Without a database connection the audit log stays off
	assert.Nil(t, app.AuditLog())
}

func TestServiceLogDirs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "logs/bot_logs", ServiceBot.LogDir())
	assert.Equal(t, "logs/db_logs", ServiceDB.LogDir())
	assert.Equal(t, "logs/queue_logs", ServiceQueue.LogDir())
}
