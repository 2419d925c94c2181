package telemetry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalyx/warden/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRotateSessions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"2024-01-01_00-00-00", "2024-01-02_00-00-00", "2024-01-03_00-00-00"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	require.NoError(t, rotateSessions(dir, 1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-01-03_00-00-00", entries[0].Name())
}

func TestGetLoggers(t *testing.T) {
	t.Parallel()

	m := NewManager(t.TempDir(), &config.Debug{LogLevel: "info", MaxLogsToKeep: 3, MaxLogLines: 100})

	mainLogger, dbLogger, err := m.GetLoggers()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	mainLogger.Named("bot").Info("Started")
	dbLogger.Debug("Filtered")
	require.NoError(t, mainLogger.Sync())

	data, err := os.ReadFile(filepath.Join(m.SessionDir(), "main.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Started")
	assert.Contains(t, string(data), m.InstanceID())

	data, err = os.ReadFile(filepath.Join(m.SessionDir(), "database.log"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestGetLoggersRejectsLevel(t *testing.T) {
	t.Parallel()

	m := NewManager(t.TempDir(), &config.Debug{LogLevel: "loud"})

	_, _, err := m.GetLoggers()
	require.Error(t, err)
}

func TestBuildEvent(t *testing.T) {
	t.Parallel()

	ent := zapcore.Entry{
		Level:   zapcore.ErrorLevel,
		Message: "Failed to deliver direct message",
		Caller: zapcore.EntryCaller{
			Defined:  true,
			Function: "github.com/robalyx/warden/internal/moderation.(*Session).sendDM",
		},
	}

	event, extras := buildEvent(ent, []zapcore.Field{
		{Key: "error", Type: zapcore.ErrorType, Interface: errors.New("dms closed")},
		{Key: "userID", Type: zapcore.Uint64Type, Integer: 7},
	})

	require.Len(t, event.Exception, 1)
	assert.Equal(t, "Failed to deliver direct message: dms closed", event.Exception[0].Value)
	assert.Equal(t, "github.com/robalyx/warden/internal/moderation", event.Exception[0].Module)
	assert.Equal(t, "(*Session).sendDM", event.Exception[0].Type)
	assert.Equal(t, map[string]any{"userID": uint64(7)}, extras)
}

func TestErrorCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "discord", errorCategory(zapcore.Entry{LoggerName: "discord"}))
	assert.Equal(t, "moderation", errorCategory(zapcore.Entry{
		Caller: zapcore.EntryCaller{Function: "github.com/robalyx/warden/internal/moderation.New"},
	}))
	assert.Equal(t, "application", errorCategory(zapcore.Entry{}))
}
