package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalyx/warden/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botTOML = `version = 1
session_timeout = 15
request_timeout = 2000
dm_retries = 4

[discord]
token = "secret"
mod_channel_id = 900
group_channel_id = 901
moderator_ids = [42, 43]
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "common.toml", `version = 1
[storage]
queue_backend = "redis"
history_backend = "postgres"
audit_log = true

[gemini_ai]
model = "gemini-2.0-flash"
max_concurrent = 2
`)
	writeConfig(t, dir, "bot.toml", botTOML)

	cfg, used, err := config.LoadFrom([]string{filepath.Join(dir, "missing"), dir})
	require.NoError(t, err)

	assert.Equal(t, dir, used)
	assert.Equal(t, "redis", cfg.Common.Storage.QueueBackend)
	assert.True(t, cfg.Common.Storage.NeedsDatabase())
	assert.True(t, cfg.Common.Storage.NeedsRedis())
	assert.Equal(t, int64(2), cfg.Common.GeminiAI.MaxConcurrent)
	assert.Equal(t, []uint64{42, 43}, cfg.Bot.Discord.ModeratorIDs)
	assert.Equal(t, uint64(901), cfg.Bot.Discord.GroupChannelID)
	assert.Equal(t, uint64(4), cfg.Bot.DMRetries)
	assert.Equal(t, "15m0s", cfg.Bot.SessionTimeoutDuration().String())
	assert.Equal(t, "2s", cfg.Bot.RequestTimeoutDuration().String())
}

func TestLoadFromShippedConfig(t *testing.T) {
	t.Parallel()

	cfg, _, err := config.LoadFrom([]string{filepath.Join("..", "..", "..", "config")})
	require.NoError(t, err)

	assert.Equal(t, config.CurrentCommonVersion, cfg.Common.Version)
	assert.Equal(t, config.CurrentBotVersion, cfg.Bot.Version)
	assert.Equal(t, "info", cfg.Common.Debug.LogLevel)
	assert.Equal(t, config.BackendRedis, cfg.Common.Storage.QueueBackend)
	assert.Equal(t, config.BackendPostgres, cfg.Common.Storage.HistoryBackend)
	assert.Equal(t, uint64(3), cfg.Bot.DMRetries)
	assert.Equal(t, "30m0s", cfg.Bot.SessionTimeoutDuration().String())
}

func TestLoadFromDefaultsBackends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "common.toml", "version = 1\n")
	writeConfig(t, dir, "bot.toml", botTOML)

	cfg, _, err := config.LoadFrom([]string{dir})
	require.NoError(t, err)

	assert.Equal(t, config.BackendMemory, cfg.Common.Storage.QueueBackend)
	assert.Equal(t, config.BackendMemory, cfg.Common.Storage.HistoryBackend)
	assert.False(t, cfg.Common.Storage.NeedsDatabase())
	assert.False(t, cfg.Common.Storage.NeedsRedis())
}

func TestLoadFromErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		common string
		bot    string
		want   error
	}{
		{
			name: "missing file",
			bot:  botTOML,
			want: config.ErrConfigFileNotFound,
		},
		{
			name:   "missing version",
			common: "[debug]\nlog_level = \"info\"\n",
			bot:    botTOML,
			want:   config.ErrConfigVersionMissing,
		},
		{
			name:   "version mismatch",
			common: "version = 1\n",
			bot:    "version = 7\n",
			want:   config.ErrConfigVersionMismatch,
		},
		{
			name:   "unknown backend",
			common: "version = 1\n[storage]\nqueue_backend = \"postgres\"\n",
			bot:    botTOML,
			want:   config.ErrInvalidBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.common != "" {
				writeConfig(t, dir, "common.toml", tt.common)
			}

			writeConfig(t, dir, "bot.toml", tt.bot)

			_, _, err := config.LoadFrom([]string{dir})
			require.ErrorIs(t, err, tt.want)
		})
	}
}
