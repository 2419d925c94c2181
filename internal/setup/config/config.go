package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
	ErrInvalidBackend        = errors.New("invalid storage backend")
)

// RepositoryVersion is the repository version tag for config file references.
const RepositoryVersion = "v0.1.0"

// Current version of the config file.
const (
	CurrentCommonVersion = 1
	CurrentBotVersion    = 1
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config represents the entire application configuration.
type Config struct {
	Common CommonConfig `koanf:"common"`
	Bot    BotConfig    `koanf:"bot"`
}

// CommonConfig contains configuration shared by every command.
type CommonConfig struct {
	// Version of the common config.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	Retry      Retry      `koanf:"retry"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	GeminiAI   GeminiAI   `koanf:"gemini_ai"`
	Sentry     Sentry     `koanf:"sentry"`
	Uptrace    Uptrace    `koanf:"uptrace"`
	Metrics    Metrics    `koanf:"metrics"`
	Storage    Storage    `koanf:"storage"`
}

// BotConfig contains Discord bot specific configuration.
type BotConfig struct {
	// Version of the bot config.
	Version int `koanf:"version"`
	// Idle intake sessions are discarded after this many minutes.
	SessionTimeout int `koanf:"session_timeout"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
	// Attempts made for each direct message before giving up.
	DMRetries uint64 `koanf:"dm_retries"`
	// Discord configuration.
	Discord Discord `koanf:"discord"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log sessions to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
	// Maximum lines per log file.
	MaxLogLines int `koanf:"max_log_lines"`
	// Enable pprof debugging.
	EnablePprof bool `koanf:"enable_pprof"`
	// pprof server port.
	PprofPort int `koanf:"pprof_port"`
}

// Retry contains retry configuration for database writes.
type Retry struct {
	// Maximum retry attempts.
	MaxRetries uint64 `koanf:"max_retries"`
	// Initial retry delay in milliseconds.
	Delay int `koanf:"delay"`
	// Maximum retry delay in milliseconds.
	MaxDelay int `koanf:"max_delay"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	// Disable client-side caching for servers without RESP3 tracking.
	DisableCache bool `koanf:"disable_cache"`
}

// GeminiAI contains the classifier's model configuration.
type GeminiAI struct {
	// API key for authentication.
	APIKey string `koanf:"api_key"`
	// Model used to classify group channel messages.
	Model string `koanf:"model"`
	// Maximum concurrent classification requests.
	MaxConcurrent int64 `koanf:"max_concurrent"`
}

// Sentry contains error reporting configuration. An empty DSN disables it.
type Sentry struct {
	DSN         string `koanf:"dsn"`
	Environment string `koanf:"environment"`
}

// Uptrace contains tracing configuration. An empty DSN disables it.
type Uptrace struct {
	DSN string `koanf:"dsn"`
}

// Metrics contains the Prometheus endpoint configuration.
type Metrics struct {
	Enabled bool `koanf:"enabled"`
	Port    int  `koanf:"port"`
	// Seconds between queue depth samples.
	Interval int `koanf:"interval"`
}

// Storage selects where the queue and ledgers live.
type Storage struct {
	// Queue backend (memory or redis).
	QueueBackend string `koanf:"queue_backend"`
	// Ledger backend (memory, redis or postgres).
	HistoryBackend string `koanf:"history_backend"`
	// Record every verdict in PostgreSQL.
	AuditLog bool `koanf:"audit_log"`
}

// NeedsDatabase reports whether any configured component uses PostgreSQL.
func (s *Storage) NeedsDatabase() bool {
	return s.HistoryBackend == BackendPostgres || s.AuditLog
}

// NeedsRedis reports whether any configured component uses Redis.
func (s *Storage) NeedsRedis() bool {
	return s.QueueBackend == BackendRedis || s.HistoryBackend == BackendRedis
}

// Discord contains Discord bot configuration.
type Discord struct {
	// Discord bot token for authentication.
	Token string `koanf:"token"`
	// Guild the bot moderates.
	GuildID uint64 `koanf:"guild_id"`
	// Channel receiving new report notices and review summaries.
	ModChannelID uint64 `koanf:"mod_channel_id"`
	// Channel whose messages are classified and which receives ban notices.
	GroupChannelID uint64 `koanf:"group_channel_id"`
	// Users allowed to enable mod mode.
	ModeratorIDs []uint64 `koanf:"moderator_ids"`
}

// SessionTimeoutDuration returns the idle intake session lifetime.
func (c *BotConfig) SessionTimeoutDuration() time.Duration {
	return time.Duration(c.SessionTimeout) * time.Minute
}

// RequestTimeoutDuration returns the per-message handling deadline.
func (c *BotConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

// LoadConfig loads the configuration from the first config path holding
// each file. Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadFrom([]string{
		".warden",
		homeDir + "/.warden/config",
		"/etc/warden/config",
		"/app/config",
		"config",
		".",
	})
}

// LoadFrom loads common.toml and bot.toml from the given search paths.
func LoadFrom(configPaths []string) (*Config, string, error) {
	k := koanf.New(".")

	var usedConfigPath string

	for _, configName := range []string{"common", "bot"} {
		configLoaded := false

		for _, path := range configPaths {
			configPath := fmt.Sprintf("%s/%s.toml", path, configName)

			section := koanf.New(".")
			if err := section.Load(file.Provider(configPath), toml.Parser()); err == nil {
				if err := k.MergeAt(section, configName); err != nil {
					return nil, "", fmt.Errorf("error merging %s.toml: %w", configName, err)
				}

				configLoaded = true

				if usedConfigPath == "" {
					usedConfigPath = path
				}

				break
			}
		}

		if !configLoaded {
			return nil, "", fmt.Errorf("%w: %s.toml", ErrConfigFileNotFound, configName)
		}
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkConfigVersion("common", config.Common.Version, CurrentCommonVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("bot", config.Bot.Version, CurrentBotVersion); err != nil {
		return nil, "", err
	}

	if err := config.Common.Storage.validate(); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

func (s *Storage) validate() error {
	if s.QueueBackend == "" {
		s.QueueBackend = BackendMemory
	}

	if s.HistoryBackend == "" {
		s.HistoryBackend = BackendMemory
	}

	switch s.QueueBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: queue_backend %q", ErrInvalidBackend, s.QueueBackend)
	}

	switch s.HistoryBackend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("%w: history_backend %q", ErrInvalidBackend, s.HistoryBackend)
	}

	return nil
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(name string, current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: %s.toml", ErrConfigVersionMissing, name)
	}

	if current != expected {
		return fmt.Errorf(
			"%w: %s.toml (got: %d, expected: %d)\n"+
				"Please update your config file from: https://github.com/robalyx/warden/tree/%s/config/%s.toml",
			ErrConfigVersionMismatch,
			name,
			current,
			expected,
			RepositoryVersion,
			name,
		)
	}

	return nil
}
