package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/warden/internal/setup/config"
	"github.com/robalyx/warden/internal/setup/telemetry/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const sessionLayout = "2006-01-02_15-04-05"

// Manager owns the log directory of one program run. Every run writes into
// its own timestamped session directory and old sessions are rotated away.
type Manager struct {
	instanceID    string
	sessionDir    string
	logDir        string
	level         string
	maxLogsToKeep int
	maxLogLines   int
	tracing       bool
	reporting     bool
	rotators      []*logger.LogRotator
}

// Option configures a Manager.
type Option func(*Manager)

// WithTracing forwards error entries to OpenTelemetry as spans.
func WithTracing() Option {
	return func(m *Manager) { m.tracing = true }
}

// WithErrorReporting forwards error entries to Sentry.
func WithErrorReporting() Option {
	return func(m *Manager) { m.reporting = true }
}

// NewManager creates a manager writing under logDir.
func NewManager(logDir string, debugCfg *config.Debug, opts ...Option) *Manager {
	m := &Manager{
		instanceID:    uuid.New().String(),
		logDir:        logDir,
		level:         debugCfg.LogLevel,
		maxLogsToKeep: debugCfg.MaxLogsToKeep,
		maxLogLines:   debugCfg.MaxLogLines,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// InstanceID returns the unique identifier of this program run.
func (m *Manager) InstanceID() string {
	return m.instanceID
}

// SessionDir returns the directory holding this run's log files.
func (m *Manager) SessionDir() string {
	return m.sessionDir
}

// GetLoggers creates the session directory and returns the main and
// database loggers.
func (m *Manager) GetLoggers() (*zap.Logger, *zap.Logger, error) {
	if err := m.setupLogDirectories(); err != nil {
		return nil, nil, err
	}

	mainLogger, err := m.initLogger(filepath.Join(m.sessionDir, "main.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize main logger: %w", err)
	}

	dbLogger, err := m.initLogger(filepath.Join(m.sessionDir, "database.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database logger: %w", err)
	}

	return mainLogger.With(zap.String("instanceID", m.instanceID)), dbLogger, nil
}

// Close closes every log file opened by the manager.
func (m *Manager) Close() error {
	var firstErr error

	for _, rotator := range m.rotators {
		if err := rotator.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	m.rotators = nil

	return firstErr
}

func (m *Manager) setupLogDirectories() error {
	if err := os.MkdirAll(m.logDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	// One slot is kept free for the session about to be created
	if m.maxLogsToKeep > 0 {
		if err := rotateSessions(m.logDir, m.maxLogsToKeep-1); err != nil {
			return fmt.Errorf("failed to rotate log sessions: %w", err)
		}
	}

	m.sessionDir = filepath.Join(m.logDir, time.Now().Format(sessionLayout))
	if err := os.MkdirAll(m.sessionDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	return nil
}

func (m *Manager) initLogger(path string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(m.level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	rotator, err := logger.NewLogRotator(path, m.maxLogLines)
	if err != nil {
		return nil, err
	}

	m.rotators = append(m.rotators, rotator)

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(rotator), level),
	}

	errorsOnly := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	if m.tracing {
		cores = append(cores, NewTraceCore(errorsOnly))
	}

	if m.reporting {
		cores = append(cores, NewSentryCore(errorsOnly))
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// rotateSessions removes the oldest session directories until at most keep
// remain.
func rotateSessions(logDir string, keep int) error {
	sessions, err := filepath.Glob(filepath.Join(logDir, "*"))
	if err != nil {
		return err
	}

	keep = max(keep, 0)
	if len(sessions) <= keep {
		return nil
	}

	// Session names are timestamps, so lexical order is chronological
	sort.Strings(sessions)

	for _, session := range sessions[:len(sessions)-keep] {
		if err := os.RemoveAll(session); err != nil {
			return err
		}
	}

	return nil
}
