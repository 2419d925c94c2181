package telemetry

import (
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
)

// SentryCore implements zapcore.Core to forward errors to Sentry.
type SentryCore struct {
	zapcore.LevelEnabler
	fields []zapcore.Field
}

// NewSentryCore creates a core forwarding entries to the current Sentry hub.
func NewSentryCore(enab zapcore.LevelEnabler) *SentryCore {
	return &SentryCore{LevelEnabler: enab}
}

func (c *SentryCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)

	return &clone
}

func (c *SentryCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// Write captures the entry as a Sentry exception event.
func (c *SentryCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return nil
	}

	event, extras := buildEvent(ent, append(append([]zapcore.Field(nil), c.fields...), fields...))

	hub.WithScope(func(scope *sentry.Scope) {
		for key, value := range extras {
			scope.SetExtra(key, value)
		}

		if ent.LoggerName != "" {
			scope.SetTag("logger", ent.LoggerName)
		}

		hub.CaptureEvent(event)
	})

	return nil
}

func (c *SentryCore) Sync() error {
	return nil
}

// buildEvent converts a log entry into a Sentry event. Error fields are
// folded into the exception value and every other field becomes an extra.
func buildEvent(ent zapcore.Entry, fields []zapcore.Field) (*sentry.Event, map[string]any) {
	enc := zapcore.NewMapObjectEncoder()

	var errorValues []string

	for _, field := range fields {
		if field.Type == zapcore.ErrorType {
			if err, ok := field.Interface.(error); ok {
				errorValues = append(errorValues, err.Error())
				continue
			}
		}

		field.AddTo(enc)
	}

	value := ent.Message
	if len(errorValues) > 0 {
		value = fmt.Sprintf("%s: %s", ent.Message, strings.Join(errorValues, "; "))
	}

	module, function := splitCaller(ent.Caller.Function)

	event := sentry.NewEvent()
	event.Level = sentryLevel(ent.Level)
	event.Message = ent.Message
	event.Exception = []sentry.Exception{{
		Value:      value,
		Type:       function,
		Module:     module,
		Stacktrace: sentry.NewStacktrace(),
	}}

	return event, enc.Fields
}

func sentryLevel(level zapcore.Level) sentry.Level {
	switch level {
	case zapcore.DebugLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelError
	}
}

// splitCaller splits "github.com/a/b/pkg.(*T).Method" into its package path
// and function name.
func splitCaller(function string) (string, string) {
	if function == "" {
		return "", ""
	}

	pkgStart := strings.LastIndexByte(function, '/') + 1

	dot := strings.IndexByte(function[pkgStart:], '.')
	if dot < 0 {
		return "", function
	}

	return function[:pkgStart+dot], function[pkgStart+dot+1:]
}
