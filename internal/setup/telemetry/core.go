package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

// TraceCore records error entries as OpenTelemetry spans so they show up
// next to the database traces.
type TraceCore struct {
	zapcore.LevelEnabler
	tracer trace.Tracer
	fields []zapcore.Field
}

// NewTraceCore creates a core recording spans through the global tracer.
func NewTraceCore(enab zapcore.LevelEnabler) *TraceCore {
	return &TraceCore{
		LevelEnabler: enab,
		tracer:       otel.Tracer("github.com/robalyx/warden/logs"),
	}
}

func (c *TraceCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)

	return &clone
}

func (c *TraceCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

func (c *TraceCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	_, span := c.tracer.Start(context.Background(), "error."+errorCategory(ent))
	defer span.End()

	enc := zapcore.NewMapObjectEncoder()
	for _, field := range c.fields {
		field.AddTo(enc)
	}

	for _, field := range fields {
		field.AddTo(enc)
	}

	attrs := make([]attribute.KeyValue, 0, len(enc.Fields)+4)
	attrs = append(attrs,
		attribute.String("log.message", ent.Message),
		attribute.String("log.level", ent.Level.String()),
		attribute.String("log.logger", ent.LoggerName),
		attribute.String("code.caller", ent.Caller.TrimmedPath()),
	)

	for key, value := range enc.Fields {
		attrs = append(attrs, attribute.String("log.field."+key, stringify(value)))
	}

	span.SetAttributes(attrs...)

	return nil
}

func (c *TraceCore) Sync() error {
	return nil
}

// errorCategory groups entries by the component that logged them.
func errorCategory(ent zapcore.Entry) string {
	for _, category := range []string{"database", "redis", "discord", "classifier", "moderation", "intake", "bot"} {
		if strings.Contains(ent.LoggerName, category) || strings.Contains(ent.Caller.Function, category) {
			return category
		}
	}

	return "application"
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}
