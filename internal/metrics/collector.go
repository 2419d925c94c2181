package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StatsSource provides the current values of the gauge metrics.
type StatsSource struct {
	QueueCounts    func(ctx context.Context) (map[string]int, error)
	ActiveSessions func() int
}

// StartCollector refreshes the gauges every interval until the context is
// cancelled.
func (m *Metrics) StartCollector(ctx context.Context, src StatsSource, interval time.Duration, logger *zap.Logger) {
	m.Collect(ctx, src, logger)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Collect(ctx, src, logger)
			}
		}
	}()

	logger.Info("Metrics collector started", zap.Duration("interval", interval))
}

// Collect refreshes the gauges once.
func (m *Metrics) Collect(ctx context.Context, src StatsSource, logger *zap.Logger) {
	if src.QueueCounts != nil {
		counts, err := src.QueueCounts(ctx)
		if err != nil {
			logger.Warn("Failed to collect queue depth", zap.Error(err))
		} else {
			for tier, count := range counts {
				m.QueueDepth.WithLabelValues(tier).Set(float64(count))
			}
		}
	}

	if src.ActiveSessions != nil {
		m.ActiveSessions.Set(float64(src.ActiveSessions()))
	}
}
