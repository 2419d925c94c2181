// Package metrics exposes Prometheus counters and gauges for the bot.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "warden"

// Metrics holds every collector on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	// reports added to the queue by source and priority tier
	ReportsEnqueued *prometheus.CounterVec
	// intake conversations by outcome (filed, cancelled, expired)
	IntakeSessions *prometheus.CounterVec
	// moderator decisions by severity
	Decisions *prometheus.CounterVec
	// classifier calls by outcome (clean, flagged, error)
	ClassifierCalls *prometheus.CounterVec
	// direct messages that could not be delivered
	DeliveryFailures prometheus.Counter
	// reports waiting per priority tier
	QueueDepth *prometheus.GaugeVec
	// intake conversations currently open
	ActiveSessions prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ReportsEnqueued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_enqueued_total",
				Help:      "Reports added to the triage queue",
			},
			[]string{"source", "priority"},
		),
		IntakeSessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "intake_sessions_total",
				Help:      "Finished intake conversations",
			},
			[]string{"outcome"},
		),
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Moderator decisions",
			},
			[]string{"severity"},
		),
		ClassifierCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "classifier_calls_total",
				Help:      "Content classifier calls",
			},
			[]string{"outcome"},
		),
		DeliveryFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delivery_failures_total",
				Help:      "Direct messages that could not be delivered",
			},
		),
		QueueDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "queue_depth",
				Help:      "Reports waiting in each priority tier",
			},
			[]string{"priority"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_intake_sessions",
				Help:      "Intake conversations currently open",
			},
		),
	}

	m.registry.MustRegister(
		m.ReportsEnqueued,
		m.IntakeSessions,
		m.Decisions,
		m.ClassifierCalls,
		m.DeliveryFailures,
		m.QueueDepth,
		m.ActiveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve runs the /metrics endpoint until the context is cancelled.
func (m *Metrics) Serve(ctx context.Context, port int, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to shut down metrics server", zap.Error(err))
		}
	}()

	logger.Info("Metrics server listening", zap.Int("port", port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server failed: %w", err)
	}

	return nil
}
