package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robalyx/warden/internal/bot"
	"github.com/robalyx/warden/internal/classifier"
	"github.com/robalyx/warden/internal/discord"
	"github.com/robalyx/warden/internal/history"
	"github.com/robalyx/warden/internal/metrics"
	"github.com/robalyx/warden/internal/moderation"
	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/setup"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "bot",
		Usage: "Run the report intake and triage bot",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return runBot(ctx)
		},
	}

	return app.Run(context.Background(), os.Args)
}

func runBot(ctx context.Context) error {
	app, err := setup.InitializeApp(ctx, setup.ServiceBot)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		app.Cleanup(cleanupCtx)
	}()

	cfg := app.Config
	logger := app.Logger

	queueStore, err := app.QueueStore()
	if err != nil {
		return err
	}

	historyStore, err := app.HistoryStore()
	if err != nil {
		return err
	}

	if err := app.RedisManager.Ping(ctx); err != nil {
		return err
	}

	gateway, err := discord.NewGateway(cfg.Bot.Discord.Token, logger)
	if err != nil {
		return err
	}

	tr := discord.NewTransport(gateway.Client(), cfg.Bot.DMRetries, logger)
	q := queue.New(queueStore, logger)
	h := history.New(historyStore, logger)
	cl := classifier.NewGemini(app.GenAI, cfg.Common.GeminiAI.Model, cfg.Common.GeminiAI.MaxConcurrent, logger)

	mod := moderation.New(q, h, tr, app.AuditLog(), app.Metrics, moderation.Config{
		ModChannelID:   cfg.Bot.Discord.ModChannelID,
		GroupChannelID: cfg.Bot.Discord.GroupChannelID,
	}, logger)

	orchestrator := bot.New(tr, cl, q, mod, app.Metrics, bot.Config{
		ModChannelID:   cfg.Bot.Discord.ModChannelID,
		GroupChannelID: cfg.Bot.Discord.GroupChannelID,
		Moderators:     cfg.Bot.Discord.ModeratorIDs,
		SessionTimeout: cfg.Bot.SessionTimeoutDuration(),
		RequestTimeout: cfg.Bot.RequestTimeoutDuration(),
	}, logger)
	defer orchestrator.Close()

	gateway.SetDispatcher(orchestrator)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Common.Metrics.Enabled {
		interval := time.Duration(max(cfg.Common.Metrics.Interval, 1)) * time.Second
		app.Metrics.StartCollector(ctx, metrics.StatsSource{
			QueueCounts: func(ctx context.Context) (map[string]int, error) {
				counts, err := q.Counts(ctx)
				if err != nil {
					return nil, err
				}

				byName := make(map[string]int, len(counts))
				for priority, n := range counts {
					byName[priority.String()] = n
				}

				return byName, nil
			},
			ActiveSessions: orchestrator.ActiveSessions,
		}, interval, logger.Named("metrics"))
	}

	if err := gateway.Open(ctx); err != nil {
		return err
	}

	logger.Info("Bot has been started",
		zap.String("queueBackend", cfg.Common.Storage.QueueBackend),
		zap.String("historyBackend", cfg.Common.Storage.HistoryBackend),
		zap.Int("moderators", len(cfg.Bot.Discord.ModeratorIDs)))
	log.Println("Bot has been started. Waiting for interrupt signal to gracefully shutdown...")

	<-ctx.Done()

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop receiving events before draining in-flight messages
	gateway.Close(closeCtx)
	logger.Info("Bot is shutting down")

	return nil
}
