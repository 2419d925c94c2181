package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/robalyx/warden/internal/queue"
	"github.com/robalyx/warden/internal/report/enum"
	"github.com/robalyx/warden/internal/setup"
	"github.com/robalyx/warden/internal/setup/config"
	"github.com/urfave/cli/v3"
)

// ErrNotPersistent is returned when the queue only lives inside the bot.
var ErrNotPersistent = errors.New("queue_backend is memory; only a redis queue can be inspected")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "queue",
		Usage: "Inspect the report triage queue",
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Show the number of reports in each priority tier",
				Action: withQueue(func(ctx context.Context, q *queue.Queue) error {
					counts, err := q.Counts(ctx)
					if err != nil {
						return err
					}

					total := 0
					for _, priority := range enum.PriorityValues() {
						fmt.Printf("%-7s %d\n", priority.String()+":", counts[priority])
						total += counts[priority]
					}

					fmt.Printf("%-7s %d\n", "Total:", total)

					return nil
				}),
			},
			{
				Name:  "peek",
				Usage: "Show the report a moderator would review next",
				Action: withQueue(func(ctx context.Context, q *queue.Queue) error {
					r, err := q.Peek(ctx)
					if errors.Is(err, queue.ErrQueueEmpty) {
						fmt.Println("There are no reports in the queue.")
						return nil
					}

					if err != nil {
						return err
					}

					fmt.Println(r.Render())

					return nil
				}),
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// withQueue opens the configured Redis queue for a command.
func withQueue(fn func(ctx context.Context, q *queue.Queue) error) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) error {
		app, err := setup.InitializeApp(ctx, setup.ServiceQueue)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer app.Cleanup(ctx)

		if app.Config.Common.Storage.QueueBackend != config.BackendRedis {
			return ErrNotPersistent
		}

		store, err := app.QueueStore()
		if err != nil {
			return err
		}

		return fn(ctx, queue.New(store, app.Logger))
	}
}
