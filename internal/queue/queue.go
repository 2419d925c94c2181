package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
	"go.uber.org/zap"
)

// tiers lists priorities in service order.
var tiers = []enum.Priority{enum.PriorityHigh, enum.PriorityMedium, enum.PriorityLow}

// Store holds the FIFO tiers backing a Queue. Pop and Peek return ErrQueueEmpty
// when the given tier has nothing in it.
type Store interface {
	Push(ctx context.Context, priority enum.Priority, r *report.Report) error
	Pop(ctx context.Context, priority enum.Priority) (*report.Report, error)
	Peek(ctx context.Context, priority enum.Priority) (*report.Report, error)
	Len(ctx context.Context, priority enum.Priority) (int, error)
}

// Queue is the triage queue moderators pull reports from. Reports are served
// strictly by tier and in insertion order within a tier.
type Queue struct {
	store  Store
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates a Queue over the given store.
func New(store Store, logger *zap.Logger) *Queue {
	return &Queue{
		store:  store,
		logger: logger.Named("queue"),
	}
}

// AssignPriority derives the tier of a report from its classification.
func AssignPriority(r *report.Report) enum.Priority {
	if _, ok := r.ThreatKind(); ok {
		return enum.PriorityHigh
	}

	if kind, ok := r.ExtremistKind(); ok &&
		(kind == enum.ExtremistKindPropaganda || kind == enum.ExtremistKindViolence) {
		return enum.PriorityMedium
	}

	return enum.PriorityLow
}

// Add stamps the report's priority and appends it to the matching tier.
func (q *Queue) Add(ctx context.Context, r *report.Report) (enum.Priority, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	priority := AssignPriority(r)
	r.Priority = priority

	if err := q.store.Push(ctx, priority, r); err != nil {
		return priority, fmt.Errorf("failed to add report %s: %w", r.ID, err)
	}

	q.logger.Debug("Added report to queue",
		zap.String("reportID", r.ID.String()),
		zap.String("priority", priority.String()))

	return priority, nil
}

// Pop removes and returns the oldest report of the highest non-empty tier.
func (q *Queue) Pop(ctx context.Context) (*report.Report, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, priority := range tiers {
		r, err := q.store.Pop(ctx, priority)
		if errors.Is(err, ErrQueueEmpty) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to pop %s tier: %w", priority, err)
		}

		return r, nil
	}

	return nil, ErrQueueEmpty
}

// Peek returns the report Pop would return without removing it.
func (q *Queue) Peek(ctx context.Context) (*report.Report, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, priority := range tiers {
		r, err := q.store.Peek(ctx, priority)
		if errors.Is(err, ErrQueueEmpty) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to peek %s tier: %w", priority, err)
		}

		return r, nil
	}

	return nil, ErrQueueEmpty
}

// Size returns the number of queued reports across all tiers.
func (q *Queue) Size(ctx context.Context) (int, error) {
	counts, err := q.Counts(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	return total, nil
}

// Counts returns the number of queued reports per tier.
func (q *Queue) Counts(ctx context.Context) (map[enum.Priority]int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	counts := make(map[enum.Priority]int, len(tiers))

	for _, priority := range tiers {
		n, err := q.store.Len(ctx, priority)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s tier: %w", priority, err)
		}

		counts[priority] = n
	}

	return counts, nil
}
