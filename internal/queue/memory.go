package queue

import (
	"context"
	"sync"

	"github.com/robalyx/warden/internal/report"
	"github.com/robalyx/warden/internal/report/enum"
)

// MemoryStore keeps each tier in a slice. Reports are lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	tiers map[enum.Priority][]*report.Report
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tiers: make(map[enum.Priority][]*report.Report),
	}
}

func (s *MemoryStore) Push(_ context.Context, priority enum.Priority, r *report.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tiers[priority] = append(s.tiers[priority], r)

	return nil
}

func (s *MemoryStore) Pop(_ context.Context, priority enum.Priority) (*report.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tier := s.tiers[priority]
	if len(tier) == 0 {
		return nil, ErrQueueEmpty
	}

	r := tier[0]
	tier[0] = nil
	s.tiers[priority] = tier[1:]

	return r, nil
}

func (s *MemoryStore) Peek(_ context.Context, priority enum.Priority) (*report.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tier := s.tiers[priority]
	if len(tier) == 0 {
		return nil, ErrQueueEmpty
	}

	return tier[0], nil
}

func (s *MemoryStore) Len(_ context.Context, priority enum.Priority) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tiers[priority]), nil
}
