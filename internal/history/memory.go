package history

import (
	"context"
	"slices"
	"sync"

	"github.com/robalyx/warden/internal/report/enum"
)

type ledgerKey struct {
	kind enum.HistoryKind
	key  string
}

// MemoryStore keeps ledgers in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	ledgers map[ledgerKey][]*Entry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledgers: make(map[ledgerKey][]*Entry),
	}
}

func (s *MemoryStore) Append(_ context.Context, kind enum.HistoryKind, key string, entry *Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := ledgerKey{kind: kind, key: key}
	s.ledgers[k] = append(s.ledgers[k], entry)

	return len(s.ledgers[k]), nil
}

func (s *MemoryStore) List(_ context.Context, kind enum.HistoryKind, key string) ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.ledgers[ledgerKey{kind: kind, key: key}]), nil
}
