package bot

import "sync"

// ModeRegistry tracks which moderators have mod mode enabled.
type ModeRegistry struct {
	mu      sync.RWMutex
	enabled map[uint64]struct{}
}

// NewModeRegistry creates an empty registry.
func NewModeRegistry() *ModeRegistry {
	return &ModeRegistry{enabled: make(map[uint64]struct{})}
}

func (r *ModeRegistry) Enable(userID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enabled[userID] = struct{}{}
}

func (r *ModeRegistry) Disable(userID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.enabled, userID)
}

func (r *ModeRegistry) Enabled(userID uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.enabled[userID]

	return ok
}
