package progress

import "sync"

// MemoryStore keeps progress in memory. Load returns LoadErr and Save returns
// SaveErr when they are set, so callers can exercise failure paths.
type MemoryStore struct {
	mu      sync.Mutex
	saved   Progress
	saves   int
	LoadErr error
	SaveErr error
}

func NewMemoryStore(initial Progress) *MemoryStore {
	return &MemoryStore{saved: initial.clone()}
}

func (m *MemoryStore) Load() (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.saved.clone(), nil
}

func (m *MemoryStore) Save(p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saved = p.clone()
	m.saves++
	return nil
}

// Saves returns how many successful saves the store has seen.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (p Progress) clone() Progress {
	out := make(Progress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
