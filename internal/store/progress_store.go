package store

import "sync"

// Progress captures how far an assignment run has gotten.
type Progress struct {
	Total      int            `json:"total"`
	Assigned   int            `json:"assigned"`
	Remaining  int            `json:"remaining"`
	LastPlayer string         `json:"last_player,omitempty"`
	Score      float64        `json:"score"`
	TeamSizes  map[string]int `json:"team_sizes,omitempty"`
	Done       bool           `json:"done"`
}

// ProgressStore keeps a thread-safe snapshot of run progress in memory.
type ProgressStore struct {
	mu       sync.RWMutex
	progress Progress
}

// NewProgressStore constructs an empty ProgressStore.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{}
}

// Set replaces the current progress snapshot.
func (s *ProgressStore) Set(p Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.TeamSizes != nil {
		sizes := make(map[string]int, len(p.TeamSizes))
		for name, n := range p.TeamSizes {
			sizes[name] = n
		}
		p.TeamSizes = sizes
	}
	s.progress = p
}

// Snapshot returns a copy of the current progress.
func (s *ProgressStore) Snapshot() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.progress
	if p.TeamSizes != nil {
		sizes := make(map[string]int, len(p.TeamSizes))
		for name, n := range p.TeamSizes {
			sizes[name] = n
		}
		p.TeamSizes = sizes
	}
	return p
}
