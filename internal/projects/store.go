package projects

import (
	"sync"
	"time"
)

// Store is the in-memory project catalog. Projects are seeded once before the
// server accepts traffic and never mutated afterwards; the mutex keeps Create
// safe for tests and any future write path.
type Store struct {
	mu     sync.RWMutex
	byID   map[int]Project
	order  []int
	nextID int
}

func NewStore() *Store {
	return &Store{
		byID:   make(map[int]Project),
		nextID: 1,
	}
}

// Create assigns an id and creation timestamp and inserts the project.
// Insertion order is preserved for listings.
func (s *Store) Create(p Project) Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

// Get returns the project with the given id.
func (s *Store) Get(id int) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// All returns every project in insertion order.
func (s *Store) All() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Project, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// List returns the projects matching the criteria in insertion order.
func (s *Store) List(c Criteria) []Project {
	return Filter(s.All(), c)
}

// Len returns the catalog size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
