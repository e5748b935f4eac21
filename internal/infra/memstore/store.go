// Package memstore provides an in-memory implementation of TaskRepository.
package memstore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/runoshun/taskboard/internal/domain"
)

// Store implements domain.TaskRepository in memory.
// The zero value is not usable; create one with New.
type Store struct {
	data domain.Snapshot
	mu   sync.RWMutex
}

// New creates a Store holding a copy of seed.
// Tasks missing from seed.Order are appended to the order by ID, and
// NextTaskID is raised above every existing ID.
func New(seed domain.Snapshot) *Store {
	data := normalize(seed.Clone())
	return &Store{data: data}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.withLock(func(data *domain.Snapshot) error {
		snap = data.Clone()
		return nil
	})
	return snap, err
}

// Update runs fn on a copy of the current state and replaces the state with
// it if fn succeeds.
func (s *Store) Update(fn func(*domain.Snapshot) error) error {
	return s.withLockWrite(func(data *domain.Snapshot) error {
		next := data.Clone()
		if err := fn(&next); err != nil {
			return err
		}
		if err := validate(next); err != nil {
			return err
		}
		*data = next
		return nil
	})
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*domain.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

// withLockWrite executes fn with an exclusive (write) lock.
func (s *Store) withLockWrite(fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// normalize makes the global order a permutation of the task IDs and
// moves NextTaskID past the largest ID.
func normalize(data domain.Snapshot) domain.Snapshot {
	known := make(map[int]struct{}, len(data.Tasks))
	maxID := 0
	for _, t := range data.Tasks {
		known[t.ID] = struct{}{}
		maxID = max(maxID, t.ID)
	}

	seen := make(map[int]struct{}, len(data.Order))
	order := make([]int, 0, len(data.Tasks))
	for _, id := range data.Order {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		order = append(order, id)
	}

	var missing []int
	for _, t := range data.Tasks {
		if _, ok := seen[t.ID]; !ok {
			missing = append(missing, t.ID)
		}
	}
	slices.Sort(missing)
	data.Order = append(order, missing...)

	data.NextTaskID = max(data.NextTaskID, maxID+1, 1)
	return data
}

// validate rejects states whose order is not a permutation of the task IDs.
func validate(data domain.Snapshot) error {
	if len(data.Order) != len(data.Tasks) {
		return fmt.Errorf("order has %d ids for %d tasks", len(data.Order), len(data.Tasks))
	}
	ids := make(map[int]struct{}, len(data.Tasks))
	for _, t := range data.Tasks {
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		ids[t.ID] = struct{}{}
	}
	for _, id := range data.Order {
		if _, ok := ids[id]; !ok {
			return fmt.Errorf("order references unknown task %d", id)
		}
		delete(ids, id)
	}
	return nil
}
