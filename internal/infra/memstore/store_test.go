package memstore

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(id int) domain.Task {
	return domain.NewTask(domain.TaskParams{
		ID:        id,
		Slug:      domain.TaskSlug(id),
		Title:     "Task",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func TestNew_Normalizes(t *testing.T) {
	store := New(domain.Snapshot{
		Tasks: []domain.Task{newTestTask(3), newTestTask(1), newTestTask(7)},
		Order: []int{7, 99, 7, 3},
	})

	snap, err := store.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, []int{7, 3, 1}, snap.Order)
	assert.Equal(t, 8, snap.NextTaskID)
}

func TestNew_Empty(t *testing.T) {
	store := New(domain.Snapshot{})

	snap, err := store.Snapshot()
	require.NoError(t, err)

	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Order)
	assert.Equal(t, 1, snap.NextTaskID)
}

func TestNew_KeepsHigherNextTaskID(t *testing.T) {
	store := New(domain.Snapshot{Tasks: []domain.Task{newTestTask(2)}, NextTaskID: 10})

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 10, snap.NextTaskID)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	task := domain.NewTask(domain.TaskParams{ID: 1, Title: "A", DueAt: &due})
	store := New(domain.Snapshot{Tasks: []domain.Task{task}, Order: []int{1}})

	snap, err := store.Snapshot()
	require.NoError(t, err)
	snap.Order[0] = 42
	snap.Tasks[0].Title = "changed"
	*snap.Tasks[0].DueAt = time.Time{}

	again, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again.Order)
	assert.Equal(t, "A", again.Tasks[0].Title)
	assert.True(t, again.Tasks[0].DueAt.Equal(due))
}

func TestStore_Update(t *testing.T) {
	store := New(domain.Snapshot{})

	err := store.Update(func(s *domain.Snapshot) error {
		id := s.NextTaskID
		s.NextTaskID++
		s.Tasks = append(s.Tasks, newTestTask(id))
		s.Order = append(s.Order, id)
		return nil
	})
	require.NoError(t, err)

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, domain.TaskIDs(snap.Tasks))
	assert.Equal(t, []int{1}, snap.Order)
	assert.Equal(t, 2, snap.NextTaskID)
}

func TestStore_UpdateErrorDiscardsChanges(t *testing.T) {
	store := New(domain.Snapshot{Tasks: []domain.Task{newTestTask(1)}, Order: []int{1}})
	boom := errors.New("boom")

	err := store.Update(func(s *domain.Snapshot) error {
		s.Order = nil
		s.Tasks = nil
		return boom
	})
	assert.ErrorIs(t, err, boom)

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, snap.Order)
	assert.Len(t, snap.Tasks, 1)
}

func TestStore_UpdateRejectsInconsistentOrder(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s *domain.Snapshot)
	}{
		{name: "missing id", fn: func(s *domain.Snapshot) { s.Order = s.Order[:1] }},
		{name: "unknown id", fn: func(s *domain.Snapshot) { s.Order[1] = 9 }},
		{name: "duplicate task", fn: func(s *domain.Snapshot) {
			s.Tasks = append(s.Tasks, newTestTask(1))
			s.Order = append(s.Order, 3)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New(domain.Snapshot{
				Tasks: []domain.Task{newTestTask(1), newTestTask(2)},
				Order: []int{1, 2},
			})

			err := store.Update(func(s *domain.Snapshot) error {
				tt.fn(s)
				return nil
			})
			assert.Error(t, err)

			snap, _ := store.Snapshot()
			assert.Equal(t, []int{1, 2}, snap.Order)
		})
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := New(domain.Snapshot{})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(func(s *domain.Snapshot) error {
				id := s.NextTaskID
				s.NextTaskID++
				s.Tasks = append(s.Tasks, newTestTask(id))
				s.Order = append(s.Order, id)
				return nil
			})
			_, _ = store.Snapshot()
		}()
	}
	wg.Wait()

	snap, err := store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Tasks, 50)
	assert.Len(t, snap.Order, 50)
	assert.Equal(t, 51, snap.NextTaskID)
}
