package ordering

import (
	"cmp"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// Positions maps task IDs to manual-sort keys, remembering insertion order.
type Positions struct {
	byID map[int]int
	ids  []int
}

// AssignPositions gives the ID at index i the key i*domain.PositionGap.
// The gaps leave room for single-item inserts without renumbering.
func AssignPositions(order []int) Positions {
	p := Positions{
		byID: make(map[int]int, len(order)),
		ids:  make([]int, 0, len(order)),
	}
	for i, id := range order {
		if _, dup := p.byID[id]; !dup {
			p.ids = append(p.ids, id)
		}
		p.byID[id] = i * domain.PositionGap
	}
	return p
}

// Get returns the key assigned to id.
func (p Positions) Get(id int) (int, bool) {
	pos, ok := p.byID[id]
	return pos, ok
}

// Len returns the number of assigned IDs.
func (p Positions) Len() int {
	return len(p.ids)
}

// IDs returns the assigned IDs in insertion order.
func (p Positions) IDs() []int {
	return slices.Clone(p.ids)
}

// Apply returns a copy of tasks where every task with an assigned key carries it.
func (p Positions) Apply(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		if pos, ok := p.byID[t.ID]; ok && pos != t.ManualSortPosition {
			t = t.With(domain.TaskUpdate{ManualSortPosition: &pos})
		}
		out[i] = t
	}
	return out
}

// OrderTasks returns a copy of tasks sorted by their index in globalOrder.
// Tasks missing from globalOrder fall back to their manual-sort key.
func OrderTasks(tasks []domain.Task, globalOrder []int) []domain.Task {
	index := make(map[int]int, len(globalOrder))
	for i, id := range globalOrder {
		index[id] = i
	}
	key := func(t domain.Task) int {
		if i, ok := index[t.ID]; ok {
			return i
		}
		return t.ManualSortPosition
	}
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		return cmp.Compare(key(a), key(b))
	})
	return out
}
