package listing

import (
	"cmp"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// SortTasks returns a sorted copy of tasks. The sort is stable, so ties keep
// their input order. Unknown sort types return an unsorted copy.
func SortTasks(tasks []domain.Task, sortType domain.SortType) []domain.Task {
	sorted := slices.Clone(tasks)
	switch sortType {
	case domain.SortManual:
		slices.SortStableFunc(sorted, byManualPosition)
	case domain.SortCreatedAt:
		slices.SortStableFunc(sorted, byCreatedAtDesc)
	case domain.SortDueAt:
		slices.SortStableFunc(sorted, byDueAtNullsLast)
	case domain.SortPriority:
		slices.SortStableFunc(sorted, byPriority)
	}
	return sorted
}

func byManualPosition(a, b domain.Task) int {
	return cmp.Compare(a.ManualSortPosition, b.ManualSortPosition)
}

func byCreatedAtDesc(a, b domain.Task) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

func byDueAtNullsLast(a, b domain.Task) int {
	switch {
	case a.DueAt == nil && b.DueAt == nil:
		return 0
	case a.DueAt == nil:
		return 1
	case b.DueAt == nil:
		return -1
	}
	return a.DueAt.Compare(*b.DueAt)
}

func byPriority(a, b domain.Task) int {
	return domain.ComparePriority(a.Priority, b.Priority)
}
