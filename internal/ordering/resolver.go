// Package ordering maps drag-and-drop gestures made on a filtered view back
// onto the global manual order, and turns that order into sort keys.
package ordering

import (
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// ResolveManualOrder returns the global order after dropping drag.Task at drop.
//
// The drag and drop indices refer to visibleTasks, the subsequence of
// globalOrder currently on screen. Visible IDs are reordered among the slots
// they already occupy in globalOrder, so hidden IDs keep both their positions
// and their relative order. If the dragged task is not visible the global
// order is returned unchanged.
func ResolveManualOrder(globalOrder []int, visibleTasks []domain.Task, drag domain.DragContext, drop domain.DropTarget) domain.ReorderResult {
	visibleIDs := domain.TaskIDs(visibleTasks)

	newVisible, moved := computeNewVisibleOrder(visibleIDs, drag, drop)
	if !moved {
		return domain.NewReorderResult(drag.Task, globalOrder)
	}

	visibleSet := make(map[int]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		visibleSet[id] = struct{}{}
	}
	return domain.NewReorderResult(drag.Task, mergeIntoGlobalOrder(globalOrder, visibleSet, newVisible))
}

// computeNewVisibleOrder moves the dragged ID within the visible sequence.
// It reports false when the dragged ID is not visible.
func computeNewVisibleOrder(visibleIDs []int, drag domain.DragContext, drop domain.DropTarget) ([]int, bool) {
	current := slices.Index(visibleIDs, drag.Task.ID)
	if current < 0 {
		return nil, false
	}

	result := slices.Delete(slices.Clone(visibleIDs), current, current+1)

	target := drop.TargetIndex
	if drag.SourceSection != drop.TargetSection {
		// Sections are treated as one flattened sequence; only clamp.
		target = min(target, len(result))
	} else if current < target {
		// Removing the item shifted everything after it left by one.
		target--
	}
	target = max(0, min(target, len(result)))

	return slices.Insert(result, target, drag.Task.ID), true
}

// mergeIntoGlobalOrder walks globalOrder once, replacing each visible slot
// with the next ID of newVisible and keeping hidden IDs in place.
func mergeIntoGlobalOrder(globalOrder []int, visibleSet map[int]struct{}, newVisible []int) []int {
	result := make([]int, 0, len(globalOrder))
	next := 0
	for _, id := range globalOrder {
		if _, ok := visibleSet[id]; !ok {
			result = append(result, id)
			continue
		}
		if next < len(newVisible) {
			result = append(result, newVisible[next])
			next++
		}
	}
	return result
}
