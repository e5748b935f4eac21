// Package transfer moves tasks between the due and no-due sections when a
// due date is added, removed or changed.
package transfer

import (
	"slices"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// DueChangeResult is the outcome of moving a task across sections.
// Transfer records the task as it was before the move.
type DueChangeResult struct {
	UpdatedTask           domain.Task
	Transfer              domain.SectionTransfer
	NewManualSortPosition int
}

// AddDue sets a due date on a task that has none and places it at the head
// of the due section, one gap before the smallest existing key.
func AddDue(task domain.Task, dueAt time.Time, withDueTasks []domain.Task) (DueChangeResult, error) {
	if task.HasDue() {
		return DueChangeResult{}, domain.ErrAlreadyHasDue
	}

	pos := minPosition(withDueTasks) - domain.PositionGap
	updated := task.With(domain.TaskUpdate{
		DueAt:              &dueAt,
		ManualSortPosition: &pos,
	})

	return DueChangeResult{
		UpdatedTask:           updated,
		Transfer:              domain.NewSectionTransfer(task, domain.SectionWithoutDue, domain.SectionWithDue, domain.InsertHead),
		NewManualSortPosition: pos,
	}, nil
}

// RemoveDue clears the due date and places the task at the tail of the
// no-due section, one gap after the largest existing key.
func RemoveDue(task domain.Task, withoutDueTasks []domain.Task) (DueChangeResult, error) {
	if !task.HasDue() {
		return DueChangeResult{}, domain.ErrNoDue
	}

	pos := maxPosition(withoutDueTasks) + domain.PositionGap
	updated := task.With(domain.TaskUpdate{
		ClearDue:           true,
		ManualSortPosition: &pos,
	})

	return DueChangeResult{
		UpdatedTask:           updated,
		Transfer:              domain.NewSectionTransfer(task, domain.SectionWithDue, domain.SectionWithoutDue, domain.InsertTail),
		NewManualSortPosition: pos,
	}, nil
}

// ChangeDue replaces an existing due date. The task stays in its section
// and keeps its manual-sort key.
func ChangeDue(task domain.Task, dueAt time.Time) (domain.Task, error) {
	if !task.HasDue() {
		return domain.Task{}, domain.ErrNoDueUseAdd
	}
	return task.With(domain.TaskUpdate{DueAt: &dueAt}), nil
}

// SetTaskDueInList applies a due change to the task with the given ID and
// returns a new slice with only that record replaced. A nil dueAt clears the
// due date. Archived tasks are not counted as section siblings.
// If no task has the ID, or a task without a due date is cleared, tasks is
// returned as is.
func SetTaskDueInList(tasks []domain.Task, id int, dueAt *time.Time) ([]domain.Task, error) {
	idx := domain.FindTask(tasks, id)
	if idx < 0 {
		return tasks, nil
	}
	task := tasks[idx]

	var updated domain.Task
	switch {
	case dueAt == nil:
		if !task.HasDue() {
			return tasks, nil
		}
		res, err := RemoveDue(task, siblings(tasks, id, false))
		if err != nil {
			return nil, err
		}
		updated = res.UpdatedTask
	case !task.HasDue():
		res, err := AddDue(task, *dueAt, siblings(tasks, id, true))
		if err != nil {
			return nil, err
		}
		updated = res.UpdatedTask
	default:
		var err error
		updated, err = ChangeDue(task, *dueAt)
		if err != nil {
			return nil, err
		}
	}

	out := slices.Clone(tasks)
	out[idx] = updated
	return out, nil
}

// siblings returns the non-archived tasks other than id whose due presence
// equals withDue.
func siblings(tasks []domain.Task, id int, withDue bool) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.ID == id || t.IsArchived() || t.HasDue() != withDue {
			continue
		}
		out = append(out, t)
	}
	return out
}

func minPosition(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	m := tasks[0].ManualSortPosition
	for _, t := range tasks[1:] {
		m = min(m, t.ManualSortPosition)
	}
	return m
}

func maxPosition(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	m := tasks[0].ManualSortPosition
	for _, t := range tasks[1:] {
		m = max(m, t.ManualSortPosition)
	}
	return m
}
