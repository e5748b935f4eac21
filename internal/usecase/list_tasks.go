package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/listing"
	"github.com/runoshun/taskboard/internal/ordering"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	State domain.ViewState // View, sort and filter to apply
}

// ListTasksOutput contains the rendered task list.
type ListTasksOutput struct {
	View            domain.TaskListView // Sections in display order
	State           domain.ViewState    // The normalized view state used
	DragDropEnabled bool                // True when manual reordering is allowed
}

// ListTasks is the use case for building the sectioned task list.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns the task list for the given view state.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	snap, err := uc.tasks.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	state := domain.NewViewState(in.State)
	return &ListTasksOutput{
		View:            buildView(snap, state),
		State:           state,
		DragDropEnabled: state.DragDropEnabled(),
	}, nil
}

// buildView derives the rendered list from a snapshot: pick the tasks of the
// current tab, order them by the global order, then filter, split and sort.
func buildView(snap domain.Snapshot, state domain.ViewState) domain.TaskListView {
	return listing.BuildTaskListView(ordering.OrderTasks(currentTasks(snap.Tasks, state.View), snap.Order), state)
}

// currentTasks returns the archived tasks for the trash view and the
// non-archived tasks otherwise.
func currentTasks(tasks []domain.Task, view domain.ViewType) []domain.Task {
	wantArchived := view == domain.ViewTrash
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsArchived() == wantArchived {
			out = append(out, t)
		}
	}
	return out
}
