package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// MoveTaskInput moves a task by ID to an index of the rendered list.
// Fields are ordered to minimize memory padding.
type MoveTaskInput struct {
	State         domain.ViewState   // View the index refers to
	TargetSection domain.SectionType // Section of the drop ("" = the task's own section)
	TaskID        int                // Task to move
	TargetIndex   int                // Index in the flattened visible list
}

// MoveTask is the use case for reordering by task ID instead of by gesture.
// It builds the drag context from the current view and delegates to ReorderTasks.
type MoveTask struct {
	tasks   domain.TaskRepository
	reorder *ReorderTasks
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(tasks domain.TaskRepository, reorder *ReorderTasks) *MoveTask {
	return &MoveTask{
		tasks:   tasks,
		reorder: reorder,
	}
}

// Execute moves the task. It fails with domain.ErrDragDropDisabled unless the
// view is sorted manually, and with domain.ErrTaskNotFound when the task is
// not visible in the view.
func (uc *MoveTask) Execute(ctx context.Context, in MoveTaskInput) (*ReorderTasksOutput, error) {
	state := domain.NewViewState(in.State)
	if !state.DragDropEnabled() {
		return nil, domain.ErrDragDropDisabled
	}
	if in.TargetSection != "" && !in.TargetSection.IsValid() {
		return nil, domain.ErrInvalidSection
	}

	snap, err := uc.tasks.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	// The index may be stale by the time ReorderTasks takes the lock; the
	// resolver locates the dragged task by ID.
	visible := buildView(snap, state).AllTasks()
	idx := domain.FindTask(visible, in.TaskID)
	if idx < 0 {
		return nil, fmt.Errorf("task %d in %s view: %w", in.TaskID, state.View, domain.ErrTaskNotFound)
	}
	task := visible[idx]

	section := in.TargetSection
	if section == "" {
		section = task.Section()
	}
	return uc.reorder.Execute(ctx, ReorderTasksInput{
		State: state,
		Drag:  domain.NewDragContext(idx, task.Section(), task),
		Drop:  domain.NewDropTarget(in.TargetIndex, section),
	})
}
