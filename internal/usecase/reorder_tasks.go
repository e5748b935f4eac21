package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/ordering"
)

// ReorderTasksInput describes a drag-and-drop gesture on the rendered list.
type ReorderTasksInput struct {
	State domain.ViewState   // View the gesture was made on
	Drag  domain.DragContext // Where the gesture started
	Drop  domain.DropTarget  // Where the gesture ended
}

// ReorderTasksOutput contains the result of a reorder.
type ReorderTasksOutput struct {
	Order   []int // Global order after the move
	Applied bool  // False when the view does not allow manual reordering
}

// ReorderTasks is the use case for applying a drag-and-drop gesture to the
// global manual order.
type ReorderTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewReorderTasks creates a new ReorderTasks use case.
func NewReorderTasks(tasks domain.TaskRepository, logger domain.Logger) *ReorderTasks {
	return &ReorderTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute resolves the drop against the current view and reassigns every
// manual-sort key from the new global order in one store update.
// Gestures made while sorting by anything but manual are ignored.
func (uc *ReorderTasks) Execute(_ context.Context, in ReorderTasksInput) (*ReorderTasksOutput, error) {
	state := domain.NewViewState(in.State)
	if !state.DragDropEnabled() {
		uc.logger.Debug(in.Drag.Task.ID, "reorder", "ignored: sort is "+string(state.Sort))
		return &ReorderTasksOutput{}, nil
	}

	var order []int
	err := uc.tasks.Update(func(s *domain.Snapshot) error {
		visible := buildView(*s, state).AllTasks()
		result := ordering.ResolveManualOrder(s.Order, visible, in.Drag, in.Drop)

		order = result.NewGlobalOrder()
		s.Order = order
		s.Tasks = ordering.AssignPositions(order).Apply(s.Tasks)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reorder tasks: %w", err)
	}

	uc.logger.Info(in.Drag.Task.ID, "reorder", fmt.Sprintf("moved from %s[%d] to %s[%d]",
		in.Drag.SourceSection, in.Drag.SourceIndex, in.Drop.TargetSection, in.Drop.TargetIndex))
	return &ReorderTasksOutput{Order: order, Applied: true}, nil
}
