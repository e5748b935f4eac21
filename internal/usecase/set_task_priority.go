package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// SetTaskPriorityInput contains the parameters for changing a priority.
type SetTaskPriorityInput struct {
	Priority domain.Priority
	TaskID   int
}

// SetTaskPriority is the use case for changing a task's priority.
type SetTaskPriority struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSetTaskPriority creates a new SetTaskPriority use case.
func NewSetTaskPriority(tasks domain.TaskRepository, logger domain.Logger) *SetTaskPriority {
	return &SetTaskPriority{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute sets the priority. Unknown IDs are a no-op.
func (uc *SetTaskPriority) Execute(_ context.Context, in SetTaskPriorityInput) (*TaskChangeOutput, error) {
	if !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		if t.Priority == in.Priority {
			return t, false, nil
		}
		return t.With(domain.TaskUpdate{Priority: &in.Priority}), true, nil
	})
	if err != nil {
		return nil, err
	}
	if out.Changed {
		uc.logger.Info(in.TaskID, "priority", "set to "+string(in.Priority))
	}
	return out, nil
}
