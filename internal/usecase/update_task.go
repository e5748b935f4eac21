package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// UpdateTaskInput contains the parameters for editing a task.
type UpdateTaskInput struct {
	Update domain.TaskUpdate // Fields to change
	TaskID int               // Task ID to edit
}

// UpdateTask is the use case for applying a partial update to a task.
type UpdateTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute applies the update. Unlike the other task use cases it fails
// with domain.ErrTaskNotFound when the ID is unknown.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*TaskChangeOutput, error) {
	if in.Update.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Update.Title != nil && strings.TrimSpace(*in.Update.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		return t.With(in.Update), true, nil
	})
	if err != nil {
		return nil, err
	}
	if !out.Found {
		return nil, fmt.Errorf("task %d: %w", in.TaskID, domain.ErrTaskNotFound)
	}

	uc.logger.Info(in.TaskID, "task", "updated")
	return out, nil
}
