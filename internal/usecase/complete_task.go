package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// CompleteTask is the use case for marking a task as done.
type CompleteTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute sets the completion time. A completed task is left untouched.
func (uc *CompleteTask) Execute(_ context.Context, in TaskIDInput) (*TaskChangeOutput, error) {
	now := uc.clock.Now()
	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		if t.IsCompleted() {
			return t, false, nil
		}
		return t.With(domain.TaskUpdate{CompletedAt: &now}), true, nil
	})
	if err != nil {
		return nil, err
	}
	if out.Changed {
		uc.logger.Info(in.TaskID, "task", "completed")
	}
	return out, nil
}

// UncompleteTask is the use case for reopening a completed task.
type UncompleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewUncompleteTask creates a new UncompleteTask use case.
func NewUncompleteTask(tasks domain.TaskRepository, logger domain.Logger) *UncompleteTask {
	return &UncompleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute clears the completion time. An active task is left untouched.
func (uc *UncompleteTask) Execute(_ context.Context, in TaskIDInput) (*TaskChangeOutput, error) {
	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		if !t.IsCompleted() {
			return t, false, nil
		}
		return t.With(domain.TaskUpdate{ClearCompleted: true}), true, nil
	})
	if err != nil {
		return nil, err
	}
	if out.Changed {
		uc.logger.Info(in.TaskID, "task", "reopened")
	}
	return out, nil
}
