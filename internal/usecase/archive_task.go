package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// TaskIDInput identifies the task a use case acts on.
type TaskIDInput struct {
	TaskID int
}

// DeleteTask is the use case for moving a task to the trash.
// The task is archived, never removed, so it keeps its place in the global order.
type DeleteTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute archives the task with the current time.
// Archiving an archived task is a no-op.
func (uc *DeleteTask) Execute(_ context.Context, in TaskIDInput) (*TaskChangeOutput, error) {
	now := uc.clock.Now()
	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		if t.IsArchived() {
			return t, false, nil
		}
		return t.With(domain.TaskUpdate{ArchivedAt: &now}), true, nil
	})
	if err != nil {
		return nil, err
	}
	if out.Changed {
		uc.logger.Info(in.TaskID, "task", "archived")
	}
	return out, nil
}

// RestoreTask is the use case for bringing a task back from the trash.
type RestoreTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewRestoreTask creates a new RestoreTask use case.
func NewRestoreTask(tasks domain.TaskRepository, logger domain.Logger) *RestoreTask {
	return &RestoreTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute clears the archival time.
func (uc *RestoreTask) Execute(_ context.Context, in TaskIDInput) (*TaskChangeOutput, error) {
	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		if !t.IsArchived() {
			return t, false, nil
		}
		return t.With(domain.TaskUpdate{ClearArchived: true}), true, nil
	})
	if err != nil {
		return nil, err
	}
	if out.Changed {
		uc.logger.Info(in.TaskID, "task", "restored")
	}
	return out, nil
}
