package usecase

import (
	"context"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// SetTaskTagsInput contains the parameters for replacing a task's tags.
type SetTaskTagsInput struct {
	Tags   []domain.Tag // New tag set; duplicate slugs are dropped
	TaskID int
}

// SetTaskTags is the use case for replacing a task's tags.
type SetTaskTags struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSetTaskTags creates a new SetTaskTags use case.
func NewSetTaskTags(tasks domain.TaskRepository, logger domain.Logger) *SetTaskTags {
	return &SetTaskTags{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute replaces the tags. Unknown IDs are a no-op.
func (uc *SetTaskTags) Execute(_ context.Context, in SetTaskTagsInput) (*TaskChangeOutput, error) {
	tags := domain.UniqueTags(in.Tags)
	out, err := mutateTask(uc.tasks, in.TaskID, func(t domain.Task) (domain.Task, bool, error) {
		if slices.Equal(t.Tags, tags) {
			return t, false, nil
		}
		return t.With(domain.TaskUpdate{Tags: &tags}), true, nil
	})
	if err != nil {
		return nil, err
	}
	if out.Changed {
		uc.logger.Info(in.TaskID, "tags", "updated")
	}
	return out, nil
}
