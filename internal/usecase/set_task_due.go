package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/transfer"
)

// SetTaskDueInput contains the parameters for changing a due date.
type SetTaskDueInput struct {
	DueAt  *time.Time // New due date (nil = clear)
	TaskID int        // Task ID to change
}

// SetTaskDue is the use case for adding, changing or clearing a due date.
// Adding a due date moves the task to the head of the due section and
// clearing it moves the task to the tail of the no-due section.
type SetTaskDue struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSetTaskDue creates a new SetTaskDue use case.
func NewSetTaskDue(tasks domain.TaskRepository, logger domain.Logger) *SetTaskDue {
	return &SetTaskDue{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute applies the due change. Unknown IDs are a no-op.
func (uc *SetTaskDue) Execute(_ context.Context, in SetTaskDueInput) (*TaskChangeOutput, error) {
	out := &TaskChangeOutput{}
	var before domain.Task
	err := uc.tasks.Update(func(s *domain.Snapshot) error {
		idx := domain.FindTask(s.Tasks, in.TaskID)
		if idx < 0 {
			return nil
		}
		before = s.Tasks[idx]
		out.Found = true

		next, err := transfer.SetTaskDueInList(s.Tasks, in.TaskID, in.DueAt)
		if err != nil {
			return err
		}
		s.Tasks = next
		out.Task = next[idx]
		out.Changed = !sameTime(before.DueAt, out.Task.DueAt) ||
			before.ManualSortPosition != out.Task.ManualSortPosition
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set due of task %d: %w", in.TaskID, err)
	}

	if out.Changed {
		switch {
		case !before.HasDue():
			uc.logger.Info(in.TaskID, "due", fmt.Sprintf("added %s, moved to head of %s", out.Task.DueAt.Format(domain.DueDateLayout), domain.SectionWithDue))
		case !out.Task.HasDue():
			uc.logger.Info(in.TaskID, "due", fmt.Sprintf("cleared, moved to tail of %s", domain.SectionWithoutDue))
		default:
			uc.logger.Info(in.TaskID, "due", fmt.Sprintf("changed to %s", out.Task.DueAt.Format(domain.DueDateLayout)))
		}
	}
	return out, nil
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
