// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	DueAt       *time.Time // Due date (optional)
	Title       string     // Task title (required)
	Description string     // Task description (optional)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a task and appends it to the global order.
// The manual-sort key is len(tasks) * domain.PositionGap and the slug is
// derived from the ID.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	var task domain.Task
	err := uc.tasks.Update(func(s *domain.Snapshot) error {
		id := s.NextTaskID
		s.NextTaskID++

		task = domain.NewTask(domain.TaskParams{
			ID:                 id,
			Slug:               domain.TaskSlug(id),
			Title:              in.Title,
			Description:        in.Description,
			Priority:           domain.PriorityNone,
			DueAt:              in.DueAt,
			CreatedAt:          uc.clock.Now(),
			ManualSortPosition: len(s.Tasks) * domain.PositionGap,
		})
		s.Tasks = append(s.Tasks, task)
		s.Order = append(s.Order, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	uc.logger.Info(task.ID, "task", fmt.Sprintf("created: %q", task.Title))
	return &AddTaskOutput{Task: task}, nil
}
