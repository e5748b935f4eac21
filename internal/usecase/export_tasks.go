package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// ExportTasksOutput contains every task and the global order.
type ExportTasksOutput struct {
	Snapshot domain.Snapshot
}

// ExportTasks is the use case for reading the whole store for printing.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{
		tasks: tasks,
	}
}

// Execute returns a copy of the store.
func (uc *ExportTasks) Execute(_ context.Context) (*ExportTasksOutput, error) {
	snap, err := uc.tasks.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	return &ExportTasksOutput{Snapshot: snap}, nil
}
