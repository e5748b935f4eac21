package usecase

import (
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// TaskChangeOutput is the result of a use case that changes one task.
type TaskChangeOutput struct {
	Task    domain.Task // The task after the change (zero if not found)
	Found   bool        // False when no task has the requested ID
	Changed bool        // False when the task was already in the requested state
}

// taskMutator derives the new record from the current one.
// It reports false when nothing needs to change.
type taskMutator func(domain.Task) (domain.Task, bool, error)

// mutateTask applies fn to one task inside a single store update.
// A missing ID is not an error; the output reports Found=false.
func mutateTask(repo domain.TaskRepository, id int, fn taskMutator) (*TaskChangeOutput, error) {
	out := &TaskChangeOutput{}
	err := repo.Update(func(s *domain.Snapshot) error {
		current, ok := s.Task(id)
		if !ok {
			return nil
		}
		out.Found = true

		next, changed, err := fn(current)
		if err != nil {
			return err
		}
		out.Task = current
		if !changed {
			return nil
		}
		s.Replace(next)
		out.Task = next
		out.Changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	return out, nil
}
