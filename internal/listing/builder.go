package listing

import "github.com/runoshun/taskboard/internal/domain"

// BuildTaskListView filters tasks, splits them by due-date presence and
// sorts each section according to state.
func BuildTaskListView(tasks []domain.Task, state domain.ViewState) domain.TaskListView {
	filtered := ApplyFilter(tasks, state.Filter)
	withDue, withoutDue := SplitByDueSection(filtered)
	return domain.NewTaskListView(
		SortTasks(withDue, state.Sort),
		SortTasks(withoutDue, state.Sort),
	)
}

// SplitByDueSection partitions tasks, keeping their relative order.
func SplitByDueSection(tasks []domain.Task) (withDue, withoutDue []domain.Task) {
	withDue = make([]domain.Task, 0, len(tasks))
	withoutDue = make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasDue() {
			withDue = append(withDue, t)
		} else {
			withoutDue = append(withoutDue, t)
		}
	}
	return withDue, withoutDue
}
