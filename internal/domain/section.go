package domain

import "slices"

// SectionType partitions tasks by due-date presence.
type SectionType string

const (
	SectionWithDue    SectionType = "withDue"    // Tasks with a due date
	SectionWithoutDue SectionType = "withoutDue" // Tasks without a due date
)

// IsValid returns true if the section is a known value.
func (s SectionType) IsValid() bool {
	return s == SectionWithDue || s == SectionWithoutDue
}

// ParseSectionType converts a string into a SectionType.
func ParseSectionType(s string) (SectionType, error) {
	st := SectionType(s)
	if !st.IsValid() {
		return "", ErrInvalidSection
	}
	return st, nil
}

// DefaultLabel returns the heading shown for the section.
func (s SectionType) DefaultLabel() string {
	switch s {
	case SectionWithDue:
		return "With due date"
	case SectionWithoutDue:
		return "No due date"
	default:
		return string(s)
	}
}

// TaskSection is one rendered partition of the task list.
type TaskSection struct {
	Type  SectionType
	Label string
	tasks []Task
}

// NewTaskSection creates a section holding a copy of tasks.
// An empty label selects the default label of the section type.
func NewTaskSection(typ SectionType, tasks []Task, label string) TaskSection {
	if label == "" {
		label = typ.DefaultLabel()
	}
	return TaskSection{
		Type:  typ,
		Label: label,
		tasks: slices.Clone(tasks),
	}
}

// Tasks returns a copy of the tasks in the section.
func (s TaskSection) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Count returns the number of tasks in the section.
func (s TaskSection) Count() int {
	return len(s.tasks)
}

// IsEmpty returns true if the section holds no tasks.
func (s TaskSection) IsEmpty() bool {
	return len(s.tasks) == 0
}

// TaskListView is the rendered view: the due section followed by the no-due section.
type TaskListView struct {
	WithDue    TaskSection
	WithoutDue TaskSection
}

// NewTaskListView creates a view from already filtered and sorted sections.
func NewTaskListView(withDue, withoutDue []Task) TaskListView {
	return TaskListView{
		WithDue:    NewTaskSection(SectionWithDue, withDue, ""),
		WithoutDue: NewTaskSection(SectionWithoutDue, withoutDue, ""),
	}
}

// Section returns the section of the given type.
func (v TaskListView) Section(typ SectionType) TaskSection {
	if typ == SectionWithDue {
		return v.WithDue
	}
	return v.WithoutDue
}

// AllTasks returns the tasks of both sections in display order.
func (v TaskListView) AllTasks() []Task {
	out := make([]Task, 0, v.TotalTaskCount())
	out = append(out, v.WithDue.tasks...)
	return append(out, v.WithoutDue.tasks...)
}

// VisibleTaskIDs returns the identifiers of all displayed tasks in order.
func (v TaskListView) VisibleTaskIDs() []int {
	return TaskIDs(v.AllTasks())
}

// TotalTaskCount returns the number of displayed tasks.
func (v TaskListView) TotalTaskCount() int {
	return v.WithDue.Count() + v.WithoutDue.Count()
}

// IsEmpty returns true if nothing is displayed.
func (v TaskListView) IsEmpty() bool {
	return v.TotalTaskCount() == 0
}
