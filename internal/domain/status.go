package domain

// ViewType selects which tab of the task list is shown.
type ViewType string

const (
	ViewInbox   ViewType = "inbox"   // Active tasks
	ViewProject ViewType = "project" // Active tasks grouped by project
	ViewTrash   ViewType = "trash"   // Archived tasks
)

// AllViewTypes returns all valid view types.
func AllViewTypes() []ViewType {
	return []ViewType{ViewInbox, ViewProject, ViewTrash}
}

// IsValid returns true if the view type is a known value.
func (v ViewType) IsValid() bool {
	switch v {
	case ViewInbox, ViewProject, ViewTrash:
		return true
	}
	return false
}

// Next returns the following view type, wrapping around.
func (v ViewType) Next() ViewType {
	return next(AllViewTypes(), v)
}

// SortType selects the ordering of each section.
type SortType string

const (
	SortManual    SortType = "manual"    // Manual-sort position ascending
	SortCreatedAt SortType = "createdAt" // Newest first
	SortDueAt     SortType = "dueAt"     // Earliest due first, no due last
	SortPriority  SortType = "priority"  // Highest priority first
)

// AllSortTypes returns all valid sort types.
func AllSortTypes() []SortType {
	return []SortType{SortManual, SortCreatedAt, SortDueAt, SortPriority}
}

// IsValid returns true if the sort type is a known value.
func (s SortType) IsValid() bool {
	switch s {
	case SortManual, SortCreatedAt, SortDueAt, SortPriority:
		return true
	}
	return false
}

// Next returns the following sort type, wrapping around.
func (s SortType) Next() SortType {
	return next(AllSortTypes(), s)
}

// Display returns a human-readable representation of the sort type.
func (s SortType) Display() string {
	switch s {
	case SortManual:
		return "Manual"
	case SortCreatedAt:
		return "Created"
	case SortDueAt:
		return "Due"
	case SortPriority:
		return "Priority"
	default:
		return string(s)
	}
}

// StatusFilter restricts tasks by completion state.
// The zero value matches every task.
type StatusFilter string

const (
	StatusAny       StatusFilter = ""
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// IsValid returns true if the status filter is a known, non-empty value.
func (s StatusFilter) IsValid() bool {
	return s == StatusActive || s == StatusCompleted
}

func next[T comparable](all []T, cur T) T {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
