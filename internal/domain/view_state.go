package domain

import (
	"slices"
	"strings"
	"time"
)

// DueFilterType selects how a due filter compares dates.
type DueFilterType string

const (
	DueExact DueFilterType = "exact" // Same calendar date
	DueUntil DueFilterType = "until" // On or before the date
)

// DueDateLayout is the calendar date format used by due filters.
const DueDateLayout = "2006-01-02"

// DueFilter matches tasks by due date.
type DueFilter struct {
	Date time.Time
	Type DueFilterType
}

// NewDueFilter creates a DueFilter.
func NewDueFilter(typ DueFilterType, date time.Time) DueFilter {
	return DueFilter{Type: typ, Date: date}
}

// Matches reports whether a due time passes the filter.
// Tasks without a due date never match. Dates are compared by calendar day,
// each in its own location.
func (f DueFilter) Matches(dueAt *time.Time) bool {
	if dueAt == nil {
		return false
	}
	want := dateOnly(f.Date)
	got := dateOnly(*dueAt)
	if f.Type == DueExact {
		return got.Equal(want)
	}
	return !got.After(want)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDueFilter parses "2026-01-14" (exact) or "~2026-01-14" (until).
// It returns nil for empty or malformed input.
func ParseDueFilter(value string) *DueFilter {
	if value == "" {
		return nil
	}
	typ := DueExact
	if rest, ok := strings.CutPrefix(value, "~"); ok {
		typ = DueUntil
		value = rest
	}
	date, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return nil
	}
	f := NewDueFilter(typ, date)
	return &f
}

// Format renders the filter in the form accepted by ParseDueFilter.
func (f DueFilter) Format() string {
	s := dateOnly(f.Date).Format(DueDateLayout)
	if f.Type == DueUntil {
		return "~" + s
	}
	return s
}

// FilterState is the set of active filters. Zero values disable a filter.
// Fields are ordered to minimize memory padding.
type FilterState struct {
	Due      *DueFilter   // Due date filter (nil = any)
	Query    string       // Free-text query on title and description
	Priority Priority     // Required priority ("" = any)
	Status   StatusFilter // Completion filter ("" = any)
	Tags     []string     // Required tag slugs (all must match)
}

// NewFilterState creates a FilterState, copying the tag slice and due filter.
func NewFilterState(f FilterState) FilterState {
	out := f
	out.Tags = slices.Clone(f.Tags)
	if f.Due != nil {
		d := *f.Due
		out.Due = &d
	}
	return out
}

// IsEmpty returns true if no filter is active.
func (f FilterState) IsEmpty() bool {
	return f.Query == "" && len(f.Tags) == 0 && f.Priority == "" &&
		f.Status == StatusAny && f.Due == nil
}

// FilterUpdate is a partial override applied by FilterState.With.
type FilterUpdate struct {
	Query    *string
	Tags     *[]string
	Priority *Priority
	Status   *StatusFilter
	Due      *DueFilter
	ClearDue bool
}

// With returns a new FilterState with the update applied.
func (f FilterState) With(u FilterUpdate) FilterState {
	out := NewFilterState(f)
	if u.Query != nil {
		out.Query = *u.Query
	}
	if u.Tags != nil {
		out.Tags = slices.Clone(*u.Tags)
	}
	if u.Priority != nil {
		out.Priority = *u.Priority
	}
	if u.Status != nil {
		out.Status = *u.Status
	}
	if u.Due != nil {
		d := *u.Due
		out.Due = &d
	}
	if u.ClearDue {
		out.Due = nil
	}
	return out
}

// ViewState is the complete view configuration: tab, sort and filter.
type ViewState struct {
	Filter FilterState
	View   ViewType
	Sort   SortType
}

// NewViewState creates a ViewState, defaulting empty fields to inbox and manual sort.
func NewViewState(v ViewState) ViewState {
	if v.View == "" {
		v.View = ViewInbox
	}
	if v.Sort == "" {
		v.Sort = SortManual
	}
	v.Filter = NewFilterState(v.Filter)
	return v
}

// DefaultViewState returns the inbox view sorted manually with no filter.
func DefaultViewState() ViewState {
	return NewViewState(ViewState{})
}

// DragDropEnabled returns true if manual reordering is allowed.
func (v ViewState) DragDropEnabled() bool {
	return v.Sort == SortManual
}

// ViewUpdate is a partial override applied by ViewState.With.
type ViewUpdate struct {
	View   *ViewType
	Sort   *SortType
	Filter *FilterUpdate
}

// With returns a new ViewState with the update applied.
func (v ViewState) With(u ViewUpdate) ViewState {
	out := v
	if u.View != nil {
		out.View = *u.View
	}
	if u.Sort != nil {
		out.Sort = *u.Sort
	}
	if u.Filter != nil {
		out.Filter = v.Filter.With(*u.Filter)
	}
	return NewViewState(out)
}
