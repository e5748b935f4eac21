// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"time"
)

// PositionGap is the distance between consecutively assigned manual-sort positions.
const PositionGap = 1000

// Task is an immutable snapshot of a task's displayable attributes.
// Build it with NewTask and derive changed copies with With.
// Value copies share the time pointers and the tag slice, so callers must
// never write through them; NewTask and With always allocate fresh ones.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt          time.Time  // Creation time
	DueAt              *time.Time // Due time (nil = no due date)
	CompletedAt        *time.Time // Completion time (nil = active)
	ArchivedAt         *time.Time // Archival time (nil = not archived)
	Slug               string     // URL-friendly identifier
	Title              string     // Title
	Description        string     // Description (optional)
	Priority           Priority   // Priority
	Tags               []Tag      // Tags, unique by slug
	ID                 int        // Stable identifier, never reused
	ManualSortPosition int        // Key used by manual sort
}

// TaskParams contains the fields used to build a Task.
// Fields are ordered to minimize memory padding.
type TaskParams struct {
	CreatedAt          time.Time
	DueAt              *time.Time
	CompletedAt        *time.Time
	ArchivedAt         *time.Time
	Slug               string
	Title              string
	Description        string
	Priority           Priority
	Tags               []Tag
	ID                 int
	ManualSortPosition int
}

// NewTask builds a Task, copying every time pointer and the tag slice
// so that the caller's values can never alias the record.
func NewTask(p TaskParams) Task {
	priority := p.Priority
	if priority == "" {
		priority = PriorityNone
	}
	return Task{
		ID:                 p.ID,
		Slug:               p.Slug,
		Title:              p.Title,
		Description:        p.Description,
		Priority:           priority,
		Tags:               UniqueTags(p.Tags),
		DueAt:              CopyTime(p.DueAt),
		CreatedAt:          p.CreatedAt,
		ManualSortPosition: p.ManualSortPosition,
		CompletedAt:        CopyTime(p.CompletedAt),
		ArchivedAt:         CopyTime(p.ArchivedAt),
	}
}

// TaskUpdate is a partial override applied by Task.With.
// Nil pointers leave the field unchanged. The Clear* flags reset an
// optional time to nil and win over the corresponding pointer.
// Fields are ordered to minimize memory padding.
type TaskUpdate struct {
	Slug               *string
	Title              *string
	Description        *string
	Priority           *Priority
	Tags               *[]Tag
	DueAt              *time.Time
	CompletedAt        *time.Time
	ArchivedAt         *time.Time
	ManualSortPosition *int
	ClearDue           bool
	ClearCompleted     bool
	ClearArchived      bool
}

// IsEmpty returns true if the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Slug == nil && u.Title == nil && u.Description == nil &&
		u.Priority == nil && u.Tags == nil && u.DueAt == nil &&
		u.CompletedAt == nil && u.ArchivedAt == nil && u.ManualSortPosition == nil &&
		!u.ClearDue && !u.ClearCompleted && !u.ClearArchived
}

// With returns a new Task with the update applied. The ID never changes.
func (t Task) With(u TaskUpdate) Task {
	p := t.params()
	if u.Slug != nil {
		p.Slug = *u.Slug
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Priority != nil {
		p.Priority = *u.Priority
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.ManualSortPosition != nil {
		p.ManualSortPosition = *u.ManualSortPosition
	}
	p.DueAt = pickTime(p.DueAt, u.DueAt, u.ClearDue)
	p.CompletedAt = pickTime(p.CompletedAt, u.CompletedAt, u.ClearCompleted)
	p.ArchivedAt = pickTime(p.ArchivedAt, u.ArchivedAt, u.ClearArchived)
	return NewTask(p)
}

func (t Task) params() TaskParams {
	return TaskParams{
		ID:                 t.ID,
		Slug:               t.Slug,
		Title:              t.Title,
		Description:        t.Description,
		Priority:           t.Priority,
		Tags:               slices.Clone(t.Tags),
		DueAt:              t.DueAt,
		CreatedAt:          t.CreatedAt,
		ManualSortPosition: t.ManualSortPosition,
		CompletedAt:        t.CompletedAt,
		ArchivedAt:         t.ArchivedAt,
	}
}

func pickTime(current, next *time.Time, clear bool) *time.Time {
	if clear {
		return nil
	}
	if next != nil {
		return next
	}
	return current
}

// HasDue returns true if the task has a due date.
func (t Task) HasDue() bool {
	return t.DueAt != nil
}

// IsArchived returns true if the task is in the trash.
func (t Task) IsArchived() bool {
	return t.ArchivedAt != nil
}

// IsCompleted returns true if the task has been completed.
func (t Task) IsCompleted() bool {
	return t.CompletedAt != nil
}

// Section returns the section the task belongs to.
func (t Task) Section() SectionType {
	if t.HasDue() {
		return SectionWithDue
	}
	return SectionWithoutDue
}

// HasTag returns true if the task carries a tag with the given slug.
func (t Task) HasTag(slug string) bool {
	for _, tag := range t.Tags {
		if tag.Slug == slug {
			return true
		}
	}
	return false
}

// CopyTime returns a pointer to a fresh copy of *p, or nil.
func CopyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// TaskIDs returns the identifiers of tasks in order.
func TaskIDs(tasks []Task) []int {
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// FindTask returns the index of the task with the given ID, or -1.
func FindTask(tasks []Task, id int) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}
