package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrAlreadyHasDue    = errors.New("task already has a due date")
	ErrNoDue            = errors.New("task does not have a due date")
	ErrNoDueUseAdd      = errors.New("task does not have a due date, use AddDue instead")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidSortType  = errors.New("invalid sort type")
	ErrInvalidViewType  = errors.New("invalid view type")
	ErrInvalidStatus    = errors.New("invalid status filter")
	ErrInvalidSection   = errors.New("invalid section")
	ErrInvalidDueFilter = errors.New("invalid due filter")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrConfigExists     = errors.New("config file already exists")
	ErrDragDropDisabled = errors.New("drag and drop requires manual sort")
)
