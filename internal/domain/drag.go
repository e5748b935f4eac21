package domain

import "slices"

// DragContext describes where a drag gesture started.
type DragContext struct {
	SourceSection SectionType
	Task          Task
	SourceIndex   int // Position within the visible list
}

// NewDragContext creates a DragContext.
func NewDragContext(sourceIndex int, sourceSection SectionType, task Task) DragContext {
	return DragContext{SourceIndex: sourceIndex, SourceSection: sourceSection, Task: task}
}

// DropTarget describes where a drag gesture ended.
type DropTarget struct {
	TargetSection SectionType
	TargetIndex   int // Position within the visible list
}

// NewDropTarget creates a DropTarget.
func NewDropTarget(targetIndex int, targetSection SectionType) DropTarget {
	return DropTarget{TargetIndex: targetIndex, TargetSection: targetSection}
}

// ReorderResult is the outcome of resolving a drop against the global order.
type ReorderResult struct {
	MovedTask      Task
	newGlobalOrder []int
}

// NewReorderResult creates a ReorderResult holding a copy of order.
func NewReorderResult(moved Task, order []int) ReorderResult {
	cp := slices.Clone(order)
	if cp == nil {
		cp = []int{}
	}
	return ReorderResult{MovedTask: moved, newGlobalOrder: cp}
}

// NewGlobalOrder returns a copy of the resolved global order.
func (r ReorderResult) NewGlobalOrder() []int {
	return slices.Clone(r.newGlobalOrder)
}

// InsertPosition selects where a transferred task lands in its new section.
type InsertPosition string

const (
	InsertHead InsertPosition = "head"
	InsertTail InsertPosition = "tail"
)

// SectionTransfer describes a due-date driven move between sections.
type SectionTransfer struct {
	Task           Task
	FromSection    SectionType
	ToSection      SectionType
	InsertPosition InsertPosition
}

// NewSectionTransfer creates a SectionTransfer.
func NewSectionTransfer(task Task, from, to SectionType, pos InsertPosition) SectionTransfer {
	return SectionTransfer{Task: task, FromSection: from, ToSection: to, InsertPosition: pos}
}
