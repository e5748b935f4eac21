package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_IsValid(t *testing.T) {
	for _, v := range AllViewTypes() {
		assert.True(t, v.IsValid(), v)
	}
	assert.False(t, ViewType("archive").IsValid())
	assert.False(t, ViewType("").IsValid())
}

func TestViewType_Next(t *testing.T) {
	assert.Equal(t, ViewProject, ViewInbox.Next())
	assert.Equal(t, ViewTrash, ViewProject.Next())
	assert.Equal(t, ViewInbox, ViewTrash.Next())
	assert.Equal(t, ViewInbox, ViewType("bogus").Next())
}

func TestSortType_IsValid(t *testing.T) {
	for _, s := range AllSortTypes() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, SortType("title").IsValid())
}

func TestSortType_Next(t *testing.T) {
	assert.Equal(t, SortCreatedAt, SortManual.Next())
	assert.Equal(t, SortManual, SortPriority.Next())
}

func TestSortType_Display(t *testing.T) {
	assert.Equal(t, "Manual", SortManual.Display())
	assert.Equal(t, "Due", SortDueAt.Display())
	assert.Equal(t, "other", SortType("other").Display())
}

func TestStatusFilter_IsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, StatusAny.IsValid())
	assert.False(t, StatusFilter("done").IsValid())
}
