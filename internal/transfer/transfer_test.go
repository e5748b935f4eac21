package transfer

import (
	"testing"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDue = time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)

type taskOpt func(*domain.TaskParams)

func withDue(d time.Time) taskOpt {
	return func(p *domain.TaskParams) { p.DueAt = &d }
}

func withPosition(pos int) taskOpt {
	return func(p *domain.TaskParams) { p.ManualSortPosition = pos }
}

func archived() taskOpt {
	return func(p *domain.TaskParams) {
		at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		p.ArchivedAt = &at
	}
}

func newTestTask(id int, opts ...taskOpt) domain.Task {
	p := domain.TaskParams{
		ID:                 id,
		Slug:               domain.TaskSlug(id),
		Title:              "Task",
		CreatedAt:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ManualSortPosition: id * 100,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return domain.NewTask(p)
}

func TestAddDue(t *testing.T) {
	tests := []struct {
		name    string
		withDue []domain.Task
		wantPos int
	}{
		{name: "empty section", withDue: nil, wantPos: -1000},
		{
			name: "before smallest key",
			withDue: []domain.Task{
				newTestTask(2, withDue(testDue), withPosition(500)),
				newTestTask(3, withDue(testDue), withPosition(1000)),
			},
			wantPos: -500,
		},
		{
			name: "negative keys",
			withDue: []domain.Task{
				newTestTask(2, withDue(testDue), withPosition(-3000)),
			},
			wantPos: -4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTestTask(1, withPosition(500))

			res, err := AddDue(task, testDue, tt.withDue)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, res.NewManualSortPosition)
			assert.Equal(t, tt.wantPos, res.UpdatedTask.ManualSortPosition)
			require.NotNil(t, res.UpdatedTask.DueAt)
			assert.True(t, res.UpdatedTask.DueAt.Equal(testDue))
			assert.Equal(t, domain.SectionWithoutDue, res.Transfer.FromSection)
			assert.Equal(t, domain.SectionWithDue, res.Transfer.ToSection)
			assert.Equal(t, domain.InsertHead, res.Transfer.InsertPosition)
			assert.Equal(t, task, res.Transfer.Task)
			assert.False(t, res.Transfer.Task.HasDue())
			assert.Equal(t, 500, res.Transfer.Task.ManualSortPosition)
		})
	}
}

func TestAddDue_AlreadyHasDue(t *testing.T) {
	task := newTestTask(1, withDue(testDue))

	_, err := AddDue(task, testDue, nil)

	assert.ErrorIs(t, err, domain.ErrAlreadyHasDue)
	assert.EqualError(t, err, "task already has a due date")
}

func TestAddDue_DoesNotMutateInput(t *testing.T) {
	task := newTestTask(1, withPosition(300))

	res, err := AddDue(task, testDue, nil)

	require.NoError(t, err)
	assert.Nil(t, task.DueAt)
	assert.Equal(t, 300, task.ManualSortPosition)
	assert.NotNil(t, res.UpdatedTask.DueAt)
}

func TestRemoveDue(t *testing.T) {
	tests := []struct {
		name       string
		withoutDue []domain.Task
		wantPos    int
	}{
		{name: "empty section", withoutDue: nil, wantPos: 1000},
		{
			name: "after largest key",
			withoutDue: []domain.Task{
				newTestTask(2, withPosition(500)),
				newTestTask(3, withPosition(2500)),
			},
			wantPos: 3500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTestTask(1, withDue(testDue))

			res, err := RemoveDue(task, tt.withoutDue)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, res.NewManualSortPosition)
			assert.Equal(t, tt.wantPos, res.UpdatedTask.ManualSortPosition)
			assert.Nil(t, res.UpdatedTask.DueAt)
			assert.Equal(t, domain.SectionWithDue, res.Transfer.FromSection)
			assert.Equal(t, domain.SectionWithoutDue, res.Transfer.ToSection)
			assert.Equal(t, domain.InsertTail, res.Transfer.InsertPosition)
			assert.Equal(t, task, res.Transfer.Task)
			assert.True(t, res.Transfer.Task.HasDue())
		})
	}
}

func TestRemoveDue_NoDue(t *testing.T) {
	_, err := RemoveDue(newTestTask(1), nil)

	assert.ErrorIs(t, err, domain.ErrNoDue)
	assert.EqualError(t, err, "task does not have a due date")
}

func TestChangeDue(t *testing.T) {
	task := newTestTask(1, withDue(testDue), withPosition(700))
	next := testDue.AddDate(0, 0, 3)

	got, err := ChangeDue(task, next)

	require.NoError(t, err)
	require.NotNil(t, got.DueAt)
	assert.True(t, got.DueAt.Equal(next))
	assert.Equal(t, 700, got.ManualSortPosition)
	assert.True(t, task.DueAt.Equal(testDue), "input must not change")
}

func TestChangeDue_NoDue(t *testing.T) {
	_, err := ChangeDue(newTestTask(1), testDue)

	assert.ErrorIs(t, err, domain.ErrNoDueUseAdd)
	assert.EqualError(t, err, "task does not have a due date, use AddDue instead")
}

func TestSetTaskDueInList(t *testing.T) {
	tasks := []domain.Task{
		newTestTask(1),
		newTestTask(2, withDue(testDue), withPosition(200)),
		newTestTask(3, withDue(testDue), withPosition(-9000), archived()),
		newTestTask(4, withPosition(4000)),
		newTestTask(5, withPosition(99000), archived()),
	}

	t.Run("adds due at head ignoring archived tasks", func(t *testing.T) {
		due := testDue.AddDate(0, 0, 1)
		got, err := SetTaskDueInList(tasks, 1, &due)

		require.NoError(t, err)
		require.NotNil(t, got[0].DueAt)
		assert.True(t, got[0].DueAt.Equal(due))
		assert.Equal(t, -800, got[0].ManualSortPosition)
		assert.Nil(t, tasks[0].DueAt, "input must not change")
		assert.Equal(t, tasks[1:], got[1:])
	})

	t.Run("clears due at tail ignoring archived tasks", func(t *testing.T) {
		got, err := SetTaskDueInList(tasks, 2, nil)

		require.NoError(t, err)
		assert.Nil(t, got[1].DueAt)
		assert.Equal(t, 5000, got[1].ManualSortPosition)
		assert.NotNil(t, tasks[1].DueAt)
	})

	t.Run("changes existing due in place", func(t *testing.T) {
		due := testDue.AddDate(0, 1, 0)
		got, err := SetTaskDueInList(tasks, 2, &due)

		require.NoError(t, err)
		assert.True(t, got[1].DueAt.Equal(due))
		assert.Equal(t, 200, got[1].ManualSortPosition)
	})

	t.Run("missing id returns input", func(t *testing.T) {
		got, err := SetTaskDueInList(tasks, 42, nil)

		require.NoError(t, err)
		assert.Same(t, &tasks[0], &got[0])
	})

	t.Run("clearing a task without due returns input", func(t *testing.T) {
		got, err := SetTaskDueInList(tasks, 4, nil)

		require.NoError(t, err)
		assert.Same(t, &tasks[0], &got[0])
	})

	t.Run("does not alias caller date", func(t *testing.T) {
		due := testDue
		got, err := SetTaskDueInList(tasks, 1, &due)
		require.NoError(t, err)

		due = due.AddDate(1, 0, 0)
		assert.True(t, got[0].DueAt.Equal(testDue))
	})
}

func TestSetTaskDueInList_ChangedRecordOwnsItsDate(t *testing.T) {
	tasks := []domain.Task{
		newTestTask(1, withDue(testDue)),
		newTestTask(2, withDue(testDue)),
	}
	later := testDue.AddDate(0, 0, 7)

	got, err := SetTaskDueInList(tasks, 1, &later)

	require.NoError(t, err)
	assert.NotSame(t, tasks[0].DueAt, got[0].DueAt)
	assert.NotSame(t, &later, got[0].DueAt)
	assert.True(t, tasks[0].DueAt.Equal(testDue))

	later = later.AddDate(1, 0, 0)
	assert.Equal(t, 2026, got[0].DueAt.Year())
	assert.Equal(t, tasks[1], got[1])
}
