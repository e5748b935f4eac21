package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
)

// listRows returns the INDEX and ID fields of every task row.
func listRows(out string) [][2]string {
	var rows [][2]string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] == "INDEX" {
			continue
		}
		if strings.Trim(fields[0], "0123456789") != "" {
			continue
		}
		rows = append(rows, [2]string{fields[0], fields[1]})
	}
	return rows
}

func TestListCommand(t *testing.T) {
	stdout, _, err := runCommand(t, newTestContainer(newTestRepo()), "list")

	require.NoError(t, err)
	assert.Contains(t, stdout, "With due date (1)")
	assert.Contains(t, stdout, "No due date (2)")
	assert.Contains(t, stdout, "2026-03-01")
	assert.Equal(t, [][2]string{{"0", "2"}, {"1", "1"}, {"2", "3"}}, listRows(stdout))
}

func TestListCommand_Empty(t *testing.T) {
	stdout, _, err := runCommand(t, newTestContainer(testutil.NewMockTaskRepository()), "list")

	require.NoError(t, err)
	assert.Equal(t, "No tasks\n", stdout)
}

func TestListCommand_ViewFilter(t *testing.T) {
	stdout, _, err := runCommand(t, newTestContainer(newTestRepo()), "--view", "q=milk", "list")

	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"0", "3"}}, listRows(stdout))
}

func TestListCommand_TabAndSort(t *testing.T) {
	repo := newTestRepo()
	_, _, err := runCommand(t, newTestContainer(repo), "rm", "1")
	require.NoError(t, err)

	stdout, _, err := runCommand(t, newTestContainer(repo), "list", "--tab", "trash")
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"0", "1"}}, listRows(stdout))

	stdout, _, err = runCommand(t, newTestContainer(repo), "list", "--sort", "createdAt")
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"0", "2"}, {"1", "3"}}, listRows(stdout))
}

func TestListCommand_InvalidFlags(t *testing.T) {
	_, _, err := runCommand(t, newTestContainer(newTestRepo()), "list", "--tab", "archive")
	assert.ErrorIs(t, err, domain.ErrInvalidViewType)

	_, _, err = runCommand(t, newTestContainer(newTestRepo()), "list", "--sort", "title")
	assert.ErrorIs(t, err, domain.ErrInvalidSortType)
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		width int
	}{
		{name: "fits", title: "Buy milk", width: 10, want: "Buy milk"},
		{name: "truncated", title: "Write the quarterly report", width: 10, want: "Write t..."},
		{name: "wide runes", title: "日本語のタスク", width: 8, want: "日本..."},
		{name: "disabled", title: "Write the quarterly report", width: 0, want: "Write the quarterly report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateTitle(tt.title, tt.width))
		})
	}
}

// =============================================================================
// Move
// =============================================================================

func TestMoveCommand(t *testing.T) {
	repo := newTestRepo()

	// Visible order is [2 | 1 3]; move task 3 above task 1.
	stdout, _, err := runCommand(t, newTestContainer(repo), "move", "3", "--to", "1")

	require.NoError(t, err)
	assert.Equal(t, "Moved task #3\nOrder: 2 3 1\n", stdout)
	assert.Equal(t, []int{2, 3, 1}, repo.Data.Order)
	assert.Equal(t, 0, repo.Task(2).ManualSortPosition)
	assert.Equal(t, domain.PositionGap, repo.Task(3).ManualSortPosition)
	assert.Equal(t, 2*domain.PositionGap, repo.Task(1).ManualSortPosition)
}

func TestMoveCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{
			name:    "sorted by priority",
			args:    []string{"--view", "sort=priority", "move", "3", "--to", "0"},
			wantErr: domain.ErrDragDropDisabled,
		},
		{
			name:    "unknown task",
			args:    []string{"move", "99", "--to", "0"},
			wantErr: domain.ErrTaskNotFound,
		},
		{
			name:    "hidden by filter",
			args:    []string{"--view", "q=milk", "move", "1", "--to", "0"},
			wantErr: domain.ErrTaskNotFound,
		},
		{
			name:    "invalid section",
			args:    []string{"move", "3", "--to", "0", "--section", "later"},
			wantErr: domain.ErrInvalidSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()

			_, _, err := runCommand(t, newTestContainer(repo), tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []int{1, 2, 3}, repo.Data.Order)
		})
	}
}

func TestMoveCommand_RequiresTo(t *testing.T) {
	_, _, err := runCommand(t, newTestContainer(newTestRepo()), "move", "3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "to")
}
