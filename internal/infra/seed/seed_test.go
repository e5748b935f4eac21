package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSeed = `
order: [2, 1, 3]
tasks:
  - id: 1
    title: Write report
    description: Quarterly numbers
    priority: high
    created_at: 2026-01-01T09:00:00Z
    due_at: 2026-01-14T00:00:00Z
    position: 1000
    tags:
      - slug: work
        name: Work
        id: 1
      - slug: work
  - id: 2
    title: Buy milk
    created_at: 2026-01-02T09:00:00Z
  - id: 3
    title: Old idea
    archived_at: 2026-01-03T00:00:00Z
`

const tomlSeed = `
order = [3, 1]
next_id = 10

[[tasks]]
id = 1
title = "Write report"
priority = "low"
created_at = 2026-01-01T09:00:00Z
due_at = 2026-01-14T00:00:00Z

  [[tasks.tags]]
  slug = "home"

[[tasks]]
id = 3
title = "Call bank"
created_at = 2026-01-02T09:00:00Z
completed_at = 2026-01-05T12:00:00Z
`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"tasks.yaml", FormatYAML, false},
		{"tasks.YML", FormatYAML, false},
		{"dir/tasks.toml", FormatTOML, false},
		{"tasks.json", "", true},
		{"tasks", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_YAML(t *testing.T) {
	snap, err := Decode(strings.NewReader(yamlSeed), FormatYAML)
	require.NoError(t, err)

	require.Len(t, snap.Tasks, 3)
	assert.Equal(t, []int{2, 1, 3}, snap.Order)
	assert.Equal(t, 4, snap.NextTaskID)

	report := snap.Tasks[0]
	assert.Equal(t, "task-1", report.Slug)
	assert.Equal(t, "Quarterly numbers", report.Description)
	assert.Equal(t, domain.PriorityHigh, report.Priority)
	assert.Equal(t, 1000, report.ManualSortPosition)
	require.NotNil(t, report.DueAt)
	assert.True(t, report.DueAt.Equal(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []domain.Tag{domain.NewTag(1, "work", "Work")}, report.Tags)

	assert.Equal(t, domain.PriorityNone, snap.Tasks[1].Priority)
	assert.True(t, snap.Tasks[2].IsArchived())
}

func TestDecode_TOML(t *testing.T) {
	snap, err := Decode(strings.NewReader(tomlSeed), FormatTOML)
	require.NoError(t, err)

	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, []int{3, 1}, snap.Order)
	assert.Equal(t, 10, snap.NextTaskID)
	assert.Equal(t, domain.PriorityLow, snap.Tasks[0].Priority)
	assert.Equal(t, []domain.Tag{domain.NewTag(0, "home", "home")}, snap.Tasks[0].Tags)
	assert.True(t, snap.Tasks[1].IsCompleted())
}

func TestDecode_DefaultsOrderAndIDs(t *testing.T) {
	input := `
tasks:
  - title: Third
    position: 2000
  - id: 5
    title: First
  - title: Second
    position: 1000
`
	snap, err := Decode(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []int{6, 5, 7}, domain.TaskIDs(snap.Tasks))
	assert.Equal(t, []int{5, 7, 6}, snap.Order)
	assert.Equal(t, 8, snap.NextTaskID)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty title", input: "tasks:\n  - id: 1\n    title: ' '\n", want: "title cannot be empty"},
		{name: "bad priority", input: "tasks:\n  - id: 1\n    title: a\n    priority: urgent\n", want: "invalid priority"},
		{name: "duplicate id", input: "tasks:\n  - id: 1\n    title: a\n  - id: 1\n    title: b\n", want: "duplicate id"},
		{name: "empty tag slug", input: "tasks:\n  - id: 1\n    title: a\n    tags: [{name: x}]\n", want: "empty slug"},
		{name: "malformed", input: "tasks: [", want: "decode yaml seed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format("json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncode_RoundTrip(t *testing.T) {
	due := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	snap := domain.Snapshot{
		Tasks: []domain.Task{
			domain.NewTask(domain.TaskParams{
				ID:                 1,
				Slug:               "report",
				Title:              "Write report",
				Priority:           domain.PriorityMedium,
				Tags:               []domain.Tag{domain.NewTag(2, "work", "Work")},
				DueAt:              &due,
				CreatedAt:          time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
				ManualSortPosition: -1000,
			}),
			domain.NewTask(domain.TaskParams{
				ID:        2,
				Slug:      "task-2",
				Title:     "Buy milk",
				CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
			}),
		},
		Order:      []int{2, 1},
		NextTaskID: 3,
	}

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, snap))

			got, err := Decode(&buf, format)
			require.NoError(t, err)

			assert.Equal(t, snap.Order, got.Order)
			assert.Equal(t, snap.NextTaskID, got.NextTaskID)
			require.Len(t, got.Tasks, len(snap.Tasks))
			for i, want := range snap.Tasks {
				g := got.Tasks[i]
				assert.Equal(t, want.ID, g.ID)
				assert.Equal(t, want.Slug, g.Slug)
				assert.Equal(t, want.Title, g.Title)
				assert.Equal(t, want.Priority, g.Priority)
				assert.Equal(t, want.Tags, g.Tags)
				assert.Equal(t, want.ManualSortPosition, g.ManualSortPosition)
				assert.True(t, want.CreatedAt.Equal(g.CreatedAt))
				assert.Equal(t, want.HasDue(), g.HasDue())
				if want.HasDue() {
					assert.True(t, want.DueAt.Equal(*g.DueAt))
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSeed), 0644))

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, snap.Tasks, 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "tasks.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncode_TOMLWritesNativeDatetimes(t *testing.T) {
	due := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	snap := domain.Snapshot{
		Tasks: []domain.Task{
			domain.NewTask(domain.TaskParams{ID: 1, Title: "Due", DueAt: &due}),
		},
		Order:      []int{1},
		NextTaskID: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatTOML, snap))
	out := buf.String()

	assert.Contains(t, out, "due_at = 2026-01-14T00:00:00Z")
	assert.NotContains(t, out, "created_at")
	assert.NotContains(t, out, "completed_at")
	assert.NotContains(t, out, "archived_at")

	got, err := Decode(strings.NewReader(out), FormatTOML)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	require.NotNil(t, got.Tasks[0].DueAt)
	assert.True(t, due.Equal(*got.Tasks[0].DueAt))
	assert.True(t, got.Tasks[0].CreatedAt.IsZero())
	assert.False(t, got.Tasks[0].IsCompleted())
	assert.False(t, got.Tasks[0].IsArchived())
}

func TestDecode_TOMLTimeForms(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "offset datetime", value: "2026-01-14T09:30:00Z", want: time.Date(2026, 1, 14, 9, 30, 0, 0, time.UTC)},
		{name: "local date", value: "2026-01-14", want: time.Date(2026, 1, 14, 0, 0, 0, 0, time.Local)},
		{name: "local datetime", value: "2026-01-14T09:30:00", want: time.Date(2026, 1, 14, 9, 30, 0, 0, time.Local)},
		{name: "quoted rfc3339", value: "'2026-01-14T00:00:00Z'", want: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)},
		{name: "quoted date", value: "'2026-01-14'", want: time.Date(2026, 1, 14, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "[[tasks]]\nid = 1\ntitle = 'a'\ndue_at = " + tt.value + "\n"
			snap, err := Decode(strings.NewReader(input), FormatTOML)
			require.NoError(t, err)
			require.NotNil(t, snap.Tasks[0].DueAt)
			assert.True(t, tt.want.Equal(*snap.Tasks[0].DueAt), "got %v", *snap.Tasks[0].DueAt)
		})
	}
}

func TestDecode_TOMLInvalidTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "bad string", value: "'soon'", want: `due_at: invalid time "soon"`},
		{name: "number", value: "12", want: "due_at: unsupported value of type int64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "[[tasks]]\nid = 1\ntitle = 'a'\ndue_at = " + tt.value + "\n"
			_, err := Decode(strings.NewReader(input), FormatTOML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
