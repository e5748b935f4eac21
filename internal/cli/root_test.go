package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/seed"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockTaskRepository) *app.Container {
	container := app.NewWithDeps(
		app.Config{},
		repo,
		&testutil.MockClock{NowTime: testNow},
		&testutil.MockLogger{},
	)
	container.ConfigLoader = testutil.NewMockConfigLoader()
	container.ConfigManager = testutil.NewMockConfigManager()
	return container
}

// runCommand executes the root command with args and returns stdout and stderr.
func runCommand(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, t.TempDir(), "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	original := launchTUIFunc
	defer func() { launchTUIFunc = original }()

	var state domain.ViewState
	called := false
	launchTUIFunc = func(_ context.Context, _ *app.Container, s domain.ViewState) error {
		called = true
		state = s
		return nil
	}

	_, _, err := runCommand(t, newTestContainer(testutil.NewMockTaskRepository()), "--view", "view=trash")

	require.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
	assert.Equal(t, domain.ViewTrash, state.View)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	original := launchTUIFunc
	defer func() { launchTUIFunc = original }()

	called := false
	launchTUIFunc = func(_ context.Context, _ *app.Container, _ domain.ViewState) error {
		called = true
		return nil
	}

	stdout, _, err := runCommand(t, nil, "--help")

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, stdout, "Task Management:")
	assert.Contains(t, stdout, "Views:")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository())
	c.AppConfig.Warnings = []string{"unknown key in [view]: colour"}

	_, stderr, err := runCommand(t, c, "url")

	require.NoError(t, err)
	assert.Equal(t, "Warning: unknown key in [view]: colour\n", stderr)
}

func TestNewRootCommand_InvalidView(t *testing.T) {
	_, _, err := runCommand(t, newTestContainer(testutil.NewMockTaskRepository()), "--view", "q=%zz", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --view")
}

func TestNewRootCommand_SaveWithoutSeedFile(t *testing.T) {
	_, _, err := runCommand(t, newTestContainer(testutil.NewMockTaskRepository()), "--save", "add", "New task")

	assert.ErrorIs(t, err, errNoSeedFile)
}

func TestNewRootCommand_SaveWritesSeedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	seedFile := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(seedFile, []byte("tasks:\n  - id: 1\n    title: First\n"), 0o600))

	root := NewRootCommand(nil, dir, "test-version")
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--file", seedFile, "--save", "add", "Second", "--due", "2026-02-01"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Created task #2\n", stdout.String())

	snap, err := seed.Load(seedFile)
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, []int{1, 2}, snap.Order)
	assert.Equal(t, "Second", snap.Tasks[1].Title)
	assert.True(t, snap.Tasks[1].HasDue())
	assert.Equal(t, 3, snap.NextTaskID)
}

func TestNewRootCommand_ReadOnlyCommandDoesNotSave(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	seedFile := filepath.Join(dir, "tasks.yaml")
	content := "tasks:\n  - id: 1\n    title: First\n"
	require.NoError(t, os.WriteFile(seedFile, []byte(content), 0o600))

	root := NewRootCommand(nil, dir, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--file", seedFile, "--save", "list"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(seedFile)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
