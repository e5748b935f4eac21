package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/infra/seed"
	"github.com/runoshun/taskboard/internal/testutil"
)

func TestExportCommand_YAML(t *testing.T) {
	stdout, _, err := runCommand(t, newTestContainer(newTestRepo()), "export")

	require.NoError(t, err)
	assert.Contains(t, stdout, "title: Write report")
	assert.Contains(t, stdout, "next_id: 4")

	snap, err := seed.Decode(strings.NewReader(stdout), seed.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, snap.Order)
	assert.True(t, snap.Tasks[1].HasDue())
}

func TestExportCommand_TOMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")

	stdout, _, err := runCommand(t, newTestContainer(newTestRepo()), "export", "--format", "toml", "-o", path)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	snap, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, snap.Tasks, 3)
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	_, _, err := runCommand(t, newTestContainer(newTestRepo()), "export", "--format", "json")

	assert.ErrorIs(t, err, seed.ErrUnknownFormat)
}

func TestURLCommand(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "defaults", args: []string{"url"}, want: "\n"},
		{name: "flags", args: []string{"url", "--tab", "trash", "--sort", "priority"}, want: "sort=priority&view=trash\n"},
		{name: "view query", args: []string{"--view", "tags=work,home&status=active", "url"}, want: "status=active&tags=work%2Chome\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCommand(t, newTestContainer(testutil.NewMockTaskRepository()), tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestConfigShowCommand(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository())
	loader := testutil.NewMockConfigLoader()
	c.ConfigLoader = loader

	stdout, _, err := runCommand(t, c, "config", "show", "--ignore-global")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "- /test/.taskboard.toml (not found)")
	assert.NotContains(t, stdout, "/home/test/.config/taskboard/config.toml")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "[view]")
	assert.True(t, loader.LastOptions.IgnoreGlobal)
	assert.False(t, loader.LastOptions.IgnoreProject)
}

func TestConfigInitCommand(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskRepository())
	manager := testutil.NewMockConfigManager()
	c.ConfigManager = manager

	stdout, _, err := runCommand(t, c, "config", "init", "--global")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: /home/test/.config/taskboard/config.toml\n", stdout)
	assert.True(t, manager.InitGlobalCalled)
	assert.False(t, manager.InitProjectCalled)
}

func TestConfigInitCommand_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	root := NewRootCommand(nil, dir, "test-version")
	root.SetOut(&strings.Builder{})
	root.SetArgs([]string{"config", "init"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, ".taskboard.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[view]")
}
