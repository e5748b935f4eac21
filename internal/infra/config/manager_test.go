package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetProjectConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		projectPath := domain.ProjectConfigPath(t.TempDir())
		content := "[log]\nlevel = \"debug\""
		writeFile(t, projectPath, content)

		info := NewManagerWithPaths(projectPath, "").GetProjectConfigInfo()

		assert.Equal(t, projectPath, info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		projectPath := domain.ProjectConfigPath(t.TempDir())

		info := NewManagerWithPaths(projectPath, "").GetProjectConfigInfo()

		assert.Equal(t, projectPath, info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[seed]\n")

		info := NewManagerWithPaths("", globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info without global dir", func(t *testing.T) {
		info := NewManagerWithPaths("", "").GetGlobalConfigInfo()

		assert.Equal(t, domain.ConfigInfo{}, info)
	})
}

func TestManager_InitProjectConfig(t *testing.T) {
	projectPath := domain.ProjectConfigPath(t.TempDir())
	manager := NewManagerWithPaths(projectPath, "")

	require.NoError(t, manager.InitProjectConfig(domain.NewDefaultConfig()))

	content, err := os.ReadFile(projectPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[view]")
	assert.Contains(t, string(content), `level = "info"`)

	// The rendered template must load back without warnings.
	cfg, err := NewLoaderWithPaths(projectPath, "").Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.DefaultTitleWidth, cfg.TUI.TitleWidth)

	err = manager.InitProjectConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "nested", "taskboard")
	manager := NewManagerWithPaths("", globalDir)

	require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))

	info := manager.GetGlobalConfigInfo()
	assert.True(t, info.Exists)

	err := manager.InitGlobalConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitWithoutPaths(t *testing.T) {
	manager := NewManagerWithPaths("", "")

	assert.Error(t, manager.InitProjectConfig(domain.NewDefaultConfig()))
	assert.Error(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))
}
