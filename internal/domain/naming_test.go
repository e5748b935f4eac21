package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskSlug(t *testing.T) {
	assert.Equal(t, "task-1", TaskSlug(1))
	assert.Equal(t, "task-42", TaskSlug(42))
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.config", "taskboard", "config.toml"), GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, filepath.Join("/work", ".taskboard.toml"), ProjectConfigPath("/work"))
}
