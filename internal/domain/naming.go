package domain

import (
	"fmt"
	"path/filepath"
)

// Configuration file names.
const (
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".taskboard.toml"
	appDirName            = "taskboard"
)

// TaskSlug returns the default slug for a task.
// Format: task-<id>
func TaskSlug(taskID int) string {
	return fmt.Sprintf("task-%d", taskID)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, appDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config file path inside dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}
