package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectPath   string // Path to the project config file (.taskboard.toml)
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskboard)
}

// NewManager creates a Manager for the project config in projectDir.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectPath:   domain.ProjectConfigPath(projectDir),
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewManagerWithPaths creates a Manager with an explicit project config file
// and global config directory.
func NewManagerWithPaths(projectPath, globalConfDir string) *Manager {
	return &Manager{
		projectPath:   projectPath,
		globalConfDir: globalConfDir,
	}
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	if m.projectPath == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(m.projectPath)
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig creates the project config file with the default template.
func (m *Manager) InitProjectConfig(cfg *domain.Config) error {
	if m.projectPath == "" {
		return errors.New("project config path not available")
	}
	return m.initConfig(m.projectPath, cfg)
}

// InitGlobalConfig creates the global config file with the default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}
	if err := os.MkdirAll(m.globalConfDir, 0700); err != nil {
		return err
	}
	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName), cfg)
}

// initConfig creates a config file with the default template.
func (m *Manager) initConfig(path string, cfg *domain.Config) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	return os.WriteFile(path, []byte(domain.RenderConfigTemplate(cfg)), 0600)
}
