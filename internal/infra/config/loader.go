// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectPath   string // Path to the project config file (.taskboard.toml)
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskboard)
}

// NewLoader creates a Loader reading the project config from projectDir.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectPath:   domain.ProjectConfigPath(projectDir),
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithPaths creates a Loader with an explicit project config file
// and global config directory. Used by --config and tests.
func NewLoaderWithPaths(projectPath, globalConfDir string) *Loader {
	return &Loader{
		projectPath:   projectPath,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectPath == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(l.projectPath)
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load global config: %w", err)
		}
	}

	if !opts.IgnoreProject {
		project, err = l.LoadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load project config: %w", err)
		}
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}
	return base, nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "view":
			for k, v := range m {
				switch k {
				case "default":
					res.View.Default = stringValue(v)
				case "sort":
					res.View.Sort = stringValue(v)
				case "query":
					res.View.Query = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [view]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.Log.Level = stringValue(v)
				case "file":
					res.Log.File = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "seed":
			for k, v := range m {
				switch k {
				case "file":
					res.Seed.File = stringValue(v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [seed]: %s", k))
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "title_width":
					if n, ok := v.(int64); ok {
						res.TUI.TitleWidth = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		View:     base.View,
		Log:      base.Log,
		Seed:     base.Seed,
		TUI:      base.TUI,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.View.Default != "" {
		result.View.Default = override.View.Default
	}
	if override.View.Sort != "" {
		result.View.Sort = override.View.Sort
	}
	if override.View.Query != "" {
		result.View.Query = override.View.Query
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Seed.File != "" {
		result.Seed.File = override.Seed.File
	}
	if override.TUI.TitleWidth > 0 {
		result.TUI.TitleWidth = override.TUI.TitleWidth
	}

	return result
}
