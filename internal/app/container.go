// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/infra/memstore"
	"github.com/runoshun/taskboard/internal/infra/seed"
	"github.com/runoshun/taskboard/internal/urlsync"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir         string // Directory holding the project config
	ConfigPath      string // Project config file (empty = WorkDir/.taskboard.toml)
	GlobalConfigDir string // Global config directory (empty = XDG default)
	SeedPath        string // Task seed file (empty = [seed].file from config)
}

func (c Config) projectConfigPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return domain.ProjectConfigPath(c.WorkDir)
}

func (c Config) globalConfigDir() string {
	if c.GlobalConfigDir != "" {
		return c.GlobalConfigDir
	}
	return config.DefaultGlobalConfigDir()
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    func() error

	seedFile string

	// Configuration
	Config Config
}

// New creates a Container: it loads the configuration, opens the logger and
// seeds the in-memory task store.
func New(cfg Config) (*Container, error) {
	projectPath := cfg.projectConfigPath()
	globalDir := cfg.globalConfigDir()

	configLoader := config.NewLoaderWithPaths(projectPath, globalDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.FromConfig(appConfig.Log)
	if err != nil {
		return nil, err
	}

	var snap domain.Snapshot
	seedFile := seedPath(cfg, appConfig)
	if seedFile != "" {
		if snap, err = seed.Load(seedFile); err != nil {
			_ = logger.Close()
			return nil, err
		}
	}
	logger.Debug(0, "seed", fmt.Sprintf("loaded %d tasks from %q", len(snap.Tasks), seedFile))

	return &Container{
		Tasks:         memstore.New(snap),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithPaths(projectPath, globalDir),
		Logger:        logger,
		AppConfig:     appConfig,
		closer:        logger.Close,
		seedFile:      seedFile,
		Config:        cfg,
	}, nil
}

// seedPath returns the seed file named by --file or [seed].file.
// A relative [seed].file is resolved against WorkDir.
func seedPath(cfg Config, appConfig *domain.Config) string {
	if cfg.SeedPath != "" {
		return cfg.SeedPath
	}
	path := appConfig.Seed.File
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.WorkDir, path)
	}
	return path
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		seedFile:  cfg.SeedPath,
		Config:    cfg,
	}
}

// Close releases the resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// InitialViewState returns the view state configured in [view].
// A valid [view].query is overlaid on the default view and sort.
func (c *Container) InitialViewState() domain.ViewState {
	state := c.AppConfig.InitialViewState()
	if c.AppConfig.View.Query == "" {
		return state
	}
	withQuery, err := urlsync.Overlay(state, c.AppConfig.View.Query)
	if err != nil {
		c.Logger.Warn(0, "config", fmt.Sprintf("invalid [view].query: %v", err))
		return state
	}
	return withQuery
}

// SeedFile returns the seed file the store was loaded from ("" = none).
func (c *Container) SeedFile() string {
	return c.seedFile
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Clock, c.Logger)
}

// RestoreTaskUseCase returns a new RestoreTask use case.
func (c *Container) RestoreTaskUseCase() *usecase.RestoreTask {
	return usecase.NewRestoreTask(c.Tasks, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Clock, c.Logger)
}

// UncompleteTaskUseCase returns a new UncompleteTask use case.
func (c *Container) UncompleteTaskUseCase() *usecase.UncompleteTask {
	return usecase.NewUncompleteTask(c.Tasks, c.Logger)
}

// SetTaskDueUseCase returns a new SetTaskDue use case.
func (c *Container) SetTaskDueUseCase() *usecase.SetTaskDue {
	return usecase.NewSetTaskDue(c.Tasks, c.Logger)
}

// SetTaskPriorityUseCase returns a new SetTaskPriority use case.
func (c *Container) SetTaskPriorityUseCase() *usecase.SetTaskPriority {
	return usecase.NewSetTaskPriority(c.Tasks, c.Logger)
}

// SetTaskTagsUseCase returns a new SetTaskTags use case.
func (c *Container) SetTaskTagsUseCase() *usecase.SetTaskTags {
	return usecase.NewSetTaskTags(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ReorderTasksUseCase returns a new ReorderTasks use case.
func (c *Container) ReorderTasksUseCase() *usecase.ReorderTasks {
	return usecase.NewReorderTasks(c.Tasks, c.Logger)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Tasks, c.ReorderTasksUseCase())
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
