package domain

import (
	"slices"
	"time"
)

// Snapshot is one consistent view of the store: every task plus the global order.
// Fields are ordered to minimize memory padding.
type Snapshot struct {
	Tasks      []Task // Every task, archived ones included
	Order      []int  // Global manual order of task IDs
	NextTaskID int    // Next identifier handed out by AddTask
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	var tasks []Task
	if s.Tasks != nil {
		tasks = make([]Task, len(s.Tasks))
		for i, t := range s.Tasks {
			tasks[i] = NewTask(t.params())
		}
	}
	return Snapshot{
		Tasks:      tasks,
		Order:      slices.Clone(s.Order),
		NextTaskID: s.NextTaskID,
	}
}

// Task returns the task with the given ID.
func (s Snapshot) Task(id int) (Task, bool) {
	if i := FindTask(s.Tasks, id); i >= 0 {
		return s.Tasks[i], true
	}
	return Task{}, false
}

// Replace swaps the task with the same ID for t.
// It returns false if no such task exists.
func (s *Snapshot) Replace(t Task) bool {
	i := FindTask(s.Tasks, t.ID)
	if i < 0 {
		return false
	}
	s.Tasks[i] = t
	return true
}

// TaskRepository holds the authoritative task collection and global order.
type TaskRepository interface {
	// Snapshot returns a copy of the current state.
	Snapshot() (Snapshot, error)

	// Update runs fn on a copy of the current state while holding the write lock.
	// If fn returns nil the modified copy replaces the state in a single assignment.
	Update(fn func(*Snapshot) error) error
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig writes the default template to the project config path.
	InitProjectConfig(cfg *Config) error

	// InitGlobalConfig writes the default template to the global config path.
	InitGlobalConfig(cfg *Config) error
}

// Logger records application events.
// taskID 0 means the entry is not tied to a task.
type Logger interface {
	Info(taskID int, category, msg string)
	Debug(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
