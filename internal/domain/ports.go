package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	// Returns true if the store was newly created.
	Initialize() (bool, error)
}

// ProjectRepository manages project persistence.
type ProjectRepository interface {
	// ListProjects returns all projects in creation order.
	ListProjects() ([]*Project, error)

	// GetProject retrieves a project by ID. Returns nil if not found.
	GetProject(id string) (*Project, error)

	// SaveProject creates or updates a project.
	SaveProject(project *Project) error

	// DeleteProject removes a project and every task referencing it.
	DeleteProject(id string) error

	// PersistProjects replaces the whole project list.
	PersistProjects(projects []*Project) error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// ListTasks returns all tasks of all projects in creation order.
	ListTasks() ([]*Task, error)

	// ListTasksForProject returns the tasks of one project in creation order.
	ListTasksForProject(projectID string) ([]*Task, error)

	// FindTaskByExactTitle returns the first task whose title equals the
	// trimmed title, across all projects. Returns nil if none matches.
	FindTaskByExactTitle(title string) (*Task, error)

	// GetTask retrieves a task by ID. Returns nil if not found.
	GetTask(id string) (*Task, error)

	// CreateTask builds a task with default fields, persists it and returns it.
	CreateTask(projectID, title, desc string, status Status) (*Task, error)

	// SaveTask creates or updates a task.
	SaveTask(task *Task) error

	// DeleteTask removes a task by ID.
	DeleteTask(id string) error

	// PersistTasks replaces the whole task list. Idempotent.
	PersistTasks(tasks []*Task) error
}

// ProjectSelector exposes the externally owned "current project" selection.
// The assistant reads it and never writes it.
type ProjectSelector interface {
	// CurrentProject returns the selected project, or nil when none is selected
	// or the selected project no longer exists.
	CurrentProject() (*Project, error)
}

// SelectionWriter changes the current project selection.
type SelectionWriter interface {
	// SelectProject marks the project as current. An empty ID clears the selection.
	SelectProject(id string) error
}

// Store is the full persistence surface implemented by the storage backends.
type Store interface {
	StoreInitializer
	ProjectRepository
	TaskRepository
	ProjectSelector
	SelectionWriter
	Close() error
}

// GenerationOptions controls one completion call.
type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultGenerationOptions matches the fixed generation configuration of the assistant.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		MaxOutputTokens: 1000,
		Temperature:     0.7,
	}
}

// Completer exchanges a prompt for a reply with a remote language model.
type Completer interface {
	// Complete issues exactly one call. Failures are *RemoteCallError.
	Complete(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// Logger provides structured logging.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string, string)  {}
func (NopLogger) Debug(string, string) {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- data dir).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the data dir config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig writes the template to the data dir config file.
	InitLocalConfig(cfg *Config, force bool) error

	// InitGlobalConfig writes the template to the global config file.
	InitGlobalConfig(cfg *Config, force bool) error
}

// ConfigInfo describes one config file location.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
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
