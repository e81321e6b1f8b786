// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sevencode7/tasks/internal/assistant"
	"github.com/sevencode7/tasks/internal/domain"
	"github.com/sevencode7/tasks/internal/infra/badgerstore"
	"github.com/sevencode7/tasks/internal/infra/config"
	"github.com/sevencode7/tasks/internal/infra/gemini"
	"github.com/sevencode7/tasks/internal/infra/jsonstore"
	"github.com/sevencode7/tasks/internal/infra/logging"
	"github.com/sevencode7/tasks/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir   string // Data directory (store, config, logs)
	StorePath string // Path to tasks.json
	BadgerDir string // Path to the badger directory
}

// newConfig derives every path from the data directory.
func newConfig(dataDir string) Config {
	return Config{
		DataDir:   dataDir,
		StorePath: filepath.Join(dataDir, domain.StoreFileName),
		BadgerDir: filepath.Join(dataDir, domain.BadgerDirName),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.Store
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	FileLogger    domain.Logger

	// Completer is nil when no API key is configured.
	Completer domain.Completer

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config

	closers []func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
// An empty dataDir resolves to TASKS_DATA_DIR or the XDG data home.
func New(ctx context.Context, dataDir string) (*Container, error) {
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	if dataDir == "" {
		return nil, errors.New("cannot resolve data directory (set TASKS_DATA_DIR)")
	}
	cfg := newConfig(dataDir)

	configLoader := config.NewLoader(cfg.DataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	clock := domain.RealClock{}
	store, err := openStore(cfg, appConfig.Store.Type, clock)
	if err != nil {
		return nil, err
	}

	fileLogger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Store:         store,
		Clock:         clock,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.DataDir),
		FileLogger:    fileLogger,
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
		closers:       []func() error{store.Close, fileLogger.Close},
	}

	if appConfig.Assistant.APIKey != "" {
		completer, err := gemini.New(ctx, appConfig.Assistant.APIKey, appConfig.Assistant.Model)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.Completer = completer
	}

	return c, nil
}

// openStore opens the storage backend named by storeType.
func openStore(cfg Config, storeType string, clock domain.Clock) (domain.Store, error) {
	switch storeType {
	case domain.StoreJSON, "":
		return jsonstore.New(cfg.StorePath, clock), nil
	case domain.StoreBadger:
		store, err := badgerstore.Open(cfg.BadgerDir, clock)
		if err != nil {
			return nil, fmt.Errorf("open badger store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%q: %w", storeType, domain.ErrUnknownStore)
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.Store, completer domain.Completer, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Store:      store,
		Completer:  completer,
		Clock:      clock,
		FileLogger: domain.NopLogger{},
		Logger:     logger,
		AppConfig:  domain.NewDefaultConfig(),
		Config:     cfg,
	}
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// Assistant returns a new assistant with its own conversation history.
func (c *Container) Assistant() *assistant.Assistant {
	opts := assistant.DefaultOptions()
	if c.AppConfig != nil {
		opts.Generation = c.AppConfig.GenerationOptions()
		opts.HistoryWindow = c.AppConfig.Assistant.HistoryWindow
	}
	return assistant.New(c.Completer, c.Store, c.Store, c.Store, c.Clock, c.FileLogger, opts)
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.Store, c.FileLogger)
}

// NewProjectUseCase returns a new NewProject use case.
func (c *Container) NewProjectUseCase() *usecase.NewProject {
	return usecase.NewNewProject(c.Store, c.Store, c.Store, c.Clock, c.FileLogger)
}

// ListProjectsUseCase returns a new ListProjects use case.
func (c *Container) ListProjectsUseCase() *usecase.ListProjects {
	return usecase.NewListProjects(c.Store, c.Store, c.Store)
}

// SelectProjectUseCase returns a new SelectProject use case.
func (c *Container) SelectProjectUseCase() *usecase.SelectProject {
	return usecase.NewSelectProject(c.Store, c.Store)
}

// ArchiveProjectUseCase returns a new ArchiveProject use case.
func (c *Container) ArchiveProjectUseCase() *usecase.ArchiveProject {
	return usecase.NewArchiveProject(c.Store, c.Clock)
}

// DeleteProjectUseCase returns a new DeleteProject use case.
func (c *Container) DeleteProjectUseCase() *usecase.DeleteProject {
	return usecase.NewDeleteProject(c.Store, c.Store, c.FileLogger)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Store, c.Store, c.Store, c.Clock, c.FileLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Store, c.Store)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store, c.Store, c.Clock)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.Clock)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.FileLogger)
}

// StartTimerUseCase returns a new StartTimer use case.
func (c *Container) StartTimerUseCase() *usecase.StartTimer {
	return usecase.NewStartTimer(c.Store, c.Clock, c.FileLogger)
}

// StopTimerUseCase returns a new StopTimer use case.
func (c *Container) StopTimerUseCase() *usecase.StopTimer {
	return usecase.NewStopTimer(c.Store, c.Clock, c.FileLogger)
}

// ResetTimerUseCase returns a new ResetTimer use case.
func (c *Container) ResetTimerUseCase() *usecase.ResetTimer {
	return usecase.NewResetTimer(c.Store, c.Clock)
}

// SetRecurringUseCase returns a new SetRecurring use case.
func (c *Container) SetRecurringUseCase() *usecase.SetRecurring {
	return usecase.NewSetRecurring(c.Store, c.Clock)
}

// CheckRecurringUseCase returns a new CheckRecurring use case.
func (c *Container) CheckRecurringUseCase() *usecase.CheckRecurring {
	return usecase.NewCheckRecurring(c.Store, c.Clock, c.FileLogger, uuid.NewString)
}

// CheckRemindersUseCase returns a new CheckReminders use case.
// Each instance keeps its own record of reminders already raised.
func (c *Container) CheckRemindersUseCase() *usecase.CheckReminders {
	return usecase.NewCheckReminders(c.Store, c.Clock, c.FileLogger)
}

// ExportDataUseCase returns a new ExportData use case.
func (c *Container) ExportDataUseCase() *usecase.ExportData {
	return usecase.NewExportData(c.Store, c.Store, c.Clock)
}

// ImportDataUseCase returns a new ImportData use case.
func (c *Container) ImportDataUseCase() *usecase.ImportData {
	return usecase.NewImportData(c.Store, c.Store, c.Store, c.Store, c.FileLogger)
}

// ClearDataUseCase returns a new ClearData use case.
func (c *Container) ClearDataUseCase() *usecase.ClearData {
	return usecase.NewClearData(c.Store, c.Store, c.Store)
}

// ReportUseCase returns a new Report use case.
func (c *Container) ReportUseCase() *usecase.Report {
	return usecase.NewReport(c.Store, c.Store, c.Clock)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
