// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sevencode7/tasks/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStore is an in-memory domain.Store.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Clock       domain.Clock
	ListErr     error
	SaveErr     error
	CreateErr   error
	DeleteErr   error // Falls back to SaveErr when nil
	SelectErr   error
	Projects    []*domain.Project
	Tasks       []*domain.Task
	SelectedID  string
	NextIDN     int
	SaveCalls   int
	Initialized bool
	Closed      bool
}

// NewMockStore creates an empty MockStore whose timestamps come from clock.
func NewMockStore(clock domain.Clock) *MockStore {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &MockStore{Clock: clock, NextIDN: 1}
}

// Ensure MockStore implements domain.Store.
var _ domain.Store = (*MockStore)(nil)

// Initialize marks the store as initialized.
func (m *MockStore) Initialize() (bool, error) {
	created := !m.Initialized
	m.Initialized = true
	return created, nil
}

func (m *MockStore) nextID(prefix string) string {
	id := fmt.Sprintf("%s-%d", prefix, m.NextIDN)
	m.NextIDN++
	return id
}

// AddProject appends a project with a generated ID and returns it.
func (m *MockStore) AddProject(title string) *domain.Project {
	p := domain.NewProject(m.nextID("project"), title, "", nil, domain.PaletteColor(len(m.Projects)), m.Clock.Now())
	m.Projects = append(m.Projects, p)
	return p
}

// AddTask appends a task with a generated ID and returns it.
func (m *MockStore) AddTask(projectID, title string, status domain.Status) *domain.Task {
	t := domain.NewTask(m.nextID("task"), projectID, title, "", status, m.Clock.Now())
	m.Tasks = append(m.Tasks, t)
	return t
}

// ListProjects returns all projects.
func (m *MockStore) ListProjects() ([]*domain.Project, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Projects), nil
}

// GetProject retrieves a project by ID.
func (m *MockStore) GetProject(id string) (*domain.Project, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	for _, p := range m.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// SaveProject creates or updates a project.
func (m *MockStore) SaveProject(project *domain.Project) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	if project.ID == "" {
		project.ID = m.nextID("project")
	}
	for i, p := range m.Projects {
		if p.ID == project.ID {
			m.Projects[i] = project
			return nil
		}
	}
	m.Projects = append(m.Projects, project)
	return nil
}

// DeleteProject removes a project and its tasks.
func (m *MockStore) DeleteProject(id string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Projects = slices.DeleteFunc(m.Projects, func(p *domain.Project) bool { return p.ID == id })
	m.Tasks = slices.DeleteFunc(m.Tasks, func(t *domain.Task) bool { return t.ProjectID == id })
	if m.SelectedID == id {
		m.SelectedID = ""
	}
	return nil
}

// PersistProjects replaces all projects.
func (m *MockStore) PersistProjects(projects []*domain.Project) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Projects = slices.Clone(projects)
	return nil
}

// ListTasks returns all tasks.
func (m *MockStore) ListTasks() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Tasks), nil
}

// ListTasksForProject returns the tasks of one project.
func (m *MockStore) ListTasksForProject(projectID string) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return domain.TasksForProject(m.Tasks, projectID), nil
}

// FindTaskByExactTitle returns the first task with the trimmed title.
func (m *MockStore) FindTaskByExactTitle(title string) (*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return domain.FindByExactTitle(m.Tasks, title), nil
}

// GetTask retrieves a task by ID.
func (m *MockStore) GetTask(id string) (*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// CreateTask builds and stores a task with default fields.
func (m *MockStore) CreateTask(projectID, title, desc string, status domain.Status) (*domain.Task, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	t := domain.NewTask(m.nextID("task"), projectID, title, desc, status, m.Clock.Now())
	m.Tasks = append(m.Tasks, t)
	m.SaveCalls++
	return t, nil
}

// SaveTask creates or updates a task.
func (m *MockStore) SaveTask(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	if task.ID == "" {
		task.ID = m.nextID("task")
	}
	for i, t := range m.Tasks {
		if t.ID == task.ID {
			m.Tasks[i] = task
			return nil
		}
	}
	m.Tasks = append(m.Tasks, task)
	return nil
}

// DeleteTask removes a task by ID.
func (m *MockStore) DeleteTask(id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = slices.DeleteFunc(m.Tasks, func(t *domain.Task) bool { return t.ID == id })
	return nil
}

// PersistTasks replaces all tasks.
func (m *MockStore) PersistTasks(tasks []*domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Tasks = slices.Clone(tasks)
	return nil
}

// CurrentProject returns the selected project.
func (m *MockStore) CurrentProject() (*domain.Project, error) {
	if m.SelectedID == "" {
		return nil, nil
	}
	return m.GetProject(m.SelectedID)
}

// SelectProject sets the selection.
func (m *MockStore) SelectProject(id string) error {
	if m.SelectErr != nil {
		return m.SelectErr
	}
	m.SelectedID = id
	return nil
}

// Close marks the store as closed.
func (m *MockStore) Close() error {
	m.Closed = true
	return nil
}

// MockCompleter is a test double for domain.Completer.
// It returns Replies in order and then repeats the last one.
type MockCompleter struct {
	Err     error
	Prompts []string
	Replies []string
	Opts    []domain.GenerationOptions
	mu      sync.Mutex
}

// Complete records the prompt and returns the next reply.
func (m *MockCompleter) Complete(_ context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	m.Opts = append(m.Opts, opts)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", nil
	}
	idx := len(m.Prompts) - 1
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return m.Replies[idx], nil
}

// Calls returns the number of Complete calls.
func (m *MockCompleter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// LogEntry is one recorded log line.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// RecordingLogger is a domain.Logger that keeps every entry.
type RecordingLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (l *RecordingLogger) record(level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

func (l *RecordingLogger) Info(category, msg string)  { l.record("INFO", category, msg) }
func (l *RecordingLogger) Debug(category, msg string) { l.record("DEBUG", category, msg) }
func (l *RecordingLogger) Warn(category, msg string)  { l.record("WARN", category, msg) }
func (l *RecordingLogger) Error(category, msg string) { l.record("ERROR", category, msg) }

// Count returns the number of entries at level.
func (l *RecordingLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr     error
	LocalInfo   domain.ConfigInfo
	GlobalInfo  domain.ConfigInfo
	LocalInit   bool
	GlobalInit  bool
	ForceCalled bool
}

func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo  { return m.LocalInfo }
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config, force bool) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.LocalInit = true
	m.ForceCalled = force
	return nil
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config, force bool) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.GlobalInit = true
	m.ForceCalled = force
	return nil
}
