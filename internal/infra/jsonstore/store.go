// Package jsonstore provides a JSON file-based implementation of domain.Store.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/google/uuid"

	"github.com/sevencode7/tasks/internal/domain"
)

// storeData represents the JSON file structure.
// Collections keep insertion order, which is the order every List returns.
type storeData struct {
	Projects []*domain.Project `json:"projects"`
	Tasks    []*domain.Task    `json:"tasks"`
	Meta     meta              `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	SelectedProjectID string `json:"selectedProjectId,omitempty"`
}

// Store implements domain.Store using a JSON file.
type Store struct {
	clock    domain.Clock
	newID    func() string
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist until Initialize is called.
func New(path string, clock domain.Clock) *Store {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{
		clock:    clock,
		newID:    uuid.NewString,
		path:     path,
		lockPath: path + ".lock",
	}
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)

// ListProjects returns all projects in creation order.
func (s *Store) ListProjects() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := s.withLock(func(data *storeData) error {
		projects = data.Projects
		return nil
	})
	return projects, err
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(id string) (*domain.Project, error) {
	var project *domain.Project
	err := s.withLock(func(data *storeData) error {
		project = findProject(data.Projects, id)
		return nil
	})
	return project, err
}

// SaveProject creates or updates a project.
func (s *Store) SaveProject(project *domain.Project) error {
	return s.withLockWrite(func(data *storeData) error {
		if project.ID == "" {
			project.ID = s.newID()
		}
		if i := slices.IndexFunc(data.Projects, func(p *domain.Project) bool { return p.ID == project.ID }); i >= 0 {
			data.Projects[i] = project
			return nil
		}
		data.Projects = append(data.Projects, project)
		return nil
	})
}

// DeleteProject removes a project and all its tasks.
func (s *Store) DeleteProject(id string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Projects = slices.DeleteFunc(data.Projects, func(p *domain.Project) bool { return p.ID == id })
		data.Tasks = slices.DeleteFunc(data.Tasks, func(t *domain.Task) bool { return t.ProjectID == id })
		if data.Meta.SelectedProjectID == id {
			data.Meta.SelectedProjectID = ""
		}
		return nil
	})
}

// PersistProjects replaces the whole project list.
func (s *Store) PersistProjects(projects []*domain.Project) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Projects = slices.Clone(projects)
		return nil
	})
}

// ListTasks returns all tasks in creation order.
func (s *Store) ListTasks() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = data.Tasks
		return nil
	})
	return tasks, err
}

// ListTasksForProject returns the tasks of one project.
func (s *Store) ListTasksForProject(projectID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = domain.TasksForProject(data.Tasks, projectID)
		return nil
	})
	return tasks, err
}

// FindTaskByExactTitle returns the first task with the trimmed title.
func (s *Store) FindTaskByExactTitle(title string) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		task = domain.FindByExactTitle(data.Tasks, title)
		return nil
	})
	return task, err
}

// GetTask retrieves a task by ID.
func (s *Store) GetTask(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		task = findTask(data.Tasks, id)
		return nil
	})
	return task, err
}

// CreateTask builds a task with default fields and appends it.
func (s *Store) CreateTask(projectID, title, desc string, status domain.Status) (*domain.Task, error) {
	task := domain.NewTask(s.newID(), projectID, title, desc, status, s.clock.Now())
	err := s.withLockWrite(func(data *storeData) error {
		data.Tasks = append(data.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// SaveTask creates or updates a task.
func (s *Store) SaveTask(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		if task.ID == "" {
			task.ID = s.newID()
		}
		if i := slices.IndexFunc(data.Tasks, func(t *domain.Task) bool { return t.ID == task.ID }); i >= 0 {
			data.Tasks[i] = task
			return nil
		}
		data.Tasks = append(data.Tasks, task)
		return nil
	})
}

// DeleteTask removes a task by ID.
func (s *Store) DeleteTask(id string) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Tasks = slices.DeleteFunc(data.Tasks, func(t *domain.Task) bool { return t.ID == id })
		return nil
	})
}

// PersistTasks replaces the whole task list.
func (s *Store) PersistTasks(tasks []*domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Tasks = slices.Clone(tasks)
		return nil
	})
}

// CurrentProject returns the selected project, or nil.
func (s *Store) CurrentProject() (*domain.Project, error) {
	var project *domain.Project
	err := s.withLock(func(data *storeData) error {
		if data.Meta.SelectedProjectID != "" {
			project = findProject(data.Projects, data.Meta.SelectedProjectID)
		}
		return nil
	})
	return project, err
}

// SelectProject stores the selection. An empty ID clears it.
func (s *Store) SelectProject(id string) error {
	return s.withLockWrite(func(data *storeData) error {
		if id != "" && findProject(data.Projects, id) == nil {
			return domain.ErrProjectNotFound
		}
		data.Meta.SelectedProjectID = id
		return nil
	})
}

// Initialize creates an empty store file if it doesn't exist.
// Returns true if the file was created.
func (s *Store) Initialize() (bool, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	}

	data := &storeData{
		Projects: []*domain.Project{},
		Tasks:    []*domain.Task{},
	}
	if err := s.write(data); err != nil {
		return false, err
	}
	return true, nil
}

// Close is a no-op; the file is opened per operation.
func (s *Store) Close() error {
	return nil
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Projects == nil {
		data.Projects = []*domain.Project{}
	}
	if data.Tasks == nil {
		data.Tasks = []*domain.Task{}
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func findProject(projects []*domain.Project, id string) *domain.Project {
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findTask(tasks []*domain.Task, id string) *domain.Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
