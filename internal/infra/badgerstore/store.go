// Package badgerstore provides a domain.Store on top of an embedded badger database.
//
// The layout mirrors a browser key-value store: each collection lives under a
// single key holding a JSON array, and every write replaces the whole value.
package badgerstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/sevencode7/tasks/internal/domain"
)

// Keys.
const (
	keyProjects = "tasks:projects"
	keyTasks    = "tasks:tasks"
	keySelected = "tasks:currentProject"
)

// collections is the decoded content of all keys.
type collections struct {
	projects []*domain.Project
	tasks    []*domain.Task
	selected string
}

// Store implements domain.Store using badger.
type Store struct {
	db    *badger.DB
	clock domain.Clock
	newID func() string
	dir   string
}

// Open opens (or creates) the database in dir.
func Open(dir string, clock domain.Clock) (*Store, error) {
	opts := badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR)
	return open(opts, dir, clock)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory(clock domain.Clock) (*Store, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	return open(opts, "", clock)
}

func open(opts badger.Options, dir string, clock domain.Clock) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{
		db:    db,
		clock: clock,
		newID: uuid.NewString,
		dir:   dir,
	}, nil
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Initialize writes empty collections if they are missing.
// Returns true if the store was newly created.
func (s *Store) Initialize() (bool, error) {
	created := false
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyProjects))
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("read %s: %w", keyProjects, err)
		}
		created = true
		return save(txn, &collections{})
	})
	return created, err
}

// view runs fn over a consistent read of all keys.
func (s *Store) view(fn func(*collections) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		c, err := load(txn)
		if err != nil {
			return err
		}
		return fn(c)
	})
}

// update runs fn and writes every key back in the same transaction.
func (s *Store) update(fn func(*collections) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		c, err := load(txn)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		return save(txn, c)
	})
}

func load(txn *badger.Txn) (*collections, error) {
	c := &collections{}
	found, err := getJSON(txn, keyProjects, &c.projects)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotInitialized
	}
	if _, err := getJSON(txn, keyTasks, &c.tasks); err != nil {
		return nil, err
	}
	if _, err := getJSON(txn, keySelected, &c.selected); err != nil {
		return nil, err
	}
	return c, nil
}

func save(txn *badger.Txn, c *collections) error {
	if c.projects == nil {
		c.projects = []*domain.Project{}
	}
	if c.tasks == nil {
		c.tasks = []*domain.Task{}
	}
	if err := setJSON(txn, keyProjects, c.projects); err != nil {
		return err
	}
	if err := setJSON(txn, keyTasks, c.tasks); err != nil {
		return err
	}
	return setJSON(txn, keySelected, c.selected)
}

func getJSON(txn *badger.Txn, key string, v any) (bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ListProjects returns all projects in creation order.
func (s *Store) ListProjects() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := s.view(func(c *collections) error {
		projects = c.projects
		return nil
	})
	return projects, err
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(id string) (*domain.Project, error) {
	var project *domain.Project
	err := s.view(func(c *collections) error {
		project = findProject(c.projects, id)
		return nil
	})
	return project, err
}

// SaveProject creates or updates a project.
func (s *Store) SaveProject(project *domain.Project) error {
	return s.update(func(c *collections) error {
		if project.ID == "" {
			project.ID = s.newID()
		}
		if i := slices.IndexFunc(c.projects, func(p *domain.Project) bool { return p.ID == project.ID }); i >= 0 {
			c.projects[i] = project
			return nil
		}
		c.projects = append(c.projects, project)
		return nil
	})
}

// DeleteProject removes a project and all its tasks.
func (s *Store) DeleteProject(id string) error {
	return s.update(func(c *collections) error {
		c.projects = slices.DeleteFunc(c.projects, func(p *domain.Project) bool { return p.ID == id })
		c.tasks = slices.DeleteFunc(c.tasks, func(t *domain.Task) bool { return t.ProjectID == id })
		if c.selected == id {
			c.selected = ""
		}
		return nil
	})
}

// PersistProjects replaces the project collection.
func (s *Store) PersistProjects(projects []*domain.Project) error {
	return s.update(func(c *collections) error {
		c.projects = slices.Clone(projects)
		return nil
	})
}

// ListTasks returns all tasks in creation order.
func (s *Store) ListTasks() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.view(func(c *collections) error {
		tasks = c.tasks
		return nil
	})
	return tasks, err
}

// ListTasksForProject returns the tasks of one project.
func (s *Store) ListTasksForProject(projectID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.view(func(c *collections) error {
		tasks = domain.TasksForProject(c.tasks, projectID)
		return nil
	})
	return tasks, err
}

// FindTaskByExactTitle returns the first task with the trimmed title.
func (s *Store) FindTaskByExactTitle(title string) (*domain.Task, error) {
	var task *domain.Task
	err := s.view(func(c *collections) error {
		task = domain.FindByExactTitle(c.tasks, title)
		return nil
	})
	return task, err
}

// GetTask retrieves a task by ID.
func (s *Store) GetTask(id string) (*domain.Task, error) {
	var task *domain.Task
	err := s.view(func(c *collections) error {
		for _, t := range c.tasks {
			if t.ID == id {
				task = t
				break
			}
		}
		return nil
	})
	return task, err
}

// CreateTask builds a task with default fields and appends it.
func (s *Store) CreateTask(projectID, title, desc string, status domain.Status) (*domain.Task, error) {
	task := domain.NewTask(s.newID(), projectID, title, desc, status, s.clock.Now())
	err := s.update(func(c *collections) error {
		c.tasks = append(c.tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// SaveTask creates or updates a task.
func (s *Store) SaveTask(task *domain.Task) error {
	return s.update(func(c *collections) error {
		if task.ID == "" {
			task.ID = s.newID()
		}
		if i := slices.IndexFunc(c.tasks, func(t *domain.Task) bool { return t.ID == task.ID }); i >= 0 {
			c.tasks[i] = task
			return nil
		}
		c.tasks = append(c.tasks, task)
		return nil
	})
}

// DeleteTask removes a task by ID.
func (s *Store) DeleteTask(id string) error {
	return s.update(func(c *collections) error {
		c.tasks = slices.DeleteFunc(c.tasks, func(t *domain.Task) bool { return t.ID == id })
		return nil
	})
}

// PersistTasks replaces the task collection.
func (s *Store) PersistTasks(tasks []*domain.Task) error {
	return s.update(func(c *collections) error {
		c.tasks = slices.Clone(tasks)
		return nil
	})
}

// CurrentProject returns the selected project, or nil.
func (s *Store) CurrentProject() (*domain.Project, error) {
	var project *domain.Project
	err := s.view(func(c *collections) error {
		if c.selected != "" {
			project = findProject(c.projects, c.selected)
		}
		return nil
	})
	return project, err
}

// SelectProject stores the selection. An empty ID clears it.
func (s *Store) SelectProject(id string) error {
	return s.update(func(c *collections) error {
		if id != "" && findProject(c.projects, id) == nil {
			return domain.ErrProjectNotFound
		}
		c.selected = id
		return nil
	})
}

func findProject(projects []*domain.Project, id string) *domain.Project {
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}
