// Package store keeps the client-side copy of the task list in step with the
// task service. Every mutation goes to the service first; the local list is
// then reconciled without a refetch where the response allows it.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/api"
	"github.com/akyairhashvil/taskgraph/internal/database"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/util"
)

// Store is safe for concurrent use; bubbletea commands call it from their
// own goroutines while the UI reads it.
type Store struct {
	api    TaskAPI
	cache  Snapshotter
	source string

	mu      sync.RWMutex
	tasks   []models.Task
	loading bool
	err     string
	stale   bool
	savedAt time.Time
	// fetched is set once the service has answered a list request; a snapshot
	// never replaces that answer, even an empty one.
	fetched bool
}

// New builds a store over client. cache may be nil; source labels the
// snapshots it writes (normally the API base URL).
func New(client TaskAPI, cache Snapshotter, source string) *Store {
	return &Store{api: client, cache: cache, source: source, tasks: []models.Task{}}
}

// Tasks returns a copy of the cached list.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task looks up one cached task.
func (s *Store) Task(id int64) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Edges flattens the cached dependencies.
func (s *Store) Edges() []models.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.EdgesFromTasks(s.tasks)
}

// Loading reports whether a full fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err is the message of the last failed operation, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Stale reports whether the list came from the local snapshot rather than
// the service, and when that snapshot was saved.
func (s *Store) Stale() (bool, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale, s.savedAt
}

// ClearErr dismisses the current error message.
func (s *Store) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) begin() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.err = api.Message(err)
	s.mu.Unlock()
	return err
}

// LoadSnapshot fills an empty store from the cache. A missing cache or
// snapshot is not an error.
func (s *Store) LoadSnapshot(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	snap, err := s.cache.LoadSnapshot(ctx)
	if errors.Is(err, database.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetched || (len(s.tasks) > 0 && !s.stale) {
		return nil
	}
	s.tasks = snap.Tasks
	s.stale = true
	s.savedAt = snap.SavedAt
	return nil
}

// Fetch replaces the cached list with the service's. The loading flag is set
// for the duration of the call.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	tasks, err := s.api.ListTasks(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = api.Message(err)
		s.mu.Unlock()
		return err
	}
	s.tasks = tasks
	s.fetched = true
	s.stale = false
	s.savedAt = time.Time{}
	s.mu.Unlock()

	s.saveSnapshot(ctx, tasks)
	return nil
}

func (s *Store) saveSnapshot(ctx context.Context, tasks []models.Task) {
	if s.cache == nil {
		return
	}
	util.LogError("save snapshot", s.cache.SaveSnapshot(ctx, s.source, tasks))
}

// Get fetches one task and refreshes it in the cache if present.
func (s *Store) Get(ctx context.Context, id int64) (models.Task, error) {
	s.begin()
	task, err := s.api.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, s.fail(err)
	}
	s.mu.Lock()
	s.replaceID(task.ID, task)
	s.mu.Unlock()
	return task, nil
}

// Create adds the new task to the front of the list.
func (s *Store) Create(ctx context.Context, in models.TaskInput) (models.Task, error) {
	s.begin()
	task, err := s.api.CreateTask(ctx, in)
	if err != nil {
		return models.Task{}, s.fail(err)
	}
	s.mu.Lock()
	s.tasks = append([]models.Task{task}, s.tasks...)
	s.mu.Unlock()
	return task, nil
}

// Update replaces the cached task with the service's response.
func (s *Store) Update(ctx context.Context, id int64, patch models.TaskPatch) (models.Task, error) {
	s.begin()
	task, err := s.api.UpdateTask(ctx, id, patch)
	if err != nil {
		return models.Task{}, s.fail(err)
	}
	s.mu.Lock()
	s.replaceID(id, task)
	s.mu.Unlock()
	return task, nil
}

// replaceID swaps in t for the cached task with that id. Caller holds mu.
func (s *Store) replaceID(id int64, t models.Task) {
	next := make([]models.Task, len(s.tasks))
	for i, old := range s.tasks {
		if old.ID == id {
			next[i] = t
		} else {
			next[i] = old
		}
	}
	s.tasks = next
}

// Delete drops the task from the list once the service confirms.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.begin()
	if err := s.api.DeleteTask(ctx, id); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.tasks = next
	s.mu.Unlock()
	return nil
}

// AddDependency records the edge and then refetches the whole list, since
// the response does not describe the dependent side.
func (s *Store) AddDependency(ctx context.Context, taskID, dependsOnID int64) error {
	s.begin()
	if err := s.api.AddDependency(ctx, taskID, dependsOnID); err != nil {
		return s.fail(err)
	}
	return s.Fetch(ctx)
}

// RemoveDependency drops the edge locally without a refetch.
func (s *Store) RemoveDependency(ctx context.Context, taskID, dependsOnID int64) error {
	s.begin()
	if err := s.api.RemoveDependency(ctx, taskID, dependsOnID); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		switch t.ID {
		case taskID:
			deps := make([]models.Dependency, 0, len(t.Dependencies))
			for _, d := range t.Dependencies {
				if d.DependsOn != dependsOnID {
					deps = append(deps, d)
				}
			}
			t.Dependencies = deps
		case dependsOnID:
			dependents := make([]models.DependentTask, 0, len(t.DependentTasks))
			for _, d := range t.DependentTasks {
				if d.ID != taskID {
					dependents = append(dependents, d)
				}
			}
			t.DependentTasks = dependents
		}
		next[i] = t
	}
	s.tasks = next
	return nil
}

// CheckCircular asks the service whether the edge would close a cycle. It
// leaves an earlier error in place and only records its own failure.
func (s *Store) CheckCircular(ctx context.Context, taskID, dependsOnID int64) (models.CycleCheck, error) {
	res, err := s.api.CheckCircularDependency(ctx, taskID, dependsOnID)
	if err != nil {
		return models.CycleCheck{}, s.fail(err)
	}
	return res, nil
}

// GraphData returns the service's node and edge list. The cache is untouched.
func (s *Store) GraphData(ctx context.Context) (models.GraphData, error) {
	s.begin()
	data, err := s.api.GraphData(ctx)
	if err != nil {
		return models.GraphData{}, s.fail(err)
	}
	return data, nil
}
