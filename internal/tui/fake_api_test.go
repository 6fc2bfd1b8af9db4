package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/akyairhashvil/taskgraph/internal/api"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/store"
	"github.com/akyairhashvil/taskgraph/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeAPI is an in-memory task service that counts calls.
type fakeAPI struct {
	mu        sync.Mutex
	tasks     []models.Task
	nextID    int64
	calls     map[string]int
	createErr error
	cycle     models.CycleCheck
	lastPatch models.TaskPatch
}

func newFakeAPI(tasks []models.Task) *fakeAPI {
	return &fakeAPI{tasks: tasks, nextID: 100, calls: make(map[string]int)}
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.record("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeAPI) GetTask(ctx context.Context, id int64) (models.Task, error) {
	f.record("get")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, &api.Error{Op: api.OpGetTask, Status: 404, Message: api.OpGetTask.Fallback()}
}

func (f *fakeAPI) CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error) {
	f.record("create")
	if f.createErr != nil {
		return models.Task{}, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := testutil.NewTask(f.nextID).WithTitle(in.Title).Build()
	f.tasks = append([]models.Task{t}, f.tasks...)
	return t, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (models.Task, error) {
	f.record("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPatch = patch
	for i, t := range f.tasks {
		if t.ID == id {
			if patch.Status != nil {
				t.Status = *patch.Status
			}
			f.tasks[i] = t
			return t, nil
		}
	}
	return models.Task{}, &api.Error{Op: api.OpUpdateTask, Status: 404, Message: "Not found."}
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id int64) error {
	f.record("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	var keep []models.Task
	for _, t := range f.tasks {
		if t.ID != id {
			keep = append(keep, t)
		}
	}
	f.tasks = keep
	return nil
}

func (f *fakeAPI) AddDependency(ctx context.Context, taskID, dependsOnID int64) error {
	f.record("add")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == taskID {
			t.Dependencies = append(append([]models.Dependency(nil), t.Dependencies...), models.Dependency{DependsOn: dependsOnID})
			f.tasks[i] = t
		}
	}
	return nil
}

func (f *fakeAPI) RemoveDependency(ctx context.Context, taskID, dependsOnID int64) error {
	f.record("remove")
	return nil
}

func (f *fakeAPI) CheckCircularDependency(ctx context.Context, taskID, dependsOnID int64) (models.CycleCheck, error) {
	f.record("check")
	return f.cycle, nil
}

func (f *fakeAPI) GraphData(ctx context.Context) (models.GraphData, error) {
	f.record("graph")
	return models.GraphData{}, nil
}

type fakeSettings struct {
	values map[string]string
}

func (s *fakeSettings) GetSetting(ctx context.Context, key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *fakeSettings) SetSetting(ctx context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

var _ store.TaskAPI = (*fakeAPI)(nil)

// setupTestModel returns a model over a store already holding tasks.
func setupTestModel(t *testing.T, tasks []models.Task) (Model, *fakeAPI) {
	t.Helper()
	fake := newFakeAPI(tasks)
	st := store.New(fake, nil, "test")
	if err := st.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	m := NewModel(context.Background(), st, Options{ExportDir: t.TempDir()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), fake
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

// run executes cmd and feeds its message back, following any command the
// update returns, until nothing is left.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 10 {
			t.Fatalf("command chain did not settle")
		}
		msg := cmd()
		if msg == nil {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}
