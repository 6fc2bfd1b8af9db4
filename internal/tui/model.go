// Package tui is the bubbletea front end: a task list, a creation form, the
// dependency graph and the modals that act on them.
package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/api"
	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/database"
	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/report"
	"github.com/akyairhashvil/taskgraph/internal/store"
	"github.com/akyairhashvil/taskgraph/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the active pane.
type View int

const (
	ViewList View = iota
	ViewForm
	ViewGraph
)

var viewOrder = []View{ViewList, ViewForm, ViewGraph}

func (v View) String() string {
	switch v {
	case ViewList:
		return "Tasks"
	case ViewForm:
		return "New Task"
	case ViewGraph:
		return "Graph"
	default:
		return "?"
	}
}

// Settings is the persisted key/value store the TUI reads preferences from.
// *database.Database implements it.
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Options configures NewModel. Zero values are usable.
type Options struct {
	Settings  Settings
	Theme     string
	ExportDir string
	Now       func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	ctx       context.Context
	store     *store.Store
	settings  Settings
	keys      *HandlerRegistry
	modal     *ModalManager
	view      View
	list      listState
	form      formState
	graph     graphState
	spinner   spinner.Model
	status    string
	statusErr bool
	exportDir string
	now       func() time.Time
	width     int
	height    int
}

type graphState struct {
	view     graph.ViewState
	selected int64
}

func NewModel(ctx context.Context, st *store.Store, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := Model{
		ctx:       ctx,
		store:     st,
		settings:  opts.Settings,
		keys:      NewHandlerRegistry(),
		modal:     newModalManager(),
		list:      newListState(),
		form:      newFormState(),
		graph:     graphState{view: graph.NewViewState()},
		spinner:   sp,
		exportDir: opts.ExportDir,
		now:       opts.Now,
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.exportDir == "" {
		m.exportDir = util.ReportsDir(config.AppName)
	}
	m.applyTheme(opts.Theme)
	m.registerBindings()
	return m
}

// applyTheme prefers the persisted choice over the configured one.
func (m *Model) applyTheme(fallback string) {
	if m.settings != nil {
		if name, ok := m.settings.GetSetting(m.ctx, database.SettingTheme); ok && SetTheme(name) {
			return
		}
	}
	if !SetTheme(fallback) {
		SetTheme(config.DefaultTheme)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSnapshotCmd(), m.fetchTasksCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.form.resize(msg.Width)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.view == ViewGraph && !m.modal.IsOpen() {
			return m.handleGraphMouse(msg), nil
		}
		return m, nil
	}
	return m.handleResult(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.modal.IsOpen() {
		return m.handleModalKey(msg)
	}
	if m.view == ViewForm {
		return m.handleFormKey(msg)
	}
	if m.list.filtering {
		return m.handleFilterKey(msg)
	}
	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	return m, nil
}

// handleResult applies the outcome of a finished command.
func (m Model) handleResult(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		util.LogError("load snapshot", msg.err)
		m.list.clamp(len(m.visibleTasks()))

	case tasksFetchedMsg:
		if msg.err != nil {
			m.setStatusError(api.Message(msg.err))
		}
		m.list.clamp(len(m.visibleTasks()))

	case taskCreatedMsg:
		if msg.err != nil {
			m.form.err = api.Message(msg.err)
			m.form.submitting = false
			return m, nil
		}
		m.form.reset()
		m.list.cursor = 0
		m.setStatus("Created " + taskLabel(msg.task))

	case taskUpdatedMsg:
		if msg.err != nil {
			m.setStatusError(api.Message(msg.err))
			return m, nil
		}
		m.setStatus(taskLabel(msg.task) + " is now " + msg.task.Status.Label())

	case taskDeletedMsg:
		if msg.err != nil {
			m.setStatusError(api.Message(msg.err))
			return m, nil
		}
		if m.graph.selected == msg.id {
			m.graph.selected = 0
		}
		m.list.clamp(len(m.visibleTasks()))
		m.setStatus("Task deleted")

	case cycleCheckedMsg:
		return m.handleCycleChecked(msg)

	case dependencyChangedMsg:
		return m.handleDependencyChanged(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatusError("Export failed: " + msg.err.Error())
			return m, nil
		}
		m.setStatus("Exported " + string(msg.format) + " to " + msg.path)
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setStatusError(s string) {
	m.status, m.statusErr = s, true
}

func (m Model) switchView(v View) Model {
	m.view = v
	if v == ViewForm {
		m.form.focusTitle()
	}
	if v == ViewGraph && m.graph.selected == 0 {
		if t, ok := m.selectedTask(); ok {
			m.graph.selected = t.ID
		}
	}
	return m
}

func (m Model) registerBindings() {
	r := m.keys
	r.Register(KeyBinding{Keys: []string{"q"}, Description: "quit", Views: []View{ViewList, ViewGraph},
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m, tea.Quit, true }})
	r.Register(KeyBinding{Keys: []string{"tab"}, Description: "next view",
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			return m.switchView(viewOrder[(int(m.view)+1)%len(viewOrder)]), nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"1", "2", "3"},
		Handler: func(m Model, key string) (Model, tea.Cmd, bool) {
			return m.switchView(viewOrder[int(key[0]-'1')]), nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"ctrl+r"}, Description: "refresh",
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.setStatus("Refreshing...")
			return m, m.fetchTasksCmd(), true
		}})
	r.Register(KeyBinding{Keys: []string{"t"}, Description: "theme", Views: []View{ViewList, ViewGraph},
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m.openThemeModal(), nil, true }})
	r.Register(KeyBinding{Keys: []string{"P"}, Description: "pdf", Views: []View{ViewList, ViewGraph},
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.setStatus("Exporting pdf...")
			return m, m.exportCmd(report.FormatPDF), true
		}})

	registerListBindings(r)
	registerGraphBindings(r)
}
