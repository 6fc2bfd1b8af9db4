package tui

import (
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type snapshotLoadedMsg struct{ err error }

type tasksFetchedMsg struct{ err error }

type taskCreatedMsg struct {
	task models.Task
	err  error
}

type taskUpdatedMsg struct {
	task models.Task
	err  error
}

type taskDeletedMsg struct {
	id  int64
	err error
}

type cycleCheckedMsg struct {
	taskID      int64
	dependsOnID int64
	result      models.CycleCheck
	err         error
}

type dependencyChangedMsg struct {
	added       bool
	taskID      int64
	dependsOnID int64
	err         error
}

type exportDoneMsg struct {
	format report.Format
	path   string
	err    error
}

// --- Commands ---
// Each runs on its own goroutine; the store serialises access to the cache.

func (m Model) loadSnapshotCmd() tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		return snapshotLoadedMsg{err: st.LoadSnapshot(ctx)}
	}
}

func (m Model) fetchTasksCmd() tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		return tasksFetchedMsg{err: st.Fetch(ctx)}
	}
}

func (m Model) createTaskCmd(in models.TaskInput) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		task, err := st.Create(ctx, in)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m Model) updateTaskCmd(id int64, patch models.TaskPatch) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		task, err := st.Update(ctx, id, patch)
		return taskUpdatedMsg{task: task, err: err}
	}
}

func (m Model) deleteTaskCmd(id int64) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		return taskDeletedMsg{id: id, err: st.Delete(ctx, id)}
	}
}

func (m Model) checkCycleCmd(taskID, dependsOnID int64) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		res, err := st.CheckCircular(ctx, taskID, dependsOnID)
		return cycleCheckedMsg{taskID: taskID, dependsOnID: dependsOnID, result: res, err: err}
	}
}

func (m Model) addDependencyCmd(taskID, dependsOnID int64) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		err := st.AddDependency(ctx, taskID, dependsOnID)
		return dependencyChangedMsg{added: true, taskID: taskID, dependsOnID: dependsOnID, err: err}
	}
}

func (m Model) removeDependencyCmd(taskID, dependsOnID int64) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		err := st.RemoveDependency(ctx, taskID, dependsOnID)
		return dependencyChangedMsg{taskID: taskID, dependsOnID: dependsOnID, err: err}
	}
}

func (m Model) exportCmd(f report.Format) tea.Cmd {
	ctx, dir := m.ctx, m.exportDir
	in := report.Input{
		Title:   "Task Report",
		Now:     m.now(),
		Tasks:   m.store.Tasks(),
		View:    m.graph.view,
		Palette: CurrentTheme.Palette,
	}
	return func() tea.Msg {
		path, err := report.SaveToDir(ctx, dir, f, in)
		return exportDoneMsg{format: f, path: path, err: err}
	}
}
