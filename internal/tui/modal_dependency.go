package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/taskgraph/internal/api"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) openDependencyModal() Model {
	t, ok := m.selectedTask()
	if !ok {
		return m
	}
	state := &DependencyState{TaskID: t.ID}
	m.refreshDependencyOptions(state)
	m.modal.Open(state)
	return m
}

// refreshDependencyOptions lists every other task, marking current dependencies.
func (m Model) refreshDependencyOptions(state *DependencyState) {
	task, ok := m.store.Task(state.TaskID)
	if !ok {
		state.Options = nil
		return
	}
	existing := make(map[int64]bool, len(task.Dependencies))
	for _, d := range task.Dependencies {
		existing[d.DependsOn] = true
	}
	var opts []depOption
	for _, t := range m.store.Tasks() {
		if t.ID == state.TaskID {
			continue
		}
		opts = append(opts, depOption{ID: t.ID, Label: taskLabel(t), Existing: existing[t.ID]})
	}
	state.Options = opts
	if state.Cursor >= len(opts) {
		state.Cursor = max(len(opts)-1, 0)
	}
}

func (m Model) handleDependencyKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	state, ok := m.modal.DependencyState()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "esc", "q":
		m.modal.Close()
	case "up", "k":
		if state.Cursor > 0 {
			state.Cursor--
		}
	case "down", "j":
		if state.Cursor < len(state.Options)-1 {
			state.Cursor++
		}
	case "enter", " ":
		if state.Pending || state.Cursor >= len(state.Options) {
			return m, nil
		}
		opt := state.Options[state.Cursor]
		state.Pending = true
		state.Message = ""
		if opt.Existing {
			return m, m.removeDependencyCmd(state.TaskID, opt.ID)
		}
		return m, m.checkCycleCmd(state.TaskID, opt.ID)
	}
	return m, nil
}

// handleCycleChecked adds the edge only when the service says it is safe.
func (m Model) handleCycleChecked(msg cycleCheckedMsg) (Model, tea.Cmd) {
	state, open := m.modal.DependencyState()
	if open && state.TaskID != msg.taskID {
		open = false
	}
	if msg.err != nil {
		if open {
			state.Pending = false
			state.Message = api.Message(msg.err)
		}
		m.setStatusError(api.Message(msg.err))
		return m, nil
	}
	if msg.result.HasCycle {
		text := "Adding this dependency would create a cycle"
		if len(msg.result.Path) > 0 {
			text += ": " + FormatCyclePath(msg.result.Path)
		}
		if open {
			state.Pending = false
			state.Message = text
		}
		m.setStatusError(text)
		return m, nil
	}
	return m, m.addDependencyCmd(msg.taskID, msg.dependsOnID)
}

func (m Model) handleDependencyChanged(msg dependencyChangedMsg) (Model, tea.Cmd) {
	state, open := m.modal.DependencyState()
	if open && state.TaskID == msg.taskID {
		state.Pending = false
		m.refreshDependencyOptions(state)
	} else {
		open = false
	}
	if msg.err != nil {
		if open {
			state.Message = api.Message(msg.err)
		}
		m.setStatusError(api.Message(msg.err))
		return m, nil
	}
	verb := "removed"
	if msg.added {
		verb = "added"
	}
	text := fmt.Sprintf("Dependency #%d → #%d %s", msg.taskID, msg.dependsOnID, verb)
	if open {
		state.Message = text
	}
	m.setStatus(text)
	return m, nil
}

func (m Model) renderDependencyModal() string {
	state, ok := m.modal.DependencyState()
	if !ok {
		return ""
	}
	var b strings.Builder
	title := fmt.Sprintf("Dependencies of #%d", state.TaskID)
	if t, ok := m.store.Task(state.TaskID); ok {
		title = "Dependencies of " + truncate(taskLabel(t), 40)
	}
	b.WriteString(CurrentTheme.Header.Render(title) + "\n\n")
	if len(state.Options) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No other tasks.") + "\n")
	}
	for i, opt := range state.Options {
		check := "[ ]"
		if opt.Existing {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, truncate(opt.Label, 44))
		if i == state.Cursor {
			b.WriteString(CurrentTheme.Focused.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + CurrentTheme.Task.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	switch {
	case state.Pending:
		b.WriteString(m.spinner.View() + " Working...\n")
	case state.Message != "":
		b.WriteString(CurrentTheme.Dim.Render(state.Message) + "\n")
	}
	b.WriteString(CurrentTheme.Dim.Render("[enter]toggle [esc]close"))
	return b.String()
}
