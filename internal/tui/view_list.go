package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const emptyListText = "No tasks yet. Create your first task to get started!"

type listState struct {
	cursor    int
	offset    int
	filter    textinput.Model
	filtering bool
	query     util.FilterQuery
}

func newListState() listState {
	fi := textinput.New()
	fi.Placeholder = "status:blocked id:4 words..."
	fi.Prompt = "/ "
	fi.Width = 40
	return listState{filter: fi}
}

func (l *listState) clamp(n int) {
	l.cursor = util.Clamp(l.cursor, 0, max(n-1, 0))
	if l.offset > l.cursor {
		l.offset = l.cursor
	}
}

// visibleTasks is the store's list narrowed by the filter.
func (m Model) visibleTasks() []models.Task {
	tasks := m.store.Tasks()
	if m.list.query.Empty() {
		return tasks
	}
	out := tasks[:0]
	for _, t := range tasks {
		if m.list.query.Match(t.ID, string(t.Status), t.Title, util.Deref(t.Description)) {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.visibleTasks()
	if m.list.cursor < 0 || m.list.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.list.cursor], true
}

func registerListBindings(r *HandlerRegistry) {
	list := []View{ViewList}
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			if m.list.cursor > 0 {
				m.list.cursor--
			}
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			if m.list.cursor < len(m.visibleTasks())-1 {
				m.list.cursor++
			}
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"n"}, Description: "new", Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m.switchView(ViewForm), nil, true }})
	r.Register(KeyBinding{Keys: []string{"s"}, Description: "status", Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			t, ok := m.selectedTask()
			if !ok {
				return m, nil, true
			}
			next := t.Status.Next()
			return m, m.updateTaskCmd(t.ID, models.TaskPatch{Status: &next}), true
		}})
	r.Register(KeyBinding{Keys: []string{"d"}, Description: "deps", Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m.openDependencyModal(), nil, true }})
	r.Register(KeyBinding{Keys: []string{"x", "delete"}, Description: "delete", Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			if t, ok := m.selectedTask(); ok {
				m.modal.Open(&ConfirmDeleteState{TaskID: t.ID, Title: t.Title})
			}
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"/"}, Description: "filter", Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.list.filtering = true
			return m, m.list.filter.Focus(), true
		}})
	r.Register(KeyBinding{Keys: []string{"enter"}, Description: "show in graph", Views: list,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			if t, ok := m.selectedTask(); ok {
				m.graph.selected = t.ID
			}
			return m.switchView(ViewGraph), nil, true
		}})
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.list.filter.Reset()
		m.list.query = util.FilterQuery{}
		fallthrough
	case tea.KeyEnter:
		m.list.filtering = false
		m.list.filter.Blur()
		m.list.clamp(len(m.visibleTasks()))
		return m, nil
	}
	var cmd tea.Cmd
	m.list.filter, cmd = m.list.filter.Update(msg)
	m.list.query = util.ParseFilterQuery(m.list.filter.Value())
	m.list.cursor = 0
	m.list.offset = 0
	return m, cmd
}

func (m Model) renderList(width, height int) string {
	var b strings.Builder
	rows := height
	if m.list.filtering || !m.list.query.Empty() {
		b.WriteString(m.list.filter.View() + "\n")
		rows--
	}

	all := m.store.Tasks()
	if len(all) == 0 {
		if m.store.Loading() {
			b.WriteString(CurrentTheme.Dim.Render(m.spinner.View() + " Loading tasks..."))
		} else {
			b.WriteString(CurrentTheme.Dim.Render(emptyListText))
		}
		return b.String()
	}
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No tasks match the filter."))
		return b.String()
	}

	// Two lines per task: title row and dependency row.
	perPage := max(rows/2, 1)
	offset := m.list.offset
	if m.list.cursor < offset {
		offset = m.list.cursor
	}
	if m.list.cursor >= offset+perPage {
		offset = m.list.cursor - perPage + 1
	}
	end := min(offset+perPage, len(tasks))

	titleWidth := max(min(width-24, config.TargetTitleWidth*2), 10)
	for i := offset; i < end; i++ {
		t := tasks[i]
		cursor := "  "
		titleStyle := CurrentTheme.Task
		if i == m.list.cursor {
			cursor = CurrentTheme.Focused.Render("> ")
			titleStyle = CurrentTheme.Selected
		}
		status := StatusStyle(t.Status).Render(fmt.Sprintf("%-11s", t.Status.Label()))
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, CurrentTheme.Dim.Render(fmt.Sprintf("#%-4d", t.ID)), status,
			titleStyle.Render(truncate(t.Title, titleWidth))))
		b.WriteString("      " + CurrentTheme.Dim.Render(truncate(dependencySummary(t), max(width-6, 10))) + "\n")
	}
	if len(tasks) > perPage {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  %d-%d of %d", offset+1, end, len(tasks))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func dependencySummary(t models.Task) string {
	var parts []string
	if len(t.Dependencies) > 0 {
		deps := make([]string, len(t.Dependencies))
		for i, d := range t.Dependencies {
			deps[i] = fmt.Sprintf("#%d %s", d.DependsOn, d.DependsOnTitle)
		}
		parts = append(parts, "depends on "+strings.Join(deps, ", "))
	}
	if len(t.DependentTasks) > 0 {
		deps := make([]string, len(t.DependentTasks))
		for i, d := range t.DependentTasks {
			deps[i] = fmt.Sprintf("#%d", d.ID)
		}
		parts = append(parts, "blocks "+strings.Join(deps, ", "))
	}
	if len(parts) == 0 {
		return "no dependencies"
	}
	return strings.Join(parts, " · ")
}
