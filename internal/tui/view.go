package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	width, rows := m.paneSize()

	var body string
	switch m.view {
	case ViewList:
		body = m.renderList(width, rows)
	case ViewForm:
		body = m.renderForm(width)
	case ViewGraph:
		body = m.renderGraph()
	}
	body = lipgloss.NewStyle().Height(rows).MaxHeight(rows).Render(body)

	if m.modal.IsOpen() {
		body = lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center, CurrentTheme.Modal.Render(m.renderModal()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(width), body, m.renderFooter(width))
}

func (m Model) renderModal() string {
	switch m.modal.ActiveModal() {
	case ModalDependency:
		return m.renderDependencyModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalTheme:
		return m.renderThemeModal()
	}
	return ""
}

// renderHeader is config.HeaderHeight lines: title and tabs, then the
// connection line.
func (m Model) renderHeader(width int) string {
	var tabs []string
	for i, v := range viewOrder {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.view {
			tabs = append(tabs, CurrentTheme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, CurrentTheme.Tab.Render(label))
		}
	}
	tasks := m.store.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			done++
		}
	}
	title := CurrentTheme.Header.Render(config.AppName+" v"+VersionString()) + "  " +
		strings.Join(tabs, "") + "  " + CurrentTheme.Dim.Render(FormatTaskCount(done, len(tasks)))

	var second string
	switch stale, savedAt := m.store.Stale(); {
	case m.store.Loading():
		second = m.spinner.View() + " Loading..."
	case stale:
		second = CurrentTheme.Error.Render("offline copy, saved " + FormatAge(savedAt, m.now()))
	case m.view == ViewGraph:
		second = CurrentTheme.Dim.Render(graph.ZoomLabel(m.graph.view.Zoom))
	}
	return truncate(title, width) + "\n" + truncate(second, width)
}

// renderFooter is config.FooterHeight lines: status, then key help.
func (m Model) renderFooter(width int) string {
	status := m.status
	if status == "" {
		status = m.store.Err()
	}
	switch {
	case status == "":
		status = CurrentTheme.Dim.Render("Ready")
	case m.statusErr || status == m.store.Err():
		status = CurrentTheme.Error.Render(status)
	default:
		status = CurrentTheme.Success.Render(status)
	}
	help := m.keys.HelpForView(m.view)
	if m.view == ViewForm {
		help = "[tab]field [enter/ctrl+s]create [esc]back"
	}
	if m.list.filtering {
		help = "[enter]apply [esc]clear"
	}
	return truncate(status, width) + "\n" + truncate(CurrentTheme.Dim.Render(help), width)
}
