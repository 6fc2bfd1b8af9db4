package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	state, ok := m.modal.ConfirmDeleteState()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "y", "Y":
		m.modal.Close()
		return m, m.deleteTaskCmd(state.TaskID)
	case "n", "N", "esc", "q":
		m.modal.Close()
	}
	return m, nil
}

func (m Model) renderConfirmDeleteModal() string {
	state, ok := m.modal.ConfirmDeleteState()
	if !ok {
		return ""
	}
	return CurrentTheme.Header.Render("Delete task?") + "\n\n" +
		CurrentTheme.Task.Render(truncate(fmt.Sprintf("#%d %s", state.TaskID, state.Title), 50)) + "\n\n" +
		CurrentTheme.Dim.Render("[y]es [n]o")
}
