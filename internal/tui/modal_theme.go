package tui

import (
	"strings"

	"github.com/akyairhashvil/taskgraph/internal/database"
	"github.com/akyairhashvil/taskgraph/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) openThemeModal() Model {
	state := &ThemeState{}
	for i, k := range ThemeKeys() {
		if Themes[k].Name == CurrentTheme.Name {
			state.Cursor = i
		}
	}
	m.modal.Open(state)
	return m
}

func (m Model) handleThemeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	state, ok := m.modal.ThemeState()
	if !ok {
		return m, nil
	}
	keys := ThemeKeys()
	switch msg.String() {
	case "esc", "q":
		m.modal.Close()
	case "up", "k":
		if state.Cursor > 0 {
			state.Cursor--
		}
	case "down", "j":
		if state.Cursor < len(keys)-1 {
			state.Cursor++
		}
	case "enter":
		name := keys[state.Cursor]
		SetTheme(name)
		if m.settings != nil {
			util.LogError("save theme", m.settings.SetSetting(m.ctx, database.SettingTheme, name))
		}
		m.modal.Close()
		m.setStatus("Theme: " + Themes[name].Name)
	}
	return m, nil
}

func (m Model) renderThemeModal() string {
	state, ok := m.modal.ThemeState()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Theme") + "\n\n")
	for i, k := range ThemeKeys() {
		if i == state.Cursor {
			b.WriteString(CurrentTheme.Focused.Render("> "+Themes[k].Name) + "\n")
		} else {
			b.WriteString("  " + Themes[k].Name + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
