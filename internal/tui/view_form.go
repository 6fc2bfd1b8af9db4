package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	errTitleRequired = "Title is required"
	formWidth        = 60
)

var errTitleTooLong = fmt.Sprintf("Title must be at most %d characters", config.MaxTitleLength)

type formState struct {
	title       textinput.Model
	description textarea.Model
	focus       int // 0 title, 1 description
	err         string
	submitting  bool
}

func newFormState() formState {
	ti := textinput.New()
	ti.Placeholder = "Enter task title"
	ti.CharLimit = config.MaxTitleLength + 1
	ti.Width = formWidth
	ta := textarea.New()
	ta.Placeholder = "Enter task description (optional)"
	ta.CharLimit = config.MaxDescriptionLength
	ta.ShowLineNumbers = false
	ta.SetWidth(formWidth)
	ta.SetHeight(3)
	return formState{title: ti, description: ta}
}

func (f *formState) resize(width int) {
	w := formInputWidth(width)
	f.title.Width = w
	f.description.SetWidth(w)
}

// formInputWidth fits the inputs to the window, within [MinPaneWidth, formWidth].
func formInputWidth(width int) int {
	return max(min(width-8, formWidth), config.MinPaneWidth)
}

func (f *formState) focusTitle() {
	f.focus = 0
	f.description.Blur()
	f.title.Focus()
}

func (f *formState) focusDescription() {
	f.focus = 1
	f.title.Blur()
	f.description.Focus()
}

func (f *formState) reset() {
	f.title.Reset()
	f.description.Reset()
	f.err = ""
	f.submitting = false
	f.focusTitle()
}

// validate returns the input to send, or the message to show instead.
func (f formState) validate() (models.TaskInput, string) {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		return models.TaskInput{}, errTitleRequired
	}
	if utf8.RuneCountInString(title) > config.MaxTitleLength {
		return models.TaskInput{}, errTitleTooLong
	}
	return models.TaskInput{Title: title, Description: strings.TrimSpace(f.description.Value())}, ""
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.title.Blur()
		m.form.description.Blur()
		m.view = ViewList
		return m, nil
	case "tab", "shift+tab":
		if m.form.focus == 0 {
			m.form.focusDescription()
		} else {
			m.form.focusTitle()
		}
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.form.focus == 0 {
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	if m.form.focus == 0 {
		m.form.title, cmd = m.form.title.Update(msg)
	} else {
		m.form.description, cmd = m.form.description.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	m.form.err = ""
	in, problem := m.form.validate()
	if problem != "" {
		m.form.err = problem
		return m, nil
	}
	m.form.submitting = true
	return m, m.createTaskCmd(in)
}

func (m Model) renderForm(width int) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Create New Task") + "\n\n")
	if m.form.err != "" {
		b.WriteString(CurrentTheme.Error.Render(m.form.err) + "\n\n")
	}

	label := func(s string, focused bool) string {
		if focused {
			return CurrentTheme.Focused.Render(s)
		}
		return CurrentTheme.Dim.Render(s)
	}
	b.WriteString(label("Task Title *", m.form.focus == 0) + "\n")
	b.WriteString(CurrentTheme.Input.Width(formInputWidth(width)+2).Render(m.form.title.View()) + "\n")
	b.WriteString(label("Description", m.form.focus == 1) + "\n")
	b.WriteString(CurrentTheme.Input.Width(formInputWidth(width)+2).Render(m.form.description.View()) + "\n\n")

	button := "[ Create Task ]"
	if m.form.submitting {
		button = m.spinner.View() + " Creating..."
	}
	b.WriteString(CurrentTheme.Focused.Render(button))
	return b.String()
}
