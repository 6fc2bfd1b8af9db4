package tui

import tea "github.com/charmbracelet/bubbletea"

type ModalType int

const (
	ModalNone ModalType = iota
	ModalDependency
	ModalConfirmDelete
	ModalTheme
)

type ModalState interface {
	Type() ModalType
}

type depOption struct {
	ID       int64
	Label    string
	Existing bool
}

// DependencyState is the picker for what TaskID depends on.
type DependencyState struct {
	TaskID  int64
	Cursor  int
	Options []depOption
	// Pending is set while a check or mutation is in flight.
	Pending bool
	Message string
}

func (s *DependencyState) Type() ModalType { return ModalDependency }

type ConfirmDeleteState struct {
	TaskID int64
	Title  string
}

func (s *ConfirmDeleteState) Type() ModalType { return ModalConfirmDelete }

type ThemeState struct {
	Cursor int
}

func (s *ThemeState) Type() ModalType { return ModalTheme }

// ModalManager tracks the open modal, if any.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current != nil && m.current.Type() == t
}

func (m *ModalManager) DependencyState() (*DependencyState, bool) {
	state, ok := m.current.(*DependencyState)
	return state, ok
}

func (m *ModalManager) ConfirmDeleteState() (*ConfirmDeleteState, bool) {
	state, ok := m.current.(*ConfirmDeleteState)
	return state, ok
}

func (m *ModalManager) ThemeState() (*ThemeState, bool) {
	state, ok := m.current.(*ThemeState)
	return state, ok
}

// handleModalKey routes a key press to the open modal.
func (m Model) handleModalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.modal.ActiveModal() {
	case ModalDependency:
		return m.handleDependencyKey(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	case ModalTheme:
		return m.handleThemeKey(msg)
	}
	return m, nil
}
