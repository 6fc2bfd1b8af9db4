package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs a binding. The bool reports whether the key was consumed.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Views       []View
	Priority    int
}

func (b KeyBinding) AppliesToView(v View) bool {
	if len(b.Views) == 0 {
		return true
	}
	for _, bv := range b.Views {
		if bv == v {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToView(m.view) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(v View) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToView(v) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForView lists "[key]description" for every documented binding, first
// key only.
func (r *HandlerRegistry) HelpForView(v View) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.GetBindingsForView(v) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		key := b.Keys[0]
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, "["+key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}
