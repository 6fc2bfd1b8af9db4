package tui

import (
	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// paneSize is the body area between header and footer, in cells.
func (m Model) paneSize() (int, int) {
	return max(m.width, 1), max(m.height-config.HeaderHeight-config.FooterHeight, 1)
}

func (m Model) handleGraphMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.graph.view.Scroll(-1)
	case tea.MouseButtonWheelDown:
		m.graph.view.Scroll(1)
	case tea.MouseButtonLeft:
		_, rows := m.paneSize()
		row := msg.Y - config.HeaderHeight
		if row < 0 || row >= rows {
			return m
		}
		x, y := graph.CellCenter(msg.X, row)
		m = m.clickGraph(x, y)
	}
	return m
}

// clickGraph feeds a click at graph-unit point (x, y) to the view state and
// selects the first node hit.
func (m Model) clickGraph(x, y float64) Model {
	tasks := m.store.Tasks()
	hits := m.graph.view.HitTest(x, y, tasks)
	if !m.graph.view.Click(x, y, tasks, m.store.Edges()) {
		return m
	}
	m.graph.selected = hits[0]
	return m
}

// selectedCentre is the on-screen centre of the selected node.
func (m Model) selectedCentre() (graph.Point, bool) {
	tasks := m.store.Tasks()
	grid := graph.Layout(len(tasks))
	for i, t := range tasks {
		if t.ID == m.graph.selected {
			return m.graph.view.Transform(grid.Positions[i]), true
		}
	}
	return graph.Point{}, false
}

// selectNeighbourNode moves the selection through the task order.
func (m Model) selectNeighbourNode(step int) Model {
	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		return m
	}
	idx := -1
	for i, t := range tasks {
		if t.ID == m.graph.selected {
			idx = i
			break
		}
	}
	idx = (idx + step + len(tasks)) % len(tasks)
	m.graph.selected = tasks[idx].ID
	return m
}

func registerGraphBindings(r *HandlerRegistry) {
	g := []View{ViewGraph}
	pan := func(dx, dy float64) KeyHandler {
		return func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.graph.view.PanBy(dx, dy)
			return m, nil, true
		}
	}
	r.Register(KeyBinding{Keys: []string{"left", "h"}, Description: "pan", Views: g, Handler: pan(config.PanStep, 0)})
	r.Register(KeyBinding{Keys: []string{"right", "l"}, Views: g, Handler: pan(-config.PanStep, 0)})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Views: g, Handler: pan(0, config.PanStep)})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Views: g, Handler: pan(0, -config.PanStep)})
	r.Register(KeyBinding{Keys: []string{"+", "="}, Description: "zoom", Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.graph.view.Scroll(-1)
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"-"}, Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.graph.view.Scroll(1)
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"r"}, Description: "reset", Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.graph.view.Reset()
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"n"}, Description: "next node", Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m.selectNeighbourNode(1), nil, true }})
	r.Register(KeyBinding{Keys: []string{"N"}, Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) { return m.selectNeighbourNode(-1), nil, true }})
	r.Register(KeyBinding{Keys: []string{" ", "space"}, Description: "highlight", Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			if c, ok := m.selectedCentre(); ok {
				m = m.clickGraph(c.X, c.Y)
			}
			return m, nil, true
		}})
	r.Register(KeyBinding{Keys: []string{"e"}, Description: "png", Views: g,
		Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
			m.setStatus("Exporting png...")
			return m, m.exportCmd(report.FormatPNG), true
		}})
}

func (m Model) renderGraph() string {
	cols, rows := m.paneSize()
	canvas := graph.NewCellCanvas(cols, rows)
	graph.Render(canvas, graph.Frame{
		Tasks:    m.store.Tasks(),
		Edges:    m.store.Edges(),
		View:     m.graph.view,
		Selected: m.graph.selected,
		Palette:  CurrentTheme.Palette,
	})
	return canvas.View()
}
