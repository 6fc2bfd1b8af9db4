package graph

import (
	"math"
	"sort"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/akyairhashvil/taskgraph/internal/util"
)

// ViewState is the interactive state of the graph view. The highlight set is
// replaced, never mutated, so copies of a ViewState stay independent.
type ViewState struct {
	Zoom      float64
	Pan       Point
	highlight map[int64]struct{}
}

// NewViewState returns the initial state: zoom 1, no pan, nothing highlighted.
func NewViewState() ViewState {
	return ViewState{Zoom: config.DefaultZoom}
}

// Transform maps a layout position to screen units: pan + p·zoom.
func (v ViewState) Transform(p Point) Point {
	return Point{X: v.Pan.X + p.X*v.Zoom, Y: v.Pan.Y + p.Y*v.Zoom}
}

// Radius is the on-screen node radius at the current zoom.
func (v ViewState) Radius() float64 {
	return config.NodeRadius * v.Zoom
}

// Highlighted reports whether id is in the highlight set.
func (v ViewState) Highlighted(id int64) bool {
	_, ok := v.highlight[id]
	return ok
}

// HighlightedIDs returns the highlight set in ascending order.
func (v ViewState) HighlightedIDs() []int64 {
	ids := make([]int64, 0, len(v.highlight))
	for id := range v.highlight {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HitTest returns the ids of every task whose node contains the screen
// point (x, y), in task order.
func (v ViewState) HitTest(x, y float64, tasks []models.Task) []int64 {
	grid := Layout(len(tasks))
	r := v.Radius()
	var hits []int64
	for i, t := range tasks {
		c := v.Transform(grid.Positions[i])
		if math.Hypot(x-c.X, y-c.Y) <= r {
			hits = append(hits, t.ID)
		}
	}
	return hits
}

// Click toggles the highlight of every node under (x, y). A node that is not
// highlighted joins the set together with every task sharing an edge with
// it; a highlighted node leaves it together with those same neighbours.
// Only direct neighbours are involved. Clicking empty space changes nothing.
// Click reports whether any node was hit.
func (v *ViewState) Click(x, y float64, tasks []models.Task, edges []models.Edge) bool {
	hits := v.HitTest(x, y, tasks)
	if len(hits) == 0 {
		return false
	}
	next := make(map[int64]struct{}, len(v.highlight)+4)
	for id := range v.highlight {
		next[id] = struct{}{}
	}
	for _, id := range hits {
		_, on := next[id]
		group := append([]int64{id}, Neighbours(id, edges)...)
		for _, member := range group {
			if on {
				delete(next, member)
			} else {
				next[member] = struct{}{}
			}
		}
	}
	v.highlight = next
	return true
}

// Neighbours lists the tasks sharing an edge with id, in either direction,
// in edge order without duplicates.
func Neighbours(id int64, edges []models.Edge) []int64 {
	seen := make(map[int64]bool)
	var out []int64
	add := func(n int64) {
		if n == id || seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}
	for _, e := range edges {
		if e.TaskID == id {
			add(e.DependsOnID)
		}
		if e.DependsOnID == id {
			add(e.TaskID)
		}
	}
	return out
}

// Scroll applies one wheel notch: positive deltaY zooms out by 0.9, anything
// else zooms in by 1.1. The result is clamped to [0.5, 3.0].
func (v *ViewState) Scroll(deltaY float64) {
	factor := config.ZoomInStep
	if deltaY > 0 {
		factor = config.ZoomOutStep
	}
	v.Zoom = util.Clamp(v.Zoom*factor, config.MinZoom, config.MaxZoom)
}

// PanBy shifts the view by (dx, dy) screen units.
func (v *ViewState) PanBy(dx, dy float64) {
	v.Pan.X += dx
	v.Pan.Y += dy
}

// Reset returns to zoom 1, no pan and an empty highlight set.
func (v *ViewState) Reset() {
	*v = NewViewState()
}
