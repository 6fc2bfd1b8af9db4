package graph

import (
	"fmt"
	"math"
	"strconv"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/models"
)

// Frame is everything needed to paint the graph once.
type Frame struct {
	Tasks    []models.Task
	Edges    []models.Edge
	View     ViewState
	Selected int64 // 0 means nothing selected
	Palette  Palette
}

// Render paints f onto s: background, edges with arrowheads, nodes, labels
// and the zoom readout. Edges whose endpoints are not in f.Tasks are skipped.
func Render(s Surface, f Frame) {
	grid := Layout(len(f.Tasks))
	s.Clear(f.Palette.Background)

	index := make(map[int64]int, len(f.Tasks))
	for i, t := range f.Tasks {
		index[t.ID] = i
	}

	for _, e := range f.Edges {
		from, ok := index[e.TaskID]
		if !ok {
			continue
		}
		to, ok := index[e.DependsOnID]
		if !ok {
			continue
		}
		color, width := f.Palette.Edge, config.EdgeWidth
		if f.View.Highlighted(e.TaskID) || f.View.Highlighted(e.DependsOnID) {
			color, width = f.Palette.EdgeHighlight, config.HighlightedEdgeWidth
		}
		a := f.View.Transform(grid.Positions[from])
		b := f.View.Transform(grid.Positions[to])
		drawArrow(s, a, b, color, width)
	}

	r := f.View.Radius()
	for i, t := range f.Tasks {
		c := f.View.Transform(grid.Positions[i])
		s.FillCircle(c.X, c.Y, r, f.Palette.StatusColor(t.Status))
		if t.ID == f.Selected || f.View.Highlighted(t.ID) {
			s.StrokeCircle(c.X, c.Y, r, f.Palette.Border, config.NodeBorderWidth)
		}
		s.Text(c.X, c.Y, strconv.FormatInt(t.ID, 10), f.Palette.Label, config.LabelSize*f.View.Zoom, AlignCenter)
	}

	s.Text(config.ZoomLabelX, config.ZoomLabelY, ZoomLabel(f.View.Zoom), f.Palette.ZoomLabel, config.LabelSize, AlignLeft)
}

// ZoomLabel formats the zoom readout, e.g. "Zoom: 110%".
func ZoomLabel(zoom float64) string {
	return fmt.Sprintf("Zoom: %.0f%%", zoom*100)
}

// drawArrow draws a line from a to b and a two-stroke head at b.
func drawArrow(s Surface, a, b Point, c Color, width float64) {
	s.Line(a.X, a.Y, b.X, b.Y, c, width)
	for _, p := range ArrowHead(a, b) {
		s.Line(b.X, b.Y, p.X, p.Y, c, width)
	}
}

// ArrowHead returns the far ends of the two head strokes for an arrow
// pointing from a to b, each ArrowLength long and 30 degrees off the shaft.
func ArrowHead(a, b Point) [2]Point {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	const spread = math.Pi / 6
	return [2]Point{
		{X: b.X - config.ArrowLength*math.Cos(angle-spread), Y: b.Y - config.ArrowLength*math.Sin(angle-spread)},
		{X: b.X - config.ArrowLength*math.Cos(angle+spread), Y: b.Y - config.ArrowLength*math.Sin(angle+spread)},
	}
}
