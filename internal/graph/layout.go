// Package graph lays out, renders and hit-tests the task dependency graph.
//
// Rendering goes through the Surface interface so the same frame can be
// painted onto the terminal (CellCanvas), a PNG (RasterSurface) or a PDF page.
// View state (zoom, pan, highlight set) changes only through the ViewState
// transitions Click, Scroll, PanBy and Reset.
package graph

import (
	"math"

	"github.com/akyairhashvil/taskgraph/internal/config"
)

// Point is a position in graph units.
type Point struct {
	X, Y float64
}

// Grid is the result of laying out N nodes.
type Grid struct {
	Columns   int
	Rows      int
	Positions []Point
}

// Layout places n nodes on a near-square grid in row-major order: the i-th
// node lands in cell i. Columns is ceil(sqrt(n)) and rows is ceil(n/columns).
func Layout(n int) Grid {
	if n <= 0 {
		return Grid{Positions: []Point{}}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))
	positions := make([]Point, n)
	for i := range positions {
		row, col := i/cols, i%cols
		positions[i] = Point{
			X: float64(col)*config.CellSpacing + config.OriginX,
			Y: float64(row)*config.CellSpacing + config.OriginY,
		}
	}
	return Grid{Columns: cols, Rows: rows, Positions: positions}
}

// Extent is the bottom-right corner of the laid-out grid plus one origin
// margin, i.e. the size a surface needs to show every node at zoom 1.
func (g Grid) Extent() Point {
	if len(g.Positions) == 0 {
		return Point{X: 2 * config.OriginX, Y: 2 * config.OriginY}
	}
	return Point{
		X: float64(g.Columns-1)*config.CellSpacing + 2*config.OriginX,
		Y: float64(g.Rows-1)*config.CellSpacing + 2*config.OriginY,
	}
}
