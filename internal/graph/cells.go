package graph

import (
	"math"
	"strings"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	ch   rune
	fg   Color
	bg   Color
	bold bool
}

// CellCanvas is a Surface backed by a grid of terminal cells. One column is
// config.CellWidthUnits wide and one row config.CellHeightUnits tall, which
// keeps circles round on typical 1:2 terminal fonts.
type CellCanvas struct {
	cols, rows int
	cells      []cell
}

// NewCellCanvas allocates a cols×rows canvas.
func NewCellCanvas(cols, rows int) *CellCanvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	c := &CellCanvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return c
}

// Size reports the canvas extent in graph units.
func (c *CellCanvas) Size() (float64, float64) {
	return float64(c.cols) * config.CellWidthUnits, float64(c.rows) * config.CellHeightUnits
}

// CellCenter maps a terminal cell to the graph-unit point at its centre.
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * config.CellWidthUnits, (float64(row) + 0.5) * config.CellHeightUnits
}

func (c *CellCanvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / config.CellWidthUnits)), int(math.Floor(y / config.CellHeightUnits))
}

func (c *CellCanvas) Clear(bg Color) {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', bg: bg}
	}
}

// Line draws with box-drawing runes chosen from the overall direction.
func (c *CellCanvas) Line(x0, y0, x1, y1 float64, col Color, width float64) {
	cx0, cy0 := toCell(x0, y0)
	cx1, cy1 := toCell(x1, y1)
	ch := lineRune(cx1-cx0, cy1-cy0)
	bold := width > config.EdgeWidth

	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx, sy := 1, 1
	if cx0 > cx1 {
		sx = -1
	}
	if cy0 > cy1 {
		sy = -1
	}
	e := dx + dy
	x, y := cx0, cy0
	for {
		if p := c.at(x, y); p != nil {
			p.ch, p.fg, p.bold = ch, col, bold
		}
		if x == cx1 && y == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func lineRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case abs(dx) > 3*abs(dy):
		return '─'
	case abs(dy) > 3*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// FillCircle paints every cell whose centre lies inside the circle. The cell
// holding the centre is always painted so tiny nodes stay visible.
func (c *CellCanvas) FillCircle(cx, cy, r float64, col Color) {
	c.eachCellNear(cx, cy, r, func(p *cell, d float64) {
		if d <= r {
			*p = cell{ch: ' ', bg: col}
		}
	})
	ccol, crow := toCell(cx, cy)
	if p := c.at(ccol, crow); p != nil {
		*p = cell{ch: ' ', bg: col}
	}
}

// StrokeCircle paints a one-cell ring just outside the radius.
func (c *CellCanvas) StrokeCircle(cx, cy, r float64, col Color, width float64) {
	outer := r + math.Max(width, config.CellWidthUnits)
	c.eachCellNear(cx, cy, outer, func(p *cell, d float64) {
		if d > r && d <= outer {
			p.ch, p.fg, p.bg, p.bold = ' ', col, col, false
		}
	})
}

func (c *CellCanvas) eachCellNear(cx, cy, r float64, fn func(p *cell, d float64)) {
	minCol, minRow := toCell(cx-r, cy-r)
	maxCol, maxRow := toCell(cx+r, cy+r)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := c.at(col, row)
			if p == nil {
				continue
			}
			x, y := CellCenter(col, row)
			fn(p, math.Hypot(x-cx, y-cy))
		}
	}
}

// Text writes s over the existing background. Size is ignored; terminals
// have one font size.
func (c *CellCanvas) Text(x, y float64, s string, col Color, size float64, align Align) {
	runes := []rune(s)
	startCol, row := toCell(x, y)
	if align == AlignCenter {
		startCol -= len(runes) / 2
	} else {
		// Left-aligned text sits on its baseline; move up to the row above it.
		_, row = toCell(x, y-config.CellHeightUnits/2)
	}
	for i, ch := range runes {
		if p := c.at(startCol+i, row); p != nil {
			p.ch, p.fg, p.bold = ch, col, true
		}
	}
}

// Plain returns the canvas runes without styling, one line per row.
func (c *CellCanvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.cells[row*c.cols+col].ch)
		}
	}
	return b.String()
}

// View renders the canvas with lipgloss, batching runs of equal style.
func (c *CellCanvas) View() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && sameStyle(line[i], line[start]) {
				continue
			}
			b.WriteString(styleFor(line[start]).Render(runString(line[start:i])))
			start = i
		}
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func styleFor(p cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if p.fg != "" {
		st = st.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != "" {
		st = st.Background(lipgloss.Color(p.bg))
	}
	if p.bold {
		st = st.Bold(true)
	}
	return st
}

func runString(cells []cell) string {
	rs := make([]rune, len(cells))
	for i, p := range cells {
		rs[i] = p.ch
	}
	return string(rs)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
