package graph

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellCanvasSize(t *testing.T) {
	c := NewCellCanvas(80, 24)
	w, h := c.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 480.0, h)

	empty := NewCellCanvas(-3, 0)
	w, h = empty.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Equal(t, "", empty.Plain())
}

func TestCellCenterRoundTrip(t *testing.T) {
	x, y := CellCenter(10, 5)
	assert.Equal(t, 105.0, x)
	assert.Equal(t, 110.0, y)
	col, row := toCell(x, y)
	assert.Equal(t, 10, col)
	assert.Equal(t, 5, row)
}

func TestCellCanvasLines(t *testing.T) {
	c := NewCellCanvas(10, 3)
	c.Line(5, 30, 95, 30, "#ffffff", config.EdgeWidth)
	lines := strings.Split(c.Plain(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("─", 10), lines[1])

	c = NewCellCanvas(3, 3)
	c.Line(15, 10, 15, 50, "#ffffff", config.EdgeWidth)
	for _, l := range strings.Split(c.Plain(), "\n") {
		assert.Equal(t, " │ ", l)
	}
}

func TestLineRune(t *testing.T) {
	assert.Equal(t, '·', lineRune(0, 0))
	assert.Equal(t, '─', lineRune(9, 1))
	assert.Equal(t, '│', lineRune(-1, -9))
	assert.Equal(t, '╲', lineRune(3, 3))
	assert.Equal(t, '╱', lineRune(3, -3))
}

func TestCellCanvasClipsOutOfBounds(t *testing.T) {
	c := NewCellCanvas(4, 2)
	assert.NotPanics(t, func() {
		c.Line(-500, -500, 500, 500, "#ffffff", config.EdgeWidth)
		c.FillCircle(-100, -100, 50, "#ffffff")
		c.StrokeCircle(1000, 1000, 50, "#ffffff", 3)
		c.Text(-20, 10, "hello world", "#ffffff", 12, AlignCenter)
	})
}

func TestCellCanvasCircleAndLabel(t *testing.T) {
	c := NewCellCanvas(20, 10)
	c.Clear("#ffffff")
	c.FillCircle(100, 100, 30, "#10b981")
	c.Text(100, 100, "7", "#ffffff", 12, AlignCenter)

	col, row := toCell(100, 100)
	p := c.at(col, row)
	require.NotNil(t, p)
	assert.Equal(t, '7', p.ch)
	assert.Equal(t, Color("#10b981"), p.bg)

	far := c.at(0, 0)
	assert.Equal(t, Color("#ffffff"), far.bg)
}

func TestCellCanvasTinyCircleStillVisible(t *testing.T) {
	c := NewCellCanvas(10, 10)
	c.FillCircle(52, 47, 1, "#ef4444")
	col, row := toCell(52, 47)
	assert.Equal(t, Color("#ef4444"), c.at(col, row).bg)
}

func TestCellCanvasRendersScenario(t *testing.T) {
	c := NewCellCanvas(60, 25)
	f := scenarioFrame()
	Render(c, f)

	plain := c.Plain()
	for _, label := range []string{"1", "2", "3", "4", "Zoom: 100%"} {
		assert.Contains(t, plain, label)
	}
	assert.NotEmpty(t, c.View())
	assert.Equal(t, 25, strings.Count(c.View(), "\n")+1)
}

func TestCellCanvasViewRendersTasksOnly(t *testing.T) {
	c := NewCellCanvas(40, 20)
	Render(c, Frame{Tasks: testutil.Chain(1), View: NewViewState(), Palette: DarkPalette()})
	assert.Contains(t, c.Plain(), "1")
}
