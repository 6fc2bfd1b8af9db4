package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutGridShape(t *testing.T) {
	for n := 0; n <= 40; n++ {
		g := Layout(n)
		require.Len(t, g.Positions, n, "n=%d", n)
		if n == 0 {
			assert.Zero(t, g.Columns)
			assert.Zero(t, g.Rows)
			continue
		}
		wantCols := int(math.Ceil(math.Sqrt(float64(n))))
		assert.Equal(t, wantCols, g.Columns, "n=%d", n)
		assert.Equal(t, int(math.Ceil(float64(n)/float64(wantCols))), g.Rows, "n=%d", n)
		assert.Equal(t, Point{X: 100, Y: 100}, g.Positions[0], "n=%d", n)
	}
}

func TestLayoutRowMajor(t *testing.T) {
	g := Layout(5) // 3 columns, 2 rows
	want := []Point{{100, 100}, {250, 100}, {400, 100}, {100, 250}, {250, 250}}
	assert.Equal(t, want, g.Positions)
	assert.Equal(t, Point{X: 500, Y: 350}, g.Extent())
}

func TestLayoutDeterministic(t *testing.T) {
	assert.Equal(t, Layout(7), Layout(7))
}
