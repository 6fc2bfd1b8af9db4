package graph

// Align controls how Text positions a string around its anchor.
type Align int

const (
	// AlignLeft puts the baseline start at the anchor.
	AlignLeft Align = iota
	// AlignCenter centres the string on the anchor both ways.
	AlignCenter
)

// Surface is a 2D drawing target in graph units, origin top-left.
type Surface interface {
	Size() (width, height float64)
	Clear(c Color)
	Line(x0, y0, x1, y1 float64, c Color, width float64)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r float64, c Color, width float64)
	Text(x, y float64, s string, c Color, size float64, align Align)
}
