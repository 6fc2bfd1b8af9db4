package report

import (
	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/go-pdf/fpdf"
)

const ptPerMM = 72.0 / 25.4

// PDFSurface paints a graph frame into a rectangle of the current fpdf page.
// Graph units are scaled by Scale millimetres each.
type PDFSurface struct {
	pdf    *fpdf.Fpdf
	left   float64
	top    float64
	scale  float64
	width  float64
	height float64
	tr     func(string) string
}

// NewPDFSurface maps a width×height graph-unit area onto the page, with its
// top-left corner at (left, top) mm.
func NewPDFSurface(pdf *fpdf.Fpdf, left, top, width, height, scale float64) *PDFSurface {
	return &PDFSurface{
		pdf:    pdf,
		left:   left,
		top:    top,
		scale:  scale,
		width:  width,
		height: height,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *PDFSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *PDFSurface) px(x, y float64) (float64, float64) {
	return s.left + x*s.scale, s.top + y*s.scale
}

func (s *PDFSurface) Clear(c graph.Color) {
	s.pdf.SetFillColor(c.RGB())
	s.pdf.Rect(s.left, s.top, s.width*s.scale, s.height*s.scale, "F")
}

func (s *PDFSurface) Line(x0, y0, x1, y1 float64, c graph.Color, width float64) {
	s.pdf.SetDrawColor(c.RGB())
	s.pdf.SetLineWidth(width * s.scale)
	ax, ay := s.px(x0, y0)
	bx, by := s.px(x1, y1)
	s.pdf.Line(ax, ay, bx, by)
}

func (s *PDFSurface) FillCircle(cx, cy, r float64, c graph.Color) {
	s.pdf.SetFillColor(c.RGB())
	x, y := s.px(cx, cy)
	s.pdf.Circle(x, y, r*s.scale, "F")
}

func (s *PDFSurface) StrokeCircle(cx, cy, r float64, c graph.Color, width float64) {
	s.pdf.SetDrawColor(c.RGB())
	s.pdf.SetLineWidth(width * s.scale)
	x, y := s.px(cx, cy)
	s.pdf.Circle(x, y, r*s.scale, "D")
}

// Text uses the built-in Helvetica; size is in graph units like everything else.
func (s *PDFSurface) Text(x, y float64, str string, c graph.Color, size float64, align graph.Align) {
	sizeMM := size * s.scale
	s.pdf.SetFont("Helvetica", "B", sizeMM*ptPerMM)
	s.pdf.SetTextColor(c.RGB())
	str = s.tr(str)
	px, py := s.px(x, y)
	if align == graph.AlignCenter {
		px -= s.pdf.GetStringWidth(str) / 2
		py += sizeMM * 0.35
	}
	s.pdf.Text(px, py, str)
}
