package report

import (
	"testing"

	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
)

var _ graph.Surface = (*PDFSurface)(nil)

func TestPDFSurfaceScalesIntoPage(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	s := NewPDFSurface(pdf, 10, 20, 400, 300, 0.25)

	w, h := s.Size()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, h)

	x, y := s.px(100, 100)
	assert.Equal(t, 35.0, x)
	assert.Equal(t, 45.0, y)

	graph.Render(s, graph.Frame{
		Tasks:   nil,
		View:    graph.NewViewState(),
		Palette: graph.DefaultPalette(),
	})
	assert.NoError(t, pdf.Error())
}
