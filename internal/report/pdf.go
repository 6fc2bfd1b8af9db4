package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	// maxGraphScale keeps small graphs from being blown up to page size.
	maxGraphScale = 0.5
)

// WritePDF writes a task report: a summary and task list, then a landscape
// page with the dependency graph.
func WritePDF(w io.Writer, in Input) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	if !in.Now.IsZero() {
		pdf.SetCreationDate(in.Now)
		pdf.SetModificationDate(in.Now)
	}
	title := in.title()
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)
	if !in.Now.IsZero() {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, "Generated "+in.Now.Format(time.RFC1123))
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	counts := statusCounts(in.Tasks)
	for _, s := range models.Statuses {
		pdf.Cell(0, 6, fmt.Sprintf("  %s: %d", s.Label(), counts[s]))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("  Total: %d", len(in.Tasks)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Tasks")
	pdf.Ln(8)
	if len(in.Tasks) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, "No tasks yet. Create your first task to get started!")
		pdf.Ln(8)
	}
	for _, t := range in.Tasks {
		r, g, b := in.Palette.StatusColor(t.Status).RGB()
		pdf.SetFillColor(r, g, b)
		pdf.Rect(pageMargin, pdf.GetY()+1.5, 3, 3, "F")

		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetX(pageMargin + 5)
		pdf.Cell(0, 6, tr(fmt.Sprintf("#%d  %s  [%s]", t.ID, t.Title, t.Status.Label())))
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "", 10)
		if t.Description != nil && strings.TrimSpace(*t.Description) != "" {
			pdf.SetX(pageMargin + 5)
			pdf.MultiCell(0, 5, tr(*t.Description), "", "", false)
		}
		if len(t.Dependencies) > 0 {
			deps := make([]string, 0, len(t.Dependencies))
			for _, d := range t.Dependencies {
				deps = append(deps, fmt.Sprintf("#%d %s", d.DependsOn, d.DependsOnTitle))
			}
			pdf.SetX(pageMargin + 5)
			pdf.MultiCell(0, 5, tr("Depends on: "+strings.Join(deps, ", ")), "", "", false)
		}
		pdf.Ln(2)
	}

	pdf.AddPageFormat("L", pdf.GetPageSizeStr("A4"))
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Dependency Graph")
	pdf.Ln(12)
	drawGraphPage(pdf, in)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// drawGraphPage fits the whole grid into what is left of the page. Zoom and
// pan are dropped; the highlight set is kept.
func drawGraphPage(pdf *fpdf.Fpdf, in Input) {
	view := in.View
	view.Zoom = 1
	view.Pan = graph.Point{}

	ext := graph.Layout(len(in.Tasks)).Extent()
	pageW, pageH := pdf.GetPageSize()
	top := pdf.GetY()
	availW := pageW - 2*pageMargin
	availH := pageH - top - pageMargin
	scale := math.Min(maxGraphScale, math.Min(availW/ext.X, availH/ext.Y))

	s := NewPDFSurface(pdf, pageMargin, top, ext.X, ext.Y, scale)
	graph.Render(s, graph.Frame{
		Tasks:   in.Tasks,
		Edges:   models.EdgesFromTasks(in.Tasks),
		View:    view,
		Palette: in.Palette,
	})
}

func statusCounts(tasks []models.Task) map[models.TaskStatus]int {
	counts := make(map[models.TaskStatus]int, len(models.Statuses))
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
