// Package report writes the task graph to files: a PDF report, a PNG frame,
// and DOT or SVG through graphviz.
package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/config"
	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/models"
)

// Format is an export file type.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
)

// Formats lists every supported export format.
var Formats = []Format{FormatPNG, FormatPDF, FormatDOT, FormatSVG}

// ParseFormat accepts a format name in any case, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want png, pdf, dot or svg)", s)
}

// Input is what every export draws from.
type Input struct {
	Title   string
	Now     time.Time
	Tasks   []models.Task
	View    graph.ViewState
	Palette graph.Palette
	// Graph, when set, is used for DOT and SVG instead of deriving nodes and
	// edges from Tasks.
	Graph *models.GraphData
}

func (in Input) title() string {
	if in.Title != "" {
		return in.Title
	}
	return "Task Report"
}

// Export writes in as format f.
func Export(ctx context.Context, w io.Writer, f Format, in Input) error {
	switch f {
	case FormatPNG:
		return WritePNG(w, in)
	case FormatPDF:
		return WritePDF(w, in)
	case FormatDOT, FormatSVG:
		data := graph.GraphDataFromTasks(in.Tasks)
		if in.Graph != nil {
			data = *in.Graph
		}
		gvFormat := graph.FormatDOT
		if f == FormatSVG {
			gvFormat = graph.FormatSVG
		}
		return graph.ExportGraphviz(ctx, w, gvFormat, data, in.Palette, in.View)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WritePNG renders the frame as the user sees it. The image grows past the
// default export size when the zoomed grid needs more room.
func WritePNG(w io.Writer, in Input) error {
	width, height := pngSize(len(in.Tasks), in.View)
	s, err := graph.NewRasterSurface(width, height)
	if err != nil {
		return err
	}
	graph.Render(s, graph.Frame{
		Tasks:   in.Tasks,
		Edges:   models.EdgesFromTasks(in.Tasks),
		View:    in.View,
		Palette: in.Palette,
	})
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func pngSize(n int, v graph.ViewState) (int, int) {
	ext := v.Transform(graph.Layout(n).Extent())
	w := max(config.ExportWidth, int(math.Ceil(ext.X)))
	h := max(config.ExportHeight, int(math.Ceil(ext.Y)))
	return w, h
}

// Filename is the default name for an export made at now.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", config.AppName, now.Format("20060102_150405"), f)
}

// SaveToDir writes the export into dir under its default name and returns
// the full path.
func SaveToDir(ctx context.Context, dir string, f Format, in Input) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	path := filepath.Join(dir, Filename(f, now))
	if err := SaveFile(ctx, path, f, in); err != nil {
		return "", err
	}
	return path, nil
}

// SaveFile writes the export to path, removing the partial file on failure.
func SaveFile(ctx context.Context, path string, f Format, in Input) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return Export(ctx, file, f, in)
}
