package graph

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/taskgraph/internal/models"
)

// Color is a "#rrggbb" hex string, the form lipgloss, gg and graphviz all accept.
type Color string

// RGB splits the colour into components. Malformed colours are black.
func (c Color) RGB() (r, g, b int) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// Palette holds every colour the renderer uses.
type Palette struct {
	Background    Color
	Edge          Color
	EdgeHighlight Color
	Border        Color
	Label         Color
	ZoomLabel     Color
	Status        map[models.TaskStatus]Color
}

// StatusColor returns the fill for status, falling back to the pending colour.
func (p Palette) StatusColor(status models.TaskStatus) Color {
	if c, ok := p.Status[status]; ok {
		return c
	}
	return p.Status[models.StatusPending]
}

// DefaultPalette is the light palette.
func DefaultPalette() Palette {
	return Palette{
		Background:    "#ffffff",
		Edge:          "#cbd5e1",
		EdgeHighlight: "#ef4444",
		Border:        "#000000",
		Label:         "#ffffff",
		ZoomLabel:     "#1e293b",
		Status: map[models.TaskStatus]Color{
			models.StatusPending:    "#9ca3af",
			models.StatusInProgress: "#3b82f6",
			models.StatusCompleted:  "#10b981",
			models.StatusBlocked:    "#ef4444",
		},
	}
}

// DarkPalette suits dark terminals.
func DarkPalette() Palette {
	p := DefaultPalette()
	p.Background = "#1e1e2e"
	p.Edge = "#6c7086"
	p.EdgeHighlight = "#f38ba8"
	p.Border = "#f5e0dc"
	p.Label = "#11111b"
	p.ZoomLabel = "#cdd6f4"
	return p
}
