package tui

import (
	"sort"

	"github.com/akyairhashvil/taskgraph/internal/graph"
	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Task      lipgloss.Style
	Selected  lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Input     lipgloss.Style
	Modal     lipgloss.Style
	Palette   graph.Palette
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2),
		Palette:   graph.DefaultPalette(),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(0, 1),
		Border:    lipgloss.Color("62"),                                            // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),            // Green
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2),
		Palette:   graph.DarkPalette(),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches to the named theme and reports whether it exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// ThemeKeys returns the theme keys in a stable order.
func ThemeKeys() []string {
	keys := make([]string, 0, len(Themes))
	for k := range Themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StatusStyle colours a status word with the node colour the graph uses.
func StatusStyle(s models.TaskStatus) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(CurrentTheme.Palette.StatusColor(s))).Bold(true)
}
