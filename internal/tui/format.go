package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/taskgraph/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// FormatAge formats how long ago t was (e.g., "2h 15m ago", "45s ago").
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dh %dm ago", hours, mins)
}

// FormatCyclePath renders a cycle as "#1 → #4 → #2 → #1".
func FormatCyclePath(path []int64) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = "#" + strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, " → ")
}

// FormatTaskCount formats task counts for the header.
func FormatTaskCount(completed, total int) string {
	if total == 0 {
		return "No tasks"
	}
	return fmt.Sprintf("%d/%d done", completed, total)
}

// truncate cuts s to width display cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func taskLabel(t models.Task) string {
	return fmt.Sprintf("#%d %s", t.ID, t.Title)
}
