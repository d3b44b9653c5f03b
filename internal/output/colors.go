package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// verbColors maps todo-list verbs to their display color
var verbColors = map[string]lipgloss.Color{
	"label": lipgloss.Color("#4dca7d"), // Green
	"reset": lipgloss.Color("#f89048"), // Orange
	"pick":  lipgloss.Color("#4ccbf1"), // Light blue
	"exec":  lipgloss.Color("#9f83e4"), // Purple
}

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	branchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c800"))
)

func verbStyle(verb string) lipgloss.Style {
	color, ok := verbColors[verb]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}

// ColorBranchName renders a branch name the way the dry-run script does
func ColorBranchName(name string) string {
	return branchStyle.Render(name)
}

// ColorBranchNames renders a list of branch names separated by commas
func ColorBranchNames(names []string) string {
	rendered := make([]string, len(names))
	for i, name := range names {
		rendered[i] = ColorBranchName(name)
	}
	return strings.Join(rendered, ", ")
}
