package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a position label.
type ProgressBar struct {
	Current int // 1-based
	Total   int
	Width   int
}

// NewProgressBar creates a progress bar for position current of total.
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// Percent returns the completed fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Current)/float64(p.Total), 0), 1)
}

// View renders the bar followed by "current / total".
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d / %d", p.Current, p.Total))

	barWidth := max(p.Width-lipgloss.Width(label), 4)

	filled := min(max(int(float64(barWidth)*p.Percent()), 0), barWidth)
	empty := barWidth - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		label
}
