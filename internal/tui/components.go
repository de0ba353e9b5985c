package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// -----------------------------------------------------------------------------
// SplitPane renders two panes side by side
// -----------------------------------------------------------------------------

type SplitPane struct {
	Left      string
	Right     string
	LeftRatio float64 // share of the width for the left pane, in (0, 1)
	Divider   string
}

const splitDivider = " │ "

func NewSplitPane(left, right string, leftRatio float64) SplitPane {
	if leftRatio <= 0 || leftRatio >= 1 {
		leftRatio = 0.5
	}
	return SplitPane{
		Left:      left,
		Right:     right,
		LeftRatio: leftRatio,
		Divider:   splitDivider,
	}
}

// splitWidths returns the column widths of the two panes for totalWidth.
func splitWidths(totalWidth int, leftRatio float64) (int, int) {
	if totalWidth <= 0 {
		totalWidth = 80
	}
	available := totalWidth - lipgloss.Width(splitDivider)
	if available < 20 {
		available = 20
	}

	left := int(float64(available) * leftRatio)
	right := available - left
	if left < 10 {
		left = 10
	}
	if right < 10 {
		right = 10
	}
	return left, right
}

func (s SplitPane) Render(totalWidth int) string {
	leftWidth, rightWidth := splitWidths(totalWidth, s.LeftRatio)

	leftStyle := lipgloss.NewStyle().Width(leftWidth)
	rightStyle := lipgloss.NewStyle().Width(rightWidth)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(s.Left),
		splitDividerStyle.Render(s.Divider),
		rightStyle.Render(s.Right),
	)
}
