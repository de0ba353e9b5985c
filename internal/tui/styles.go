package tui

import "github.com/charmbracelet/lipgloss"

var (
	colCyan    = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#8BE9FD"}
	colGreen   = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#50FA7B"}
	colRed     = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5555"}
	colYellow  = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#F1FA8C"}
	colPurple  = lipgloss.AdaptiveColor{Light: "#5F00AF", Dark: "#BD93F9"}
	colDimGray = lipgloss.AdaptiveColor{Light: "#A8A8A8", Dark: "#585858"}
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	tabActive    = lipgloss.NewStyle().Bold(true).Underline(true)
	tabInactive  = lipgloss.NewStyle().Faint(true)
	sectionTitle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	helpStyle    = lipgloss.NewStyle().Faint(true)

	fieldLabelStyle   = lipgloss.NewStyle().Bold(true)
	fieldLabelFocused = lipgloss.NewStyle().Bold(true).Foreground(colCyan)
	fieldHelperStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	fieldCursorLine   = lipgloss.NewStyle()

	copyButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colPurple)
	copiedButtonStyle = copyButtonStyle.
				BorderForeground(colGreen).
				Foreground(colGreen).
				Bold(true)

	statusInfoStyle    = lipgloss.NewStyle().Foreground(colCyan)
	statusWarnStyle    = lipgloss.NewStyle().Foreground(colYellow).Bold(true)
	statusErrorStyle   = lipgloss.NewStyle().Foreground(colRed).Bold(true)
	statusSuccessStyle = lipgloss.NewStyle().Foreground(colGreen).Bold(true)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colPurple).
			Padding(0, 1)
	helpBoxTitle   = lipgloss.NewStyle().Bold(true).Foreground(colPurple)
	helpKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colCyan)
	helpLabelStyle = lipgloss.NewStyle()

	splitDividerStyle = lipgloss.NewStyle().Foreground(colDimGray)
)
