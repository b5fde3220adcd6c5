package output

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	readyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	failedStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	pendingStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	plainStyle = lipgloss.NewStyle()
)

// phaseStyle maps a cluster or nodepool phase to its display style.
func phaseStyle(phase string) lipgloss.Style {
	switch phase {
	case "Ready":
		return readyStyle
	case "Progressing":
		return warningStyle
	case "Pending":
		return pendingStyle
	case "Failed":
		return failedStyle
	default:
		return plainStyle
	}
}

// conditionStyle maps a condition status (True/False/Unknown) to its
// display style.
func conditionStyle(status string) lipgloss.Style {
	switch status {
	case "True":
		return readyStyle
	case "False":
		return failedStyle
	case "Unknown":
		return warningStyle
	default:
		return plainStyle
	}
}
