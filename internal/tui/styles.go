package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	OnAir     = lipgloss.Color("#EF4444") // Red
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Text      = lipgloss.Color("#F9FAFB") // White
	TextMuted = lipgloss.Color("#9CA3AF") // Gray
	TextDim   = lipgloss.Color("#6B7280") // Darker gray
	Border    = lipgloss.Color("#4B5563") // Light gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
)

var (
	recordOn = lipgloss.NewStyle().
			Bold(true).
			Foreground(OnAir)

	recordOff = lipgloss.NewStyle().
			Foreground(TextDim)

	buttonActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Background(Primary).
			Padding(0, 2)

	buttonInactive = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 2)

	songStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	artistStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(Warning)

	helpStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(1, 2).
			Width(48)
)
