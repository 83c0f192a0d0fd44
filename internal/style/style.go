// Package style centralizes the lipgloss palette shared by the
// terminal renderer and the step viewer TUI.
package style

import "github.com/charmbracelet/lipgloss"

// Ayu theme colors.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	ColorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail   = lipgloss.AdaptiveColor{Light: "#e65050", Dark: "#f07178"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"}
	ColorMath   = lipgloss.AdaptiveColor{Light: "#a37acc", Dark: "#d2a6ff"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	ProseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	MathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMath)

	GroupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarn)

	MethodPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorPass)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFail)

	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
