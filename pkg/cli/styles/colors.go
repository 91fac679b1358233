package styles

import "github.com/charmbracelet/lipgloss"

var PrimaryTextColor = lipgloss.AdaptiveColor{Light: "#0069a8", Dark: "#74d4ff"}
var PrimaryBackgroundColor = lipgloss.AdaptiveColor{Light: "#00a6f4", Dark: "#74d4ff"}
var PrimaryForegroundColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}
var MutedTextColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

var TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryTextColor)

var KeyStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#9ecbff"})

var ValueStyle = lipgloss.NewStyle().Underline(true)

var LineSpacerStyle = lipgloss.NewStyle().Foreground(MutedTextColor)

var alertStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var AlertSuccessStyle = alertStyle.
	Background(lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#bbf7d0"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"})

var AlertDangerStyle = alertStyle.
	Background(lipgloss.AdaptiveColor{Light: "#c10007", Dark: "#ef4444"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"})

var AlertWarningStyle = alertStyle.
	Background(lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fef3c7"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"})
