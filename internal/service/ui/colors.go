package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) reads well on light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) keeps descriptions and thoughts dim
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Chat window
var (
	UserLabelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	AssistantLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	SystemStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	ThoughtsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(2)
	ToastStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Padding(0, 1)
	HeaderStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Padding(0, 1)
	InputBorderStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)
