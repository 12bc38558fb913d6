package console

import "github.com/charmbracelet/lipgloss"

// Styles for the interactive screen, keeping the color scheme of the
// original console program: cyan headings, green success, red errors,
// yellow warnings, magenta admin menus.
var (
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	adminHeadStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	adminMenuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	roleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	roleMenuStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	tableHeadStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	bookingHeadStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)
