package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/zenone/internal/models"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Padding(0, 1).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")).
			Italic(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	statusNoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusMorningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	statusEveningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	statusBothStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("71")).Bold(true)
)

// statusStyle returns the render style for a day status.
func statusStyle(s models.DayStatus) lipgloss.Style {
	switch s {
	case models.StatusBoth:
		return statusBothStyle
	case models.StatusMorningOnly:
		return statusMorningStyle
	case models.StatusEveningOnly:
		return statusEveningStyle
	default:
		return statusNoneStyle
	}
}
