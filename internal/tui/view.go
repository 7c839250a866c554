package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateLogin:
		return docStyle.Render(m.viewLogin())
	case constants.StateLoginForm:
		return docStyle.Render(m.loginForm.View())
	case constants.StateConfirmDeleteUser:
		return docStyle.Render(m.viewConfirmDeleteUser())
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewContent(),
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewContent() string {
	if m.state == constants.StateStats {
		return m.viewStats()
	}
	return m.viewHome()
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Home", "Insights"} {
		active := (m.state == constants.StateHome && i == 0) ||
			(m.state == constants.StateStats && i == 1)
		if active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("zenone") + "\n\n")
	b.WriteString("Who is practicing?\n\n")

	if len(m.users) == 0 {
		b.WriteString(dimStyle.Render("No users yet. Press 'n' to create one.") + "\n")
	}
	for i, u := range m.users {
		cursor := "  "
		line := u
		if i == m.userCursor {
			cursor = "> "
			line = selectedStyle.Render(u)
		}
		b.WriteString(cursor + line + "\n")
	}

	if m.formError != "" {
		b.WriteString("\n" + errorStyle.Render(m.formError) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter login · n new · d delete · q quit"))
	return b.String()
}

func (m Model) viewConfirmDeleteUser() string {
	return fmt.Sprintf(
		"Delete user %q and all their practice records?\n\nThis cannot be undone.\n\n%s",
		m.userToDelete,
		dimStyle.Render("y confirm · n cancel"),
	)
}

func (m Model) viewHome() string {
	today := dateutil.Today()
	record := ledger.RecordOrDefault(m.records, today)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n%s · %s\n\n", m.activeUser, today))

	b.WriteString(m.viewQuote() + "\n\n")

	b.WriteString(sessionLine("Morning", record.Morning, "m") + "\n")
	b.WriteString(sessionLine("Evening", record.Evening, "e") + "\n\n")

	b.WriteString(streakStyle.Render(fmt.Sprintf("%d day streak", m.summary.CurrentStreak)))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" · %s", stats.StageForStreak(m.summary.CurrentStreak))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewQuote() string {
	if m.quoteLoading {
		return m.spinner.View() + dimStyle.Render(" fetching quote...")
	}
	if m.quote.Text == "" {
		return ""
	}
	out := quoteStyle.Render(m.quote.Text)
	if m.quote.Source != "" {
		out += "\n" + sourceStyle.Render("— "+m.quote.Source)
	}
	return out
}

func sessionLine(name string, done bool, hint string) string {
	mark := "[ ]"
	style := dimStyle
	if done {
		mark = "[x]"
		style = doneStyle
	}
	return style.Render(fmt.Sprintf("%s %s", mark, name)) + dimStyle.Render(fmt.Sprintf("  (%s)", hint))
}

func (m Model) viewStats() string {
	var b strings.Builder

	switch m.mode {
	case stats.ViewWeek:
		b.WriteString(m.viewWeek())
	case stats.ViewMonth:
		b.WriteString(m.viewMonth())
	case stats.ViewYear:
		b.WriteString(m.viewYear())
	}

	t := m.summary.Totals
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Sessions %d · Perfect days %d · Streak %d (longest %d)\n",
		t.Sessions, t.PerfectDays, m.summary.CurrentStreak, m.summary.LongestStreak))
	b.WriteString(m.viewBalance())
	b.WriteString("\n" + dimStyle.Render("w/o/y views · [ ] period · arrows move · m/e toggle day"))
	return b.String()
}

func (m Model) viewBalance() string {
	bal := m.summary.Balance
	const width = 20
	filled := bal.MorningPercent * width / 100
	bar := statusMorningStyle.Render(strings.Repeat("█", filled)) +
		statusEveningStyle.Render(strings.Repeat("█", width-filled))
	return fmt.Sprintf("Morning %d%% %s %d%% Evening\n", bal.MorningPercent, bar, bal.EveningPercent)
}

// statusGlyph renders a day in the calendar views.
func statusGlyph(s models.DayStatus) string {
	switch s {
	case models.StatusBoth:
		return statusBothStyle.Render("●")
	case models.StatusMorningOnly:
		return statusMorningStyle.Render("◐")
	case models.StatusEveningOnly:
		return statusEveningStyle.Render("◑")
	default:
		return statusNoneStyle.Render("·")
	}
}

func (m Model) viewWeek() string {
	week, err := stats.Week(m.records, m.anchor)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Week ending %s\n\n", m.anchor))
	for _, slot := range week {
		day, err := dateutil.ParseDay(slot.Date)
		if err != nil {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n", day.Format("Mon 01-02"), statusGlyph(slot.Status), dimStyle.Render(slot.Status.String())))
	}
	return b.String()
}

func (m Model) viewMonth() string {
	grid, err := stats.Month(m.records, m.anchor, stats.DefaultFirstDay())
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d\n\n", grid.Month, grid.Year))

	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(stats.DefaultFirstDay()) + i) % 7)
		b.WriteString(dimStyle.Render(fmt.Sprintf(" %s", wd.String()[:2])))
	}
	b.WriteString("\n")

	for i, cell := range grid.Cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		if cell.Day == 0 {
			b.WriteString("   ")
			continue
		}
		day := fmt.Sprintf("%2d", cell.Day)
		rendered := statusStyle(cell.Status).Render(day)
		if cell.Date == m.dayCursor {
			rendered = cursorStyle.Render(rendered)
		}
		b.WriteString(" " + rendered)
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewYear() string {
	day, err := dateutil.ParseDay(m.anchor)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	year := day.Year()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Year %d\n\n", year))
	for _, month := range stats.Year(m.records, year) {
		b.WriteString(fmt.Sprintf("  %-9s ", month.Month))
		for _, slot := range month.Days {
			b.WriteString(statusGlyph(slot.Status))
		}
		b.WriteString("\n")
	}
	return b.String()
}
