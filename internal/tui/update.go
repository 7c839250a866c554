package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/logger"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case quoteMsg:
		m.quote = msg.quote
		m.quoteLoading = false
		return m, nil

	case spinner.TickMsg:
		if !m.quoteLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateLoginForm:
		return m.updateLoginForm(msg)
	case constants.StateConfirmDeleteUser:
		return m.updateConfirmDeleteUser(msg)
	case constants.StateHome:
		return m.updateHome(msg)
	case constants.StateStats:
		return m.updateStats(msg)
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.userCursor > 0 {
			m.userCursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.userCursor < len(m.users)-1 {
			m.userCursor++
		}
	case key.Matches(keyMsg, m.keys.New):
		m.formError = ""
		m.loginForm = m.newLoginForm()
		m.state = constants.StateLoginForm
		return m, m.loginForm.Init()
	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.users) > 0 {
			m.userToDelete = m.users[m.userCursor]
			m.state = constants.StateConfirmDeleteUser
		}
	case key.Matches(keyMsg, m.keys.Enter):
		if len(m.users) > 0 {
			name := m.users[m.userCursor]
			if err := m.store.SetActiveUser(name); err != nil {
				logger.Warn("Failed to remember active user", "error", err)
			}
			m.enterSession(name)
			return m, tea.Batch(m.fetchQuoteCmd(false), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m Model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = constants.StateLogin
		return m, nil
	}

	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	switch m.loginForm.State {
	case huh.StateCompleted:
		name := strings.TrimSpace(m.loginName)
		if name == "" {
			m.formError = errEmptyName.Error()
			m.state = constants.StateLogin
			return m, nil
		}
		if err := m.store.AddUser(name); err != nil {
			m.formError = err.Error()
			m.state = constants.StateLogin
			return m, nil
		}
		m.users = appendMissing(m.users, name)
		if err := m.store.SetActiveUser(name); err != nil {
			logger.Warn("Failed to remember active user", "error", err)
		}
		m.formError = ""
		m.enterSession(name)
		return m, tea.Batch(m.fetchQuoteCmd(false), m.spinner.Tick)
	case huh.StateAborted:
		m.formError = ""
		m.state = constants.StateLogin
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDeleteUser(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.userToDelete != "" {
			if err := m.store.DeleteUser(m.userToDelete); err != nil {
				m.formError = err.Error()
			} else {
				m.users = removeUser(m.users, m.userToDelete)
				if m.userCursor >= len(m.users) && m.userCursor > 0 {
					m.userCursor--
				}
			}
			m.userToDelete = ""
		}
		m.state = constants.StateLogin
	case "n", "N", "esc":
		m.userToDelete = ""
		m.state = constants.StateLogin
	}
	return m, nil
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Tab):
		m.anchor = dateutil.Today()
		m.dayCursor = m.anchor
		m.state = constants.StateStats
	case key.Matches(keyMsg, m.keys.Logout):
		return m.logout()
	case key.Matches(keyMsg, m.keys.Morning):
		m.toggle(models.SessionMorning, dateutil.Today())
	case key.Matches(keyMsg, m.keys.Evening):
		m.toggle(models.SessionEvening, dateutil.Today())
	case key.Matches(keyMsg, m.keys.Refresh):
		if !m.quoteLoading {
			m.quoteLoading = true
			return m, tea.Batch(m.fetchQuoteCmd(true), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = constants.StateHome
	case key.Matches(keyMsg, m.keys.Week):
		m.mode = stats.ViewWeek
	case key.Matches(keyMsg, m.keys.Month):
		m.mode = stats.ViewMonth
	case key.Matches(keyMsg, m.keys.Year):
		m.mode = stats.ViewYear
	case key.Matches(keyMsg, m.keys.PrevSpan):
		m.shiftAnchor(-1)
	case key.Matches(keyMsg, m.keys.NextSpan):
		m.shiftAnchor(1)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveDayCursor(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.moveDayCursor(1)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveDayCursor(-7)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveDayCursor(7)
	case key.Matches(keyMsg, m.keys.Morning):
		m.toggle(models.SessionMorning, m.dayCursor)
	case key.Matches(keyMsg, m.keys.Evening):
		m.toggle(models.SessionEvening, m.dayCursor)
	}
	return m, nil
}

// toggle flips one session flag, persists, and recomputes derived values.
func (m *Model) toggle(session models.SessionType, dateKey string) {
	updated, err := ledger.Toggle(m.records, session, dateKey)
	if err != nil {
		logger.Warn("Toggle failed", "error", err)
		return
	}
	if err := m.store.SaveRecords(m.activeUser, updated); err != nil {
		logger.Error("Failed to save records", "user", m.activeUser, "error", err)
		return
	}
	m.records = updated
	m.summary = stats.Summarize(updated, dateutil.Today())
}

// logout clears the remembered user and returns to the login screen.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.store.SetActiveUser(""); err != nil {
		logger.Warn("Failed to clear active user", "error", err)
	}
	m.activeUser = ""
	m.records = nil
	m.summary = stats.Summary{}
	m.state = constants.StateLogin
	if users, err := m.store.GetUsers(); err == nil {
		m.users = users
	}
	m.userCursor = 0
	return m, nil
}

// shiftAnchor moves the stats window by one period in the given direction.
func (m *Model) shiftAnchor(dir int) {
	var days int
	switch m.mode {
	case stats.ViewWeek:
		days = 7 * dir
	case stats.ViewMonth:
		day, err := dateutil.ParseDay(m.anchor)
		if err != nil {
			return
		}
		m.anchor = dateutil.DateKey(day.AddDate(0, dir, 0))
		m.dayCursor = m.anchor
		return
	case stats.ViewYear:
		day, err := dateutil.ParseDay(m.anchor)
		if err != nil {
			return
		}
		m.anchor = dateutil.DateKey(day.AddDate(dir, 0, 0))
		return
	}
	if next, err := dateutil.AddDays(m.anchor, days); err == nil {
		m.anchor = next
		m.dayCursor = next
	}
}

// moveDayCursor moves the selected day in the month grid.
func (m *Model) moveDayCursor(days int) {
	if m.mode != stats.ViewMonth {
		return
	}
	if next, err := dateutil.AddDays(m.dayCursor, days); err == nil {
		m.dayCursor = next
	}
}

func appendMissing(users []string, name string) []string {
	for _, u := range users {
		if u == name {
			return users
		}
	}
	return append(users, name)
}

func removeUser(users []string, name string) []string {
	kept := users[:0]
	for _, u := range users {
		if u != name {
			kept = append(kept, u)
		}
	}
	return kept
}
