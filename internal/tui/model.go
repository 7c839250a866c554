package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/quote"
	"github.com/julianstephens/zenone/internal/stats"
	"github.com/julianstephens/zenone/internal/storage"
)

var errEmptyName = errors.New("display name cannot be empty")

// quoteMsg delivers the result of an asynchronous quote fetch.
type quoteMsg struct {
	quote models.QuoteData
}

type Model struct {
	store  storage.Provider
	quotes *quote.Cache

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	// Login screen
	users        []string
	userCursor   int
	loginForm    *huh.Form
	loginName    string
	userToDelete string
	formError    string

	// Active session
	activeUser string
	records    []models.DailyRecord
	summary    stats.Summary

	// Quote
	quote        models.QuoteData
	quoteLoading bool
	spinner      spinner.Model

	// Stats view
	mode      stats.ViewMode
	anchor    string // anchor date for the current stats window
	dayCursor string // selected day in the month grid

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, quotes *quote.Cache) Model {
	users, err := store.GetUsers()
	if err != nil {
		users = []string{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	today := dateutil.Today()
	m := Model{
		store:   store,
		quotes:  quotes,
		state:   constants.StateLogin,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		users:   users,
		spinner: sp,
		mode:    stats.ViewWeek,
		anchor:  today,
	}

	// Resume the remembered session when one exists.
	if active, err := store.GetActiveUser(); err == nil && active != "" {
		m.enterSession(active)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == constants.StateHome {
		return tea.Batch(m.fetchQuoteCmd(false), m.spinner.Tick)
	}
	return nil
}

// enterSession loads the user's records and derived values and switches to
// the home screen.
func (m *Model) enterSession(user string) {
	m.activeUser = user
	m.reload()
	m.state = constants.StateHome
	m.quoteLoading = true
}

// reload re-reads the active user's records and recomputes every derived
// value. Called after each mutation.
func (m *Model) reload() {
	records, err := m.store.GetRecords(m.activeUser)
	if err != nil {
		records = []models.DailyRecord{}
	}
	m.records = records
	m.summary = stats.Summarize(records, dateutil.Today())
}

// fetchQuoteCmd loads the quote off the update loop so toggles stay
// responsive while the provider round-trip is in flight.
func (m Model) fetchQuoteCmd(force bool) tea.Cmd {
	quotes := m.quotes
	return func() tea.Msg {
		if force {
			return quoteMsg{quote: quotes.Refresh(context.Background())}
		}
		return quoteMsg{quote: quotes.Get(context.Background())}
	}
}

// newLoginForm builds the huh form that prompts for a display name.
func (m *Model) newLoginForm() *huh.Form {
	m.loginName = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Display name").
				Value(&m.loginName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyName
					}
					return nil
				}),
		),
	)
}
