package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/zenone/internal/backup"
	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/logger"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/quote"
	"github.com/julianstephens/zenone/internal/stats"
	"github.com/julianstephens/zenone/internal/storage"
)

// Context is the application context passed to every command. It carries the
// store and the quote cache explicitly; there is no ambient global state.
type Context struct {
	Store  storage.Provider
	Quotes *quote.Cache
}

// ActiveUser returns the remembered display name, or an error directing the
// user to log in. The store must already be loaded.
func (c *Context) ActiveUser() (string, error) {
	name, err := c.Store.GetActiveUser()
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("no active user, run 'zenone login <name>' first")
	}
	return name, nil
}

// ValidateUserName normalizes and validates a display name.
func ValidateUserName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("display name cannot be empty")
	}
	return name, nil
}

// ToggleAndSave applies a single session toggle for the active user and
// persists the updated record set. It returns the updated records together
// with the freshly recomputed summary, so callers always render derived
// values that match what was just written.
func (c *Context) ToggleAndSave(user string, session models.SessionType, dateKey string) ([]models.DailyRecord, stats.Summary, error) {
	records, err := c.Store.GetRecords(user)
	if err != nil {
		return nil, stats.Summary{}, err
	}

	updated, err := ledger.Toggle(records, session, dateKey)
	if err != nil {
		return nil, stats.Summary{}, err
	}

	if err := c.Store.SaveRecords(user, updated); err != nil {
		return nil, stats.Summary{}, err
	}

	summary := stats.Summarize(updated, dateutil.Today())
	logger.Debug("Toggled session",
		"user", user, "session", session, "date", dateKey,
		"streak", summary.CurrentStreak)
	return updated, summary, nil
}

// PerformAutomaticBackup creates a backup of the storage file and logs
// rather than surfaces any failure.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
