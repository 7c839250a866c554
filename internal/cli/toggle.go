package cli

import (
	"fmt"

	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/models"
)

type ToggleCmd struct {
	Session string `arg:"" enum:"morning,evening" help:"Session to toggle (morning or evening)."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = dateutil.Today()
	} else if !dateutil.IsValidKey(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	// Snapshot the pre-mutation state before the first write of the run.
	ctx.PerformAutomaticBackup()

	session := models.SessionType(c.Session)
	updated, summary, err := ctx.ToggleAndSave(user, session, day)
	if err != nil {
		return err
	}

	record := ledger.RecordOrDefault(updated, day)
	state := "off"
	if (session == models.SessionMorning && record.Morning) ||
		(session == models.SessionEvening && record.Evening) {
		state = "on"
	}

	fmt.Printf("Toggled %s %s for %s (streak: %d days)\n", c.Session, state, day, summary.CurrentStreak)
	return nil
}
