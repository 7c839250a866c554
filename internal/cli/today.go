package cli

import (
	"fmt"

	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/stats"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	records, err := ctx.Store.GetRecords(user)
	if err != nil {
		return err
	}

	today := dateutil.Today()
	record := ledger.RecordOrDefault(records, today)
	summary := stats.Summarize(records, today)

	fmt.Printf("Practice for %s (%s):\n\n", today, user)
	fmt.Printf("%s Morning session\n", checkbox(record.Morning))
	fmt.Printf("%s Evening session\n", checkbox(record.Evening))
	fmt.Printf("\nCurrent streak: %d days (%s)\n", summary.CurrentStreak, stats.StageForStreak(summary.CurrentStreak))
	return nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
