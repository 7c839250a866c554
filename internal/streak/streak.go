// Package streak derives consecutive-day practice streaks from a record set.
package streak

import (
	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/models"
)

// Current returns the length of the in-progress streak ending at today.
//
// If today already has a completed session the count starts at today,
// otherwise at yesterday: a day not yet practiced does not break the streak
// until it has fully elapsed. From the starting day the walk goes backward
// one calendar day at a time while each day has at least one session.
func Current(records []models.DailyRecord, today string) int {
	if len(records) == 0 {
		return 0
	}

	byDate := ledger.ByDate(records)

	day := today
	if r, ok := byDate[today]; !ok || !r.Practiced() {
		prev, err := dateutil.PrevDay(today)
		if err != nil {
			return 0
		}
		day = prev
	}

	count := 0
	for {
		r, ok := byDate[day]
		if !ok || !r.Practiced() {
			break
		}
		count++
		prev, err := dateutil.PrevDay(day)
		if err != nil {
			break
		}
		day = prev
	}
	return count
}

// Longest returns the longest consecutive-day run of practiced days ever
// recorded, or current if the in-progress streak exceeds every closed one.
// Days with a record but no completed session are skipped: only a calendar
// gap greater than one day between practiced days resets the run.
func Longest(records []models.DailyRecord, current int) int {
	sorted := ledger.SortAscending(records)

	max := current
	run := 0
	prevDate := ""
	for _, r := range sorted {
		if !r.Practiced() {
			continue
		}
		if prevDate == "" {
			run = 1
		} else {
			gap, err := dateutil.DaysBetween(prevDate, r.Date)
			if err != nil || gap > 1 {
				run = 1
			} else if gap == 1 {
				run++
			}
			// gap == 0 would be a duplicate date; keep the run as is.
		}
		if run > max {
			max = run
		}
		prevDate = r.Date
	}
	return max
}
