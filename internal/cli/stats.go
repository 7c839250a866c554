package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/stats"
)

type StatsCmd struct {
	Mode string `help:"View mode: week, month, or year." enum:"week,month,year" default:"week"`
	Date string `help:"Anchor date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *StatsCmd) Run(ctx *Context) error {
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

	anchor := c.Date
	if anchor == "" {
		anchor = dateutil.Today()
	} else if !dateutil.IsValidKey(anchor) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", anchor)
	}

	switch stats.ViewMode(c.Mode) {
	case stats.ViewWeek:
		if err := printWeek(records, anchor); err != nil {
			return err
		}
	case stats.ViewMonth:
		if err := printMonth(records, anchor); err != nil {
			return err
		}
	case stats.ViewYear:
		day, err := dateutil.ParseDay(anchor)
		if err != nil {
			return err
		}
		printYear(records, day.Year())
	}

	summary := stats.Summarize(records, dateutil.Today())
	fmt.Println()
	fmt.Printf("Sessions: %d total, %d morning, %d evening, %d perfect days\n",
		summary.Totals.Sessions, summary.Totals.Morning, summary.Totals.Evening, summary.Totals.PerfectDays)
	fmt.Printf("Balance: %d%% morning / %d%% evening\n",
		summary.Balance.MorningPercent, summary.Balance.EveningPercent)
	fmt.Printf("Streak: %d current, %d longest\n", summary.CurrentStreak, summary.LongestStreak)
	return nil
}

// statusMark renders a day status as a single character: both sessions 'B',
// morning only 'M', evening only 'E', nothing '.'.
func statusMark(s models.DayStatus) string {
	switch s {
	case models.StatusBoth:
		return "B"
	case models.StatusMorningOnly:
		return "M"
	case models.StatusEveningOnly:
		return "E"
	default:
		return "."
	}
}

func printWeek(records []models.DailyRecord, anchor string) error {
	week, err := stats.Week(records, anchor)
	if err != nil {
		return err
	}

	fmt.Printf("Week ending %s:\n\n", anchor)
	for _, slot := range week {
		day, err := dateutil.ParseDay(slot.Date)
		if err != nil {
			return err
		}
		fmt.Printf("  %s %s  %s\n", day.Format("Mon"), slot.Date, statusMark(slot.Status))
	}
	return nil
}

func printMonth(records []models.DailyRecord, anchor string) error {
	grid, err := stats.Month(records, anchor, stats.DefaultFirstDay())
	if err != nil {
		return err
	}

	fmt.Printf("%s %d:\n\n", grid.Month, grid.Year)

	var header []string
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(stats.DefaultFirstDay()) + i) % 7)
		header = append(header, wd.String()[:2])
	}
	fmt.Println("  " + strings.Join(header, " "))

	for i, cell := range grid.Cells {
		if i%7 == 0 && i > 0 {
			fmt.Println()
		}
		if i%7 == 0 {
			fmt.Print("  ")
		}
		if cell.Day == 0 {
			fmt.Print("   ")
		} else {
			fmt.Printf(" %s ", statusMark(cell.Status))
		}
	}
	fmt.Println()
	return nil
}

func printYear(records []models.DailyRecord, year int) {
	fmt.Printf("Year %d:\n\n", year)
	for _, month := range stats.Year(records, year) {
		var row strings.Builder
		for _, slot := range month.Days {
			row.WriteString(statusMark(slot.Status))
		}
		fmt.Printf("  %-9s %s\n", month.Month, row.String())
	}
}
