// Package stats derives calendar views, session totals, and balance figures
// from a record set. Everything here is a pure function of the records and a
// reference date, so callers recompute freely after each mutation.
package stats

import (
	"time"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/ledger"
	"github.com/julianstephens/zenone/internal/models"
	"github.com/julianstephens/zenone/internal/streak"
)

// ViewMode selects the statistics window.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
	ViewYear  ViewMode = "year"
)

// Slot is one calendar day in a window.
type Slot struct {
	Date   string
	Status models.DayStatus
}

// MonthCell is one cell of the month grid. Leading cells before the first of
// the month have Day == 0 and an empty Date.
type MonthCell struct {
	Day    int
	Date   string
	Status models.DayStatus
}

// MonthGrid is a month's calendar grid plus its dimensions.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []MonthCell
}

// YearMonth is one month's worth of day slots in a year view.
type YearMonth struct {
	Month time.Month
	Days  []Slot
}

// Week returns the seven days ending at the anchor date, oldest first.
func Week(records []models.DailyRecord, anchor string) ([]Slot, error) {
	byDate := ledger.ByDate(records)

	day, err := dateutil.AddDays(anchor, -6)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, 7)
	for i := 0; i < 7; i++ {
		slots = append(slots, Slot{Date: day, Status: byDate[day].Status()})
		if day, err = dateutil.NextDay(day); err != nil {
			return nil, err
		}
	}
	return slots, nil
}

// Month returns the calendar grid for the anchor date's month. The number of
// leading blank cells is the offset of the month's first weekday from
// firstDay, so the grid lines up under a weekday header row starting at
// firstDay.
func Month(records []models.DailyRecord, anchor string, firstDay time.Weekday) (MonthGrid, error) {
	day, err := dateutil.ParseDay(anchor)
	if err != nil {
		return MonthGrid{}, err
	}

	byDate := ledger.ByDate(records)
	year, month := day.Year(), day.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	leading := (int(first.Weekday()) - int(firstDay) + 7) % 7
	days := dateutil.DaysInMonth(year, month)

	cells := make([]MonthCell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, MonthCell{})
	}
	for d := 1; d <= days; d++ {
		key := dateutil.DateKey(time.Date(year, month, d, 0, 0, 0, 0, time.Local))
		cells = append(cells, MonthCell{Day: d, Date: key, Status: byDate[key].Status()})
	}

	return MonthGrid{Year: year, Month: month, Cells: cells}, nil
}

// Year returns twelve months of day slots for the given year.
func Year(records []models.DailyRecord, year int) []YearMonth {
	byDate := ledger.ByDate(records)

	months := make([]YearMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		days := dateutil.DaysInMonth(year, m)
		slots := make([]Slot, 0, days)
		for d := 1; d <= days; d++ {
			key := dateutil.DateKey(time.Date(year, m, d, 0, 0, 0, 0, time.Local))
			slots = append(slots, Slot{Date: key, Status: byDate[key].Status()})
		}
		months = append(months, YearMonth{Month: m, Days: slots})
	}
	return months
}

// Totals are whole-history session counts.
type Totals struct {
	Sessions    int
	Morning     int
	Evening     int
	PerfectDays int
}

// Count tallies sessions across the full record set. A perfect day
// contributes two sessions.
func Count(records []models.DailyRecord) Totals {
	var t Totals
	for _, r := range records {
		if r.Morning {
			t.Morning++
		}
		if r.Evening {
			t.Evening++
		}
		if r.Perfect() {
			t.PerfectDays++
		}
	}
	t.Sessions = t.Morning + t.Evening
	return t
}

// Balance is the morning/evening split as percentages summing to 100.
type Balance struct {
	MorningPercent int
	EveningPercent int
}

// SplitBalance computes the session balance. With no sessions at all the
// split is 50/50 by convention, marking the neutral no-data state rather
// than a computed equality.
func SplitBalance(totalMorning, totalEvening int) Balance {
	total := totalMorning + totalEvening
	if total == 0 {
		return Balance{MorningPercent: 50, EveningPercent: 50}
	}
	morning := int(float64(totalMorning)/float64(total)*100 + 0.5)
	return Balance{MorningPercent: morning, EveningPercent: 100 - morning}
}

// Summary bundles every derived figure the interface renders after a record
// mutation.
type Summary struct {
	CurrentStreak int
	LongestStreak int
	Totals        Totals
	Balance       Balance
}

// Summarize recomputes every derived figure from scratch. Callers invoke it
// after each record mutation; nothing here is cached.
func Summarize(records []models.DailyRecord, today string) Summary {
	current := streak.Current(records, today)
	totals := Count(records)
	return Summary{
		CurrentStreak: current,
		LongestStreak: streak.Longest(records, current),
		Totals:        totals,
		Balance:       SplitBalance(totals.Morning, totals.Evening),
	}
}

// GardenStage is the streak-derived growth stage shown on the home screen.
type GardenStage string

const (
	StageSeed      GardenStage = "Seed"
	StageSprout    GardenStage = "Sprout"
	StageSapling   GardenStage = "Sapling"
	StageSteadfast GardenStage = "Steadfast"
	StageBloom     GardenStage = "Bloom"
	StageHarmony   GardenStage = "Harmony"
)

// StageForStreak maps a current streak to its garden stage.
func StageForStreak(streak int) GardenStage {
	switch {
	case streak < 3:
		return StageSeed
	case streak < 7:
		return StageSprout
	case streak < 14:
		return StageSapling
	case streak < 30:
		return StageSteadfast
	case streak < 60:
		return StageBloom
	default:
		return StageHarmony
	}
}

// DefaultFirstDay is the configured start of the week for month grids.
func DefaultFirstDay() time.Weekday {
	return time.Weekday(constants.FirstDayOfWeek)
}
