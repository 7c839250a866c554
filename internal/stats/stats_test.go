package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/zenone/internal/models"
)

func record(date string, morning, evening bool) models.DailyRecord {
	return models.DailyRecord{Date: date, Morning: morning, Evening: evening}
}

func TestWeek(t *testing.T) {
	records := []models.DailyRecord{
		record("2024-01-05", true, true),
		record("2024-01-07", false, true),
	}

	week, err := Week(records, "2024-01-07")
	if err != nil {
		t.Fatalf("Week() error = %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("Week() returned %d slots, want 7", len(week))
	}
	if week[0].Date != "2024-01-01" {
		t.Errorf("Week() starts at %s, want 2024-01-01", week[0].Date)
	}
	if week[6].Date != "2024-01-07" {
		t.Errorf("Week() ends at %s, want 2024-01-07", week[6].Date)
	}
	if week[4].Status != models.StatusBoth {
		t.Errorf("Week()[4].Status = %v, want StatusBoth", week[4].Status)
	}
	if week[6].Status != models.StatusEveningOnly {
		t.Errorf("Week()[6].Status = %v, want StatusEveningOnly", week[6].Status)
	}
	if week[1].Status != models.StatusNone {
		t.Errorf("Week()[1].Status = %v, want StatusNone", week[1].Status)
	}
}

func TestMonthLeadingBlanks(t *testing.T) {
	// May 2024 starts on a Wednesday.
	tests := []struct {
		name     string
		firstDay time.Weekday
		want     int
	}{
		{"week starts Sunday", time.Sunday, 3},
		{"week starts Monday", time.Monday, 2},
		{"week starts Wednesday", time.Wednesday, 0},
		{"week starts Thursday", time.Thursday, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Month(nil, "2024-05-15", tt.firstDay)
			if err != nil {
				t.Fatalf("Month() error = %v", err)
			}

			blanks := 0
			for _, cell := range grid.Cells {
				if cell.Day != 0 {
					break
				}
				blanks++
			}
			if blanks != tt.want {
				t.Errorf("Month() has %d leading blanks, want %d", blanks, tt.want)
			}
			if len(grid.Cells) != tt.want+31 {
				t.Errorf("Month() has %d cells, want %d", len(grid.Cells), tt.want+31)
			}
		})
	}
}

func TestMonthStatuses(t *testing.T) {
	records := []models.DailyRecord{
		record("2024-05-01", true, false),
		record("2024-05-31", true, true),
	}

	grid, err := Month(records, "2024-05-01", time.Sunday)
	if err != nil {
		t.Fatalf("Month() error = %v", err)
	}
	if grid.Month != time.May || grid.Year != 2024 {
		t.Fatalf("Month() = %v %d, want May 2024", grid.Month, grid.Year)
	}

	byDay := make(map[int]MonthCell)
	for _, cell := range grid.Cells {
		if cell.Day != 0 {
			byDay[cell.Day] = cell
		}
	}
	if byDay[1].Status != models.StatusMorningOnly {
		t.Errorf("day 1 status = %v, want StatusMorningOnly", byDay[1].Status)
	}
	if byDay[31].Status != models.StatusBoth {
		t.Errorf("day 31 status = %v, want StatusBoth", byDay[31].Status)
	}
	if byDay[15].Status != models.StatusNone {
		t.Errorf("day 15 status = %v, want StatusNone", byDay[15].Status)
	}
}

func TestYear(t *testing.T) {
	records := []models.DailyRecord{
		record("2024-02-29", false, true),
	}

	months := Year(records, 2024)
	if len(months) != 12 {
		t.Fatalf("Year() returned %d months, want 12", len(months))
	}
	if len(months[1].Days) != 29 {
		t.Errorf("February 2024 has %d slots, want 29", len(months[1].Days))
	}
	if len(months[3].Days) != 30 {
		t.Errorf("April has %d slots, want 30", len(months[3].Days))
	}
	if months[1].Days[28].Status != models.StatusEveningOnly {
		t.Errorf("Feb 29 status = %v, want StatusEveningOnly", months[1].Days[28].Status)
	}
}

func TestCount(t *testing.T) {
	records := []models.DailyRecord{
		record("2024-01-01", true, true),
		record("2024-01-02", true, false),
	}

	totals := Count(records)
	if totals.Sessions != 3 {
		t.Errorf("Count().Sessions = %d, want 3", totals.Sessions)
	}
	if totals.Morning != 2 || totals.Evening != 1 {
		t.Errorf("Count() = %d morning, %d evening; want 2, 1", totals.Morning, totals.Evening)
	}
	if totals.PerfectDays != 1 {
		t.Errorf("Count().PerfectDays = %d, want 1", totals.PerfectDays)
	}
}

func TestSplitBalance(t *testing.T) {
	tests := []struct {
		name             string
		morning, evening int
		wantMorning      int
		wantEvening      int
	}{
		{"no sessions is the fixed 50/50 convention", 0, 0, 50, 50},
		{"equal counts", 5, 5, 50, 50},
		{"all morning", 4, 0, 100, 0},
		{"all evening", 0, 3, 0, 100},
		{"two to one", 2, 1, 67, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bal := SplitBalance(tt.morning, tt.evening)
			if bal.MorningPercent != tt.wantMorning || bal.EveningPercent != tt.wantEvening {
				t.Errorf("SplitBalance(%d, %d) = %d/%d, want %d/%d",
					tt.morning, tt.evening,
					bal.MorningPercent, bal.EveningPercent,
					tt.wantMorning, tt.wantEvening)
			}
			if bal.MorningPercent+bal.EveningPercent != 100 {
				t.Errorf("SplitBalance() percentages sum to %d, want 100",
					bal.MorningPercent+bal.EveningPercent)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	records := []models.DailyRecord{
		record("2024-01-04", true, false),
		record("2024-01-05", true, true),
	}

	summary := Summarize(records, "2024-01-05")
	if summary.CurrentStreak != 2 {
		t.Errorf("Summarize().CurrentStreak = %d, want 2", summary.CurrentStreak)
	}
	if summary.LongestStreak != 2 {
		t.Errorf("Summarize().LongestStreak = %d, want 2", summary.LongestStreak)
	}
	if summary.Totals.Sessions != 3 {
		t.Errorf("Summarize().Totals.Sessions = %d, want 3", summary.Totals.Sessions)
	}
	if summary.Balance.MorningPercent != 67 {
		t.Errorf("Summarize().Balance.MorningPercent = %d, want 67", summary.Balance.MorningPercent)
	}
}

func TestStageForStreak(t *testing.T) {
	tests := []struct {
		streak int
		want   GardenStage
	}{
		{0, StageSeed},
		{2, StageSeed},
		{3, StageSprout},
		{6, StageSprout},
		{7, StageSapling},
		{13, StageSapling},
		{14, StageSteadfast},
		{29, StageSteadfast},
		{30, StageBloom},
		{59, StageBloom},
		{60, StageHarmony},
		{365, StageHarmony},
	}

	for _, tt := range tests {
		if got := StageForStreak(tt.streak); got != tt.want {
			t.Errorf("StageForStreak(%d) = %v, want %v", tt.streak, got, tt.want)
		}
	}
}
