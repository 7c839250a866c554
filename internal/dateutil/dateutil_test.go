package dateutil

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "local midnight stays on its calendar day",
			time: time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
			want: "2024-03-15",
		},
		{
			name: "just before local midnight stays on its calendar day",
			time: time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local),
			want: "2024-03-15",
		},
		{
			name: "single digit month and day are zero padded",
			time: time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local),
			want: "2024-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(tt.time); got != tt.want {
				t.Errorf("DateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateKeyConvertsToLocal(t *testing.T) {
	// The same instant expressed in UTC must produce the local calendar day.
	local := time.Date(2024, 6, 1, 0, 30, 0, 0, time.Local)
	if got := DateKey(local.UTC()); got != DateKey(local) {
		t.Errorf("DateKey(utc) = %q, want %q", got, DateKey(local))
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if day.Year() != 2024 || day.Month() != time.February || day.Day() != 29 {
		t.Errorf("ParseDay() = %v, want 2024-02-29", day)
	}
	if day.Location() != time.Local {
		t.Errorf("ParseDay() location = %v, want Local", day.Location())
	}

	if _, err := ParseDay("not-a-date"); err == nil {
		t.Error("ParseDay() expected error for malformed input")
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		key  string
		n    int
		want string
	}{
		{"forward one day", "2024-01-01", 1, "2024-01-02"},
		{"backward one day", "2024-01-01", -1, "2023-12-31"},
		{"across leap day", "2024-02-28", 1, "2024-02-29"},
		{"across month end", "2024-04-30", 1, "2024-05-01"},
		{"zero days", "2024-06-15", 0, "2024-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.key, tt.n)
			if err != nil {
				t.Fatalf("AddDays() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.key, tt.n, got, tt.want)
			}
		})
	}
}

func TestPrevDay(t *testing.T) {
	got, err := PrevDay("2024-03-01")
	if err != nil {
		t.Fatalf("PrevDay() error = %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("PrevDay() = %q, want 2024-02-29", got)
	}
}

func TestNextDay(t *testing.T) {
	got, err := NextDay("2024-02-29")
	if err != nil {
		t.Fatalf("NextDay() error = %v", err)
	}
	if got != "2024-03-01" {
		t.Errorf("NextDay() = %q, want 2024-03-01", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2024-01-01", "2024-01-01", 0},
		{"adjacent days", "2024-01-01", "2024-01-02", 1},
		{"reverse order is negative", "2024-01-02", "2024-01-01", -1},
		{"across a month", "2024-01-15", "2024-02-15", 31},
		{"across DST transition", "2024-03-01", "2024-04-01", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.a, tt.b)
			if err != nil {
				t.Fatalf("DaysBetween() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestIsValidKey(t *testing.T) {
	if !IsValidKey("2024-01-01") {
		t.Error("IsValidKey() = false for valid key")
	}
	for _, bad := range []string{"", "2024-1-1", "01-01-2024", "2024-13-01", "garbage"} {
		if IsValidKey(bad) {
			t.Errorf("IsValidKey(%q) = true, want false", bad)
		}
	}
}
