package dateutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/zenone/internal/constants"
)

// DateKey renders the local civil date of the given instant as YYYY-MM-DD.
// The instant is first converted to the local timezone; formatting the UTC
// calendar date instead shifts the key across midnight for anyone west of
// UTC, which corrupts streaks and daily toggles.
func DateKey(t time.Time) string {
	local := t.In(time.Local)
	return fmt.Sprintf("%04d-%02d-%02d", local.Year(), int(local.Month()), local.Day())
}

// Today returns the current local date key.
func Today() string {
	return DateKey(time.Now())
}

// ParseDay parses a YYYY-MM-DD key into midnight local time.
func ParseDay(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// IsValidKey reports whether key is a well-formed YYYY-MM-DD date.
func IsValidKey(key string) bool {
	_, err := time.Parse(constants.DateFormat, key)
	return err == nil
}

// AddDays returns the date key n calendar days after key. n may be negative.
func AddDays(key string, n int) (string, error) {
	day, err := ParseDay(key)
	if err != nil {
		return "", err
	}
	return DateKey(day.AddDate(0, 0, n)), nil
}

// PrevDay returns the date key one calendar day before key.
func PrevDay(key string) (string, error) {
	return AddDays(key, -1)
}

// NextDay returns the date key one calendar day after key.
func NextDay(key string) (string, error) {
	return AddDays(key, 1)
}

// DaysBetween returns the number of calendar days from a to b (positive when
// b is later). Both arguments are date keys.
func DaysBetween(a, b string) (int, error) {
	dayA, err := ParseDay(a)
	if err != nil {
		return 0, err
	}
	dayB, err := ParseDay(b)
	if err != nil {
		return 0, err
	}
	// Midnight-to-midnight in the same zone; round to absorb DST offsets.
	hours := dayB.Sub(dayA).Hours()
	return int(hours/24 + 0.5*sign(hours)), nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
