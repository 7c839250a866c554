// Package ledger holds the pure record-set operations: lookup, toggle, and
// ordering. Persistence lives in storage; derived values in streak and stats.
package ledger

import (
	"fmt"
	"sort"

	"github.com/julianstephens/zenone/internal/dateutil"
	"github.com/julianstephens/zenone/internal/models"
)

// Find returns the record for the given date key, if present.
func Find(records []models.DailyRecord, dateKey string) (models.DailyRecord, bool) {
	for _, r := range records {
		if r.Date == dateKey {
			return r, true
		}
	}
	return models.DailyRecord{}, false
}

// RecordOrDefault returns the record for the date key, or an all-false record
// for that day when none exists.
func RecordOrDefault(records []models.DailyRecord, dateKey string) models.DailyRecord {
	if r, ok := Find(records, dateKey); ok {
		return r
	}
	return models.DailyRecord{Date: dateKey}
}

// Toggle flips one session flag for the given date and returns the updated
// record set. When no record exists for the date, one is created with the
// toggled flag true and the other false. The input slice is not modified;
// toggling the same session twice restores the original state.
func Toggle(records []models.DailyRecord, session models.SessionType, dateKey string) ([]models.DailyRecord, error) {
	if !session.Valid() {
		return nil, fmt.Errorf("unknown session type %q", session)
	}
	if !dateutil.IsValidKey(dateKey) {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateKey)
	}

	updated := make([]models.DailyRecord, len(records))
	copy(updated, records)

	for i := range updated {
		if updated[i].Date != dateKey {
			continue
		}
		switch session {
		case models.SessionMorning:
			updated[i].Morning = !updated[i].Morning
		case models.SessionEvening:
			updated[i].Evening = !updated[i].Evening
		}
		return updated, nil
	}

	updated = append(updated, models.DailyRecord{
		Date:    dateKey,
		Morning: session == models.SessionMorning,
		Evening: session == models.SessionEvening,
	})
	return updated, nil
}

// SortAscending returns a copy of the record set ordered by date key. The
// canonical key form makes lexicographic order equal to calendar order.
func SortAscending(records []models.DailyRecord) []models.DailyRecord {
	sorted := make([]models.DailyRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// ByDate indexes the record set by date key. Later duplicates win, though a
// well-formed set has at most one record per date.
func ByDate(records []models.DailyRecord) map[string]models.DailyRecord {
	m := make(map[string]models.DailyRecord, len(records))
	for _, r := range records {
		m[r.Date] = r
	}
	return m
}
