package models

import "time"

// QuoteData is a cached motivational quotation. It is replaced wholesale
// when stale or absent, never partially updated.
type QuoteData struct {
	Text      string    `json:"text"`
	Source    string    `json:"source,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Age returns how long ago the quote was fetched.
func (q QuoteData) Age(now time.Time) time.Duration {
	return now.Sub(q.FetchedAt)
}

// Stale reports whether the quote is at least maxAge old at the given time.
// A zero FetchedAt is always stale.
func (q QuoteData) Stale(now time.Time, maxAge time.Duration) bool {
	if q.FetchedAt.IsZero() {
		return true
	}
	return q.Age(now) >= maxAge
}
