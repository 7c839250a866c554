package models

// SessionType identifies one of the two daily practice sessions.
type SessionType string

const (
	SessionMorning SessionType = "morning"
	SessionEvening SessionType = "evening"
)

// Valid reports whether s is one of the two known session types.
func (s SessionType) Valid() bool {
	return s == SessionMorning || s == SessionEvening
}

// DailyRecord represents one calendar day's practice state for one user.
// Date is the local civil date in YYYY-MM-DD form and is unique within a
// user's record set. A record with both flags false is equivalent to no
// record at all, but may exist transiently after a toggle-off.
type DailyRecord struct {
	Date    string `json:"date"`
	Morning bool   `json:"morning"`
	Evening bool   `json:"evening"`
}

// Practiced reports whether at least one session was completed that day.
func (r DailyRecord) Practiced() bool {
	return r.Morning || r.Evening
}

// Perfect reports whether both sessions were completed that day.
func (r DailyRecord) Perfect() bool {
	return r.Morning && r.Evening
}

// Status returns the day's DayStatus.
func (r DailyRecord) Status() DayStatus {
	return StatusOf(r.Morning, r.Evening)
}

// DayStatus is the closed enumeration of a day's practice state.
type DayStatus int

const (
	StatusNone DayStatus = iota
	StatusMorningOnly
	StatusEveningOnly
	StatusBoth
)

// StatusOf derives a DayStatus from the two session flags.
func StatusOf(morning, evening bool) DayStatus {
	switch {
	case morning && evening:
		return StatusBoth
	case morning:
		return StatusMorningOnly
	case evening:
		return StatusEveningOnly
	default:
		return StatusNone
	}
}

func (s DayStatus) String() string {
	switch s {
	case StatusBoth:
		return "both"
	case StatusMorningOnly:
		return "morning"
	case StatusEveningOnly:
		return "evening"
	default:
		return "none"
	}
}
