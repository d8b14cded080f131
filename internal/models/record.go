package models

import "time"

// Status is the explicitly logged state of a single calendar day.
type Status string

const (
	// StatusZero marks a day on which the habit was maintained.
	StatusZero Status = "zero"
	// StatusReset marks a day on which the habit was broken.
	StatusReset Status = "reset"
	// StatusUnset is returned for days with no stored record. It is a
	// query result only and is never persisted.
	StatusUnset Status = ""
)

func (s Status) IsValid() bool {
	switch s {
	case StatusZero, StatusReset:
		return true
	}
	return false
}

// DayRecord is a single day's explicit entry. At most one record exists
// per calendar day.
type DayRecord struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StreakStats is derived from the full record collection and the current
// date. It is recomputed after every mutation, never stored.
type StreakStats struct {
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	TotalMonths   int    `json:"total_months"`
	TotalYears    int    `json:"total_years"`
	BestStart     string `json:"best_start,omitempty"` // YYYY-MM-DD, empty when BestStreak is 0
	BestEnd       string `json:"best_end,omitempty"`
}
