// Package dates holds the calendar-day helpers shared by the streak
// engine and the stores. All dates are handled at day granularity in the
// local time zone; the canonical key format is YYYY-MM-DD.
package dates

import "time"

const DayFormat = "2006-01-02"

// Normalize truncates t to midnight local time, dropping the time of day.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Key returns the canonical day key for t.
func Key(t time.Time) string {
	return t.Format(DayFormat)
}

// Parse parses a canonical day key.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, key, time.Local)
}

// Today returns the current day, normalized.
func Today() time.Time {
	return Normalize(time.Now())
}

// After reports whether a is strictly after b at day granularity.
func After(a, b time.Time) bool {
	return Normalize(a).After(Normalize(b))
}

// WholeMonths returns the number of whole calendar months between start
// and end. Negative spans clamp to zero.
func WholeMonths(start, end time.Time) int {
	start, end = Normalize(start), Normalize(end)
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// WholeYears returns the number of whole calendar years between start
// and end. Negative spans clamp to zero.
func WholeYears(start, end time.Time) int {
	start, end = Normalize(start), Normalize(end)
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
