package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNormalize_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 17, 42, 13, 999, time.Local)
	got := Normalize(ts)

	want := day(2026, time.August, 30)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestKeyParse_RoundTrip(t *testing.T) {
	d := day(2026, time.February, 7)

	parsed, err := Parse(Key(d))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("expected %v, got %v", d, parsed)
	}
}

func TestAfter_DayGranularity(t *testing.T) {
	morning := time.Date(2026, time.August, 30, 1, 0, 0, 0, time.Local)
	evening := time.Date(2026, time.August, 30, 23, 0, 0, 0, time.Local)

	if After(evening, morning) {
		t.Error("times within the same day must not compare as after")
	}
	if !After(evening.AddDate(0, 0, 1), morning) {
		t.Error("the next calendar day must compare as after")
	}
}

func TestWholeMonths(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", day(2026, time.March, 15), day(2026, time.March, 15), 0},
		{"one day short of a month", day(2026, time.January, 15), day(2026, time.February, 14), 0},
		{"exactly one month", day(2026, time.January, 15), day(2026, time.February, 15), 1},
		{"end-of-month start", day(2024, time.January, 31), day(2024, time.February, 29), 0},
		{"across a year", day(2025, time.November, 3), day(2026, time.February, 3), 3},
		{"negative span clamps", day(2026, time.March, 1), day(2026, time.February, 1), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WholeMonths(tc.start, tc.end); got != tc.want {
				t.Errorf("WholeMonths(%s, %s) = %d, want %d", Key(tc.start), Key(tc.end), got, tc.want)
			}
		})
	}
}

func TestWholeYears(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"one day short of a year", day(2025, time.June, 10), day(2026, time.June, 9), 0},
		{"exactly one year", day(2025, time.June, 10), day(2026, time.June, 10), 1},
		{"several years", day(2020, time.January, 1), day(2026, time.August, 30), 6},
		{"negative span clamps", day(2026, time.June, 10), day(2025, time.June, 10), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WholeYears(tc.start, tc.end); got != tc.want {
				t.Errorf("WholeYears(%s, %s) = %d, want %d", Key(tc.start), Key(tc.end), got, tc.want)
			}
		})
	}
}
