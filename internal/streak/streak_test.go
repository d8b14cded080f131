package streak

import (
	"testing"
	"time"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/models"
)

var testToday = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)

func set(records map[string]models.DayRecord, day time.Time, status models.Status) {
	key := dates.Key(day)
	records[key] = models.DayRecord{ID: key, Day: key, Status: status}
}

// zeroRun marks `days` consecutive zero days starting at start.
func zeroRun(records map[string]models.DayRecord, start time.Time, days int) {
	for i := 0; i < days; i++ {
		set(records, start.AddDate(0, 0, i), models.StatusZero)
	}
}

func TestCalculate_EmptyCollection(t *testing.T) {
	stats := Calculate(map[string]models.DayRecord{}, testToday)

	if stats.CurrentStreak != 0 || stats.BestStreak != 0 || stats.TotalMonths != 0 || stats.TotalYears != 0 {
		t.Errorf("expected all-zero stats for empty collection, got %+v", stats)
	}
	if stats.BestStart != "" || stats.BestEnd != "" {
		t.Errorf("expected no best run span for empty collection, got %q – %q", stats.BestStart, stats.BestEnd)
	}
}

func TestCalculate_ThreeDayRunEndingToday(t *testing.T) {
	records := map[string]models.DayRecord{}
	zeroRun(records, testToday.AddDate(0, 0, -2), 3)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 3 {
		t.Errorf("expected current streak 3, got %d", stats.CurrentStreak)
	}
	if stats.BestStreak != 3 {
		t.Errorf("expected best streak 3, got %d", stats.BestStreak)
	}
}

func TestCalculate_WalkStopsAtReset(t *testing.T) {
	records := map[string]models.DayRecord{}
	set(records, testToday, models.StatusZero)
	set(records, testToday.AddDate(0, 0, -1), models.StatusReset)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 1 {
		t.Errorf("expected current streak 1, got %d", stats.CurrentStreak)
	}
}

func TestCalculate_TodayResetHaltsImmediately(t *testing.T) {
	records := map[string]models.DayRecord{}
	set(records, testToday, models.StatusReset)
	zeroRun(records, testToday.AddDate(0, 0, -5), 5)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 0 {
		t.Errorf("expected current streak 0 when today is reset, got %d", stats.CurrentStreak)
	}
}

func TestCalculate_TodayUnsetIsNeutral(t *testing.T) {
	// Today has not been logged yet; the streak waits rather than breaks.
	records := map[string]models.DayRecord{}
	zeroRun(records, testToday.AddDate(0, 0, -3), 3)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 3 {
		t.Errorf("expected current streak 3 with today unlogged, got %d", stats.CurrentStreak)
	}
}

func TestCalculate_UnloggedPastDayBreaks(t *testing.T) {
	// Yesterday was never logged: today-unset neutrality does not extend
	// to past days.
	records := map[string]models.DayRecord{}
	zeroRun(records, testToday.AddDate(0, 0, -10), 5)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 0 {
		t.Errorf("expected current streak 0 after an unlogged past day, got %d", stats.CurrentStreak)
	}
}

func TestCalculate_PastRunIsBestWhileCurrentIsZero(t *testing.T) {
	records := map[string]models.DayRecord{}
	start := testToday.AddDate(0, 0, -18)
	zeroRun(records, start, 5)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 0 {
		t.Errorf("expected current streak 0, got %d", stats.CurrentStreak)
	}
	if stats.BestStreak != 5 {
		t.Errorf("expected best streak 5, got %d", stats.BestStreak)
	}
	if stats.BestStart != dates.Key(start) {
		t.Errorf("expected best start %s, got %s", dates.Key(start), stats.BestStart)
	}
	if stats.BestEnd != dates.Key(start.AddDate(0, 0, 4)) {
		t.Errorf("expected best end %s, got %s", dates.Key(start.AddDate(0, 0, 4)), stats.BestEnd)
	}
}

func TestCalculate_UnsetGapSplitsRuns(t *testing.T) {
	// A one-day gap between two zero runs starts a new run; unset days
	// never bridge.
	records := map[string]models.DayRecord{}
	zeroRun(records, testToday.AddDate(0, 0, -30), 4)
	zeroRun(records, testToday.AddDate(0, 0, -25), 6) // gap on day -26

	stats := Calculate(records, testToday)

	if stats.BestStreak != 6 {
		t.Errorf("expected best streak 6, got %d", stats.BestStreak)
	}
}

func TestCalculate_ResetBreaksBestRun(t *testing.T) {
	records := map[string]models.DayRecord{}
	zeroRun(records, testToday.AddDate(0, 0, -30), 4)
	set(records, testToday.AddDate(0, 0, -26), models.StatusReset)
	zeroRun(records, testToday.AddDate(0, 0, -25), 3)

	stats := Calculate(records, testToday)

	if stats.BestStreak != 4 {
		t.Errorf("expected best streak 4, got %d", stats.BestStreak)
	}
}

func TestCalculate_LiveStreakBecomesBest(t *testing.T) {
	// The live streak ends on an unlogged today, so the forward scan
	// alone undercounts it; reconciliation must pick it up.
	records := map[string]models.DayRecord{}
	zeroRun(records, testToday.AddDate(0, 0, -40), 2)
	set(records, testToday.AddDate(0, 0, -4), models.StatusReset)
	zeroRun(records, testToday.AddDate(0, 0, -3), 4)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != 4 {
		t.Fatalf("expected current streak 4, got %d", stats.CurrentStreak)
	}
	if stats.BestStreak != 4 {
		t.Errorf("expected live streak to become best, got %d", stats.BestStreak)
	}
	if stats.BestStart != dates.Key(testToday.AddDate(0, 0, -3)) {
		t.Errorf("expected best start %s, got %s", dates.Key(testToday.AddDate(0, 0, -3)), stats.BestStart)
	}
	if stats.BestEnd != dates.Key(testToday) {
		t.Errorf("expected best end %s, got %s", dates.Key(testToday), stats.BestEnd)
	}
}

func TestCalculate_TotalsUseCalendarIntervals(t *testing.T) {
	records := map[string]models.DayRecord{}
	start := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.Local)
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	zeroRun(records, start, days)
	set(records, end.AddDate(0, 0, 1), models.StatusReset)

	stats := Calculate(records, testToday)

	if stats.BestStreak != days {
		t.Fatalf("expected best streak %d, got %d", days, stats.BestStreak)
	}
	if stats.TotalMonths != 13 {
		t.Errorf("expected 13 whole months, got %d", stats.TotalMonths)
	}
	if stats.TotalYears != 1 {
		t.Errorf("expected 1 whole year, got %d", stats.TotalYears)
	}
}

func TestCalculate_WalkCapAbortsWithPartialResult(t *testing.T) {
	// More consecutive zero history than the walk is willing to visit.
	records := map[string]models.DayRecord{}
	total := maxWalkDays + 50
	zeroRun(records, testToday.AddDate(0, 0, -(total-1)), total)

	stats := Calculate(records, testToday)

	if stats.CurrentStreak != maxWalkDays {
		t.Errorf("expected walk to abort at %d, got %d", maxWalkDays, stats.CurrentStreak)
	}
	// The forward scan has no cap and sees the whole run.
	if stats.BestStreak != total {
		t.Errorf("expected best streak %d, got %d", total, stats.BestStreak)
	}
}
