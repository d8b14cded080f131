// Package streak derives streak statistics from a day record collection.
// It never mutates the collection it is handed.
package streak

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/models"
)

// maxWalkDays bounds the backward walk. Hitting it means corrupt data or
// a logic bug, not legitimate history; the walk aborts with the value
// computed so far.
const maxWalkDays = 10000

// Calculate computes all derived stats for the given collection as of
// today. Records are keyed by day (YYYY-MM-DD).
func Calculate(records map[string]models.DayRecord, today time.Time) models.StreakStats {
	today = dates.Normalize(today)

	current := currentStreak(records, today)
	best, bestStart, bestEnd := bestStreak(records)

	// The live streak may be longer than anything the scan saw, because
	// the scan only credits fully logged runs.
	if current > best {
		best = current
		bestStart = today.AddDate(0, 0, -(current - 1))
		bestEnd = today
	}

	stats := models.StreakStats{
		CurrentStreak: current,
		BestStreak:    best,
	}
	if best > 0 {
		stats.BestStart = dates.Key(bestStart)
		stats.BestEnd = dates.Key(bestEnd)
		stats.TotalMonths = dates.WholeMonths(bestStart, bestEnd)
		stats.TotalYears = dates.WholeYears(bestStart, bestEnd)
	}
	return stats
}

// currentStreak walks backward from today until it hits a reset day or an
// unlogged past day. Today itself is neutral while unlogged: a user who
// has not opened the app yet should not see the streak vanish at
// midnight, but the day is not counted until it is marked zero.
func currentStreak(records map[string]models.DayRecord, today time.Time) int {
	streak := 0
	day := today
	for i := 0; i < maxWalkDays; i++ {
		rec, ok := records[dates.Key(day)]
		switch {
		case ok && rec.Status == models.StatusReset:
			return streak
		case ok && rec.Status == models.StatusZero:
			streak++
		case !ok && day.Before(today):
			return streak
		}
		day = day.AddDate(0, 0, -1)
	}
	log.Error().Int("max_walk_days", maxWalkDays).Msg("streak walk exceeded safety cap, aborting with partial result")
	return streak
}

// bestStreak scans all records in chronological order and returns the
// longest run of consecutive-by-calendar-date zero days along with its
// start and end dates. A gap of more than one day between two zero
// records starts a new run; an unset day never bridges two runs.
func bestStreak(records map[string]models.DayRecord) (int, time.Time, time.Time) {
	keys := make([]string, 0, len(records))
	for day := range records {
		keys = append(keys, day)
	}
	sort.Strings(keys)

	var best, run int
	var runStart, prevZero time.Time
	var bestStart, bestEnd time.Time

	for _, key := range keys {
		rec := records[key]
		day, err := dates.Parse(key)
		if err != nil {
			// Keys are produced by dates.Key; an unparsable one is
			// corrupt and contributes nothing.
			continue
		}

		switch rec.Status {
		case models.StatusZero:
			if run > 0 && day.Equal(prevZero.AddDate(0, 0, 1)) {
				run++
			} else {
				run = 1
				runStart = day
			}
			prevZero = day
			if run > best {
				best = run
				bestStart = runStart
				bestEnd = day
			}
		case models.StatusReset:
			run = 0
		}
	}

	return best, bestStart, bestEnd
}
