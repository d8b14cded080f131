package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/storage"
	"github.com/julianstephens/daystreak/internal/tracker"
)

type Context struct {
	Store storage.Provider
}

// newTracker builds a tracker whose notifications print to stdout, the
// CLI's presentation of the notification sink.
func (ctx *Context) newTracker() (*tracker.Tracker, error) {
	return tracker.New(ctx.Store, tracker.NotifierFunc(printEvent))
}

func printEvent(e tracker.Event) {
	switch e.Kind {
	case tracker.EventDayUpdated:
		fmt.Printf("Day %s updated\n", e.Day)
	case tracker.EventFutureDateRejected:
		fmt.Printf("Cannot record the future date %s\n", e.Day)
	case tracker.EventDataReset:
		fmt.Println("All data has been reset")
	case tracker.EventLoadFailed:
		fmt.Println("Stored data could not be read; starting fresh")
	}
}

// parseDate accepts YYYY-MM-DD plus the 'today' and 'yesterday'
// shorthands.
func parseDate(s string) (time.Time, error) {
	switch s {
	case "today":
		return dates.Today(), nil
	case "yesterday":
		return dates.Today().AddDate(0, 0, -1), nil
	}

	day, err := dates.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'yesterday': %w", err)
	}
	return day, nil
}
