package cli

import (
	"fmt"

	"github.com/julianstephens/daystreak/internal/dates"
	"github.com/julianstephens/daystreak/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Date to show (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (c *DayCmd) Run(ctx *Context) error {
	day, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	fmt.Printf("%s: %s\n", dates.Key(day), statusLabel(t.Status(day)))
	return nil
}

func statusLabel(s models.Status) string {
	switch s {
	case models.StatusZero:
		return "zero day"
	case models.StatusReset:
		return "reset day"
	default:
		return "unset"
	}
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	records := t.Records()
	if len(records) == 0 {
		fmt.Println("No days logged yet")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %s\n", rec.Day, statusLabel(rec.Status))
	}
	fmt.Printf("\n%d day(s) logged\n", len(records))
	return nil
}
