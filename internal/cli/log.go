package cli

import (
	"errors"

	"github.com/julianstephens/daystreak/internal/models"
	"github.com/julianstephens/daystreak/internal/tracker"
)

type LogCmd struct {
	Status string `arg:"" enum:"zero,reset" help:"Day status: 'zero' (habit maintained) or 'reset' (habit broken)."`
	Date   string `arg:"" optional:"" default:"today" help:"Date to log (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (c *LogCmd) Run(ctx *Context) error {
	day, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := t.SetStatus(day, models.Status(c.Status)); err != nil {
		// The rejection was already surfaced through the notifier.
		if errors.Is(err, tracker.ErrFutureDate) {
			return nil
		}
		return err
	}

	printStats(t.Stats())
	return nil
}

type ClearCmd struct {
	Date string `arg:"" help:"Date to clear back to unset (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	day, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := t.ClearStatus(day); err != nil {
		if errors.Is(err, tracker.ErrFutureDate) {
			return nil
		}
		return err
	}

	printStats(t.Stats())
	return nil
}
