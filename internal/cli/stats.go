package cli

import (
	"fmt"

	"github.com/julianstephens/daystreak/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	printStats(t.Stats())
	return nil
}

func printStats(stats models.StreakStats) {
	fmt.Printf("Current streak: %d day(s)\n", stats.CurrentStreak)
	fmt.Printf("Best streak:    %d day(s)", stats.BestStreak)
	if stats.BestStreak > 0 {
		fmt.Printf("  (%s – %s)", stats.BestStart, stats.BestEnd)
	}
	fmt.Println()
	fmt.Printf("Total months:   %d\n", stats.TotalMonths)
	fmt.Printf("Total years:    %d\n", stats.TotalYears)
}
