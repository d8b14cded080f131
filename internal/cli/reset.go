package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *ResetCmd) Run(ctx *Context) error {
	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Reset all data?").
			Description(fmt.Sprintf("This permanently deletes all %d logged day(s).", t.Len())).
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	return t.ResetAll()
}
