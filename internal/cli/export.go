package cli

import (
	"fmt"

	"github.com/julianstephens/daystreak/internal/export"
)

type ExportCmd struct {
	Format string `enum:"json,csv" default:"json" help:"Export format (json or csv)."`
	Out    string `arg:"" help:"Output file path." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	t, err := ctx.newTracker()
	if err != nil {
		return err
	}
	defer ctx.Store.Close()

	records := t.Records()

	switch c.Format {
	case "csv":
		err = export.ToCSV(records, c.Out)
	default:
		err = export.ToJSON(records, c.Out)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d record(s) to %s\n", len(records), c.Out)
	return nil
}
