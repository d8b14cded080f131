package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/julianstephens/daystreak/internal/cli"
	"github.com/julianstephens/daystreak/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/daystreak/daystreak.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize daystreak storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive calendar TUI." default:"1"`
	Log    cli.LogCmd    `cmd:"" help:"Log a day as zero or reset."`
	Clear  cli.ClearCmd  `cmd:"" help:"Clear a day's record back to unset."`
	Day    cli.DayCmd    `cmd:"" help:"Show a day's status."`
	List   cli.ListCmd   `cmd:"" help:"List all logged days."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show streak statistics."`
	Export cli.ExportCmd `cmd:"" help:"Export logged days to JSON or CSV."`
	Reset  cli.ResetCmd  `cmd:"" help:"Delete all logged days."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daystreak"),
		kong.Description("Daily streak tracker: log zero days, keep the chain alive"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logLevel := zerolog.WarnLevel
	if CLI.Debug {
		logLevel = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel).With().Timestamp().Logger()

	// Determine storage type based on extension
	var store storage.Provider
	if len(CLI.Config) > 5 && CLI.Config[len(CLI.Config)-5:] == ".json" {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
