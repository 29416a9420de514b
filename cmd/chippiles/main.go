package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/chippiles/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play a hot-seat match in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play random games concurrently and check the rules hold"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chippiles"),
		kong.Description("A chip-capture board game for two to four players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
