package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play Jacks or Better (default)"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a five card hand"`
	Paytable PaytableCmd      `cmd:"" help:"Print the payout table"`
	Simulate SimulateCmd      `cmd:"" help:"Play many hands headless and report the return"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("videopoker"),
		kong.Description("Jacks or Better video poker for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
