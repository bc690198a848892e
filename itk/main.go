// Command itk is a local-first investment tracker: an append-only trade log,
// positions, performance, and goal pacing, all from plain files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/invtrack/invtrack/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion first: in completion mode this prints and exits.
	completion().Complete("itk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Names()))
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"storage-dir": predict.Dirs("*"),
			"config":      predict.Files("*.toml"),
		},
	}
}
