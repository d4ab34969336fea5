package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/depot/cmd"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	exportFlags := map[string]complete.Predictor{"f": predict.Files("*.csv")}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: exportFlags},
			"tx":     {Flags: exportFlags},
			"check":  {Flags: exportFlags},
			"topic":  {Args: predict.Set{"readme", "export-format", "fifo", "exchange-fees"}},
		},
	}
	completion.Complete("dgr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
