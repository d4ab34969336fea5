package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	exportFile string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify that an export parses and matches cleanly" }
func (*checkCmd) Usage() string {
	return `dgr check [-f <export_file>]

  Reads a broker transaction export and reports every row that could not be
  parsed and every asset whose sells could not be matched against buys.
  Exits with a non-zero status when any issue is found, so it can gate
  scripts that consume the report.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the broker transaction export (CSV)")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDepot(c.exportFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, e := range d.ParseErrors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	for _, e := range d.MatchErrors() {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if d.HasErrors() {
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %d transactions, %d assets, no issues\n", c.exportFile, len(d.Transactions()), len(d.Assets()))
	return subcommands.ExitSuccess
}
