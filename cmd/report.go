package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/depot/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	exportFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "profit/loss and fee report per asset and per year" }
func (*reportCmd) Usage() string {
	return `dgr report [-f <export_file>]

  Reads a broker transaction export and displays realized profit and loss,
  paid fees, and implicit exchange fees, per asset and per year.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the broker transaction export (CSV)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDepot(c.exportFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderReport(renderer.NewReport(d)))
	return subcommands.ExitSuccess
}
