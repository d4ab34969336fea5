package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/depot/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	exportFile string
	isin       string
	year       int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the parsed transactions" }
func (*txCmd) Usage() string {
	return `dgr tx [-f <export_file>] [-isin <isin>] [-year <year>]

  Lists the transactions of a broker export after repair, parsing and
  deduplication, optionally scoped to a single asset or year.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "f", defaultExportFile, "Path to the broker transaction export (CSV)")
	f.StringVar(&c.isin, "isin", "", "Only list transactions of this asset")
	f.IntVar(&c.year, "year", 0, "Only list transactions of this year")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadDepot(c.exportFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.isin != "" && d.Asset(c.isin) == nil {
		fmt.Fprintf(os.Stderr, "no transactions for ISIN %q\n", c.isin)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderTransactions(renderer.NewTransactionList(d, c.isin, c.year)))
	return subcommands.ExitSuccess
}
