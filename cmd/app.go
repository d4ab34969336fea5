// Package cmd implements the CLI application to report on a brokerage export.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/depot"
	"github.com/etnz/depot/degiro"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// defaultExportFile is where the broker export is looked up when -f is not given.
const defaultExportFile = "transactions.csv"

// loadDepot reads a broker export file into a depot.
func loadDepot(filename string) (*depot.Depot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open export file %q: %w", filename, err)
	}
	defer f.Close()

	d, err := degiro.Load(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read export file %q: %w", filename, err)
	}
	return d, nil
}

// printMarkdown renders markdown for the terminal. On rendering errors the
// raw markdown is printed instead, it is readable enough.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
