// Package cmd implements the CLI application to run the paper-trading simulator.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/investifyx/papertrade"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&quoteCmd{}, "market")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&resetCmd{}, "trading")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioDir = flag.String("portfolio-dir", defaultPortfolioDir(), "Directory holding the portfolio record")
var portfolioKey = flag.String("portfolio-key", papertrade.DefaultStoreKey, "Name of the portfolio record in the portfolio directory")

func defaultPortfolioDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir + "/.papertrade"
	}
	return ".papertrade"
}

// openSimulator is the central function to open the simulator over the
// file-backed portfolio record.
func openSimulator() (*papertrade.Simulator, error) {
	kv, err := papertrade.NewFileKV(*portfolioDir)
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio directory %q: %w", *portfolioDir, err)
	}
	store := papertrade.NewStore(kv, *portfolioKey)
	return papertrade.NewSimulator(store, papertrade.DefaultCatalog()), nil
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// advise translates trade errors into the messages shown to the user.
// Unknown errors pass through unchanged.
func advise(err error) string {
	switch {
	case errors.Is(err, papertrade.ErrInsufficientFunds):
		return "Insufficient funds to complete this purchase."
	case errors.Is(err, papertrade.ErrInsufficientShares):
		return "You do not have enough shares to complete this sale."
	case errors.Is(err, papertrade.ErrQuoteNotFound):
		return "That symbol is not in the simulator. Try one of: " +
			strings.Join(papertrade.DefaultCatalog().Symbols(), ", ")
	default:
		return err.Error()
	}
}
