package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investifyx/papertrade"
	"github.com/investifyx/papertrade/renderer"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct {
	quantity int
	side     string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "look up a stock and preview an order" }
func (*quoteCmd) Usage() string {
	return `pts quote <symbol> [-q <quantity>] [-side buy|sell]

  Displays the catalog quote for a symbol. With -q, also previews the
  estimated total for an order of that size.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.quantity, "q", 0, "Preview an order for this many shares")
	f.StringVar(&c.side, "side", "buy", "Order side for the preview (buy or sell)")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	sim, err := openSimulator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quote, err := sim.SearchQuote(symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, advise(err))
		return subcommands.ExitFailure
	}

	var preview *papertrade.OrderPreview
	if c.quantity > 0 {
		side, err := papertrade.ParseSide(c.side)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		p, err := sim.PreviewOrder(symbol, c.quantity, side)
		if err != nil {
			fmt.Fprintln(os.Stderr, advise(err))
			return subcommands.ExitFailure
		}
		preview = &p
	}

	printMarkdown(renderer.QuoteMarkdown(quote, preview))
	return subcommands.ExitSuccess
}
