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

// placeOrder runs a buy or sell through the simulator and reports the outcome.
func placeOrder(symbol string, quantity int, side papertrade.Side) subcommands.ExitStatus {
	sim, err := openSimulator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := sim.ExecuteTrade(symbol, quantity, side)
	if err != nil {
		fmt.Fprintln(os.Stderr, advise(err))
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	symbol   string
	quantity int
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `pts buy -s <symbol> -q <quantity>

  Purchases shares at the current catalog price. The total cost is debited
  from the available cash.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol")
	f.IntVar(&c.quantity, "q", 0, "Number of shares")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return placeOrder(c.symbol, c.quantity, papertrade.SideBuy)
}

// --- Sell Command ---

type sellCmd struct {
	symbol   string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `pts sell -s <symbol> -q <quantity>

  Sells shares at the current catalog price. The proceeds are credited to
  the available cash.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol")
	f.IntVar(&c.quantity, "q", 0, "Number of shares")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return placeOrder(c.symbol, c.quantity, papertrade.SideSell)
}

// --- Reset Command ---

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "reset the portfolio to its starting state" }
func (*resetCmd) Usage() string {
	return `pts reset -f

  Discards all holdings and transactions and restores the starting cash.
  Requires -f to confirm.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the reset")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Resetting discards all holdings and transactions. Re-run with -f to confirm.")
		return subcommands.ExitUsageError
	}

	sim, err := openSimulator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := sim.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Your portfolio has been reset. You now have %s to invest.\n", papertrade.M(papertrade.StartingCash))
	return subcommands.ExitSuccess
}
