package papertrade

import (
	"fmt"
	"maps"
	"slices"
)

// StartingCash is the cash granted to every fresh portfolio.
const StartingCash = 10000

// Holding is a position in a single stock. TotalCost is the cumulative cost
// basis of the currently held shares only: it grows with every buy and is
// reduced proportionally on partial sells (average-cost basis, not FIFO or
// LIFO lots — the simulator has no lot concept).
type Holding struct {
	Name      string `json:"name"`
	Shares    int    `json:"shares"`
	TotalCost Money  `json:"totalCost"`
}

// AvgCost returns the average cost per currently held share.
func (h Holding) AvgCost() Money {
	if h.Shares == 0 {
		return Money{}
	}
	return h.TotalCost.DivInt(h.Shares)
}

// Portfolio is the aggregate state of the simulator: cash, holdings and the
// append-only transaction log. A symbol appears in Holdings only while its
// share count is positive.
//
// The Portfolio itself carries no validation; trades go through
// [Simulator.ExecuteTrade], which enforces the preconditions before the
// accumulation rules below run.
type Portfolio struct {
	Cash              Money              `json:"cash"`
	InitialInvestment Money              `json:"initialInvestment"`
	Holdings          map[string]Holding `json:"holdings"`
	Transactions      []Transaction      `json:"transactions"`
}

// NewPortfolio returns the default fresh portfolio: starting cash, no
// holdings, no transactions.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Cash:              M(StartingCash),
		InitialInvestment: M(StartingCash),
		Holdings:          make(map[string]Holding),
		Transactions:      make([]Transaction, 0),
	}
}

// Shares returns the number of shares currently held for a symbol, 0 when
// there is no holding.
func (p *Portfolio) Shares(symbol string) int {
	return p.Holdings[symbol].Shares
}

// Symbols returns the sorted list of held symbols.
func (p *Portfolio) Symbols() []string {
	return slices.Sorted(maps.Keys(p.Holdings))
}

// apply mutates the portfolio with an already validated transaction. The
// name is the company name recorded on a newly created holding.
func (p *Portfolio) apply(tx Transaction, name string) {
	switch tx.Action {
	case SideBuy:
		p.Cash = p.Cash.Sub(tx.Total)
		h, ok := p.Holdings[tx.Symbol]
		if !ok {
			h = Holding{Name: name}
		}
		h.Shares += tx.Shares
		h.TotalCost = h.TotalCost.Add(tx.Total)
		p.Holdings[tx.Symbol] = h
	case SideSell:
		p.Cash = p.Cash.Add(tx.Total)
		h := p.Holdings[tx.Symbol]
		before := h.Shares
		h.Shares -= tx.Shares
		if h.Shares <= 0 {
			// The position's remaining cost basis is discarded with it.
			delete(p.Holdings, tx.Symbol)
			break
		}
		// Remove cost basis proportional to the fraction of the
		// before-sale position being sold.
		h.TotalCost = h.TotalCost.Sub(h.TotalCost.Prorate(tx.Shares, before))
		p.Holdings[tx.Symbol] = h
	}
	p.Transactions = append(p.Transactions, tx)
}

// clone returns a deep copy of the portfolio. ExecuteTrade mutates a clone
// so that a failed persist leaves the caller's portfolio untouched.
func (p *Portfolio) clone() *Portfolio {
	c := &Portfolio{
		Cash:              p.Cash,
		InitialInvestment: p.InitialInvestment,
		Holdings:          maps.Clone(p.Holdings),
		Transactions:      slices.Clone(p.Transactions),
	}
	if c.Holdings == nil {
		c.Holdings = make(map[string]Holding)
	}
	return c
}

// validate checks the structural invariants of a decoded portfolio. A
// portfolio that fails validation is treated as corrupt by the store.
func (p *Portfolio) validate() error {
	if p.Cash.IsNegative() {
		return fmt.Errorf("negative cash %s", p.Cash)
	}
	if p.InitialInvestment.IsNegative() {
		return fmt.Errorf("negative initial investment %s", p.InitialInvestment)
	}
	for symbol, h := range p.Holdings {
		if h.Shares <= 0 {
			return fmt.Errorf("holding %s has %d shares", symbol, h.Shares)
		}
		if h.TotalCost.IsNegative() {
			return fmt.Errorf("holding %s has negative cost basis %s", symbol, h.TotalCost)
		}
	}
	for _, tx := range p.Transactions {
		if tx.Action != SideBuy && tx.Action != SideSell {
			return fmt.Errorf("transaction with unknown action %q", tx.Action)
		}
		if tx.Shares <= 0 {
			return fmt.Errorf("transaction with %d shares", tx.Shares)
		}
	}
	return nil
}
