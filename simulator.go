package papertrade

import (
	"fmt"
	"time"
)

// Simulator ties the portfolio store and the price catalog together. It
// validates and executes trade intents, and serves the display-ready
// aggregates derived from the portfolio.
//
// It is the single point of mutation for the portfolio: every successful
// trade is persisted before it becomes visible, and a rejected or failed
// trade leaves no partial state behind.
type Simulator struct {
	store   *Store
	catalog *Catalog

	// now is the trade timestamp clock, swappable in tests.
	now func() time.Time

	portfolio *Portfolio // lazily loaded from the store
}

// NewSimulator creates a simulator over a store and a catalog.
func NewSimulator(store *Store, catalog *Catalog) *Simulator {
	return &Simulator{store: store, catalog: catalog, now: time.Now}
}

// Portfolio returns the current portfolio, loading it from the store on
// first use.
func (s *Simulator) Portfolio() (*Portfolio, error) {
	if s.portfolio == nil {
		p, err := s.store.Load()
		if err != nil {
			return nil, err
		}
		s.portfolio = p
	}
	return s.portfolio, nil
}

// SearchQuote resolves a symbol against the catalog.
func (s *Simulator) SearchQuote(symbol string) (Quote, error) {
	q, ok := s.catalog.Get(symbol)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrQuoteNotFound, symbol)
	}
	return q, nil
}

// OrderPreview is the estimated outcome of a trade intent, computed without
// mutating anything.
type OrderPreview struct {
	Quote          Quote
	Shares         int
	Side           Side
	EstimatedTotal Money
}

// PreviewOrder quotes a trade intent: the price it would execute at, its
// total, and the rejection it would be refused with, if any. The portfolio
// is left untouched.
func (s *Simulator) PreviewOrder(symbol string, shares int, side Side) (OrderPreview, error) {
	p, err := s.Portfolio()
	if err != nil {
		return OrderPreview{}, err
	}
	quote, total, err := s.checkTrade(p, symbol, shares, side)
	if err != nil {
		return OrderPreview{}, err
	}
	return OrderPreview{Quote: quote, Shares: shares, Side: side, EstimatedTotal: total}, nil
}

// checkTrade runs the full precondition ladder for a trade intent and
// returns the quote and total it would execute with.
func (s *Simulator) checkTrade(p *Portfolio, symbol string, shares int, side Side) (Quote, Money, error) {
	if side != SideBuy && side != SideSell {
		return Quote{}, Money{}, fmt.Errorf("%w: unknown side %q", ErrInvalidOrder, side)
	}
	if shares <= 0 {
		return Quote{}, Money{}, fmt.Errorf("%w: quantity must be a positive number of shares, got %d", ErrInvalidOrder, shares)
	}
	quote, ok := s.catalog.Get(symbol)
	if !ok {
		return Quote{}, Money{}, fmt.Errorf("%w: unknown symbol %q", ErrInvalidOrder, symbol)
	}
	total := quote.Price.MulInt(shares)
	switch side {
	case SideBuy:
		if total.GreaterThan(p.Cash) {
			return Quote{}, Money{}, fmt.Errorf("%w: order total %s exceeds cash %s", ErrInsufficientFunds, total, p.Cash)
		}
	case SideSell:
		if held := p.Shares(quote.Symbol); shares > held {
			return Quote{}, Money{}, fmt.Errorf("%w: selling %d but holding %d %s", ErrInsufficientShares, shares, held, quote.Symbol)
		}
	}
	return quote, total, nil
}

// ExecuteTrade validates a trade intent, applies it to the portfolio,
// appends the transaction record and persists the new state. On any
// rejection or persistence failure the portfolio is unchanged.
func (s *Simulator) ExecuteTrade(symbol string, shares int, side Side) (Transaction, error) {
	p, err := s.Portfolio()
	if err != nil {
		return Transaction{}, err
	}
	quote, total, err := s.checkTrade(p, symbol, shares, side)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		Date:   s.now(),
		Action: side,
		Symbol: quote.Symbol,
		Shares: shares,
		Price:  quote.Price,
		Total:  total,
	}

	// Mutate a clone and swap it in only after a successful save, so a
	// failed persist cannot leave memory and storage disagreeing.
	next := p.clone()
	next.apply(tx, quote.Name)
	if err := s.store.Save(next); err != nil {
		return Transaction{}, err
	}
	s.portfolio = next
	return tx, nil
}

// Reset recreates and persists the default portfolio.
func (s *Simulator) Reset() (*Portfolio, error) {
	p, err := s.store.Reset()
	if err != nil {
		return nil, err
	}
	s.portfolio = p
	return p, nil
}

// CurrentValuation computes the portfolio's instantaneous total value and
// its change against the initial investment.
func (s *Simulator) CurrentValuation() (Valuation, error) {
	p, err := s.Portfolio()
	if err != nil {
		return Valuation{}, err
	}
	return CurrentValuation(p, s.catalog), nil
}

// HoldingsView returns the display-ready view of every holding, sorted by
// symbol.
func (s *Simulator) HoldingsView() ([]HoldingView, error) {
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	return HoldingsView(p, s.catalog), nil
}

// TransactionsByAction returns the transaction log filtered by side,
// newest first.
func (s *Simulator) TransactionsByAction(filter Filter) ([]Transaction, error) {
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	return TransactionsByAction(p, filter), nil
}

// HistoryReplay reconstructs the day-by-day portfolio value from the first
// transaction through today.
func (s *Simulator) HistoryReplay() ([]HistoryPoint, error) {
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	return replayHistory(p, s.catalog, DateOf(s.now())), nil
}
