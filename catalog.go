package papertrade

import (
	"maps"
	"slices"
	"strings"
)

// Quote is a static market quote for a single stock.
type Quote struct {
	Symbol        string
	Name          string
	Price         Money
	PreviousClose Money
	Change        Money
	ChangePercent Percent
	Sector        string
}

// Catalog is a read-only symbol -> Quote lookup table, fixed at construction.
type Catalog struct {
	quotes map[string]Quote
}

// NewCatalog builds a catalog from a set of quotes, indexed by uppercased
// symbol.
func NewCatalog(quotes ...Quote) *Catalog {
	c := &Catalog{quotes: make(map[string]Quote, len(quotes))}
	for _, q := range quotes {
		q.Symbol = strings.ToUpper(q.Symbol)
		c.quotes[q.Symbol] = q
	}
	return c
}

// Get returns the quote for a symbol. Symbols are case-insensitive. The
// second return value is false when the catalog does not quote the symbol.
func (c *Catalog) Get(symbol string) (Quote, bool) {
	q, ok := c.quotes[strings.ToUpper(strings.TrimSpace(symbol))]
	return q, ok
}

// Symbols returns the sorted list of quoted symbols.
func (c *Catalog) Symbols() []string {
	return slices.Sorted(maps.Keys(c.quotes))
}

// DefaultCatalog returns the simulator's built-in price table.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: M(182.63), PreviousClose: M(180.25), Change: M(1.37), ChangePercent: 0.75, Sector: "Technology"},
		Quote{Symbol: "MSFT", Name: "Microsoft Corp", Price: M(411.22), PreviousClose: M(408.68), Change: M(2.54), ChangePercent: 0.62, Sector: "Technology"},
		Quote{Symbol: "AMZN", Name: "Amazon.com Inc", Price: M(178.75), PreviousClose: M(180.00), Change: M(-1.25), ChangePercent: -0.69, Sector: "Consumer Discretionary"},
		Quote{Symbol: "GOOGL", Name: "Alphabet Inc", Price: M(149.32), PreviousClose: M(148.48), Change: M(0.84), ChangePercent: 0.57, Sector: "Communication Services"},
		Quote{Symbol: "META", Name: "Meta Platforms Inc", Price: M(475.88), PreviousClose: M(479.12), Change: M(-3.24), ChangePercent: -0.68, Sector: "Communication Services"},
		Quote{Symbol: "TSLA", Name: "Tesla Inc", Price: M(175.21), PreviousClose: M(171.38), Change: M(3.83), ChangePercent: 2.23, Sector: "Consumer Discretionary"},
		Quote{Symbol: "NVDA", Name: "NVIDIA Corp", Price: M(880.08), PreviousClose: M(864.62), Change: M(15.46), ChangePercent: 1.79, Sector: "Technology"},
		Quote{Symbol: "JPM", Name: "JPMorgan Chase & Co", Price: M(198.48), PreviousClose: M(199.60), Change: M(-1.12), ChangePercent: -0.56, Sector: "Financials"},
		Quote{Symbol: "JNJ", Name: "Johnson & Johnson", Price: M(152.74), PreviousClose: M(152.46), Change: M(0.28), ChangePercent: 0.18, Sector: "Healthcare"},
		Quote{Symbol: "WMT", Name: "Walmart Inc", Price: M(68.79), PreviousClose: M(68.12), Change: M(0.67), ChangePercent: 0.98, Sector: "Consumer Staples"},
	)
}
