package papertrade

import (
	"fmt"
	"time"
)

// Side is a typed string identifying the direction of a trade.
type Side string

const (
	// SideBuy purchases shares, debiting cash.
	SideBuy Side = "buy"
	// SideSell sells held shares, crediting cash.
	SideSell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// Transaction is an immutable record of one executed trade. The transaction
// log is append-only and is the ground truth for history reconstruction.
type Transaction struct {
	Date   time.Time `json:"date"`
	Action Side      `json:"action"`
	Symbol string    `json:"symbol"`
	Shares int       `json:"shares"`
	Price  Money     `json:"price"`
	Total  Money     `json:"total"`
}

// Day returns the calendar day the transaction was executed on.
func (t Transaction) Day() Date { return DateOf(t.Date) }

// String renders the transaction as a single human-readable line.
func (t Transaction) String() string {
	verb := "Bought"
	if t.Action == SideSell {
		verb = "Sold"
	}
	return fmt.Sprintf("%s %d %s at %s for %s", verb, t.Shares, t.Symbol, t.Price, t.Total)
}

// Filter selects transactions by side when listing history.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterBuy  Filter = "buy"
	FilterSell Filter = "sell"
)

// ParseFilter parses a string into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterBuy, FilterSell:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("unknown transaction filter: %q", s)
	}
}

// matches reports whether a transaction side passes the filter.
func (f Filter) matches(side Side) bool {
	return f == FilterAll || string(f) == string(side)
}
