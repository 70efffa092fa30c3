package papertrade

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodePortfolio writes the portfolio as a single JSON object:
//
//	{
//	  "cash": number,
//	  "initialInvestment": number,
//	  "holdings": { "SYM": {"name", "shares", "totalCost"}, ... },
//	  "transactions": [ {"date", "action", "symbol", "shares", "price", "total"}, ... ]
//	}
//
// Monetary fields persist as JSON numbers, dates as RFC 3339 strings.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("could not encode portfolio: %w", err)
	}
	return nil
}

// DecodePortfolio reads a portfolio previously written by EncodePortfolio
// and checks its structural invariants. Callers treat any error as a
// corrupt record.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("could not decode portfolio: %w", err)
	}
	if p.Holdings == nil {
		p.Holdings = make(map[string]Holding)
	}
	if p.Transactions == nil {
		p.Transactions = make([]Transaction, 0)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio: %w", err)
	}
	return &p, nil
}
