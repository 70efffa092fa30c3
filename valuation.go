package papertrade

// Valuation is the at-a-glance state of the whole portfolio: cash plus
// holdings at current catalog prices, compared to the initial investment.
type Valuation struct {
	TotalValue    Money
	Cash          Money
	Change        Money
	ChangePercent Percent
}

// CurrentValuation values the portfolio at current catalog prices. A held
// symbol missing from the catalog contributes nothing, matching the way the
// original display treated unknown symbols.
func CurrentValuation(p *Portfolio, catalog *Catalog) Valuation {
	total := p.Cash
	for symbol, h := range p.Holdings {
		if q, ok := catalog.Get(symbol); ok {
			total = total.Add(q.Price.MulInt(h.Shares))
		}
	}
	change := total.Sub(p.InitialInvestment)
	return Valuation{
		TotalValue:    total,
		Cash:          p.Cash,
		Change:        change,
		ChangePercent: change.PercentOf(p.InitialInvestment),
	}
}

// HoldingView is the display-ready state of one position.
type HoldingView struct {
	Symbol       string
	Name         string
	Shares       int
	AvgCost      Money
	CurrentValue Money
	Gain         Money
	GainPercent  Percent
}

// HoldingsView returns one view per holding, sorted by symbol.
func HoldingsView(p *Portfolio, catalog *Catalog) []HoldingView {
	views := make([]HoldingView, 0, len(p.Holdings))
	for _, symbol := range p.Symbols() {
		h := p.Holdings[symbol]
		var price Money
		if q, ok := catalog.Get(symbol); ok {
			price = q.Price
		}
		value := price.MulInt(h.Shares)
		gain := value.Sub(h.TotalCost)
		views = append(views, HoldingView{
			Symbol:       symbol,
			Name:         h.Name,
			Shares:       h.Shares,
			AvgCost:      h.AvgCost(),
			CurrentValue: value,
			Gain:         gain,
			GainPercent:  gain.PercentOf(h.TotalCost),
		})
	}
	return views
}

// TransactionsByAction returns the transactions passing the filter, newest
// first. Transactions sharing a timestamp keep their append order reversed,
// so the most recently recorded comes first.
func TransactionsByAction(p *Portfolio, filter Filter) []Transaction {
	result := make([]Transaction, 0, len(p.Transactions))
	for i := len(p.Transactions) - 1; i >= 0; i-- {
		tx := p.Transactions[i]
		if filter.matches(tx.Action) {
			result = append(result, tx)
		}
	}
	return result
}
