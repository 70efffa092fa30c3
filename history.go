package papertrade

import "slices"

// HistoryPoint is the portfolio's value at the end of one calendar day.
type HistoryPoint struct {
	Date  Date
	Value Money
}

// HistoryReplay reconstructs the portfolio's value day by day, from the day
// of the first transaction through today inclusive, one point per calendar
// day.
//
// Each day's transactions are replayed with the same accumulation rules the
// trade engine applies, and the day's ending holdings are valued at current
// catalog prices. There is no historical price series in the catalog, so
// past days are an approximation: only the cash flow is historical.
func HistoryReplay(p *Portfolio, catalog *Catalog) []HistoryPoint {
	return replayHistory(p, catalog, Today())
}

func replayHistory(p *Portfolio, catalog *Catalog, today Date) []HistoryPoint {
	if len(p.Transactions) == 0 {
		return []HistoryPoint{{Date: today, Value: p.InitialInvestment}}
	}

	// Append order is chronological by construction; the sort guards
	// replays of hand-edited or imported records.
	txs := slices.Clone(p.Transactions)
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})

	// Replay against a fresh portfolio seeded with the initial investment,
	// reusing the engine's accumulation rules.
	running := NewPortfolio()
	running.Cash = p.InitialInvestment
	running.InitialInvestment = p.InitialInvestment

	var points []HistoryPoint
	next := 0
	for day := txs[0].Day(); !day.After(today); day = day.Add(1) {
		for next < len(txs) && txs[next].Day() == day {
			running.apply(txs[next], "")
			next++
		}
		points = append(points, HistoryPoint{
			Date:  day,
			Value: CurrentValuation(running, catalog).TotalValue,
		})
	}
	return points
}
