package papertrade

import (
	"testing"
	"time"
)

func TestCurrentValuation(t *testing.T) {
	catalog := NewCatalog(
		Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: M(200)},
		Quote{Symbol: "WMT", Name: "Walmart Inc", Price: M(50)},
	)

	testCases := []struct {
		name        string
		setup       func(p *Portfolio)
		wantTotal   Money
		wantChange  Money
		wantPercent Percent
	}{
		{
			name:        "fresh portfolio",
			setup:       func(p *Portfolio) {},
			wantTotal:   M(10000),
			wantChange:  M(0),
			wantPercent: 0,
		},
		{
			name: "holdings valued at current price",
			setup: func(p *Portfolio) {
				p.Cash = M(1000)
				p.Holdings["AAPL"] = Holding{Name: "Apple Inc.", Shares: 50, TotalCost: M(9000)}
			},
			wantTotal:   M(11000), // 1000 + 50*200
			wantChange:  M(1000),
			wantPercent: 10,
		},
		{
			name: "symbol missing from catalog contributes nothing",
			setup: func(p *Portfolio) {
				p.Cash = M(4000)
				p.Holdings["GONE"] = Holding{Name: "Delisted Corp", Shares: 10, TotalCost: M(6000)}
			},
			wantTotal:   M(4000),
			wantChange:  M(-6000),
			wantPercent: -60,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPortfolio()
			tc.setup(p)

			v := CurrentValuation(p, catalog)
			if !v.TotalValue.Equal(tc.wantTotal) {
				t.Errorf("total = %s, want %s", v.TotalValue, tc.wantTotal)
			}
			if !v.Change.Equal(tc.wantChange) {
				t.Errorf("change = %s, want %s", v.Change, tc.wantChange)
			}
			if !v.ChangePercent.Equal(tc.wantPercent) {
				t.Errorf("change percent = %s, want %s", v.ChangePercent, tc.wantPercent)
			}
		})
	}
}

func TestCurrentValuation_ZeroInitialInvestment(t *testing.T) {
	p := &Portfolio{Cash: M(0), InitialInvestment: M(0), Holdings: map[string]Holding{}}
	v := CurrentValuation(p, DefaultCatalog())
	if v.ChangePercent != 0 {
		t.Errorf("change percent = %s, want 0 when initial investment is 0", v.ChangePercent)
	}
}

func TestHoldingsView(t *testing.T) {
	catalog := NewCatalog(
		Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: M(200)},
		Quote{Symbol: "WMT", Name: "Walmart Inc", Price: M(50)},
	)

	p := NewPortfolio()
	p.Holdings["WMT"] = Holding{Name: "Walmart Inc", Shares: 4, TotalCost: M(240)}
	p.Holdings["AAPL"] = Holding{Name: "Apple Inc.", Shares: 10, TotalCost: M(1500)}

	views := HoldingsView(p, catalog)
	if len(views) != 2 {
		t.Fatalf("view has %d rows, want 2", len(views))
	}

	aapl := views[0] // sorted by symbol
	if aapl.Symbol != "AAPL" || aapl.Shares != 10 {
		t.Fatalf("first row = %+v, want AAPL x10", aapl)
	}
	if !aapl.AvgCost.Equal(M(150)) {
		t.Errorf("AAPL avg cost = %s, want $150.00", aapl.AvgCost)
	}
	if !aapl.CurrentValue.Equal(M(2000)) {
		t.Errorf("AAPL value = %s, want $2,000.00", aapl.CurrentValue)
	}
	if !aapl.Gain.Equal(M(500)) {
		t.Errorf("AAPL gain = %s, want $500.00", aapl.Gain)
	}
	if !aapl.GainPercent.Equal(Percent(100.0 / 3.0)) {
		t.Errorf("AAPL gain percent = %s, want %s", aapl.GainPercent, Percent(100.0/3.0))
	}

	wmt := views[1]
	if wmt.Symbol != "WMT" || !wmt.AvgCost.Equal(M(60)) {
		t.Errorf("second row = %+v, want WMT at $60.00 avg cost", wmt)
	}
	if !wmt.Gain.Equal(M(-40)) {
		t.Errorf("WMT gain = %s, want -$40.00", wmt.Gain)
	}
}

func TestTransactionsByAction(t *testing.T) {
	p := NewPortfolio()
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	for i, side := range []Side{SideBuy, SideSell, SideBuy} {
		p.Transactions = append(p.Transactions, Transaction{
			Date: base.Add(time.Duration(i) * time.Hour), Action: side,
			Symbol: "AAPL", Shares: 1, Price: M(182.63), Total: M(182.63),
		})
	}

	testCases := []struct {
		filter    Filter
		wantSides []Side
	}{
		{FilterAll, []Side{SideBuy, SideSell, SideBuy}},
		{FilterBuy, []Side{SideBuy, SideBuy}},
		{FilterSell, []Side{SideSell}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := TransactionsByAction(p, tc.filter)
			if len(got) != len(tc.wantSides) {
				t.Fatalf("filter %q returned %d transactions, want %d", tc.filter, len(got), len(tc.wantSides))
			}
			for i, tx := range got {
				if tx.Action != tc.wantSides[i] {
					t.Errorf("transaction %d side = %q, want %q", i, tx.Action, tc.wantSides[i])
				}
				if i > 0 && got[i-1].Date.Before(tx.Date) {
					t.Errorf("transactions not newest-first at index %d", i)
				}
			}
		})
	}
}
