package papertrade

import (
	"testing"
	"time"
)

func TestHistoryReplay_EmptyLog(t *testing.T) {
	p := NewPortfolio()
	today := MustParseDate("2026-03-02")

	points := replayHistory(p, DefaultCatalog(), today)
	if len(points) != 1 {
		t.Fatalf("replay of empty log produced %d points, want 1", len(points))
	}
	if points[0].Date != today {
		t.Errorf("point date = %s, want %s", points[0].Date, today)
	}
	if !points[0].Value.Equal(M(StartingCash)) {
		t.Errorf("point value = %s, want the initial investment", points[0].Value)
	}
}

func TestHistoryReplay_DayByDay(t *testing.T) {
	// Buy 10 AAPL on Feb 27, sell 4 on Mar 1, replay through Mar 2.
	// Holdings are valued at the current catalog price on every day.
	p := NewPortfolio()
	p.apply(Transaction{
		Date:   time.Date(2026, time.February, 27, 9, 0, 0, 0, time.UTC),
		Action: SideBuy, Symbol: "AAPL", Shares: 10, Price: M(182.63), Total: M(1826.30),
	}, "Apple Inc.")
	p.apply(Transaction{
		Date:   time.Date(2026, time.March, 1, 16, 0, 0, 0, time.UTC),
		Action: SideSell, Symbol: "AAPL", Shares: 4, Price: M(182.63), Total: M(730.52),
	}, "")

	points := replayHistory(p, DefaultCatalog(), MustParseDate("2026-03-02"))

	wantDates := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	if len(points) != len(wantDates) {
		t.Fatalf("replay produced %d points, want %d", len(points), len(wantDates))
	}
	for i, want := range wantDates {
		if points[i].Date.String() != want {
			t.Errorf("point %d date = %s, want %s", i, points[i].Date, want)
		}
	}

	// Days 0-1: cash 8173.70 + 10 shares at 182.63 = 10000.00.
	// Days 2-3: cash 8904.22 + 6 shares at 182.63 = 10000.00.
	// At the flat catalog price the value stays at the initial investment.
	for i, pt := range points {
		if !pt.Value.Equal(M(10000)) {
			t.Errorf("point %d value = %s, want $10,000.00", i, pt.Value)
		}
	}
}

func TestHistoryReplay_ValuesAtCurrentPrices(t *testing.T) {
	// A transaction recorded at a price different from the catalog's
	// current price shows up valued at the current price: only the cash
	// flow is historical.
	catalog := NewCatalog(Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: M(200)})

	p := NewPortfolio()
	p.apply(Transaction{
		Date:   time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
		Action: SideBuy, Symbol: "AAPL", Shares: 10, Price: M(150), Total: M(1500),
	}, "Apple Inc.")

	points := replayHistory(p, catalog, MustParseDate("2026-03-02"))
	if len(points) != 1 {
		t.Fatalf("replay produced %d points, want 1", len(points))
	}
	// 10000 - 1500 cash + 10 * 200 current = 10500.
	if !points[0].Value.Equal(M(10500)) {
		t.Errorf("value = %s, want $10,500.00", points[0].Value)
	}
}

func TestHistoryReplay_UnsortedLog(t *testing.T) {
	// A hand-edited log out of append order still replays chronologically.
	p := NewPortfolio()
	p.Transactions = []Transaction{
		{Date: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC), Action: SideSell, Symbol: "WMT", Shares: 1, Price: M(68.79), Total: M(68.79)},
		{Date: time.Date(2026, time.February, 27, 12, 0, 0, 0, time.UTC), Action: SideBuy, Symbol: "WMT", Shares: 1, Price: M(68.79), Total: M(68.79)},
	}

	points := replayHistory(p, DefaultCatalog(), MustParseDate("2026-03-01"))
	if len(points) != 3 {
		t.Fatalf("replay produced %d points, want 3", len(points))
	}
	if points[0].Date.String() != "2026-02-27" {
		t.Errorf("first point date = %s, want 2026-02-27", points[0].Date)
	}
	for i, pt := range points {
		if !pt.Value.Equal(M(10000)) {
			t.Errorf("point %d value = %s, want $10,000.00", i, pt.Value)
		}
	}
}
