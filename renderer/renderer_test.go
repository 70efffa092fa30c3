package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/investifyx/papertrade"
)

func TestSummaryMarkdown(t *testing.T) {
	v := papertrade.Valuation{
		TotalValue:    papertrade.M(10730.52),
		Cash:          papertrade.M(8904.22),
		Change:        papertrade.M(730.52),
		ChangePercent: papertrade.Percent(7.31),
	}
	got := SummaryMarkdown(v, papertrade.NewDate(2026, time.March, 2))

	// Table cells are padded by the renderer, so assert on the values only.
	for _, want := range []string{
		"Portfolio Summary on 2026-03-02",
		"$10,730.52",
		"Available Cash",
		"$8,904.22",
		"+$730.52",
		"+7.31%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	views := []papertrade.HoldingView{
		{
			Symbol:       "AAPL",
			Name:         "Apple Inc.",
			Shares:       6,
			AvgCost:      papertrade.M(182.63),
			CurrentValue: papertrade.M(1095.78),
			Gain:         papertrade.M(0),
			GainPercent:  0,
		},
	}
	got := HoldingsMarkdown(views)

	for _, want := range []string{"AAPL", "Apple Inc.", "$182.63", "$1,095.78"} {
		if !strings.Contains(got, want) {
			t.Errorf("holdings missing %q in:\n%s", want, got)
		}
	}
}

func TestHoldingsMarkdown_Empty(t *testing.T) {
	got := HoldingsMarkdown(nil)
	if !strings.Contains(got, "No holdings yet") {
		t.Errorf("empty holdings message missing:\n%s", got)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	points := []papertrade.HistoryPoint{
		{Date: papertrade.NewDate(2026, time.February, 27), Value: papertrade.M(10000)},
		{Date: papertrade.NewDate(2026, time.February, 28), Value: papertrade.M(10120.40)},
	}
	got := HistoryMarkdown(points)

	for _, want := range []string{
		"2026-02-27", "$10,000.00",
		"2026-02-28", "$10,120.40",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("history missing %q in:\n%s", want, got)
		}
	}
}

func TestTransaction(t *testing.T) {
	tx := papertrade.Transaction{
		Date:   time.Date(2026, time.February, 27, 15, 4, 5, 0, time.UTC),
		Action: papertrade.SideBuy,
		Symbol: "AAPL",
		Shares: 10,
		Price:  papertrade.M(182.63),
		Total:  papertrade.M(1826.30),
	}
	got := Transaction(tx)
	want := "Bought 10 AAPL at $182.63 for $1,826.30"
	if got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []papertrade.Transaction{
		{
			Date:   time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
			Action: papertrade.SideSell,
			Symbol: "AAPL",
			Shares: 4,
			Price:  papertrade.M(182.63),
			Total:  papertrade.M(730.52),
		},
	}
	got := TransactionsMarkdown(txs)

	for _, want := range []string{"2026-03-01", "SELL", "AAPL", "$182.63", "$730.52"} {
		if !strings.Contains(got, want) {
			t.Errorf("transactions missing %q in:\n%s", want, got)
		}
	}
}
