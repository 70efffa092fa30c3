package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/investifyx/papertrade"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the current positions with their unrealized
// gain against average cost.
func HoldingsMarkdown(views []papertrade.HoldingView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")

	if len(views) == 0 {
		doc.PlainText("No holdings yet. Buy a stock to get started.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Shares", "Avg Cost", "Value", "Gain/Loss", "Return"},
		Rows:   [][]string{},
	}
	for _, h := range views {
		table.Rows = append(table.Rows, []string{
			h.Symbol,
			h.Name,
			strconv.Itoa(h.Shares),
			h.AvgCost.String(),
			h.CurrentValue.String(),
			h.Gain.SignedString(),
			h.GainPercent.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// QuoteMarkdown renders a single quote, optionally with an order preview.
func QuoteMarkdown(q papertrade.Quote, preview *papertrade.OrderPreview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s — %s", q.Symbol, q.Name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Price", q.Price.String()},
			{"Previous Close", q.PreviousClose.String()},
			{"Day Change", fmt.Sprintf("%s (%s)", q.Change.SignedString(), q.ChangePercent.SignedString())},
			{"Sector", q.Sector},
		},
	}
	doc.Table(table)

	if preview != nil {
		doc.H2("Order Preview")
		doc.PlainText(fmt.Sprintf("%s %d × %s = %s",
			preview.Side, preview.Shares, preview.Quote.Price, md.Bold(preview.EstimatedTotal.String())))
	}

	return doc.String()
}
