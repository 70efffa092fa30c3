package renderer

import (
	"bytes"
	"fmt"

	"github.com/investifyx/papertrade"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio valuation summary.
func SummaryMarkdown(v papertrade.Valuation, on papertrade.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))
	doc.PlainText(fmt.Sprintf("Total Value: %s", md.Bold(v.TotalValue.String())))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Available Cash", v.Cash.String()},
			{"Total Gain/Loss", v.Change.SignedString()},
			{"Return", v.ChangePercent.SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}
