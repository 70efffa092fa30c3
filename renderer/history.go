package renderer

import (
	"bytes"

	"github.com/investifyx/papertrade"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the day-by-day portfolio value series.
func HistoryMarkdown(points []papertrade.HistoryPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Value.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
