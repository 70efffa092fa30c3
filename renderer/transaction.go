package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/investifyx/papertrade"
	md "github.com/nao1215/markdown"
)

// Transaction renders a single transaction to a one-line confirmation.
func Transaction(tx papertrade.Transaction) string {
	switch tx.Action {
	case papertrade.SideBuy:
		return fmt.Sprintf("Bought %d %s at %s for %s", tx.Shares, tx.Symbol, tx.Price, tx.Total)
	case papertrade.SideSell:
		return fmt.Sprintf("Sold %d %s at %s for %s", tx.Shares, tx.Symbol, tx.Price, tx.Total)
	default:
		return tx.String()
	}
}

// TransactionsMarkdown renders the transaction log, newest first.
func TransactionsMarkdown(txs []papertrade.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction History")

	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Action", "Symbol", "Shares", "Price", "Total"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Day().String(),
			strings.ToUpper(string(tx.Action)),
			tx.Symbol,
			strconv.Itoa(tx.Shares),
			tx.Price.String(),
			tx.Total.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
