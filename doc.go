// Package papertrade implements a paper-trading simulator: a single
// portfolio of virtual cash and stock holdings, traded against a fixed
// catalog of quotes and persisted through a small key-value port.
//
// The package is organized around four pieces:
//
//   - Catalog: the static symbol -> Quote table (read-only).
//   - Portfolio and Store: the aggregate state (cash, holdings, transaction
//     log) and its persistence boundary.
//   - Simulator: validates and executes buy and sell orders against the
//     portfolio and the catalog.
//   - Valuation and history: display-ready aggregates derived from the
//     portfolio and the catalog.
//
// All operations are synchronous and assume a single logical writer; there
// is no market-data feed, no order book, and no settlement model.
package papertrade
