package papertrade

import "errors"

// Every failure mode of the simulator is recoverable and maps onto one of
// these sentinels; callers match with errors.Is and render an advisory
// message rather than aborting.
var (
	// ErrQuoteNotFound reports a symbol the catalog does not quote.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrInvalidOrder reports a malformed trade intent: a non-positive
	// quantity, an unknown side, or an unresolved symbol.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInsufficientFunds reports a buy whose total exceeds available cash.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares reports a sell of more shares than are held.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrPersistence reports an unreadable or unwritable portfolio store.
	ErrPersistence = errors.New("persistence failure")
)
