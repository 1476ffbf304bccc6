package orderbookv1

import (
	"time"

	"github.com/shopspring/decimal"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	snapshotv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/snapshot/v1"
)

// Book defines a single fund's order book: two priority-ranked sides
// holding the fund's non-terminal orders. A book is a disposable view
// owned by the matching pass that built it and is never shared across
// goroutines.
type Book interface {
	FundID() string
	// Insert adds a non-terminal order to its side. Orders for another
	// fund, with non-positive remaining quantity, or already terminal
	// are rejected.
	Insert(o *orderv1.Order) error
	// Remove drops the order from whichever side holds it. Unknown ids
	// are a no-op.
	Remove(orderID string)
	BestBid() *orderv1.Order
	BestAsk() *orderv1.Order
	// Bids and Asks return each side in matching priority order.
	Bids() []*orderv1.Order
	Asks() []*orderv1.Order
	BidTotalQuantity() decimal.Decimal
	AskTotalQuantity() decimal.Decimal
	// Crossed reports whether the best bid price meets or exceeds the
	// best ask price.
	Crossed() bool
	Snapshot(at time.Time) *snapshotv1.BookSnapshot
}
