package orderbook

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	orderbookv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/orderbook/v1"
	snapshotv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/snapshot/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
)

// Book holds one fund's non-terminal orders in two priority-sorted
// sides. It is built fresh for each matching pass and owned by a
// single goroutine, so it carries no locking.
type Book struct {
	fundID string
	bids   []*orderv1.Order
	asks   []*orderv1.Order
}

var _ orderbookv1.Book = (*Book)(nil)

// NewBook creates an empty book for one fund.
func NewBook(fundID string) *Book {
	return &Book{fundID: fundID}
}

// Build creates a book holding clones of the given orders, so fills
// applied during a pass never leak into the caller's copies.
func Build(fundID string, orders []*orderv1.Order) (*Book, error) {
	b := NewBook(fundID)
	for _, o := range orders {
		if err := b.Insert(o.Clone()); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// FundID returns the fund this book belongs to.
func (b *Book) FundID() string {
	return b.fundID
}

// Insert places an order on its side at its priority position.
func (b *Book) Insert(o *orderv1.Order) error {
	if o.FundID != b.fundID {
		return errors.NewErrorDetails(
			fmt.Sprintf("order %s belongs to fund %s, not %s", o.ID, o.FundID, b.fundID),
			errors.OrderValidationError,
			"fundID",
		)
	}
	if !o.Quantity.IsPositive() {
		return errors.NewErrorDetails(
			fmt.Sprintf("order %s has non-positive remaining quantity", o.ID),
			errors.OrderValidationError,
			"quantity",
		)
	}
	if o.Status.IsTerminal() {
		return errors.NewErrorDetails(
			fmt.Sprintf("order %s is already %s", o.ID, o.Status),
			errors.OrderAlreadyTerminal,
			"status",
		)
	}

	if o.IsBid() {
		b.bids = insertRanked(b.bids, o, orderbookv1.BidBefore)
	} else {
		b.asks = insertRanked(b.asks, o, orderbookv1.AskBefore)
	}
	return nil
}

func insertRanked(side []*orderv1.Order, o *orderv1.Order, before func(a, b *orderv1.Order) bool) []*orderv1.Order {
	idx := sort.Search(len(side), func(i int) bool {
		return before(o, side[i])
	})
	side = append(side, nil)
	copy(side[idx+1:], side[idx:])
	side[idx] = o
	return side
}

// Remove drops the order from whichever side holds it.
func (b *Book) Remove(orderID string) {
	if side, ok := removeByID(b.bids, orderID); ok {
		b.bids = side
		return
	}
	if side, ok := removeByID(b.asks, orderID); ok {
		b.asks = side
	}
}

func removeByID(side []*orderv1.Order, orderID string) ([]*orderv1.Order, bool) {
	for i, o := range side {
		if o.ID == orderID {
			return append(side[:i], side[i+1:]...), true
		}
	}
	return side, false
}

// BestBid returns the highest-priority bid, or nil when the side is empty.
func (b *Book) BestBid() *orderv1.Order {
	if len(b.bids) == 0 {
		return nil
	}
	return b.bids[0]
}

// BestAsk returns the highest-priority ask, or nil when the side is empty.
func (b *Book) BestAsk() *orderv1.Order {
	if len(b.asks) == 0 {
		return nil
	}
	return b.asks[0]
}

// Bids returns the bid side in priority order. The slice is shared
// with the book; callers must not mutate it.
func (b *Book) Bids() []*orderv1.Order {
	return b.bids
}

// Asks returns the ask side in priority order. The slice is shared
// with the book; callers must not mutate it.
func (b *Book) Asks() []*orderv1.Order {
	return b.asks
}

// BidTotalQuantity returns the summed remaining quantity of all bids.
func (b *Book) BidTotalQuantity() decimal.Decimal {
	return totalQuantity(b.bids)
}

// AskTotalQuantity returns the summed remaining quantity of all asks.
func (b *Book) AskTotalQuantity() decimal.Decimal {
	return totalQuantity(b.asks)
}

func totalQuantity(side []*orderv1.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range side {
		total = total.Add(o.Quantity)
	}
	return total
}

// Crossed reports whether the best bid meets or exceeds the best ask.
func (b *Book) Crossed() bool {
	bid, ask := b.BestBid(), b.BestAsk()
	if bid == nil || ask == nil {
		return false
	}
	return bid.Price.GreaterThanOrEqual(ask.Price)
}

// Snapshot aggregates both sides into price levels in priority order.
func (b *Book) Snapshot(at time.Time) *snapshotv1.BookSnapshot {
	return &snapshotv1.BookSnapshot{
		FundID:     b.fundID,
		CapturedAt: at,
		Bids:       aggregateLevels(b.bids),
		Asks:       aggregateLevels(b.asks),
	}
}

func aggregateLevels(side []*orderv1.Order) []snapshotv1.Level {
	levels := []snapshotv1.Level{}
	for _, o := range side {
		if n := len(levels); n > 0 && levels[n-1].Price.Equal(o.Price) {
			levels[n-1].Quantity = levels[n-1].Quantity.Add(o.Quantity)
			levels[n-1].Orders++
			continue
		}
		levels = append(levels, snapshotv1.Level{
			Price:    o.Price,
			Quantity: o.Quantity,
			Orders:   1,
		})
	}
	return levels
}
