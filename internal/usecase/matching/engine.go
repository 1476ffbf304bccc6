package matching

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	orderbookv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/orderbook/v1"
)

// Result is everything one matching pass produced for one fund. All
// trades in a pass share ExecutedAt.
type Result struct {
	Trades     []*orderv1.Trade
	Fills      []orderv1.Fill
	ExecutedAt time.Time
}

// TradeCount returns the number of trades in the result.
func (r *Result) TradeCount() int {
	return len(r.Trades)
}

// Engine pairs crossing orders under price-time priority. It performs
// no I/O: the book in, trades and fills out. The clock and id source
// are injectable so identical books replay to identical results.
type Engine struct {
	now        func() time.Time
	newTradeID func() string
}

// Option configures the engine.
type Option func(*Engine)

// WithClock overrides the execution timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithTradeIDSource overrides the trade id generator.
func WithTradeIDSource(newID func() string) Option {
	return func(e *Engine) {
		e.newTradeID = newID
	}
}

// NewEngine creates a matching engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:        func() time.Time { return time.Now().UTC() },
		newTradeID: func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Match runs the continuous double auction over the book until no
// crossing remains. The book is mutated in place: filled orders are
// removed, partially filled orders keep their position and priority.
//
// Each iteration pairs the best crossing bid and ask whose investors
// differ. The order resting longer sets the trade price; the fill is
// the smaller remaining quantity. Orders sharing an investor on both
// sides are never paired with each other, the scan moves to the next
// best opposite order instead.
func (e *Engine) Match(book orderbookv1.Book) *Result {
	executedAt := e.now()
	result := &Result{ExecutedAt: executedAt}

	for {
		bid, ask := e.nextPair(book)
		if bid == nil || ask == nil {
			break
		}

		resting := orderbookv1.Resting(bid, ask)
		price := resting.Price
		qty := decimal.Min(bid.Quantity, ask.Quantity)

		takerSide := orderv1.SideBuy
		if resting == bid {
			takerSide = orderv1.SideSell
		}

		bidBefore, askBefore := bid.Quantity, ask.Quantity
		bid.ApplyFill(qty, executedAt)
		ask.ApplyFill(qty, executedAt)

		result.Trades = append(result.Trades, &orderv1.Trade{
			ID:          e.newTradeID(),
			FundID:      book.FundID(),
			BuyOrderID:  bid.ID,
			SellOrderID: ask.ID,
			Price:       price,
			Quantity:    qty,
			TakerSide:   takerSide,
			ExecutedAt:  executedAt,
		})
		result.Fills = append(result.Fills,
			orderv1.Fill{
				OrderID:        bid.ID,
				QuantityBefore: bidBefore,
				QuantityAfter:  bid.Quantity,
				Status:         bid.Status,
			},
			orderv1.Fill{
				OrderID:        ask.ID,
				QuantityBefore: askBefore,
				QuantityAfter:  ask.Quantity,
				Status:         ask.Status,
			},
		)

		if bid.IsFilled() {
			book.Remove(bid.ID)
		}
		if ask.IsFilled() {
			book.Remove(ask.ID)
		}
	}

	return result
}

// nextPair returns the best crossing bid/ask pair whose investors
// differ, or nils when no such pair exists. Both sides are scanned in
// priority order, so the first acceptable pair is the best one.
func (e *Engine) nextPair(book orderbookv1.Book) (*orderv1.Order, *orderv1.Order) {
	for _, bid := range book.Bids() {
		for _, ask := range book.Asks() {
			if bid.Price.LessThan(ask.Price) {
				break
			}
			if bid.InvestorID == ask.InvestorID {
				continue
			}
			return bid, ask
		}
	}
	return nil, nil
}
