package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents one execution pairing a buy and a sell order.
// Price is always the resting order's price, never the aggressor's.
type Trade struct {
	ID          string          `json:"id"`
	FundID      string          `json:"fundID"`
	BuyOrderID  string          `json:"buyOrderID"`
	SellOrderID string          `json:"sellOrderID"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	TakerSide   Side            `json:"takerSide"`
	ExecutedAt  time.Time       `json:"executedAt"`
}

// Fill records the quantity transition a trade applied to one order.
// QuantityBefore doubles as the optimistic-concurrency guard when the
// fill is written back to the store.
type Fill struct {
	OrderID        string          `json:"orderID"`
	QuantityBefore decimal.Decimal `json:"quantityBefore"`
	QuantityAfter  decimal.Decimal `json:"quantityAfter"`
	Status         Status          `json:"status"`
}
