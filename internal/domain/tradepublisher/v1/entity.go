package tradepublisherv1

import (
	"time"

	"github.com/shopspring/decimal"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
)

// TradeEventPayload is the wire form of an executed trade, consumed by
// notification and settlement systems.
type TradeEventPayload struct {
	TradeID     string          `json:"tradeID"`
	FundID      string          `json:"fundID"`
	BuyOrderID  string          `json:"buyOrderID"`
	SellOrderID string          `json:"sellOrderID"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	TakerSide   string          `json:"takerSide"`
	ExecutedAt  time.Time       `json:"executedAt"`
}

// FromTrade builds the event payload for a persisted trade.
func FromTrade(t *orderv1.Trade) *TradeEventPayload {
	return &TradeEventPayload{
		TradeID:     t.ID,
		FundID:      t.FundID,
		BuyOrderID:  t.BuyOrderID,
		SellOrderID: t.SellOrderID,
		Price:       t.Price,
		Quantity:    t.Quantity,
		TakerSide:   string(t.TakerSide),
		ExecutedAt:  t.ExecutedAt,
	}
}
