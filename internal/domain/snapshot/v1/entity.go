package snapshotv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Level aggregates resting quantity at a single price.
type Level struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Orders   int             `json:"orders"`
}

// BookSnapshot is a point-in-time view of one fund's book, published
// after each matching pass for read-side consumers.
type BookSnapshot struct {
	FundID     string    `json:"fundID"`
	CapturedAt time.Time `json:"capturedAt"`
	Bids       []Level   `json:"bids"`
	Asks       []Level   `json:"asks"`
}
