package v1

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
)

// Side represents which side of the book an order sits on.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "buy"
	// SideSell represents a sell (ask) order.
	SideSell Side = "sell"
)

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusPending is an order that has not matched yet.
	StatusPending Status = "pending"
	// StatusPartiallyFilled is an order with some quantity executed.
	StatusPartiallyFilled Status = "partially_filled"
	// StatusFilled is an order with no remaining quantity. Terminal.
	StatusFilled Status = "filled"
	// StatusCancelled is an order withdrawn by the investor. Terminal.
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusFilled || s == StatusCancelled
}

// Order represents a single fund purchase or sale order.
// Quantity is the remaining unfilled amount; it only ever decreases.
type Order struct {
	ID               string          `json:"id"`
	FundID           string          `json:"fundID"`
	InvestorID       string          `json:"investorID"`
	Side             Side            `json:"side"`
	Price            decimal.Decimal `json:"price"`
	Quantity         decimal.Decimal `json:"quantity"`
	OriginalQuantity decimal.Decimal `json:"originalQuantity"`
	Status           Status          `json:"status"`
	SubmittedAt      time.Time       `json:"submittedAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// NewOrderRequest represents a request to submit an order.
type NewOrderRequest struct {
	FundID     string          `json:"fundID"`
	InvestorID string          `json:"investorID"`
	Side       Side            `json:"side"`
	Price      decimal.Decimal `json:"price"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// Validate rejects malformed submissions before they can enter a book.
func (r NewOrderRequest) Validate() error {
	if r.FundID == "" {
		return errors.NewErrorDetails("fund id is required", errors.OrderValidationError, "fundID")
	}
	if r.InvestorID == "" {
		return errors.NewErrorDetails("investor id is required", errors.OrderValidationError, "investorID")
	}
	if r.Side != SideBuy && r.Side != SideSell {
		return errors.NewErrorDetails("side must be buy or sell", errors.OrderValidationError, "side")
	}
	if !r.Price.IsPositive() {
		return errors.NewErrorDetails("price must be positive", errors.OrderValidationError, "price")
	}
	if !r.Quantity.IsPositive() {
		return errors.NewErrorDetails("quantity must be positive", errors.OrderValidationError, "quantity")
	}
	return nil
}

// NewOrder creates a pending order from a validated request.
// ULIDs are time-sortable, so id order agrees with submission order
// and breaks exact submitted_at ties deterministically.
func NewOrder(req NewOrderRequest) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:               ulid.Make().String(),
		FundID:           req.FundID,
		InvestorID:       req.InvestorID,
		Side:             req.Side,
		Price:            req.Price,
		Quantity:         req.Quantity,
		OriginalQuantity: req.Quantity,
		Status:           StatusPending,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}
}

// IsBid checks if the order is a buy order.
func (o *Order) IsBid() bool {
	return o.Side == SideBuy
}

// IsAsk checks if the order is a sell order.
func (o *Order) IsAsk() bool {
	return o.Side == SideSell
}

// IsFilled checks if the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Quantity.IsZero()
}

// ApplyFill decrements the remaining quantity and advances the status.
// The caller guarantees qty <= o.Quantity.
func (o *Order) ApplyFill(qty decimal.Decimal, at time.Time) {
	o.Quantity = o.Quantity.Sub(qty)
	if o.Quantity.IsZero() {
		o.Status = StatusFilled
	} else {
		o.Status = StatusPartiallyFilled
	}
	o.UpdatedAt = at
}

// Clone returns a copy the caller may mutate without touching the
// original. decimal.Decimal is immutable, so a shallow copy suffices.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

// Filter represents the filter criteria for listing orders.
type Filter struct {
	FundID        string     `json:"fundID"`
	InvestorID    string     `json:"investorID"`
	Side          Side       `json:"side"`
	Status        Status     `json:"status"`
	From          *time.Time `json:"from"`
	To            *time.Time `json:"to"`
	Limit         int        `json:"limit"`
	Offset        int        `json:"offset"`
	SortDirection string     `json:"sortDirection"`
}
