package v1

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// OrderRepository represents the durable store for orders.
type OrderRepository interface {
	Store(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, error)
	// ListActiveByFund returns the fund's pending and partially filled
	// orders in submission order.
	ListActiveByFund(ctx context.Context, fundID string) ([]*Order, error)
	// ActiveFundIDs returns the funds that currently have at least one
	// non-terminal order.
	ActiveFundIDs(ctx context.Context) ([]string, error)
	// ApplyFill writes one fill back guarded by the order's expected
	// remaining quantity. A concurrent mutation surfaces as an
	// order_concurrency_conflict error.
	ApplyFill(ctx context.Context, fill Fill, at time.Time) error
	// Cancel transitions a non-terminal order to cancelled. Terminal
	// orders surface order_already_terminal.
	Cancel(ctx context.Context, id string) error
}

// TradeRepository represents the durable store for executed trades.
type TradeRepository interface {
	Store(ctx context.Context, trade *Trade) error
	StoreBatch(ctx context.Context, trades []*Trade) error
	ListByFund(ctx context.Context, fundID string, limit int) ([]*Trade, error)
}
