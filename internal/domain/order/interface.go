package order

import (
	"context"

	v1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock

// Usecase is the order submission and lifecycle surface consumed by
// the API layer.
type Usecase interface {
	// SubmitOrder validates and persists a new pending order. Malformed
	// submissions are rejected and never reach a book.
	SubmitOrder(ctx context.Context, req v1.NewOrderRequest) (*v1.Order, error)
	// CancelOrder withdraws a non-terminal order. The cancellation takes
	// effect no later than the next tick's book construction.
	CancelOrder(ctx context.Context, orderID string) error
	GetOrder(ctx context.Context, orderID string) (*v1.Order, error)
	ListOrders(ctx context.Context, filter v1.Filter) ([]*v1.Order, error)
	ListTrades(ctx context.Context, fundID string, limit int) ([]*v1.Trade, error)
}
