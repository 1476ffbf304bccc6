package order

import (
	"context"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
)

type usecase struct {
	orderRepository orderv1.OrderRepository
	tradeRepository orderv1.TradeRepository
	logger          logger.Interface
}

// NewUsecase creates a new order usecase.
func NewUsecase(
	orderRepository orderv1.OrderRepository,
	tradeRepository orderv1.TradeRepository,
	logger logger.Interface,
) *usecase {
	return &usecase{
		orderRepository: orderRepository,
		tradeRepository: tradeRepository,
		logger:          logger,
	}
}

// SubmitOrder validates and persists a new pending order.
func (u *usecase) SubmitOrder(ctx context.Context, req orderv1.NewOrderRequest) (*orderv1.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := orderv1.NewOrder(req)
	if err := u.orderRepository.Store(ctx, order); err != nil {
		u.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "store_order",
		})
		return nil, err
	}

	u.logger.InfoContext(ctx, "Order submitted",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "fundID", Value: order.FundID},
		logger.Field{Key: "side", Value: order.Side},
	)

	return order, nil
}

// CancelOrder withdraws a non-terminal order.
func (u *usecase) CancelOrder(ctx context.Context, orderID string) error {
	if err := u.orderRepository.Cancel(ctx, orderID); err != nil {
		u.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "cancel_order",
		}, logger.Field{
			Key:   "orderID",
			Value: orderID,
		})
		return err
	}

	u.logger.InfoContext(ctx, "Order cancelled", logger.Field{
		Key:   "orderID",
		Value: orderID,
	})

	return nil
}

// GetOrder gets an order by id.
func (u *usecase) GetOrder(ctx context.Context, orderID string) (*orderv1.Order, error) {
	order, err := u.orderRepository.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders lists orders by filter.
func (u *usecase) ListOrders(ctx context.Context, filter orderv1.Filter) ([]*orderv1.Order, error) {
	orders, err := u.orderRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListTrades lists a fund's most recent trades.
func (u *usecase) ListTrades(ctx context.Context, fundID string, limit int) ([]*orderv1.Trade, error) {
	trades, err := u.tradeRepository.ListByFund(ctx, fundID, limit)
	if err != nil {
		return nil, err
	}
	return trades, nil
}
