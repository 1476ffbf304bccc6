package tradepublisherv1

import "context"

// TradePublisher defines the interface for emitting executed trades to
// downstream systems. Delivery is fire-and-forget: the trade is already
// durable, so a failed publish is logged and never rolled back.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=tradepublisherv1_mock
type TradePublisher interface {
	// PublishTradeEvent publishes a trade event to the trades topic.
	PublishTradeEvent(ctx context.Context, payload *TradeEventPayload) error
}
