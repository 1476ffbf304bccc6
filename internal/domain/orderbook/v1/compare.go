package orderbookv1

import (
	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
)

// BidBefore reports whether a outranks b on the bid side: higher price
// first, then earlier submission, then lower id.
func BidBefore(a, b *orderv1.Order) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.GreaterThan(b.Price)
	}
	return earlierThenID(a, b)
}

// AskBefore reports whether a outranks b on the ask side: lower price
// first, then earlier submission, then lower id.
func AskBefore(a, b *orderv1.Order) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.LessThan(b.Price)
	}
	return earlierThenID(a, b)
}

func earlierThenID(a, b *orderv1.Order) bool {
	if !a.SubmittedAt.Equal(b.SubmittedAt) {
		return a.SubmittedAt.Before(b.SubmittedAt)
	}
	return a.ID < b.ID
}

// Resting returns whichever of the two crossing orders has been in the
// book longer. Its price sets the trade price. An exact submitted_at
// tie falls back to the lower id so the outcome stays deterministic.
func Resting(bid, ask *orderv1.Order) *orderv1.Order {
	if !bid.SubmittedAt.Equal(ask.SubmittedAt) {
		if bid.SubmittedAt.Before(ask.SubmittedAt) {
			return bid
		}
		return ask
	}
	if bid.ID < ask.ID {
		return bid
	}
	return ask
}
