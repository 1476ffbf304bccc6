package util

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type key string

const (
	requestIDKey  = key("x-request-id")
	investorIDKey = key("investor-id")
)

// WithRequestID returns a context carrying the given request id.
// A new uuid-v4 id is generated when id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request id from ctx, or "" if not present.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithInvestorID returns a context carrying the acting investor id.
func WithInvestorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, investorIDKey, id)
}

// GetInvestorID returns the acting investor id from ctx, or "" if not present.
func GetInvestorID(ctx context.Context) string {
	id, _ := ctx.Value(investorIDKey).(string)
	return id
}

// TimePointer converts a time.Time to a pointer to a time.Time.
func TimePointer(t time.Time) *time.Time {
	return &t
}
