package errors

import goerrors "errors"

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// OrderValidationError represents a malformed order submission:
	// non-positive price or quantity, missing fund or investor.
	OrderValidationError ErrorCode = "order_validation_failed"
	// OrderAlreadyTerminal represents a mutation attempt on an order
	// that is already filled or cancelled.
	OrderAlreadyTerminal ErrorCode = "order_already_terminal"
	// OrderConcurrencyConflict represents an order that changed between
	// book load and fill write-back. The pass rolls back for that fund
	// and the order is retried on the next tick.
	OrderConcurrencyConflict ErrorCode = "order_concurrency_conflict"
	// OrderNotFound represents a lookup for an unknown order id.
	OrderNotFound ErrorCode = "order_not_found"

	// StoreIOError represents a persistence failure during a matching pass.
	StoreIOError ErrorCode = "store_io_error"
	// TickSkipped marks a tick that fired while a pass was still running.
	// Informational, never fatal to the coordinator.
	TickSkipped ErrorCode = "tick_skipped"
	// TradePublishError represents a failed trade event delivery.
	// Delivery is best-effort; the trade itself is already durable.
	TradePublishError ErrorCode = "trade_publish_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisSetNXError represents an error when setting a value in Redis with SetNX.
	RedisSetNXError ErrorCode = "redis_setnx_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
)

// CodeOf returns the error code carried by err, or "" when err carries
// none. Wrapped errors are unwrapped until an ErrorDetails is found.
func CodeOf(err error) ErrorCode {
	var details *ErrorDetails
	if !goerrors.As(err, &details) {
		return ""
	}
	return ErrorCode(details.Code)
}

// HasCode checks whether a given error carries a specific code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
