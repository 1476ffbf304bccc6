package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
)

const orderColumns = "id, fund_id, investor_id, side, price, quantity, original_quantity, status, submitted_at, updated_at"

type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

var _ orderv1.OrderRepository = (*repository)(nil)

// NewRepository creates a new order repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Store stores a new order.
func (r *repository) Store(ctx context.Context, order *orderv1.Order) error {
	query, args := postgresql.NewInsertBuilder().
		Into("orders").
		Columns(
			"id",
			"fund_id",
			"investor_id",
			"side",
			"price",
			"quantity",
			"original_quantity",
			"status",
			"submitted_at",
			"updated_at",
		).
		Values(
			order.ID,
			order.FundID,
			order.InvestorID,
			order.Side,
			order.Price,
			order.Quantity,
			order.OriginalQuantity,
			order.Status,
			order.SubmittedAt,
			order.UpdatedAt,
		).
		Build()

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted order", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// GetByID gets an order by id.
func (r *repository) GetByID(ctx context.Context, id string) (*orderv1.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order := &orderv1.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.FundID,
		&order.InvestorID,
		&order.Side,
		&order.Price,
		&order.Quantity,
		&order.OriginalQuantity,
		&order.Status,
		&order.SubmittedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.NewErrorDetails("order not found", errors.OrderNotFound, "id")
		}
		return nil, errors.TracerFromError(err)
	}

	return order, nil
}

// List lists orders by filter.
func (r *repository) List(ctx context.Context, filter orderv1.Filter) ([]*orderv1.Order, error) {
	qb := postgresql.NewQueryBuilder().
		Select(orderColumns).
		From("orders")

	if filter.FundID != "" {
		qb.Where("fund_id = ?", filter.FundID)
	}
	if filter.InvestorID != "" {
		qb.Where("investor_id = ?", filter.InvestorID)
	}
	if filter.Side != "" {
		qb.Where("side = ?", filter.Side)
	}
	if filter.Status != "" {
		qb.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		qb.Where("submitted_at >= ?", *filter.From)
	}
	if filter.To != nil {
		qb.Where("submitted_at <= ?", *filter.To)
	}

	qb.OrderBy("submitted_at", filter.SortDirection != "asc")

	if filter.Limit > 0 {
		qb.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		qb.Offset(filter.Offset)
	}

	query, args := qb.Build()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// ListActiveByFund returns the fund's non-terminal orders in
// submission order.
func (r *repository) ListActiveByFund(ctx context.Context, fundID string) ([]*orderv1.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE fund_id = $1 AND status IN ($2, $3)
		ORDER BY submitted_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, fundID, orderv1.StatusPending, orderv1.StatusPartiallyFilled)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// ActiveFundIDs returns the funds that currently have at least one
// non-terminal order.
func (r *repository) ActiveFundIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT fund_id FROM orders WHERE status IN ($1, $2) ORDER BY fund_id`

	rows, err := r.db.Query(ctx, query, orderv1.StatusPending, orderv1.StatusPartiallyFilled)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	fundIDs := []string{}
	for rows.Next() {
		var fundID string
		if err := rows.Scan(&fundID); err != nil {
			return nil, errors.TracerFromError(err)
		}
		fundIDs = append(fundIDs, fundID)
	}

	return fundIDs, nil
}

// ApplyFill writes one fill back, guarded by the remaining quantity
// the matching pass observed. Zero rows affected means the order was
// mutated or cancelled since the book was built.
func (r *repository) ApplyFill(ctx context.Context, fill orderv1.Fill, at time.Time) error {
	query, args := postgresql.NewUpdateBuilder().
		Table("orders").
		Set("quantity", fill.QuantityAfter).
		Set("status", fill.Status).
		Set("updated_at", at).
		Where("id = ?", fill.OrderID).
		Where("quantity = ?", fill.QuantityBefore).
		Where("status IN ('pending', 'partially_filled')").
		Build()

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.TracerFromError(err)
	}

	if cmd.RowsAffected() == 0 {
		return errors.NewErrorDetails(
			"order changed since book load, fill rolled back",
			errors.OrderConcurrencyConflict,
			"quantity",
		)
	}

	return nil
}

// Cancel transitions a non-terminal order to cancelled.
func (r *repository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE orders SET status = $1, updated_at = $2
		WHERE id = $3 AND status IN ($4, $5)`

	cmd, err := r.db.Exec(ctx, query,
		orderv1.StatusCancelled,
		time.Now().UTC(),
		id,
		orderv1.StatusPending,
		orderv1.StatusPartiallyFilled,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	if cmd.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return errors.NewErrorDetails("order is already filled or cancelled", errors.OrderAlreadyTerminal, "status")
	}

	return nil
}

func scanOrders(rows postgresql.RowsInterface) ([]*orderv1.Order, error) {
	orders := []*orderv1.Order{}
	for rows.Next() {
		order := &orderv1.Order{}
		err := rows.Scan(
			&order.ID,
			&order.FundID,
			&order.InvestorID,
			&order.Side,
			&order.Price,
			&order.Quantity,
			&order.OriginalQuantity,
			&order.Status,
			&order.SubmittedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}
