package trade

import (
	"context"

	"github.com/jackc/pgx/v5"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
)

const tradeColumns = "id, fund_id, buy_order_id, sell_order_id, price, quantity, taker_side, executed_at"

type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

var _ orderv1.TradeRepository = (*repository)(nil)

// NewRepository creates a new trade repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Store stores one trade.
func (r *repository) Store(ctx context.Context, trade *orderv1.Trade) error {
	query, args := postgresql.NewInsertBuilder().
		Into("trades").
		Columns(
			"id",
			"fund_id",
			"buy_order_id",
			"sell_order_id",
			"price",
			"quantity",
			"taker_side",
			"executed_at",
		).
		Values(
			trade.ID,
			trade.FundID,
			trade.BuyOrderID,
			trade.SellOrderID,
			trade.Price,
			trade.Quantity,
			trade.TakerSide,
			trade.ExecutedAt,
		).
		Build()

	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted trade", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// StoreBatch stores a matching pass's trades in one round trip.
func (r *repository) StoreBatch(ctx context.Context, trades []*orderv1.Trade) error {
	copyCount, err := r.db.CopyFrom(ctx, pgx.Identifier{"trades"}, []string{
		"id",
		"fund_id",
		"buy_order_id",
		"sell_order_id",
		"price",
		"quantity",
		"taker_side",
		"executed_at",
	}, pgx.CopyFromSlice(len(trades), func(i int) ([]any, error) {
		trade := trades[i]
		return []any{
			trade.ID,
			trade.FundID,
			trade.BuyOrderID,
			trade.SellOrderID,
			trade.Price,
			trade.Quantity,
			trade.TakerSide,
			trade.ExecutedAt,
		}, nil
	}))
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted batch of trades", logger.Field{
		Key:   "copyCount",
		Value: copyCount,
	})

	return nil
}

// ListByFund lists a fund's most recent trades.
func (r *repository) ListByFund(ctx context.Context, fundID string, limit int) ([]*orderv1.Trade, error) {
	qb := postgresql.NewQueryBuilder().
		Select(tradeColumns).
		From("trades").
		Where("fund_id = ?", fundID).
		OrderBy("executed_at", true).
		OrderBy("id", true)

	if limit > 0 {
		qb.Limit(limit)
	}

	query, args := qb.Build()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	trades := []*orderv1.Trade{}
	for rows.Next() {
		trade := &orderv1.Trade{}
		err := rows.Scan(
			&trade.ID,
			&trade.FundID,
			&trade.BuyOrderID,
			&trade.SellOrderID,
			&trade.Price,
			&trade.Quantity,
			&trade.TakerSide,
			&trade.ExecutedAt,
		)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		trades = append(trades, trade)
	}

	return trades, nil
}
