package order

import (
	"context"
	goerrors "errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	mockLogger "github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger/mock"
	mockPg "github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql/mock"
)

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scanFn(dest...)
}

func testOrder(now time.Time) *orderv1.Order {
	return &orderv1.Order{
		ID:               "01JD0000000000000000000001",
		FundID:           "FUND-1",
		InvestorID:       "alice",
		Side:             orderv1.SideBuy,
		Price:            decimal.RequireFromString("100.5"),
		Quantity:         decimal.RequireFromString("10"),
		OriginalQuantity: decimal.RequireFromString("10"),
		Status:           orderv1.StatusPending,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}
}

func TestOrderRepository_Store(t *testing.T) {
	ctx := context.Background()
	query := `INSERT INTO orders (id, fund_id, investor_id, side, price, quantity, original_quantity, status, submitted_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *orderv1.Order)
		testData *orderv1.Order
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *orderv1.Order) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.FundID,
						tc.InvestorID,
						tc.Side,
						tc.Price,
						tc.Quantity,
						tc.OriginalQuantity,
						tc.Status,
						tc.SubmittedAt,
						tc.UpdatedAt,
					).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

				mockLogger.EXPECT().
					Info("Inserted order", logger.Field{
						Key:   "commandTag",
						Value: "INSERT 0 1",
					})
			},
			testData: testOrder(now),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *orderv1.Order) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.FundID,
						tc.InvestorID,
						tc.Side,
						tc.Price,
						tc.Quantity,
						tc.OriginalQuantity,
						tc.Status,
						tc.SubmittedAt,
						tc.UpdatedAt,
					).Return(pgconn.CommandTag{}, goerrors.New("error"))
			},
			testData: testOrder(now),
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, tc.testData)

			err := repo.Store(ctx, tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestOrderRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	query := `SELECT id, fund_id, investor_id, side, price, quantity, original_quantity, status, submitted_at, updated_at FROM orders WHERE id = $1`
	now := time.Now().UTC()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, tc *orderv1.Order)
		testData *orderv1.Order
		assertFn func(t *testing.T, err error, tc *orderv1.Order, order *orderv1.Order)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, tc *orderv1.Order) {
				mockpg.EXPECT().
					QueryRow(ctx, query, tc.ID).
					Return(fakeRow{scanFn: func(dest ...any) error {
						*dest[0].(*string) = tc.ID
						*dest[1].(*string) = tc.FundID
						*dest[2].(*string) = tc.InvestorID
						*dest[3].(*orderv1.Side) = tc.Side
						*dest[4].(*decimal.Decimal) = tc.Price
						*dest[5].(*decimal.Decimal) = tc.Quantity
						*dest[6].(*decimal.Decimal) = tc.OriginalQuantity
						*dest[7].(*orderv1.Status) = tc.Status
						*dest[8].(*time.Time) = tc.SubmittedAt
						*dest[9].(*time.Time) = tc.UpdatedAt
						return nil
					}})
			},
			testData: testOrder(now),
			assertFn: func(t *testing.T, err error, tc *orderv1.Order, order *orderv1.Order) {
				assert.NoError(t, err)
				assert.Equal(t, tc, order)
			},
		},
		{
			name: "error: no rows",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, tc *orderv1.Order) {
				mockpg.EXPECT().
					QueryRow(ctx, query, tc.ID).
					Return(fakeRow{scanFn: func(dest ...any) error {
						return pgx.ErrNoRows
					}})
			},
			testData: testOrder(now),
			assertFn: func(t *testing.T, err error, tc *orderv1.Order, order *orderv1.Order) {
				assert.Error(t, err)
				assert.Nil(t, order)
				assert.Equal(t, errors.OrderNotFound, errors.CodeOf(err))
			},
		},
		{
			name: "error: query fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, tc *orderv1.Order) {
				mockpg.EXPECT().
					QueryRow(ctx, query, tc.ID).
					Return(fakeRow{scanFn: func(dest ...any) error {
						return goerrors.New("error")
					}})
			},
			testData: testOrder(now),
			assertFn: func(t *testing.T, err error, tc *orderv1.Order, order *orderv1.Order) {
				assert.Error(t, err)
				assert.Nil(t, order)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, tc.testData)

			order, err := repo.GetByID(ctx, tc.testData.ID)
			tc.assertFn(t, err, tc.testData, order)
		})
	}
}

func TestOrderRepository_List(t *testing.T) {
	ctx := context.Background()
	query := `SELECT id, fund_id, investor_id, side, price, quantity, original_quantity, status, submitted_at, updated_at FROM orders WHERE fund_id = $1 AND status = $2 ORDER BY submitted_at DESC LIMIT $3`
	now := time.Now().UTC()
	filter := orderv1.Filter{
		FundID: "FUND-1",
		Status: orderv1.StatusPending,
		Limit:  10,
	}
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface)
		assertFn func(t *testing.T, err error, orders []*orderv1.Order)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, query, filter.FundID, filter.Status, filter.Limit).
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					source := testOrder(now)
					*dest[0].(*string) = source.ID
					*dest[1].(*string) = source.FundID
					*dest[2].(*string) = source.InvestorID
					*dest[3].(*orderv1.Side) = source.Side
					*dest[4].(*decimal.Decimal) = source.Price
					*dest[5].(*decimal.Decimal) = source.Quantity
					*dest[6].(*decimal.Decimal) = source.OriginalQuantity
					*dest[7].(*orderv1.Status) = source.Status
					*dest[8].(*time.Time) = source.SubmittedAt
					*dest[9].(*time.Time) = source.UpdatedAt
					return nil
				})
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, orders []*orderv1.Order) {
				assert.NoError(t, err)
				assert.Len(t, orders, 1)
				assert.Equal(t, "FUND-1", orders[0].FundID)
			},
		},
		{
			name: "error: query fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, query, filter.FundID, filter.Status, filter.Limit).
					Return(mockRows, goerrors.New("error"))
			},
			assertFn: func(t *testing.T, err error, orders []*orderv1.Order) {
				assert.Error(t, err)
				assert.Nil(t, orders)
			},
		},
		{
			name: "error: scan fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, query, filter.FundID, filter.Status, filter.Limit).
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).Return(goerrors.New("error"))
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, orders []*orderv1.Order) {
				assert.Error(t, err)
				assert.Nil(t, orders)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)
			rows := mockPg.NewMockRowsInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, rows)

			orders, err := repo.List(ctx, filter)
			tc.assertFn(t, err, orders)
		})
	}
}

func TestOrderRepository_ListActiveByFund(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface)
		assertFn func(t *testing.T, err error, orders []*orderv1.Order)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, gomock.Any(), "FUND-1", orderv1.StatusPending, orderv1.StatusPartiallyFilled).
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					source := testOrder(now)
					*dest[0].(*string) = source.ID
					*dest[1].(*string) = source.FundID
					*dest[2].(*string) = source.InvestorID
					*dest[3].(*orderv1.Side) = source.Side
					*dest[4].(*decimal.Decimal) = source.Price
					*dest[5].(*decimal.Decimal) = source.Quantity
					*dest[6].(*decimal.Decimal) = source.OriginalQuantity
					*dest[7].(*orderv1.Status) = source.Status
					*dest[8].(*time.Time) = source.SubmittedAt
					*dest[9].(*time.Time) = source.UpdatedAt
					return nil
				})
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, orders []*orderv1.Order) {
				assert.NoError(t, err)
				assert.Len(t, orders, 1)
			},
		},
		{
			name: "error: query fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, gomock.Any(), "FUND-1", orderv1.StatusPending, orderv1.StatusPartiallyFilled).
					Return(mockRows, goerrors.New("error"))
			},
			assertFn: func(t *testing.T, err error, orders []*orderv1.Order) {
				assert.Error(t, err)
				assert.Nil(t, orders)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)
			rows := mockPg.NewMockRowsInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, rows)

			orders, err := repo.ListActiveByFund(ctx, "FUND-1")
			tc.assertFn(t, err, orders)
		})
	}
}

func TestOrderRepository_ActiveFundIDs(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface)
		assertFn func(t *testing.T, err error, fundIDs []string)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, gomock.Any(), orderv1.StatusPending, orderv1.StatusPartiallyFilled).
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*string) = "FUND-1"
					return nil
				})
				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*string) = "FUND-2"
					return nil
				})
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, fundIDs []string) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"FUND-1", "FUND-2"}, fundIDs)
			},
		},
		{
			name: "no active funds",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, gomock.Any(), orderv1.StatusPending, orderv1.StatusPartiallyFilled).
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, fundIDs []string) {
				assert.NoError(t, err)
				assert.Empty(t, fundIDs)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)
			rows := mockPg.NewMockRowsInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, rows)

			fundIDs, err := repo.ActiveFundIDs(ctx)
			tc.assertFn(t, err, fundIDs)
		})
	}
}

func TestOrderRepository_ApplyFill(t *testing.T) {
	ctx := context.Background()
	query := `UPDATE orders SET quantity = $1, status = $2, updated_at = $3 WHERE id = $4 AND quantity = $5 AND status IN ('pending', 'partially_filled')`
	at := time.Now().UTC()
	fill := orderv1.Fill{
		OrderID:        "01JD0000000000000000000001",
		QuantityBefore: decimal.RequireFromString("10"),
		QuantityAfter:  decimal.RequireFromString("4"),
		Status:         orderv1.StatusPartiallyFilled,
	}
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, query,
						fill.QuantityAfter,
						fill.Status,
						at,
						fill.OrderID,
						fill.QuantityBefore,
					).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "conflict: zero rows affected",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, query,
						fill.QuantityAfter,
						fill.Status,
						at,
						fill.OrderID,
						fill.QuantityBefore,
					).Return(pgconn.NewCommandTag("UPDATE 0"), nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.OrderConcurrencyConflict, errors.CodeOf(err))
			},
		},
		{
			name: "error: exec fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, query,
						fill.QuantityAfter,
						fill.Status,
						at,
						fill.OrderID,
						fill.QuantityBefore,
					).Return(pgconn.CommandTag{}, goerrors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg)

			err := repo.ApplyFill(ctx, fill, at)
			tc.assertFn(t, err)
		})
	}
}

func TestOrderRepository_Cancel(t *testing.T) {
	ctx := context.Background()
	id := "01JD0000000000000000000001"
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, gomock.Any(),
						orderv1.StatusCancelled,
						gomock.Any(),
						id,
						orderv1.StatusPending,
						orderv1.StatusPartiallyFilled,
					).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "already terminal",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, gomock.Any(),
						orderv1.StatusCancelled,
						gomock.Any(),
						id,
						orderv1.StatusPending,
						orderv1.StatusPartiallyFilled,
					).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

				mockpg.EXPECT().
					QueryRow(ctx, gomock.Any(), id).
					Return(fakeRow{scanFn: func(dest ...any) error {
						*dest[0].(*string) = id
						*dest[7].(*orderv1.Status) = orderv1.StatusFilled
						return nil
					}})
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.OrderAlreadyTerminal, errors.CodeOf(err))
			},
		},
		{
			name: "not found",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient) {
				mockpg.EXPECT().
					Exec(ctx, gomock.Any(),
						orderv1.StatusCancelled,
						gomock.Any(),
						id,
						orderv1.StatusPending,
						orderv1.StatusPartiallyFilled,
					).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

				mockpg.EXPECT().
					QueryRow(ctx, gomock.Any(), id).
					Return(fakeRow{scanFn: func(dest ...any) error {
						return pgx.ErrNoRows
					}})
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.OrderNotFound, errors.CodeOf(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg)

			err := repo.Cancel(ctx, id)
			tc.assertFn(t, err)
		})
	}
}
