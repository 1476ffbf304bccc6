package order

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
)

type RepositoryTestSuite struct {
	suite.Suite
	helper *postgresql.TestHelper
	repo   orderv1.OrderRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests
func (suite *RepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../../migrations")
	require.NoError(suite.T(), err)

	config := &postgresql.TestContainerConfig{
		Image:            "postgres:15-alpine",
		Database:         "order_test_db",
		Username:         "order_test_user",
		Password:         "order_test_pass",
		MigrationsPath:   migrationsPath,
		MigrationPattern: "*.up.sql",
		StartupTimeout:   3 * time.Minute,
	}

	suite.helper = postgresql.NewTestHelperWithConfig(suite.T(), config)

	log, err := logger.NewLogger()
	require.NoError(suite.T(), err)
	suite.repo = NewRepository(suite.helper.GetClient(), log)
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	suite.helper.TruncateTables("trades", "orders")
}

func (suite *RepositoryTestSuite) newStoredOrder(id, fundID, investorID string, side orderv1.Side, price, qty string, submittedAt time.Time) *orderv1.Order {
	order := &orderv1.Order{
		ID:               id,
		FundID:           fundID,
		InvestorID:       investorID,
		Side:             side,
		Price:            decimal.RequireFromString(price),
		Quantity:         decimal.RequireFromString(qty),
		OriginalQuantity: decimal.RequireFromString(qty),
		Status:           orderv1.StatusPending,
		SubmittedAt:      submittedAt,
		UpdatedAt:        submittedAt,
	}
	require.NoError(suite.T(), suite.repo.Store(suite.ctx, order))
	return order
}

func (suite *RepositoryTestSuite) TestStoreAndGetByID() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	stored := suite.newStoredOrder("01JD0000000000000000000001", "FUND-1", "alice", orderv1.SideBuy, "100.12345678", "10", now)

	got, err := suite.repo.GetByID(suite.ctx, stored.ID)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), stored.ID, got.ID)
	assert.Equal(suite.T(), stored.FundID, got.FundID)
	assert.Equal(suite.T(), stored.InvestorID, got.InvestorID)
	assert.Equal(suite.T(), stored.Side, got.Side)
	assert.True(suite.T(), got.Price.Equal(stored.Price), "price survived the round trip")
	assert.True(suite.T(), got.Quantity.Equal(stored.Quantity))
	assert.Equal(suite.T(), orderv1.StatusPending, got.Status)
	assert.WithinDuration(suite.T(), now, got.SubmittedAt, time.Millisecond)
}

func (suite *RepositoryTestSuite) TestStoreDuplicateID() {
	now := time.Now().UTC()
	suite.newStoredOrder("01JD0000000000000000000001", "FUND-1", "alice", orderv1.SideBuy, "100", "10", now)

	dup := &orderv1.Order{
		ID:               "01JD0000000000000000000001",
		FundID:           "FUND-2",
		InvestorID:       "bob",
		Side:             orderv1.SideSell,
		Price:            decimal.RequireFromString("50"),
		Quantity:         decimal.RequireFromString("1"),
		OriginalQuantity: decimal.RequireFromString("1"),
		Status:           orderv1.StatusPending,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}
	assert.Error(suite.T(), suite.repo.Store(suite.ctx, dup))
}

func (suite *RepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, "01JD0000000000000000000099")
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), errors.OrderNotFound, errors.CodeOf(err))
}

func (suite *RepositoryTestSuite) TestListActiveByFundOrdering() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	suite.newStoredOrder("01JD0000000000000000000002", "FUND-1", "bob", orderv1.SideSell, "101", "4", base.Add(2*time.Second))
	suite.newStoredOrder("01JD0000000000000000000001", "FUND-1", "alice", orderv1.SideBuy, "100", "10", base)
	suite.newStoredOrder("01JD0000000000000000000003", "FUND-2", "carol", orderv1.SideBuy, "55", "2", base)

	cancelled := suite.newStoredOrder("01JD0000000000000000000004", "FUND-1", "dave", orderv1.SideBuy, "99", "1", base)
	require.NoError(suite.T(), suite.repo.Cancel(suite.ctx, cancelled.ID))

	active, err := suite.repo.ListActiveByFund(suite.ctx, "FUND-1")
	require.NoError(suite.T(), err)

	require.Len(suite.T(), active, 2)
	assert.Equal(suite.T(), "01JD0000000000000000000001", active[0].ID)
	assert.Equal(suite.T(), "01JD0000000000000000000002", active[1].ID)
}

func (suite *RepositoryTestSuite) TestActiveFundIDs() {
	now := time.Now().UTC()
	suite.newStoredOrder("01JD0000000000000000000001", "FUND-2", "alice", orderv1.SideBuy, "100", "10", now)
	suite.newStoredOrder("01JD0000000000000000000002", "FUND-1", "bob", orderv1.SideSell, "101", "4", now)

	terminal := suite.newStoredOrder("01JD0000000000000000000003", "FUND-3", "carol", orderv1.SideBuy, "55", "2", now)
	require.NoError(suite.T(), suite.repo.Cancel(suite.ctx, terminal.ID))

	fundIDs, err := suite.repo.ActiveFundIDs(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"FUND-1", "FUND-2"}, fundIDs)
}

func (suite *RepositoryTestSuite) TestApplyFill() {
	now := time.Now().UTC()
	stored := suite.newStoredOrder("01JD0000000000000000000001", "FUND-1", "alice", orderv1.SideBuy, "100", "10", now)

	fill := orderv1.Fill{
		OrderID:        stored.ID,
		QuantityBefore: decimal.RequireFromString("10"),
		QuantityAfter:  decimal.RequireFromString("4"),
		Status:         orderv1.StatusPartiallyFilled,
	}
	require.NoError(suite.T(), suite.repo.ApplyFill(suite.ctx, fill, now.Add(time.Second)))

	got, err := suite.repo.GetByID(suite.ctx, stored.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), got.Quantity.Equal(decimal.RequireFromString("4")))
	assert.Equal(suite.T(), orderv1.StatusPartiallyFilled, got.Status)

	// A stale fill, written against the quantity the pass observed
	// before, must not apply.
	stale := orderv1.Fill{
		OrderID:        stored.ID,
		QuantityBefore: decimal.RequireFromString("10"),
		QuantityAfter:  decimal.RequireFromString("2"),
		Status:         orderv1.StatusPartiallyFilled,
	}
	err = suite.repo.ApplyFill(suite.ctx, stale, now.Add(2*time.Second))
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), errors.OrderConcurrencyConflict, errors.CodeOf(err))
}

func (suite *RepositoryTestSuite) TestCancel() {
	now := time.Now().UTC()
	stored := suite.newStoredOrder("01JD0000000000000000000001", "FUND-1", "alice", orderv1.SideBuy, "100", "10", now)

	require.NoError(suite.T(), suite.repo.Cancel(suite.ctx, stored.ID))

	got, err := suite.repo.GetByID(suite.ctx, stored.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), orderv1.StatusCancelled, got.Status)

	err = suite.repo.Cancel(suite.ctx, stored.ID)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), errors.OrderAlreadyTerminal, errors.CodeOf(err))

	err = suite.repo.Cancel(suite.ctx, "01JD0000000000000000000099")
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), errors.OrderNotFound, errors.CodeOf(err))
}

func (suite *RepositoryTestSuite) TestTransactionRollback() {
	now := time.Now().UTC()
	stored := suite.newStoredOrder("01JD0000000000000000000001", "FUND-1", "alice", orderv1.SideBuy, "100", "10", now)

	client := suite.helper.GetClient()
	err := postgresql.WithTx(suite.ctx, client, func(txCtx context.Context) error {
		fill := orderv1.Fill{
			OrderID:        stored.ID,
			QuantityBefore: decimal.RequireFromString("10"),
			QuantityAfter:  decimal.RequireFromString("4"),
			Status:         orderv1.StatusPartiallyFilled,
		}
		if err := suite.repo.ApplyFill(txCtx, fill, now.Add(time.Second)); err != nil {
			return err
		}
		return errors.NewErrorDetails("forced failure", errors.StoreIOError, "")
	})
	require.Error(suite.T(), err)

	got, err := suite.repo.GetByID(suite.ctx, stored.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), got.Quantity.Equal(decimal.RequireFromString("10")), "fill rolled back with the transaction")
	assert.Equal(suite.T(), orderv1.StatusPending, got.Status)
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
