package coordinator

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	ordermock "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1/mock"
	snapshotv1_mock "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/snapshot/v1/mock"
	tradepublisherv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/tradepublisher/v1"
	tradepublisherv1_mock "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/tradepublisher/v1/mock"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/matching"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	pgmock "github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql/mock"
)

var passTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// fakeTx stands in for a pgx transaction. Only Commit and Rollback are
// ever reached in these tests; the embedded interface covers the rest.
type fakeTx struct {
	pgx.Tx
	commits   atomic.Int32
	rollbacks atomic.Int32
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.commits.Add(1); return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rollbacks.Add(1); return nil }

type testFixture struct {
	ctrl            *gomock.Controller
	db              *pgmock.MockPostgreSQLClient
	orderRepository *ordermock.MockOrderRepository
	tradeRepository *ordermock.MockTradeRepository
	publisher       *tradepublisherv1_mock.MockTradePublisher
	snapshotStore   *snapshotv1_mock.MockStore
	logger          *logger.Logger
	tx              *fakeTx
}

func newTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)
	log, err := logger.NewLogger()
	require.NoError(t, err)

	return &testFixture{
		ctrl:            ctrl,
		db:              pgmock.NewMockPostgreSQLClient(ctrl),
		orderRepository: ordermock.NewMockOrderRepository(ctrl),
		tradeRepository: ordermock.NewMockTradeRepository(ctrl),
		publisher:       tradepublisherv1_mock.NewMockTradePublisher(ctrl),
		snapshotStore:   snapshotv1_mock.NewMockStore(ctrl),
		logger:          log,
		tx:              &fakeTx{},
	}
}

func (f *testFixture) coordinator(interval time.Duration) *Coordinator {
	seq := 0
	engine := matching.NewEngine(
		matching.WithClock(func() time.Time { return passTime }),
		matching.WithTradeIDSource(func() string {
			seq++
			return fmt.Sprintf("trade-%03d", seq)
		}),
	)
	return New(
		f.db,
		f.orderRepository,
		f.tradeRepository,
		f.publisher,
		f.snapshotStore,
		engine,
		f.logger,
		Config{TickInterval: interval},
	)
}

func newTestOrder(id, fundID, investorID string, side orderv1.Side, price, qty string, submitOffset int) *orderv1.Order {
	return &orderv1.Order{
		ID:               id,
		FundID:           fundID,
		InvestorID:       investorID,
		Side:             side,
		Price:            decimal.RequireFromString(price),
		Quantity:         decimal.RequireFromString(qty),
		OriginalQuantity: decimal.RequireFromString(qty),
		Status:           orderv1.StatusPending,
		SubmittedAt:      passTime.Add(time.Duration(submitOffset-60) * time.Second),
		UpdatedAt:        passTime.Add(time.Duration(submitOffset-60) * time.Second),
	}
}

func TestTriggerPass_MatchesAndPersists(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	f.db.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		Return([]string{"FUND-1"}, nil)
	f.orderRepository.EXPECT().
		ListActiveByFund(gomock.Any(), "FUND-1").
		Return([]*orderv1.Order{
			newTestOrder("order-1", "FUND-1", "alice", orderv1.SideBuy, "100", "5", 1),
			newTestOrder("order-2", "FUND-1", "bob", orderv1.SideSell, "100", "5", 2),
		}, nil)
	f.orderRepository.EXPECT().
		ApplyFill(gomock.Any(), gomock.Any(), passTime).
		Return(nil).
		Times(2)
	f.tradeRepository.EXPECT().
		StoreBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trades []*orderv1.Trade) error {
			require.Len(t, trades, 1)
			assert.Equal(t, "order-1", trades[0].BuyOrderID)
			assert.Equal(t, "order-2", trades[0].SellOrderID)
			assert.True(t, trades[0].Price.Equal(decimal.RequireFromString("100")))
			return nil
		})
	f.publisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *tradepublisherv1.TradeEventPayload) error {
			assert.Equal(t, "FUND-1", payload.FundID)
			return nil
		})
	f.snapshotStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	summary := f.coordinator(time.Hour).TriggerPass(context.Background())

	assert.False(t, summary.Skipped)
	assert.Equal(t, 1, summary.FundsProcessed)
	assert.Equal(t, 1, summary.TradesCreated)
	assert.Empty(t, summary.Errors)
	assert.Equal(t, int32(1), f.tx.commits.Load())
	assert.Equal(t, int32(0), f.tx.rollbacks.Load())
}

func TestTriggerPass_NoTradesStillCommitsAndSnapshots(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	f.db.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		Return([]string{"FUND-1"}, nil)
	f.orderRepository.EXPECT().
		ListActiveByFund(gomock.Any(), "FUND-1").
		Return([]*orderv1.Order{
			newTestOrder("order-1", "FUND-1", "alice", orderv1.SideBuy, "99", "5", 1),
			newTestOrder("order-2", "FUND-1", "bob", orderv1.SideSell, "100", "5", 2),
		}, nil)
	f.snapshotStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	summary := f.coordinator(time.Hour).TriggerPass(context.Background())

	assert.Equal(t, 1, summary.FundsProcessed)
	assert.Equal(t, 0, summary.TradesCreated)
	assert.Equal(t, int32(1), f.tx.commits.Load())
}

func TestTriggerPass_FillConflictRollsBackFund(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	f.db.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		Return([]string{"FUND-1"}, nil)
	f.orderRepository.EXPECT().
		ListActiveByFund(gomock.Any(), "FUND-1").
		Return([]*orderv1.Order{
			newTestOrder("order-1", "FUND-1", "alice", orderv1.SideBuy, "100", "5", 1),
			newTestOrder("order-2", "FUND-1", "bob", orderv1.SideSell, "100", "5", 2),
		}, nil)
	f.orderRepository.EXPECT().
		ApplyFill(gomock.Any(), gomock.Any(), passTime).
		Return(errors.NewErrorDetails("order changed underneath the pass", errors.OrderConcurrencyConflict, "quantity"))

	summary := f.coordinator(time.Hour).TriggerPass(context.Background())

	assert.Equal(t, 0, summary.FundsProcessed)
	assert.Equal(t, 0, summary.TradesCreated)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "FUND-1")
	assert.Equal(t, int32(0), f.tx.commits.Load())
	assert.Equal(t, int32(1), f.tx.rollbacks.Load())
}

func TestTriggerPass_FundFailureIsIsolated(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	f.db.EXPECT().Begin(gomock.Any()).Return(f.tx, nil).Times(2)
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		Return([]string{"FUND-1", "FUND-2"}, nil)
	f.orderRepository.EXPECT().
		ListActiveByFund(gomock.Any(), "FUND-1").
		Return(nil, errors.NewErrorDetails("read failed", errors.StoreIOError, ""))
	f.orderRepository.EXPECT().
		ListActiveByFund(gomock.Any(), "FUND-2").
		Return([]*orderv1.Order{
			newTestOrder("order-3", "FUND-2", "carol", orderv1.SideBuy, "50", "1", 1),
		}, nil)
	f.snapshotStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	summary := f.coordinator(time.Hour).TriggerPass(context.Background())

	assert.Equal(t, 1, summary.FundsProcessed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "FUND-1")
	assert.Equal(t, int32(1), f.tx.commits.Load())
	assert.Equal(t, int32(1), f.tx.rollbacks.Load())
}

func TestTriggerPass_PublishFailureDoesNotFailPass(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	f.db.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		Return([]string{"FUND-1"}, nil)
	f.orderRepository.EXPECT().
		ListActiveByFund(gomock.Any(), "FUND-1").
		Return([]*orderv1.Order{
			newTestOrder("order-1", "FUND-1", "alice", orderv1.SideBuy, "100", "5", 1),
			newTestOrder("order-2", "FUND-1", "bob", orderv1.SideSell, "100", "5", 2),
		}, nil)
	f.orderRepository.EXPECT().
		ApplyFill(gomock.Any(), gomock.Any(), passTime).
		Return(nil).
		Times(2)
	f.tradeRepository.EXPECT().
		StoreBatch(gomock.Any(), gomock.Any()).
		Return(nil)
	f.publisher.EXPECT().
		PublishTradeEvent(gomock.Any(), gomock.Any()).
		Return(errors.NewErrorDetails("broker unreachable", errors.TradePublishError, ""))
	f.snapshotStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)

	summary := f.coordinator(time.Hour).TriggerPass(context.Background())

	assert.Equal(t, 1, summary.FundsProcessed)
	assert.Equal(t, 1, summary.TradesCreated)
	assert.Empty(t, summary.Errors)
	assert.Equal(t, int32(1), f.tx.commits.Load())
}

func TestTriggerPass_SkipsWhilePassInFlight(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	release := make(chan struct{})
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		DoAndReturn(func(context.Context) ([]string, error) {
			<-release
			return []string{}, nil
		})

	coord := f.coordinator(time.Hour)

	first := make(chan *PassSummary, 1)
	go func() {
		first <- coord.TriggerPass(context.Background())
	}()

	require.Eventually(t, coord.IsRunning, time.Second, time.Millisecond)

	second := coord.TriggerPass(context.Background())
	assert.True(t, second.Skipped)
	assert.Zero(t, second.FundsProcessed)

	close(release)
	summary := <-first
	assert.False(t, summary.Skipped)
	assert.False(t, coord.IsRunning())

	// A pass after the in-flight one finished runs normally again.
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		Return([]string{}, nil)
	third := coord.TriggerPass(context.Background())
	assert.False(t, third.Skipped)
}

func TestStartStop_RunsPassesOnSchedule(t *testing.T) {
	f := newTestFixture(t)
	defer f.ctrl.Finish()

	var passes atomic.Int32
	f.orderRepository.EXPECT().
		ActiveFundIDs(gomock.Any()).
		DoAndReturn(func(context.Context) ([]string, error) {
			passes.Add(1)
			return []string{}, nil
		}).
		AnyTimes()

	coord := f.coordinator(10 * time.Millisecond)
	require.NoError(t, coord.Start(context.Background()))

	require.Eventually(t, func() bool {
		return passes.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, coord.Stop(stopCtx))

	counted := passes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, counted, passes.Load(), "no passes after stop")
}
