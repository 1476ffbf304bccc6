package coordinator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	orderv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order/v1"
	orderbookv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/orderbook/v1"
	snapshotv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/snapshot/v1"
	tradepublisherv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/tradepublisher/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/matching"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/orderbook"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
)

// Config holds the coordinator settings.
type Config struct {
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
}

// PassSummary reports what one matching pass did. A skipped pass has
// no side effects at all.
type PassSummary struct {
	Skipped        bool      `json:"skipped"`
	FundsProcessed int       `json:"fundsProcessed"`
	TradesCreated  int       `json:"tradesCreated"`
	Errors         []string  `json:"errors"`
	StartedAt      time.Time `json:"startedAt"`
	DurationMs     int64     `json:"durationMs"`
}

// Coordinator drives matching on a fixed cadence. At most one pass
// runs at a time: a tick firing mid-pass is skipped outright, never
// queued. A failure in one fund's pass is reported in the summary and
// does not stop the other funds or the schedule.
type Coordinator struct {
	db              postgresql.PostgreSQLClient
	orderRepository orderv1.OrderRepository
	tradeRepository orderv1.TradeRepository
	publisher       tradepublisherv1.TradePublisher
	snapshotStore   snapshotv1.Store
	engine          *matching.Engine
	logger          logger.Interface

	interval time.Duration
	running  atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a coordinator. It does nothing until Start is called.
func New(
	db postgresql.PostgreSQLClient,
	orderRepository orderv1.OrderRepository,
	tradeRepository orderv1.TradeRepository,
	publisher tradepublisherv1.TradePublisher,
	snapshotStore snapshotv1.Store,
	engine *matching.Engine,
	logger logger.Interface,
	config Config,
) *Coordinator {
	return &Coordinator{
		db:              db,
		orderRepository: orderRepository,
		tradeRepository: tradeRepository,
		publisher:       publisher,
		snapshotStore:   snapshotStore,
		engine:          engine,
		logger:          logger,
		interval:        config.TickInterval,
	}
}

// Start launches the periodic tick loop.
func (c *Coordinator) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.runTicker()

	c.logger.Info("Tick coordinator started", logger.Field{
		Key:   "interval",
		Value: c.interval.String(),
	})

	return nil
}

// Stop halts the tick loop and waits for an in-flight pass to finish,
// bounded by the given context.
func (c *Coordinator) Stop(ctx context.Context) error {
	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("Tick coordinator stopped gracefully")
		return nil
	case <-ctx.Done():
		c.logger.Warn("Tick coordinator stop timeout exceeded")
		return ctx.Err()
	}
}

func (c *Coordinator) runTicker() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.TriggerPass(c.ctx)
		}
	}
}

// TriggerPass runs a full matching pass unless one is already in
// flight, in which case it returns immediately with a skip summary.
// It is safe to call from the timer and an external trigger at once.
func (c *Coordinator) TriggerPass(ctx context.Context) *PassSummary {
	if !c.running.CompareAndSwap(false, true) {
		c.logger.InfoContext(ctx, "Tick skipped, pass already running")
		return &PassSummary{Skipped: true, StartedAt: time.Now().UTC()}
	}
	defer c.running.Store(false)

	return c.runPass(ctx)
}

func (c *Coordinator) runPass(ctx context.Context) *PassSummary {
	summary := &PassSummary{
		StartedAt: time.Now().UTC(),
		Errors:    []string{},
	}

	fundIDs, err := c.orderRepository.ActiveFundIDs(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "list_active_funds",
		})
		summary.Errors = append(summary.Errors, err.Error())
		summary.DurationMs = time.Since(summary.StartedAt).Milliseconds()
		return summary
	}

	for _, fundID := range fundIDs {
		tradeCount, err := c.matchFund(ctx, fundID)
		if err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "match_fund",
			}, logger.Field{
				Key:   "fundID",
				Value: fundID,
			})
			summary.Errors = append(summary.Errors, fundID+": "+err.Error())
			continue
		}
		summary.FundsProcessed++
		summary.TradesCreated += tradeCount
	}

	summary.DurationMs = time.Since(summary.StartedAt).Milliseconds()

	if summary.TradesCreated > 0 || len(summary.Errors) > 0 {
		c.logger.InfoContext(ctx, "Matching pass finished",
			logger.Field{Key: "fundsProcessed", Value: summary.FundsProcessed},
			logger.Field{Key: "tradesCreated", Value: summary.TradesCreated},
			logger.Field{Key: "errorCount", Value: len(summary.Errors)},
		)
	}

	return summary
}

// matchFund loads one fund's book, matches it, and writes the fills
// and trades back in a single transaction scoped to that fund. A fill
// conflicting with a concurrent mutation rolls back the whole fund
// pass; the next tick retries from fresh state.
func (c *Coordinator) matchFund(ctx context.Context, fundID string) (int, error) {
	var result *matching.Result
	var book orderbookv1.Book

	err := postgresql.WithTx(ctx, c.db, func(txCtx context.Context) error {
		orders, err := c.orderRepository.ListActiveByFund(txCtx, fundID)
		if err != nil {
			return err
		}

		book, err = orderbook.Build(fundID, orders)
		if err != nil {
			return err
		}

		result = c.engine.Match(book)
		if len(result.Trades) == 0 {
			return nil
		}

		for _, fill := range result.Fills {
			if err := c.orderRepository.ApplyFill(txCtx, fill, result.ExecutedAt); err != nil {
				return err
			}
		}

		return c.tradeRepository.StoreBatch(txCtx, result.Trades)
	})
	if err != nil {
		return 0, err
	}

	for _, trade := range result.Trades {
		if err := c.publisher.PublishTradeEvent(ctx, tradepublisherv1.FromTrade(trade)); err != nil {
			// Best-effort: the trade is already durable.
			c.logger.WarnContext(ctx, "Trade event publish failed", logger.Field{
				Key:   "tradeID",
				Value: trade.ID,
			})
		}
	}

	if err := c.snapshotStore.Save(ctx, book.Snapshot(result.ExecutedAt)); err != nil {
		c.logger.WarnContext(ctx, "Book snapshot save failed", logger.Field{
			Key:   "fundID",
			Value: fundID,
		})
	}

	return len(result.Trades), nil
}

// IsRunning reports whether a pass is currently in flight.
func (c *Coordinator) IsRunning() bool {
	return c.running.Load()
}
