package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/api"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/app/config"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/app/coordinator"
	orderrepo "github.com/dainhan2k4/HDC-Mobile-sub005/internal/infrastructure/postgresql/order"
	traderepo "github.com/dainhan2k4/HDC-Mobile-sub005/internal/infrastructure/postgresql/trade"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/matching"
	orderusecase "github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/order"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/snapshot"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/usecase/tradepublisher"
	pkgconfig "github.com/dainhan2k4/HDC-Mobile-sub005/pkg/config"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/httplib/healthcheck"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	pkgconfig.MustLoad(cfg)

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.LogLevel)))
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	db, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_postgres",
		})
		return
	}
	defer db.Close()

	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	orderRepository := orderrepo.NewRepository(db, log)
	tradeRepository := traderepo.NewRepository(db, log)

	publisher := tradepublisher.NewPublisher(cfg.Publisher, log)
	snapshotStore := snapshot.NewStore(rclient, cfg.Snapshot)
	engine := matching.NewEngine()

	coord := coordinator.New(
		db,
		orderRepository,
		tradeRepository,
		publisher,
		snapshotStore,
		engine,
		log,
		cfg.Coordinator,
	)

	orders := orderusecase.NewUsecase(orderRepository, tradeRepository, log)

	probes := []healthcheck.Probe{
		{Name: "postgres", Check: postgresProbe(db)},
		{Name: "redis", Check: rclient.Ping},
	}

	server := api.NewServer(cfg.HTTP, orders, coord, snapshotStore, probes, log)

	if err := coord.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_coordinator",
		})
		return
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.Info("Fund matching service started", logger.Field{
		Key:   "service",
		Value: cfg.ServiceName,
	})

	select {
	case sig := <-sigChan:
		log.Info("Received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
	case err := <-serverErr:
		if err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "serve_http",
			})
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_http_server",
		})
	}

	if err := coord.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_coordinator",
		})
	}

	if err := publisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_trade_publisher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Fund matching service shutdown complete")
}

// postgresProbe prefers the pool-level health check when the client
// exposes one, falling back to a plain ping.
func postgresProbe(db postgresql.PostgreSQLClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		client, ok := db.(*postgresql.Client)
		if !ok {
			return db.Ping(ctx)
		}
		if health := client.CheckHealth(ctx); health.Status != "healthy" {
			return errors.New(health.Error)
		}
		return nil
	}
}
