package api

import (
	"context"
	"net/http"
	"time"

	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/app/coordinator"
	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/order"
	snapshotv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/snapshot/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/httplib/healthcheck"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Server is the thin admin surface over the matching subsystem:
// order submission and lifecycle, the external tick trigger, and
// health endpoints. All matching work happens in the coordinator.
type Server struct {
	httpServer  *http.Server
	orders      order.Usecase
	coordinator *coordinator.Coordinator
	snapshots   snapshotv1.Store
	logger      logger.Interface

	shutdownTimeout time.Duration
}

// NewServer wires the handlers and health probes into an HTTP server.
func NewServer(
	config Config,
	orders order.Usecase,
	coord *coordinator.Coordinator,
	snapshots snapshotv1.Store,
	probes []healthcheck.Probe,
	logger logger.Interface,
) *Server {
	s := &Server{
		orders:          orders,
		coordinator:     coord,
		snapshots:       snapshots,
		logger:          logger,
		shutdownTimeout: config.ShutdownTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", s.handleSubmitOrder)
	mux.HandleFunc("GET /orders", s.handleListOrders)
	mux.HandleFunc("GET /orders/{id}", s.handleGetOrder)
	mux.HandleFunc("POST /orders/{id}/cancel", s.handleCancelOrder)
	mux.HandleFunc("GET /funds/{fundID}/trades", s.handleListTrades)
	mux.HandleFunc("GET /funds/{fundID}/book", s.handleBookSnapshot)
	mux.HandleFunc("POST /ticks", s.handleTriggerTick)

	hc := healthcheck.HealthCheck{Probes: probes}

	s.httpServer = &http.Server{
		Addr:         config.Addr,
		Handler:      hc.Handler(mux),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	return s
}

// Start begins serving. It blocks until the listener fails or Stop is
// called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", logger.Field{
		Key:   "addr",
		Value: s.httpServer.Addr,
	})

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
