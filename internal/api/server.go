package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/gray-logic-units/internal/catalog"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-units/internal/ingest"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// HealthChecker is implemented by every infrastructure client
// (*database.DB, *mqtt.Client, *influxdb.Client).
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// IngestStats provides reading counters. *ingest.Handler satisfies it.
type IngestStats interface {
	Stats() ingest.Stats
}

// SnapshotInfo reports when the stored catalog snapshot was last written.
// *catalog.SQLiteRepository satisfies it.
type SnapshotInfo interface {
	UpdatedAt(ctx context.Context) (time.Time, bool, error)
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config config.APIConfig
	WS     config.WebSocketConfig
	Logger *logging.Logger

	// Optional. Endpoints backed by a nil dependency return 503.
	Ingest   IngestStats
	Snapshot SnapshotInfo

	// SyncReport is the result of the startup catalog sync.
	SyncReport catalog.Report

	// Checks are run by /health, keyed by component name.
	Checks map[string]HealthChecker

	Version string
}

// Server is the HTTP API server for the units service.
//
// It manages the HTTP listener, routes, middleware, and the WebSocket hub
// that streams accepted readings.
type Server struct {
	cfg        config.APIConfig
	wsCfg      config.WebSocketConfig
	logger     *logging.Logger
	ingest     IngestStats
	snapshot   SnapshotInfo
	syncReport catalog.Report
	checks     map[string]HealthChecker
	version    string
	server     *http.Server
	hub        *Hub
	cancel     context.CancelFunc // cancels the hub on Close()
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called, but the hub exists
// immediately so that readings can be broadcast from the moment ingest runs.
//
// Parameters:
//   - deps: Required dependencies (config, logger)
//
// Returns:
//   - *Server: Configured server ready to start
//   - error: If required dependencies are missing
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	s := &Server{
		cfg:        deps.Config,
		wsCfg:      deps.WS,
		logger:     deps.Logger,
		ingest:     deps.Ingest,
		snapshot:   deps.Snapshot,
		syncReport: deps.SyncReport,
		checks:     deps.Checks,
		version:    deps.Version,
	}
	s.hub = NewHub(s.wsCfg, s.logger)

	return s, nil
}

// BroadcastReading sends an accepted reading to WebSocket clients subscribed
// to the readings channel. It is intended as the ingest OnAccepted callback.
func (s *Server) BroadcastReading(r influxdb.Reading) {
	s.hub.Broadcast(readingEvent(r), ChannelReadings, categoryChannel(r.Unit.Category))
}

// Start begins listening for HTTP connections.
//
// It starts the WebSocket hub and launches the HTTP listener in a background
// goroutine. The server can be stopped with Close().
//
// Parameters:
//   - ctx: Context for cancellation (not used for listener lifetime)
//
// Returns:
//   - error: If the server fails to start
func (s *Server) Start(ctx context.Context) error {
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)
	go s.hub.Run(srvCtx)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS",
				"address", s.server.Addr,
				"cert", s.cfg.TLS.CertFile,
			)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
