// Gray Logic Units - physical unit symbol registry service
//
// This is the main entry point for the units service. It keeps the canonical
// unit catalog in SQLite, announces Home Assistant discovery configs over
// MQTT, validates incoming sensor readings against the registry, and serves
// the catalog over a read-only HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/gray-logic-units/internal/api"
	"github.com/nerrad567/gray-logic-units/internal/catalog"
	"github.com/nerrad567/gray-logic-units/internal/discovery"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-units/internal/ingest"
	"github.com/nerrad567/gray-logic-units/internal/units"
	"github.com/nerrad567/gray-logic-units/migrations"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// originName identifies this service in discovery payloads.
const originName = "graylogic-units"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error { //nolint:gocognit,gocyclo // Linear startup sequence
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Gray Logic Units",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Sensor configs are checked against the registry before anything connects
	var sensors []discovery.Sensor
	if cfg.Discovery.Enabled {
		sensors, err = discovery.SensorsFromConfig(cfg.Discovery)
		if err != nil {
			return fmt.Errorf("loading discovery sensors: %w", err)
		}
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx, migrations.FS); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	repo := catalog.NewSQLiteRepository(db.DB)
	report, err := catalog.Sync(ctx, repo, log, cfg.Database.StrictCatalog)
	if err != nil {
		return fmt.Errorf("syncing unit catalog: %w", err)
	}
	log.Info("unit catalog ready",
		"categories", len(units.Categories()),
		"units", len(units.All()),
	)

	checks := map[string]api.HealthChecker{"database": db}

	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log)
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
		checks["mqtt"] = mqttClient
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
	} else {
		log.Info("MQTT disabled")
	}

	if cfg.Discovery.Enabled {
		publisher := discovery.NewPublisher(mqttClient, cfg.Discovery.Prefix, log)
		publisher.SetOrigin(discovery.Origin{Name: originName, SWVersion: version})

		announce := func(ctx context.Context) {
			announceDiscovery(ctx, publisher, sensors, cfg.Discovery.PublishCatalog, log)
		}

		// Retained configs are lost when a broker restarts without persistence
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected, re-announcing discovery configs")
			announce(ctx)
		})
		announce(ctx)
	}

	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(ctx, cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		checks["influxdb"] = influxClient
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		log.Info("InfluxDB disabled")
	}

	var handler *ingest.Handler
	if cfg.Ingest.Enabled {
		var writer ingest.Writer
		if influxClient != nil {
			writer = influxClient
		}
		handler = ingest.NewHandler(writer, log)
		if subErr := handler.Subscribe(mqttClient, cfg.Ingest.Topic); subErr != nil {
			return fmt.Errorf("subscribing to readings: %w", subErr)
		}
		log.Info("ingest subscribed", "topic", cfg.Ingest.Topic, "store", influxClient != nil)
	}

	if cfg.API.Enabled {
		deps := api.Deps{
			Config:     cfg.API,
			WS:         cfg.WebSocket,
			Logger:     log,
			Snapshot:   repo,
			SyncReport: report,
			Checks:     checks,
			Version:    version,
		}
		if handler != nil {
			deps.Ingest = handler
		}

		srv, srvErr := api.New(deps)
		if srvErr != nil {
			return fmt.Errorf("creating API server: %w", srvErr)
		}
		if handler != nil {
			handler.SetOnAccepted(srv.BroadcastReading)
		}
		if startErr := srv.Start(ctx); startErr != nil {
			return fmt.Errorf("starting API server: %w", startErr)
		}
		defer func() {
			if closeErr := srv.Close(); closeErr != nil {
				log.Error("error closing API server", "error", closeErr)
			}
		}()
	} else {
		log.Info("API disabled")
	}

	if err := healthCheck(ctx, checks); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	if handler != nil {
		stats := handler.Stats()
		log.Info("ingest totals", "accepted", stats.Accepted, "rejected", stats.Rejected)
	}

	log.Info("Gray Logic Units stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses GRAYLOGIC_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("GRAYLOGIC_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// announceDiscovery publishes every sensor config and, optionally, the
// retained unit catalog. Failures are logged; the broker may come back later
// and the next reconnect re-announces.
func announceDiscovery(ctx context.Context, p *discovery.Publisher, sensors []discovery.Sensor, withCatalog bool, log *logging.Logger) {
	published, err := p.PublishSensors(ctx, sensors)
	if err != nil {
		log.Warn("discovery announce incomplete", "published", published, "total", len(sensors), "error", err)
	} else {
		log.Info("discovery configs published", "sensors", published)
	}

	if !withCatalog {
		return
	}
	if err := p.PublishCatalog(ctx); err != nil {
		log.Warn("unit catalog publish failed", "error", err)
	}
}

// healthCheck runs every registered component check.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - checks: Components keyed by name
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, checks map[string]api.HealthChecker) error {
	for name, c := range checks {
		if err := c.HealthCheck(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
