package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nerrad567/gray-logic-units/internal/api"
	"github.com/nerrad567/gray-logic-units/internal/discovery"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/config"
)

// writeConfig writes a config file into a temp dir and points
// GRAYLOGIC_CONFIG at it for the duration of the test.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("GRAYLOGIC_CONFIG", configPath)
}

// TestRun_InvalidConfig verifies run fails with invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("GRAYLOGIC_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestRun_MissingDatabasePath verifies run fails when database path is empty.
func TestRun_MissingDatabasePath(t *testing.T) {
	writeConfig(t, `
site:
  id: test-site

database:
  path: ""

mqtt:
  enabled: false

api:
  enabled: false

logging:
  level: info
  format: text
  output: stdout
`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := run(ctx); err == nil {
		t.Fatal("run() should fail with empty database path")
	}
}

// TestRun_InvalidDiscoverySensor verifies a sensor with a unit outside its
// category stops startup before any broker connection is attempted.
func TestRun_InvalidDiscoverySensor(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "units.db")
	writeConfig(t, `
site:
  id: test-site

database:
  path: "`+dbPath+`"

mqtt:
  enabled: true
  broker:
    host: "127.0.0.1"
    port: 19999
    client_id: "test-client"

discovery:
  enabled: true
  sensors:
    - name: Outdoor Temperature
      state_topic: graylogic/state/knx/weather
      unit_category: UnitOfTemperature
      unit: C

api:
  enabled: false

logging:
  level: info
  format: text
  output: stdout
`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx)
	if !errors.Is(err, discovery.ErrInvalidUnit) {
		t.Fatalf("run() error = %v, want %v", err, discovery.ErrInvalidUnit)
	}
	if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
		t.Errorf("database created before sensor validation (stat error = %v)", statErr)
	}
}

// TestRun_StandaloneStartupAndShutdown runs with only the database enabled
// and checks a clean return once the context ends.
func TestRun_StandaloneStartupAndShutdown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "units.db")
	writeConfig(t, `
site:
  id: test-site

database:
  path: "`+dbPath+`"
  wal_mode: true
  busy_timeout: 5

mqtt:
  enabled: false

influxdb:
  enabled: false

api:
  enabled: false

logging:
  level: warn
  format: text
  output: stdout
`)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := run(ctx); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	// A second start finds the stored snapshot and reports no changes.
	ctx2, cancel2 := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel2()
	if err := run(ctx2); err != nil {
		t.Fatalf("second run() error = %v", err)
	}
}

// TestExampleConfig verifies the shipped example config loads and every
// sensor in it resolves against the registry.
func TestExampleConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", defaultConfigPath))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sensors, err := discovery.SensorsFromConfig(cfg.Discovery)
	if err != nil {
		t.Fatalf("SensorsFromConfig() error = %v", err)
	}
	if len(sensors) != len(cfg.Discovery.Sensors) {
		t.Errorf("sensors = %d, want %d", len(sensors), len(cfg.Discovery.Sensors))
	}
}

// TestGetConfigPath_Default verifies default config path.
func TestGetConfigPath_Default(t *testing.T) {
	t.Setenv("GRAYLOGIC_CONFIG", "")

	if path := getConfigPath(); path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	expected := "/custom/path/config.yaml"
	t.Setenv("GRAYLOGIC_CONFIG", expected)

	if path := getConfigPath(); path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

type stubCheck struct{ err error }

func (s stubCheck) HealthCheck(context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name    string
		checks  map[string]api.HealthChecker
		wantErr error
	}{
		{"no checks", nil, nil},
		{"all healthy", map[string]api.HealthChecker{"database": stubCheck{}, "mqtt": stubCheck{}}, nil},
		{"one failing", map[string]api.HealthChecker{"database": stubCheck{}, "mqtt": stubCheck{err: down}}, down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := healthCheck(context.Background(), tt.checks)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("healthCheck() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
