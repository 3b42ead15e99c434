package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
site:
  id: "test-site"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
  strict_catalog: true
mqtt:
  enabled: true
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
discovery:
  enabled: true
  prefix: "homeassistant"
  device:
    identifiers: ["graylogic-weather"]
    name: "Weather Station"
  sensors:
    - name: "Outdoor Temperature"
      state_topic: "graylogic/core/device/weather/state"
      device_class: "temperature"
      state_class: "measurement"
      unit_category: "UnitOfTemperature"
      unit: "°C"
      suggested_display_precision: 1
api:
  host: "0.0.0.0"
  port: 8081
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.ID != "test-site" {
		t.Errorf("Site.ID = %q, want %q", cfg.Site.ID, "test-site")
	}

	if !cfg.Database.StrictCatalog {
		t.Error("Database.StrictCatalog = false, want true")
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "localhost")
	}

	if len(cfg.Discovery.Sensors) != 1 {
		t.Fatalf("Discovery.Sensors len = %d, want 1", len(cfg.Discovery.Sensors))
	}

	sensor := cfg.Discovery.Sensors[0]
	if sensor.Unit != "°C" {
		t.Errorf("Sensor.Unit = %q, want %q", sensor.Unit, "°C")
	}
	if sensor.UnitCategory != "UnitOfTemperature" {
		t.Errorf("Sensor.UnitCategory = %q, want UnitOfTemperature", sensor.UnitCategory)
	}
	if sensor.DisplayPrecision == nil || *sensor.DisplayPrecision != 1 {
		t.Errorf("Sensor.DisplayPrecision = %v, want 1", sensor.DisplayPrecision)
	}

	// Unset fields keep their defaults
	if !cfg.Discovery.PublishCatalog {
		t.Error("Discovery.PublishCatalog default lost")
	}
	if cfg.Ingest.Topic != "graylogic/state/+/+" {
		t.Errorf("Ingest.Topic = %q, want default", cfg.Ingest.Topic)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
site:
  id: ""
database:
  path: "/tmp/test.db"
api:
  port: 8081
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty site.id, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	// valid returns a minimal config that passes validation.
	valid := func() *Config {
		return &Config{
			Site:      SiteConfig{ID: "site-001"},
			Database:  DatabaseConfig{Path: "/data/units.db"},
			MQTT:      MQTTConfig{Enabled: true, QoS: 1},
			API:       APIConfig{Enabled: true, Port: 8081},
			WebSocket: WebSocketConfig{PingInterval: 30, PongTimeout: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing site ID",
			mutate:  func(c *Config) { c.Site.ID = "" },
			wantErr: true,
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name:    "invalid QoS",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: true,
		},
		{
			name:    "invalid port low",
			mutate:  func(c *Config) { c.API.Port = 0 },
			wantErr: true,
		},
		{
			name:    "invalid port high",
			mutate:  func(c *Config) { c.API.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "port ignored when API disabled",
			mutate:  func(c *Config) { c.API.Enabled = false; c.API.Port = 0 },
			wantErr: false,
		},
		{
			name: "discovery without MQTT",
			mutate: func(c *Config) {
				c.MQTT.Enabled = false
				c.Discovery = DiscoveryConfig{Enabled: true, Prefix: "homeassistant"}
			},
			wantErr: true,
		},
		{
			name:    "discovery without prefix",
			mutate:  func(c *Config) { c.Discovery = DiscoveryConfig{Enabled: true, Prefix: "  "} },
			wantErr: true,
		},
		{
			name:    "ingest without topic",
			mutate:  func(c *Config) { c.Ingest = IngestConfig{Enabled: true} },
			wantErr: true,
		},
		{
			name: "ingest without MQTT",
			mutate: func(c *Config) {
				c.MQTT.Enabled = false
				c.Ingest = IngestConfig{Enabled: true, Topic: "graylogic/state/+/+"}
			},
			wantErr: true,
		},
		{
			name:    "zero websocket ping interval",
			mutate:  func(c *Config) { c.WebSocket.PingInterval = 0 },
			wantErr: true,
		},
		{
			name:    "influxdb without URL",
			mutate:  func(c *Config) { c.InfluxDB = InfluxDBConfig{Enabled: true} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetTimeouts(t *testing.T) {
	cfg := &Config{
		API: APIConfig{
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 45,
				Idle:  60,
			},
		},
	}

	if got := cfg.GetReadTimeout().Seconds(); got != 30 {
		t.Errorf("GetReadTimeout() = %v, want 30", got)
	}

	if got := cfg.GetWriteTimeout().Seconds(); got != 45 {
		t.Errorf("GetWriteTimeout() = %v, want 45", got)
	}

	if got := cfg.GetIdleTimeout().Seconds(); got != 60 {
		t.Errorf("GetIdleTimeout() = %v, want 60", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("GRAYLOGIC_DATABASE_PATH", "/custom/path.db")
	t.Setenv("GRAYLOGIC_MQTT_HOST", "mqtt.example.com")
	t.Setenv("GRAYLOGIC_MQTT_USERNAME", "testuser")
	t.Setenv("GRAYLOGIC_MQTT_PASSWORD", "testpass")
	t.Setenv("GRAYLOGIC_DISCOVERY_PREFIX", "ha")
	t.Setenv("GRAYLOGIC_API_HOST", "192.168.1.1")
	t.Setenv("GRAYLOGIC_INFLUXDB_TOKEN", "secret-token")

	applyEnvOverrides(cfg)

	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}

	if cfg.MQTT.Broker.Host != "mqtt.example.com" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "mqtt.example.com")
	}

	if cfg.MQTT.Auth.Username != "testuser" {
		t.Errorf("MQTT.Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "testuser")
	}

	if cfg.MQTT.Auth.Password != "testpass" {
		t.Errorf("MQTT.Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "testpass")
	}

	if cfg.Discovery.Prefix != "ha" {
		t.Errorf("Discovery.Prefix = %q, want %q", cfg.Discovery.Prefix, "ha")
	}

	if cfg.API.Host != "192.168.1.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "192.168.1.1")
	}

	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Site.ID == "" {
		t.Error("defaultConfig should have non-empty Site.ID")
	}

	if cfg.Database.Path == "" {
		t.Error("defaultConfig should have non-empty Database.Path")
	}

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}

	if cfg.Discovery.Prefix != "homeassistant" {
		t.Errorf("defaultConfig Discovery.Prefix = %q, want homeassistant", cfg.Discovery.Prefix)
	}

	if cfg.API.Port != 8081 {
		t.Errorf("defaultConfig API.Port = %d, want 8081", cfg.API.Port)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig should validate, got %v", err)
	}
}
