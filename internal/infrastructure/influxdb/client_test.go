package influxdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nerrad567/gray-logic-units/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-units/internal/units"
)

// testConfig returns a configuration for a local dev InfluxDB.
func testConfig() config.InfluxDBConfig {
	return config.InfluxDBConfig{
		Enabled:       true,
		URL:           "http://127.0.0.1:8086",
		Token:         "graylogic-dev-token",
		Org:           "graylogic",
		Bucket:        "units",
		BatchSize:     100,
		FlushInterval: 1,
	}
}

func TestConnect_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	_, err := Connect(context.Background(), cfg)
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	cfg := testConfig()
	cfg.URL = "http://127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Connect(ctx, cfg)
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestWriteOptions_Defaults(t *testing.T) {
	tests := []struct {
		name          string
		batchSize     int
		flushInterval int
		wantBatch     uint
		wantFlushMS   uint
	}{
		{name: "configured", batchSize: 50, flushInterval: 2, wantBatch: 50, wantFlushMS: 2000},
		{name: "zero uses defaults", wantBatch: defaultBatchSize, wantFlushMS: defaultFlushInterval * 1000},
		{name: "negative uses defaults", batchSize: -1, flushInterval: -5, wantBatch: defaultBatchSize, wantFlushMS: defaultFlushInterval * 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.BatchSize = tt.batchSize
			cfg.FlushInterval = tt.flushInterval

			opts := writeOptions(cfg)
			if got := opts.BatchSize(); got != tt.wantBatch {
				t.Errorf("BatchSize() = %d, want %d", got, tt.wantBatch)
			}
			if got := opts.FlushInterval(); got != tt.wantFlushMS {
				t.Errorf("FlushInterval() = %d, want %d", got, tt.wantFlushMS)
			}
		})
	}
}

func TestReadingPoint(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := readingPoint(Reading{
		DeviceID: "weather-outdoor",
		Protocol: "knx",
		Unit:     units.From(units.TemperatureCelsius),
		Value:    21.5,
		Time:     ts,
	})

	if p.Name() != MeasurementUnitReadings {
		t.Errorf("Name() = %q, want %q", p.Name(), MeasurementUnitReadings)
	}
	if !p.Time().Equal(ts) {
		t.Errorf("Time() = %v, want %v", p.Time(), ts)
	}

	tags := make(map[string]string)
	for _, tag := range p.TagList() {
		tags[tag.Key] = tag.Value
	}
	wantTags := map[string]string{
		"device_id": "weather-outdoor",
		"protocol":  "knx",
		"category":  "UnitOfTemperature",
		"unit":      "°C",
	}
	for k, v := range wantTags {
		if tags[k] != v {
			t.Errorf("tag %s = %q, want %q", k, tags[k], v)
		}
	}

	fields := p.FieldList()
	if len(fields) != 1 || fields[0].Key != "value" || fields[0].Value != 21.5 {
		t.Errorf("FieldList() = %+v, want value=21.5", fields)
	}
}

func TestReadingPoint_DefaultTime(t *testing.T) {
	before := time.Now()
	p := readingPoint(Reading{DeviceID: "d", Protocol: "p", Unit: units.From(units.PowerWatt), Value: 1})

	if p.Time().Before(before) {
		t.Errorf("Time() = %v, want >= %v", p.Time(), before)
	}
}

func TestClient_NotConnected(t *testing.T) {
	c := &Client{}

	// Must not panic without a write API.
	c.WriteReading(Reading{DeviceID: "d", Unit: units.From(units.PowerWatt), Value: 1})
	c.Flush()

	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	var nilClient *Client
	if nilClient.IsConnected() {
		t.Error("nil client reports connected")
	}
	if err := nilClient.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v", err)
	}
}

func TestHandleWriteErrors_WrapsErrWriteFailed(t *testing.T) {
	c := &Client{}
	got := make(chan error, 1)
	c.SetOnError(func(err error) { got <- err })

	ch := make(chan error, 1)
	ch <- errors.New("bucket not found")
	close(ch)
	c.handleWriteErrors(ch)

	select {
	case err := <-got:
		if !errors.Is(err, ErrWriteFailed) {
			t.Errorf("callback error = %v, want ErrWriteFailed", err)
		}
	default:
		t.Fatal("callback not invoked")
	}
}
