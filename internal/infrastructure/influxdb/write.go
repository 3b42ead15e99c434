package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/gray-logic-units/internal/units"
)

// MeasurementUnitReadings is the measurement every reading is stored under.
const MeasurementUnitReadings = "unit_readings"

// Reading is one validated measurement with its unit.
type Reading struct {
	DeviceID string
	Protocol string
	Unit     units.Unit
	Value    float64

	// Time defaults to now when zero.
	Time time.Time
}

// readingPoint builds the point for r.
//
// Tags: device_id, protocol, category, unit. Field: value.
func readingPoint(r Reading) *write.Point {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	return write.NewPoint(
		MeasurementUnitReadings,
		map[string]string{
			"device_id": r.DeviceID,
			"protocol":  r.Protocol,
			"category":  string(r.Unit.Category),
			"unit":      r.Unit.Symbol,
		},
		map[string]interface{}{
			"value": r.Value,
		},
		ts,
	)
}

// WriteReading queues a reading for batched, non-blocking delivery.
// It is a no-op when the client is not connected.
//
// Example:
//
//	client.WriteReading(influxdb.Reading{
//	    DeviceID: "weather-outdoor",
//	    Protocol: "knx",
//	    Unit:     units.From(units.TemperatureCelsius),
//	    Value:    21.5,
//	})
func (c *Client) WriteReading(r Reading) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(readingPoint(r))
}
