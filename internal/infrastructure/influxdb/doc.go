// Package influxdb stores validated unit readings in InfluxDB.
//
// It wraps the official influxdb-client-go v2 library. Every reading lands in
// the unit_readings measurement, tagged with the device, protocol, unit
// category and unit symbol, so dashboards can filter on exact units:
//
//	unit_readings,category=UnitOfTemperature,device_id=weather-outdoor,protocol=knx,unit=°C value=21.5
//
// # Usage
//
//	client, err := influxdb.Connect(ctx, cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteReading(influxdb.Reading{DeviceID: "weather-outdoor", Protocol: "knx",
//	    Unit: units.From(units.TemperatureCelsius), Value: 21.5})
//
// # Error Handling
//
// Writes are non-blocking. Batch failures are delivered to the SetOnError
// callback; connection and health check errors are returned directly.
package influxdb
