// Package discovery announces Gray Logic sensors to Home Assistant over
// MQTT discovery, carrying a registered unit of measurement on each one.
//
// A sensor's unit is a units.Unit, so only display strings from the registry
// can reach Home Assistant; a misspelt unit is rejected at startup rather than
// silently creating a sensor that statistics and dashboards cannot convert.
//
// # Topics
//
// Configs are published retained at QoS 1 to
//
//	<prefix>/<component>/[<node_id>/]<object_id>/config
//
// and the unit catalog itself to graylogic/units and
// graylogic/units/<category>, so panels can offer the valid units of a
// category without shipping their own copy of the table.
//
// # Usage
//
//	pub := discovery.NewPublisher(mqttClient, cfg.Discovery.Prefix, logger)
//	sensor, err := discovery.SensorFromConfig(sc, cfg.Discovery.Device)
//	if err != nil {
//	    return err
//	}
//	err = pub.PublishSensor(ctx, sensor)
package discovery
