// Package mqtt provides MQTT client connectivity for the Gray Logic units service.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Retained publishing of discovery configs and the unit catalog
//   - Subscriptions to bridge state readings, restored after reconnect
//   - Last Will and Testament (LWT) for offline detection
//
// # Topics
//
//	graylogic/system/status                    service online/offline (retained)
//	graylogic/units                            category index (retained)
//	graylogic/units/<category>                 category members (retained)
//	graylogic/state/<protocol>/<device_id>     bridge readings (subscribed)
//	<prefix>/<component>/[<node>/]<id>/config  Home Assistant discovery (retained)
//
// # Security Considerations
//
//   - Enable cfg.Broker.TLS outside local development
//   - Credentials should come from GRAYLOGIC_MQTT_USERNAME / GRAYLOGIC_MQTT_PASSWORD
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.AllStates(), 1, handler)
package mqtt
