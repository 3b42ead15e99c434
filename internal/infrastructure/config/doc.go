// Package config loads config.yaml for the units service.
//
// Values are resolved in three layers: built-in defaults, the YAML file, then
// GRAYLOGIC_* environment variables. Load validates the result, including the
// dependencies between sections (discovery and ingest both need mqtt.enabled).
//
// Secrets such as the MQTT password and the InfluxDB token belong in the
// environment rather than the file.
//
// Discovery sensors are plain strings here; the discovery package resolves
// them against the unit registry at startup.
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Discovery.Prefix)
package config
