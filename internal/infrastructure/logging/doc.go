// Package logging provides structured logging for the Gray Logic units service.
//
// It wraps log/slog so that every component (catalog sync, discovery,
// ingest, HTTP API) logs with the same service and version fields.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Component("ingest").Warn("reading dropped", "unit", "furlong")
//
// Never log MQTT passwords or InfluxDB tokens.
package logging
