// Package ingest accepts unit-qualified readings from protocol bridges and
// forwards the valid ones to the time-series store.
//
// Bridges publish readings on graylogic/state/<protocol>/<device_id>:
//
//	{"category":"UnitOfTemperature","unit":"°C","value":21.5}
//
// A reading is accepted only when its unit is a registered display string of
// its category. Nothing is normalised: "C" is not "°C" and "kw" is not "kW".
// Rejected readings are counted and logged at warn level.
//
// When category is omitted, the unit is resolved through the reverse symbol
// index and accepted only if exactly one category defines it.
package ingest
