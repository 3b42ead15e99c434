// Package api implements the read-only HTTP API of the units service.
//
// This package provides:
//   - REST endpoints for browsing the unit catalog and reverse symbol lookup
//   - Ingest counters and catalog snapshot status
//   - A WebSocket stream of accepted readings
//   - Middleware stack (request ID, logging, recovery, CORS)
//   - TLS support for production deployments
//
// # Endpoints
//
//	GET /api/v1/health                      component health, 503 when degraded
//	GET /api/v1/units                       all categories with members
//	GET /api/v1/units/{category}            one category (404 unknown category)
//	GET /api/v1/units/{category}/{member}   one member (404 unknown member)
//	GET /api/v1/symbols/{symbol}            categories using a symbol
//	GET /api/v1/validate?category=&symbol=  membership check
//	GET /api/v1/catalog                     snapshot time and last sync diff
//	GET /api/v1/ingest/stats                accepted/rejected readings
//	GET /api/v1/ws                          readings stream
//
// Symbols are matched exactly and case-sensitively. The rest of the path after
// /symbols/ is the symbol, so "W/m²" may be sent as /api/v1/symbols/W/m%C2%B2
// or with the slash encoded.
//
// # Readings stream
//
// Clients subscribe to "readings" or "readings.<category>":
//
//	{"type":"subscribe","id":"1","payload":{"channels":["readings.UnitOfPower"]}}
package api
