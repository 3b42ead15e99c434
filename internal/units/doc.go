// Package units provides the Unit Registry for Gray Logic.
//
// The registry is the catalogue of every unit of measurement a Gray Logic
// installation may attach to a reading. Units are grouped by physical
// quantity (power, energy, length, pressure, ...) and each unit maps a
// symbolic name to the display string that UIs render and that stored
// configuration and telemetry key off.
//
// # Key Types
//
//   - Category: A physical quantity grouping (e.g. "UnitOfPower")
//   - Member: One unit within a category (e.g. KILO_WATT → "kW")
//   - Ref: A (category, member) pair, returned by reverse lookups
//   - Unit: A symbol qualified by its category, used in payloads
//   - Power, Energy, Length, ...: typed constants per category
//
// # Usage
//
//	// Typed constants for code that knows the unit at compile time
//	label := string(units.PowerKiloWatt) // "kW"
//
//	// Table lookups for code driven by configuration
//	symbol, err := units.SymbolOf(units.CategoryPower, "KILO_WATT")
//	if errors.Is(err, units.ErrUnknownMember) {
//	    // reject the configuration, never substitute a default
//	}
//
//	members, _ := units.MembersOf(units.CategorySpeed)
//	ok := units.IsValidSymbol(units.CategoryTemperature, "°C")
//
// # Stability
//
// Display strings are a versioned public contract. Renaming or removing a
// symbol breaks wall panels, stored configuration and historic telemetry
// that reference it. The catalog package persists a snapshot so that such
// changes are detected at startup.
//
// Symbols are only meaningful within their category: "in" is both a length
// and a precipitation depth, "dB" is both a sound pressure and a signal
// strength. Always qualify a symbol lookup with its category.
//
// # Thread Safety
//
// The registry is built once during package initialisation and never
// modified afterwards. All functions are safe for concurrent use without
// locking.
package units
