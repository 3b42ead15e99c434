package units

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Typed is implemented by every per-category unit type (Power, Length, ...).
type Typed interface {
	~string
	Category() Category
	Valid() bool
}

// Unit is a display string qualified by its category.
//
// On the wire a Unit is the bare symbol, matching what Home Assistant expects
// in "unit_of_meas":
//
//	{"unit_of_meas": "°C"}
//
// The category stays on the Go side so that ambiguous symbols ("in", "dB",
// "m") are never mistaken for a unit of another quantity.
type Unit struct {
	Category Category
	Symbol   string
}

// NewUnit returns the Unit for a symbol of a category.
//
// Returns:
//   - Unit: Validated unit
//   - error: ErrUnknownCategory or ErrUnknownSymbol
func NewUnit(category Category, symbol string) (Unit, error) {
	m, err := MemberBySymbol(category, symbol)
	if err != nil {
		return Unit{}, err
	}
	return Unit{Category: category, Symbol: m.Symbol}, nil
}

// MustUnit is like NewUnit but panics on an unregistered symbol. It is meant
// for package-level values built from literals.
func MustUnit(category Category, symbol string) Unit {
	u, err := NewUnit(category, symbol)
	if err != nil {
		panic(err)
	}
	return u
}

// From converts a typed constant to a Unit.
//
//	u := units.From(units.TemperatureCelsius)
func From[T Typed](v T) Unit {
	return Unit{Category: v.Category(), Symbol: string(v)}
}

// IsZero reports whether the unit is unset.
func (u Unit) IsZero() bool {
	return u.Category == "" && u.Symbol == ""
}

// Valid reports whether the unit is registered in its category.
func (u Unit) Valid() bool {
	return IsValidSymbol(u.Category, u.Symbol)
}

// String returns the display string.
func (u Unit) String() string {
	return u.Symbol
}

// MarshalJSON encodes the unit as its bare symbol.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Symbol)
}

// UnmarshalJSON decodes a bare symbol.
//
// The symbol must resolve to exactly one category through the reverse index;
// symbols shared by several categories return ErrAmbiguousSymbol and must be
// resolved by the caller with NewUnit.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var symbol string
	if err := json.Unmarshal(data, &symbol); err != nil {
		return fmt.Errorf("decoding unit: %w", err)
	}
	return u.setSymbol(symbol)
}

// setSymbol resolves a bare symbol through the reverse index.
func (u *Unit) setSymbol(symbol string) error {
	refs := Lookup(symbol)
	switch len(refs) {
	case 0:
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	case 1:
		*u = Unit{Category: refs[0].Category, Symbol: refs[0].Symbol}
		return nil
	default:
		return fmt.Errorf("%w: %q is defined in %d categories", ErrAmbiguousSymbol, symbol, len(refs))
	}
}

// MarshalYAML encodes the unit as its bare symbol.
func (u Unit) MarshalYAML() (any, error) {
	return u.Symbol, nil
}

// UnmarshalYAML decodes a bare symbol with the same rules as UnmarshalJSON.
func (u *Unit) UnmarshalYAML(value *yaml.Node) error {
	var symbol string
	if err := value.Decode(&symbol); err != nil {
		return fmt.Errorf("decoding unit: %w", err)
	}
	return u.setSymbol(symbol)
}
