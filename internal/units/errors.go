package units

import "errors"

// Domain errors for the units package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, units.ErrUnknownCategory) {
//	    // handle unknown category
//	}
var (
	// ErrUnknownCategory is returned when a category identifier is not in the registry.
	ErrUnknownCategory = errors.New("units: unknown category")

	// ErrUnknownMember is returned when a member name is not defined in an otherwise valid category.
	ErrUnknownMember = errors.New("units: unknown member")

	// ErrUnknownSymbol is returned when a display string is not defined in an otherwise valid category.
	ErrUnknownSymbol = errors.New("units: unknown symbol")

	// ErrAmbiguousSymbol is returned when a bare symbol belongs to more than one category.
	ErrAmbiguousSymbol = errors.New("units: ambiguous symbol")
)
