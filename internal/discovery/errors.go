package discovery

import "errors"

// Domain errors for the discovery package.
var (
	// ErrInvalidID is returned when a unique_id, node_id or object_id contains
	// characters outside [a-zA-Z0-9_-].
	ErrInvalidID = errors.New("discovery: invalid id")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("discovery: missing required field")

	// ErrInvalidField is returned when an optional field holds an out-of-range value.
	ErrInvalidField = errors.New("discovery: invalid field")

	// ErrInvalidUnit is returned when a sensor's unit is not registered in
	// its category.
	ErrInvalidUnit = errors.New("discovery: invalid unit")
)
