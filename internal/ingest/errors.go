package ingest

import "errors"

// Domain errors for the ingest package.
var (
	// ErrInvalidTopic is returned for topics that are not graylogic/state/<protocol>/<device_id>.
	ErrInvalidTopic = errors.New("ingest: invalid state topic")

	// ErrInvalidPayload is returned when a payload is not a reading object.
	ErrInvalidPayload = errors.New("ingest: invalid payload")

	// ErrInvalidUnit is returned when a reading's unit is not registered for its category.
	ErrInvalidUnit = errors.New("ingest: invalid unit")
)
