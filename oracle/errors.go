package oracle

import "errors"

var (
	// ErrOverflow is returned when an enclosure escapes to infinite or NaN
	// endpoints and can no longer bound anything.
	ErrOverflow = errors.New("oracle: enclosure overflow")

	// ErrUnknownFunc is returned by Lookup for an unregistered map name.
	ErrUnknownFunc = errors.New("oracle: unknown function name")

	// ErrBadConfig is returned when a map's configuration is unusable,
	// e.g. an HHG carrier frequency interval containing zero.
	ErrBadConfig = errors.New("oracle: invalid function configuration")
)
