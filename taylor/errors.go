package taylor

import "errors"

var (
	// ErrDomain is returned when a composition step leaves the domain of a
	// lifted operation, e.g. division by a rectangle containing zero.
	ErrDomain = errors.New("taylor: composition outside function domain")

	// ErrEmpty is returned by Intersect when two enclosures of the same
	// expression have drifted apart, which indicates a broken composition.
	ErrEmpty = errors.New("taylor: empty intersection of enclosures")
)
