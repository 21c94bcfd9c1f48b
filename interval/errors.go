package interval

import "errors"

var (
	// ErrInvalid is returned when a constructor receives Lo > Hi or NaN.
	ErrInvalid = errors.New("interval: invalid endpoints")

	// ErrDivByZero is returned by Div when the divisor contains zero.
	ErrDivByZero = errors.New("interval: division by interval containing zero")

	// ErrDomain is returned when an argument leaves a function's real domain.
	ErrDomain = errors.New("interval: argument outside function domain")

	// ErrParse is returned for malformed decimal input.
	ErrParse = errors.New("interval: malformed decimal literal")
)
