package arith

import "errors"

var (
	// ErrInvalidArgument is returned for operands outside an operation's domain,
	// e.g. a negative exponent
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow is returned when a result does not fit in int32 under PolicyFail
	ErrOverflow = errors.New("integer overflow")
	// ErrDivisionByZero is returned by Mod when the divisor is 0
	ErrDivisionByZero = errors.New("division by zero")
)
