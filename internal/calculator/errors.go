package calculator

import "errors"

var (
	// ErrConfiguration is returned when a vehicle specification has a non-positive
	// or non-finite capacity, which leaves utilisation undefined.
	ErrConfiguration = errors.New("invalid vehicle specification")
	// ErrInvalidInput is returned when door or pallet counts are negative or not finite.
	ErrInvalidInput = errors.New("invalid load input")
)
