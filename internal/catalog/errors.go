package catalog

import "errors"

var (
	// ErrVehicleNotFound indicates the requested vehicle is not in the catalog.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrInvalidCatalog indicates the catalog entries violate validation rules.
	ErrInvalidCatalog = errors.New("invalid vehicle catalog")
)
