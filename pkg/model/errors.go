package model

import "errors"

var (
	// ErrNotFound is returned when a name does not resolve to a catalog city.
	ErrNotFound = errors.New("not found")

	// ErrEmptyHistory is returned when a city has no yearly records.
	ErrEmptyHistory = errors.New("empty history")

	// ErrInvalidCatalog marks catalog data that breaks a data-model invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
