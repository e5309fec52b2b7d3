package transform

import "errors"

var (
	// ErrEmptyInput is returned when a transform that needs at least one
	// point receives no documents, or only documents without points.
	ErrEmptyInput = errors.New("no points in input")

	// ErrInvalidPolicy is returned when a decimation policy is out of range
	// or ambiguous.
	ErrInvalidPolicy = errors.New("invalid decimation policy")
)
