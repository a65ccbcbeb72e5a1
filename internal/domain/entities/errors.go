package entities

import "errors"

// Domain errors
var (
	// Analysis errors
	ErrNoPitchMaterial = errors.New("no pitch material provided")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)
