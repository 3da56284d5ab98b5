package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput = errors.New("invalid input")
)
