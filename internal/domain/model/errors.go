package model

import "errors"

// Sentinel kinds for domain model errors.
var (
	// ErrInvalidDivision is returned when an attachee is created with a
	// division outside the recognized set.
	ErrInvalidDivision = errors.New("invalid division")
)
