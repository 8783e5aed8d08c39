package dstarlite

import "errors"

// Sentinel errors returned by the dstarlite package.
var (
	// ErrNilCell indicates a nil start or goal cell was passed to New.
	ErrNilCell = errors.New("dstarlite: start and goal must be non-nil")

	// ErrInvalidOption indicates an Option received an out-of-range value.
	ErrInvalidOption = errors.New("dstarlite: invalid option value")
)
