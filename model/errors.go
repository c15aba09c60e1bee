package model

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfBounds is returned for any coordinate outside the grid
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidDimensions is returned when a grid is asked for a non-positive size
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrAllocation is returned when a grid would be too large to allocate
	ErrAllocation = errors.New("grid allocation failure")
)
