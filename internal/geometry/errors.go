package geometry

import "errors"

var (
	// ErrNegativeCoordinate is returned when a room origin or dimension
	// component is negative.
	ErrNegativeCoordinate = errors.New("coordinates and dimensions must be non-negative")

	// ErrInvalidAxis is returned when a hole's fixed axis is not x, y, or z.
	ErrInvalidAxis = errors.New("fixed axis must be x, y, or z")

	// ErrHoleThickness is returned when a hole has non-zero size on its
	// fixed axis.
	ErrHoleThickness = errors.New("hole size on fixed axis must be 0")

	// ErrHoleSize is returned when a hole's free-axis size is not positive.
	ErrHoleSize = errors.New("hole sizes off the fixed axis must be positive")

	// ErrEmptyID is returned when a room or hole has no identifier.
	ErrEmptyID = errors.New("id is required")
)
