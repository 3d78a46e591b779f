package house

import "errors"

var (
	// ErrNonPositiveTimestep is returned when timestep_s is zero or negative.
	ErrNonPositiveTimestep = errors.New("timestep_s must be positive")

	// ErrDuplicateRoomID is returned when two rooms share an ID.
	ErrDuplicateRoomID = errors.New("room IDs must be unique")

	// ErrRoomsOverlap is returned when two rooms' bounding boxes intersect.
	ErrRoomsOverlap = errors.New("rooms overlap")

	// ErrNonPositiveIterations is returned when max_iterations is zero or negative.
	ErrNonPositiveIterations = errors.New("max_iterations must be positive")

	// ErrNonPositiveThreshold is returned when convergence_threshold is zero or negative.
	ErrNonPositiveThreshold = errors.New("convergence_threshold must be positive")

	// ErrNonPositiveInterval is returned when output_interval is zero or negative.
	ErrNonPositiveInterval = errors.New("output_interval must be positive")
)
