package geometry

import "fmt"

// Vec3 is an integer coordinate triple (x, y, z) in centimetres.
type Vec3 [3]int

// Add returns the componentwise sum of v and other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Axis identifies one of the three coordinate axes.
type Axis string

// Valid axis values for Hole.FixedAxis.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Index returns the Vec3 component index for the axis (-1 if invalid).
func (a Axis) Index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	case AxisZ:
		return 2
	default:
		return -1
	}
}

// Room is an axis-aligned box of air within the house.
//
// OriginCM is the bottom-left-front corner; DimsCM is (width, height,
// depth). The room occupies [OriginCM, OriginCM+DimsCM) on each axis.
type Room struct {
	ID           string  `yaml:"id" json:"id"`
	OriginCM     Vec3    `yaml:"origin_cm" json:"origin_cm"`
	DimsCM       Vec3    `yaml:"dims_cm" json:"dims_cm"`
	InitialTempC float64 `yaml:"initial_temp_c" json:"initial_temp_c"`
}

// Validate checks the room's own invariants: a non-empty ID and
// non-negative origin and dimension components.
func (r *Room) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("room: %w", ErrEmptyID)
	}
	for i := 0; i < 3; i++ {
		if r.OriginCM[i] < 0 || r.DimsCM[i] < 0 {
			return fmt.Errorf("room %q: %w", r.ID, ErrNegativeCoordinate)
		}
	}
	return nil
}

// Hole is a zero-thickness opening between rooms (door, window, vent).
//
// The size component on FixedAxis must be exactly 0; the other two
// components must be strictly positive.
type Hole struct {
	ID        string `yaml:"id" json:"id"`
	OriginCM  Vec3   `yaml:"origin_cm" json:"origin_cm"`
	SizeCM    Vec3   `yaml:"size_cm" json:"size_cm"`
	FixedAxis Axis   `yaml:"fixed_axis" json:"fixed_axis"`
}

// Validate checks the hole's own invariants: a valid fixed axis, zero
// thickness on that axis, and positive size on the other two.
func (h *Hole) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("hole: %w", ErrEmptyID)
	}
	fixed := h.FixedAxis.Index()
	if fixed < 0 {
		return fmt.Errorf("hole %q: %w (got %q)", h.ID, ErrInvalidAxis, h.FixedAxis)
	}
	if h.SizeCM[fixed] != 0 {
		return fmt.Errorf("hole %q: %w (axis %s has size %d)", h.ID, ErrHoleThickness, h.FixedAxis, h.SizeCM[fixed])
	}
	for i := 0; i < 3; i++ {
		if i != fixed && h.SizeCM[i] <= 0 {
			return fmt.Errorf("hole %q: %w", h.ID, ErrHoleSize)
		}
	}
	return nil
}
