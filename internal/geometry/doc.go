// Package geometry provides the spatial model for the heat-flow house.
//
// It defines the value types used by the simulation configuration: Rooms
// (axis-aligned boxes in centimetre coordinates) and Holes (zero-thickness
// openings between rooms such as doors and windows).
//
// Rooms occupy the half-open interval [origin, origin+dims) on each axis.
// The package provides the pairwise predicates used during configuration
// validation: OverlapsWith (AABB intersection) and IsAdjacentTo (shared
// full face). All coordinates are integers; there is no tolerance or
// epsilon in any predicate.
//
// The package has no dependency on storage. Hole-to-room association is
// implicit in coordinates and is not validated here.
package geometry
