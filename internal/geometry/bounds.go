package geometry

// Bounds returns the min and max corners of the room's bounding box.
// The box is half-open: the room occupies [min, max) on each axis.
func (r *Room) Bounds() (minB, maxB Vec3) {
	return r.OriginCM, r.OriginCM.Add(r.DimsCM)
}

// OverlapsWith reports whether two rooms' bounding boxes intersect.
//
// Boxes overlap iff their half-open intervals intersect on every axis:
// the absence of a separating axis implies overlap. Two rooms with
// identical non-empty boxes always overlap; boxes that merely touch
// (max == min on some axis) do not.
func (r *Room) OverlapsWith(other *Room) bool {
	aMin, aMax := r.Bounds()
	bMin, bMax := other.Bounds()
	for i := 0; i < 3; i++ {
		if aMax[i] <= bMin[i] || bMax[i] <= aMin[i] {
			return false
		}
	}
	return true
}

// IsAdjacentTo reports whether two rooms share a full face.
//
// Each axis is classified as touching (the boxes meet exactly),
// overlapping (the intervals intersect), or separated. The rooms are
// adjacent iff exactly one axis is touching and the other two overlap.
// Partial-face contact (touching on one axis but separated on another)
// is not adjacency.
func (r *Room) IsAdjacentTo(other *Room) bool {
	aMin, aMax := r.Bounds()
	bMin, bMax := other.Bounds()

	touching := 0
	overlapping := 0
	for i := 0; i < 3; i++ {
		switch {
		case aMax[i] == bMin[i] || bMax[i] == aMin[i]:
			touching++
		case aMax[i] > bMin[i] && bMax[i] > aMin[i]:
			overlapping++
		}
	}
	return touching == 1 && overlapping == 2
}
