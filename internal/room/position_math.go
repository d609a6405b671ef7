package room

// CheckedAdd shifts the position by (dx, dy) in world coordinates,
// crossing room boundaries as needed. Fails if the result leaves the
// representable world.
func (p Position) CheckedAdd(dx, dy int) (Position, error) {
	x, y := p.WorldCoords()
	return CheckedPositionFromWorldCoords(x+dx, y+dy)
}

// Add shifts the position by (dx, dy) in world coordinates.
// Panics if the result leaves the world; a violation here is a
// programming error, use CheckedAdd to treat it as a runtime condition.
func (p Position) Add(dx, dy int) Position {
	out, err := p.CheckedAdd(dx, dy)
	if err != nil {
		panic(err)
	}
	return out
}

// Sub shifts the position by (-dx, -dy) in world coordinates.
// Panics like Add.
func (p Position) Sub(dx, dy int) Position {
	return p.Add(-dx, -dy)
}

// CheckedAddDirection shifts the position one tile in the given
// direction, crossing room boundaries as needed.
func (p Position) CheckedAddDirection(d Direction) (Position, error) {
	dx, dy := d.Offset()
	return p.CheckedAdd(dx, dy)
}

// AddDirection shifts the position one tile in the given direction.
// Panics like Add.
func (p Position) AddDirection(d Direction) Position {
	out, err := p.CheckedAddDirection(d)
	if err != nil {
		panic(err)
	}
	return out
}

// Offset shifts the position in place by (dx, dy) in world coordinates.
// Panics like Add.
func (p *Position) Offset(dx, dy int) {
	*p = p.Add(dx, dy)
}

// Diff returns the world-coordinate displacement from other to p.
func (p Position) Diff(other Position) (int, int) {
	px, py := p.WorldCoords()
	ox, oy := other.WorldCoords()
	return px - ox, py - oy
}

// GetDirectionTo returns the 8-way direction from p toward target,
// computed on world coordinates so it works across rooms. Ties favor
// axis directions; returns false only when the positions are equal.
func (p Position) GetDirectionTo(target Position) (Direction, bool) {
	dx, dy := target.Diff(p)
	return directionTo(dx, dy)
}

// GetRangeTo returns the Chebyshev distance to target in world
// coordinates. Unlike the host engine's same-room-only equivalent, this
// is accurate across room boundaries.
func (p Position) GetRangeTo(target Position) int {
	dx, dy := p.Diff(target)
	return maxInt(abs(dx), abs(dy))
}

// InRangeTo reports whether target is within the given Chebyshev range,
// counting across room boundaries.
func (p Position) InRangeTo(target Position, r int) bool {
	return p.GetRangeTo(target) <= r
}

// IsNearTo reports whether target is in the same room and within range
// 1. Stricter than InRangeTo(target, 1), which ignores room membership.
func (p Position) IsNearTo(target Position) bool {
	return p.RoomName() == target.RoomName() &&
		abs(int(p.X())-int(target.X())) <= 1 &&
		abs(int(p.Y())-int(target.Y())) <= 1
}

// IsEqualTo reports whether both positions name the same tile.
func (p Position) IsEqualTo(target Position) bool {
	return p == target
}

// Towards interpolates along the straight line from p to target,
// stopping distance tiles along it. Never overshoots: if distance
// exceeds the total range, target is returned. Rounding ties go toward
// p.
func (p Position) Towards(target Position, distance int) Position {
	dx, dy := target.Diff(p)
	total := maxInt(abs(dx), abs(dy))
	if distance >= total {
		return target
	}
	// Truncating division rounds the interpolation toward p.
	return p.Add(dx*distance/total, dy*distance/total)
}

// Between interpolates from target back toward p, stopping distance
// tiles short of target. Rounding ties go toward target.
func (p Position) Between(target Position, distance int) Position {
	return target.Towards(p, distance)
}

// MidpointBetween returns the approximate midpoint of p and target,
// rounding ties toward target.
func (p Position) MidpointBetween(target Position) Position {
	dx, dy := p.Diff(target)
	return target.Add(dx/2, dy/2)
}
