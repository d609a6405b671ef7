package room

// directionTo picks the 8-way direction that best matches the offset
// (dx, dy), reproducing the engine's rounding rule: an axis direction
// wins when its magnitude exceeds twice the other axis, otherwise the
// diagonal matching the signs is chosen. Returns false for (0, 0).
func directionTo(dx, dy int) (Direction, bool) {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx > ady*2:
		if dx > 0 {
			return Right, true
		}
		return Left, true
	case ady > adx*2:
		if dy > 0 {
			return Bottom, true
		}
		return Top, true
	case dx > 0 && dy > 0:
		return BottomRight, true
	case dx > 0 && dy < 0:
		return TopRight, true
	case dx < 0 && dy > 0:
		return BottomLeft, true
	case dx < 0 && dy < 0:
		return TopLeft, true
	default:
		return 0, false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// GetDirectionTo returns the 8-way direction from xy toward target.
// Ties favor axis directions over diagonals; returns false only when the
// two pairs are equal.
func (xy RoomXY) GetDirectionTo(target RoomXY) (Direction, bool) {
	dx, dy := target.Sub(xy)
	return directionTo(dx, dy)
}

// GetRangeTo returns the Chebyshev distance to target:
// max(|dx|, |dy|).
func (xy RoomXY) GetRangeTo(target RoomXY) uint8 {
	dx, dy := xy.Sub(target)
	return uint8(maxInt(abs(dx), abs(dy)))
}

// InRangeTo reports whether target is within the given Chebyshev range.
func (xy RoomXY) InRangeTo(target RoomXY, r uint8) bool {
	return xy.GetRangeTo(target) <= r
}

// IsNearTo reports whether target is adjacent or equal (range <= 1).
func (xy RoomXY) IsNearTo(target RoomXY) bool {
	return xy.InRangeTo(target, 1)
}

// IsEqualTo reports whether both pairs name the same tile.
func (xy RoomXY) IsEqualTo(target RoomXY) bool {
	return xy == target
}
