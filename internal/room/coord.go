package room

import (
	"encoding/json"
	"fmt"
)

// OutOfBoundsError reports a value outside the valid room range.
type OutOfBoundsError struct {
	Value int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("out of bounds coordinate: %d", e.Value)
}

// RoomCoordinate is a single-axis in-room coordinate, valid in [0, 50).
//
// Checked constructors never produce a value >= Size. Code that bypasses
// them (conversion or UncheckedCoordinate with a bad value) breaks the
// invariant that grid indexing relies on to skip bounds checks.
type RoomCoordinate uint8

// NewCoordinate validates v and returns it as a RoomCoordinate.
func NewCoordinate(v uint8) (RoomCoordinate, error) {
	if v >= Size {
		return 0, OutOfBoundsError{Value: int(v)}
	}
	return RoomCoordinate(v), nil
}

// UncheckedCoordinate converts v without validation.
// The caller must guarantee v < Size; use it only where the bound has
// already been proven (for example when decoding a previously packed
// position).
func UncheckedCoordinate(v uint8) RoomCoordinate {
	return RoomCoordinate(v)
}

// Val returns the coordinate as a plain uint8.
func (c RoomCoordinate) Val() uint8 {
	return uint8(c)
}

// CheckedAdd returns the coordinate shifted by d, or false if the result
// leaves [0, Size).
func (c RoomCoordinate) CheckedAdd(d int) (RoomCoordinate, bool) {
	v := int(c) + d
	if v < 0 || v >= Size {
		return 0, false
	}
	return RoomCoordinate(v), true
}

// SaturatingAdd returns the coordinate shifted by d, clamped to 0 or Size-1.
func (c RoomCoordinate) SaturatingAdd(d int) RoomCoordinate {
	v := int(c) + d
	if v < 0 {
		return 0
	}
	if v >= Size {
		return Size - 1
	}
	return RoomCoordinate(v)
}

// IsEdge reports whether the coordinate lies on a room edge (0 or 49).
func (c RoomCoordinate) IsEdge() bool {
	return c == 0 || c == Size-1
}

// Cmp orders coordinates ascending. Returns -1, 0 or +1.
func (c RoomCoordinate) Cmp(other RoomCoordinate) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

func (c RoomCoordinate) String() string {
	return fmt.Sprintf("%d", uint8(c))
}

// MarshalJSON emits the bare numeric value.
func (c RoomCoordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint8(c))
}

// UnmarshalJSON decodes a bare number, rejecting out-of-range values.
func (c *RoomCoordinate) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := NewCoordinate(v)
	if err != nil {
		return fmt.Errorf("decoding coordinate: %w", err)
	}
	*c = parsed
	return nil
}
