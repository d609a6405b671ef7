package room

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// RoomXY is an in-room coordinate pair. Value type, compared and hashed
// by value, usable as a map key.
type RoomXY struct {
	X RoomCoordinate
	Y RoomCoordinate
}

// NewXY builds a RoomXY from two already-validated coordinates.
func NewXY(x, y RoomCoordinate) RoomXY {
	return RoomXY{X: x, Y: y}
}

// CheckedXY validates both values and returns their coordinate pair.
func CheckedXY(x, y uint8) (RoomXY, error) {
	cx, err := NewCoordinate(x)
	if err != nil {
		return RoomXY{}, err
	}
	cy, err := NewCoordinate(y)
	if err != nil {
		return RoomXY{}, err
	}
	return RoomXY{X: cx, Y: cy}, nil
}

// UncheckedXY converts both values without validation. The caller must
// guarantee x < Size and y < Size.
func UncheckedXY(x, y uint8) RoomXY {
	return RoomXY{X: RoomCoordinate(x), Y: RoomCoordinate(y)}
}

// CheckedAdd returns the pair shifted by (dx, dy), or false if either
// axis leaves the room.
func (xy RoomXY) CheckedAdd(dx, dy int) (RoomXY, bool) {
	x, ok := xy.X.CheckedAdd(dx)
	if !ok {
		return RoomXY{}, false
	}
	y, ok := xy.Y.CheckedAdd(dy)
	if !ok {
		return RoomXY{}, false
	}
	return RoomXY{X: x, Y: y}, true
}

// SaturatingAdd returns the pair shifted by (dx, dy), each axis clamped
// to the room edges.
func (xy RoomXY) SaturatingAdd(dx, dy int) RoomXY {
	return RoomXY{
		X: xy.X.SaturatingAdd(dx),
		Y: xy.Y.SaturatingAdd(dy),
	}
}

// CheckedAddDirection returns the neighboring pair in the given
// direction, or false at a room edge.
func (xy RoomXY) CheckedAddDirection(d Direction) (RoomXY, bool) {
	dx, dy := d.Offset()
	return xy.CheckedAdd(dx, dy)
}

// SaturatingAddDirection returns the neighboring pair in the given
// direction, clamped to the room edges.
func (xy RoomXY) SaturatingAddDirection(d Direction) RoomXY {
	dx, dy := d.Offset()
	return xy.SaturatingAdd(dx, dy)
}

// Add returns the pair shifted by (dx, dy).
// Panics if the result leaves the room; use CheckedAdd to recover instead.
func (xy RoomXY) Add(dx, dy int) RoomXY {
	out, ok := xy.CheckedAdd(dx, dy)
	if !ok {
		panic(fmt.Sprintf("room xy %v + (%d, %d) out of bounds", xy, dx, dy))
	}
	return out
}

// Sub returns the (dx, dy) offset from other to xy.
func (xy RoomXY) Sub(other RoomXY) (int, int) {
	return int(xy.X) - int(other.X), int(xy.Y) - int(other.Y)
}

// IsRoomEdge reports whether either coordinate lies on a room edge.
func (xy RoomXY) IsRoomEdge() bool {
	return xy.X.IsEdge() || xy.Y.IsEdge()
}

// Neighbors returns the adjacent in-bounds pairs, in clockwise direction
// order starting from Top. Directions that fall outside the room are
// skipped, so corner cells get three entries and interior cells eight.
func (xy RoomXY) Neighbors() []RoomXY {
	out := make([]RoomXY, 0, 8)
	for _, d := range Directions() {
		if n, ok := xy.CheckedAddDirection(d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Cmp orders pairs by (y, x) ascending: top-to-bottom, then
// left-to-right. Returns -1, 0 or +1.
func (xy RoomXY) Cmp(other RoomXY) int {
	switch {
	case xy.Y != other.Y:
		if xy.Y < other.Y {
			return -1
		}
		return 1
	case xy.X != other.X:
		if xy.X < other.X {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (xy RoomXY) String() string {
	return fmt.Sprintf("(%d, %d)", uint8(xy.X), uint8(xy.Y))
}

type readableXY struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

// MarshalJSON emits the human-readable form {"x": .., "y": ..}.
func (xy RoomXY) MarshalJSON() ([]byte, error) {
	return json.Marshal(readableXY{X: uint8(xy.X), Y: uint8(xy.Y)})
}

// UnmarshalJSON accepts the human-readable form, rejecting out-of-range
// coordinates.
func (xy *RoomXY) UnmarshalJSON(data []byte) error {
	var r readableXY
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	parsed, err := CheckedXY(r.X, r.Y)
	if err != nil {
		return fmt.Errorf("decoding room xy: %w", err)
	}
	*xy = parsed
	return nil
}

// MarshalBinary emits the compact form: a big-endian uint16 holding
// x in the high byte and y in the low byte.
func (xy RoomXY) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(xy.X)<<8|uint16(xy.Y))
	return buf, nil
}

// UnmarshalBinary decodes the compact form, rejecting out-of-range
// coordinates.
func (xy *RoomXY) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return fmt.Errorf("decoding room xy: expected 2 bytes, got %d", len(data))
	}
	packed := binary.BigEndian.Uint16(data)
	parsed, err := CheckedXY(uint8(packed>>8), uint8(packed&0xFF))
	if err != nil {
		return fmt.Errorf("decoding room xy: %w", err)
	}
	*xy = parsed
	return nil
}
