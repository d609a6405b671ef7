package room

import "fmt"

// Position is a world-spanning coordinate: a room name plus an in-room
// pair, packed into a single uint32 with, from high byte to low byte:
// packed room x, packed room y, in-room x, in-room y.
//
// This is the same layout the game engine uses for its own packed
// positions, so the integer can cross the host boundary untranslated.
type Position struct {
	packed uint32
}

// WorldOutOfBoundsError reports world coordinates outside the
// representable range [-HalfWorldSize*Size, HalfWorldSize*Size).
type WorldOutOfBoundsError struct {
	X, Y int
}

func (e WorldOutOfBoundsError) Error() string {
	return fmt.Sprintf("world coordinates out of bounds: (%d, %d)", e.X, e.Y)
}

// NewPosition packs an in-room pair and a room name into a Position.
// The inputs are already bounded types, so the packed value is always
// valid.
func NewPosition(x, y RoomCoordinate, name RoomName) Position {
	return Position{
		packed: uint32(name.PackedRepr())<<16 | uint32(x)<<8 | uint32(y),
	}
}

// PositionFromPacked rebuilds a Position from the host's packed integer.
// Panics if the embedded in-room coordinates are out of range, which can
// only happen on a malformed or corrupted integer.
func PositionFromPacked(packed uint32) Position {
	x := packed >> 8 & 0xFF
	y := packed & 0xFF
	if x >= Size {
		panic(fmt.Sprintf("packed position has out of bounds x: %d", x))
	}
	if y >= Size {
		panic(fmt.Sprintf("packed position has out of bounds y: %d", y))
	}
	return Position{packed: packed}
}

// CheckedPositionFromPacked is PositionFromPacked returning an error
// instead of panicking, for decoding untrusted input.
func CheckedPositionFromPacked(packed uint32) (Position, error) {
	x := packed >> 8 & 0xFF
	y := packed & 0xFF
	if x >= Size || y >= Size {
		return Position{}, OutOfBoundsError{Value: int(maxU32(x, y))}
	}
	return Position{packed: packed}, nil
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// PackedRepr returns the packed 32-bit form.
func (p Position) PackedRepr() uint32 {
	return p.packed
}

// X returns the in-room x coordinate.
func (p Position) X() RoomCoordinate {
	// The packed invariant guarantees the byte is < Size.
	return RoomCoordinate(p.packed >> 8 & 0xFF)
}

// Y returns the in-room y coordinate.
func (p Position) Y() RoomCoordinate {
	return RoomCoordinate(p.packed & 0xFF)
}

// XY returns the in-room coordinate pair.
func (p Position) XY() RoomXY {
	return RoomXY{X: p.X(), Y: p.Y()}
}

// RoomName returns the room this position lies in.
func (p Position) RoomName() RoomName {
	return RoomNameFromPacked(uint16(p.packed >> 16))
}

// SetX rewrites only the in-room x byte.
func (p *Position) SetX(x RoomCoordinate) {
	p.packed = p.packed&^uint32(0xFF<<8) | uint32(x)<<8
}

// SetY rewrites only the in-room y byte.
func (p *Position) SetY(y RoomCoordinate) {
	p.packed = p.packed&^uint32(0xFF) | uint32(y)
}

// SetRoomName rewrites only the room-name bytes.
func (p *Position) SetRoomName(name RoomName) {
	p.packed = p.packed&0xFFFF | uint32(name.PackedRepr())<<16
}

// WithX returns a copy with the in-room x byte replaced.
func (p Position) WithX(x RoomCoordinate) Position {
	p.SetX(x)
	return p
}

// WithY returns a copy with the in-room y byte replaced.
func (p Position) WithY(y RoomCoordinate) Position {
	p.SetY(y)
	return p
}

// WithRoomName returns a copy with the room-name bytes replaced.
func (p Position) WithRoomName(name RoomName) Position {
	p.SetRoomName(name)
	return p
}

// roomX returns the signed horizontal room-grid coordinate.
func (p Position) roomX() int {
	return p.RoomName().XCoord()
}

// roomY returns the signed vertical room-grid coordinate.
func (p Position) roomY() int {
	return p.RoomName().YCoord()
}

// WorldX returns the horizontal world coordinate: room_x*50 + x. World
// coordinates extend the in-room grid of E0S0 across the whole map, with
// east and south positive.
func (p Position) WorldX() int {
	return p.roomX()*Size + int(p.X())
}

// WorldY returns the vertical world coordinate: room_y*50 + y.
func (p Position) WorldY() int {
	return p.roomY()*Size + int(p.Y())
}

// WorldCoords returns both world coordinates.
func (p Position) WorldCoords() (int, int) {
	return p.WorldX(), p.WorldY()
}

// CheckedPositionFromWorldCoords is the inverse of WorldCoords, failing
// if either coordinate lies outside the representable world.
func CheckedPositionFromWorldCoords(x, y int) (Position, error) {
	if x < worldCoordMin || x >= worldCoordMax || y < worldCoordMin || y >= worldCoordMax {
		return Position{}, WorldOutOfBoundsError{X: x, Y: y}
	}
	// Shift into non-negative space first so division and modulo agree
	// on the room boundary for negative coordinates.
	px := x - worldCoordMin
	py := y - worldCoordMin
	return Position{
		packed: uint32(px/Size)<<24 | uint32(py/Size)<<16 | uint32(px%Size)<<8 | uint32(py%Size),
	}, nil
}

// PositionFromWorldCoords is the inverse of WorldCoords.
// Panics if either coordinate is out of the representable range rather
// than silently wrapping.
func PositionFromWorldCoords(x, y int) Position {
	p, err := CheckedPositionFromWorldCoords(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Cmp orders positions by ascending (world y, world x), matching
// left-to-right, top-to-bottom map reading order. Returns -1, 0 or +1.
func (p Position) Cmp(other Position) int {
	py, oy := p.WorldY(), other.WorldY()
	switch {
	case py < oy:
		return -1
	case py > oy:
		return 1
	}
	px, ox := p.WorldX(), other.WorldX()
	switch {
	case px < ox:
		return -1
	case px > ox:
		return 1
	default:
		return 0
	}
}

func (p Position) String() string {
	return fmt.Sprintf("[room %s pos %d,%d]", p.RoomName(), uint8(p.X()), uint8(p.Y()))
}
