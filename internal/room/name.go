package room

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// maxNameLen is the longest well-formed room name ("W127N127").
const maxNameLen = 8

// RoomName identifies a room by its signed room-grid coordinates,
// stored packed: each coordinate shifted by +HalfWorldSize into an
// unsigned byte, x in the high byte and y in the low byte.
//
// "Exx" maps to x = xx and "Wxx" to x = -xx-1; "Syy" maps to y = yy and
// "Nyy" to y = -yy-1. The literal "sim" maps to room-grid (0, 0).
type RoomName struct {
	packed uint16
}

// RoomNameTooLongError reports an input too long to be a room name.
// The offending string is not retained.
type RoomNameTooLongError struct {
	Length int
}

func (e RoomNameTooLongError) Error() string {
	return fmt.Sprintf("room name too long: %d characters (max %d)", e.Length, maxNameLen)
}

// RoomNameFormatError reports an input that does not match the
// (E|W)<num>(N|S)<num> shape.
type RoomNameFormatError struct {
	Name string
}

func (e RoomNameFormatError) Error() string {
	return fmt.Sprintf("expected room name formatted (E|W)[0-9]+(N|S)[0-9]+, found %q", e.Name)
}

// RoomNameOutOfBoundsError reports room-grid coordinates outside
// [-HalfWorldSize, HalfWorldSize).
type RoomNameOutOfBoundsError struct {
	X, Y int
}

func (e RoomNameOutOfBoundsError) Error() string {
	return fmt.Sprintf("room-grid coordinates out of bounds: (%d, %d)", e.X, e.Y)
}

// NewRoomName builds a RoomName from signed room-grid coordinates,
// failing if either lies outside [-HalfWorldSize, HalfWorldSize).
func NewRoomName(x, y int) (RoomName, error) {
	if x < -HalfWorldSize || x >= HalfWorldSize || y < -HalfWorldSize || y >= HalfWorldSize {
		return RoomName{}, RoomNameOutOfBoundsError{X: x, Y: y}
	}
	return RoomName{
		packed: uint16(x+HalfWorldSize)<<8 | uint16(y+HalfWorldSize),
	}, nil
}

// RoomNameFromPacked rebuilds a RoomName from its packed two-byte form.
// Every uint16 is a valid packed room name, so this cannot fail.
func RoomNameFromPacked(packed uint16) RoomName {
	return RoomName{packed: packed}
}

// ParseRoomName parses "E1N1"-style names, case-insensitively, plus the
// literal "sim". The error distinguishes over-long input, shape
// mismatches and out-of-range coordinates.
func ParseRoomName(s string) (RoomName, error) {
	if s == "sim" {
		return NewRoomName(0, 0)
	}
	if len(s) > maxNameLen {
		return RoomName{}, RoomNameTooLongError{Length: len(s)}
	}
	if len(s) < 4 {
		return RoomName{}, RoomNameFormatError{Name: s}
	}

	var east bool
	switch s[0] {
	case 'E', 'e':
		east = true
	case 'W', 'w':
		east = false
	default:
		return RoomName{}, RoomNameFormatError{Name: s}
	}

	// Scan digits up to the N/S separator.
	sep := -1
	for i := 1; i < len(s); i++ {
		if c := s[i]; c == 'N' || c == 'n' || c == 'S' || c == 's' {
			sep = i
			break
		}
	}
	if sep <= 1 || sep == len(s)-1 {
		return RoomName{}, RoomNameFormatError{Name: s}
	}
	south := s[sep] == 'S' || s[sep] == 's'

	xNum, ok := parseRoomNum(s[1:sep])
	if !ok {
		return RoomName{}, RoomNameFormatError{Name: s}
	}
	yNum, ok := parseRoomNum(s[sep+1:])
	if !ok {
		return RoomName{}, RoomNameFormatError{Name: s}
	}

	x := xNum
	if !east {
		x = -xNum - 1
	}
	y := yNum
	if !south {
		y = -yNum - 1
	}
	return NewRoomName(x, y)
}

// parseRoomNum parses a run of decimal digits. Unlike strconv.Atoi it
// rejects signs, which the room-name grammar does not allow.
func parseRoomNum(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MustParseRoomName is ParseRoomName for known-good literals; it panics
// on error.
func MustParseRoomName(s string) RoomName {
	n, err := ParseRoomName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// PackedRepr returns the two-byte packed form:
// (x + HalfWorldSize) << 8 | (y + HalfWorldSize).
func (n RoomName) PackedRepr() uint16 {
	return n.packed
}

// XCoord returns the signed horizontal room-grid coordinate.
func (n RoomName) XCoord() int {
	return int(n.packed>>8) - HalfWorldSize
}

// YCoord returns the signed vertical room-grid coordinate.
func (n RoomName) YCoord() int {
	return int(n.packed&0xFF) - HalfWorldSize
}

// String returns the canonical E#N#/W#S# form; parsing the result yields
// the same RoomName.
func (n RoomName) String() string {
	x, y := n.XCoord(), n.YCoord()
	var hor, ver string
	if x >= 0 {
		hor = "E" + strconv.Itoa(x)
	} else {
		hor = "W" + strconv.Itoa(-x-1)
	}
	if y >= 0 {
		ver = "S" + strconv.Itoa(y)
	} else {
		ver = "N" + strconv.Itoa(-y-1)
	}
	return hor + ver
}

// CheckedAdd offsets the room-grid coordinates, failing if either axis
// leaves the valid range.
func (n RoomName) CheckedAdd(dx, dy int) (RoomName, error) {
	return NewRoomName(n.XCoord()+dx, n.YCoord()+dy)
}

// Add offsets the room-grid coordinates. Unlike saturating
// world-position arithmetic this is an explicit room-grid move, so it
// panics if the result leaves the valid range.
func (n RoomName) Add(dx, dy int) RoomName {
	out, err := n.CheckedAdd(dx, dy)
	if err != nil {
		panic(err)
	}
	return out
}

// Sub returns the signed room-grid displacement from other to n
// (east-positive, south-positive).
func (n RoomName) Sub(other RoomName) (int, int) {
	return n.XCoord() - other.XCoord(), n.YCoord() - other.YCoord()
}

// MarshalJSON emits the canonical string form.
func (n RoomName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON parses a string room name.
func (n *RoomName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRoomName(s)
	if err != nil {
		return fmt.Errorf("decoding room name: %w", err)
	}
	*n = parsed
	return nil
}
