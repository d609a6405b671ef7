package room

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// readablePosition is the human-readable wire form of a Position,
// matching the host engine's {roomName, x, y} objects.
type readablePosition struct {
	RoomName RoomName `json:"roomName"`
	X        uint8    `json:"x"`
	Y        uint8    `json:"y"`
}

// MarshalJSON emits the human-readable {roomName, x, y} form.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(readablePosition{
		RoomName: p.RoomName(),
		X:        uint8(p.X()),
		Y:        uint8(p.Y()),
	})
}

// UnmarshalJSON is lenient, matching what the host may hand us: either a
// {roomName, x, y} object or a bare packed integer.
func (p *Position) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		// Convention of the stdlib: null leaves the value untouched.
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] != '{' {
		var packed uint32
		if err := json.Unmarshal(trimmed, &packed); err != nil {
			return fmt.Errorf("decoding packed position: %w", err)
		}
		pos, err := CheckedPositionFromPacked(packed)
		if err != nil {
			return fmt.Errorf("decoding packed position: %w", err)
		}
		*p = pos
		return nil
	}

	var r readablePosition
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return err
	}
	xy, err := CheckedXY(r.X, r.Y)
	if err != nil {
		return fmt.Errorf("decoding position: %w", err)
	}
	*p = NewPosition(xy.X, xy.Y, r.RoomName)
	return nil
}

// MarshalBinary emits the compact form: the packed uint32, big-endian.
func (p Position) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, p.packed)
	return buf, nil
}

// UnmarshalBinary decodes the compact form, rejecting malformed packed
// values.
func (p *Position) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("decoding position: expected 4 bytes, got %d", len(data))
	}
	pos, err := CheckedPositionFromPacked(binary.BigEndian.Uint32(data))
	if err != nil {
		return fmt.Errorf("decoding position: %w", err)
	}
	*p = pos
	return nil
}
