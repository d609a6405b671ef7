package room

import "fmt"

// Terrain is the kind of ground at one tile.
type Terrain uint8

const (
	TerrainPlain Terrain = 0
	TerrainWall  Terrain = 1
	TerrainSwamp Terrain = 2
)

// terrainFromByte decodes one raw terrain byte. Only the low two bits
// carry meaning; the wall bit wins when both wall and swamp are set.
func terrainFromByte(b uint8) Terrain {
	switch b & 0b11 {
	case 1, 3:
		return TerrainWall
	case 2:
		return TerrainSwamp
	default:
		return TerrainPlain
	}
}

func (t Terrain) String() string {
	switch t {
	case TerrainPlain:
		return "plain"
	case TerrainWall:
		return "wall"
	case TerrainSwamp:
		return "swamp"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// ParseTerrain is the inverse of String.
func ParseTerrain(s string) (Terrain, error) {
	switch s {
	case "plain":
		return TerrainPlain, nil
	case "wall":
		return TerrainWall, nil
	case "swamp":
		return TerrainSwamp, nil
	default:
		return 0, fmt.Errorf("unknown terrain %q", s)
	}
}

// LocalRoomTerrain is an immutable snapshot of one room's terrain,
// stored as raw bytes in terrain-index (row-major) order.
type LocalRoomTerrain struct {
	bits [Area]uint8
}

// NewLocalRoomTerrain copies a raw terrain buffer. The buffer must hold
// exactly one byte per tile.
func NewLocalRoomTerrain(bits []byte) (*LocalRoomTerrain, error) {
	if len(bits) != Area {
		return nil, fmt.Errorf("terrain buffer must be %d bytes, got %d", Area, len(bits))
	}
	t := &LocalRoomTerrain{}
	copy(t.bits[:], bits)
	return t, nil
}

// Get returns the terrain kind at xy.
func (t *LocalRoomTerrain) Get(xy RoomXY) Terrain {
	return terrainFromByte(t.bits[TerrainIndex(xy)])
}

// GetXY returns the terrain kind at raw in-room coordinates. The caller
// must guarantee both are below Size.
func (t *LocalRoomTerrain) GetXY(x, y uint8) Terrain {
	return t.Get(UncheckedXY(x, y))
}
