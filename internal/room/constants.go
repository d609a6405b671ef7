package room

// Room grid dimensions.
const (
	// Size is the width and height of a room in tiles.
	Size = 50
	// Area is the number of tiles in a room (Size * Size = 2500).
	Area = Size * Size
)

// World dimensions.
const (
	// HalfWorldSize is added to a signed room-grid coordinate before it is
	// stored in the packed representation. It also bounds the room grid:
	// -HalfWorldSize is the minimum representable room-grid coordinate and
	// HalfWorldSize-1 the maximum.
	HalfWorldSize = 128

	// World coordinate bounds (half-open: min inclusive, max exclusive).
	worldCoordMin = -HalfWorldSize * Size // -6400
	worldCoordMax = HalfWorldSize * Size  // 6400
)

// CostIndex converts a coordinate pair to the linear index used by the
// internal representation of a cost matrix: idx = x*50 + y (x-major).
//
// Cost matrices and terrain buffers use different, incompatible linear
// orders. Never use this index against a terrain buffer; see TerrainIndex.
func CostIndex(xy RoomXY) int {
	return int(xy.X)*Size + int(xy.Y)
}

// CostIndexToXY is the inverse of CostIndex.
// Panics if idx is outside [0, Area).
func CostIndexToXY(idx int) RoomXY {
	if idx < 0 || idx >= Area {
		panic(OutOfBoundsError{Value: idx})
	}
	return RoomXY{
		X: RoomCoordinate(idx / Size),
		Y: RoomCoordinate(idx % Size),
	}
}

// TerrainIndex converts a coordinate pair to the linear index used by the
// internal representation of a terrain buffer: idx = y*50 + x (y-major).
//
// Not interchangeable with CostIndex; the two backing stores swap X/Y order.
func TerrainIndex(xy RoomXY) int {
	return int(xy.Y)*Size + int(xy.X)
}

// TerrainIndexToXY is the inverse of TerrainIndex.
// Panics if idx is outside [0, Area).
func TerrainIndexToXY(idx int) RoomXY {
	if idx < 0 || idx >= Area {
		panic(OutOfBoundsError{Value: idx})
	}
	return RoomXY{
		X: RoomCoordinate(idx % Size),
		Y: RoomCoordinate(idx / Size),
	}
}
