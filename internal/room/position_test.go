package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(t *testing.T, x, y uint8, name string) Position {
	t.Helper()
	p, err := CheckedXY(x, y)
	require.NoError(t, err)
	return NewPosition(p.X, p.Y, MustParseRoomName(name))
}

// packedFixtures pin the packed layout against values produced by the
// game engine itself.
var packedFixtures = []struct {
	packed uint32
	x, y   uint8
	room   string
}{
	{2172526892, 33, 44, "E1N1"},
	{2491351576, 2, 24, "E20N0"},
	{2139029504, 0, 0, "W0N0"},
	{2155806720, 0, 0, "E0N0"},
	{2139095040, 0, 0, "W0S0"},
	{2155872256, 0, 0, "E0S0"},
	{2021333800, 27, 40, "W7N4"},
}

func TestPositionPackedLayout(t *testing.T) {
	for _, tt := range packedFixtures {
		p := pos(t, tt.x, tt.y, tt.room)
		assert.Equal(t, tt.packed, p.PackedRepr(), "%s (%d, %d)", tt.room, tt.x, tt.y)

		decoded := PositionFromPacked(tt.packed)
		assert.Equal(t, uint8(tt.x), decoded.X().Val())
		assert.Equal(t, uint8(tt.y), decoded.Y().Val())
		assert.Equal(t, tt.room, decoded.RoomName().String())
	}
}

func TestPositionFromPackedRejectsBadCoords(t *testing.T) {
	// In-room byte 50 is never produced by a valid encoder.
	bad := uint32(50) << 8
	assert.Panics(t, func() { PositionFromPacked(bad) })
	_, err := CheckedPositionFromPacked(bad)
	assert.Error(t, err)
}

func TestPositionAccessors(t *testing.T) {
	p := pos(t, 33, 44, "E1N1")
	assert.Equal(t, uint8(33), p.X().Val())
	assert.Equal(t, uint8(44), p.Y().Val())
	assert.Equal(t, UncheckedXY(33, 44), p.XY())
	assert.Equal(t, MustParseRoomName("E1N1"), p.RoomName())
	assert.Equal(t, "[room E1N1 pos 33,44]", p.String())
}

func TestPositionWith(t *testing.T) {
	p := pos(t, 10, 20, "E1N1")
	q := p.WithX(UncheckedCoordinate(30))
	assert.Equal(t, uint8(30), q.X().Val())
	assert.Equal(t, uint8(20), q.Y().Val())
	assert.Equal(t, uint8(10), p.X().Val(), "original must be unchanged")

	q = p.WithY(UncheckedCoordinate(5)).WithRoomName(MustParseRoomName("W3S7"))
	assert.Equal(t, uint8(10), q.X().Val())
	assert.Equal(t, uint8(5), q.Y().Val())
	assert.Equal(t, "W3S7", q.RoomName().String())

	p.SetX(UncheckedCoordinate(1))
	p.SetY(UncheckedCoordinate(2))
	assert.Equal(t, UncheckedXY(1, 2), p.XY())
}

func TestPositionWorldCoords(t *testing.T) {
	tests := []struct {
		x, y   uint8
		room   string
		wx, wy int
	}{
		{0, 0, "E0S0", 0, 0},
		{49, 49, "W0N0", -1, -1},
		{33, 44, "E1N1", 83, -56},
		{0, 0, "W127N127", -6400, -6400},
		{49, 49, "E127S127", 6399, 6399},
	}
	for _, tt := range tests {
		p := pos(t, tt.x, tt.y, tt.room)
		wx, wy := p.WorldCoords()
		assert.Equal(t, tt.wx, wx, "%s world x", tt.room)
		assert.Equal(t, tt.wy, wy, "%s world y", tt.room)
		assert.Equal(t, p, PositionFromWorldCoords(wx, wy), "%s round trip", tt.room)
	}

	for _, c := range [][2]int{{-6401, 0}, {6400, 0}, {0, -6401}, {0, 6400}} {
		_, err := CheckedPositionFromWorldCoords(c[0], c[1])
		var oob WorldOutOfBoundsError
		assert.ErrorAs(t, err, &oob, "(%d, %d)", c[0], c[1])
	}
}

func TestPositionAddCrossesRooms(t *testing.T) {
	p := pos(t, 49, 20, "E1N1")
	q := p.Add(1, 0)
	assert.Equal(t, pos(t, 0, 20, "E2N1"), q)

	// The N0/S0 seam has no room between the two halves.
	p = pos(t, 21, 0, "E1S0")
	q = p.Add(-5, -5)
	assert.Equal(t, pos(t, 16, 45, "E1N0"), q)

	q = pos(t, 0, 0, "E0S0").Sub(1, 1)
	assert.Equal(t, pos(t, 49, 49, "W0N0"), q)

	dx, dy := pos(t, 0, 0, "E1N1").Diff(pos(t, 40, 20, "E0N1"))
	assert.Equal(t, 10, dx)
	assert.Equal(t, -20, dy)

	assert.Panics(t, func() {
		pos(t, 0, 0, "W127N127").Add(-1, 0)
	})
}

func TestPositionOffsetAndDirections(t *testing.T) {
	p := pos(t, 10, 10, "E1N1")
	p.Offset(5, -3)
	assert.Equal(t, pos(t, 15, 7, "E1N1"), p)

	q := pos(t, 0, 10, "E1N1").AddDirection(Left)
	assert.Equal(t, pos(t, 49, 10, "E0N1"), q)

	d, ok := pos(t, 10, 10, "E1N1").GetDirectionTo(pos(t, 12, 11, "E1N1"))
	require.True(t, ok)
	assert.Equal(t, BottomRight, d)

	// Works across rooms via world coordinates; N2 lies north of N1.
	d, ok = pos(t, 25, 25, "E1N1").GetDirectionTo(pos(t, 25, 25, "E1N2"))
	require.True(t, ok)
	assert.Equal(t, Top, d)

	_, ok = p.GetDirectionTo(p)
	assert.False(t, ok)
}

func TestPositionRange(t *testing.T) {
	a := pos(t, 49, 25, "E0N0")
	b := pos(t, 0, 25, "E1N0")
	assert.Equal(t, 1, a.GetRangeTo(b), "range counts across the room seam")
	assert.True(t, a.InRangeTo(b, 1))

	// Adjacent tiles in different rooms are in range 1 but not "near".
	assert.False(t, a.IsNearTo(b))
	assert.True(t, a.IsNearTo(a.WithX(UncheckedCoordinate(48))))

	assert.True(t, a.IsEqualTo(a))
	assert.False(t, a.IsEqualTo(b))
}

func TestPositionTowards(t *testing.T) {
	start := pos(t, 10, 10, "E1N1")

	target := start.Add(10, 10)
	assert.Equal(t, start.Add(5, 5), start.Towards(target, 5))

	target = start.Add(10, 20)
	assert.Equal(t, start.Add(5, 10), start.Towards(target, 10))

	// Truncation rounds toward the start.
	target = start.Add(1, 2)
	assert.Equal(t, start.Add(0, 1), start.Towards(target, 1))

	// Never overshoots.
	assert.Equal(t, target, start.Towards(target, 100))
	assert.Equal(t, start, start.Towards(start, 3))
}

func TestPositionBetween(t *testing.T) {
	start := pos(t, 10, 10, "E1N1")
	target := start.Add(10, 20)
	assert.Equal(t, target.Add(-5, -10), start.Between(target, 10))
	assert.Equal(t, target, start.Between(target, 0))
}

func TestPositionMidpointBetween(t *testing.T) {
	start := pos(t, 10, 10, "E1N1")
	target := start.Add(10, 20)
	assert.Equal(t, start.Add(5, 10), start.MidpointBetween(target))

	// Ties round toward the target.
	target = start.Add(1, 1)
	assert.Equal(t, target, start.MidpointBetween(target))
}

func TestPositionCmp(t *testing.T) {
	// World y dominates, then world x.
	a := pos(t, 49, 0, "W0N0")
	b := pos(t, 0, 1, "W0N0")
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))

	// Same world row across different rooms.
	left := pos(t, 49, 25, "W1N0")
	right := pos(t, 0, 25, "W0N0")
	assert.Equal(t, -1, left.Cmp(right))

	assert.Equal(t, 0, a.Cmp(a))
}
