package room

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCostMatrixGetSet(t *testing.T) {
	m := NewLocalCostMatrix()
	assert.Equal(t, uint8(0), m.Get(xy(10, 10)))

	m.Set(xy(10, 10), 5)
	assert.Equal(t, uint8(5), m.Get(xy(10, 10)))
	// The transposed cell stays untouched; the backing order is x-major.
	assert.Equal(t, uint8(0), m.Get(xy(10, 11)))
	assert.Equal(t, uint8(5), m.Bits()[10*Size+10])
}

func TestLocalCostMatrixFromBits(t *testing.T) {
	buf := make([]byte, Area)
	buf[3*Size+7] = 42
	m, err := LocalCostMatrixFromBits(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(42), m.Get(xy(3, 7)))

	_, err = LocalCostMatrixFromBits(make([]byte, Area-1))
	assert.Error(t, err)
}

func TestLocalCostMatrixForEachOrder(t *testing.T) {
	m := NewLocalCostMatrix()
	var first, second RoomXY
	i := 0
	m.ForEach(func(p RoomXY, _ uint8) {
		switch i {
		case 0:
			first = p
		case 1:
			second = p
		}
		i++
	})
	assert.Equal(t, Area, i)
	assert.Equal(t, xy(0, 0), first)
	// Cost-index order advances y within a column.
	assert.Equal(t, xy(0, 1), second)
}

func TestDenseSparseRoundTrip(t *testing.T) {
	m := NewLocalCostMatrix()
	m.Set(xy(10, 10), 5)

	s := m.ToSparse()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, uint8(5), s.Get(xy(10, 10)))

	back := s.ToDense()
	assert.Equal(t, m, back)
}

func TestMergeFromDenseSkipsZeroes(t *testing.T) {
	dst := NewLocalCostMatrix()
	dst.Set(xy(1, 1), 7)
	dst.Set(xy(2, 2), 9)

	src := NewLocalCostMatrix()
	src.Set(xy(2, 2), 3)

	dst.MergeFromDense(src)
	assert.Equal(t, uint8(7), dst.Get(xy(1, 1)), "zero cell in src must not clear dst")
	assert.Equal(t, uint8(3), dst.Get(xy(2, 2)))
}

func TestMergeFromSparseOverwritesWithExplicitZero(t *testing.T) {
	dst := NewLocalCostMatrix()
	dst.Set(xy(1, 1), 7)

	src := NewSparseCostMatrix()
	src.Set(xy(1, 1), 0)
	src.Set(xy(3, 3), 4)

	dst.MergeFromSparse(src)
	assert.Equal(t, uint8(0), dst.Get(xy(1, 1)), "explicit zero entries do overwrite")
	assert.Equal(t, uint8(4), dst.Get(xy(3, 3)))
}

func TestLocalCostMatrixClone(t *testing.T) {
	m := NewLocalCostMatrix()
	m.Set(xy(5, 5), 1)
	c := m.Clone()
	c.Set(xy(5, 5), 2)
	assert.Equal(t, uint8(1), m.Get(xy(5, 5)))
	assert.Equal(t, uint8(2), c.Get(xy(5, 5)))
}

func TestLocalCostMatrixJSON(t *testing.T) {
	m := NewLocalCostMatrix()
	m.Set(xy(0, 3), 255)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	// The wire form is a numeric array, never a base64 string.
	var cells []int
	require.NoError(t, json.Unmarshal(data, &cells))
	require.Len(t, cells, Area)
	assert.Equal(t, 255, cells[3])
	assert.Equal(t, 0, cells[4])

	var decoded LocalCostMatrix
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *m, decoded)

	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &decoded), "wrong length")
	assert.Error(t, json.Unmarshal([]byte(`[300]`), &decoded), "cost above 255")
}

func TestLocalCostMatrixBinary(t *testing.T) {
	m := NewLocalCostMatrix()
	m.Set(xy(49, 49), 200)

	data, err := m.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, Area)

	var decoded LocalCostMatrix
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, *m, decoded)

	assert.Error(t, decoded.UnmarshalBinary(data[:100]))
}
