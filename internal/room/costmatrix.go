package room

import (
	"encoding/json"
	"fmt"
)

// LocalCostMatrix is an owned, dense per-room grid of path costs: one
// byte per tile, stored in cost-index order (x*50 + y). A zero cell is
// walkable at default cost.
type LocalCostMatrix struct {
	bits [Area]uint8
}

// NewLocalCostMatrix returns a matrix with every cell at the default
// cost 0.
func NewLocalCostMatrix() *LocalCostMatrix {
	return &LocalCostMatrix{}
}

// LocalCostMatrixFromBits copies a host-provided cost buffer, which must
// be exactly Area bytes in cost-index order.
func LocalCostMatrixFromBits(buf []byte) (*LocalCostMatrix, error) {
	if len(buf) != Area {
		return nil, fmt.Errorf("cost matrix buffer: expected %d bytes, got %d", Area, len(buf))
	}
	m := &LocalCostMatrix{}
	copy(m.bits[:], buf)
	return m, nil
}

// Get returns the cost at xy. The index transform trusts RoomXY's own
// bound, so no further check is done.
func (m *LocalCostMatrix) Get(xy RoomXY) uint8 {
	return m.bits[CostIndex(xy)]
}

// Set stores the cost at xy.
func (m *LocalCostMatrix) Set(xy RoomXY, cost uint8) {
	m.bits[CostIndex(xy)] = cost
}

// ForEach visits all Area cells in linear cost-index order.
func (m *LocalCostMatrix) ForEach(visit func(RoomXY, uint8)) {
	for idx, cost := range m.bits {
		visit(CostIndexToXY(idx), cost)
	}
}

// MergeFromDense copies every non-zero cell of src over the same cell of
// m. Zero cells of src leave the destination untouched.
func (m *LocalCostMatrix) MergeFromDense(src *LocalCostMatrix) {
	for idx, cost := range src.bits {
		if cost != 0 {
			m.bits[idx] = cost
		}
	}
}

// MergeFromSparse copies every entry of src over the same cell of m.
// Sparse matrices have no implicit zeroes to skip, so explicit zero
// entries overwrite too.
func (m *LocalCostMatrix) MergeFromSparse(src *SparseCostMatrix) {
	for xy, cost := range src.entries {
		m.bits[CostIndex(xy)] = cost
	}
}

// ToSparse converts to sparse form, dropping zero-valued cells.
func (m *LocalCostMatrix) ToSparse() *SparseCostMatrix {
	s := NewSparseCostMatrix()
	for idx, cost := range m.bits {
		if cost != 0 {
			s.entries[CostIndexToXY(idx)] = cost
		}
	}
	return s
}

// Bits exposes the backing buffer in cost-index order, for handing to
// the host's native matrix. The slice aliases the matrix; it is valid
// only while m is and writes through it are visible to m.
func (m *LocalCostMatrix) Bits() []byte {
	return m.bits[:]
}

// Clone returns an independent copy.
func (m *LocalCostMatrix) Clone() *LocalCostMatrix {
	out := *m
	return &out
}

// MarshalJSON emits the cells as an array of 2500 numbers in cost-index
// order. A []byte would render as base64, so the cells are widened
// first.
func (m *LocalCostMatrix) MarshalJSON() ([]byte, error) {
	cells := make([]uint16, Area)
	for i, cost := range m.bits {
		cells[i] = uint16(cost)
	}
	return json.Marshal(cells)
}

// UnmarshalJSON decodes a cell buffer, rejecting any length other than
// Area.
func (m *LocalCostMatrix) UnmarshalJSON(data []byte) error {
	var bits []uint8
	if err := json.Unmarshal(data, &bits); err != nil {
		return err
	}
	if len(bits) != Area {
		return fmt.Errorf("cost matrix: expected %d cells, got %d", Area, len(bits))
	}
	copy(m.bits[:], bits)
	return nil
}

// MarshalBinary emits the raw Area-byte buffer.
func (m *LocalCostMatrix) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Area)
	copy(buf, m.bits[:])
	return buf, nil
}

// UnmarshalBinary decodes a raw Area-byte buffer.
func (m *LocalCostMatrix) UnmarshalBinary(data []byte) error {
	if len(data) != Area {
		return fmt.Errorf("cost matrix: expected %d bytes, got %d", Area, len(data))
	}
	copy(m.bits[:], data)
	return nil
}
