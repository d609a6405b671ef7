package room

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SparseCostMatrix is a per-room grid of path costs stored as a map.
// A tile absent from the map has cost 0. Explicitly set entries are
// kept as-is, including explicit zeroes, which matters for merge
// semantics. The zero value is an empty matrix ready for use, same as
// the dense type.
type SparseCostMatrix struct {
	entries map[RoomXY]uint8
}

// NewSparseCostMatrix returns an empty matrix: every tile at cost 0.
func NewSparseCostMatrix() *SparseCostMatrix {
	return &SparseCostMatrix{entries: make(map[RoomXY]uint8)}
}

func (s *SparseCostMatrix) ensure() {
	if s.entries == nil {
		s.entries = make(map[RoomXY]uint8)
	}
}

// Get returns the cost at xy, defaulting to 0 for absent entries.
func (s *SparseCostMatrix) Get(xy RoomXY) uint8 {
	return s.entries[xy]
}

// Set stores the cost at xy. A zero cost is stored as an explicit
// entry, not removed.
func (s *SparseCostMatrix) Set(xy RoomXY, cost uint8) {
	s.ensure()
	s.entries[xy] = cost
}

// Delete removes the entry at xy, returning the tile to implicit cost 0.
func (s *SparseCostMatrix) Delete(xy RoomXY) {
	delete(s.entries, xy)
}

// Len returns the number of explicitly set entries.
func (s *SparseCostMatrix) Len() int {
	return len(s.entries)
}

// ForEach visits every explicitly set entry, in unspecified order.
func (s *SparseCostMatrix) ForEach(visit func(RoomXY, uint8)) {
	for xy, cost := range s.entries {
		visit(xy, cost)
	}
}

// MergeFromDense copies every non-zero cell of src into s, overwriting
// entries for the same tile.
func (s *SparseCostMatrix) MergeFromDense(src *LocalCostMatrix) {
	s.ensure()
	for idx, cost := range src.bits {
		if cost != 0 {
			s.entries[CostIndexToXY(idx)] = cost
		}
	}
}

// MergeFromSparse copies every entry of src into s, overwriting entries
// for the same tile. Explicit zero entries are copied too.
func (s *SparseCostMatrix) MergeFromSparse(src *SparseCostMatrix) {
	s.ensure()
	for xy, cost := range src.entries {
		s.entries[xy] = cost
	}
}

// ToDense converts to dense form, filling unset tiles with 0.
func (s *SparseCostMatrix) ToDense() *LocalCostMatrix {
	m := NewLocalCostMatrix()
	for xy, cost := range s.entries {
		m.bits[CostIndex(xy)] = cost
	}
	return m
}

// Clone returns an independent copy.
func (s *SparseCostMatrix) Clone() *SparseCostMatrix {
	out := NewSparseCostMatrix()
	for xy, cost := range s.entries {
		out.entries[xy] = cost
	}
	return out
}

// sparseEntry is the wire form of one explicitly set tile.
type sparseEntry struct {
	X    uint8 `json:"x"`
	Y    uint8 `json:"y"`
	Cost uint8 `json:"cost"`
}

// MarshalJSON emits the explicitly set entries as an array, sorted by
// (y, x) so the output is deterministic.
func (s *SparseCostMatrix) MarshalJSON() ([]byte, error) {
	out := make([]sparseEntry, 0, len(s.entries))
	for xy, cost := range s.entries {
		out = append(out, sparseEntry{X: uint8(xy.X), Y: uint8(xy.Y), Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return json.Marshal(out)
}

// UnmarshalJSON decodes an entry array, rejecting out-of-range
// coordinates.
func (s *SparseCostMatrix) UnmarshalJSON(data []byte) error {
	var in []sparseEntry
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	entries := make(map[RoomXY]uint8, len(in))
	for _, e := range in {
		xy, err := CheckedXY(e.X, e.Y)
		if err != nil {
			return fmt.Errorf("decoding sparse cost matrix: %w", err)
		}
		entries[xy] = e.Cost
	}
	s.entries = entries
	return nil
}
