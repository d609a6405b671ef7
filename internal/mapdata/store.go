// Package mapdata provides the terrain-data side of path searches: a
// file-backed store of per-room terrain snapshots plus mutable cost
// overlays, and a cost callback that combines the two.
package mapdata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/screego/internal/pathfinder"
	"github.com/udisondev/screego/internal/room"
)

// terrainExt names the per-room terrain files: <room name>.terrain,
// exactly one raw byte per tile in row-major order.
const terrainExt = ".terrain"

// WallCost marks a tile as impassable in a generated cost matrix.
const WallCost = 255

// Store holds terrain for a set of rooms. Terrain is immutable after
// Load; overlays may be swapped at any time and are guarded separately.
type Store struct {
	terrain map[room.RoomName]*room.LocalRoomTerrain

	mu       sync.RWMutex
	overlays map[room.RoomName]*room.SparseCostMatrix
}

// Load reads every *.terrain file in dir, concurrently. The file stem
// must be a valid room name; files that are not are skipped with a
// warning, while a file of the wrong size fails the whole load.
func Load(ctx context.Context, dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading terrain dir %s: %w", dir, err)
	}

	s := &Store{
		terrain:  make(map[room.RoomName]*room.LocalRoomTerrain),
		overlays: make(map[room.RoomName]*room.SparseCostMatrix),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), terrainExt) {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), terrainExt)
		name, err := room.ParseRoomName(stem)
		if err != nil {
			slog.Warn("skipping terrain file with bad room name", "file", entry.Name(), "err", err)
			continue
		}

		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading terrain %s: %w", path, err)
			}
			terrain, err := room.NewLocalRoomTerrain(buf)
			if err != nil {
				return fmt.Errorf("terrain %s: %w", path, err)
			}
			mu.Lock()
			s.terrain[name] = terrain
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("terrain loaded", "dir", dir, "rooms", len(s.terrain))
	return s, nil
}

// Terrain returns the terrain snapshot for name, if loaded.
func (s *Store) Terrain(name room.RoomName) (*room.LocalRoomTerrain, bool) {
	t, ok := s.terrain[name]
	return t, ok
}

// Rooms returns the loaded room names in map reading order.
func (s *Store) Rooms() []room.RoomName {
	out := make([]room.RoomName, 0, len(s.terrain))
	for name := range s.terrain {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].YCoord() != out[j].YCoord() {
			return out[i].YCoord() < out[j].YCoord()
		}
		return out[i].XCoord() < out[j].XCoord()
	})
	return out
}

// SetOverlay attaches extra per-tile costs for a room, replacing any
// previous overlay. Overlay entries overwrite the terrain-derived cost,
// explicit zeroes included.
func (s *Store) SetOverlay(name room.RoomName, overlay *room.SparseCostMatrix) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays[name] = overlay
}

// ClearOverlay removes a room's overlay.
func (s *Store) ClearOverlay(name room.RoomName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overlays, name)
}

// CostMatrix builds the full cost matrix for one room: terrain costs
// first, overlay entries on top. Returns false for rooms without
// loaded terrain.
func (s *Store) CostMatrix(name room.RoomName, plainCost, swampCost uint8) (*room.LocalCostMatrix, bool) {
	terrain, ok := s.terrain[name]
	if !ok {
		return nil, false
	}

	m := room.NewLocalCostMatrix()
	for y := uint8(0); y < room.Size; y++ {
		for x := uint8(0); x < room.Size; x++ {
			xy := room.UncheckedXY(x, y)
			switch terrain.Get(xy) {
			case room.TerrainWall:
				m.Set(xy, WallCost)
			case room.TerrainSwamp:
				m.Set(xy, swampCost)
			default:
				m.Set(xy, plainCost)
			}
		}
	}

	s.mu.RLock()
	overlay := s.overlays[name]
	s.mu.RUnlock()
	if overlay != nil {
		m.MergeFromSparse(overlay)
	}
	return m, true
}

// CostCallback adapts the store to the search engine's per-room
// callback: rooms without terrain are blocked.
func (s *Store) CostCallback(opts pathfinder.Options) pathfinder.CostCallback {
	return func(name room.RoomName) (*room.LocalCostMatrix, bool) {
		return s.CostMatrix(name, opts.PlainCost, opts.SwampCost)
	}
}
