// Package pathfinder defines the contract between path consumers and a
// path search engine: goals, search options with a per-room cost
// callback, and the search result shape. The search itself lives behind
// the Searcher interface so the engine can be swapped (a host-native
// pathfinder, a local A* for tests, a recorded stub).
package pathfinder

import (
	"context"
	"fmt"

	"github.com/udisondev/screego/internal/room"
)

// Goal is one search target: reach any tile within Range of Pos.
// Range 0 means the exact tile.
type Goal struct {
	Pos   room.Position
	Range int
}

func (g Goal) String() string {
	return fmt.Sprintf("%v range %d", g.Pos, g.Range)
}

// CostCallback supplies the cost matrix for a room the search is about
// to expand into. Returning ok=false blocks the room entirely; a nil
// matrix with ok=true means default terrain costs.
type CostCallback func(name room.RoomName) (*room.LocalCostMatrix, bool)

// Options tune a single search. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// PlainCost and SwampCost are the per-tile costs applied where the
	// cost matrix holds 0.
	PlainCost uint8
	SwampCost uint8

	// Flee inverts the goal test: find a path that gets out of range of
	// every goal instead of into range of one.
	Flee bool

	// MaxOps bounds the number of expansions before the search gives up
	// and returns its best incomplete path.
	MaxOps int

	// MaxRooms bounds how many distinct rooms the search may enter.
	MaxRooms int

	// MaxCost aborts the search once the cheapest known path exceeds it.
	// Zero means unbounded.
	MaxCost int

	// HeuristicWeight trades optimality for speed; 1.0 is admissible.
	HeuristicWeight float64

	// RoomCallback, when set, is consulted for every room the search
	// touches.
	RoomCallback CostCallback
}

// DefaultOptions returns the engine's stock search parameters.
func DefaultOptions() Options {
	return Options{
		PlainCost:       1,
		SwampCost:       5,
		MaxOps:          2000,
		MaxRooms:        16,
		HeuristicWeight: 1.2,
	}
}

// Validate rejects option combinations no engine can honor.
func (o Options) Validate() error {
	if o.PlainCost == 0 {
		return fmt.Errorf("plain cost must be positive")
	}
	if o.SwampCost < o.PlainCost {
		return fmt.Errorf("swamp cost %d below plain cost %d", o.SwampCost, o.PlainCost)
	}
	if o.MaxOps <= 0 {
		return fmt.Errorf("max ops must be positive, got %d", o.MaxOps)
	}
	if o.MaxRooms <= 0 || o.MaxRooms > 64 {
		return fmt.Errorf("max rooms must be in 1..64, got %d", o.MaxRooms)
	}
	if o.HeuristicWeight < 1 {
		return fmt.Errorf("heuristic weight must be >= 1, got %g", o.HeuristicWeight)
	}
	return nil
}

// Result is the outcome of one search.
type Result struct {
	// Path holds the positions from just after the origin up to the
	// reached goal, in walk order. Empty when the origin already
	// satisfies a goal.
	Path []room.Position

	// Ops is the number of expansions the search spent.
	Ops int

	// Cost is the total movement cost of Path.
	Cost int

	// Incomplete is set when the search exhausted MaxOps, MaxRooms or
	// MaxCost before reaching a goal; Path then leads toward the
	// closest approach found.
	Incomplete bool
}

// Searcher runs path searches. Implementations must honor ctx
// cancellation for long searches.
type Searcher interface {
	Search(ctx context.Context, origin room.Position, goals []Goal, opts Options) (Result, error)
}
