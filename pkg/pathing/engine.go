// Package pathing computes optimal routes, movement budgets and
// reachable areas over a grid.Map. Every entry point is a pure
// function of its inputs: no state survives a call, so concurrent
// queries against a stable map need no coordination.
package pathing

import "github.com/oakmund/warpath/pkg/grid"

// Engine is the pluggable search backend. Callers hold an Engine value
// chosen at construction time; nothing in this package or its
// consumers depends on a concrete implementation, so backends swap at
// configuration time.
//
// Contract, shared by all implementations:
//   - FindPath returns an ordered path from start to end inclusive
//     whose total entry cost is minimal, or nil when end is
//     unreachable, impassable or out of bounds. start == end yields a
//     length-1 path. An impassable or out-of-bounds start yields nil
//     with no search performed.
//   - ReachablePositions returns every cell whose cheapest path from
//     start costs at most budget, excluding start itself. A negative
//     budget is a caller bug and panics.
//   - PathCost sums the entry cost of every cell after the first.
type Engine interface {
	FindPath(m *grid.Map, start, end grid.Position) []grid.Position
	ReachablePositions(m *grid.Map, start grid.Position, budget int) map[grid.Position]struct{}
	PathCost(m *grid.Map, path []grid.Position) int
}

// Mover is the minimal view of a unit the movement queries need: where
// it stands and how many movement points it has left this turn.
type Mover struct {
	Pos    grid.Position
	Budget int
}
