package pathing

import (
	"fmt"

	"github.com/oakmund/warpath/pkg/grid"
)

// defaultEngine backs the package-level convenience functions. Code
// that wants a different backend constructs its consumer with an
// Engine instead of calling these.
var defaultEngine Engine = DijkstraEngine{}

// FindPath finds a cheapest path from start to end with the default
// engine. See Engine.FindPath for the contract.
func FindPath(m *grid.Map, start, end grid.Position) []grid.Position {
	return defaultEngine.FindPath(m, start, end)
}

// CalculatePathCost returns path's total entry cost.
func CalculatePathCost(m *grid.Map, path []grid.Position) int {
	return defaultEngine.PathCost(m, path)
}

// GetReachablePositions returns every cell reachable from start within
// budget, excluding start. See Engine.ReachablePositions.
func GetReachablePositions(m *grid.Map, start grid.Position, budget int) map[grid.Position]struct{} {
	return defaultEngine.ReachablePositions(m, start, budget)
}

// CanReachPosition reports whether the mover can reach target this
// turn: a path exists and its cost fits the mover's remaining budget.
func CanReachPosition(m *grid.Map, mover Mover, target grid.Position) bool {
	path := defaultEngine.FindPath(m, mover.Pos, target)
	if path == nil {
		return false
	}
	return defaultEngine.PathCost(m, path) <= mover.Budget
}

// GetMovementCost returns the cost of a single step from a into the
// adjacent cell b. Asking for a step between non-adjacent cells is an
// upstream bug and panics; asking about an impassable destination is
// guarded the same way since no step can enter it.
func GetMovementCost(m *grid.Map, a, b grid.Position) int {
	if !m.Adjacent(a, b) {
		panic(fmt.Sprintf("pathing: %v and %v are not adjacent", a, b))
	}
	if !m.IsPassable(b) {
		panic(fmt.Sprintf("pathing: %v is not passable", b))
	}
	return m.MoveCost(b)
}
