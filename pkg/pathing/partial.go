package pathing

import (
	"fmt"

	"github.com/oakmund/warpath/pkg/grid"
)

// StepCosts returns the per-step cost sequence for path: element i is
// the cost of moving from path[i] to path[i+1], so the result has one
// element fewer than the path and sums to the path's total cost.
func StepCosts(m *grid.Map, path []grid.Position) []int {
	if len(path) < 2 {
		return nil
	}
	costs := make([]int, len(path)-1)
	for i := 1; i < len(path); i++ {
		costs[i-1] = m.MoveCost(path[i])
	}
	return costs
}

// ReachableIndex returns the largest index i into path such that the
// first i steps are all affordable within budget: the cumulative sum
// of stepCosts[0..i) does not exceed budget. 0 means the mover cannot
// leave its current cell; len(stepCosts) means the whole path is
// affordable.
//
// A negative budget or a stepCosts slice that does not match the path
// length is an upstream bug, not a gameplay outcome, and panics.
func ReachableIndex(path []grid.Position, stepCosts []int, budget int) int {
	if budget < 0 {
		panic(fmt.Sprintf("pathing: negative movement budget %d", budget))
	}
	if len(path) == 0 {
		panic("pathing: empty path")
	}
	if len(stepCosts) != len(path)-1 {
		panic(fmt.Sprintf("pathing: %d step costs for a %d-cell path", len(stepCosts), len(path)))
	}

	spent := 0
	for i, c := range stepCosts {
		spent += c
		if spent > budget {
			return i
		}
	}
	return len(stepCosts)
}

// TruncateToBudget cuts path down to its longest affordable prefix and
// returns that prefix with its exact cost, summed from the included
// step costs rather than re-estimated. A length-1 result means the
// mover stays where it is at zero cost.
func TruncateToBudget(path []grid.Position, stepCosts []int, budget int) ([]grid.Position, int) {
	idx := ReachableIndex(path, stepCosts, budget)
	cost := 0
	for _, c := range stepCosts[:idx] {
		cost += c
	}
	return path[:idx+1], cost
}

// ApproxReachableIndex estimates a reachable index assuming every step
// costs totalCost/steps. It is an approximation for callers that only
// know a path's total cost; whenever explicit step costs exist,
// ReachableIndex is the correct choice.
func ApproxReachableIndex(steps, totalCost, budget int) int {
	if budget < 0 {
		panic(fmt.Sprintf("pathing: negative movement budget %d", budget))
	}
	if steps <= 0 || totalCost <= 0 {
		return 0
	}
	if budget >= totalCost {
		return steps
	}
	per := float64(totalCost) / float64(steps)
	idx := int(float64(budget) / per)
	if idx > steps {
		idx = steps
	}
	return idx
}
