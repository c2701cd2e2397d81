package pathing

import (
	"testing"

	"github.com/oakmund/warpath/pkg/grid"
)

// fourCellPath is a straight 4-cell path used by the evaluator tests;
// the positions themselves are irrelevant to the index math.
func fourCellPath() []grid.Position {
	return []grid.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
}

func TestReachableIndex_WholePathAffordable(t *testing.T) {
	path := fourCellPath()
	idx := ReachableIndex(path, []int{1, 2, 1}, 10)
	if idx != len(path)-1 {
		t.Fatalf("index = %d, want %d (whole path)", idx, len(path)-1)
	}
}

func TestReachableIndex_ExactBudget(t *testing.T) {
	idx := ReachableIndex(fourCellPath(), []int{1, 2, 1}, 4)
	if idx != 3 {
		t.Fatalf("index = %d, want 3 (budget exactly covers the path)", idx)
	}
}

func TestReachableIndex_FirstStepTooExpensive(t *testing.T) {
	idx := ReachableIndex(fourCellPath(), []int{3, 1, 1}, 2)
	if idx != 0 {
		t.Fatalf("index = %d, want 0 (cannot leave the start cell)", idx)
	}
}

func TestReachableIndex_PartWay(t *testing.T) {
	// Steps cost 1, 2, 3; budget 3 affords the first two only.
	idx := ReachableIndex(fourCellPath(), []int{1, 2, 3}, 3)
	if idx != 2 {
		t.Fatalf("index = %d, want 2", idx)
	}
}

func TestReachableIndex_SingleCellPath(t *testing.T) {
	path := []grid.Position{{X: 2, Y: 2}}
	if idx := ReachableIndex(path, nil, 5); idx != 0 {
		t.Fatalf("index = %d, want 0 for an already-arrived path", idx)
	}
}

func TestReachableIndex_MonotonicInBudget(t *testing.T) {
	path := fourCellPath()
	costs := []int{2, 1, 3}
	prev := 0
	for budget := 0; budget <= 8; budget++ {
		idx := ReachableIndex(path, costs, budget)
		if idx < prev {
			t.Fatalf("index dropped from %d to %d as budget rose to %d", prev, idx, budget)
		}
		prev = idx
	}
	if prev != len(path)-1 {
		t.Fatalf("final index = %d, want %d", prev, len(path)-1)
	}
}

func TestReachableIndex_Panics(t *testing.T) {
	check := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	check("negative budget", func() {
		ReachableIndex(fourCellPath(), []int{1, 1, 1}, -1)
	})
	check("length mismatch", func() {
		ReachableIndex(fourCellPath(), []int{1, 1}, 5)
	})
	check("empty path", func() {
		ReachableIndex(nil, nil, 5)
	})
}

func TestTruncateToBudget(t *testing.T) {
	path := fourCellPath()
	costs := []int{1, 2, 3}

	got, cost := TruncateToBudget(path, costs, 3)
	if len(got) != 3 {
		t.Fatalf("truncated length = %d, want 3", len(got))
	}
	if cost != 3 {
		t.Fatalf("truncated cost = %d, want 3 (sum of included steps)", cost)
	}

	got, cost = TruncateToBudget(path, costs, 0)
	if len(got) != 1 || cost != 0 {
		t.Fatalf("zero budget should pin the mover: got length %d cost %d", len(got), cost)
	}

	got, cost = TruncateToBudget(path, costs, 100)
	if len(got) != len(path) || cost != 6 {
		t.Fatalf("ample budget should keep the whole path: length %d cost %d", len(got), cost)
	}
}

func TestTruncate_AgainstRealPath(t *testing.T) {
	// End to end: search, build step costs, split at the budget.
	m := grid.NewMap(6, 1, grid.SquareGrid)
	m.SetTerrain(grid.Position{X: 3, Y: 0}, grid.TerrainSwamp)

	path := FindPath(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 5, Y: 0})
	if path == nil {
		t.Fatal("expected a path on the corridor map")
	}
	costs := StepCosts(m, path)
	if len(costs) != len(path)-1 {
		t.Fatalf("got %d step costs for a %d-cell path", len(costs), len(path))
	}
	total := 0
	for _, c := range costs {
		total += c
	}
	if total != CalculatePathCost(m, path) {
		t.Fatalf("step costs sum %d != path cost %d", total, CalculatePathCost(m, path))
	}

	// Corridor costs are 1,1,3,1,1 — budget 2 stops short of the swamp.
	prefix, cost := TruncateToBudget(path, costs, 2)
	if len(prefix) != 3 || cost != 2 {
		t.Fatalf("budget 2: prefix length %d cost %d, want 3 and 2", len(prefix), cost)
	}
}

func TestApproxReachableIndex(t *testing.T) {
	// 6 steps, total 12: two points per step on average.
	if idx := ApproxReachableIndex(6, 12, 6); idx != 3 {
		t.Fatalf("approx index = %d, want 3", idx)
	}
	if idx := ApproxReachableIndex(6, 12, 20); idx != 6 {
		t.Fatalf("approx index with ample budget = %d, want 6", idx)
	}
	if idx := ApproxReachableIndex(0, 0, 4); idx != 0 {
		t.Fatalf("approx index of empty path = %d, want 0", idx)
	}
}
