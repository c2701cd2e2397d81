package pathing

import (
	"container/heap"
	"fmt"

	"github.com/oakmund/warpath/pkg/grid"
	"github.com/oakmund/warpath/pkg/hexmap"
)

// PenaltyScale converts between movement points and the penalty units
// PenaltyEngine works in internally: one movement point is 100
// penalty. The factor is inherited from the external search adapter
// this engine replaces; whether it was ever a tuned balance constant
// or just that backend's internal unit is unknown, so it is kept as an
// explicit constant rather than reinterpreted.
const PenaltyScale = 100

// PenaltyEngine is an alternative backend: goal-directed (A*) search
// that accumulates cost in penalty units and converts back to movement
// points at the boundary. With every tile costing at least one
// movement point the distance-based heuristic never overestimates, so
// results match DijkstraEngine exactly; only the visit order differs.
type PenaltyEngine struct{}

type penaltyNode struct {
	pos     grid.Position
	penalty int // accumulated, in penalty units
	rank    int // penalty + heuristic
	parent  *penaltyNode
	index   int
}

type penaltyFrontier []*penaltyNode

func (f penaltyFrontier) Len() int           { return len(f) }
func (f penaltyFrontier) Less(i, j int) bool { return f[i].rank < f[j].rank }
func (f penaltyFrontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}
func (f *penaltyFrontier) Push(x interface{}) {
	n := x.(*penaltyNode)
	n.index = len(*f)
	*f = append(*f, n)
}
func (f *penaltyFrontier) Pop() interface{} {
	old := *f
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*f = old[:len(old)-1]
	return n
}

// heuristic returns an admissible lower bound on the remaining penalty
// from a to b: grid distance in steps times the minimum step penalty.
func heuristic(m *grid.Map, a, b grid.Position) int {
	if m.Topology() == grid.HexGrid {
		ha := hexmap.Hex{Col: a.X, Row: a.Y}
		hb := hexmap.Hex{Col: b.X, Row: b.Y}
		return hexmap.Distance(ha, hb) * PenaltyScale
	}
	// Chebyshev distance: diagonal steps close both axes at once.
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return max(dx, dy) * PenaltyScale
}

// FindPath behaves as Engine.FindPath, searched in penalty units.
func (PenaltyEngine) FindPath(m *grid.Map, start, end grid.Position) []grid.Position {
	if !m.IsPassable(start) || !m.IsPassable(end) {
		return nil
	}
	if start == end {
		return []grid.Position{start}
	}

	first := &penaltyNode{pos: start, penalty: 0, rank: heuristic(m, start, end)}
	open := &penaltyFrontier{first}
	heap.Init(open)

	best := map[grid.Position]*penaltyNode{start: first}
	closed := make(map[grid.Position]bool)
	var buf [8]grid.Position

	for open.Len() > 0 {
		cur := heap.Pop(open).(*penaltyNode)
		if cur.pos == end {
			path := make([]grid.Position, 0, 8)
			for n := cur; n != nil; n = n.parent {
				path = append(path, n.pos)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true

		for _, n := range m.Neighbors(cur.pos, buf[:0]) {
			if closed[n] || !m.IsPassable(n) {
				continue
			}
			np := cur.penalty + m.MoveCost(n)*PenaltyScale
			if prev, ok := best[n]; ok && np >= prev.penalty {
				continue
			}
			nn := &penaltyNode{pos: n, penalty: np, rank: np + heuristic(m, n, end), parent: cur}
			best[n] = nn
			heap.Push(open, nn)
		}
	}
	return nil
}

// ReachablePositions behaves as Engine.ReachablePositions. The budget
// is lifted into penalty units for the flood and settled costs are
// divided back down by PenaltyScale, mirroring the adapter this engine
// descends from.
func (PenaltyEngine) ReachablePositions(m *grid.Map, start grid.Position, budget int) map[grid.Position]struct{} {
	if budget < 0 {
		panic(fmt.Sprintf("pathing: negative movement budget %d", budget))
	}
	if !m.IsPassable(start) {
		return nil
	}

	ceiling := budget * PenaltyScale
	first := &penaltyNode{pos: start}
	open := &penaltyFrontier{first}
	heap.Init(open)

	best := map[grid.Position]int{start: 0}
	closed := make(map[grid.Position]bool)
	var buf [8]grid.Position

	for open.Len() > 0 {
		cur := heap.Pop(open).(*penaltyNode)
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true

		for _, n := range m.Neighbors(cur.pos, buf[:0]) {
			if closed[n] || !m.IsPassable(n) {
				continue
			}
			np := cur.penalty + m.MoveCost(n)*PenaltyScale
			if np > ceiling {
				continue
			}
			if prev, ok := best[n]; ok && np >= prev {
				continue
			}
			best[n] = np
			heap.Push(open, &penaltyNode{pos: n, penalty: np, rank: np})
		}
	}

	out := make(map[grid.Position]struct{}, len(best)-1)
	for p, pen := range best {
		if p == start {
			continue
		}
		if pen/PenaltyScale <= budget {
			out[p] = struct{}{}
		}
	}
	return out
}

// PathCost behaves as Engine.PathCost.
func (PenaltyEngine) PathCost(m *grid.Map, path []grid.Position) int {
	if len(path) < 2 {
		return 0
	}
	penalty := 0
	for _, p := range path[1:] {
		penalty += m.MoveCost(p) * PenaltyScale
	}
	return penalty / PenaltyScale
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
