package pathing

import (
	"container/heap"
	"fmt"

	"github.com/oakmund/warpath/pkg/grid"
)

// DijkstraEngine is the default search backend: uniform-cost search
// over the weighted grid graph. The weight of the edge into a cell is
// that cell's entry cost, so entering a swamp costs the same from
// every direction. Plain breadth-first search would only be correct
// on uniform-cost maps; Dijkstra is correct on both topologies.
type DijkstraEngine struct{}

type node struct {
	pos    grid.Position
	cost   int
	parent *node
	index  int // heap index
}

type frontier []*node

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].cost < f[j].cost }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i]; f[i].index = i; f[j].index = j }
func (f *frontier) Push(x interface{}) { n := x.(*node); n.index = len(*f); *f = append(*f, n) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*f = old[:len(old)-1]
	return n
}

// noBudget disables the budget ceiling in the shared search loop.
const noBudget = -1

// search runs uniform-cost expansion from start. If goal is non-nil
// the loop stops when goal is settled and returns its node; if budget
// is non-negative, neighbors whose accumulated cost would exceed it
// are not expanded. best maps each settled or frontier cell to its
// cheapest known node. Both stop conditions share this one loop so
// path queries and reachable-area queries cannot drift apart.
func (DijkstraEngine) search(m *grid.Map, start grid.Position, goal *grid.Position, budget int) (*node, map[grid.Position]*node) {
	first := &node{pos: start, cost: 0}
	open := &frontier{first}
	heap.Init(open)

	best := map[grid.Position]*node{start: first}
	closed := make(map[grid.Position]bool)
	var buf [8]grid.Position

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true
		if goal != nil && cur.pos == *goal {
			return cur, best
		}

		for _, n := range m.Neighbors(cur.pos, buf[:0]) {
			if closed[n] || !m.IsPassable(n) {
				continue
			}
			nc := cur.cost + m.MoveCost(n)
			if budget != noBudget && nc > budget {
				continue
			}
			if prev, ok := best[n]; ok && nc >= prev.cost {
				continue
			}
			nn := &node{pos: n, cost: nc, parent: cur}
			best[n] = nn
			heap.Push(open, nn)
		}
	}
	return nil, best
}

// FindPath returns a cheapest path from start to end inclusive, or nil
// when no path exists. Failing to find a path is a normal outcome on
// obstacle-laden maps, not an error.
func (e DijkstraEngine) FindPath(m *grid.Map, start, end grid.Position) []grid.Position {
	if !m.IsPassable(start) || !m.IsPassable(end) {
		return nil
	}
	if start == end {
		return []grid.Position{start}
	}
	goal, _ := e.search(m, start, &end, noBudget)
	if goal == nil {
		return nil
	}
	return buildPath(goal)
}

// ReachablePositions returns every cell reachable from start at a
// cheapest cost not exceeding budget, excluding start itself.
func (e DijkstraEngine) ReachablePositions(m *grid.Map, start grid.Position, budget int) map[grid.Position]struct{} {
	if budget < 0 {
		panic(fmt.Sprintf("pathing: negative movement budget %d", budget))
	}
	if !m.IsPassable(start) {
		return nil
	}
	_, best := e.search(m, start, nil, budget)
	out := make(map[grid.Position]struct{}, len(best)-1)
	for p := range best {
		if p != start {
			out[p] = struct{}{}
		}
	}
	return out
}

// PathCost sums the entry cost of each cell after the first. A path of
// length 0 or 1 costs nothing.
func (DijkstraEngine) PathCost(m *grid.Map, path []grid.Position) int {
	if len(path) < 2 {
		return 0
	}
	total := 0
	for _, p := range path[1:] {
		total += m.MoveCost(p)
	}
	return total
}

func buildPath(end *node) []grid.Position {
	n := 0
	for cur := end; cur != nil; cur = cur.parent {
		n++
	}
	path := make([]grid.Position, n)
	for cur := end; cur != nil; cur = cur.parent {
		n--
		path[n] = cur.pos
	}
	return path
}
