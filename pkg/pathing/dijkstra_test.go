package pathing

import (
	"math/rand"
	"testing"

	"github.com/oakmund/warpath/pkg/grid"
)

// slowCosts is the test oracle: repeated edge relaxation to a
// fixpoint. Slow but obviously correct, used to verify optimality on
// small grids.
func slowCosts(m *grid.Map, start grid.Position) map[grid.Position]int {
	dist := map[grid.Position]int{start: 0}
	for changed := true; changed; {
		changed = false
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				p := grid.Position{X: x, Y: y}
				d, ok := dist[p]
				if !ok {
					continue
				}
				for _, n := range m.Neighbors(p, nil) {
					if !m.IsPassable(n) {
						continue
					}
					nd := d + m.MoveCost(n)
					if cur, ok := dist[n]; !ok || nd < cur {
						dist[n] = nd
						changed = true
					}
				}
			}
		}
	}
	return dist
}

// randomMap fills a map with mixed-cost terrain and scattered
// obstacles, keeping (0,0) clear so tests have a guaranteed start.
func randomMap(rng *rand.Rand, w, h int, topology grid.Topology) *grid.Map {
	m := grid.NewMap(w, h, topology)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := grid.Position{X: x, Y: y}
			switch {
			case rng.Float64() < 0.2:
				m.SetTile(p, grid.Tile{Passable: false})
			default:
				m.SetTile(p, grid.Tile{Passable: true, MoveCost: 1 + rng.Intn(3)})
			}
		}
	}
	m.SetTile(grid.Position{X: 0, Y: 0}, grid.Tile{Passable: true, MoveCost: 1})
	return m
}

func checkContiguous(t *testing.T, m *grid.Map, path []grid.Position) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		if !m.Adjacent(path[i-1], path[i]) {
			t.Fatalf("path cells %v and %v are not adjacent", path[i-1], path[i])
		}
	}
}

func TestFindPath_StartEqualsEnd(t *testing.T) {
	m := grid.NewMap(5, 5, grid.SquareGrid)
	p := grid.Position{X: 2, Y: 3}
	path := FindPath(m, p, p)
	if len(path) != 1 || path[0] != p {
		t.Fatalf("FindPath(p,p) = %v, want length-1 path", path)
	}
	if c := CalculatePathCost(m, path); c != 0 {
		t.Fatalf("degenerate path cost = %d, want 0", c)
	}
}

func TestFindPath_RoutesAroundBlockedCenter(t *testing.T) {
	// 5×5, all cost 1, center (2,2) impassable. The straight lane
	// from (0,2) to (4,2) is cut; the detour through a diagonal is
	// still 4 steps, so total cost must stay 4.
	m := grid.NewMap(5, 5, grid.SquareGrid)
	m.SetTile(grid.Position{X: 2, Y: 2}, grid.Tile{Passable: false})

	start := grid.Position{X: 0, Y: 2}
	end := grid.Position{X: 4, Y: 2}
	path := FindPath(m, start, end)
	if path == nil {
		t.Fatal("expected a path around the blocked center")
	}
	checkContiguous(t, m, path)
	for _, p := range path {
		if p == (grid.Position{X: 2, Y: 2}) {
			t.Fatal("path crosses the impassable center")
		}
	}
	if c := CalculatePathCost(m, path); c != 4 {
		t.Fatalf("detour cost = %d, want 4", c)
	}
}

func TestFindPath_PrefersCheapTerrain(t *testing.T) {
	// Straight through the swamp costs 10; skirting along the top
	// row costs 4. The cheaper, longer route must win.
	m := grid.NewMap(5, 3, grid.SquareGrid)
	for x := 1; x <= 3; x++ {
		m.SetTerrain(grid.Position{X: x, Y: 1}, grid.TerrainSwamp)
	}
	path := FindPath(m, grid.Position{X: 0, Y: 1}, grid.Position{X: 4, Y: 1})
	if path == nil {
		t.Fatal("expected a path")
	}
	if c := CalculatePathCost(m, path); c != 4 {
		t.Fatalf("path cost = %d, want 4 (around the swamp)", c)
	}
}

func TestFindPath_NoPath(t *testing.T) {
	// A full-height impassable wall splits the map; diagonals cannot
	// cross a solid column.
	m := grid.NewMap(7, 5, grid.SquareGrid)
	for y := 0; y < 5; y++ {
		m.SetTile(grid.Position{X: 3, Y: y}, grid.Tile{Passable: false})
	}
	if p := FindPath(m, grid.Position{X: 0, Y: 2}, grid.Position{X: 6, Y: 2}); p != nil {
		t.Fatalf("expected no path across the wall, got %v", p)
	}
}

func TestFindPath_InvalidEndpoints(t *testing.T) {
	m := grid.NewMap(5, 5, grid.SquareGrid)
	m.SetTile(grid.Position{X: 1, Y: 1}, grid.Tile{Passable: false})

	if p := FindPath(m, grid.Position{X: 1, Y: 1}, grid.Position{X: 3, Y: 3}); p != nil {
		t.Fatal("impassable start should yield nil")
	}
	if p := FindPath(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 1, Y: 1}); p != nil {
		t.Fatal("impassable end should yield nil")
	}
	if p := FindPath(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 9, Y: 9}); p != nil {
		t.Fatal("out-of-bounds end should yield nil")
	}
	if p := FindPath(m, grid.Position{X: -1, Y: 0}, grid.Position{X: 2, Y: 2}); p != nil {
		t.Fatal("out-of-bounds start should yield nil")
	}
}

func TestFindPath_OptimalOnRandomMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, topology := range []grid.Topology{grid.SquareGrid, grid.HexGrid} {
		for trial := 0; trial < 20; trial++ {
			m := randomMap(rng, 6, 6, topology)
			start := grid.Position{X: 0, Y: 0}
			want := slowCosts(m, start)

			for y := 0; y < m.Height(); y++ {
				for x := 0; x < m.Width(); x++ {
					end := grid.Position{X: x, Y: y}
					path := FindPath(m, start, end)
					optimal, reachable := want[end]
					if !m.IsPassable(end) || !reachable {
						if path != nil {
							t.Fatalf("topology %d trial %d: found a path to unreachable %v", topology, trial, end)
						}
						continue
					}
					if path == nil {
						t.Fatalf("topology %d trial %d: no path to reachable %v (cost %d)", topology, trial, end, optimal)
					}
					checkContiguous(t, m, path)
					if c := CalculatePathCost(m, path); c != optimal {
						t.Fatalf("topology %d trial %d: cost to %v = %d, want %d", topology, trial, end, c, optimal)
					}
				}
			}
		}
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := randomMap(rng, 8, 8, grid.SquareGrid)
	p1 := FindPath(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 7, Y: 7})
	p2 := FindPath(m, grid.Position{X: 0, Y: 0}, grid.Position{X: 7, Y: 7})
	if len(p1) != len(p2) {
		t.Fatalf("identical queries returned different lengths: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("identical queries diverged at index %d", i)
		}
	}
}

func TestCalculatePathCost_EmptyAndSingle(t *testing.T) {
	m := grid.NewMap(3, 3, grid.SquareGrid)
	if c := CalculatePathCost(m, nil); c != 0 {
		t.Fatalf("nil path cost = %d, want 0", c)
	}
	if c := CalculatePathCost(m, []grid.Position{{X: 1, Y: 1}}); c != 0 {
		t.Fatalf("single-cell path cost = %d, want 0", c)
	}
}
