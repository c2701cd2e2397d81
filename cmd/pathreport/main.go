// pathreport runs batches of pathfinding queries over seeded random
// maps and prints aggregate statistics. Useful for eyeballing search
// behavior and cross-checking the two backends without a window.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/oakmund/warpath/pkg/grid"
	"github.com/oakmund/warpath/pkg/pathing"
)

type runStats struct {
	runIndex int
	seed     int64

	queries    int
	found      int
	totalCost  int
	totalSteps int
	longestLen int

	reachQueries int
	reachCells   int
	largestReach int

	crossMismatches int
	elapsed         time.Duration
}

func main() {
	var runs int
	var queries int
	var width, height int
	var seedBase int64
	var seedStep int64
	var topologyName string
	var obstacleDensity float64

	flag.IntVar(&runs, "runs", 5, "number of map runs")
	flag.IntVar(&queries, "queries", 200, "path queries per run")
	flag.IntVar(&width, "width", 32, "map width in cells")
	flag.IntVar(&height, "height", 32, "map height in cells")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&topologyName, "topology", "square", "square or hex")
	flag.Float64Var(&obstacleDensity, "obstacles", 0.18, "fraction of impassable cells")
	flag.Parse()

	if runs <= 0 || queries <= 0 {
		fmt.Println("error: -runs and -queries must be > 0")
		os.Exit(1)
	}
	topology := grid.SquareGrid
	if topologyName == "hex" {
		topology = grid.HexGrid
	} else if topologyName != "square" {
		fmt.Printf("error: unknown topology %q\n", topologyName)
		os.Exit(1)
	}

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		all = append(all, runOnce(i+1, seed, width, height, topology, obstacleDensity, queries))
	}
	printSummary(all, width, height, topologyName)
}

func runOnce(index int, seed int64, w, h int, topology grid.Topology, density float64, queries int) runStats {
	rng := rand.New(rand.NewSource(seed))
	m := buildMap(rng, w, h, topology, density)
	dij := pathing.DijkstraEngine{}
	pen := pathing.PenaltyEngine{}

	stats := runStats{runIndex: index, seed: seed}
	start := time.Now()

	for q := 0; q < queries; q++ {
		a := randomPassable(rng, m)
		b := randomPassable(rng, m)
		stats.queries++

		path := dij.FindPath(m, a, b)
		if path == nil {
			if pen.FindPath(m, a, b) != nil {
				stats.crossMismatches++
			}
			continue
		}
		stats.found++
		cost := dij.PathCost(m, path)
		stats.totalCost += cost
		stats.totalSteps += len(path) - 1
		if len(path) > stats.longestLen {
			stats.longestLen = len(path)
		}

		other := pen.FindPath(m, a, b)
		if other == nil || pen.PathCost(m, other) != cost {
			stats.crossMismatches++
		}

		// Every few queries, flood a reachable area from the start.
		if q%10 == 0 {
			budget := 3 + rng.Intn(10)
			set := dij.ReachablePositions(m, a, budget)
			stats.reachQueries++
			stats.reachCells += len(set)
			if len(set) > stats.largestReach {
				stats.largestReach = len(set)
			}
			if len(pen.ReachablePositions(m, a, budget)) != len(set) {
				stats.crossMismatches++
			}
		}
	}
	stats.elapsed = time.Since(start)
	return stats
}

// buildMap scatters obstacles and mixed-cost terrain, leaving at
// least one passable cell.
func buildMap(rng *rand.Rand, w, h int, topology grid.Topology, density float64) *grid.Map {
	m := grid.NewMap(w, h, topology)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := grid.Position{X: x, Y: y}
			switch {
			case rng.Float64() < density:
				m.SetTerrain(p, grid.TerrainMountain)
			case topology == grid.SquareGrid && rng.Float64() < 0.25:
				m.SetTerrain(p, grid.TerrainForest)
			case topology == grid.SquareGrid && rng.Float64() < 0.10:
				m.SetTerrain(p, grid.TerrainSwamp)
			default:
				m.SetTerrain(p, grid.TerrainPlains)
			}
		}
	}
	m.SetTerrain(grid.Position{}, grid.TerrainPlains)
	return m
}

func randomPassable(rng *rand.Rand, m *grid.Map) grid.Position {
	for {
		p := grid.Position{X: rng.Intn(m.Width()), Y: rng.Intn(m.Height())}
		if m.IsPassable(p) {
			return p
		}
	}
}

func printSummary(all []runStats, w, h int, topology string) {
	fmt.Printf("=== pathreport: %d runs on %dx%d %s maps ===\n\n", len(all), w, h, topology)
	fmt.Printf("%-4s %-8s %-8s %-8s %-9s %-9s %-8s %-9s %-6s\n",
		"run", "seed", "found", "avgCost", "avgSteps", "longest", "reachAvg", "mismatch", "ms")

	var totFound, totQueries, totMismatch int
	for _, s := range all {
		avgCost := 0.0
		avgSteps := 0.0
		if s.found > 0 {
			avgCost = float64(s.totalCost) / float64(s.found)
			avgSteps = float64(s.totalSteps) / float64(s.found)
		}
		reachAvg := 0.0
		if s.reachQueries > 0 {
			reachAvg = float64(s.reachCells) / float64(s.reachQueries)
		}
		fmt.Printf("%-4d %-8d %3d/%-4d %-8.1f %-9.1f %-9d %-8.1f %-9d %-6d\n",
			s.runIndex, s.seed, s.found, s.queries, avgCost, avgSteps,
			s.longestLen, reachAvg, s.crossMismatches, s.elapsed.Milliseconds())

		totFound += s.found
		totQueries += s.queries
		totMismatch += s.crossMismatches
	}

	fmt.Printf("\ntotals: %d/%d paths found, %d backend mismatches\n", totFound, totQueries, totMismatch)
	if totMismatch > 0 {
		fmt.Println("WARNING: backends disagreed; investigate before trusting either")
		os.Exit(1)
	}
}
