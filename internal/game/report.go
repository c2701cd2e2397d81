package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/oakmund/warpath/pkg/grid"
	"github.com/oakmund/warpath/pkg/hexmap"
)

// boardDebugReport dumps the board state as text: unit, budget, the
// current preview split, and an ASCII sketch of the map with the
// reachable area marked. Pasteable straight into a bug report.
func boardDebugReport(b *Board, mode string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- warpath debug report ---\n")
	fmt.Fprintf(&sb, "mode=%s map=%dx%d unit=(%d,%d) move=%d/%d\n",
		mode, b.Map.Width(), b.Map.Height(),
		b.Unit.Pos.X, b.Unit.Pos.Y, b.Unit.MovePoints, b.Unit.MaxMove)

	if path, reachIdx, cost := b.Preview(); path != nil {
		fmt.Fprintf(&sb, "preview: %d cells, cost=%d, affordable through index %d\n",
			len(path), cost, reachIdx)
		for i, p := range path {
			marker := ""
			if i == reachIdx {
				marker = "<- budget"
			}
			fmt.Fprintf(&sb, "  [%2d] (%d,%d) %s\n", i, p.X, p.Y, marker)
		}
	} else {
		sb.WriteString("preview: none\n")
	}

	reach := b.Reachable()
	fmt.Fprintf(&sb, "reachable: %d cells within %d points\n", len(reach), b.Unit.MovePoints)
	if mode == "battle" {
		uh := hexmap.Hex{Col: b.Unit.Pos.X, Row: b.Unit.Pos.Y}
		far := 0
		for p := range reach {
			if d := hexmap.Distance(uh, hexmap.Hex{Col: p.X, Row: p.Y}); d > far {
				far = d
			}
		}
		fmt.Fprintf(&sb, "furthest reachable hex ring: %d\n", far)
	}

	sb.WriteString(asciiMap(b, reach))
	return sb.String()
}

// asciiMap sketches the map: U unit, * reachable, # impassable,
// digits for entry cost.
func asciiMap(b *Board, reach map[grid.Position]struct{}) string {
	var sb strings.Builder
	for y := 0; y < b.Map.Height(); y++ {
		for x := 0; x < b.Map.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			switch {
			case p == b.Unit.Pos:
				sb.WriteByte('U')
			case !b.Map.IsPassable(p):
				sb.WriteByte('#')
			default:
				if _, ok := reach[p]; ok {
					sb.WriteByte('*')
				} else {
					sb.WriteByte('0' + byte(b.Map.MoveCost(p)%10))
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// copyBoardReport puts the debug report on the system clipboard.
func copyBoardReport(b *Board, mode string) error {
	return clipboard.WriteAll(boardDebugReport(b, mode))
}
