// Package hexmap provides offset hex coordinates for the battle grid:
// neighbor enumeration by row parity, axial-based distance, and
// world-space conversion for a pointy-top odd-r layout.
package hexmap

// Hex is a cell in offset coordinates: Col counts across, Row counts
// down, and odd rows sit half a cell to the right of even rows.
type Hex struct {
	Col int
	Row int
}

// Axial is the (q, r) coordinate pair used for distance math. It is
// derived on demand from offset coordinates and never stored.
type Axial struct {
	Q int
	R int
}

// Axial converts offset to axial coordinates for the odd-r layout.
func (h Hex) Axial() Axial {
	return Axial{
		Q: h.Col - (h.Row-(h.Row&1))/2,
		R: h.Row,
	}
}

// neighborOffsets holds the 6 offset-coordinate neighbor deltas,
// indexed by row parity. Order starts East and runs counter-clockwise.
var neighborOffsets = [2][6]Hex{
	{ // even rows
		{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	},
	{ // odd rows
		{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1},
	},
}

// Neighbors returns h's six neighbors with no bounds filtering.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range neighborOffsets[h.Row&1] {
		out[i] = Hex{Col: h.Col + d.Col, Row: h.Row + d.Row}
	}
	return out
}

// Distance returns the hex distance between a and b: both are taken to
// axial and the standard cube metric max(|dq|, |dr|, |dq+dr|) applies.
// Distance is for validation and heuristics only — movement cost is
// always the accumulated per-tile entry cost, never this.
func Distance(a, b Hex) int {
	aa := a.Axial()
	ba := b.Axial()
	dq := aa.Q - ba.Q
	dr := aa.R - ba.R
	return max(abs(dq), abs(dr), abs(dq+dr))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
