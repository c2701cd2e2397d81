package hexmap

import "math"

// Sqrt3 shows up throughout pointy-top hex geometry.
const Sqrt3 = 1.7320508075688772

// Layout binds a hex field's dimensions to a pixel size so cells can be
// mapped to and from world space. Size is the hex circumradius.
type Layout struct {
	Cols int
	Rows int
	Size float64
}

// IsValid reports whether (col, row) lies inside the layout.
func (l Layout) IsValid(col, row int) bool {
	return col >= 0 && row >= 0 && col < l.Cols && row < l.Rows
}

// Contains reports whether h lies inside the layout.
func (l Layout) Contains(h Hex) bool {
	return l.IsValid(h.Col, h.Row)
}

// Neighbors returns the in-bounds neighbors of (col, row).
func (l Layout) Neighbors(col, row int) []Hex {
	h := Hex{Col: col, Row: row}
	out := make([]Hex, 0, 6)
	for _, n := range h.Neighbors() {
		if l.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// ToWorld returns the pixel center of (col, row) for a pointy-top
// odd-r layout: odd rows are shifted right half a cell.
func (l Layout) ToWorld(col, row int) (x, y float64) {
	x = l.Size * Sqrt3 * (float64(col) + 0.5*float64(row&1))
	y = l.Size * 1.5 * float64(row)
	return
}

// FromWorld returns the hex containing the pixel point (x, y). The
// second return is false when the point falls outside the layout.
func (l Layout) FromWorld(x, y float64) (Hex, bool) {
	q := (Sqrt3/3*x - y/3) / l.Size
	r := (2.0 / 3 * y) / l.Size
	h := axialRound(q, r).toOffset()
	return h, l.Contains(h)
}

// toOffset converts axial back to odd-r offset coordinates.
func (a Axial) toOffset() Hex {
	return Hex{
		Col: a.Q + (a.R-(a.R&1))/2,
		Row: a.R,
	}
}

// axialRound snaps fractional axial coordinates to the nearest hex by
// rounding in cube space and fixing the component with the largest
// rounding error so x+y+z stays zero.
func axialRound(q, r float64) Axial {
	x, z := q, r
	y := -x - z

	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Axial{Q: int(rx), R: int(rz)}
}
