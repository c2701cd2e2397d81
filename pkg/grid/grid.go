// Package grid holds the tile map shared by the adventure and battle
// layers: per-cell passability and entry cost, plus neighbor
// enumeration for both supported topologies.
package grid

// Position identifies a cell. On a square map X/Y are column/row; on a
// hex map X is the offset column and Y the row.
type Position struct {
	X int
	Y int
}

// Topology selects which neighbor table a map uses.
type Topology uint8

const (
	// SquareGrid is 8-directional: 4 orthogonal + 4 diagonal.
	SquareGrid Topology = iota
	// HexGrid is an odd-r offset hex layout: 6 neighbors, the offset
	// table switching on row parity.
	HexGrid
)

// Tile is one cell's terrain attributes. MoveCost is the cost to enter
// the tile and is only meaningful when Passable is true.
type Tile struct {
	Passable bool
	MoveCost int
}

// Map is a width×height tile array with a fixed topology. The map is
// owned by the world/battle layer; pathfinding only reads it, so a
// caller mutating tiles mid-query is a contract violation.
type Map struct {
	width    int
	height   int
	topology Topology
	tiles    []Tile
}

// NewMap returns a map with every tile passable at cost 1.
func NewMap(width, height int, topology Topology) *Map {
	m := &Map{
		width:    width,
		height:   height,
		topology: topology,
		tiles:    make([]Tile, width*height),
	}
	for i := range m.tiles {
		m.tiles[i] = Tile{Passable: true, MoveCost: 1}
	}
	return m
}

func (m *Map) Width() int         { return m.width }
func (m *Map) Height() int        { return m.height }
func (m *Map) Topology() Topology { return m.topology }

// InBounds reports whether p lies inside the map rectangle.
func (m *Map) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// Tile returns the tile at p. Out-of-bounds positions read as an
// impassable zero tile.
func (m *Map) Tile(p Position) Tile {
	if !m.InBounds(p) {
		return Tile{}
	}
	return m.tiles[p.Y*m.width+p.X]
}

// SetTile overwrites the tile at p. Out-of-bounds writes are dropped.
func (m *Map) SetTile(p Position, t Tile) {
	if !m.InBounds(p) {
		return
	}
	m.tiles[p.Y*m.width+p.X] = t
}

// SetTerrain assigns terrain-derived passability and cost to p.
func (m *Map) SetTerrain(p Position, terr Terrain) {
	m.SetTile(p, Tile{Passable: terr.Passable(), MoveCost: terr.MoveCost()})
}

// IsPassable reports whether a mover may stand on p. Out of bounds is
// always impassable.
func (m *Map) IsPassable(p Position) bool {
	return m.InBounds(p) && m.tiles[p.Y*m.width+p.X].Passable
}

// MoveCost returns the cost of entering p. The caller must have
// checked IsPassable first; the value for an impassable or
// out-of-bounds cell is meaningless. All terrain semantics funnel
// through IsPassable/MoveCost so future rules live in one place.
func (m *Map) MoveCost(p Position) int {
	if !m.InBounds(p) {
		return 0
	}
	return m.tiles[p.Y*m.width+p.X].MoveCost
}

// squareDirs enumerates the 8 square-grid neighbor offsets.
var squareDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// hexDirs enumerates the 6 hex neighbor offsets per row parity
// (odd-r offset layout: odd rows shifted half a cell to the right).
var hexDirs = [2][6][2]int{
	{ // even rows
		{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	},
	{ // odd rows
		{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1},
	},
}

// Neighbors appends p's in-bounds neighbors under the map's topology to
// buf and returns the result. Passability is deliberately not checked
// here; adjacency only enumerates candidates and the search filters.
// Passing a reused buf avoids per-call allocation in the search loop.
func (m *Map) Neighbors(p Position, buf []Position) []Position {
	switch m.topology {
	case HexGrid:
		for _, d := range hexDirs[p.Y&1] {
			n := Position{X: p.X + d[0], Y: p.Y + d[1]}
			if m.InBounds(n) {
				buf = append(buf, n)
			}
		}
	default:
		for _, d := range squareDirs {
			n := Position{X: p.X + d[0], Y: p.Y + d[1]}
			if m.InBounds(n) {
				buf = append(buf, n)
			}
		}
	}
	return buf
}

// Adjacent reports whether a and b are neighbors under the map's
// topology.
func (m *Map) Adjacent(a, b Position) bool {
	if m.topology == HexGrid {
		for _, d := range hexDirs[a.Y&1] {
			if b.X == a.X+d[0] && b.Y == a.Y+d[1] {
				return true
			}
		}
		return false
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return false
	}
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
