package grid

import "testing"

func TestNewMap_AllPassableCostOne(t *testing.T) {
	m := NewMap(6, 4, SquareGrid)
	if !m.IsPassable(Position{0, 0}) || !m.IsPassable(Position{5, 3}) {
		t.Fatal("fresh map should be passable everywhere")
	}
	if c := m.MoveCost(Position{3, 2}); c != 1 {
		t.Fatalf("fresh tile cost = %d, want 1", c)
	}
}

func TestMap_OutOfBoundsIsImpassable(t *testing.T) {
	m := NewMap(4, 4, SquareGrid)
	for _, p := range []Position{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-3, 9}} {
		if m.IsPassable(p) {
			t.Fatalf("out-of-bounds %v should be impassable", p)
		}
	}
}

func TestMap_SetTile(t *testing.T) {
	m := NewMap(4, 4, SquareGrid)
	m.SetTile(Position{1, 1}, Tile{Passable: false})
	if m.IsPassable(Position{1, 1}) {
		t.Fatal("tile set impassable should report impassable")
	}
	m.SetTile(Position{2, 2}, Tile{Passable: true, MoveCost: 3})
	if c := m.MoveCost(Position{2, 2}); c != 3 {
		t.Fatalf("cost = %d, want 3", c)
	}
	// Out-of-bounds write must be a no-op, not a panic.
	m.SetTile(Position{-1, 7}, Tile{Passable: true, MoveCost: 9})
}

func TestMap_Neighbors_SquareCenter(t *testing.T) {
	m := NewMap(5, 5, SquareGrid)
	ns := m.Neighbors(Position{2, 2}, nil)
	if len(ns) != 8 {
		t.Fatalf("interior square cell has %d neighbors, want 8", len(ns))
	}
}

func TestMap_Neighbors_SquareCorner(t *testing.T) {
	m := NewMap(5, 5, SquareGrid)
	ns := m.Neighbors(Position{0, 0}, nil)
	if len(ns) != 3 {
		t.Fatalf("corner square cell has %d neighbors, want 3", len(ns))
	}
}

func TestMap_Neighbors_EnumeratesImpassable(t *testing.T) {
	// Adjacency only enumerates candidates; passability is the
	// search's concern.
	m := NewMap(5, 5, SquareGrid)
	m.SetTile(Position{3, 2}, Tile{Passable: false})
	ns := m.Neighbors(Position{2, 2}, nil)
	found := false
	for _, n := range ns {
		if n == (Position{3, 2}) {
			found = true
		}
	}
	if !found {
		t.Fatal("impassable neighbor should still be enumerated")
	}
}

func TestMap_Neighbors_HexParity(t *testing.T) {
	m := NewMap(7, 7, HexGrid)

	even := m.Neighbors(Position{3, 2}, nil)
	if len(even) != 6 {
		t.Fatalf("interior hex cell has %d neighbors, want 6", len(even))
	}
	wantEven := map[Position]bool{
		{4, 2}: true, {3, 1}: true, {2, 1}: true,
		{2, 2}: true, {2, 3}: true, {3, 3}: true,
	}
	for _, n := range even {
		if !wantEven[n] {
			t.Fatalf("unexpected even-row neighbor %v", n)
		}
	}

	odd := m.Neighbors(Position{3, 3}, nil)
	wantOdd := map[Position]bool{
		{4, 3}: true, {4, 2}: true, {3, 2}: true,
		{2, 3}: true, {3, 4}: true, {4, 4}: true,
	}
	if len(odd) != 6 {
		t.Fatalf("interior hex cell has %d neighbors, want 6", len(odd))
	}
	for _, n := range odd {
		if !wantOdd[n] {
			t.Fatalf("unexpected odd-row neighbor %v", n)
		}
	}
}

func TestMap_Neighbors_HexCorner(t *testing.T) {
	m := NewMap(7, 7, HexGrid)
	ns := m.Neighbors(Position{0, 0}, nil)
	// (0,0) is an even row: only east and south-east survive bounds.
	if len(ns) != 2 {
		t.Fatalf("hex corner has %d neighbors, want 2", len(ns))
	}
}

func TestMap_Adjacent(t *testing.T) {
	sq := NewMap(5, 5, SquareGrid)
	if !sq.Adjacent(Position{2, 2}, Position{3, 3}) {
		t.Fatal("diagonal cells should be adjacent on a square map")
	}
	if sq.Adjacent(Position{2, 2}, Position{2, 2}) {
		t.Fatal("a cell is not adjacent to itself")
	}
	if sq.Adjacent(Position{2, 2}, Position{4, 2}) {
		t.Fatal("cells two apart are not adjacent")
	}

	hx := NewMap(5, 5, HexGrid)
	if !hx.Adjacent(Position{3, 3}, Position{4, 2}) {
		t.Fatal("odd-row north-east neighbor should be adjacent")
	}
	if hx.Adjacent(Position{3, 2}, Position{4, 1}) {
		t.Fatal("even-row (3,2) is not adjacent to (4,1)")
	}
}

func TestTerrain_CostsAndPassability(t *testing.T) {
	if !TerrainPlains.Passable() || TerrainPlains.MoveCost() != 1 {
		t.Fatal("plains should be passable at cost 1")
	}
	if TerrainSwamp.MoveCost() <= TerrainPlains.MoveCost() {
		t.Fatal("swamp should cost more than plains")
	}
	if TerrainWater.Passable() || TerrainMountain.Passable() {
		t.Fatal("water and mountain should be impassable")
	}
}

func TestTerrainByName_RoundTrip(t *testing.T) {
	for terr := TerrainPlains; terr < terrainCount; terr++ {
		got, ok := TerrainByName(terr.String())
		if !ok || got != terr {
			t.Fatalf("TerrainByName(%q) = %v, %v", terr.String(), got, ok)
		}
	}
	if _, ok := TerrainByName("lava"); ok {
		t.Fatal("unknown terrain name should not resolve")
	}
}

func TestSetTerrain(t *testing.T) {
	m := NewMap(3, 3, SquareGrid)
	m.SetTerrain(Position{1, 1}, TerrainSwamp)
	if c := m.MoveCost(Position{1, 1}); c != TerrainSwamp.MoveCost() {
		t.Fatalf("swamp tile cost = %d, want %d", c, TerrainSwamp.MoveCost())
	}
	m.SetTerrain(Position{0, 0}, TerrainWater)
	if m.IsPassable(Position{0, 0}) {
		t.Fatal("water tile should be impassable")
	}
}
