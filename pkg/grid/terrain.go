package grid

// Terrain identifies the base surface of an adventure-map tile.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Default open ground
	TerrainRoad                    // Paved or packed track
	TerrainForest                  // Dense woodland
	TerrainHills                   // Rolling high ground
	TerrainSwamp                   // Waterlogged lowland
	TerrainDesert                  // Loose sand
	TerrainWater                   // Deep water, impassable on foot
	TerrainMountain                // Sheer rock, impassable
	terrainCount                   // sentinel
)

// Passable reports whether the terrain can be entered at all.
func (t Terrain) Passable() bool {
	switch t {
	case TerrainWater, TerrainMountain:
		return false
	default:
		return true
	}
}

// MoveCost returns the movement points consumed by entering the
// terrain. Zero for impassable terrain, which no caller should read.
func (t Terrain) MoveCost() int {
	switch t {
	case TerrainPlains:
		return 1
	case TerrainRoad:
		return 1
	case TerrainForest:
		return 2
	case TerrainHills:
		return 2
	case TerrainSwamp:
		return 3
	case TerrainDesert:
		return 2
	default:
		return 0
	}
}

// String returns the terrain name for reports and map legends.
func (t Terrain) String() string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainRoad:
		return "road"
	case TerrainForest:
		return "forest"
	case TerrainHills:
		return "hills"
	case TerrainSwamp:
		return "swamp"
	case TerrainDesert:
		return "desert"
	case TerrainWater:
		return "water"
	case TerrainMountain:
		return "mountain"
	default:
		return "unknown"
	}
}

// TerrainByName maps a legend name back to its Terrain value. The
// second return is false for unrecognized names.
func TerrainByName(name string) (Terrain, bool) {
	for t := TerrainPlains; t < terrainCount; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
