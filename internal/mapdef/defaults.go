package mapdef

import "github.com/oakmund/warpath/pkg/grid"

// defaultAdventure is the built-in overworld: open plains with a
// mountain spine, a forest belt, a swamp and a road cutting through.
const defaultAdventure = `
name: greenfield
topology: square
legend:
  ".": plains
  "r": road
  "f": forest
  "h": hills
  "s": swamp
  "d": desert
  "~": water
  "^": mountain
rows:
  - "..........ff..."
  - ".rrrrrrrr.ff..."
  - "........r.ff..."
  - "..^^....rrrr..."
  - "..^^^......r..."
  - "...^^.ss...r..."
  - "...h..sss..r..."
  - "..hh...ss..r..."
  - "..h.....~~.r..."
  - "........~~~r..."
  - ".dd......~.r..."
  - ".ddd.......r..."
  - "...........r..."
  - "....ffff...r..."
  - "....ffff......."
`

// defaultBattle is the built-in battle field: a uniform hex grid with
// a few impassable rocks.
const defaultBattle = `
name: clearing
topology: hex
legend:
  ".": plains
  "^": mountain
rows:
  - ".........."
  - "...^......"
  - ".........."
  - "......^^.."
  - ".........."
  - ".^........"
  - ".........."
  - "........^."
`

func mustBuild(src string) *grid.Map {
	d, err := Parse([]byte(src))
	if err != nil {
		panic(err)
	}
	m, err := d.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultAdventureMap returns a fresh copy of the built-in overworld.
func DefaultAdventureMap() *grid.Map { return mustBuild(defaultAdventure) }

// DefaultBattleMap returns a fresh copy of the built-in battle field.
func DefaultBattleMap() *grid.Map { return mustBuild(defaultBattle) }
