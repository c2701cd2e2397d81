package game

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/oakmund/warpath/internal/mapdef"
	"github.com/oakmund/warpath/pkg/grid"
	"github.com/oakmund/warpath/pkg/hexmap"
	"github.com/oakmund/warpath/pkg/pathing"
)

const (
	screenW = 960
	screenH = 640

	// borderWidth is the pixel gap between the window edge and the
	// playfield.
	borderWidth = 24

	squareTile = 32 // adventure tile edge, px
	hexSize    = 22 // battle hex circumradius, px

	adventureMove = 6 // movement points per adventure turn
	battleMove    = 3 // movement points per battle turn
)

// Mode selects which board the window shows.
type Mode uint8

const (
	ModeAdventure Mode = iota
	ModeBattle
)

func (m Mode) String() string {
	if m == ModeBattle {
		return "battle"
	}
	return "adventure"
}

type Game struct {
	mode      Mode
	adventure *Board
	battle    *Board
	layout    hexmap.Layout // battle board world geometry

	showReachable bool
	showHUD       bool

	// Camera pan offset in world pixels.
	camX float64
	camY float64

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// Optional live reload of map files.
	watcher *mapdef.Watcher
	mapsDir string

	// One-line status for the HUD (copy/reload feedback).
	statusLine string
}

// Options configures the client.
type Options struct {
	// Engine picks the search backend; nil means Dijkstra.
	Engine pathing.Engine
	// MapsDir, when set, is scanned for adventure.yaml / battle.yaml
	// and watched for edits.
	MapsDir string
}

// New builds the demo client: the built-in adventure and battle maps,
// one unit on each, and optional live map reload.
func New(opts Options) *Game {
	engine := opts.Engine
	if engine == nil {
		engine = pathing.DijkstraEngine{}
	}

	adv := mapdef.DefaultAdventureMap()
	bat := mapdef.DefaultBattleMap()
	if opts.MapsDir != "" {
		if m, _, err := mapdef.LoadMap(filepath.Join(opts.MapsDir, "adventure.yaml")); err == nil {
			adv = m
		}
		if m, _, err := mapdef.LoadMap(filepath.Join(opts.MapsDir, "battle.yaml")); err == nil {
			bat = m
		}
	}

	g := &Game{
		adventure: NewBoard(adv, firstPassable(adv), adventureMove, engine),
		battle:    NewBoard(bat, firstPassable(bat), battleMove, engine),
		layout:    hexmap.Layout{Cols: bat.Width(), Rows: bat.Height(), Size: hexSize},
		showHUD:   true,
		prevKeys:  map[ebiten.Key]bool{},
		mapsDir:   opts.MapsDir,
	}

	if opts.MapsDir != "" {
		w, err := mapdef.NewWatcher(opts.MapsDir)
		if err != nil {
			log.Printf("map watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

// board returns the active board for the current mode.
func (g *Game) board() *Board {
	if g.mode == ModeBattle {
		return g.battle
	}
	return g.adventure
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.handleKeys()
	g.handleMouse()
	return nil
}

// handleKeys processes edge-triggered key presses per the HUD legend.
func (g *Game) handleKeys() {
	current := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		current[k] = ebiten.IsKeyPressed(k)
		return current[k] && !g.prevKeys[k]
	}

	if pressed(ebiten.KeyTab) {
		if g.mode == ModeAdventure {
			g.mode = ModeBattle
		} else {
			g.mode = ModeAdventure
		}
		g.board().ClearHover()
		g.statusLine = ""
	}
	if pressed(ebiten.KeyR) {
		g.showReachable = !g.showReachable
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyE) {
		g.board().EndTurn()
		g.statusLine = "turn ended"
	}
	if pressed(ebiten.KeyC) {
		if err := copyBoardReport(g.board(), g.mode.String()); err != nil {
			g.statusLine = "clipboard: " + err.Error()
		} else {
			g.statusLine = "report copied to clipboard"
		}
	}

	// Camera pan.
	const panSpeed = 6
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += panSpeed
	}

	g.prevKeys = current
}

// handleMouse refreshes the hover preview every frame and executes a
// move on an edge-triggered left click.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	cell, ok := g.cellAt(mx, my)
	b := g.board()
	if ok {
		b.SetHover(cell)
	} else {
		b.ClearHover()
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.prevMouseLeft && ok {
		if taken := b.MoveTo(cell); taken != nil {
			g.statusLine = ""
		}
	}
	g.prevMouseLeft = left
}

// cellAt maps a window pixel to a board cell under the active mode.
func (g *Game) cellAt(mx, my int) (grid.Position, bool) {
	wx := float64(mx) - borderWidth + g.camX
	wy := float64(my) - borderWidth + g.camY

	if g.mode == ModeBattle {
		h, ok := g.layout.FromWorld(wx, wy)
		if !ok {
			return grid.Position{}, false
		}
		return grid.Position{X: h.Col, Y: h.Row}, true
	}

	if wx < 0 || wy < 0 {
		return grid.Position{}, false
	}
	p := grid.Position{X: int(wx) / squareTile, Y: int(wy) / squareTile}
	if !g.adventure.Map.InBounds(p) {
		return grid.Position{}, false
	}
	return p, true
}

// pollWatcher drains map-edit events without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadMap(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("map watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reloadMap re-reads an edited definition and swaps it into whichever
// board its topology belongs to.
func (g *Game) reloadMap(path string) {
	m, d, err := mapdef.LoadMap(path)
	if err != nil {
		log.Printf("map reload %s: %v", path, err)
		g.statusLine = "map reload failed: " + filepath.Base(path)
		return
	}
	switch m.Topology() {
	case grid.HexGrid:
		g.battle.ReplaceMap(m)
		g.layout = hexmap.Layout{Cols: m.Width(), Rows: m.Height(), Size: hexSize}
	default:
		g.adventure.ReplaceMap(m)
	}
	g.statusLine = "reloaded " + d.Name
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
