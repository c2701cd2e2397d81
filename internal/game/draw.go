package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/oakmund/warpath/pkg/grid"
)

// terrainColors maps each terrain to its tile fill.
var terrainColors = map[grid.Terrain]color.RGBA{
	grid.TerrainPlains:   {R: 126, G: 166, B: 96, A: 255},
	grid.TerrainRoad:     {R: 176, G: 160, B: 126, A: 255},
	grid.TerrainForest:   {R: 56, G: 108, B: 62, A: 255},
	grid.TerrainHills:    {R: 142, G: 128, B: 94, A: 255},
	grid.TerrainSwamp:    {R: 84, G: 98, B: 66, A: 255},
	grid.TerrainDesert:   {R: 200, G: 180, B: 120, A: 255},
	grid.TerrainWater:    {R: 58, G: 94, B: 146, A: 255},
	grid.TerrainMountain: {R: 96, G: 92, B: 90, A: 255},
}

var (
	reachableCol  = color.RGBA{R: 80, G: 170, B: 255, A: 90}
	affordableCol = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	deniedCol     = color.RGBA{R: 150, G: 150, B: 150, A: 200}
	unitCol       = color.RGBA{R: 235, G: 80, B: 60, A: 255}
	gridLineCol   = color.RGBA{R: 0, G: 0, B: 0, A: 40}
	hoverCol      = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	bgCol         = color.RGBA{R: 24, G: 26, B: 30, A: 255}
)

// tileColor reads a tile's fill straight from its cost/passability so
// maps loaded from files render sensibly even without terrain tags.
func tileColor(m *grid.Map, p grid.Position) color.RGBA {
	if !m.IsPassable(p) {
		return terrainColors[grid.TerrainMountain]
	}
	switch m.MoveCost(p) {
	case 1:
		return terrainColors[grid.TerrainPlains]
	case 2:
		return terrainColors[grid.TerrainForest]
	default:
		return terrainColors[grid.TerrainSwamp]
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgCol)
	if g.mode == ModeBattle {
		g.drawBattle(screen)
	} else {
		g.drawAdventure(screen)
	}
	g.drawHUD(screen)
}

// worldToScreen applies the border and camera offsets.
func (g *Game) worldToScreen(wx, wy float64) (float32, float32) {
	return float32(wx + borderWidth - g.camX), float32(wy + borderWidth - g.camY)
}

func (g *Game) drawAdventure(screen *ebiten.Image) {
	b := g.adventure
	reach := map[grid.Position]struct{}{}
	if g.showReachable {
		reach = b.Reachable()
	}

	for y := 0; y < b.Map.Height(); y++ {
		for x := 0; x < b.Map.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			sx, sy := g.worldToScreen(float64(x*squareTile), float64(y*squareTile))
			vector.DrawFilledRect(screen, sx, sy, squareTile, squareTile, tileColor(b.Map, p), false)
			vector.StrokeRect(screen, sx, sy, squareTile, squareTile, 1, gridLineCol, false)
			if _, ok := reach[p]; ok {
				vector.DrawFilledRect(screen, sx, sy, squareTile, squareTile, reachableCol, false)
			}
		}
	}

	if b.hasHover && b.Map.InBounds(b.hover) {
		sx, sy := g.worldToScreen(float64(b.hover.X*squareTile), float64(b.hover.Y*squareTile))
		vector.DrawFilledRect(screen, sx, sy, squareTile, squareTile, hoverCol, false)
	}

	g.drawPreview(screen, b, g.squareCenter)
	ux, uy := g.squareCenter(b.Unit.Pos)
	vector.DrawFilledCircle(screen, ux, uy, squareTile*0.32, unitCol, true)
}

func (g *Game) squareCenter(p grid.Position) (float32, float32) {
	return g.worldToScreen(float64(p.X*squareTile)+squareTile/2, float64(p.Y*squareTile)+squareTile/2)
}

func (g *Game) drawBattle(screen *ebiten.Image) {
	b := g.battle
	reach := map[grid.Position]struct{}{}
	if g.showReachable {
		reach = b.Reachable()
	}

	for row := 0; row < b.Map.Height(); row++ {
		for col := 0; col < b.Map.Width(); col++ {
			p := grid.Position{X: col, Y: row}
			cx, cy := g.hexCenter(p)
			fill := tileColor(b.Map, p)
			vector.DrawFilledCircle(screen, cx, cy, float32(g.layout.Size)*0.82, fill, true)
			g.strokeHex(screen, cx, cy, gridLineCol)
			if _, ok := reach[p]; ok {
				vector.DrawFilledCircle(screen, cx, cy, float32(g.layout.Size)*0.82, reachableCol, true)
			}
		}
	}

	if b.hasHover && b.Map.InBounds(b.hover) {
		cx, cy := g.hexCenter(b.hover)
		vector.DrawFilledCircle(screen, cx, cy, float32(g.layout.Size)*0.82, hoverCol, true)
	}

	g.drawPreview(screen, b, g.hexCenter)
	ux, uy := g.hexCenter(b.Unit.Pos)
	vector.DrawFilledCircle(screen, ux, uy, float32(g.layout.Size)*0.45, unitCol, true)
}

func (g *Game) hexCenter(p grid.Position) (float32, float32) {
	wx, wy := g.layout.ToWorld(p.X, p.Y)
	return g.worldToScreen(wx, wy)
}

// strokeHex outlines a pointy-top hex around (cx, cy).
func (g *Game) strokeHex(screen *ebiten.Image, cx, cy float32, col color.RGBA) {
	r := float32(g.layout.Size)
	var px, py float32
	for i := 0; i <= 6; i++ {
		a := math.Pi/180*(60*float64(i)-30) // pointy top
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i > 0 {
			vector.StrokeLine(screen, px, py, x, y, 1, col, true)
		}
		px, py = x, y
	}
}

// drawPreview renders the hovered path as a polyline split at the
// budget boundary: affordable steps bright, the remainder greyed.
func (g *Game) drawPreview(screen *ebiten.Image, b *Board, center func(grid.Position) (float32, float32)) {
	path, reachIdx, _ := b.Preview()
	if len(path) < 2 {
		return
	}
	for i := 1; i < len(path); i++ {
		x0, y0 := center(path[i-1])
		x1, y1 := center(path[i])
		col := affordableCol
		width := float32(3)
		if i > reachIdx {
			col = deniedCol
			width = 2
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, width, col, true)
	}
	// Mark the furthest affordable cell.
	mx, my := center(path[reachIdx])
	vector.DrawFilledCircle(screen, mx, my, 4, affordableCol, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	b := g.board()
	face := basicfont.Face7x13

	headline := fmt.Sprintf("%s  |  move %d/%d", g.mode, b.Unit.MovePoints, b.Unit.MaxMove)
	text.Draw(screen, headline, face, borderWidth, screenH-28, color.White)

	if path, _, cost := b.Preview(); path != nil {
		detail := fmt.Sprintf("path: %d steps, cost %d", len(path)-1, cost)
		text.Draw(screen, detail, face, borderWidth, screenH-12, color.White)
	}
	if g.statusLine != "" {
		text.Draw(screen, g.statusLine, face, screenW/2, screenH-12, color.White)
	}

	if g.showHUD {
		ebitenutil.DebugPrintAt(screen,
			"TAB mode | R reachable | E end turn | C copy report | WASD pan | H hide",
			borderWidth, 2)
	}
}
