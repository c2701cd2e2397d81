package game

import (
	"github.com/oakmund/warpath/pkg/grid"
	"github.com/oakmund/warpath/pkg/pathing"
)

// Board couples one map with the unit moving on it and caches the
// current hover preview. All search goes through the injected engine
// so the backend is a construction-time choice, not package state.
type Board struct {
	Map    *grid.Map
	Unit   Unit
	engine pathing.Engine

	// Hover preview, recomputed when the hovered cell changes.
	hover     grid.Position
	hasHover  bool
	preview   []grid.Position
	stepCosts []int
	reachIdx  int
	pathCost  int

	// Reachable overlay cache, invalidated on movement or turn end.
	reachable map[grid.Position]struct{}
}

// NewBoard places a unit with the given movement allowance on m.
func NewBoard(m *grid.Map, start grid.Position, moveAllowance int, engine pathing.Engine) *Board {
	return &Board{
		Map:    m,
		Unit:   Unit{Pos: start, MaxMove: moveAllowance, MovePoints: moveAllowance},
		engine: engine,
	}
}

// SetHover recomputes the path preview toward p. A cheap no-op when
// the hovered cell has not changed, since this runs every frame.
func (b *Board) SetHover(p grid.Position) {
	if b.hasHover && p == b.hover {
		return
	}
	b.hover = p
	b.hasHover = true
	b.preview = b.engine.FindPath(b.Map, b.Unit.Pos, p)
	if b.preview == nil {
		b.stepCosts = nil
		b.reachIdx = 0
		b.pathCost = 0
		return
	}
	b.stepCosts = pathing.StepCosts(b.Map, b.preview)
	b.reachIdx = pathing.ReachableIndex(b.preview, b.stepCosts, b.Unit.MovePoints)
	b.pathCost = b.engine.PathCost(b.Map, b.preview)
}

// ClearHover drops the preview.
func (b *Board) ClearHover() {
	b.hasHover = false
	b.preview = nil
	b.stepCosts = nil
	b.reachIdx = 0
	b.pathCost = 0
}

// Preview returns the hovered path, the index of the last cell
// affordable this turn, and the full path cost. The path is nil when
// nothing is hovered or the hovered cell is unreachable.
func (b *Board) Preview() (path []grid.Position, reachIdx, cost int) {
	return b.preview, b.reachIdx, b.pathCost
}

// Reachable returns the cells the unit can still reach this turn.
func (b *Board) Reachable() map[grid.Position]struct{} {
	if b.reachable == nil {
		b.reachable = b.engine.ReachablePositions(b.Map, b.Unit.Pos, b.Unit.MovePoints)
	}
	return b.reachable
}

// MoveTo walks the unit toward target as far as its remaining points
// allow, spending exactly the cost of the steps taken. Returns the
// cells actually traversed (nil when the unit cannot move at all).
func (b *Board) MoveTo(target grid.Position) []grid.Position {
	path := b.engine.FindPath(b.Map, b.Unit.Pos, target)
	if len(path) < 2 {
		return nil
	}
	costs := pathing.StepCosts(b.Map, path)
	taken, spent := pathing.TruncateToBudget(path, costs, b.Unit.MovePoints)
	if len(taken) < 2 {
		return nil
	}
	b.Unit.Pos = taken[len(taken)-1]
	b.Unit.MovePoints -= spent
	b.invalidate()
	return taken
}

// EndTurn restores the unit's movement allowance.
func (b *Board) EndTurn() {
	b.Unit.ResetTurn()
	b.invalidate()
}

// ReplaceMap swaps in a freshly loaded map, keeping the unit where it
// stands when that cell is still passable and snapping it back to the
// first passable cell otherwise.
func (b *Board) ReplaceMap(m *grid.Map) {
	b.Map = m
	if !m.IsPassable(b.Unit.Pos) {
		b.Unit.Pos = firstPassable(m)
	}
	b.invalidate()
}

func (b *Board) invalidate() {
	b.reachable = nil
	b.ClearHover()
}

func firstPassable(m *grid.Map) grid.Position {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			if m.IsPassable(p) {
				return p
			}
		}
	}
	return grid.Position{}
}
