package game

import "github.com/oakmund/warpath/pkg/grid"

// Unit is the single demo mover: a position and a per-turn movement
// allowance.
type Unit struct {
	Pos        grid.Position
	MaxMove    int
	MovePoints int
}

// ResetTurn restores the unit's full movement allowance.
func (u *Unit) ResetTurn() {
	u.MovePoints = u.MaxMove
}
