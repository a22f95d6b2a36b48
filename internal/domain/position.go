package domain

import "fmt"

// Battlefield dimensions. Each side owns a Rows×SideCols grid; together they form Rows×TotalCols.
const (
	Rows      = 3
	SideCols  = 3
	TotalCols = SideCols * 2
)

// SidePosition is a coordinate inside one side's 3×3 grid.
type SidePosition struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// IsValid reports whether the position lies on a 3×3 grid.
func (p SidePosition) IsValid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < SideCols
}

// UnifiedPosition is a coordinate on the full 3×6 battlefield.
// Columns 0-2 belong to the Player side, 3-5 to the Enemy side; the seam lies between 2 and 3.
type UnifiedPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is a shorthand constructor. The result may be invalid; consumers check IsValid.
func Pos(row, col int) UnifiedPosition {
	return UnifiedPosition{Row: row, Col: col}
}

func (p UnifiedPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// IsValid reports whether both coordinates are in range.
func (p UnifiedPosition) IsValid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < TotalCols
}

// Side returns the side owning the column.
func (p UnifiedPosition) Side() Side {
	if p.Col <= SideCols-1 {
		return SidePlayer
	}
	return SideEnemy
}

// LocalColumn returns the column inside the owning side's grid.
func (p UnifiedPosition) LocalColumn() int {
	if p.Side() == SidePlayer {
		return p.Col
	}
	return p.Col - SideCols
}

// ToSideLocal converts to the owning side's grid coordinate.
func (p UnifiedPosition) ToSideLocal() SidePosition {
	return SidePosition{Row: p.Row, Col: p.LocalColumn()}
}

// FromSideLocal is the inverse of ToSideLocal.
func FromSideLocal(side Side, local SidePosition) UnifiedPosition {
	if side == SidePlayer {
		return UnifiedPosition{Row: local.Row, Col: local.Col}
	}
	return UnifiedPosition{Row: local.Row, Col: local.Col + SideCols}
}

// Shift returns a new position offset by (dRow, dCol).
func (p UnifiedPosition) Shift(dRow, dCol int) UnifiedPosition {
	return UnifiedPosition{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p UnifiedPosition) RowDistance(other UnifiedPosition) int {
	return abs(p.Row - other.Row)
}

func (p UnifiedPosition) ColumnDistance(other UnifiedPosition) int {
	return abs(p.Col - other.Col)
}

func (p UnifiedPosition) ManhattanDistance(other UnifiedPosition) int {
	return p.RowDistance(other) + p.ColumnDistance(other)
}

func (p UnifiedPosition) ChebyshevDistance(other UnifiedPosition) int {
	dr, dc := p.RowDistance(other), p.ColumnDistance(other)
	if dr > dc {
		return dr
	}
	return dc
}

// IsAdjacentTo reports 8-directional adjacency. Works across the seam.
func (p UnifiedPosition) IsAdjacentTo(other UnifiedPosition) bool {
	dr, dc := p.RowDistance(other), p.ColumnDistance(other)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

// IsInTargetableRow is the row constraint for cross-side targeting: rows differ by at most one.
func (p UnifiedPosition) IsInTargetableRow(other UnifiedPosition) bool {
	return p.RowDistance(other) <= 1
}

// LaneDepth is how far the column sits from the seam on its own side: 0 front, 1 mid, 2 back.
func (p UnifiedPosition) LaneDepth() int {
	if p.Side() == SidePlayer {
		return SideCols - 1 - p.Col
	}
	return p.Col - SideCols
}

// Forward is the column step pointing from the side towards the opponent.
func (s Side) Forward() int {
	if s == SidePlayer {
		return 1
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
