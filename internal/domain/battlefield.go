package domain

import "fmt"

// Battlefield owns both grids and is the only way to turn a UnifiedPosition into a Tile.
type Battlefield struct {
	grids [2]*Grid
}

func NewBattlefield() *Battlefield {
	return &Battlefield{
		grids: [2]*Grid{NewGrid(SidePlayer), NewGrid(SideEnemy)},
	}
}

// Grid returns one side's grid.
func (b *Battlefield) Grid(side Side) *Grid {
	if side > SideEnemy {
		return nil
	}
	return b.grids[side]
}

// Tile resolves a position. Invalid positions return nil.
func (b *Battlefield) Tile(p UnifiedPosition) *Tile {
	if !p.IsValid() {
		return nil
	}
	return b.grids[p.Side()].Tile(p.ToSideLocal())
}

// Tiles returns all 18 tiles ordered by row, then global column.
func (b *Battlefield) Tiles() []*Tile {
	out := make([]*Tile, 0, Rows*TotalCols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < TotalCols; c++ {
			out = append(out, b.Tile(Pos(r, c)))
		}
	}
	return out
}

// SetTerrain assigns terrain to a tile. A nil terrain restores open ground.
func (b *Battlefield) SetTerrain(p UnifiedPosition, t *Terrain) error {
	tile := b.Tile(p)
	if tile == nil {
		return fmt.Errorf("%v: %w", p, ErrInvalidPosition)
	}
	tile.Terrain = t
	return nil
}

// Place puts a combatant on its own side of the field.
func (b *Battlefield) Place(c *Combatant, p UnifiedPosition) error {
	tile := b.Tile(p)
	if tile == nil {
		return fmt.Errorf("%v: %w", p, ErrInvalidPosition)
	}
	if tile.Side != c.Side {
		return fmt.Errorf("%s at %v: %w", c, p, ErrWrongSide)
	}
	if _, ok := b.Locate(c); ok {
		return fmt.Errorf("%s: %w", c, ErrAlreadyOnField)
	}
	return tile.Place(c)
}

// Remove takes a combatant off the field. Returns false if it was not placed.
func (b *Battlefield) Remove(c *Combatant) bool {
	tile := b.TileOf(c)
	if tile == nil {
		return false
	}
	tile.Remove()
	return true
}

// Relocate moves a placed combatant to another tile of its side. It performs no
// rule checks beyond occupancy and terrain acceptance.
func (b *Battlefield) Relocate(c *Combatant, to UnifiedPosition) error {
	from := b.TileOf(c)
	if from == nil {
		return fmt.Errorf("%s: %w", c, ErrNotOnBattlefield)
	}
	dest := b.Tile(to)
	if dest == nil {
		return fmt.Errorf("%v: %w", to, ErrInvalidPosition)
	}
	if dest.Side != c.Side {
		return fmt.Errorf("%s to %v: %w", c, to, ErrWrongSide)
	}
	if err := dest.Place(c); err != nil {
		return err
	}
	from.Remove()
	return nil
}

// TileOf returns the tile the combatant stands on, or nil.
func (b *Battlefield) TileOf(c *Combatant) *Tile {
	if c == nil {
		return nil
	}
	for _, g := range b.grids {
		for _, t := range g.Tiles() {
			if t.Occupant() == c {
				return t
			}
		}
	}
	return nil
}

// Locate returns the combatant's position.
func (b *Battlefield) Locate(c *Combatant) (UnifiedPosition, bool) {
	if t := b.TileOf(c); t != nil {
		return t.Pos, true
	}
	return UnifiedPosition{}, false
}

// Combatants returns every occupant of a side, defeated or not.
func (b *Battlefield) Combatants(side Side) []*Combatant {
	return b.Grid(side).Combatants()
}

// Living returns the side's occupants that are still fighting.
func (b *Battlefield) Living(side Side) []*Combatant {
	var out []*Combatant
	for _, c := range b.Combatants(side) {
		if !c.IsDefeated() {
			out = append(out, c)
		}
	}
	return out
}

// ClearDefeated removes defeated occupants from both grids and returns them.
func (b *Battlefield) ClearDefeated() []*Combatant {
	var out []*Combatant
	for _, t := range b.Tiles() {
		if c := t.Occupant(); c != nil && c.IsDefeated() {
			t.Remove()
			out = append(out, c)
		}
	}
	return out
}

// TickSurfaces advances every surface effect and returns how many expired.
func (b *Battlefield) TickSurfaces() int {
	expired := 0
	for _, t := range b.Tiles() {
		if t.TickSurface() {
			expired++
		}
	}
	return expired
}
