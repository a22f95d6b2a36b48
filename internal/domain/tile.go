package domain

import "fmt"

// Tile is one cell of a side's grid. At most one combatant occupies it.
type Tile struct {
	Pos     UnifiedPosition `json:"pos"`
	Side    Side            `json:"side"`
	Terrain *Terrain        `json:"terrain,omitempty"`
	Surface *Surface        `json:"surface,omitempty"`

	occupant *Combatant
}

// Occupant returns the combatant standing on the tile, or nil.
func (t *Tile) Occupant() *Combatant {
	return t.occupant
}

func (t *Tile) IsOccupied() bool {
	return t.occupant != nil
}

// Place puts the combatant on the tile. Placing onto an occupied tile or onto
// terrain that rejects the combatant is a caller bug.
func (t *Tile) Place(c *Combatant) error {
	if t.occupant != nil {
		return fmt.Errorf("%v: %w (by %s)", t.Pos, ErrTileOccupied, t.occupant)
	}
	if !t.Terrain.Accepts(c) {
		return fmt.Errorf("%v: %w (%s)", t.Pos, ErrTerrainBlocked, t.Terrain.Kind)
	}
	t.occupant = c
	return nil
}

// Remove clears the occupant and returns it.
func (t *Tile) Remove() *Combatant {
	c := t.occupant
	t.occupant = nil
	return c
}

// MovementCost is the mobility the combatant spends to enter this tile.
func (t *Tile) MovementCost(c *Combatant) int {
	return t.Terrain.MoveCostFor(c)
}

// RangedDefenseBonus is the cover fraction the combatant receives here.
func (t *Tile) RangedDefenseBonus(c *Combatant, earthAmp float64) float64 {
	return t.Terrain.RangedDefenseFor(c, earthAmp)
}

// HazardDamage sums terrain and surface hazards for the combatant.
func (t *Tile) HazardDamage(c *Combatant) int {
	return t.Terrain.HazardFor(c) + t.Surface.HazardFor(c)
}

// DefeatsOnEntry reports whether the terrain knocks the combatant out on entry.
func (t *Tile) DefeatsOnEntry(c *Combatant) bool {
	return t.Terrain.DefeatsOnEntry(c)
}

// ApplySurface replaces any current surface.
func (t *Tile) ApplySurface(def SurfaceSpec) {
	if def.Ticks <= 0 {
		return
	}
	t.Surface = NewSurface(def)
}

// TickSurface advances the surface; returns true if it expired this tick.
func (t *Tile) TickSurface() bool {
	if t.Surface == nil {
		return false
	}
	if t.Surface.Tick() {
		t.Surface = nil
		return true
	}
	return false
}

func (t *Tile) String() string {
	return fmt.Sprintf("%s[%d,%d]", t.Side, t.Pos.Row, t.Pos.Col)
}
