package domain

import (
	"fmt"
	"strings"
)

// TerrainKind is the immutable mechanical type of a tile's ground.
type TerrainKind uint8

const (
	TerrainPlain TerrainKind = iota
	TerrainForest
	TerrainRocks
	TerrainMud
	TerrainLava
	TerrainChasm
	TerrainWall
)

var terrainToString = map[TerrainKind]string{
	TerrainPlain:  "PLAIN",
	TerrainForest: "FOREST",
	TerrainRocks:  "ROCKS",
	TerrainMud:    "MUD",
	TerrainLava:   "LAVA",
	TerrainChasm:  "CHASM",
	TerrainWall:   "WALL",
}

var terrainStringToKind = map[string]TerrainKind{
	"PLAIN":  TerrainPlain,
	"FOREST": TerrainForest,
	"ROCKS":  TerrainRocks,
	"MUD":    TerrainMud,
	"LAVA":   TerrainLava,
	"CHASM":  TerrainChasm,
	"WALL":   TerrainWall,
}

func (k TerrainKind) String() string {
	if val, ok := terrainToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseTerrain(s string) (TerrainKind, error) {
	if val, ok := terrainStringToKind[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return TerrainPlain, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// Terrain describes the element-sensitive rules of a tile's ground.
type Terrain struct {
	Kind TerrainKind

	// MoveCost is the mobility spent to enter the tile (1 on open ground).
	MoveCost int
	// RangedDefense is the fraction of ranged damage absorbed by cover.
	RangedDefense float64
	// Hazard is damage taken at the start of each turn spent on the tile.
	Hazard int
	// InstantDefeat knocks out any non-flying combatant entering the tile.
	InstantDefeat bool
	// Impassable tiles never accept an occupant.
	Impassable bool
}

// DefaultTerrain returns the built-in rules for a kind.
func DefaultTerrain(kind TerrainKind) Terrain {
	switch kind {
	case TerrainForest:
		return Terrain{Kind: kind, MoveCost: 2, RangedDefense: 0.25}
	case TerrainRocks:
		return Terrain{Kind: kind, MoveCost: 2, RangedDefense: 0.4}
	case TerrainMud:
		return Terrain{Kind: kind, MoveCost: 3}
	case TerrainLava:
		return Terrain{Kind: kind, MoveCost: 1, Hazard: 10}
	case TerrainChasm:
		return Terrain{Kind: kind, MoveCost: 1, InstantDefeat: true}
	case TerrainWall:
		return Terrain{Kind: kind, Impassable: true}
	default:
		return Terrain{Kind: TerrainPlain, MoveCost: 1}
	}
}

func flies(c *Combatant) bool {
	return c != nil && c.HasElement(ElementAir)
}

// Accepts reports whether the combatant may stand on the terrain.
func (t *Terrain) Accepts(c *Combatant) bool {
	return t == nil || !t.Impassable
}

// MoveCostFor returns the mobility needed to enter. Air combatants always pay 1.
func (t *Terrain) MoveCostFor(c *Combatant) int {
	if t == nil || flies(c) || t.MoveCost < 1 {
		return 1
	}
	return t.MoveCost
}

// RangedDefenseFor returns the cover fraction for the occupant. Air combatants get none;
// Earth combatants get the bonus multiplied by earthAmp. The result is capped at 0.9.
func (t *Terrain) RangedDefenseFor(c *Combatant, earthAmp float64) float64 {
	if t == nil || flies(c) || t.RangedDefense <= 0 {
		return 0
	}
	bonus := t.RangedDefense
	if c != nil && c.HasElement(ElementEarth) && earthAmp > 0 {
		bonus *= earthAmp
	}
	if bonus > 0.9 {
		bonus = 0.9
	}
	return bonus
}

// HazardFor returns the per-turn terrain damage for the occupant.
func (t *Terrain) HazardFor(c *Combatant) int {
	if t == nil || flies(c) {
		return 0
	}
	return t.Hazard
}

// DefeatsOnEntry reports whether entering the tile knocks the combatant out.
func (t *Terrain) DefeatsOnEntry(c *Combatant) bool {
	return t != nil && t.InstantDefeat && !flies(c)
}
