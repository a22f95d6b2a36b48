package content

import (
	"errors"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine"
)

var (
	ErrUnknownTier     = errors.New("unknown effectiveness tier")
	ErrUnknownAction   = errors.New("unknown action")
	ErrDuplicateAction = errors.New("duplicate action id")
	ErrInvalidAction   = errors.New("invalid action definition")
	ErrUnknownSide     = errors.New("unknown side")
	ErrEmptyScenario   = errors.New("scenario has no combatants")
)

type ElementsConfig struct {
	Tiers        map[string]float64 `yaml:"tiers"`
	Interactions []InteractionDef   `yaml:"interactions"`
}

// InteractionDef lists what one attacking element is strong and weak against.
type InteractionDef struct {
	Attack string   `yaml:"attack"`
	Strong []string `yaml:"strong"`
	Weak   []string `yaml:"weak"`
}

type TerrainConfig struct {
	Terrain []TerrainDef `yaml:"terrain"`
}

type TerrainDef struct {
	Kind          string  `yaml:"kind"`
	MoveCost      int     `yaml:"move_cost"`
	RangedDefense float64 `yaml:"ranged_defense"`
	Hazard        int     `yaml:"hazard"`
	InstantDefeat bool    `yaml:"instant_defeat"`
	Impassable    bool    `yaml:"impassable"`
}

type ActionsConfig struct {
	Actions []ActionDef `yaml:"actions"`
}

type ActionDef struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Element      string      `yaml:"element"`
	Reach        string      `yaml:"reach"`
	Target       string      `yaml:"target"`
	Shape        ShapeDef    `yaml:"shape"`
	Role         string      `yaml:"role"`
	Energy       EnergyDef   `yaml:"energy"`
	Power        int         `yaml:"power"`
	Accuracy     float64     `yaml:"accuracy"`
	CritModifier float64     `yaml:"crit_modifier"`
	Surface      *SurfaceDef `yaml:"surface"`
	Note         string      `yaml:"note"`
}

type ShapeDef struct {
	Kind  string `yaml:"kind"`
	Width int    `yaml:"width"`
	Depth int    `yaml:"depth"`
}

type EnergyDef struct {
	Category string `yaml:"category"`
	Cost     int    `yaml:"cost"`
	Gain     int    `yaml:"gain"`
}

type SurfaceDef struct {
	Kind    string `yaml:"kind"`
	Element string `yaml:"element"`
	Ticks   int    `yaml:"ticks"`
	Hazard  int    `yaml:"hazard"`
}

type ScenarioConfig struct {
	Name       string         `yaml:"name"`
	Seed       int64          `yaml:"seed"`
	MaxRounds  int            `yaml:"max_rounds"`
	Rules      engine.Rules   `yaml:"rules"`
	Terrain    []PlacementDef `yaml:"terrain"`
	Combatants []CombatantDef `yaml:"combatants"`
}

// PlacementDef puts a terrain kind on one tile in global coordinates.
type PlacementDef struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Kind string `yaml:"kind"`
}

type CombatantDef struct {
	ID       string                `yaml:"id"`
	Name     string                `yaml:"name"`
	Side     string                `yaml:"side"`
	Elements []string              `yaml:"elements"`
	Row      int                   `yaml:"row"`
	Col      int                   `yaml:"col"`
	Stats    domain.StatsComponent `yaml:"stats"`
	Actions  []string              `yaml:"actions"`
}

// NewScenarioConfig returns a scenario carrying the default rules, ready to be decoded over.
func NewScenarioConfig() *ScenarioConfig {
	return &ScenarioConfig{
		MaxRounds: engine.DefaultMaxRounds,
		Rules:     engine.DefaultRules(),
	}
}
