package engine

import (
	"time"

	"github.com/misterlister/Creature-Summoner-sub000/internal/systems"
)

// Rules are the tunable numbers of a battle. Scenario files may override any of them.
type Rules struct {
	GlanceMultiplier    float64 `yaml:"glance_multiplier" json:"glanceMultiplier"`
	EarthCoverAmplifier float64 `yaml:"earth_cover_amplifier" json:"earthCoverAmplifier"`
	CritMultiplier      float64 `yaml:"crit_multiplier" json:"critMultiplier"`
	EnergyGainScale     float64 `yaml:"energy_gain_scale" json:"energyGainScale"`
	// HazardOnTurnStart deals terrain and surface hazards when a combatant's turn begins.
	HazardOnTurnStart bool `yaml:"hazard_on_turn_start" json:"hazardOnTurnStart"`
}

func DefaultRules() Rules {
	res := systems.DefaultRules()
	stats := systems.NewStandardStats()
	return Rules{
		GlanceMultiplier:    res.GlanceMultiplier,
		EarthCoverAmplifier: res.EarthCoverAmplifier,
		CritMultiplier:      stats.CritMultiplier,
		EnergyGainScale:     stats.EnergyGainScale,
		HazardOnTurnStart:   true,
	}
}

// Resolution returns the resolver's share of the rules.
func (r Rules) Resolution() systems.Rules {
	return systems.Rules{
		GlanceMultiplier:    r.GlanceMultiplier,
		EarthCoverAmplifier: r.EarthCoverAmplifier,
	}
}

// Stats returns the standard formula set tuned by the rules.
func (r Rules) Stats() *systems.StandardStats {
	s := systems.NewStandardStats()
	s.CritMultiplier = r.CritMultiplier
	s.EnergyGainScale = r.EnergyGainScale
	return s
}

// DefaultMaxRounds caps battles whose config leaves MaxRounds unset.
const DefaultMaxRounds = 50

// Config holds the launch parameters of one battle.
type Config struct {
	// Seed drives every roll of the battle. The same seed, scenario and decisions
	// reproduce the same battle.
	Seed int64
	// MaxRounds ends the battle in a draw; zero or less means DefaultMaxRounds.
	MaxRounds int
	Rules     Rules
}

// NewConfig returns the default config with a time-based seed.
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		MaxRounds: DefaultMaxRounds,
		Rules:     DefaultRules(),
	}
}

// RoundCap is the round after which the battle is a draw. Every battle has one.
func (c Config) RoundCap() int {
	if c.MaxRounds <= 0 {
		return DefaultMaxRounds
	}
	return c.MaxRounds
}
