package systems

import (
	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/utils"
)

// StatProvider supplies the pure combat formulas. Roll functions draw exactly one
// Float64 from the stream per call so scripted streams stay aligned.
type StatProvider interface {
	CalculateAccuracy(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) float64
	RollToHit(accuracy float64, rng utils.Rand) bool
	CalculateCritChance(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) float64
	RollForCrit(chance float64, rng utils.Rand) bool
	CalculateCritBonus(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) float64
	CalculateDamage(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) int
	CalculateHealing(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) int
	CalculateEnergyGain(a *domain.ActionDescriptor, attacker *domain.Combatant) int
}

// StandardStats is the default formula set.
type StandardStats struct {
	CritMultiplier  float64
	EnergyGainScale float64
	MinAccuracy     float64
}

func NewStandardStats() *StandardStats {
	return &StandardStats{CritMultiplier: 1.5, EnergyGainScale: 1.0, MinAccuracy: 0.05}
}

func (s *StandardStats) CalculateAccuracy(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) float64 {
	acc := a.Accuracy
	if acc <= 0 {
		acc = 1.0
	}
	if attacker != nil && attacker.Stats != nil {
		acc += attacker.Stats.Accuracy
	}
	if defender != nil && defender.Stats != nil {
		acc -= defender.Stats.Evasion
	}
	return clamp(acc, s.MinAccuracy, 1.0)
}

func (s *StandardStats) RollToHit(accuracy float64, rng utils.Rand) bool {
	return rng.Float64() < accuracy
}

func (s *StandardStats) CalculateCritChance(a *domain.ActionDescriptor, attacker, _ *domain.Combatant) float64 {
	chance := a.CritModifier
	if attacker != nil && attacker.Stats != nil {
		chance += attacker.Stats.CritChance
	}
	return clamp(chance, 0, 1)
}

func (s *StandardStats) RollForCrit(chance float64, rng utils.Rand) bool {
	return rng.Float64() < chance
}

func (s *StandardStats) CalculateCritBonus(_ *domain.ActionDescriptor, _, _ *domain.Combatant) float64 {
	if s.CritMultiplier < 1 {
		return 1
	}
	return s.CritMultiplier
}

// CalculateDamage scales power by the attack/defense ratio, minimum 1.
func (s *StandardStats) CalculateDamage(a *domain.ActionDescriptor, attacker, defender *domain.Combatant) int {
	atk, def := 1, 1
	if attacker != nil && attacker.Stats != nil && attacker.Stats.Attack > 0 {
		atk = attacker.Stats.Attack
	}
	if defender != nil && defender.Stats != nil && defender.Stats.Defense > 0 {
		def = defender.Stats.Defense
	}
	dmg := roundHalfUp(float64(a.Power) * float64(atk) / float64(def))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// CalculateHealing is power plus half the healer's magic.
func (s *StandardStats) CalculateHealing(a *domain.ActionDescriptor, attacker, _ *domain.Combatant) int {
	heal := a.Power
	if attacker != nil && attacker.Stats != nil {
		heal += attacker.Stats.Magic / 2
	}
	if heal < 0 {
		heal = 0
	}
	return heal
}

func (s *StandardStats) CalculateEnergyGain(a *domain.ActionDescriptor, _ *domain.Combatant) int {
	return roundHalfUp(float64(a.Energy.Gain) * s.EnergyGainScale)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
