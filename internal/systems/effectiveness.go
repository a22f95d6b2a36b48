package systems

import (
	"fmt"
	"math"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
)

// Tier is a named elemental effectiveness band.
type Tier uint8

const (
	TierNeutral Tier = iota
	TierOverwhelming
	TierSuperEffective
	TierEffective
	TierResisted
	TierNotVeryEffective
	TierIneffective
	TierFutile
)

var tierToString = map[Tier]string{
	TierNeutral:          "NEUTRAL",
	TierOverwhelming:     "OVERWHELMING",
	TierSuperEffective:   "SUPER_EFFECTIVE",
	TierEffective:        "EFFECTIVE",
	TierResisted:         "RESISTED",
	TierNotVeryEffective: "NOT_VERY_EFFECTIVE",
	TierIneffective:      "INEFFECTIVE",
	TierFutile:           "FUTILE",
}

var tierStringToTier = map[string]Tier{
	"NEUTRAL":            TierNeutral,
	"OVERWHELMING":       TierOverwhelming,
	"SUPER_EFFECTIVE":    TierSuperEffective,
	"EFFECTIVE":          TierEffective,
	"RESISTED":           TierResisted,
	"NOT_VERY_EFFECTIVE": TierNotVeryEffective,
	"INEFFECTIVE":        TierIneffective,
	"FUTILE":             TierFutile,
}

func (t Tier) String() string {
	if val, ok := tierToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseTier(s string) (Tier, bool) {
	val, ok := tierStringToTier[s]
	return val, ok
}

// DefaultTierMultipliers returns the built-in multiplier for every tier.
func DefaultTierMultipliers() map[Tier]float64 {
	return map[Tier]float64{
		TierOverwhelming:     2.0,
		TierSuperEffective:   1.5,
		TierEffective:        1.25,
		TierNeutral:          1.0,
		TierResisted:         0.8,
		TierNotVeryEffective: 0.67,
		TierIneffective:      0.5,
		TierFutile:           0.4,
	}
}

// SelectTier maps a chart score and the single/dual element flags to a tier.
// Scores of ±2 only arise against dual-element defenders.
func SelectTier(score int, dualAttacker, dualDefender bool) Tier {
	switch {
	case score >= 2:
		if dualAttacker {
			return TierSuperEffective
		}
		return TierOverwhelming
	case score == 1:
		if !dualAttacker && !dualDefender {
			return TierSuperEffective
		}
		return TierEffective
	case score == 0:
		return TierNeutral
	case score == -1:
		if !dualAttacker && !dualDefender {
			return TierNotVeryEffective
		}
		return TierResisted
	default:
		if dualAttacker {
			return TierIneffective
		}
		return TierFutile
	}
}

// ElementChart is the attack-vs-defend interaction table, each cell in {-1, 0, +1}.
// Charts are values built at load time; nothing mutates one during a battle.
type ElementChart struct {
	scores      [][]int
	multipliers map[Tier]float64
}

// NewElementChart returns an all-neutral chart with default multipliers.
func NewElementChart() *ElementChart {
	n := domain.ElementCount()
	scores := make([][]int, n)
	for i := range scores {
		scores[i] = make([]int, n)
	}
	return &ElementChart{scores: scores, multipliers: DefaultTierMultipliers()}
}

// DefaultElementChart returns the built-in interactions.
func DefaultElementChart() *ElementChart {
	c := NewElementChart()
	strong := [][2]domain.Element{
		{domain.ElementFire, domain.ElementPlant},
		{domain.ElementFire, domain.ElementMetal},
		{domain.ElementWater, domain.ElementFire},
		{domain.ElementWater, domain.ElementEarth},
		{domain.ElementEarth, domain.ElementElectric},
		{domain.ElementEarth, domain.ElementFire},
		{domain.ElementPlant, domain.ElementWater},
		{domain.ElementPlant, domain.ElementEarth},
		{domain.ElementElectric, domain.ElementWater},
		{domain.ElementElectric, domain.ElementAir},
		{domain.ElementAir, domain.ElementPlant},
		{domain.ElementMetal, domain.ElementAir},
	}
	weak := [][2]domain.Element{
		{domain.ElementFire, domain.ElementWater},
		{domain.ElementFire, domain.ElementFire},
		{domain.ElementWater, domain.ElementPlant},
		{domain.ElementWater, domain.ElementWater},
		{domain.ElementPlant, domain.ElementFire},
		{domain.ElementPlant, domain.ElementMetal},
		{domain.ElementElectric, domain.ElementEarth},
		{domain.ElementEarth, domain.ElementAir},
		{domain.ElementAir, domain.ElementMetal},
		{domain.ElementAir, domain.ElementElectric},
		{domain.ElementMetal, domain.ElementFire},
	}
	for _, p := range strong {
		_ = c.Set(p[0], p[1], 1)
	}
	for _, p := range weak {
		_ = c.Set(p[0], p[1], -1)
	}
	return c
}

// Set records one interaction.
func (c *ElementChart) Set(attack, defend domain.Element, score int) error {
	if int(attack) >= len(c.scores) || int(defend) >= len(c.scores) {
		return fmt.Errorf("%w: %d vs %d", domain.ErrUnknownElement, attack, defend)
	}
	if score < -1 || score > 1 {
		return fmt.Errorf("interaction %s vs %s: score %d outside [-1, 1]", attack, defend, score)
	}
	c.scores[attack][defend] = score
	return nil
}

// SetMultiplier overrides one tier's multiplier.
func (c *ElementChart) SetMultiplier(t Tier, m float64) {
	c.multipliers[t] = m
}

// Multiplier returns the damage factor of a tier.
func (c *ElementChart) Multiplier(t Tier) float64 {
	if m, ok := c.multipliers[t]; ok {
		return m
	}
	return 1.0
}

// Interaction returns the single-pair score.
func (c *ElementChart) Interaction(attack, defend domain.Element) int {
	if int(attack) >= len(c.scores) || int(defend) >= len(c.scores) {
		return 0
	}
	return c.scores[attack][defend]
}

// Score sums the interactions against up to two distinct defender elements.
func (c *ElementChart) Score(attack domain.Element, defenders []domain.Element) int {
	score := 0
	for i, d := range defenders {
		if i >= 2 || (i == 1 && d == defenders[0]) {
			break
		}
		score += c.Interaction(attack, d)
	}
	return score
}

// Effectiveness resolves the tier and multiplier of an action element against a defender.
func (c *ElementChart) Effectiveness(attack domain.Element, attacker, defender *domain.Combatant) (Tier, float64) {
	score := c.Score(attack, defender.Elements)
	tier := SelectTier(score, attacker.IsDualElement(), defender.IsDualElement())
	return tier, c.Multiplier(tier)
}

// roundHalfUp rounds a non-negative damage value.
func roundHalfUp(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Floor(v + 0.5))
}
