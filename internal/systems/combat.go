package systems

import (
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/utils"

	"github.com/sirupsen/logrus"
)

// HitType classifies one target's outcome.
type HitType uint8

const (
	HitNormal HitType = iota
	HitCritical
	HitGlance
	HitHeal
	HitCriticalHeal
	HitApplied
	HitPrevented
)

var hitTypeToString = map[HitType]string{
	HitNormal:       "HIT",
	HitCritical:     "CRITICAL",
	HitGlance:       "GLANCE",
	HitHeal:         "HEAL",
	HitCriticalHeal: "CRITICAL_HEAL",
	HitApplied:      "APPLIED",
	HitPrevented:    "PREVENTED",
}

func (h HitType) String() string {
	if val, ok := hitTypeToString[h]; ok {
		return val
	}
	return "UNKNOWN"
}

// MarshalText lets reports carry readable hit types.
func (h HitType) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Rules are the tunable numbers of resolution.
type Rules struct {
	// GlanceMultiplier scales damage when the to-hit roll fails.
	GlanceMultiplier float64
	// EarthCoverAmplifier multiplies cover for Earth combatants.
	EarthCoverAmplifier float64
}

func DefaultRules() Rules {
	return Rules{GlanceMultiplier: 0.5, EarthCoverAmplifier: 1.5}
}

// TargetOutcome is the resolved effect on one combatant.
type TargetOutcome struct {
	Target     *domain.Combatant      `json:"-"`
	TargetID   string                 `json:"targetId"`
	TargetName string                 `json:"targetName"`
	Pos        domain.UnifiedPosition `json:"pos"`
	HitType    HitType                `json:"hitType"`
	Amount     int                    `json:"amount"`
	Tier       Tier                   `json:"-"`
	TierName   string                 `json:"tier,omitempty"`
	Multiplier float64                `json:"multiplier"`
	Cover      float64                `json:"cover,omitempty"`
	HPAfter    int                    `json:"hpAfter"`
	Defeated   bool                   `json:"defeated"`
}

// Outcome is the fully resolved result of one action. Presentation reads it after the fact.
type Outcome struct {
	Actor        *domain.Combatant        `json:"-"`
	Action       *domain.ActionDescriptor `json:"-"`
	ActorID      string                   `json:"actorId"`
	ActionID     string                   `json:"actionId"`
	Targets      []TargetOutcome          `json:"targets"`
	Skipped      int                      `json:"skipped"`
	EnergySpent  int                      `json:"energySpent"`
	EnergyGained int                      `json:"energyGained"`
	Prevented    bool                     `json:"prevented"`
	Surfaces     int                      `json:"surfaces"`
}

// Defeated lists combatants newly defeated by the action.
func (o *Outcome) Defeated() []*domain.Combatant {
	var out []*domain.Combatant
	for _, t := range o.Targets {
		if t.Defeated {
			out = append(out, t.Target)
		}
	}
	return out
}

// Resolver executes an action against already-resolved target tiles.
type Resolver struct {
	Stats StatProvider
	Chart *ElementChart
	Rules Rules
	Rng   utils.Rand
}

func NewResolver(stats StatProvider, chart *ElementChart, rules Rules, rng utils.Rand) *Resolver {
	if stats == nil {
		stats = NewStandardStats()
	}
	if chart == nil {
		chart = DefaultElementChart()
	}
	return &Resolver{Stats: stats, Chart: chart, Rules: rules, Rng: rng}
}

// Resolve runs the action to completion. A nil action, nil actor or empty target list is a
// no-op: nothing is paid and nothing is gained. Tiles emptied since targeting are skipped.
func (r *Resolver) Resolve(action *domain.ActionDescriptor, actor *domain.Combatant, tiles []*domain.Tile) (Outcome, error) {
	if action == nil || actor == nil || actor.Stats == nil || len(tiles) == 0 {
		return Outcome{}, nil
	}
	out := Outcome{Actor: actor, Action: action, ActorID: actor.ID, ActionID: action.ID}

	before := &domain.ActionEvent{Actor: actor, Action: action, Targets: tiles}
	domain.NotifyBeforeAction(before, actor)
	if before.Prevent {
		out.Prevented = true
		return out, nil
	}

	if action.Energy.Category == domain.EnergyEmpowered && action.Energy.Cost > 0 {
		if !actor.Stats.SpendEnergy(action.Energy.Cost) {
			return Outcome{}, fmt.Errorf("%s uses %s (cost %d, has %d): %w",
				actor, action.ID, action.Energy.Cost, actor.Stats.Energy, domain.ErrInsufficientEnergy)
		}
		out.EnergySpent = action.Energy.Cost
	}

	for _, tile := range tiles {
		target := tile.Occupant()
		if target == nil || target.Stats == nil || target.IsDefeated() {
			out.Skipped++
			continue
		}
		var res TargetOutcome
		switch action.Role {
		case domain.RoleHealing:
			res = r.resolveHeal(action, actor, target)
		case domain.RoleSupport:
			res = TargetOutcome{HitType: HitApplied, Multiplier: 1}
		default:
			res = r.resolveDamage(action, actor, target, tile)
		}
		res.Target = target
		res.TargetID = target.ID
		res.TargetName = target.Name
		res.Pos = tile.Pos
		res.HPAfter = target.Stats.HP
		out.Targets = append(out.Targets, res)
	}

	if action.Surface != nil {
		for _, tile := range tiles {
			tile.ApplySurface(*action.Surface)
			out.Surfaces++
		}
	}

	if action.Energy.Category == domain.EnergyCore {
		out.EnergyGained = actor.Stats.GainEnergy(r.Stats.CalculateEnergyGain(action, actor))
	}

	domain.NotifyAfterAction(&domain.ActionEvent{Actor: actor, Action: action, Targets: tiles}, actor)
	return out, nil
}

func (r *Resolver) resolveDamage(a *domain.ActionDescriptor, attacker, defender *domain.Combatant, tile *domain.Tile) TargetOutcome {
	combatLogger := logger.Component("combat_system").WithFields(logrus.Fields{
		"attacker_id": attacker.ID,
		"target_id":   defender.ID,
		"action":      a.ID,
	})

	accuracy := r.Stats.CalculateAccuracy(a, attacker, defender)
	hit := r.Stats.RollToHit(accuracy, r.Rng)

	critMul := 1.0
	crit := false
	if hit {
		crit = r.Stats.RollForCrit(r.Stats.CalculateCritChance(a, attacker, defender), r.Rng)
		if crit {
			critMul = r.Stats.CalculateCritBonus(a, attacker, defender)
		}
	}

	base := r.Stats.CalculateDamage(a, attacker, defender)
	amount := float64(base) * critMul
	if !hit {
		amount *= r.Rules.GlanceMultiplier
	}
	tier, mul := r.Chart.Effectiveness(a.Element, attacker, defender)

	ev := &domain.DamageEvent{
		Source:     attacker,
		Target:     defender,
		Action:     a,
		Amount:     roundHalfUp(amount),
		Multiplier: mul,
		Crit:       crit,
		Glance:     !hit,
	}
	domain.NotifyBeforeDamage(ev, attacker, defender)

	res := TargetOutcome{Tier: tier, TierName: tier.String(), Multiplier: ev.Multiplier}
	switch {
	case !hit:
		res.HitType = HitGlance
	case crit:
		res.HitType = HitCritical
	default:
		res.HitType = HitNormal
	}
	if ev.Prevent {
		res.HitType = HitPrevented
		combatLogger.Info("Damage prevented.")
		return res
	}

	final := atLeastOne(roundHalfUp(float64(ev.Amount) * ev.Multiplier))
	if a.IsRangedOffense() {
		res.Cover = tile.RangedDefenseBonus(defender, r.Rules.EarthCoverAmplifier)
		if res.Cover > 0 {
			final = atLeastOne(roundHalfUp(float64(final) * (1 - res.Cover)))
		}
	}

	hpBefore := defender.Stats.HP
	died := defender.Stats.TakeDamage(final)
	res.Amount = final
	res.Defeated = died

	ev.Dealt = final
	domain.NotifyAfterDamage(ev, attacker, defender)
	if died {
		domain.NotifyDefeat(&domain.DefeatEvent{Source: attacker, Target: defender, Cause: a.ID}, defender, attacker)
	}

	combatLogger.WithFields(logrus.Fields{
		"accuracy":     accuracy,
		"base_damage":  base,
		"crit":         crit,
		"glance":       !hit,
		"tier":         tier,
		"multiplier":   ev.Multiplier,
		"cover":        res.Cover,
		"final_damage": final,
		"hp_before":    hpBefore,
		"hp_after":     defender.Stats.HP,
		"target_died":  died,
	}).Info("Attack resolved.")
	return res
}

func (r *Resolver) resolveHeal(a *domain.ActionDescriptor, healer, target *domain.Combatant) TargetOutcome {
	crit := r.Stats.RollForCrit(r.Stats.CalculateCritChance(a, healer, target), r.Rng)
	mul := 1.0
	if crit {
		mul = r.Stats.CalculateCritBonus(a, healer, target)
	}

	ev := &domain.HealEvent{
		Source:     healer,
		Target:     target,
		Action:     a,
		Amount:     r.Stats.CalculateHealing(a, healer, target),
		Multiplier: mul,
		Crit:       crit,
	}
	domain.NotifyBeforeHeal(ev, healer, target)

	res := TargetOutcome{HitType: HitHeal, Multiplier: ev.Multiplier}
	if crit {
		res.HitType = HitCriticalHeal
	}
	if ev.Prevent {
		res.HitType = HitPrevented
		return res
	}

	healed := target.Stats.Heal(roundHalfUp(float64(ev.Amount) * ev.Multiplier))
	res.Amount = healed
	ev.Healed = healed
	domain.NotifyAfterHeal(ev, healer, target)

	logger.Component("combat_system").WithFields(logrus.Fields{
		"healer_id": healer.ID,
		"target_id": target.ID,
		"action":    a.ID,
		"crit":      crit,
		"healed":    healed,
		"hp_after":  target.Stats.HP,
	}).Info("Heal resolved.")
	return res
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
