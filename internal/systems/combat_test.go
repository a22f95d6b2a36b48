package systems

import (
	"errors"
	"testing"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
)

func strike() *domain.ActionDescriptor {
	return &domain.ActionDescriptor{
		ID:       "strike",
		Name:     "Strike",
		Element:  domain.ElementNeutral,
		Reach:    domain.ReachMelee,
		Relation: domain.TargetEnemy,
		Shape:    domain.Shape{Kind: domain.ShapeSingle},
		Role:     domain.RoleOffensive,
		Power:    10,
		Accuracy: 0.9,
	}
}

type duel struct {
	field    *domain.Battlefield
	attacker *domain.Combatant
	defender *domain.Combatant
	tile     *domain.Tile
}

func newDuel(t *testing.T) duel {
	t.Helper()
	bf := domain.NewBattlefield()
	a := mustCombatant("hero", domain.SidePlayer)
	d := mustCombatant("orc", domain.SideEnemy)
	mustPlace(t, bf, a, domain.Pos(1, 2))
	mustPlace(t, bf, d, domain.Pos(1, 3))
	return duel{field: bf, attacker: a, defender: d, tile: bf.Tile(domain.Pos(1, 3))}
}

func TestForcedHitEqualsCalculateDamage(t *testing.T) {
	d := newDuel(t)
	stats := NewStandardStats()
	action := strike()
	want := stats.CalculateDamage(action, d.attacker, d.defender)

	// 0.0 hits, 0.99 misses the crit.
	r := NewResolver(stats, DefaultElementChart(), DefaultRules(), &scriptedRand{floats: []float64{0.0, 0.99}})
	out, err := r.Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(out.Targets) != 1 {
		t.Fatalf("Expected 1 target outcome, got %d", len(out.Targets))
	}
	res := out.Targets[0]
	if res.HitType != HitNormal {
		t.Errorf("Expected NORMAL hit, got %s", res.HitType)
	}
	if res.Tier != TierNeutral {
		t.Errorf("Expected NEUTRAL tier, got %s", res.Tier)
	}
	if res.Amount != want {
		t.Errorf("Expected damage %d, got %d", want, res.Amount)
	}
	if d.defender.Stats.HP != 100-want {
		t.Errorf("Expected HP %d, got %d", 100-want, d.defender.Stats.HP)
	}
}

func TestGlanceOnMissedRoll(t *testing.T) {
	d := newDuel(t)
	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.95}})

	out, _ := r.Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	res := out.Targets[0]
	if res.HitType != HitGlance {
		t.Errorf("Expected GLANCE, got %s", res.HitType)
	}
	if res.Amount != 5 {
		t.Errorf("Expected halved damage 5, got %d", res.Amount)
	}
}

func TestGlanceNeverDropsBelowOne(t *testing.T) {
	d := newDuel(t)
	action := strike()
	action.Power = 1
	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.95}})

	out, _ := r.Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if out.Targets[0].Amount != 1 {
		t.Errorf("Expected damage floored at 1, got %d", out.Targets[0].Amount)
	}
}

func TestCriticalHit(t *testing.T) {
	d := newDuel(t)
	action := strike()
	action.CritModifier = 0.5
	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.0, 0.1}})

	out, _ := r.Resolve(action, d.attacker, []*domain.Tile{d.tile})
	res := out.Targets[0]
	if res.HitType != HitCritical {
		t.Errorf("Expected CRITICAL, got %s", res.HitType)
	}
	if res.Amount != 15 {
		t.Errorf("Expected 15 damage, got %d", res.Amount)
	}
}

func TestBeforeDamageHooksRewriteAndPrevent(t *testing.T) {
	d := newDuel(t)
	d.defender.Hooks.BeforeDamage = append(d.defender.Hooks.BeforeDamage, func(ev *domain.DamageEvent) {
		ev.Multiplier = 2
	})
	var dealt int
	d.attacker.Hooks.AfterDamage = append(d.attacker.Hooks.AfterDamage, func(ev *domain.DamageEvent) {
		dealt = ev.Dealt
	})

	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.0, 0.99}})
	out, _ := r.Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	if out.Targets[0].Amount != 20 {
		t.Errorf("Expected rewritten multiplier to double damage, got %d", out.Targets[0].Amount)
	}
	if dealt != 20 {
		t.Errorf("Expected AfterDamage to see 20, got %d", dealt)
	}

	d.defender.Hooks.BeforeDamage = append(d.defender.Hooks.BeforeDamage, func(ev *domain.DamageEvent) {
		ev.Prevent = true
	})
	hp := d.defender.Stats.HP
	out, _ = r.Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	if out.Targets[0].HitType != HitPrevented {
		t.Errorf("Expected PREVENTED, got %s", out.Targets[0].HitType)
	}
	if d.defender.Stats.HP != hp {
		t.Errorf("Expected HP unchanged at %d, got %d", hp, d.defender.Stats.HP)
	}
}

func TestBeforeActionPrevent(t *testing.T) {
	d := newDuel(t)
	d.attacker.Hooks.BeforeAction = append(d.attacker.Hooks.BeforeAction, func(ev *domain.ActionEvent) {
		ev.Prevent = true
	})
	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{})
	out, err := r.Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !out.Prevented || len(out.Targets) != 0 {
		t.Errorf("Expected prevented action with no targets, got %+v", out)
	}
}

func TestRangedCover(t *testing.T) {
	d := newDuel(t)
	forest := domain.DefaultTerrain(domain.TerrainForest)
	if err := d.field.SetTerrain(d.tile.Pos, &forest); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	action := strike()
	action.Reach = domain.ReachShort

	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.0, 0.99}})
	out, _ := r.Resolve(action, d.attacker, []*domain.Tile{d.tile})
	res := out.Targets[0]
	if res.Cover != 0.25 {
		t.Errorf("Expected cover 0.25, got %v", res.Cover)
	}
	if res.Amount != 8 {
		t.Errorf("Expected 8 damage through cover, got %d", res.Amount)
	}

	// Melee ignores cover.
	r.Rng = &scriptedRand{floats: []float64{0.0, 0.99}}
	out, _ = r.Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	if out.Targets[0].Amount != 10 || out.Targets[0].Cover != 0 {
		t.Errorf("Expected melee to ignore cover, got %+v", out.Targets[0])
	}
}

func TestEmptyTileSkippedAndNoTargetsIsNoop(t *testing.T) {
	d := newDuel(t)
	action := strike()
	action.Energy = domain.Energy{Category: domain.EnergyEmpowered, Cost: 3}

	out, err := r0().Resolve(action, d.attacker, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.EnergySpent != 0 || d.attacker.Stats.Energy != 5 {
		t.Errorf("Expected no energy change on empty target list, got energy %d", d.attacker.Stats.Energy)
	}

	empty := d.field.Tile(domain.Pos(0, 3))
	out, _ = r0().Resolve(action, d.attacker, []*domain.Tile{empty, d.tile})
	if out.Skipped != 1 {
		t.Errorf("Expected 1 skipped tile, got %d", out.Skipped)
	}
	if len(out.Targets) != 1 {
		t.Errorf("Expected 1 resolved target, got %d", len(out.Targets))
	}
}

func r0() *Resolver {
	return NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.0, 0.99}})
}

func TestEmpoweredCost(t *testing.T) {
	d := newDuel(t)
	action := strike()
	action.Energy = domain.Energy{Category: domain.EnergyEmpowered, Cost: 3}

	out, err := r0().Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.EnergySpent != 3 || d.attacker.Stats.Energy != 2 {
		t.Errorf("Expected 3 energy spent leaving 2, got spent=%d energy=%d", out.EnergySpent, d.attacker.Stats.Energy)
	}

	hp := d.defender.Stats.HP
	_, err = r0().Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if !errors.Is(err, domain.ErrInsufficientEnergy) {
		t.Errorf("Expected ErrInsufficientEnergy, got %v", err)
	}
	if d.defender.Stats.HP != hp || d.attacker.Stats.Energy != 2 {
		t.Error("Expected unaffordable action to change nothing")
	}
}

func TestCoreGain(t *testing.T) {
	d := newDuel(t)
	action := strike()
	action.Energy = domain.Energy{Category: domain.EnergyCore, Gain: 2}

	out, _ := r0().Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if out.EnergyGained != 2 || d.attacker.Stats.Energy != 7 {
		t.Errorf("Expected 2 energy gained leaving 7, got gained=%d energy=%d", out.EnergyGained, d.attacker.Stats.Energy)
	}

	d.attacker.Stats.Energy = 9
	out, _ = r0().Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if out.EnergyGained != 1 || d.attacker.Stats.Energy != 10 {
		t.Errorf("Expected gain clamped at max energy, got gained=%d energy=%d", out.EnergyGained, d.attacker.Stats.Energy)
	}
}

func TestHealing(t *testing.T) {
	d := newDuel(t)
	ally := mustCombatant("cleric", domain.SidePlayer)
	mustPlace(t, d.field, ally, domain.Pos(0, 2))
	ally.Stats.HP = 50

	mend := &domain.ActionDescriptor{
		ID: "mend", Reach: domain.ReachMelee, Relation: domain.TargetAlly,
		Role: domain.RoleHealing, Power: 10,
	}
	var healed int
	ally.Hooks.AfterHeal = append(ally.Hooks.AfterHeal, func(ev *domain.HealEvent) { healed = ev.Healed })

	r := NewResolver(nil, nil, DefaultRules(), &scriptedRand{floats: []float64{0.99}})
	out, _ := r.Resolve(mend, d.attacker, []*domain.Tile{d.field.Tile(domain.Pos(0, 2))})
	res := out.Targets[0]
	if res.HitType != HitHeal {
		t.Errorf("Expected HEAL, got %s", res.HitType)
	}
	if res.Amount != 15 || ally.Stats.HP != 65 {
		t.Errorf("Expected 15 healed to 65, got %d to %d", res.Amount, ally.Stats.HP)
	}
	if healed != 15 {
		t.Errorf("Expected AfterHeal to see 15, got %d", healed)
	}
}

func TestSupportAndSurface(t *testing.T) {
	d := newDuel(t)
	action := &domain.ActionDescriptor{
		ID: "ignite", Reach: domain.ReachShort, Relation: domain.TargetAny, Role: domain.RoleSupport,
		Surface: &domain.SurfaceSpec{Kind: "fire", Element: domain.ElementFire, Ticks: 2, Hazard: 3},
	}
	out, _ := r0().Resolve(action, d.attacker, []*domain.Tile{d.tile})
	if out.Targets[0].HitType != HitApplied {
		t.Errorf("Expected APPLIED, got %s", out.Targets[0].HitType)
	}
	if out.Surfaces != 1 || d.tile.Surface == nil || d.tile.Surface.Kind != "fire" {
		t.Errorf("Expected fire surface on target tile, got %+v", d.tile.Surface)
	}
}

func TestDefeatNotification(t *testing.T) {
	d := newDuel(t)
	d.defender.Stats.HP = 5
	var cause string
	d.defender.Hooks.OnDefeat = append(d.defender.Hooks.OnDefeat, func(ev *domain.DefeatEvent) { cause = ev.Cause })

	out, _ := r0().Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	if !out.Targets[0].Defeated || !d.defender.IsDefeated() {
		t.Error("Expected defender to be defeated")
	}
	if cause != "strike" {
		t.Errorf("Expected defeat cause strike, got %q", cause)
	}
	if got := out.Defeated(); len(got) != 1 || got[0] != d.defender {
		t.Errorf("Expected defender in defeated list, got %v", got)
	}

	// Already defeated targets are skipped.
	out, _ = r0().Resolve(strike(), d.attacker, []*domain.Tile{d.tile})
	if out.Skipped != 1 {
		t.Errorf("Expected defeated target to be skipped, got %d", out.Skipped)
	}
}
