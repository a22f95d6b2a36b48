package systems

import (
	"errors"
	"testing"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/utils"
)

func TestSameSideShortExcludesFarCorner(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)

	from := domain.Pos(0, 0)
	set, err := te.LegalTargets(from, domain.ReachShort, domain.TargetAny)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if set.Contains(domain.Pos(2, 2)) {
		t.Error("Expected (2,2) corner to be excluded from same-side Short")
	}
	// Short is Chebyshev <= 2 minus the exact (2,2) corner. The near diagonals (1,2) and
	// (2,1) are Manhattan 3 and stay reachable; under a Manhattan <= 2 rule the corner
	// exclusion would exclude nothing. Do not switch this to Manhattan.
	for _, p := range []domain.UnifiedPosition{
		domain.Pos(0, 0), domain.Pos(0, 2), domain.Pos(2, 0),
		domain.Pos(1, 2), domain.Pos(2, 1), domain.Pos(1, 1),
	} {
		if !set.Contains(p) {
			t.Errorf("Expected %v to be reachable with Short", p)
		}
	}
}

func TestSameSideReachClasses(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)
	from := domain.Pos(1, 1)

	countOwn := func(set *domain.TargetSet) int {
		n := 0
		for _, p := range set.Positions() {
			if p.Side() == domain.SidePlayer {
				n++
			}
		}
		return n
	}

	self, _ := te.Reachable(from, domain.ReachSelf)
	if self.Len() != 1 || !self.Contains(from) {
		t.Errorf("Expected Self reach to be only the origin, got %v", self.Positions())
	}

	melee, _ := te.Reachable(from, domain.ReachMelee)
	if got := countOwn(melee); got != 9 {
		t.Errorf("Expected centre Melee to cover all 9 own tiles, got %d", got)
	}

	long, _ := te.Reachable(domain.Pos(0, 0), domain.ReachLong)
	if got := countOwn(long); got != 9 {
		t.Errorf("Expected Long to cover all 9 own tiles, got %d", got)
	}
}

func TestMeleeAcrossSeam(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)

	attacker := mustCombatant("hero", domain.SidePlayer)
	front := mustCombatant("front", domain.SideEnemy)
	behind := mustCombatant("behind", domain.SideEnemy)
	diag := mustCombatant("diag", domain.SideEnemy)
	mustPlace(t, bf, attacker, domain.Pos(1, 2))
	mustPlace(t, bf, front, domain.Pos(1, 3))
	mustPlace(t, bf, behind, domain.Pos(1, 4))
	mustPlace(t, bf, diag, domain.Pos(0, 3))

	set, err := te.LegalTargets(domain.Pos(1, 2), domain.ReachMelee, domain.TargetEnemy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !set.Contains(domain.Pos(1, 3)) {
		t.Error("Expected front defender across the seam to be targetable")
	}
	if !set.Contains(domain.Pos(0, 3)) {
		t.Error("Expected front defender in the adjacent row to be targetable")
	}
	if set.Contains(domain.Pos(1, 4)) {
		t.Error("Expected defender behind the front line to be out of melee reach")
	}
}

func TestMeleeBlockedByOccupiedTile(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)

	attacker := mustCombatant("hero", domain.SidePlayer)
	defender := mustCombatant("orc", domain.SideEnemy)
	mustPlace(t, bf, attacker, domain.Pos(1, 1))
	mustPlace(t, bf, defender, domain.Pos(1, 3))

	ok, err := te.IsLegal(domain.Pos(1, 1), domain.ReachMelee, domain.TargetEnemy, domain.Pos(1, 3))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Expected defender to be targetable with no blockers")
	}

	mustPlace(t, bf, mustCombatant("ally", domain.SidePlayer), domain.Pos(1, 2))

	ok, _ = te.IsLegal(domain.Pos(1, 1), domain.ReachMelee, domain.TargetEnemy, domain.Pos(1, 3))
	if ok {
		t.Error("Expected defender to be excluded once a blocker stands between")
	}
	if got := te.BlockersBetween(domain.Pos(1, 1), domain.Pos(1, 3)); got != 1 {
		t.Errorf("Expected 1 blocker, got %d", got)
	}
}

func TestMeleeLaneCap(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)
	mustPlace(t, bf, mustCombatant("mid", domain.SideEnemy), domain.Pos(1, 4))

	// Front-line attacker only reaches the opposing front lane.
	ok, _ := te.IsLegal(domain.Pos(1, 2), domain.ReachMelee, domain.TargetEnemy, domain.Pos(1, 4))
	if ok {
		t.Error("Expected front attacker to be capped at the opposing front lane")
	}

	ok, _ = te.IsLegal(domain.Pos(1, 1), domain.ReachMelee, domain.TargetEnemy, domain.Pos(1, 4))
	if !ok {
		t.Error("Expected mid attacker to reach the opposing mid lane")
	}
}

func TestMeleeNeverCrossesBlockers(t *testing.T) {
	rng := utils.NewRand(42)
	for round := 0; round < 200; round++ {
		bf := domain.NewBattlefield()
		te := NewTargetingEngine(bf)
		for _, tile := range bf.Tiles() {
			if rng.Intn(2) == 0 {
				continue
			}
			side := tile.Pos.Side()
			_ = bf.Place(mustCombatant(tile.Pos.String(), side), tile.Pos)
		}
		from := domain.Pos(rng.Intn(domain.Rows), rng.Intn(domain.SideCols))
		set, err := te.Reachable(from, domain.ReachMelee)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for _, p := range set.Positions() {
			if p.Side() == from.Side() {
				continue
			}
			if n := te.BlockersBetween(from, p); n != 0 {
				t.Fatalf("Melee from %v reached %v through %d blockers", from, p, n)
			}
		}
	}
}

func TestRangedBlockerLimits(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)
	mustPlace(t, bf, mustCombatant("archer", domain.SidePlayer), domain.Pos(1, 0))
	mustPlace(t, bf, mustCombatant("a", domain.SidePlayer), domain.Pos(1, 1))
	mustPlace(t, bf, mustCombatant("b", domain.SidePlayer), domain.Pos(1, 2))
	mustPlace(t, bf, mustCombatant("target", domain.SideEnemy), domain.Pos(1, 4))

	ok, _ := te.IsLegal(domain.Pos(1, 0), domain.ReachShort, domain.TargetEnemy, domain.Pos(1, 4))
	if !ok {
		t.Error("Expected Short to tolerate two blockers")
	}

	mustPlace(t, bf, mustCombatant("c", domain.SideEnemy), domain.Pos(1, 3))
	ok, _ = te.IsLegal(domain.Pos(1, 0), domain.ReachShort, domain.TargetEnemy, domain.Pos(1, 4))
	if ok {
		t.Error("Expected Short to reject three blockers")
	}
	ok, _ = te.IsLegal(domain.Pos(1, 0), domain.ReachLong, domain.TargetEnemy, domain.Pos(1, 4))
	if !ok {
		t.Error("Expected Long to tolerate three blockers")
	}

	mustPlace(t, bf, mustCombatant("far", domain.SideEnemy), domain.Pos(1, 5))
	ok, _ = te.IsLegal(domain.Pos(1, 0), domain.ReachShort, domain.TargetEnemy, domain.Pos(1, 5))
	if ok {
		t.Error("Expected Short to stop at four columns")
	}
	ok, _ = te.IsLegal(domain.Pos(1, 0), domain.ReachLong, domain.TargetEnemy, domain.Pos(1, 5))
	if !ok {
		t.Error("Expected Long to tolerate four blockers")
	}
}

func TestCrossSideRowConstraint(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)
	mustPlace(t, bf, mustCombatant("far", domain.SideEnemy), domain.Pos(2, 3))

	ok, _ := te.IsLegal(domain.Pos(0, 2), domain.ReachLong, domain.TargetEnemy, domain.Pos(2, 3))
	if ok {
		t.Error("Expected rows two apart to be untargetable across sides")
	}
}

func TestRelationFilter(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)
	hero := mustCombatant("hero", domain.SidePlayer)
	ally := mustCombatant("ally", domain.SidePlayer)
	mustPlace(t, bf, hero, domain.Pos(1, 1))
	mustPlace(t, bf, ally, domain.Pos(0, 1))

	from := domain.Pos(1, 1)
	allies, _ := te.LegalTargets(from, domain.ReachMelee, domain.TargetAlly)
	if allies.Len() != 1 || !allies.Contains(domain.Pos(0, 1)) {
		t.Errorf("Expected only the ally, got %v", allies.Positions())
	}

	withSelf, _ := te.LegalTargets(from, domain.ReachMelee, domain.TargetAllyIncludingSelf)
	if withSelf.Len() != 2 {
		t.Errorf("Expected ally and self, got %v", withSelf.Positions())
	}

	self, _ := te.LegalTargets(from, domain.ReachMelee, domain.TargetSelf)
	if self.Len() != 1 || !self.Contains(from) {
		t.Errorf("Expected only self, got %v", self.Positions())
	}

	empty, _ := te.LegalTargets(from, domain.ReachMelee, domain.TargetEmptySpace)
	if empty.Contains(domain.Pos(0, 1)) || empty.Contains(from) {
		t.Error("Expected occupied tiles to be excluded from EmptySpace")
	}
	if empty.Len() != 7 {
		t.Errorf("Expected 7 empty own tiles, got %d", empty.Len())
	}

	ally.Stats.Defeat()
	allies, _ = te.LegalTargets(from, domain.ReachMelee, domain.TargetAlly)
	if allies.Len() != 0 {
		t.Error("Expected defeated ally to be excluded")
	}
}

func TestTargetingErrors(t *testing.T) {
	bf := domain.NewBattlefield()
	te := NewTargetingEngine(bf)

	if _, err := te.LegalTargets(domain.Pos(0, 0), domain.ReachClass(99), domain.TargetAny); !errors.Is(err, domain.ErrUnknownReach) {
		t.Errorf("Expected ErrUnknownReach, got %v", err)
	}
	if _, err := te.LegalTargets(domain.Pos(0, 0), domain.ReachMelee, domain.TargetRelation(99)); !errors.Is(err, domain.ErrUnknownRelation) {
		t.Errorf("Expected ErrUnknownRelation, got %v", err)
	}

	set, err := te.LegalTargets(domain.Pos(5, 9), domain.ReachLong, domain.TargetAny)
	if err != nil {
		t.Fatalf("Expected invalid origin to be recoverable, got %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Expected empty set for invalid origin, got %d", set.Len())
	}
}
