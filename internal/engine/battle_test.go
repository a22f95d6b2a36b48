package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers"
)

func newTestBattle(t *testing.T, seed int64) *Battle {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = seed
	cfg.MaxRounds = 30
	return NewBattle("test", cfg, domain.NewBattlefield(), nil)
}

func join(t *testing.T, b *Battle, c *domain.Combatant, p domain.UnifiedPosition) {
	t.Helper()
	if err := b.Join(c, p); err != nil {
		t.Fatalf("join %s: %v", c.ID, err)
	}
}

func optionTargets(view TurnView, actionID string) []domain.UnifiedPosition {
	for _, o := range view.Options {
		if o.Action.ID == actionID {
			return o.Targets
		}
	}
	return nil
}

func contains(ps []domain.UnifiedPosition, p domain.UnifiedPosition) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func TestFrontLineMeleeAcrossSeam(t *testing.T) {
	b := newTestBattle(t, 1)
	hero := newFighter("hero", domain.SidePlayer, 10, 50, 10)
	orc := newFighter("orc", domain.SideEnemy, 10, 50, 10)
	join(t, b, hero, domain.Pos(1, 2))
	join(t, b, orc, domain.Pos(1, 3))

	view, err := b.View(hero)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !contains(optionTargets(view, "strike"), domain.Pos(1, 3)) {
		t.Errorf("Expected front defender to be a legal melee target, got %v", view.Options)
	}
}

func TestMidLaneMeleeBlocked(t *testing.T) {
	b := newTestBattle(t, 1)
	hero := newFighter("hero", domain.SidePlayer, 10, 50, 10)
	orc := newFighter("orc", domain.SideEnemy, 10, 50, 10)
	join(t, b, hero, domain.Pos(1, 1))
	join(t, b, orc, domain.Pos(1, 3))

	view, _ := b.View(hero)
	if !contains(optionTargets(view, "strike"), domain.Pos(1, 3)) {
		t.Fatal("Expected defender reachable with an empty lane")
	}

	join(t, b, newFighter("squire", domain.SidePlayer, 10, 50, 10), domain.Pos(1, 2))
	view, _ = b.View(hero)
	if contains(optionTargets(view, "strike"), domain.Pos(1, 3)) {
		t.Error("Expected the occupied tile between them to block melee")
	}
}

func TestRunOneSidedBattle(t *testing.T) {
	b := newTestBattle(t, 3)
	hero := newFighter("hero", domain.SidePlayer, 20, 50, 30)
	orc := newFighter("orc", domain.SideEnemy, 5, 20, 10)
	join(t, b, hero, domain.Pos(1, 2))
	join(t, b, orc, domain.Pos(1, 3))

	var presented []Report
	present := PresenterFunc(func(_ context.Context, r Report) error {
		presented = append(presented, r)
		return nil
	})

	sum, err := b.Run(context.Background(), FirstLegalController{}, present)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sum.Winner != WinnerPlayer {
		t.Errorf("Expected PLAYER to win, got %q", sum.Winner)
	}
	if sum.Rounds != 1 || len(sum.Reports) != 1 || len(presented) != 1 {
		t.Fatalf("Expected one turn in one round, got rounds=%d reports=%d presented=%d", sum.Rounds, len(sum.Reports), len(presented))
	}

	want := []string{"hero uses Strike.", "orc takes 30 damage.", "hero gains 1 energy.", "orc is defeated!"}
	if got := sum.Reports[0].Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected lines %q, got %q", want, got)
	}
	if b.Field.TileOf(orc) != nil {
		t.Error("Expected defeated orc to be cleared from the field")
	}
	if len(b.Logs) != len(want) {
		t.Errorf("Expected %d log entries, got %d", len(want), len(b.Logs))
	}
	if sum.Reports[0].Type != "COMBAT" {
		t.Errorf("Expected COMBAT report, got %q", sum.Reports[0].Type)
	}
	for _, entry := range b.Logs {
		if entry.Type != "COMBAT" {
			t.Errorf("Expected COMBAT log entries, got %q", entry.Type)
		}
	}
}

func skirmish(t *testing.T, seed int64) *Battle {
	b := newTestBattle(t, seed)
	for _, f := range []struct {
		id   string
		side domain.Side
		pos  domain.UnifiedPosition
	}{
		{"knight", domain.SidePlayer, domain.Pos(1, 2)},
		{"archer", domain.SidePlayer, domain.Pos(0, 2)},
		{"brute", domain.SideEnemy, domain.Pos(1, 3)},
		{"shaman", domain.SideEnemy, domain.Pos(2, 3)},
	} {
		c := newFighter(f.id, f.side, 12, 60, 10)
		c.Actions[0].Accuracy = 0.7
		c.Actions[0].CritModifier = 0.2
		join(t, b, c, f.pos)
	}
	return b
}

func reportLines(sum Summary) []string {
	var out []string
	for _, r := range sum.Reports {
		out = append(out, r.Lines()...)
	}
	return out
}

func TestSameSeedSameBattle(t *testing.T) {
	first, err := skirmish(t, 99).Run(context.Background(), FirstLegalController{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := skirmish(t, 99).Run(context.Background(), FirstLegalController{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.Winner == "" {
		t.Error("Expected the skirmish to finish")
	}
	if !reflect.DeepEqual(reportLines(first), reportLines(second)) {
		t.Error("Expected identical battles for identical seeds")
	}
}

func TestReplayReproducesBattle(t *testing.T) {
	original := skirmish(t, 5)
	want, err := original.Run(context.Background(), FirstLegalController{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	replayed := skirmish(t, 5)
	got, err := replayed.Run(context.Background(), NewReplayController(original.Replay), nil)
	if err != nil {
		t.Fatalf("Unexpected replay error: %v", err)
	}
	if got.Winner != want.Winner || !reflect.DeepEqual(reportLines(got), reportLines(want)) {
		t.Error("Expected replay to reproduce the battle")
	}
}

func TestReplayDivergence(t *testing.T) {
	b := skirmish(t, 5)
	session := &domain.ReplaySession{Actions: []domain.ReplayAction{{Actor: "nobody", Command: domain.WaitCommand()}}}
	_, err := b.Run(context.Background(), NewReplayController(session), nil)
	if !errors.Is(err, ErrReplayDiverged) {
		t.Errorf("Expected ErrReplayDiverged, got %v", err)
	}
}

func TestCancellationBetweenTurns(t *testing.T) {
	b := skirmish(t, 11)
	ctx, cancel := context.WithCancel(context.Background())
	ctrl := ControllerFunc(func(ctx context.Context, v TurnView) (domain.Command, error) {
		cancel()
		return FirstLegalController{}.Decide(ctx, v)
	})

	sum, err := b.Run(ctx, ctrl, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if len(sum.Reports) != 1 {
		t.Errorf("Expected the started turn to finish before stopping, got %d reports", len(sum.Reports))
	}
}

func TestMaxRoundsDraw(t *testing.T) {
	b := skirmish(t, 2)
	b.Config.MaxRounds = 3
	waiter := ControllerFunc(func(context.Context, TurnView) (domain.Command, error) {
		return domain.WaitCommand(), nil
	})

	sum, err := b.Run(context.Background(), waiter, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sum.Winner != WinnerDraw || sum.Rounds != 3 {
		t.Errorf("Expected draw after 3 rounds, got %q after %d", sum.Winner, sum.Rounds)
	}
	if len(sum.Reports) != 12 {
		t.Errorf("Expected 12 turns, got %d", len(sum.Reports))
	}
	for _, entry := range b.Logs {
		if entry.Type != "INFO" {
			t.Errorf("Expected INFO log for a wait, got %q", entry.Type)
		}
	}
}

func TestUnsetRoundCapStillEnds(t *testing.T) {
	b := skirmish(t, 2)
	b.Config.MaxRounds = 0
	waiter := ControllerFunc(func(context.Context, TurnView) (domain.Command, error) {
		return domain.WaitCommand(), nil
	})

	sum, err := b.Run(context.Background(), waiter, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sum.Winner != WinnerDraw || sum.Rounds != DefaultMaxRounds {
		t.Errorf("Expected draw after %d rounds, got %q after %d", DefaultMaxRounds, sum.Winner, sum.Rounds)
	}
}

func TestIllegalTargetFails(t *testing.T) {
	b := skirmish(t, 4)
	ctrl := ControllerFunc(func(context.Context, TurnView) (domain.Command, error) {
		return domain.ActCommand("strike", domain.Pos(0, 0), domain.AlignUp), nil
	})
	_, err := b.Run(context.Background(), ctrl, nil)
	if !errors.Is(err, handlers.ErrIllegalTarget) {
		t.Errorf("Expected ErrIllegalTarget, got %v", err)
	}

	ctrl = ControllerFunc(func(context.Context, TurnView) (domain.Command, error) {
		return domain.ActCommand("fireball", domain.Pos(1, 3), domain.AlignUp), nil
	})
	_, err = skirmish(t, 4).Run(context.Background(), ctrl, nil)
	if !errors.Is(err, handlers.ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestHazardDefeatsActorAtTurnStart(t *testing.T) {
	b := newTestBattle(t, 8)
	hero := newFighter("hero", domain.SidePlayer, 50, 50, 10)
	hero.Actions = nil
	imp := newFighter("imp", domain.SideEnemy, 1, 5, 10)
	join(t, b, hero, domain.Pos(1, 0))
	join(t, b, imp, domain.Pos(1, 5))
	lava := domain.DefaultTerrain(domain.TerrainLava)
	_ = b.Field.SetTerrain(domain.Pos(1, 5), &lava)

	sum, err := b.Run(context.Background(), FirstLegalController{}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sum.Winner != WinnerPlayer {
		t.Errorf("Expected PLAYER to win, got %q", sum.Winner)
	}
	last := sum.Reports[len(sum.Reports)-1]
	if last.ActorID != "imp" || last.Hazard == nil || !last.Hazard.Defeated {
		t.Errorf("Expected imp to fall to the lava, got %+v", last)
	}
	if last.Command != "" {
		t.Errorf("Expected no command from a defeated actor, got %q", last.Command)
	}
}

func TestBuildState(t *testing.T) {
	b := newTestBattle(t, 1)
	hero := newFighter("hero", domain.SidePlayer, 10, 50, 10)
	join(t, b, hero, domain.Pos(0, 1))
	b.AddLog("hello", "INFO")

	view := b.FlushState("UPDATE")
	if len(view.Map) != domain.Rows*domain.TotalCols {
		t.Errorf("Expected 18 tiles, got %d", len(view.Map))
	}
	if len(view.Combatants) != 1 || view.Combatants[0].Pos == nil || view.Combatants[0].Pos.Col != 1 {
		t.Errorf("Unexpected combatants %+v", view.Combatants)
	}
	if len(view.Logs) != 1 || len(b.Logs) != 0 {
		t.Errorf("Expected flushed logs, got view=%d battle=%d", len(view.Logs), len(b.Logs))
	}
	if view.Winner != WinnerPlayer {
		t.Errorf("Expected PLAYER as the only side standing, got %q", view.Winner)
	}
}

func TestJoinRejectsDuplicates(t *testing.T) {
	b := newTestBattle(t, 1)
	join(t, b, newFighter("hero", domain.SidePlayer, 10, 50, 10), domain.Pos(0, 0))
	if err := b.Join(newFighter("hero", domain.SidePlayer, 10, 50, 10), domain.Pos(0, 1)); !errors.Is(err, ErrDuplicateCombatant) {
		t.Errorf("Expected ErrDuplicateCombatant, got %v", err)
	}
	if err := b.Join(newFighter("orc", domain.SideEnemy, 10, 50, 10), domain.Pos(0, 0)); !errors.Is(err, domain.ErrWrongSide) {
		t.Errorf("Expected ErrWrongSide, got %v", err)
	}
}
