package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers/actions"
	"github.com/misterlister/Creature-Summoner-sub000/internal/systems"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/api"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/utils"

	"github.com/sirupsen/logrus"
)

const (
	WinnerPlayer = "PLAYER"
	WinnerEnemy  = "ENEMY"
	WinnerDraw   = "DRAW"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrDuplicateCombatant = errors.New("combatant id already registered")
)

// Summary is the result of a finished (or interrupted) battle.
type Summary struct {
	Seed    int64    `json:"seed"`
	Winner  string   `json:"winner,omitempty"`
	Rounds  int      `json:"rounds"`
	Reports []Report `json:"reports"`
}

// Battle is one isolated fight. It exclusively owns its battlefield, scheduler and
// random stream; state changes only between fully resolved turns.
type Battle struct {
	ID     string
	Config Config

	Field      *domain.Battlefield
	Combatants []*domain.Combatant

	Scheduler *Scheduler
	Targeting *systems.TargetingEngine
	AOE       *systems.AOEGenerator
	Resolver  *systems.Resolver
	Mover     *systems.Mover

	Rng    utils.Rand
	Logs   []api.LogEntry
	Replay *domain.ReplaySession

	handlers map[domain.CommandKind]handlers.HandlerFunc
	active   *domain.Combatant
	logSeq   int
}

// NewBattle wires the systems around the battlefield. A nil chart uses the built-in one.
func NewBattle(id string, cfg Config, field *domain.Battlefield, chart *systems.ElementChart) *Battle {
	rng := utils.NewRand(cfg.Seed)
	return &Battle{
		ID:        id,
		Config:    cfg,
		Field:     field,
		Scheduler: NewScheduler(rng),
		Targeting: systems.NewTargetingEngine(field),
		AOE:       systems.NewAOEGenerator(field),
		Resolver:  systems.NewResolver(cfg.Rules.Stats(), chart, cfg.Rules.Resolution(), rng),
		Mover:     systems.NewMover(field),
		Rng:       rng,
		Logs:      []api.LogEntry{},
		Replay: &domain.ReplaySession{
			Scenario: id,
			Seed:     cfg.Seed,
			Actions:  make([]domain.ReplayAction, 0),
		},
		handlers: actions.Register(),
	}
}

// Join registers a combatant and places it on the field.
func (b *Battle) Join(c *domain.Combatant, p domain.UnifiedPosition) error {
	if b.Combatant(c.ID) != nil {
		return fmt.Errorf("%s: %w", c.ID, ErrDuplicateCombatant)
	}
	if err := b.Field.Place(c, p); err != nil {
		return err
	}
	b.Combatants = append(b.Combatants, c)
	return nil
}

// Combatant finds a registered combatant by id.
func (b *Battle) Combatant(id string) *domain.Combatant {
	for _, c := range b.Combatants {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Winner reports the side left standing, DRAW if nobody is, or "" while both sides fight.
func (b *Battle) Winner() string {
	player := len(b.Field.Living(domain.SidePlayer))
	enemy := len(b.Field.Living(domain.SideEnemy))
	switch {
	case player == 0 && enemy == 0:
		return WinnerDraw
	case player == 0:
		return WinnerEnemy
	case enemy == 0:
		return WinnerPlayer
	}
	return ""
}

// Run plays the battle to the end: roll initiative, serve the next actor, resolve exactly
// one command, present it, advance. Cancellation is honoured only between turns.
func (b *Battle) Run(ctx context.Context, ctrl Controller, present Presenter) (Summary, error) {
	battleLogger := logger.Component("battle").WithFields(logrus.Fields{
		"battle": b.ID,
		"seed":   b.Config.Seed,
	})
	battleLogger.WithField("combatants", len(b.Combatants)).Info("Battle started")

	sum := Summary{Seed: b.Config.Seed}
	for {
		if w := b.Winner(); w != "" {
			sum.Winner = w
			break
		}
		if b.Scheduler.State() != SchedulerRoundActive {
			if b.Scheduler.Round() >= b.Config.RoundCap() {
				sum.Winner = WinnerDraw
				break
			}
			b.Scheduler.RollInitiative(b.living())
		}

		actor := b.Scheduler.GetNext()
		if actor == nil {
			b.endRound()
			continue
		}

		rep, err := b.takeTurn(ctx, ctrl, actor)
		sum.Rounds = b.Scheduler.Round()
		if err != nil {
			battleLogger.WithError(err).Error("Turn failed")
			return sum, err
		}
		sum.Reports = append(sum.Reports, rep)

		if present != nil {
			if err := present.Present(ctx, rep); err != nil {
				return sum, fmt.Errorf("present round %d: %w", rep.Round, err)
			}
		}
		if err := ctx.Err(); err != nil {
			battleLogger.Warn("Battle cancelled")
			return sum, err
		}
	}

	sum.Rounds = b.Scheduler.Round()
	battleLogger.WithFields(logrus.Fields{
		"winner": sum.Winner,
		"rounds": sum.Rounds,
		"turns":  len(sum.Reports),
	}).Info("Battle finished")
	return sum, nil
}

func (b *Battle) living() []*domain.Combatant {
	var out []*domain.Combatant
	for _, c := range b.Combatants {
		if !c.IsDefeated() && b.Field.TileOf(c) != nil {
			out = append(out, c)
		}
	}
	return out
}

func (b *Battle) endRound() {
	expired := b.Field.TickSurfaces()
	logger.Component("battle").WithFields(logrus.Fields{
		"battle":           b.ID,
		"round":            b.Scheduler.Round(),
		"surfaces_expired": expired,
	}).Debug("Round complete")
}

// takeTurn runs one actor's turn to completion.
func (b *Battle) takeTurn(ctx context.Context, ctrl Controller, actor *domain.Combatant) (Report, error) {
	round := b.Scheduler.Round()
	rep := Report{Round: round, ActorID: actor.ID, Actor: actor.Name, names: b.names()}

	b.active = actor
	defer func() { b.active = nil }()

	turn := &domain.TurnEvent{Actor: actor, Round: round}
	domain.NotifyTurnStart(turn, actor)

	if b.Config.Rules.HazardOnTurnStart {
		if h := systems.ApplyHazard(b.Field, actor); h.Amount > 0 {
			rep.Hazard = &h
		}
	}

	if !actor.IsDefeated() {
		view, err := b.View(actor)
		if err != nil {
			return rep, err
		}
		cmd, err := ctrl.Decide(ctx, view)
		if err != nil {
			return rep, fmt.Errorf("decision for %s: %w", actor, err)
		}
		b.Replay.Actions = append(b.Replay.Actions, domain.ReplayAction{Round: round, Actor: actor.ID, Command: cmd})

		res, err := b.execute(actor, cmd)
		if err != nil {
			return rep, err
		}
		rep.Command = cmd.Kind.String()
		rep.Type = res.MsgType
		rep.Outcome = res.Outcome
		rep.Move = res.Move
	}

	domain.NotifyTurnEnd(turn, actor)

	for _, c := range b.Field.ClearDefeated() {
		b.Scheduler.RemoveCombatant(c)
		rep.Defeated = append(rep.Defeated, c.ID)
	}

	for _, line := range rep.Lines() {
		b.AddLog(line, rep.logType())
	}
	return rep, nil
}

func (b *Battle) execute(actor *domain.Combatant, cmd domain.Command) (handlers.Result, error) {
	handler, ok := b.handlers[cmd.Kind]
	if !ok {
		return handlers.Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
	}
	ctx := handlers.Context{
		Field:     b.Field,
		Targeting: b.Targeting,
		AOE:       b.AOE,
		Resolver:  b.Resolver,
		Mover:     b.Mover,
		Actor:     actor,
		Round:     b.Scheduler.Round(),
	}
	return handler(ctx, cmd)
}

// View lists the actor's affordable actions with their legal targets and its move options.
func (b *Battle) View(actor *domain.Combatant) (TurnView, error) {
	view := TurnView{Round: b.Scheduler.Round(), Actor: actor, Field: b.Field}
	from, ok := b.Field.Locate(actor)
	if !ok {
		return view, nil
	}

	for _, a := range actor.Actions {
		if a.Energy.Category == domain.EnergyEmpowered && !actor.Stats.HasEnergy(a.Energy.Cost) {
			continue
		}
		set, err := b.Targeting.LegalTargets(from, a.Reach, a.Relation)
		if err != nil {
			return view, fmt.Errorf("action %s: %w", a.ID, err)
		}
		if set.Len() == 0 {
			continue
		}
		view.Options = append(view.Options, ActionOption{Action: a, Targets: set.Positions()})
	}
	for _, t := range b.Mover.Destinations(actor) {
		view.Moves = append(view.Moves, t.Pos)
	}
	return view, nil
}

func (b *Battle) names() map[string]string {
	out := make(map[string]string, len(b.Combatants))
	for _, c := range b.Combatants {
		out[c.ID] = c.Name
	}
	return out
}
