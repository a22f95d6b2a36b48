package handlers

import (
	"errors"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/systems"
)

var (
	ErrUnknownAction = errors.New("combatant has no such action")
	ErrIllegalTarget = errors.New("target is not legal for the action")
)

// Context gives a handler the battle services. Handlers mutate battle state only
// through these services.
type Context struct {
	Field     *domain.Battlefield
	Targeting *systems.TargetingEngine
	AOE       *systems.AOEGenerator
	Resolver  *systems.Resolver
	Mover     *systems.Mover
	Actor     *domain.Combatant
	Round     int
}

// Result is what a command produced. Handlers do not write to the battle log; the
// battle turns results into log lines.
type Result struct {
	MsgType string // COMBAT, MOVE, INFO
	Outcome *systems.Outcome
	Move    *systems.MoveOutcome
}

// HandlerFunc is the contract of every command (ACT, MOVE, WAIT).
type HandlerFunc func(ctx Context, cmd domain.Command) (Result, error)
