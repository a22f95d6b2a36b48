package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
)

var (
	ErrReplayExhausted = errors.New("replay has no more decisions")
	ErrReplayDiverged  = errors.New("replay decision belongs to another combatant")
)

// ActionOption is an action the actor can afford together with its legal primary targets.
type ActionOption struct {
	Action  *domain.ActionDescriptor
	Targets []domain.UnifiedPosition
}

// TurnView is everything a controller needs to decide one turn. Field is shared with the
// battle; controllers must treat it as read-only.
type TurnView struct {
	Round   int
	Actor   *domain.Combatant
	Field   *domain.Battlefield
	Options []ActionOption
	Moves   []domain.UnifiedPosition
}

// Controller makes the decision for one turn. It may block (waiting for input);
// the battle does not advance until it returns.
type Controller interface {
	Decide(ctx context.Context, view TurnView) (domain.Command, error)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(ctx context.Context, view TurnView) (domain.Command, error)

func (f ControllerFunc) Decide(ctx context.Context, view TurnView) (domain.Command, error) {
	return f(ctx, view)
}

// FirstLegalController is a scripted controller: the first offensive option at its first
// target, else the first other option, else a step towards the seam, else wait.
type FirstLegalController struct{}

func (FirstLegalController) Decide(_ context.Context, view TurnView) (domain.Command, error) {
	var fallback *ActionOption
	for i := range view.Options {
		opt := &view.Options[i]
		if opt.Action.Role == domain.RoleOffensive {
			return domain.ActCommand(opt.Action.ID, opt.Targets[0], domain.AlignUp), nil
		}
		if fallback == nil {
			fallback = opt
		}
	}
	if fallback != nil {
		return domain.ActCommand(fallback.Action.ID, fallback.Targets[0], domain.AlignUp), nil
	}

	if pos, ok := view.Field.Locate(view.Actor); ok {
		for _, dest := range view.Moves {
			if dest.LaneDepth() < pos.LaneDepth() {
				return domain.MoveCommand(dest), nil
			}
		}
	}
	return domain.WaitCommand(), nil
}

// ReplayController serves recorded decisions in order.
type ReplayController struct {
	actions []domain.ReplayAction
	next    int
}

func NewReplayController(session *domain.ReplaySession) *ReplayController {
	return &ReplayController{actions: session.Actions}
}

func (r *ReplayController) Decide(_ context.Context, view TurnView) (domain.Command, error) {
	if r.next >= len(r.actions) {
		return domain.Command{}, ErrReplayExhausted
	}
	act := r.actions[r.next]
	if act.Actor != view.Actor.ID {
		return domain.Command{}, fmt.Errorf("%w: expected %s, serving %s", ErrReplayDiverged, act.Actor, view.Actor.ID)
	}
	r.next++
	return act.Command, nil
}
