package handlers

import (
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
)

// ActionHandlerFunc works with the actor's resolved action descriptor.
type ActionHandlerFunc func(ctx Context, action *domain.ActionDescriptor, cmd domain.Command) (Result, error)

// EmptyHandlerFunc needs nothing from the command (WAIT).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithAction resolves the command's action on the actor and checks the primary target
// against the targeting rules before calling the handler.
func WithAction(handler ActionHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd domain.Command) (Result, error) {
		action := ctx.Actor.Action(cmd.ActionID)
		if action == nil {
			return Result{}, fmt.Errorf("%s: %q: %w", ctx.Actor, cmd.ActionID, ErrUnknownAction)
		}

		from, ok := ctx.Field.Locate(ctx.Actor)
		if !ok {
			return Result{}, fmt.Errorf("%s: %w", ctx.Actor, domain.ErrNotOnBattlefield)
		}
		legal, err := ctx.Targeting.IsLegal(from, action.Reach, action.Relation, cmd.Target)
		if err != nil {
			return Result{}, fmt.Errorf("action %s: %w", action.ID, err)
		}
		if !legal {
			return Result{}, fmt.Errorf("%s %s at %v: %w", ctx.Actor, action.ID, cmd.Target, ErrIllegalTarget)
		}

		return handler(ctx, action, cmd)
	}
}

// WithEmptyPayload adapts a handler that ignores the command.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ domain.Command) (Result, error) {
		return handler(ctx)
	}
}
