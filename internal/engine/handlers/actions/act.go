package actions

import (
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers"
)

// HandleAct expands the action's area around the chosen target and resolves it.
func HandleAct(ctx handlers.Context, action *domain.ActionDescriptor, cmd domain.Command) (handlers.Result, error) {
	primary := ctx.Field.Tile(cmd.Target)

	tiles, err := ctx.AOE.Expand(primary, action.Shape, cmd.Align, ctx.Actor.Side)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("action %s: %w", action.ID, err)
	}

	out, err := ctx.Resolver.Resolve(action, ctx.Actor, tiles)
	if err != nil {
		return handlers.Result{}, err
	}

	return handlers.Result{
		MsgType: "COMBAT",
		Outcome: &out,
	}, nil
}
