package actions

import (
	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers"
)

func HandleMove(ctx handlers.Context, cmd domain.Command) (handlers.Result, error) {
	out, err := ctx.Mover.Move(ctx.Actor, cmd.Dest)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{MsgType: "MOVE", Move: &out}, nil
}
