package actions

import (
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers"
)

func HandleWait(_ handlers.Context) (handlers.Result, error) {
	return handlers.Result{MsgType: "INFO"}, nil
}
