package actions

import (
	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine/handlers"
)

// Register returns the handler table for every command kind.
func Register() map[domain.CommandKind]handlers.HandlerFunc {
	return map[domain.CommandKind]handlers.HandlerFunc{
		domain.CommandAct:  handlers.WithAction(HandleAct),
		domain.CommandMove: HandleMove,
		domain.CommandWait: handlers.WithEmptyPayload(HandleWait),
	}
}
