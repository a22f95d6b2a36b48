package domain

import "errors"

var (
	ErrTileOccupied       = errors.New("tile already occupied")
	ErrTerrainBlocked     = errors.New("terrain rejects entry")
	ErrInvalidPosition    = errors.New("position out of bounds")
	ErrWrongSide          = errors.New("position belongs to the other side")
	ErrUnknownReach       = errors.New("unknown reach class")
	ErrUnknownShape       = errors.New("unknown aoe shape")
	ErrUnknownRelation    = errors.New("unknown target relation")
	ErrUnknownElement     = errors.New("unknown element")
	ErrUnknownRole        = errors.New("unknown action role")
	ErrUnknownCategory    = errors.New("unknown energy category")
	ErrUnknownTerrain     = errors.New("unknown terrain kind")
	ErrNotOnBattlefield   = errors.New("combatant is not on the battlefield")
	ErrAlreadyOnField     = errors.New("combatant is already on the battlefield")
	ErrTooManyElements    = errors.New("a combatant carries at most two elements")
	ErrInsufficientEnergy = errors.New("insufficient energy")
)
