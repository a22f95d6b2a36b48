package domain

import "strings"

// Side identifies one of the two 3×3 grids.
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

var sideToString = map[Side]string{
	SidePlayer: "PLAYER",
	SideEnemy:  "ENEMY",
}

var sideStringToSide = map[string]Side{
	"PLAYER": SidePlayer,
	"ENEMY":  SideEnemy,
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

func (s Side) String() string {
	if val, ok := sideToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseSide converts a content string into a Side.
func ParseSide(s string) (Side, bool) {
	val, ok := sideStringToSide[strings.ToUpper(s)]
	return val, ok
}
