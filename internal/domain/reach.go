package domain

import (
	"fmt"
	"strings"
)

// ReachClass governs targeting distance and cross-side blocker tolerance.
type ReachClass uint8

const (
	ReachSelf ReachClass = iota
	ReachMelee
	ReachShort
	ReachLong
)

var reachToString = map[ReachClass]string{
	ReachSelf:  "SELF",
	ReachMelee: "MELEE",
	ReachShort: "SHORT",
	ReachLong:  "LONG",
}

var reachStringToReach = map[string]ReachClass{
	"SELF":  ReachSelf,
	"MELEE": ReachMelee,
	"SHORT": ReachShort,
	"LONG":  ReachLong,
}

func (r ReachClass) String() string {
	if val, ok := reachToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsRanged reports whether cover applies against the reach class.
func (r ReachClass) IsRanged() bool {
	return r == ReachShort || r == ReachLong
}

func ParseReach(s string) (ReachClass, error) {
	if val, ok := reachStringToReach[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return ReachSelf, fmt.Errorf("%w: %q", ErrUnknownReach, s)
}

// TargetRelation is the relationship an action requires between actor and target tile.
type TargetRelation uint8

const (
	TargetEnemy TargetRelation = iota
	TargetAlly
	TargetSelf
	TargetAllyIncludingSelf
	TargetEmptySpace
	TargetOccupiedSpace
	TargetAny
)

var relationToString = map[TargetRelation]string{
	TargetEnemy:             "ENEMY",
	TargetAlly:              "ALLY",
	TargetSelf:              "SELF",
	TargetAllyIncludingSelf: "ALLY_INCLUDING_SELF",
	TargetEmptySpace:        "EMPTY_SPACE",
	TargetOccupiedSpace:     "OCCUPIED_SPACE",
	TargetAny:               "ANY",
}

var relationStringToRelation = map[string]TargetRelation{
	"ENEMY":               TargetEnemy,
	"ALLY":                TargetAlly,
	"SELF":                TargetSelf,
	"ALLY_INCLUDING_SELF": TargetAllyIncludingSelf,
	"EMPTY_SPACE":         TargetEmptySpace,
	"OCCUPIED_SPACE":      TargetOccupiedSpace,
	"ANY":                 TargetAny,
}

func (r TargetRelation) String() string {
	if val, ok := relationToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseRelation(s string) (TargetRelation, error) {
	if val, ok := relationStringToRelation[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return TargetAny, fmt.Errorf("%w: %q", ErrUnknownRelation, s)
}
