package domain

import (
	"fmt"
	"strings"
)

// ActionRole decides which resolution path an action takes.
type ActionRole uint8

const (
	RoleOffensive ActionRole = iota
	RoleSupport
	RoleHealing
)

var roleToString = map[ActionRole]string{
	RoleOffensive: "OFFENSIVE",
	RoleSupport:   "SUPPORT",
	RoleHealing:   "HEALING",
}

var roleStringToRole = map[string]ActionRole{
	"OFFENSIVE": RoleOffensive,
	"SUPPORT":   RoleSupport,
	"HEALING":   RoleHealing,
}

func (r ActionRole) String() string {
	if val, ok := roleToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseRole(s string) (ActionRole, error) {
	if val, ok := roleStringToRole[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return RoleOffensive, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// EnergyCategory is the action slot: Core actions build energy, Empowered actions spend it.
type EnergyCategory uint8

const (
	EnergyBasic EnergyCategory = iota
	EnergyCore
	EnergyEmpowered
)

var categoryToString = map[EnergyCategory]string{
	EnergyBasic:     "BASIC",
	EnergyCore:      "CORE",
	EnergyEmpowered: "EMPOWERED",
}

var categoryStringToCategory = map[string]EnergyCategory{
	"BASIC":     EnergyBasic,
	"CORE":      EnergyCore,
	"EMPOWERED": EnergyEmpowered,
}

func (c EnergyCategory) String() string {
	if val, ok := categoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseCategory(s string) (EnergyCategory, error) {
	if val, ok := categoryStringToCategory[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return EnergyBasic, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Energy holds the flat energy semantics of an action.
type Energy struct {
	Category EnergyCategory
	Cost     int
	Gain     int
}

// SurfaceSpec describes a transient surface an action leaves on every affected tile.
type SurfaceSpec struct {
	Kind    string
	Element Element
	Ticks   int
	Hazard  int
}

// ActionDescriptor is an immutable action definition supplied by content.
type ActionDescriptor struct {
	ID       string
	Name     string
	Element  Element
	Reach    ReachClass
	Relation TargetRelation
	Shape    Shape
	Role     ActionRole
	Energy   Energy

	Power        int     // base damage or healing power
	Accuracy     float64 // 0..1 base chance to hit
	CritModifier float64 // added to the attacker's crit chance

	Surface *SurfaceSpec
}

// IsRangedOffense reports whether cover reduces this action's damage.
func (a *ActionDescriptor) IsRangedOffense() bool {
	return a.Role == RoleOffensive && a.Reach.IsRanged()
}
