package engine

import (
	"context"
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/systems"
)

// Report is the fully resolved record of one turn, handed to presentation after the fact.
type Report struct {
	Round    int                    `json:"round"`
	ActorID  string                 `json:"actorId"`
	Actor    string                 `json:"actor"`
	Command  string                 `json:"command,omitempty"`
	Hazard   *systems.HazardOutcome `json:"hazard,omitempty"`
	Outcome  *systems.Outcome       `json:"outcome,omitempty"`
	Move     *systems.MoveOutcome   `json:"move,omitempty"`
	Defeated []string               `json:"defeated,omitempty"`
	// Type is the log category of the executed command (COMBAT, MOVE, INFO).
	Type string `json:"type,omitempty"`

	names map[string]string
}

// Presenter consumes reports in order. It may block (animations, text crawl);
// the battle waits for it before serving the next actor.
type Presenter interface {
	Present(ctx context.Context, r Report) error
}

type PresenterFunc func(ctx context.Context, r Report) error

func (f PresenterFunc) Present(ctx context.Context, r Report) error {
	return f(ctx, r)
}

func (r Report) name(id string) string {
	if n, ok := r.names[id]; ok && n != "" {
		return n
	}
	return id
}

// Lines renders the report as human-readable outcome strings.
func (r Report) Lines() []string {
	var lines []string
	if r.Hazard != nil && r.Hazard.Amount > 0 {
		lines = append(lines, fmt.Sprintf("%s takes %d damage from the ground.", r.Actor, r.Hazard.Amount))
	}

	switch {
	case r.Outcome != nil:
		lines = append(lines, r.actionLines()...)
	case r.Move != nil && r.Move.Prevented:
		lines = append(lines, fmt.Sprintf("%s is held in place.", r.Actor))
	case r.Move != nil:
		lines = append(lines, fmt.Sprintf("%s moves to %v.", r.Actor, r.Move.To))
	case r.Command == "WAIT":
		lines = append(lines, fmt.Sprintf("%s waits.", r.Actor))
	}

	for _, id := range r.Defeated {
		lines = append(lines, fmt.Sprintf("%s is defeated!", r.name(id)))
	}
	return lines
}

func (r Report) actionLines() []string {
	o := r.Outcome
	action := o.ActionID
	if o.Action != nil && o.Action.Name != "" {
		action = o.Action.Name
	}
	if o.Prevented {
		return []string{fmt.Sprintf("%s tries to use %s, but nothing happens.", r.Actor, action)}
	}

	lines := []string{fmt.Sprintf("%s uses %s.", r.Actor, action)}
	for _, t := range o.Targets {
		name := t.TargetName
		switch t.HitType {
		case systems.HitNormal:
			lines = append(lines, fmt.Sprintf("%s takes %d damage.", name, t.Amount))
		case systems.HitCritical:
			lines = append(lines, fmt.Sprintf("Critical hit! %s takes %d damage.", name, t.Amount))
		case systems.HitGlance:
			lines = append(lines, fmt.Sprintf("A glancing blow. %s takes %d damage.", name, t.Amount))
		case systems.HitHeal:
			lines = append(lines, fmt.Sprintf("%s recovers %d HP.", name, t.Amount))
		case systems.HitCriticalHeal:
			lines = append(lines, fmt.Sprintf("A surge of power! %s recovers %d HP.", name, t.Amount))
		case systems.HitApplied:
			lines = append(lines, fmt.Sprintf("%s is affected.", name))
		case systems.HitPrevented:
			lines = append(lines, fmt.Sprintf("%s is unharmed.", name))
		}
		if phrase := tierPhrase(t.Tier); phrase != "" && t.HitType != systems.HitPrevented {
			lines = append(lines, phrase)
		}
	}
	if o.EnergyGained > 0 {
		lines = append(lines, fmt.Sprintf("%s gains %d energy.", r.Actor, o.EnergyGained))
	}
	return lines
}

func tierPhrase(t systems.Tier) string {
	switch t {
	case systems.TierOverwhelming:
		return "It's overwhelming!"
	case systems.TierSuperEffective:
		return "It's super effective!"
	case systems.TierEffective:
		return "It's effective."
	case systems.TierResisted:
		return "It's resisted."
	case systems.TierNotVeryEffective:
		return "It's not very effective..."
	case systems.TierIneffective:
		return "It's ineffective..."
	case systems.TierFutile:
		return "It's futile..."
	}
	return ""
}

// logType classifies the report for the battle log: the command's own type, or
// HAZARD when the actor fell before deciding.
func (r Report) logType() string {
	switch {
	case r.Type != "":
		return r.Type
	case r.Hazard != nil:
		return "HAZARD"
	}
	return "INFO"
}
