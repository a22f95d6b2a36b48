package systems

import (
	"errors"
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrIllegalMove = errors.New("illegal move destination")

// MoveOutcome describes a finished (or prevented) reposition.
type MoveOutcome struct {
	From      domain.UnifiedPosition `json:"from"`
	To        domain.UnifiedPosition `json:"to"`
	Cost      int                    `json:"cost"`
	Prevented bool                   `json:"prevented"`
	Defeated  bool                   `json:"defeated"`
}

// Mover repositions combatants on their own side.
type Mover struct {
	field *domain.Battlefield
}

func NewMover(field *domain.Battlefield) *Mover {
	return &Mover{field: field}
}

// Destinations lists the empty adjacent tiles of the combatant's side that its terrain
// rules accept and its mobility can pay for.
func (m *Mover) Destinations(c *domain.Combatant) []*domain.Tile {
	from := m.field.TileOf(c)
	if from == nil || c.IsDefeated() {
		return nil
	}
	mobility := 1
	if c.Stats != nil && c.Stats.Mobility > 0 {
		mobility = c.Stats.Mobility
	}
	var out []*domain.Tile
	for _, t := range m.field.Grid(c.Side).Adjacent(from.Pos.ToSideLocal()) {
		if t.IsOccupied() || !t.Terrain.Accepts(c) {
			continue
		}
		if t.MovementCost(c) > mobility {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Move relocates the combatant after validating the destination. Before/After move
// handlers run on the mover; a Before handler may prevent the move.
func (m *Mover) Move(c *domain.Combatant, to domain.UnifiedPosition) (MoveOutcome, error) {
	from, ok := m.field.Locate(c)
	if !ok {
		return MoveOutcome{}, fmt.Errorf("%s: %w", c, domain.ErrNotOnBattlefield)
	}
	var dest *domain.Tile
	for _, t := range m.Destinations(c) {
		if t.Pos == to {
			dest = t
			break
		}
	}
	if dest == nil {
		return MoveOutcome{}, fmt.Errorf("%s to %v: %w", c, to, ErrIllegalMove)
	}

	out := MoveOutcome{From: from, To: to, Cost: dest.MovementCost(c)}
	ev := &domain.MoveEvent{Mover: c, From: from, To: to}
	domain.NotifyBeforeMove(ev, c)
	if ev.Prevent {
		out.Prevented = true
		return out, nil
	}
	if err := m.field.Relocate(c, to); err != nil {
		return MoveOutcome{}, err
	}
	if dest.DefeatsOnEntry(c) && c.Stats != nil && c.Stats.Defeat() {
		out.Defeated = true
		domain.NotifyDefeat(&domain.DefeatEvent{Target: c, Cause: dest.Terrain.Kind.String()}, c)
	}
	domain.NotifyAfterMove(ev, c)

	logger.Component("movement_system").WithFields(logrus.Fields{
		"entity_id": c.ID,
		"from":      from,
		"to":        to,
		"cost":      out.Cost,
		"defeated":  out.Defeated,
	}).Info("Move resolved.")
	return out, nil
}

// HazardOutcome is the damage a combatant takes from its tile at turn start.
type HazardOutcome struct {
	Amount   int  `json:"amount"`
	Defeated bool `json:"defeated"`
}

// ApplyHazard deals the tile's terrain and surface hazard to its occupant.
// The damage runs through the occupant's Before/After damage handlers.
func ApplyHazard(field *domain.Battlefield, c *domain.Combatant) HazardOutcome {
	tile := field.TileOf(c)
	if tile == nil || c.Stats == nil || c.IsDefeated() {
		return HazardOutcome{}
	}
	amount := tile.HazardDamage(c)
	if amount <= 0 {
		return HazardOutcome{}
	}
	ev := &domain.DamageEvent{Target: c, Amount: amount, Multiplier: 1}
	domain.NotifyBeforeDamage(ev, c)
	if ev.Prevent {
		return HazardOutcome{}
	}
	dealt := atLeastOne(roundHalfUp(float64(ev.Amount) * ev.Multiplier))
	died := c.Stats.TakeDamage(dealt)
	ev.Dealt = dealt
	domain.NotifyAfterDamage(ev, c)
	if died {
		domain.NotifyDefeat(&domain.DefeatEvent{Target: c, Cause: "hazard"}, c)
	}
	return HazardOutcome{Amount: dealt, Defeated: died}
}
