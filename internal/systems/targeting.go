package systems

import (
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Cross-side blocker tolerance and column caps per reach class.
const (
	shortMaxBlockers = 2
	shortMaxColumns  = 4
	longMaxBlockers  = 4
)

// TargetingEngine computes legal target tiles. It reads the battlefield and never mutates it.
type TargetingEngine struct {
	field *domain.Battlefield
}

func NewTargetingEngine(field *domain.Battlefield) *TargetingEngine {
	return &TargetingEngine{field: field}
}

// LegalTargets returns the tiles reachable from the attacker position with the reach class,
// filtered by the required relationship. An invalid attacker position yields an empty set.
func (e *TargetingEngine) LegalTargets(from domain.UnifiedPosition, reach domain.ReachClass, rel domain.TargetRelation) (*domain.TargetSet, error) {
	reachable, err := e.Reachable(from, reach)
	if err != nil {
		return nil, err
	}
	if _, ok := relationNames[rel]; !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownRelation, rel)
	}
	out := reachable.Filter(func(t *domain.Tile) bool { return matchesRelation(t, from, rel) })

	logger.Component("targeting").WithFields(logrus.Fields{
		"from":      from,
		"reach":     reach,
		"relation":  rel,
		"reachable": reachable.Len(),
		"legal":     out.Len(),
	}).Debug("Targets computed.")
	return out, nil
}

// Reachable is the union of the same-side and cross-side rule families.
func (e *TargetingEngine) Reachable(from domain.UnifiedPosition, reach domain.ReachClass) (*domain.TargetSet, error) {
	switch reach {
	case domain.ReachSelf, domain.ReachMelee, domain.ReachShort, domain.ReachLong:
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownReach, reach)
	}

	set := domain.NewTargetSet()
	if !from.IsValid() {
		return set, nil
	}
	for _, t := range e.sameSide(from, reach) {
		set.Add(t)
	}
	for _, t := range e.crossSide(from, reach) {
		set.Add(t)
	}
	return set, nil
}

// IsLegal reports whether target is in the legal set.
func (e *TargetingEngine) IsLegal(from domain.UnifiedPosition, reach domain.ReachClass, rel domain.TargetRelation, target domain.UnifiedPosition) (bool, error) {
	set, err := e.LegalTargets(from, reach, rel)
	if err != nil {
		return false, err
	}
	return set.Contains(target), nil
}

// sameSide applies movement-style distance rules on the attacker's own grid.
func (e *TargetingEngine) sameSide(from domain.UnifiedPosition, reach domain.ReachClass) []*domain.Tile {
	var out []*domain.Tile
	for _, t := range e.field.Grid(from.Side()).Tiles() {
		if sameSideReaches(from, t.Pos, reach) {
			out = append(out, t)
		}
	}
	return out
}

func sameSideReaches(from, to domain.UnifiedPosition, reach domain.ReachClass) bool {
	if from == to {
		return true
	}
	switch reach {
	case domain.ReachMelee:
		return from.IsAdjacentTo(to)
	case domain.ReachShort:
		// Everything within two steps except the far diagonal corners.
		dr, dc := from.RowDistance(to), from.ColumnDistance(to)
		return from.ChebyshevDistance(to) <= 2 && !(dr == 2 && dc == 2)
	case domain.ReachLong:
		return true
	default:
		return false
	}
}

// crossSide applies blocker-counted rules on the opposing grid.
func (e *TargetingEngine) crossSide(from domain.UnifiedPosition, reach domain.ReachClass) []*domain.Tile {
	if reach == domain.ReachSelf {
		return nil
	}
	var out []*domain.Tile
	for _, t := range e.field.Grid(from.Side().Opponent()).Tiles() {
		if !from.IsInTargetableRow(t.Pos) {
			continue
		}
		blockers := e.BlockersBetween(from, t.Pos)
		switch reach {
		case domain.ReachMelee:
			if blockers > 0 || !t.IsOccupied() {
				continue
			}
			if t.Pos.LaneDepth() > meleeLaneCap(from.Side(), from.LocalColumn()) {
				continue
			}
			if from.ColumnDistance(t.Pos) != e.nearestOpposing(from, t.Pos.Row) {
				continue
			}
		case domain.ReachShort:
			if blockers > shortMaxBlockers || from.ColumnDistance(t.Pos) > shortMaxColumns {
				continue
			}
		case domain.ReachLong:
			if blockers > longMaxBlockers {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// BlockersBetween counts occupied tiles strictly between the two columns, along the
// target's row. Rows differing by one are not traced as a real line.
func (e *TargetingEngine) BlockersBetween(from, to domain.UnifiedPosition) int {
	lo, hi := from.Col, to.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	count := 0
	for c := lo + 1; c < hi; c++ {
		if t := e.field.Tile(domain.Pos(to.Row, c)); t != nil && t.IsOccupied() {
			count++
		}
	}
	return count
}

// nearestOpposing is the smallest column distance from the attacker to an occupied
// opposing tile in the row, or -1 if the row is empty.
func (e *TargetingEngine) nearestOpposing(from domain.UnifiedPosition, row int) int {
	best := -1
	for _, t := range e.field.Grid(from.Side().Opponent()).Row(row) {
		if !t.IsOccupied() {
			continue
		}
		if d := from.ColumnDistance(t.Pos); best < 0 || d < best {
			best = d
		}
	}
	return best
}

// meleeLaneCap is the deepest opposing lane (0 front, 2 back) a melee attacker may
// reach, keyed by the attacker's side and local column.
func meleeLaneCap(side domain.Side, localCol int) int {
	lanes := [2][domain.SideCols]int{
		domain.SidePlayer: {2, 1, 0},
		domain.SideEnemy:  {0, 1, 2},
	}
	if localCol < 0 || localCol >= domain.SideCols || side > domain.SideEnemy {
		return -1
	}
	return lanes[side][localCol]
}

var relationNames = map[domain.TargetRelation]struct{}{
	domain.TargetEnemy:             {},
	domain.TargetAlly:              {},
	domain.TargetSelf:              {},
	domain.TargetAllyIncludingSelf: {},
	domain.TargetEmptySpace:        {},
	domain.TargetOccupiedSpace:     {},
	domain.TargetAny:               {},
}

func matchesRelation(t *domain.Tile, from domain.UnifiedPosition, rel domain.TargetRelation) bool {
	occ := t.Occupant()
	fighting := occ != nil && !occ.IsDefeated()
	switch rel {
	case domain.TargetEnemy:
		return fighting && occ.Side != from.Side()
	case domain.TargetAlly:
		return fighting && occ.Side == from.Side() && t.Pos != from
	case domain.TargetSelf:
		return t.Pos == from
	case domain.TargetAllyIncludingSelf:
		return fighting && occ.Side == from.Side()
	case domain.TargetEmptySpace:
		return occ == nil
	case domain.TargetOccupiedSpace:
		return occ != nil
	case domain.TargetAny:
		return true
	}
	return false
}
