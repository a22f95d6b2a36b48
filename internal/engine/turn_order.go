package engine

import (
	"sort"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/utils"

	"github.com/sirupsen/logrus"
)

// SchedulerState is the round lifecycle of the scheduler.
type SchedulerState uint8

const (
	SchedulerIdle SchedulerState = iota
	SchedulerRoundActive
	SchedulerRoundComplete
)

var schedulerStateToString = map[SchedulerState]string{
	SchedulerIdle:          "IDLE",
	SchedulerRoundActive:   "ROUND_ACTIVE",
	SchedulerRoundComplete: "ROUND_COMPLETE",
}

func (s SchedulerState) String() string {
	if val, ok := schedulerStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// TurnEntry is one combatant's slot in the round order.
type TurnEntry struct {
	Combatant  *domain.Combatant
	Initiative int
}

// Scheduler serves combatants once per round in initiative order.
type Scheduler struct {
	order  []TurnEntry
	cursor int
	state  SchedulerState
	round  int
	rng    utils.Rand
}

func NewScheduler(rng utils.Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// RollInitiative starts a new round. Every living combatant draws an initiative uniformly
// from [Speed/2, Speed); the order is sorted descending by initiative, then current Speed,
// then base Speed. Remaining ties keep the input order.
func (s *Scheduler) RollInitiative(combatants []*domain.Combatant) {
	order := make([]TurnEntry, 0, len(combatants))
	for _, c := range combatants {
		if c == nil || c.Stats == nil || c.IsDefeated() {
			continue
		}
		order = append(order, TurnEntry{Combatant: c, Initiative: s.draw(c.Stats.Speed)})
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Initiative != b.Initiative {
			return a.Initiative > b.Initiative
		}
		if a.Combatant.Stats.Speed != b.Combatant.Stats.Speed {
			return a.Combatant.Stats.Speed > b.Combatant.Stats.Speed
		}
		return a.Combatant.Stats.BaseSpeed > b.Combatant.Stats.BaseSpeed
	})

	s.order = order
	s.cursor = 0
	s.round++
	s.state = SchedulerRoundActive

	logger.Component("turn_order").WithFields(logrus.Fields{
		"round": s.round,
		"order": s.DebugDump(),
	}).Debug("Initiative rolled")
}

func (s *Scheduler) draw(speed int) int {
	lo := speed / 2
	span := speed - lo
	if span <= 0 {
		return lo
	}
	return lo + s.rng.Intn(span)
}

// GetNext serves the next combatant, skipping any defeated since scheduling.
// Returns nil and completes the round when the order is exhausted.
func (s *Scheduler) GetNext() *domain.Combatant {
	if s.state != SchedulerRoundActive {
		return nil
	}
	for s.cursor < len(s.order) {
		c := s.order[s.cursor].Combatant
		s.cursor++
		if !c.IsDefeated() {
			return c
		}
	}
	s.state = SchedulerRoundComplete
	return nil
}

// RemoveCombatant drops the combatant from the order. Nobody else is skipped or served twice.
func (s *Scheduler) RemoveCombatant(c *domain.Combatant) bool {
	for i, e := range s.order {
		if e.Combatant != c {
			continue
		}
		s.order = append(s.order[:i], s.order[i+1:]...)
		if i < s.cursor {
			s.cursor--
		}
		return true
	}
	return false
}

func (s *Scheduler) State() SchedulerState { return s.state }

func (s *Scheduler) Round() int { return s.round }

// Remaining is the number of combatants still to be served this round.
func (s *Scheduler) Remaining() int {
	return len(s.order) - s.cursor
}

// Order returns a copy of the current round order, including served entries.
func (s *Scheduler) Order() []TurnEntry {
	return append([]TurnEntry(nil), s.order...)
}

// DebugDump returns a snapshot of the order for logs.
func (s *Scheduler) DebugDump() []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(s.order))
	for i, e := range s.order {
		result = append(result, map[string]interface{}{
			"id":         e.Combatant.ID,
			"initiative": e.Initiative,
			"speed":      e.Combatant.Stats.Speed,
			"served":     i < s.cursor,
		})
	}
	return result
}
