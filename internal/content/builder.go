package content

import (
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/engine"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/logger"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Config derives the battle config: the scenario seed and round cap if set, its rules always.
func (sc *ScenarioConfig) Config() engine.Config {
	cfg := engine.NewConfig()
	if sc.Seed != 0 {
		cfg.Seed = sc.Seed
	}
	cfg.MaxRounds = sc.MaxRounds
	cfg.Rules = sc.Rules
	return cfg
}

// Build lays out the scenario's terrain and combatants on a fresh battlefield.
func (l *Library) Build(sc *ScenarioConfig, cfg engine.Config) (*engine.Battle, error) {
	field := domain.NewBattlefield()
	for _, p := range sc.Terrain {
		kind, err := domain.ParseTerrain(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("terrain at (%d,%d): %w", p.Row, p.Col, err)
		}
		if err := field.SetTerrain(domain.Pos(p.Row, p.Col), l.TerrainFor(kind)); err != nil {
			return nil, err
		}
	}

	id := sc.Name
	if id == "" {
		id = utils.GenerateID()
	}
	b := engine.NewBattle(id, cfg, field, l.Chart)

	for _, def := range sc.Combatants {
		c, err := l.combatant(def)
		if err != nil {
			return nil, err
		}
		if err := b.Join(c, domain.Pos(def.Row, def.Col)); err != nil {
			return nil, fmt.Errorf("combatant %s: %w", def.ID, err)
		}
	}

	logger.Component("content").WithFields(logrus.Fields{
		"battle":     id,
		"seed":       cfg.Seed,
		"combatants": len(b.Combatants),
		"terrain":    len(sc.Terrain),
	}).Info("Scenario built")
	return b, nil
}

func (l *Library) combatant(def CombatantDef) (*domain.Combatant, error) {
	side, ok := domain.ParseSide(def.Side)
	if !ok {
		return nil, fmt.Errorf("combatant %s: %w: %q", def.ID, ErrUnknownSide, def.Side)
	}
	elements := make([]domain.Element, 0, len(def.Elements))
	for _, name := range def.Elements {
		e, err := domain.ParseElement(name)
		if err != nil {
			return nil, fmt.Errorf("combatant %s: %w", def.ID, err)
		}
		elements = append(elements, e)
	}

	stats := def.Stats
	if stats.HP == 0 {
		stats.HP = stats.MaxHP
	}
	if stats.HP <= 0 {
		return nil, fmt.Errorf("combatant %s: needs positive hp", def.ID)
	}

	name := def.Name
	if name == "" {
		name = def.ID
	}
	c, err := domain.NewCombatant(def.ID, name, side, elements, stats)
	if err != nil {
		return nil, err
	}
	for _, id := range def.Actions {
		a, err := l.Action(id)
		if err != nil {
			return nil, fmt.Errorf("combatant %s: %w", def.ID, err)
		}
		c.Actions = append(c.Actions, a)
	}
	return c, nil
}
