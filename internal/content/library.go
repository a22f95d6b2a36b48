package content

import (
	"fmt"
	"strings"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/internal/systems"
)

// Library is the validated, immutable content a battle is built from.
type Library struct {
	Chart   *systems.ElementChart
	Terrain map[domain.TerrainKind]domain.Terrain
	Actions map[string]*domain.ActionDescriptor
}

// NewLibrary validates decoded content. Every unknown name is an error.
func NewLibrary(ec *ElementsConfig, tc *TerrainConfig, ac *ActionsConfig) (*Library, error) {
	chart, err := buildChart(ec)
	if err != nil {
		return nil, err
	}
	terrain, err := buildTerrain(tc)
	if err != nil {
		return nil, err
	}
	lib := &Library{
		Chart:   chart,
		Terrain: terrain,
		Actions: make(map[string]*domain.ActionDescriptor, len(ac.Actions)),
	}
	for _, def := range ac.Actions {
		a, err := buildAction(def)
		if err != nil {
			return nil, err
		}
		if _, dup := lib.Actions[a.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAction, a.ID)
		}
		lib.Actions[a.ID] = a
	}
	return lib, nil
}

// Action returns a loaded action by id.
func (l *Library) Action(id string) (*domain.ActionDescriptor, error) {
	if a, ok := l.Actions[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, id)
}

// TerrainFor returns a fresh copy of the rules for a kind.
func (l *Library) TerrainFor(kind domain.TerrainKind) *domain.Terrain {
	t, ok := l.Terrain[kind]
	if !ok {
		t = domain.DefaultTerrain(kind)
	}
	return &t
}

func buildChart(ec *ElementsConfig) (*systems.ElementChart, error) {
	if ec == nil || len(ec.Interactions) == 0 {
		chart := systems.DefaultElementChart()
		if ec != nil {
			if err := applyTiers(chart, ec.Tiers); err != nil {
				return nil, err
			}
		}
		return chart, nil
	}

	chart := systems.NewElementChart()
	for _, in := range ec.Interactions {
		attack, err := domain.ParseElement(in.Attack)
		if err != nil {
			return nil, err
		}
		if err := setInteractions(chart, attack, in.Strong, 1); err != nil {
			return nil, err
		}
		if err := setInteractions(chart, attack, in.Weak, -1); err != nil {
			return nil, err
		}
	}
	if err := applyTiers(chart, ec.Tiers); err != nil {
		return nil, err
	}
	return chart, nil
}

func setInteractions(chart *systems.ElementChart, attack domain.Element, defenders []string, score int) error {
	for _, name := range defenders {
		defend, err := domain.ParseElement(name)
		if err != nil {
			return fmt.Errorf("%s: %w", attack, err)
		}
		if err := chart.Set(attack, defend, score); err != nil {
			return err
		}
	}
	return nil
}

func applyTiers(chart *systems.ElementChart, tiers map[string]float64) error {
	for name, m := range tiers {
		tier, ok := systems.ParseTier(strings.ToUpper(name))
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTier, name)
		}
		if m < 0 {
			return fmt.Errorf("tier %s: negative multiplier %v", name, m)
		}
		chart.SetMultiplier(tier, m)
	}
	return nil
}

func buildTerrain(tc *TerrainConfig) (map[domain.TerrainKind]domain.Terrain, error) {
	out := make(map[domain.TerrainKind]domain.Terrain)
	if tc == nil {
		return out, nil
	}
	for _, def := range tc.Terrain {
		kind, err := domain.ParseTerrain(def.Kind)
		if err != nil {
			return nil, err
		}
		if def.RangedDefense < 0 || def.RangedDefense > 1 {
			return nil, fmt.Errorf("terrain %s: ranged_defense %v outside [0, 1]", def.Kind, def.RangedDefense)
		}
		out[kind] = domain.Terrain{
			Kind:          kind,
			MoveCost:      def.MoveCost,
			RangedDefense: def.RangedDefense,
			Hazard:        def.Hazard,
			InstantDefeat: def.InstantDefeat,
			Impassable:    def.Impassable,
		}
	}
	return out, nil
}

func buildAction(def ActionDef) (*domain.ActionDescriptor, error) {
	if def.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidAction)
	}
	fail := func(err error) (*domain.ActionDescriptor, error) {
		return nil, fmt.Errorf("action %s: %w", def.ID, err)
	}

	a := &domain.ActionDescriptor{
		ID:           def.ID,
		Name:         def.Name,
		Power:        def.Power,
		Accuracy:     def.Accuracy,
		CritModifier: def.CritModifier,
	}
	if a.Name == "" {
		a.Name = def.ID
	}

	var err error
	if def.Element != "" {
		if a.Element, err = domain.ParseElement(def.Element); err != nil {
			return fail(err)
		}
	}
	if a.Reach, err = domain.ParseReach(def.Reach); err != nil {
		return fail(err)
	}
	if a.Relation, err = domain.ParseRelation(def.Target); err != nil {
		return fail(err)
	}
	if def.Role != "" {
		if a.Role, err = domain.ParseRole(def.Role); err != nil {
			return fail(err)
		}
	}

	a.Shape = domain.Shape{Kind: domain.ShapeSingle, Width: def.Shape.Width, Depth: def.Shape.Depth}
	if def.Shape.Kind != "" {
		if a.Shape.Kind, err = domain.ParseShape(def.Shape.Kind); err != nil {
			return fail(err)
		}
	}

	if err := validateShape(a.Shape); err != nil {
		return fail(err)
	}

	a.Energy = domain.Energy{Category: domain.EnergyBasic, Cost: def.Energy.Cost, Gain: def.Energy.Gain}
	if def.Energy.Category != "" {
		if a.Energy.Category, err = domain.ParseCategory(def.Energy.Category); err != nil {
			return fail(err)
		}
	}
	if a.Energy.Cost < 0 || a.Energy.Gain < 0 {
		return fail(fmt.Errorf("%w: negative energy", ErrInvalidAction))
	}
	if a.Accuracy < 0 || a.Accuracy > 1 {
		return fail(fmt.Errorf("%w: accuracy %v outside [0, 1]", ErrInvalidAction, a.Accuracy))
	}
	if a.Power < 0 {
		return fail(fmt.Errorf("%w: negative power", ErrInvalidAction))
	}

	if s := def.Surface; s != nil {
		surface := domain.SurfaceSpec{Kind: s.Kind, Ticks: s.Ticks, Hazard: s.Hazard}
		if s.Element != "" {
			if surface.Element, err = domain.ParseElement(s.Element); err != nil {
				return fail(err)
			}
		}
		if surface.Kind == "" || surface.Ticks < 1 {
			return fail(fmt.Errorf("%w: surface needs a kind and at least one tick", ErrInvalidAction))
		}
		a.Surface = &surface
	}
	return a, nil
}

// validateShape rejects parameters that would silently collapse a footprint.
func validateShape(sh domain.Shape) error {
	if sh.Width < 0 || sh.Depth < 0 {
		return fmt.Errorf("%w: %s width=%d depth=%d", ErrInvalidAction, sh.Kind, sh.Width, sh.Depth)
	}
	switch sh.Kind {
	case domain.ShapeSingle:
	case domain.ShapeCone:
		if sh.Width < 1 || sh.Depth < 1 {
			return fmt.Errorf("%w: cone needs width and depth of at least 1", ErrInvalidAction)
		}
	default:
		if sh.Width < 1 {
			return fmt.Errorf("%w: %s needs a width of at least 1", ErrInvalidAction, sh.Kind)
		}
	}
	return nil
}
