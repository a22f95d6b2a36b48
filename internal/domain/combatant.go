package domain

import "fmt"

// Combatant is a creature taking part in a battle. Combatants are owned by the
// battle's registry; tiles only hold references to them.
type Combatant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Side Side   `json:"side"`

	// One or two elemental affinities.
	Elements []Element `json:"elements"`

	Stats   *StatsComponent     `json:"stats"`
	Actions []*ActionDescriptor `json:"-"`

	// Trait handlers owned by this combatant.
	Hooks TraitHooks `json:"-"`
}

// NewCombatant validates the element list and returns a combatant with fresh stats.
func NewCombatant(id, name string, side Side, elements []Element, stats StatsComponent) (*Combatant, error) {
	if len(elements) > 2 {
		return nil, fmt.Errorf("%s: %w", id, ErrTooManyElements)
	}
	if len(elements) == 0 {
		elements = []Element{ElementNeutral}
	}
	if stats.BaseSpeed == 0 {
		stats.BaseSpeed = stats.Speed
	}
	s := stats
	return &Combatant{
		ID:       id,
		Name:     name,
		Side:     side,
		Elements: append([]Element(nil), elements...),
		Stats:    &s,
	}, nil
}

// IsDefeated reports whether the combatant is out of the fight. A combatant without stats is never defeated.
func (c *Combatant) IsDefeated() bool {
	return c != nil && c.Stats != nil && c.Stats.IsDefeated
}

// HasElement reports whether the combatant carries the element.
func (c *Combatant) HasElement(e Element) bool {
	for _, own := range c.Elements {
		if own == e {
			return true
		}
	}
	return false
}

// IsDualElement reports whether the combatant carries two distinct elements.
func (c *Combatant) IsDualElement() bool {
	return len(c.Elements) == 2 && c.Elements[0] != c.Elements[1]
}

// Action looks up one of the combatant's actions by ID.
func (c *Combatant) Action(id string) *ActionDescriptor {
	for _, a := range c.Actions {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (c *Combatant) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", c.Name, c.ID)
}
