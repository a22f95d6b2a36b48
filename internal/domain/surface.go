package domain

// Surface is a transient effect lying on a tile (burning grass, a frozen puddle).
type Surface struct {
	Kind      string  `json:"kind"`
	Element   Element `json:"element"`
	Remaining int     `json:"remaining"`
	Hazard    int     `json:"hazard"`
}

// NewSurface builds a surface from an action's surface definition.
func NewSurface(def SurfaceSpec) *Surface {
	return &Surface{
		Kind:      def.Kind,
		Element:   def.Element,
		Remaining: def.Ticks,
		Hazard:    def.Hazard,
	}
}

// Tick advances the surface by one tick. Returns true once it has expired.
func (s *Surface) Tick() bool {
	s.Remaining--
	return s.Remaining <= 0
}

// HazardFor returns the damage the surface deals to the occupant.
// Combatants sharing the surface's element are unaffected.
func (s *Surface) HazardFor(c *Combatant) int {
	if s == nil || s.Hazard <= 0 {
		return 0
	}
	if c != nil && s.Element != ElementNeutral && c.HasElement(s.Element) {
		return 0
	}
	return s.Hazard
}
