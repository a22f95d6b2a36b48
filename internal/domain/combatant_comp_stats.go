package domain

// StatsComponent holds the combat numbers and resources of a combatant.
type StatsComponent struct {
	HP        int `json:"hp" yaml:"hp"`
	MaxHP     int `json:"maxHp" yaml:"max_hp"`
	Energy    int `json:"energy" yaml:"energy"`
	MaxEnergy int `json:"maxEnergy" yaml:"max_energy"`

	// Speed is the current value (after modifiers); BaseSpeed breaks initiative ties.
	Speed     int `json:"speed" yaml:"speed"`
	BaseSpeed int `json:"baseSpeed" yaml:"base_speed"`

	Attack  int `json:"attack" yaml:"attack"`
	Defense int `json:"defense" yaml:"defense"`
	Magic   int `json:"magic" yaml:"magic"`

	Accuracy   float64 `json:"accuracy" yaml:"accuracy"`
	Evasion    float64 `json:"evasion" yaml:"evasion"`
	CritChance float64 `json:"critChance" yaml:"crit_chance"`

	// Mobility is the terrain cost a single move may pay.
	Mobility int `json:"mobility" yaml:"mobility"`

	IsDefeated bool `json:"isDefeated" yaml:"-"`
}

// TakeDamage applies damage. Returns true if this hit defeated the combatant.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDefeated {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	s.HP -= amount
	if s.HP <= 0 {
		s.HP = 0
		s.IsDefeated = true
		return true
	}
	return false
}

// Defeat knocks the combatant out regardless of HP (instant-defeat terrain).
func (s *StatsComponent) Defeat() bool {
	if s.IsDefeated {
		return false
	}
	s.HP = 0
	s.IsDefeated = true
	return true
}

// Heal restores HP up to MaxHP and returns the amount actually restored.
// Defeated combatants are not revived.
func (s *StatsComponent) Heal(amount int) int {
	if s.IsDefeated || amount <= 0 {
		return 0
	}
	before := s.HP
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	return s.HP - before
}

// HasEnergy checks whether the cost can be paid.
func (s *StatsComponent) HasEnergy(cost int) bool {
	return s.Energy >= cost
}

// SpendEnergy pays the cost. Returns false and spends nothing if it is not affordable.
func (s *StatsComponent) SpendEnergy(cost int) bool {
	if s.Energy < cost {
		return false
	}
	s.Energy -= cost
	return true
}

// GainEnergy adds energy up to MaxEnergy and returns the amount actually gained.
func (s *StatsComponent) GainEnergy(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.Energy
	s.Energy += amount
	if s.Energy > s.MaxEnergy {
		s.Energy = s.MaxEnergy
	}
	return s.Energy - before
}
