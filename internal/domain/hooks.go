package domain

// ActionEvent wraps an action about to be (or just) resolved.
type ActionEvent struct {
	Actor   *Combatant
	Action  *ActionDescriptor
	Targets []*Tile
	Prevent bool
}

// DamageEvent is the mutable payload around a damage commit. Handlers may rewrite
// Amount or Multiplier, or set Prevent; the resolver re-reads all three.
type DamageEvent struct {
	Source     *Combatant
	Target     *Combatant
	Action     *ActionDescriptor
	Amount     int
	Multiplier float64
	Crit       bool
	Glance     bool
	Prevent    bool

	// Dealt is filled in for the After notification.
	Dealt int
}

// HealEvent is the mutable payload around a heal commit.
type HealEvent struct {
	Source     *Combatant
	Target     *Combatant
	Action     *ActionDescriptor
	Amount     int
	Multiplier float64
	Crit       bool
	Prevent    bool

	Healed int
}

// DefeatEvent is emitted once when a combatant is newly defeated.
type DefeatEvent struct {
	Source *Combatant
	Target *Combatant
	Cause  string
}

// MoveEvent wraps a same-side reposition.
type MoveEvent struct {
	Mover   *Combatant
	From    UnifiedPosition
	To      UnifiedPosition
	Prevent bool
}

// TurnEvent marks the start or end of a combatant's turn.
type TurnEvent struct {
	Actor *Combatant
	Round int
}

// TraitHooks is the owner-scoped handler list of one combatant. The resolver calls
// these directly for the combatants involved; there is no global broadcast.
type TraitHooks struct {
	BeforeAction []func(*ActionEvent)
	AfterAction  []func(*ActionEvent)
	BeforeDamage []func(*DamageEvent)
	AfterDamage  []func(*DamageEvent)
	BeforeHeal   []func(*HealEvent)
	AfterHeal    []func(*HealEvent)
	OnDefeat     []func(*DefeatEvent)
	BeforeMove   []func(*MoveEvent)
	AfterMove    []func(*MoveEvent)
	TurnStart    []func(*TurnEvent)
	TurnEnd      []func(*TurnEvent)
}

// notify runs the handlers of each owner in order, skipping nil owners and duplicates.
func notify[E any](ev *E, pick func(*TraitHooks) []func(*E), owners ...*Combatant) {
	for i, owner := range owners {
		if owner == nil || seenBefore(owners[:i], owner) {
			continue
		}
		for _, fn := range pick(&owner.Hooks) {
			fn(ev)
		}
	}
}

func seenBefore(list []*Combatant, c *Combatant) bool {
	for _, o := range list {
		if o == c {
			return true
		}
	}
	return false
}

func NotifyBeforeAction(ev *ActionEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*ActionEvent) { return h.BeforeAction }, owners...)
}

func NotifyAfterAction(ev *ActionEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*ActionEvent) { return h.AfterAction }, owners...)
}

func NotifyBeforeDamage(ev *DamageEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*DamageEvent) { return h.BeforeDamage }, owners...)
}

func NotifyAfterDamage(ev *DamageEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*DamageEvent) { return h.AfterDamage }, owners...)
}

func NotifyBeforeHeal(ev *HealEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*HealEvent) { return h.BeforeHeal }, owners...)
}

func NotifyAfterHeal(ev *HealEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*HealEvent) { return h.AfterHeal }, owners...)
}

func NotifyDefeat(ev *DefeatEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*DefeatEvent) { return h.OnDefeat }, owners...)
}

func NotifyBeforeMove(ev *MoveEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*MoveEvent) { return h.BeforeMove }, owners...)
}

func NotifyAfterMove(ev *MoveEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*MoveEvent) { return h.AfterMove }, owners...)
}

func NotifyTurnStart(ev *TurnEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*TurnEvent) { return h.TurnStart }, owners...)
}

func NotifyTurnEnd(ev *TurnEvent, owners ...*Combatant) {
	notify(ev, func(h *TraitHooks) []func(*TurnEvent) { return h.TurnEnd }, owners...)
}
