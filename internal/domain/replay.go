package domain

// ReplayAction is one recorded turn decision.
type ReplayAction struct {
	Round   int     `json:"round"`
	Actor   string  `json:"actor"`
	Command Command `json:"command"`
}

// ReplaySession is the full record of a battle: the scenario, the seed that drove every
// roll, and each decision in the order it was made. Replaying the decisions against the
// same scenario and seed reproduces the battle exactly.
type ReplaySession struct {
	Scenario  string         `json:"scenario"`
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
