package api

// --- ENGINE -> CONSUMER ---

// BattleView is the root object a presentation consumer receives: a full snapshot of the
// battlefield plus the log lines produced since the previous snapshot.
type BattleView struct {
	// Type is "UPDATE" while the battle runs and "RESULT" for the final snapshot.
	Type string `json:"type"`

	// Round is the current round number, starting at 1.
	Round int `json:"round"`

	// ActiveCombatantID is the combatant whose turn it is, if any.
	ActiveCombatantID string `json:"activeCombatantId,omitempty"`

	// Winner is set on the final snapshot: PLAYER, ENEMY or DRAW.
	Winner string `json:"winner,omitempty"`

	Grid *GridMeta `json:"grid,omitempty"`

	// Map lists all tiles, row-major, Player side first.
	Map []TileView `json:"map,omitempty"`

	// Combatants lists everyone still registered in the battle.
	Combatants []CombatantView `json:"combatants,omitempty"`

	// Logs are the outcome lines generated since the previous snapshot.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta holds the battlefield dimensions.
type GridMeta struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// TileView describes one tile.
type TileView struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Side string `json:"side"`

	Terrain string `json:"terrain"`

	// Surface is the kind of transient surface on the tile, if any.
	Surface      string `json:"surface,omitempty"`
	SurfaceTicks int    `json:"surfaceTicks,omitempty"`

	OccupantID string `json:"occupantId,omitempty"`
}

// CombatantView describes one combatant.
type CombatantView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Side     string   `json:"side"`
	Elements []string `json:"elements"`

	// Pos is absent for combatants no longer on the field.
	Pos *PositionView `json:"pos,omitempty"`

	Stats *StatsView `json:"stats,omitempty"`
}

type PositionView struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StatsView holds the stats a consumer may display.
type StatsView struct {
	HP         int  `json:"hp"`
	MaxHP      int  `json:"maxHp"`
	Energy     int  `json:"energy"`
	MaxEnergy  int  `json:"maxEnergy"`
	Speed      int  `json:"speed"`
	IsDefeated bool `json:"isDefeated"`
}

// LogEntry is one human-readable outcome line.
type LogEntry struct {
	ID    string `json:"id"`
	Round int    `json:"round"`
	Text  string `json:"text"`
	Type  string `json:"type"` // INFO, COMBAT, MOVE, HAZARD, ERROR
}
