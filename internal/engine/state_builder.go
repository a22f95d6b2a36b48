package engine

import (
	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
	"github.com/misterlister/Creature-Summoner-sub000/pkg/api"
)

// BuildState creates a snapshot of the battle for a presentation consumer.
func (b *Battle) BuildState(viewType string) *api.BattleView {
	view := &api.BattleView{
		Type:   viewType,
		Round:  b.Scheduler.Round(),
		Winner: b.Winner(),
		Grid:   &api.GridMeta{Rows: domain.Rows, Cols: domain.TotalCols},
		Logs:   append([]api.LogEntry(nil), b.Logs...),
	}
	if b.active != nil {
		view.ActiveCombatantID = b.active.ID
	}

	for _, t := range b.Field.Tiles() {
		tv := api.TileView{
			Row:     t.Pos.Row,
			Col:     t.Pos.Col,
			Side:    t.Side.String(),
			Terrain: domain.TerrainPlain.String(),
		}
		if t.Terrain != nil {
			tv.Terrain = t.Terrain.Kind.String()
		}
		if t.Surface != nil {
			tv.Surface = t.Surface.Kind
			tv.SurfaceTicks = t.Surface.Remaining
		}
		if occ := t.Occupant(); occ != nil {
			tv.OccupantID = occ.ID
		}
		view.Map = append(view.Map, tv)
	}

	for _, c := range b.Combatants {
		view.Combatants = append(view.Combatants, combatantView(b.Field, c))
	}
	return view
}

// FlushState builds a snapshot and clears the log lines it carried.
func (b *Battle) FlushState(viewType string) *api.BattleView {
	view := b.BuildState(viewType)
	b.Logs = []api.LogEntry{}
	return view
}

func combatantView(field *domain.Battlefield, c *domain.Combatant) api.CombatantView {
	cv := api.CombatantView{
		ID:   c.ID,
		Name: c.Name,
		Side: c.Side.String(),
	}
	for _, e := range c.Elements {
		cv.Elements = append(cv.Elements, e.String())
	}
	if p, ok := field.Locate(c); ok {
		cv.Pos = &api.PositionView{Row: p.Row, Col: p.Col}
	}
	if s := c.Stats; s != nil {
		cv.Stats = &api.StatsView{
			HP:         s.HP,
			MaxHP:      s.MaxHP,
			Energy:     s.Energy,
			MaxEnergy:  s.MaxEnergy,
			Speed:      s.Speed,
			IsDefeated: s.IsDefeated,
		}
	}
	return cv
}
