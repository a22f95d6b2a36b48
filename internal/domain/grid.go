package domain

// Grid is the 3×3 tile array of one side. It knows nothing about the other side.
type Grid struct {
	Side  Side
	tiles [Rows][SideCols]*Tile
}

// NewGrid creates a grid of plain tiles for the side.
func NewGrid(side Side) *Grid {
	g := &Grid{Side: side}
	for r := 0; r < Rows; r++ {
		for c := 0; c < SideCols; c++ {
			g.tiles[r][c] = &Tile{
				Pos:  FromSideLocal(side, SidePosition{Row: r, Col: c}),
				Side: side,
			}
		}
	}
	return g
}

// Tile returns the tile at the local position, or nil when out of range.
func (g *Grid) Tile(p SidePosition) *Tile {
	if !p.IsValid() {
		return nil
	}
	return g.tiles[p.Row][p.Col]
}

// Tiles returns all nine tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, 0, Rows*SideCols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < SideCols; c++ {
			out = append(out, g.tiles[r][c])
		}
	}
	return out
}

func (g *Grid) OccupiedTiles() []*Tile {
	return g.filter(func(t *Tile) bool { return t.IsOccupied() })
}

func (g *Grid) EmptyTiles() []*Tile {
	return g.filter(func(t *Tile) bool { return !t.IsOccupied() })
}

// Row returns the tiles of a row ordered by local column; nil when out of range.
func (g *Grid) Row(r int) []*Tile {
	if r < 0 || r >= Rows {
		return nil
	}
	out := make([]*Tile, SideCols)
	copy(out, g.tiles[r][:])
	return out
}

// Column returns the tiles of a local column ordered by row; nil when out of range.
func (g *Grid) Column(c int) []*Tile {
	if c < 0 || c >= SideCols {
		return nil
	}
	out := make([]*Tile, 0, Rows)
	for r := 0; r < Rows; r++ {
		out = append(out, g.tiles[r][c])
	}
	return out
}

// Adjacent returns the 8-directional neighbours inside this grid.
func (g *Grid) Adjacent(p SidePosition) []*Tile {
	if !p.IsValid() {
		return nil
	}
	var out []*Tile
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if t := g.Tile(SidePosition{Row: p.Row + dr, Col: p.Col + dc}); t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Combatants returns the occupants in row-major order.
func (g *Grid) Combatants() []*Combatant {
	var out []*Combatant
	for _, t := range g.Tiles() {
		if c := t.Occupant(); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (g *Grid) filter(keep func(*Tile) bool) []*Tile {
	var out []*Tile
	for _, t := range g.Tiles() {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
