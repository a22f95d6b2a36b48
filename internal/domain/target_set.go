package domain

// TargetSet is an insertion-ordered set of tiles. Order carries no meaning.
type TargetSet struct {
	tiles []*Tile
	index map[UnifiedPosition]struct{}
}

func NewTargetSet() *TargetSet {
	return &TargetSet{index: make(map[UnifiedPosition]struct{})}
}

// Add inserts the tile unless it is nil or already present. Returns true if added.
func (s *TargetSet) Add(t *Tile) bool {
	if t == nil {
		return false
	}
	if s.index == nil {
		s.index = make(map[UnifiedPosition]struct{})
	}
	if _, ok := s.index[t.Pos]; ok {
		return false
	}
	s.index[t.Pos] = struct{}{}
	s.tiles = append(s.tiles, t)
	return true
}

func (s *TargetSet) Contains(p UnifiedPosition) bool {
	_, ok := s.index[p]
	return ok
}

func (s *TargetSet) Len() int {
	return len(s.tiles)
}

// Tiles returns a copy of the members in insertion order.
func (s *TargetSet) Tiles() []*Tile {
	out := make([]*Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Positions lists member positions in insertion order.
func (s *TargetSet) Positions() []UnifiedPosition {
	out := make([]UnifiedPosition, 0, len(s.tiles))
	for _, t := range s.tiles {
		out = append(out, t.Pos)
	}
	return out
}

// Filter returns a new set with the members satisfying keep.
func (s *TargetSet) Filter(keep func(*Tile) bool) *TargetSet {
	out := NewTargetSet()
	for _, t := range s.tiles {
		if keep(t) {
			out.Add(t)
		}
	}
	return out
}
