package systems

import (
	"errors"
	"fmt"

	"github.com/misterlister/Creature-Summoner-sub000/internal/domain"
)

var ErrBadShapeParams = errors.New("invalid aoe shape parameters")

// AOEGenerator expands a primary target into the full affected footprint.
// Footprints never leave the primary target's side; off-grid offsets are dropped.
type AOEGenerator struct {
	field *domain.Battlefield
}

func NewAOEGenerator(field *domain.Battlefield) *AOEGenerator {
	return &AOEGenerator{field: field}
}

// Expand returns the deduplicated footprint, primary target first.
// attacker is the acting side and defines "forward" for Line, Cone, Rect and Field.
func (g *AOEGenerator) Expand(primary *domain.Tile, shape domain.Shape, align domain.Alignment, attacker domain.Side) ([]*domain.Tile, error) {
	if primary == nil {
		return nil, nil
	}
	if shape.Width < 0 || shape.Depth < 0 {
		return nil, fmt.Errorf("%w: %s width=%d depth=%d", ErrBadShapeParams, shape.Kind, shape.Width, shape.Depth)
	}

	fp := newFootprint(g.field, primary)
	fwd := attacker.Forward()
	origin := primary.Pos

	switch shape.Kind {
	case domain.ShapeSingle:
	case domain.ShapeLine:
		for i := 1; i < shape.Width; i++ {
			fp.add(origin.Shift(0, i*fwd))
		}
	case domain.ShapeArc:
		for _, dr := range rowSpread(shape.Width, align) {
			fp.add(origin.Shift(dr, 0))
		}
	case domain.ShapeCone:
		for d := 1; d <= shape.Depth; d++ {
			w := coneWidth(shape.Width, shape.Depth, d)
			for _, dr := range rowSpread(w, align) {
				fp.add(origin.Shift(dr, d*fwd))
			}
		}
	case domain.ShapeRect:
		// Historical footprint: the target's rows plus the single tile behind it.
		for _, dr := range rowSpread(shape.Width, align) {
			fp.add(origin.Shift(dr, 0))
		}
		fp.add(origin.Shift(0, fwd))
	case domain.ShapeField:
		depth := shape.Depth
		if depth < 1 {
			depth = 1
		}
		for d := 0; d < depth; d++ {
			for _, dr := range rowSpread(shape.Width, align) {
				fp.add(origin.Shift(dr, d*fwd))
			}
		}
	case domain.ShapeBurst:
		r := shape.Width
		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				if abs(dr)+abs(dc) <= r {
					fp.add(origin.Shift(dr, dc))
				}
			}
		}
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownShape, shape.Kind)
	}
	return fp.tiles, nil
}

// rowSpread returns row offsets for a band of the given width centred on row 0.
// For even widths the alignment picks the side that takes the extra row.
func rowSpread(width int, align domain.Alignment) []int {
	if width < 1 {
		width = 1
	}
	extra := width - 1
	up, down := extra/2, extra/2
	if extra%2 == 1 {
		if align == domain.AlignUp {
			up++
		} else {
			down++
		}
	}
	out := make([]int, 0, width)
	for dr := -up; dr <= down; dr++ {
		out = append(out, dr)
	}
	return out
}

// coneWidth interpolates linearly from 1 at the target to width at the last step, rounding half up.
func coneWidth(width, depth, step int) int {
	if width <= 1 || depth <= 0 {
		return 1
	}
	return 1 + ((width-1)*step*2+depth)/(2*depth)
}

type footprint struct {
	field *domain.Battlefield
	side  domain.Side
	seen  map[domain.UnifiedPosition]bool
	tiles []*domain.Tile
}

func newFootprint(field *domain.Battlefield, primary *domain.Tile) *footprint {
	fp := &footprint{
		field: field,
		side:  primary.Side,
		seen:  map[domain.UnifiedPosition]bool{primary.Pos: true},
		tiles: []*domain.Tile{primary},
	}
	return fp
}

func (f *footprint) add(p domain.UnifiedPosition) {
	if !p.IsValid() || p.Side() != f.side || f.seen[p] {
		return
	}
	if t := f.field.Tile(p); t != nil {
		f.seen[p] = true
		f.tiles = append(f.tiles, t)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
