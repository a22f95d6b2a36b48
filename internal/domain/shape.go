package domain

import (
	"fmt"
	"strings"
)

// ShapeKind tags an area-of-effect footprint.
type ShapeKind uint8

const (
	ShapeSingle ShapeKind = iota
	ShapeLine
	ShapeArc
	ShapeCone
	ShapeRect
	ShapeField
	ShapeBurst
)

var shapeToString = map[ShapeKind]string{
	ShapeSingle: "SINGLE",
	ShapeLine:   "LINE",
	ShapeArc:    "ARC",
	ShapeCone:   "CONE",
	ShapeRect:   "RECT",
	ShapeField:  "FIELD",
	ShapeBurst:  "BURST",
}

var shapeStringToShape = map[string]ShapeKind{
	"SINGLE": ShapeSingle,
	"LINE":   ShapeLine,
	"ARC":    ShapeArc,
	"CONE":   ShapeCone,
	"RECT":   ShapeRect,
	"SQUARE": ShapeRect,
	"FIELD":  ShapeField,
	"BURST":  ShapeBurst,
}

func (s ShapeKind) String() string {
	if val, ok := shapeToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseShape(s string) (ShapeKind, error) {
	if val, ok := shapeStringToShape[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return ShapeSingle, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Shape is a shape tag plus its parameters.
//
//	Line:  Width is the length.
//	Arc:   Width rows centred on the target.
//	Cone:  Width at the far end, Depth columns forward.
//	Rect:  Width rows plus the tile behind the target.
//	Field: Width rows by Depth columns starting at the target.
//	Burst: Width is the Manhattan radius.
type Shape struct {
	Kind  ShapeKind
	Width int
	Depth int
}

// Alignment resolves even widths: which side of the centre row absorbs the extra row.
type Alignment uint8

const (
	AlignUp Alignment = iota
	AlignDown
)

func (a Alignment) String() string {
	if a == AlignDown {
		return "DOWN"
	}
	return "UP"
}

// ParseAlignment accepts "up"/"down"; anything else is AlignUp.
func ParseAlignment(s string) Alignment {
	if strings.EqualFold(s, "down") {
		return AlignDown
	}
	return AlignUp
}
