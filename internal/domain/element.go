package domain

import (
	"fmt"
	"strings"
)

// Element is the elemental affinity of actions and combatants.
type Element uint8

const (
	ElementNeutral Element = iota
	ElementFire
	ElementWater
	ElementAir
	ElementEarth
	ElementPlant
	ElementElectric
	ElementMetal

	elementCount
)

var elementToString = map[Element]string{
	ElementNeutral:  "NEUTRAL",
	ElementFire:     "FIRE",
	ElementWater:    "WATER",
	ElementAir:      "AIR",
	ElementEarth:    "EARTH",
	ElementPlant:    "PLANT",
	ElementElectric: "ELECTRIC",
	ElementMetal:    "METAL",
}

var elementStringToElement = map[string]Element{
	"NEUTRAL":  ElementNeutral,
	"FIRE":     ElementFire,
	"WATER":    ElementWater,
	"AIR":      ElementAir,
	"EARTH":    ElementEarth,
	"PLANT":    ElementPlant,
	"ELECTRIC": ElementElectric,
	"METAL":    ElementMetal,
}

// ElementCount is the number of defined elements.
func ElementCount() int { return int(elementCount) }

func (e Element) String() string {
	if val, ok := elementToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseElement converts a content string into an Element (case-insensitive).
func ParseElement(s string) (Element, error) {
	if val, ok := elementStringToElement[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return ElementNeutral, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}
