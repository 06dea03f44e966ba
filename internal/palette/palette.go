// Package palette defines the fixed set of background colors the switcher offers.
package palette

import (
	"errors"
	"strings"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is one of the named background colors.
type Color string

const (
	Red     Color = "red"
	Green   Color = "green"
	Blue    Color = "blue"
	Yellow  Color = "yellow"
	Crimson Color = "crimson"
	Cyan    Color = "cyan"
	Grey    Color = "grey"
	Brown   Color = "brown"
	Black   Color = "black"
	Olive   Color = "olive"

	Default = Olive
)

// Button order.
var all = []Color{Red, Green, Blue, Yellow, Crimson, Cyan, Grey, Brown, Black, Olive}

// CSS named-color values.
var hex = map[Color]string{
	Red:     "#FF0000",
	Green:   "#008000",
	Blue:    "#0000FF",
	Yellow:  "#FFFF00",
	Crimson: "#DC143C",
	Cyan:    "#00FFFF",
	Grey:    "#808080",
	Brown:   "#A52A2A",
	Black:   "#000000",
	Olive:   "#808000",
}

// All returns the colors in button order.
func All() []Color {
	out := make([]Color, len(all))
	copy(out, all)
	return out
}

// Parse resolves a color name, ignoring case and surrounding whitespace.
func Parse(name string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", ErrUnknownColor
	}
	return c, nil
}

// Valid reports whether c is one of the ten palette colors.
func (c Color) Valid() bool {
	_, ok := hex[c]
	return ok
}

func (c Color) String() string {
	return string(c)
}

// Label is the button caption: the name with its first letter upper-cased.
func (c Color) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Hex returns the #RRGGBB value of c, or "" for an invalid color.
func (c Color) Hex() string {
	return hex[c]
}

// Light reports whether dark text reads better than white text on c.
func (c Color) Light() bool {
	switch c {
	case Yellow, Cyan:
		return true
	default:
		return false
	}
}

// Index returns the position of c in button order, or -1.
func Index(c Color) int {
	for i, v := range all {
		if v == c {
			return i
		}
	}
	return -1
}
