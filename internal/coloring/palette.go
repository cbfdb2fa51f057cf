package coloring

import (
	"fmt"
	"strings"
)

// Color is a region color. The zero value means "not colored".
type Color uint8

const (
	NoColor Color = iota
	Red
	Green
	Blue
	Yellow
	Purple
	Orange
	Cyan
	Magenta
)

var colorNames = [...]string{
	NoColor: "none",
	Red:     "red",
	Green:   "green",
	Blue:    "blue",
	Yellow:  "yellow",
	Purple:  "purple",
	Orange:  "orange",
	Cyan:    "cyan",
	Magenta: "magenta",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Char returns a single letter for ASCII rendering.
func (c Color) Char() rune {
	if c == NoColor || int(c) >= len(colorNames) {
		return '.'
	}
	return rune(strings.ToUpper(colorNames[c])[0])
}

// Valid reports whether c is a real color (not NoColor).
func (c Color) Valid() bool {
	return c > NoColor && int(c) < len(colorNames)
}

// AllColors returns every known color in declaration order.
func AllColors() []Color {
	out := make([]Color, 0, len(colorNames)-1)
	for c := Red; int(c) < len(colorNames); c++ {
		out = append(out, c)
	}
	return out
}

// ParseColor converts a name or its initial to a Color.
// Every color has a unique initial.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NoColor, false
	}
	for _, c := range AllColors() {
		name := c.String()
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return c, true
		}
	}
	return NoColor, false
}

// Palette is the ordered set of colors a game is played with.
// Its order is the order in which the computer tries colors.
type Palette []Color

// DefaultPalette returns the classic four-color palette.
func DefaultPalette() Palette {
	return Palette{Red, Green, Blue, Yellow}
}

// ParsePalette converts color names into a palette.
func ParsePalette(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, name := range names {
		c, ok := ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		if p.Contains(c) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColor, c)
		}
		p = append(p, c)
	}
	return p, nil
}

// Contains reports whether c is part of the palette.
func (p Palette) Contains(c Color) bool {
	return p.Index(c) >= 0
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// Names returns the color names in palette order.
func (p Palette) Names() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.String()
	}
	return out
}
