package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor handles #RRGGBB, #RGB, rgb(r,g,b) and tcell color names
// such as "navy" or "default".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"), ",")
		if len(parts) != 3 {
			return tcell.ColorDefault, fmt.Errorf("invalid rgb color %q", s)
		}
		var rgb [3]int32
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || v < 0 || v > 255 {
				return tcell.ColorDefault, fmt.Errorf("invalid rgb component %q in %q", part, s)
			}
			rgb[i] = int32(v)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil

	case s == "default":
		return tcell.ColorDefault, nil
	}

	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// Hex parses a color and falls back to the terminal default on error.
// Used for the built-in palettes where the input is known to be valid.
func Hex(s string) tcell.Color {
	c, err := ParseColor(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// Blend mixes two colors in Lab space; t=0 gives a, t=1 gives b
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if !a.Valid() || !b.Valid() || a == tcell.ColorDefault || b == tcell.ColorDefault {
		return a
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// Pair creates a style with specific foreground and background colors
func Pair(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}
