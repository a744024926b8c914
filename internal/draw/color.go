package draw

import (
	"fmt"
	"strconv"
)

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// ParseColor parses a hex color string of the form #rgb, #rrggbb or
// #rrggbbaa. Alpha defaults to fully opaque.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q: missing '#' prefix", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, err := parseChannel(hex[0:1] + hex[0:1])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		g, err := parseChannel(hex[1:2] + hex[1:2])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		b, err := parseChannel(hex[2:3] + hex[2:3])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color{R: r, G: g, B: b, A: 1}, nil
	case 6, 8:
		r, err := parseChannel(hex[0:2])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		g, err := parseChannel(hex[2:4])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		b, err := parseChannel(hex[4:6])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		a := 1.0
		if len(hex) == 8 {
			a, err = parseChannel(hex[6:8])
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
}

func parseChannel(hex string) (float64, error) {
	v, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad hex channel %q", hex)
	}
	return float64(v) / 255.0, nil
}

// String renders the color back as #rrggbb, or #rrggbbaa when not fully
// opaque.
func (c Color) String() string {
	r := uint8(clamp01(c.R)*255 + 0.5)
	g := uint8(clamp01(c.G)*255 + 0.5)
	b := uint8(clamp01(c.B)*255 + 0.5)
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	a := uint8(clamp01(c.A)*255 + 0.5)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
