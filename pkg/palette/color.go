// Package palette defines the RGBA colors attached to categories and sub
// tags, plus the preset palette offered when a new category is created.
package palette

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a semantic RGBA color with components in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Unassigned is returned for categories that have no registered color.
var Unassigned = RGB(0.557, 0.557, 0.576)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex renders the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c Color) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s@%.2f", c.Hex(), c.A)
}

// Light reports whether dark text reads better on top of the color.
func (c Color) Light() bool {
	l, _, _ := c.colorful().Clamped().Lab()
	return l > 0.6
}

// Blend mixes c toward other by t in Lab space, keeping c's alpha.
func (c Color) Blend(other Color, t float64) Color {
	mixed := c.colorful().BlendLab(other.colorful(), t).Clamped()
	return Color{R: mixed.R, G: mixed.G, B: mixed.B, A: c.A}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// ParseHex accepts #rgb or #rrggbb, with or without the leading #.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("palette: empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("palette: invalid hex color %q: %w", s, err)
	}
	return RGB(cc.R, cc.G, cc.B), nil
}

// Lookup resolves a user supplied color: an index into Presets, a preset
// name, or a hex value.
func Lookup(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i >= len(Presets) {
			return Color{}, fmt.Errorf("palette: preset %d out of range [0,%d)", i, len(Presets))
		}
		return Presets[i].Color, nil
	}
	for _, p := range Presets {
		if p.Name != "" && strings.EqualFold(p.Name, s) {
			return p.Color, nil
		}
	}
	return ParseHex(s)
}

// UnmarshalJSON treats a missing alpha as opaque so hand written documents
// like {"r":1,"g":0,"b":0} load as visible colors.
func (c *Color) UnmarshalJSON(b []byte) error {
	var raw struct {
		R float64  `json:"r"`
		G float64  `json:"g"`
		B float64  `json:"b"`
		A *float64 `json:"a"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.R, c.G, c.B, c.A = raw.R, raw.G, raw.B, 1
	if raw.A != nil {
		c.A = *raw.A
	}
	return nil
}
