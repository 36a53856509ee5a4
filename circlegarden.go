package circlegarden

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default background of a scene.
var ColorBlack = Color{0, 0, 0, 1}

// Vec2 is a 2D vector used for circle centers and sprite offsets.
// Circle coordinates are centered on the origin of their packing area.
type Vec2 struct {
	X, Y float64
}

// HSL is a color in hue/saturation/lightness space. Hue is in degrees,
// saturation and lightness are in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String formats the color as "h/s/l".
func (c HSL) String() string {
	return fmt.Sprintf("%g/%g/%g", c.H, c.S, c.L)
}

// RGB converts c to an opaque Color.
func (c HSL) RGB() Color {
	return fromColorful(colorful.Hsl(c.H, c.S, c.L))
}

// HSL converts the RGB components of c to hue/saturation/lightness.
// Alpha is ignored.
func (c Color) HSL() HSL {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return HSL{H: h, S: s, L: l}
}

// ParseHexColor parses "#rrggbb" (or "rrggbb") into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Variant selects how a packed scene behaves after packing.
type Variant uint8

const (
	PackAndFreeze  Variant = iota + 1 // keep geometry, rotate colors among circles
	PackAndAnimate                    // per-frame radius, position and color animation
)

// String returns the variant's name.
func (v Variant) String() string {
	switch v {
	case PackAndFreeze:
		return "PackAndFreeze"
	case PackAndAnimate:
		return "PackAndAnimate"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant maps a variant name to its Variant. The names Circles1 and
// Circles2 are accepted as aliases of PackAndFreeze and PackAndAnimate.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "packandfreeze", "freeze", "circles1":
		return PackAndFreeze, nil
	case "packandanimate", "animate", "circles2":
		return PackAndAnimate, nil
	}
	return 0, fmt.Errorf("unknown scene variant %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if v != PackAndFreeze && v != PackAndAnimate {
		return nil, fmt.Errorf("unknown scene variant %d", uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
