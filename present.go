package circlegarden

import "math"

// Presentation is what is drawn for a circle on a given tick. It is derived
// from the packed baseline and never written back to it.
type Presentation struct {
	Pos    Vec2
	Radius float64
	Color  Color
}

// Present returns the circle's baseline as a Presentation.
func (c Circle) Present() Presentation {
	return Presentation{Pos: c.Pos, Radius: c.Radius, Color: c.Color}
}

// Animate derives the animated presentation of c at t seconds since start.
// The radius pulses by ±12%, the center wobbles by up to 5px horizontally
// and 3px vertically, and saturation and lightness oscillate around the
// baseline color.
func Animate(c Circle, t float64) Presentation {
	r0 := c.Radius
	x0, y0 := c.Pos.X, c.Pos.Y

	hsl := c.Color.HSL()
	hsl.S = clamp(hsl.S+0.4*math.Sin(3*t), 0, 1)
	hsl.L = clamp(hsl.L+0.4*math.Sin(5*t), lightDriftMin, lightDriftMax)

	return Presentation{
		Pos: Vec2{
			X: x0 + 5*clamp01(math.Abs(math.Tan(0.7*x0*t))),
			Y: y0 + 3*clamp01(math.Abs(math.Sin(3.1*y0*t))),
		},
		Radius: r0 * (1 + 0.12*math.Sin(10*r0*t)),
		Color:  hsl.RGB(),
	}
}
