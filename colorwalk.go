package circlegarden

import "math/rand/v2"

// Walk bounds for ColorWalk.
const (
	hueJumpMax    = 30.0 // degrees; HueJump draws from [0, hueJumpMax)
	satDriftStep  = 0.01
	lightDriftMin = 0.3
	lightDriftMax = 0.9
	lightDrift    = 0.05
)

// ColorWalk is a random walk through HSL space that produces the fill color
// of successive circles. Each scene owns its own walk.
type ColorWalk struct {
	hsl HSL
	rng *rand.Rand
}

// NewColorWalk creates a walk positioned at start and returns it together
// with the start color converted to RGB. A nil rng uses a randomly seeded
// source.
func NewColorWalk(start HSL, rng *rand.Rand) (*ColorWalk, Color) {
	if rng == nil {
		rng = newRand()
	}
	w := &ColorWalk{hsl: start, rng: rng}
	return w, w.hsl.RGB()
}

// HSL returns the walk's current position.
func (w *ColorWalk) HSL() HSL {
	return w.hsl
}

// HueJump redraws the hue from the fixed band [0°, 30°). The band is
// absolute, not relative to the current hue.
func (w *ColorWalk) HueJump() Color {
	w.hsl.H = w.rng.Float64() * hueJumpMax
	return w.hsl.RGB()
}

// Drift nudges saturation by up to ±0.01 and lightness by up to ±0.05,
// keeping saturation in [0, 1] and lightness in [0.3, 0.9]. Hue is unchanged.
func (w *ColorWalk) Drift() Color {
	w.hsl.S = clamp(w.hsl.S+w.uniform(satDriftStep), 0, 1)
	w.hsl.L = clamp(w.hsl.L+w.uniform(lightDrift), lightDriftMin, lightDriftMax)
	return w.hsl.RGB()
}

// uniform returns a value in [-d, d).
func (w *ColorWalk) uniform(d float64) float64 {
	return (w.rng.Float64()*2 - 1) * d
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
