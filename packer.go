package circlegarden

import (
	"math/rand/v2"
	"time"
)

// Packing defaults.
const (
	DefaultStartRadius  = 20.0
	MinRadius           = 4.0
	MaxCirclesPerRadius = 100
	DefaultAttempts     = 100
	DefaultHueJumpEvery = 30

	// overlapBias is added to the squared radius sum in the overlap test.
	// It is an area-like tuning constant, not a distance margin.
	overlapBias = 50.0
)

// Circle is one packed circle. Pos and Radius are the packing-time baseline;
// animation derives a Presentation from them without modifying them.
type Circle struct {
	Pos    Vec2
	Radius float64
	Color  Color
}

// Overlaps reports whether c and o violate the packing invariant
// (r1+r2)^2 + 50 <= d^2.
func (c Circle) Overlaps(o Circle) bool {
	dx := c.Pos.X - o.Pos.X
	dy := c.Pos.Y - o.Pos.Y
	sum := c.Radius + o.Radius
	return sum*sum+overlapBias > dx*dx+dy*dy
}

// PackConfig tunes the greedy packer. Zero fields fall back to the defaults.
type PackConfig struct {
	StartRadius  float64 // first radius tried
	MinRadius    float64 // packing stops once the radius drops to this value
	RadiusStep   float64 // radius decrement after a radius is exhausted
	MaxPerRadius int     // circles accepted before the radius shrinks
	Attempts     int     // random placements tried per circle
	HueJumpEvery int     // accepted circles between hue jumps
}

// DefaultPackConfig returns the stock packing configuration.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		StartRadius:  DefaultStartRadius,
		MinRadius:    MinRadius,
		RadiusStep:   1,
		MaxPerRadius: MaxCirclesPerRadius,
		Attempts:     DefaultAttempts,
		HueJumpEvery: DefaultHueJumpEvery,
	}
}

func (c PackConfig) withDefaults() PackConfig {
	d := DefaultPackConfig()
	if c.StartRadius <= 0 {
		c.StartRadius = d.StartRadius
	}
	if c.MinRadius <= 0 {
		c.MinRadius = d.MinRadius
	}
	if c.RadiusStep <= 0 {
		c.RadiusStep = d.RadiusStep
	}
	if c.MaxPerRadius <= 0 {
		c.MaxPerRadius = d.MaxPerRadius
	}
	if c.Attempts <= 0 {
		c.Attempts = d.Attempts
	}
	if c.HueJumpEvery <= 0 {
		c.HueJumpEvery = d.HueJumpEvery
	}
	return c
}

// PackStats describes the most recent packing run.
type PackStats struct {
	Circles  int
	Attempts int
	Radii    int // distinct radii visited
	Elapsed  time.Duration
}

// Packer fills a rectangular area with non-overlapping circles of shrinking
// radius. A Packer is not safe for concurrent use; give each worker its own.
type Packer struct {
	cfg   PackConfig
	rng   *rand.Rand
	stats PackStats
}

// NewPacker creates a packer. A nil rng uses a randomly seeded source.
func NewPacker(cfg PackConfig, rng *rand.Rand) *Packer {
	if rng == nil {
		rng = newRand()
	}
	return &Packer{cfg: cfg.withDefaults(), rng: rng}
}

// Config returns the effective configuration.
func (p *Packer) Config() PackConfig {
	return p.cfg
}

// Stats returns statistics for the last Pack or PackRect call.
func (p *Packer) Stats() PackStats {
	return p.stats
}

// Pack fills a square area of the given width.
func (p *Packer) Pack(areaWidth float64, walk *ColorWalk) []Circle {
	return p.PackRect(areaWidth, areaWidth, walk)
}

// PackRect fills a w×h area centered on the origin. Circles are returned in
// acceptance order, largest radius first. An area too small for MinRadius
// yields an empty slice.
//
// The first circle takes the walk's current color. After each accepted
// circle that does not exhaust its radius the walk advances: every
// HueJumpEvery-th time with HueJump, otherwise with Drift.
func (p *Packer) PackRect(w, h float64, walk *ColorWalk) []Circle {
	start := time.Now()
	cfg := p.cfg
	p.stats = PackStats{}

	var circles []Circle
	color := walk.HSL().RGB()
	r := cfg.StartRadius
	colorChanges := 0
	atRadius := 0
	if r > cfg.MinRadius {
		p.stats.Radii = 1
	}

	for r > cfg.MinRadius {
		placed := false
		spanX, spanY := w-2*r, h-2*r
		if spanX >= 0 && spanY >= 0 {
			for range cfg.Attempts {
				p.stats.Attempts++
				c := Circle{
					Pos: Vec2{
						X: p.rng.Float64()*spanX + r - w/2,
						Y: p.rng.Float64()*spanY + r - h/2,
					},
					Radius: r,
					Color:  color,
				}
				if !intersectsAny(c, circles) {
					circles = append(circles, c)
					atRadius++
					placed = true
					break
				}
			}
		}

		if !placed || atRadius >= cfg.MaxPerRadius {
			atRadius = 0
			r -= cfg.RadiusStep
			if r > cfg.MinRadius {
				p.stats.Radii++
			}
			continue
		}

		colorChanges++
		if colorChanges >= cfg.HueJumpEvery {
			colorChanges = 0
			color = walk.HueJump()
		} else {
			color = walk.Drift()
		}
	}

	p.stats.Circles = len(circles)
	p.stats.Elapsed = time.Since(start)
	return circles
}

// intersectsAny reports whether c overlaps any circle in set.
func intersectsAny(c Circle, set []Circle) bool {
	for i := range set {
		if c.Overlaps(set[i]) {
			return true
		}
	}
	return false
}
