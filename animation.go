package circlegarden

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bounce moves a value back and forth between Min and Max at a constant
// speed, reversing at each end. It drives the vertical motion of displayed
// scene sprites. Call Update(dt) each frame.
//
// There is no global animation manager; callers run Update themselves.
type Bounce struct {
	Min, Max float64
	Speed    float64 // units per second
	Value    float64
	Rising   bool

	tween *gween.Tween
}

// NewBounce creates a bounce starting at start and moving towards Max.
func NewBounce(start, lo, hi, speed float64) *Bounce {
	b := &Bounce{Min: lo, Max: hi, Speed: speed, Value: clamp(start, lo, hi), Rising: true}
	b.retarget()
	return b
}

// Update advances the bounce by dt seconds and returns the new value. A
// bounce with a non-positive Speed holds its value.
func (b *Bounce) Update(dt float32) float64 {
	if b.Speed <= 0 {
		return b.Value
	}
	if b.tween == nil {
		b.retarget()
	}
	val, finished := b.tween.Update(dt)
	b.Value = float64(val)
	if finished {
		b.Rising = !b.Rising
		b.retarget()
	}
	return b.Value
}

// retarget starts a linear tween from the current value to the end the
// bounce is heading for.
func (b *Bounce) retarget() {
	to := b.Min
	if b.Rising {
		to = b.Max
	}
	if b.Speed <= 0 {
		return
	}
	dur := float32(math.Abs(to-b.Value) / b.Speed)
	b.tween = gween.New(float32(b.Value), float32(to), dur, ease.Linear)
}
