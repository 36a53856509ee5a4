package circlegarden

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func colorNear(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestNewColorWalkInitialColor(t *testing.T) {
	start := HSL{H: 0, S: 1, L: 0.5}
	w, c := NewColorWalk(start, testRand(1))

	if w.HSL() != start {
		t.Errorf("HSL() = %v, want %v", w.HSL(), start)
	}
	want := Color{R: 1, G: 0, B: 0, A: 1}
	if !colorNear(c, want, 1e-9) {
		t.Errorf("initial color = %+v, want %+v", c, want)
	}
}

func TestHueJumpBand(t *testing.T) {
	w, _ := NewColorWalk(HSL{H: 200, S: 0.8, L: 0.6}, testRand(2))
	for i := range 1000 {
		c := w.HueJump()
		h := w.HSL().H
		if h < 0 || h >= 30 {
			t.Fatalf("jump %d: hue = %v, want [0, 30)", i, h)
		}
		if c.A != 1 {
			t.Fatalf("jump %d: alpha = %v, want 1", i, c.A)
		}
	}
}

func TestHueJumpKeepsSaturationAndLightness(t *testing.T) {
	w, _ := NewColorWalk(HSL{H: 100, S: 0.42, L: 0.61}, testRand(3))
	w.HueJump()
	if got := w.HSL(); got.S != 0.42 || got.L != 0.61 {
		t.Errorf("HSL after jump = %v, want s=0.42 l=0.61", got)
	}
}

func TestDriftBounds(t *testing.T) {
	starts := []struct {
		name  string
		start HSL
	}{
		{"middle", HSL{H: 10, S: 0.5, L: 0.6}},
		{"saturation floor", HSL{H: 10, S: 0, L: 0.6}},
		{"saturation ceiling", HSL{H: 10, S: 1, L: 0.6}},
		{"lightness floor", HSL{H: 10, S: 0.5, L: 0.3}},
		{"lightness ceiling", HSL{H: 10, S: 0.5, L: 0.9}},
		{"lightness out of band", HSL{H: 10, S: 0.5, L: 0.05}},
	}
	for i, tt := range starts {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := NewColorWalk(tt.start, testRand(uint64(10+i)))
			for j := range 2000 {
				prev := w.HSL()
				w.Drift()
				got := w.HSL()
				if got.S < 0 || got.S > 1 {
					t.Fatalf("step %d: saturation %v outside [0, 1]", j, got.S)
				}
				if got.L < 0.3 || got.L > 0.9 {
					t.Fatalf("step %d: lightness %v outside [0.3, 0.9]", j, got.L)
				}
				if got.H != prev.H {
					t.Fatalf("step %d: hue changed %v -> %v", j, prev.H, got.H)
				}
				if math.Abs(got.S-prev.S) > 0.01+1e-12 {
					t.Fatalf("step %d: saturation moved by %v", j, got.S-prev.S)
				}
			}
		})
	}
}

func TestColorWalkDeterministic(t *testing.T) {
	a, _ := NewColorWalk(HSL{H: 5, S: 0.7, L: 0.5}, testRand(99))
	b, _ := NewColorWalk(HSL{H: 5, S: 0.7, L: 0.5}, testRand(99))
	for i := range 50 {
		var ca, cb Color
		if i%7 == 0 {
			ca, cb = a.HueJump(), b.HueJump()
		} else {
			ca, cb = a.Drift(), b.Drift()
		}
		if ca != cb {
			t.Fatalf("step %d: %+v != %+v", i, ca, cb)
		}
	}
}
