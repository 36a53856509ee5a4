package circlegarden

import (
	"testing"
)

func packSquare(t *testing.T, width float64, seed uint64) ([]Circle, PackStats) {
	t.Helper()
	rng := testRand(seed)
	walk, _ := NewColorWalk(HSL{H: 0.1, S: 0.8, L: 0.7}, rng)
	p := NewPacker(DefaultPackConfig(), rng)
	return p.Pack(width, walk), p.Stats()
}

func TestPack256Scenario(t *testing.T) {
	circles, stats := packSquare(t, 256, 1)
	if len(circles) == 0 {
		t.Fatal("expected circles in a 256x256 area")
	}
	if stats.Circles != len(circles) {
		t.Errorf("Stats.Circles = %d, want %d", stats.Circles, len(circles))
	}

	maxR, minR := circles[0].Radius, circles[0].Radius
	for _, c := range circles {
		maxR = max(maxR, c.Radius)
		minR = min(minR, c.Radius)
	}
	if maxR > DefaultStartRadius {
		t.Errorf("largest radius = %v, want <= %v", maxR, DefaultStartRadius)
	}
	if minR <= MinRadius {
		t.Errorf("smallest radius = %v, want > %v", minR, MinRadius)
	}

	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			a, b := circles[i], circles[j]
			dx, dy := a.Pos.X-b.Pos.X, a.Pos.Y-b.Pos.Y
			sum := a.Radius + b.Radius
			if sum*sum+50 > dx*dx+dy*dy {
				t.Fatalf("circles %d and %d overlap: %+v %+v", i, j, a, b)
			}
		}
	}
}

func TestPackCirclesInsideArea(t *testing.T) {
	const w = 200.0
	circles, _ := packSquare(t, w, 2)
	for i, c := range circles {
		if c.Pos.X-c.Radius < -w/2 || c.Pos.X+c.Radius > w/2 ||
			c.Pos.Y-c.Radius < -w/2 || c.Pos.Y+c.Radius > w/2 {
			t.Fatalf("circle %d %+v leaves the area", i, c)
		}
	}
}

func TestPackRadiusMonotonic(t *testing.T) {
	circles, _ := packSquare(t, 512, 3)
	for i := 1; i < len(circles); i++ {
		if circles[i].Radius > circles[i-1].Radius {
			t.Fatalf("radius increased at %d: %v -> %v", i, circles[i-1].Radius, circles[i].Radius)
		}
	}
}

func TestPackMaxPerRadius(t *testing.T) {
	circles, _ := packSquare(t, 1280, 4)
	counts := map[float64]int{}
	for _, c := range circles {
		counts[c.Radius]++
	}
	for r, n := range counts {
		if n > MaxCirclesPerRadius {
			t.Errorf("radius %v has %d circles, want <= %d", r, n, MaxCirclesPerRadius)
		}
	}
	// A large area fills the first radius completely.
	if counts[DefaultStartRadius] != MaxCirclesPerRadius {
		t.Errorf("radius %v has %d circles, want %d", DefaultStartRadius, counts[DefaultStartRadius], MaxCirclesPerRadius)
	}
}

func TestPackTerminatesOnSmallAreas(t *testing.T) {
	tests := []struct {
		name  string
		width float64
	}{
		{"exactly twice min radius", 2 * MinRadius},
		{"just fits radius 5", 10},
		{"narrower than start radius", 30},
		{"zero", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circles, _ := packSquare(t, tt.width, 5)
			for _, c := range circles {
				if 2*c.Radius > tt.width {
					t.Errorf("circle radius %v does not fit width %v", c.Radius, tt.width)
				}
			}
		})
	}
}

func TestPackStarvedAreaIsEmpty(t *testing.T) {
	circles, stats := packSquare(t, 2*MinRadius, 6)
	if len(circles) != 0 {
		t.Errorf("got %d circles, want 0", len(circles))
	}
	if stats.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0 when no radius fits", stats.Attempts)
	}
}

func TestPackFirstCircleTakesStartColor(t *testing.T) {
	rng := testRand(7)
	walk, start := NewColorWalk(HSL{H: 120, S: 0.5, L: 0.5}, rng)
	circles := NewPacker(PackConfig{}, rng).Pack(256, walk)
	if len(circles) == 0 {
		t.Fatal("no circles")
	}
	if circles[0].Color != start {
		t.Errorf("first color = %+v, want %+v", circles[0].Color, start)
	}
}

func TestPackHueJumpCadence(t *testing.T) {
	// With a start hue far outside the jump band, hue stays put until the
	// first jump; after it every hue lies in [0, 30).
	rng := testRand(8)
	walk, _ := NewColorWalk(HSL{H: 240, S: 0.9, L: 0.6}, rng)
	circles := NewPacker(DefaultPackConfig(), rng).Pack(1280, walk)
	if len(circles) <= DefaultHueJumpEvery+1 {
		t.Fatalf("only %d circles", len(circles))
	}
	for i := 0; i < DefaultHueJumpEvery; i++ {
		if h := circles[i].Color.HSL().H; h < 200 {
			t.Fatalf("circle %d hue = %v before the first jump", i, h)
		}
	}
	if h := circles[DefaultHueJumpEvery].Color.HSL().H; h >= 30.5 {
		t.Errorf("circle %d hue = %v, want within the jump band", DefaultHueJumpEvery, h)
	}
}

func TestPackDeterministic(t *testing.T) {
	a, _ := packSquare(t, 256, 42)
	b, _ := packSquare(t, 256, 42)
	if len(a) != len(b) {
		t.Fatalf("len %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("circle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPackRect(t *testing.T) {
	rng := testRand(9)
	walk, _ := NewColorWalk(HSL{H: 10, S: 0.5, L: 0.5}, rng)
	circles := NewPacker(DefaultPackConfig(), rng).PackRect(400, 60, walk)
	if len(circles) == 0 {
		t.Fatal("no circles")
	}
	for i, c := range circles {
		if c.Pos.Y-c.Radius < -30 || c.Pos.Y+c.Radius > 30 {
			t.Fatalf("circle %d %+v leaves the 60px band", i, c)
		}
	}
}

func TestCircleOverlaps(t *testing.T) {
	a := Circle{Pos: Vec2{0, 0}, Radius: 5}
	tests := []struct {
		name string
		b    Circle
		want bool
	}{
		{"same center", Circle{Pos: Vec2{0, 0}, Radius: 5}, true},
		{"touching", Circle{Pos: Vec2{10, 0}, Radius: 5}, true},
		// (5+5)^2 + 50 = 150 > 12^2 = 144
		{"inside bias", Circle{Pos: Vec2{12, 0}, Radius: 5}, true},
		// 150 <= 13^2 = 169
		{"beyond bias", Circle{Pos: Vec2{13, 0}, Radius: 5}, false},
		{"far", Circle{Pos: Vec2{100, 100}, Radius: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackConfigDefaults(t *testing.T) {
	got := PackConfig{}.withDefaults()
	if got != DefaultPackConfig() {
		t.Errorf("withDefaults = %+v, want %+v", got, DefaultPackConfig())
	}
	custom := PackConfig{StartRadius: 10, MaxPerRadius: 5}.withDefaults()
	if custom.StartRadius != 10 || custom.MaxPerRadius != 5 || custom.Attempts != DefaultAttempts {
		t.Errorf("withDefaults kept wrong fields: %+v", custom)
	}
}
