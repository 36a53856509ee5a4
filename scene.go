package circlegarden

import "fmt"

// SceneState tracks a scene through its lifecycle.
type SceneState uint8

const (
	ScenePending SceneState = iota // layer and surface granted, not yet packed
	ScenePacked                    // circles packed; updated and drawn every tick
)

// String returns the state name.
func (s SceneState) String() string {
	switch s {
	case ScenePending:
		return "pending"
	case ScenePacked:
		return "packed"
	default:
		return fmt.Sprintf("SceneState(%d)", uint8(s))
	}
}

// Scene is one packed circle composition rendered to its own surface on its
// own layer. Scenes are created and owned by DynamicTextures.
type Scene struct {
	desc     SceneDescriptor
	layer    Layer
	surface  Surface
	state    SceneState
	strategy strategy

	packed  []Circle
	colors  []Color
	present []Presentation
	stats   PackStats
}

func newScene(desc SceneDescriptor, layer Layer, surface Surface, st strategy) *Scene {
	return &Scene{
		desc:     desc,
		layer:    layer,
		surface:  surface,
		strategy: st,
	}
}

// Name returns the scene's unique name.
func (s *Scene) Name() string { return s.desc.Name }

// Layer returns the render layer granted to the scene.
func (s *Scene) Layer() Layer { return s.layer }

// Variant returns the scene's behavior after packing.
func (s *Scene) Variant() Variant { return s.desc.Variant }

// Descriptor returns the descriptor the scene was created from.
func (s *Scene) Descriptor() SceneDescriptor { return s.desc }

// State returns the scene's lifecycle state.
func (s *Scene) State() SceneState { return s.state }

// Surface returns the scene's offscreen surface.
func (s *Scene) Surface() Surface { return s.surface }

// Stats returns the packing statistics of the scene.
func (s *Scene) Stats() PackStats { return s.stats }

// Circles returns the packed baseline circles. The returned slice MUST NOT
// be mutated.
func (s *Scene) Circles() []Circle { return s.packed }

// Presentations returns what will be drawn on the next Draw, one entry per
// packed circle. The returned slice MUST NOT be mutated.
func (s *Scene) Presentations() []Presentation { return s.present }

// pack fills the scene and moves it to ScenePacked. It touches only the
// scene itself, so distinct scenes may be packed concurrently.
func (s *Scene) pack(p *Packer, walk *ColorWalk) {
	s.packed = p.Pack(float64(s.desc.Size), walk)
	s.stats = p.Stats()
	s.colors = make([]Color, len(s.packed))
	s.present = make([]Presentation, len(s.packed))
	for i, c := range s.packed {
		s.colors[i] = c.Color
		s.present[i] = c.Present()
	}
	s.state = ScenePacked
}

// update advances the scene's presentation to t seconds since start.
func (s *Scene) update(t, dt float64) {
	if s.state != ScenePacked {
		return
	}
	s.strategy.update(s, t, dt)
}

// draw renders the current presentation onto the scene's surface.
func (s *Scene) draw() {
	if s.state != ScenePacked {
		return
	}
	s.surface.Fill(s.desc.Background)
	cx := float64(s.surface.Width()) / 2
	cy := float64(s.surface.Height()) / 2
	for _, p := range s.present {
		s.surface.DrawCircle(cx+p.Pos.X, cy+p.Pos.Y, p.Radius, p.Color)
	}
}

// strategy is the per-variant behavior of a packed scene.
type strategy interface {
	update(s *Scene, t, dt float64)
}

// freezeStrategy keeps the packed geometry and rotates colors among the
// circles every interval seconds (every tick when interval is zero).
type freezeStrategy struct {
	interval float64
	acc      float64
}

func (f *freezeStrategy) update(s *Scene, _, dt float64) {
	if f.interval > 0 {
		f.acc += dt
		if f.acc < f.interval {
			return
		}
		f.acc -= f.interval
	}
	RotateColors(s.colors)
	for i := range s.present {
		s.present[i].Color = s.colors[i]
	}
}

// animateStrategy recomputes every circle's presentation from its baseline.
type animateStrategy struct{}

func (animateStrategy) update(s *Scene, t, _ float64) {
	for i, c := range s.packed {
		s.present[i] = Animate(c, t)
	}
}

// newStrategy returns the strategy for v. An unknown variant means the
// descriptor table is misconfigured and panics.
func newStrategy(v Variant, rotateInterval float64) strategy {
	switch v {
	case PackAndFreeze:
		return &freezeStrategy{interval: rotateInterval}
	case PackAndAnimate:
		return animateStrategy{}
	default:
		panic(fmt.Sprintf("circlegarden: unknown scene variant %v", v))
	}
}
