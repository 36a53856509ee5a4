package circlegarden

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrCapacityExhausted reports that every render layer has been issued.
	ErrCapacityExhausted = errors.New("render layers exhausted")
	// ErrDuplicateScene reports a request for a name that is already pending
	// or registered.
	ErrDuplicateScene = errors.New("duplicate scene")
	// ErrInvalidDescriptor reports a descriptor that cannot be processed.
	ErrInvalidDescriptor = errors.New("invalid scene descriptor")
	// ErrUnknownScene reports a lookup of a name with no registered scene.
	ErrUnknownScene = errors.New("unknown scene")
)

// SceneEventType identifies a kind of scene event.
type SceneEventType uint8

const (
	SceneReady   SceneEventType = iota // scene packed and registered
	SceneDropped                       // request dropped, no layer available
)

// SceneEvent is delivered to listeners after each processed request.
type SceneEvent struct {
	Type    SceneEventType
	Name    string
	Layer   Layer
	Circles int
}

// SceneListener is the interface for optional observers of the registry,
// such as an ECS bridge.
type SceneListener interface {
	EmitSceneEvent(event SceneEvent)
}

// Option configures DynamicTextures.
type Option func(*DynamicTextures)

// WithSurfaceFactory sets how scene surfaces are created. The default
// creates ebiten RenderTextures.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(d *DynamicTextures) { d.newSurface = f }
}

// WithSeed makes packing and color walks reproducible.
func WithSeed(seed uint64) Option {
	return func(d *DynamicTextures) {
		d.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithPackConfig overrides the packing configuration.
func WithPackConfig(cfg PackConfig) Option {
	return func(d *DynamicTextures) { d.packCfg = cfg }
}

// WithRotateInterval sets how often PackAndFreeze scenes rotate their
// colors. Zero rotates on every Update.
func WithRotateInterval(interval time.Duration) Option {
	return func(d *DynamicTextures) { d.rotateInterval = interval }
}

// WithListener adds a scene event listener.
func WithListener(l SceneListener) Option {
	return func(d *DynamicTextures) { d.listeners = append(d.listeners, l) }
}

// DynamicTextures maps scene names to the textures generated for them and
// turns queued scene requests into packed scenes.
//
// Requests are queued with Request and processed on the next Update. All
// methods must be called from a single goroutine (the game loop); Update
// fans packing out to worker goroutines internally.
type DynamicTextures struct {
	layers  LayerAllocator
	queue   []SceneDescriptor
	pending map[string]struct{}
	table   map[string]Texture
	scenes  []*Scene

	newSurface     SurfaceFactory
	packCfg        PackConfig
	rotateInterval time.Duration
	rng            *rand.Rand
	listeners      []SceneListener

	elapsed time.Duration
}

// NewDynamicTextures creates an empty registry.
func NewDynamicTextures(opts ...Option) *DynamicTextures {
	d := &DynamicTextures{
		pending:    make(map[string]struct{}),
		table:      make(map[string]Texture),
		newSurface: NewRenderTextureSurface,
		packCfg:    DefaultPackConfig(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = newRand()
	}
	return d
}

// Request queues a scene for creation on the next Update. A name that is
// already pending or registered is rejected with ErrDuplicateScene.
func (d *DynamicTextures) Request(desc SceneDescriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	if _, ok := d.pending[desc.Name]; ok {
		return fmt.Errorf("%w: %q is pending", ErrDuplicateScene, desc.Name)
	}
	if _, ok := d.table[desc.Name]; ok {
		return fmt.Errorf("%w: %q is registered", ErrDuplicateScene, desc.Name)
	}
	d.pending[desc.Name] = struct{}{}
	d.queue = append(d.queue, desc)
	return nil
}

// Cancel drops a pending request. It reports false if no request for name
// is queued. Nothing has been allocated for a pending request.
func (d *DynamicTextures) Cancel(name string) bool {
	if _, ok := d.pending[name]; !ok {
		return false
	}
	delete(d.pending, name)
	for i, desc := range d.queue {
		if desc.Name == name {
			d.queue = append(d.queue[:i], d.queue[i+1:]...)
			break
		}
	}
	return true
}

// Pending reports whether a request for name is queued.
func (d *DynamicTextures) Pending(name string) bool {
	_, ok := d.pending[name]
	return ok
}

// Lookup returns the texture registered for name.
func (d *DynamicTextures) Lookup(name string) (Texture, bool) {
	tex, ok := d.table[name]
	return tex, ok
}

// Scene returns the scene registered for name.
func (d *DynamicTextures) Scene(name string) (*Scene, error) {
	for _, s := range d.scenes {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Scenes returns all registered scenes in layer order. The returned slice
// MUST NOT be mutated.
func (d *DynamicTextures) Scenes() []*Scene {
	return d.scenes
}

// Layers returns the layer allocator state.
func (d *DynamicTextures) Layers() LayerAllocator {
	return d.layers
}

// Elapsed returns the total time advanced by Update.
func (d *DynamicTextures) Elapsed() time.Duration {
	return d.elapsed
}

// Update processes queued requests and then advances every packed scene by
// dt. Requests beyond MaxLayers are dropped, logged and reported to
// listeners as SceneDropped.
func (d *DynamicTextures) Update(dt time.Duration) error {
	if err := d.processQueue(); err != nil {
		return err
	}
	d.elapsed += dt
	t, step := d.elapsed.Seconds(), dt.Seconds()
	for _, s := range d.scenes {
		s.update(t, step)
	}
	return nil
}

// Draw renders every packed scene onto its surface.
func (d *DynamicTextures) Draw() {
	for _, s := range d.scenes {
		s.draw()
	}
}

// processQueue drains the request queue. Layers, surfaces and random
// sources are handed out serially; packing runs concurrently.
func (d *DynamicTextures) processQueue() error {
	if len(d.queue) == 0 {
		return nil
	}
	queue := d.queue
	d.queue = nil

	type job struct {
		scene *Scene
		rng   *rand.Rand
	}
	jobs := make([]job, 0, len(queue))
	for _, desc := range queue {
		delete(d.pending, desc.Name)
		layer, ok := d.layers.Allocate()
		if !ok {
			Logger().Warn("dropping scene request",
				"scene", desc.Name, "err", ErrCapacityExhausted, "max", MaxLayers)
			d.emit(SceneEvent{Type: SceneDropped, Name: desc.Name})
			continue
		}
		st := newStrategy(desc.Variant, d.rotateInterval.Seconds())
		surface := d.newSurface(desc.Size, desc.Size)
		jobs = append(jobs, job{
			scene: newScene(desc, layer, surface, st),
			rng:   rand.New(rand.NewPCG(d.rng.Uint64(), d.rng.Uint64())),
		})
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		g.Go(func() error {
			walk, _ := NewColorWalk(j.scene.desc.StartColor, j.rng)
			j.scene.pack(NewPacker(d.packCfg, j.rng), walk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("pack scenes: %w", err)
	}

	for _, j := range jobs {
		s := j.scene
		d.scenes = append(d.scenes, s)
		d.table[s.Name()] = Texture{Surface: s.surface, Layer: s.layer}
		logPackStats(s)
		Logger().Info("scene registered",
			"scene", s.Name(), "layer", s.layer, "variant", s.Variant(), "circles", len(s.packed))
		d.emit(SceneEvent{Type: SceneReady, Name: s.Name(), Layer: s.layer, Circles: len(s.packed)})
	}
	return nil
}

// Dispose releases the surface of every registered scene. Surfaces with a
// Dispose method (RenderTexture) or a Close method (headless surfaces) are
// released; others are left to the garbage collector. The registry must not
// be used afterwards.
func (d *DynamicTextures) Dispose() {
	for _, s := range d.scenes {
		switch sf := s.surface.(type) {
		case interface{ Dispose() }:
			sf.Dispose()
		case io.Closer:
			if err := sf.Close(); err != nil {
				Logger().Warn("release scene surface", "scene", s.Name(), "err", err)
			}
		}
	}
}

func (d *DynamicTextures) emit(e SceneEvent) {
	for _, l := range d.listeners {
		l.EmitSceneEvent(e)
	}
}
