package circlegarden

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string
}

const defaultScreenshotDir = "screenshots"

// Sprite displays a registered scene texture on screen. Until the scene is
// registered the sprite draws nothing. Offsets are relative to the screen
// center with Y pointing up.
type Sprite struct {
	Scene  string
	X, Y   float64
	Bounce *Bounce // optional vertical motion added to Y
}

// Game runs a DynamicTextures registry inside an ebiten game loop and shows
// scene textures as sprites. It implements ebiten.Game.
type Game struct {
	textures *DynamicTextures
	sprites  []*Sprite
	cfg      RunConfig
	fps      *fpsWidget

	screenshotQueue []string

	// UpdateFunc, if set, is called once per tick before the registry
	// updates. Returning an error stops the game.
	UpdateFunc func() error
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game around textures.
func NewGame(textures *DynamicTextures, cfg RunConfig) *Game {
	g := &Game{textures: textures, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g
}

// Textures returns the game's registry.
func (g *Game) Textures() *DynamicTextures {
	return g.textures
}

// AddSprite adds a sprite drawn on top of previously added ones.
func (g *Game) AddSprite(s *Sprite) {
	g.sprites = append(g.sprites, s)
}

// Screenshot queues a PNG capture of the named scene's texture. Captures are
// taken at the end of the next Draw, once the surface holds the new frame.
// Safe to call from Update or Draw.
func (g *Game) Screenshot(scene string) {
	g.screenshotQueue = append(g.screenshotQueue, scene)
}

// flushScreenshots writes every queued capture. Called at the end of Draw.
func (g *Game) flushScreenshots() {
	if len(g.screenshotQueue) == 0 {
		return
	}
	dir := g.cfg.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}
	for _, name := range g.screenshotQueue {
		path, err := g.textures.Screenshot(name, dir)
		if err != nil {
			Logger().Warn("screenshot failed", "scene", name, "err", err)
			continue
		}
		Logger().Info("screenshot saved", "scene", name, "path", path)
	}
	g.screenshotQueue = g.screenshotQueue[:0]
}

// Update advances the registry and sprites by one tick. Escape quits.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())
	if g.UpdateFunc != nil {
		if err := g.UpdateFunc(); err != nil {
			return err
		}
	}
	if err := g.textures.Update(time.Duration(dt * float64(time.Second))); err != nil {
		return err
	}
	for _, s := range g.sprites {
		if s.Bounce == nil {
			continue
		}
		if _, ok := g.textures.Lookup(s.Scene); ok {
			s.Bounce.Update(float32(dt))
		}
	}
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw renders scene surfaces and then composites the sprites onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.textures.Draw()
	screen.Fill(g.cfg.ClearColor.toRGBA())

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, s := range g.sprites {
		tex, ok := g.textures.Lookup(s.Scene)
		if !ok {
			continue
		}
		rt, ok := tex.Surface.(*RenderTexture)
		if !ok || rt.Image() == nil {
			continue
		}
		y := s.Y
		if s.Bounce != nil {
			y += s.Bounce.Value
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(
			sw/2+s.X-float64(rt.Width())/2,
			sh/2-y-float64(rt.Height())/2,
		)
		screen.DrawImage(rt.Image(), &op)
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots()
}

// Layout returns the configured logical screen size, or the outside size
// when none is configured.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs g until the window closes or Escape is
// pressed. Scene surfaces are disposed when the loop ends.
func Run(g *Game, cfg RunConfig) error {
	defer g.textures.Dispose()
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	g.cfg = cfg
	if cfg.ShowFPS && g.fps == nil {
		g.fps = newFPSWidget()
	}
	return ebiten.RunGame(g)
}
