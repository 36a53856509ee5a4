// Package circlegarden procedurally packs colored circles into offscreen
// textures for [Ebitengine] games.
//
// Each scene is a square area filled greedily with non-overlapping circles
// of shrinking radius. Circle colors come from a random walk through HSL
// space. Every scene renders to its own surface on its own render layer, and
// the finished texture is looked up by name and shown as a sprite.
//
// # Quick start
//
//	textures := circlegarden.NewDynamicTextures()
//	_ = textures.Request(circlegarden.RedMonster)
//
//	cfg := circlegarden.RunConfig{Title: "Circles", Width: 1280, Height: 1024}
//	game := circlegarden.NewGame(textures, cfg)
//	game.AddSprite(&circlegarden.Sprite{Scene: "red_256"})
//	if err := circlegarden.Run(game, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Scenes
//
// Requests are queued with [DynamicTextures.Request] and processed on the
// next [DynamicTextures.Update]. Processing grants a layer (at most
// [MaxLayers] per run, never reused), creates a [Surface], packs the circles
// and registers the texture under the scene's name for
// [DynamicTextures.Lookup]. Requests beyond the last layer are dropped.
//
// A [PackAndFreeze] scene keeps its packing and rotates colors among its
// circles. A [PackAndAnimate] scene pulses every circle's radius, position
// and color as a function of time. Neither modifies the packed baseline.
//
// # Surfaces
//
// [RenderTexture] draws with ebiten and is the default. The raster
// sub-package provides a headless surface for rendering PNG files without a
// window, and the ecs sub-package forwards scene events into a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package circlegarden
