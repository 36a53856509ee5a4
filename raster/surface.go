// Package raster provides a headless circlegarden.Surface that draws with
// the gg software rasterizer. It needs no window or GPU, which makes it
// suitable for command-line rendering and tests.
package raster

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/phanxgames/circlegarden"
)

// Surface is an in-memory drawing surface backed by a gg.Context.
type Surface struct {
	dc *gg.Context
}

var _ circlegarden.Surface = (*Surface)(nil)

// NewSurface creates a w×h surface cleared to transparent black.
func NewSurface(w, h int) *Surface {
	return &Surface{dc: gg.NewContext(w, h)}
}

// NewSurfaceFactory returns a circlegarden.SurfaceFactory producing raster
// surfaces.
func NewSurfaceFactory() circlegarden.SurfaceFactory {
	return func(w, h int) circlegarden.Surface {
		return NewSurface(w, h)
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Fill replaces the whole surface with c.
func (s *Surface) Fill(c circlegarden.Color) {
	s.dc.ClearWithColor(gg.RGBA2(c.R, c.G, c.B, c.A))
}

// DrawCircle draws an anti-aliased filled circle centered at (x, y).
func (s *Surface) DrawCircle(x, y, r float64, c circlegarden.Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(x, y, r)
	if err := s.dc.Fill(); err != nil {
		circlegarden.Logger().Warn("raster: fill circle", "err", err)
	}
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
