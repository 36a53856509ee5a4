package circlegarden

import "io"

// Surface is an offscreen drawing target owned by one scene. Coordinates
// are in surface pixels with the origin at the top-left.
type Surface interface {
	Width() int
	Height() int
	// Fill replaces the whole surface with c.
	Fill(c Color)
	// DrawCircle draws a filled circle centered at (x, y).
	DrawCircle(x, y, r float64, c Color)
	// EncodePNG writes the current surface contents as PNG.
	EncodePNG(w io.Writer) error
}

// SurfaceFactory creates a surface of the given size.
type SurfaceFactory func(w, h int) Surface

// Texture is the registry entry for a scene: its surface and the layer it
// was granted.
type Texture struct {
	Surface Surface
	Layer   Layer
}
