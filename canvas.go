package filament

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the draw surface the engine issues abstract commands to.
// The engine never touches a raster API directly; everything it renders
// goes through one of these three primitives plus Clear.
//
// Implementations are not required to be safe for concurrent use; all
// drawing happens on the single cooperative scheduler thread.
type Canvas interface {
	// Line strokes a straight segment from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1, width float64, c Color)
	// Circle strokes a circle outline centered at (x, y).
	Circle(x, y, r, width float64, c Color)
	// FillRect fills an axis-aligned rectangle, typically translucent
	// (the fade overlay).
	FillRect(x, y, w, h float64, c Color)
	// Clear erases all content.
	Clear()
	// Size returns the current drawable dimensions.
	Size() (w, h float64)
	// SetSize resizes the drawable area. Existing content is discarded;
	// strand coordinates are never rescaled.
	SetSize(w, h float64)
}

// ImageCanvas is the production Canvas backed by an *ebiten.Image and
// drawn with Ebitengine's vector package.
type ImageCanvas struct {
	img       *ebiten.Image
	w, h      int
	antialias bool
}

// NewImageCanvas creates an ImageCanvas with the given dimensions.
// Antialiasing is on by default.
func NewImageCanvas(w, h int) *ImageCanvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ImageCanvas{
		img:       ebiten.NewImage(w, h),
		w:         w,
		h:         h,
		antialias: true,
	}
}

// Image returns the backing image for compositing onto the screen.
// The returned pointer changes after SetSize.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.img
}

// SetAntialias toggles antialiased stroking.
func (c *ImageCanvas) SetAntialias(enabled bool) {
	c.antialias = enabled
}

// Line implements Canvas.
func (c *ImageCanvas) Line(x0, y0, x1, y1, width float64, col Color) {
	if width <= 0 {
		return
	}
	vector.StrokeLine(c.img,
		float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), col.nrgba(), c.antialias)
}

// Circle implements Canvas.
func (c *ImageCanvas) Circle(x, y, r, width float64, col Color) {
	if r <= 0 || width <= 0 {
		return
	}
	vector.StrokeCircle(c.img,
		float32(x), float32(y), float32(r),
		float32(width), col.nrgba(), c.antialias)
}

// FillRect implements Canvas.
func (c *ImageCanvas) FillRect(x, y, w, h float64, col Color) {
	vector.DrawFilledRect(c.img,
		float32(x), float32(y), float32(w), float32(h),
		col.nrgba(), c.antialias)
}

// Clear implements Canvas.
func (c *ImageCanvas) Clear() {
	c.img.Clear()
}

// Size implements Canvas.
func (c *ImageCanvas) Size() (w, h float64) {
	return float64(c.w), float64(c.h)
}

// SetSize implements Canvas. Ebitengine images are fixed-size, so the
// backing image is reallocated and prior content discarded.
func (c *ImageCanvas) SetSize(w, h float64) {
	nw, nh := int(w), int(h)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	if nw == c.w && nh == c.h {
		return
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(nw, nh)
	c.w, c.h = nw, nh
}
