package gfx

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gfx/atlas"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/display"
	"github.com/gogpu/gfx/render"
)

// Graphics is the drawing context of one display mode.
//
// Its state machine has two states. Begin moves it from Closed to Open when
// the device can accept a frame; End draws the queued primitives and moves
// it back to Closed. Draw calls are only accepted while Open and return
// ErrInvalidState otherwise. CreateImage is valid in either state.
//
// Graphics is not safe for concurrent use.
type Graphics struct {
	mode       display.Mode
	backend    render.Backend
	compositor *render.Compositor
	carver     *atlas.Carver

	virtualW float64
	virtualH float64

	closed bool
}

// New creates a Graphics for mode. The backend is chosen by WithBackend,
// then WithBackendName, then the highest priority registered backend, and is
// initialized to the mode's size.
func New(mode display.Mode, opts ...Option) (*Graphics, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b, name, err := resolveBackend(o)
	if err != nil {
		return nil, err
	}
	if err := b.Init(mode.Width, mode.Height); err != nil {
		return nil, fmt.Errorf("gfx: init %s backend: %w", name, err)
	}

	g := &Graphics{
		mode:       mode,
		backend:    b,
		compositor: render.NewCompositor(b),
		carver:     atlas.NewCarver(b, o.pageSize),
		virtualW:   float64(mode.Width),
		virtualH:   float64(mode.Height),
	}
	if o.virtualIsSet {
		if err := g.SetVirtualResolution(o.virtualW, o.virtualH); err != nil {
			_ = b.Close()
			return nil, err
		}
	}

	Logger().Info("gfx: graphics created", "mode", mode.String(), "backend", name)
	return g, nil
}

func resolveBackend(o options) (render.Backend, string, error) {
	switch {
	case o.backend != nil:
		return o.backend, "custom", nil
	case o.backendName != "":
		b, err := backend.Get(o.backendName)
		return b, o.backendName, err
	}
	b := backend.Default()
	if b == nil {
		return nil, "", fmt.Errorf("%w: none registered", backend.ErrBackendNotAvailable)
	}
	return b, backend.DefaultName(), nil
}

// Width returns the device width in pixels.
func (g *Graphics) Width() int { return g.mode.Width }

// Height returns the device height in pixels.
func (g *Graphics) Height() int { return g.mode.Height }

// Fullscreen reports whether the mode is fullscreen.
func (g *Graphics) Fullscreen() bool { return g.mode.Fullscreen }

// Mode returns the mode the Graphics was created with.
func (g *Graphics) Mode() display.Mode { return g.mode }

// Backend returns the device surface.
func (g *Graphics) Backend() render.Backend { return g.backend }

// VirtualWidth returns the width of the virtual coordinate space.
func (g *Graphics) VirtualWidth() float64 { return g.virtualW }

// VirtualHeight returns the height of the virtual coordinate space.
func (g *Graphics) VirtualHeight() float64 { return g.virtualH }

// FactorX returns the horizontal virtual to device scale.
func (g *Graphics) FactorX() float64 { return float64(g.mode.Width) / g.virtualW }

// FactorY returns the vertical virtual to device scale.
func (g *Graphics) FactorY() float64 { return float64(g.mode.Height) / g.virtualH }

// SetVirtualResolution sets the size of the coordinate space used by draw
// calls. It takes effect at the next End.
func (g *Graphics) SetVirtualResolution(width, height float64) error {
	if !positive(width) || !positive(height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidResolution, width, height)
	}
	g.virtualW, g.virtualH = width, height
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Begin opens a frame cleared to clear. It returns false when the device
// cannot accept a frame; the caller should skip drawing and try again on the
// next tick.
func (g *Graphics) Begin(clear Color) bool {
	return g.BeginFrame(clear) == nil
}

// BeginFrame is Begin with the failure cause. The error wraps
// ErrDeviceUnavailable, ErrInvalidState or ErrClosed.
func (g *Graphics) BeginFrame(clear Color) error {
	if g.closed {
		return ErrClosed
	}
	return g.compositor.Begin(clear)
}

// End draws the frame in Z order, scaled from virtual to device
// coordinates, and presents it. Without a successful Begin it returns
// ErrInvalidState.
func (g *Graphics) End() error {
	if g.closed {
		return ErrClosed
	}
	return g.compositor.End(render.Scale(g.FactorX(), g.FactorY()))
}

// Stats returns the frame counters.
func (g *Graphics) Stats() render.Stats {
	return g.compositor.Stats()
}

func (g *Graphics) submit(p render.Primitive) error {
	if g.closed {
		return ErrClosed
	}
	return g.compositor.Submit(p)
}

// DrawLine queues a line from (x1, y1) to (x2, y2) with the color
// interpolated from c1 to c2.
func (g *Graphics) DrawLine(x1, y1 float64, c1 Color, x2, y2 float64, c2 Color, z ZPos, mode AlphaMode) error {
	return g.submit(render.NewLine(
		render.Vertex{X: x1, Y: y1, Color: c1},
		render.Vertex{X: x2, Y: y2, Color: c2},
		z, mode))
}

// DrawTriangle queues a filled triangle with per-vertex colors.
func (g *Graphics) DrawTriangle(x1, y1 float64, c1 Color, x2, y2 float64, c2 Color,
	x3, y3 float64, c3 Color, z ZPos, mode AlphaMode,
) error {
	return g.submit(render.NewTriangle(
		render.Vertex{X: x1, Y: y1, Color: c1},
		render.Vertex{X: x2, Y: y2, Color: c2},
		render.Vertex{X: x3, Y: y3, Color: c3},
		z, mode))
}

// DrawQuad queues a filled quad with per-vertex colors. The corners go
// around the perimeter; the quad is drawn as the triangles (1, 2, 3) and
// (1, 3, 4).
func (g *Graphics) DrawQuad(x1, y1 float64, c1 Color, x2, y2 float64, c2 Color,
	x3, y3 float64, c3 Color, x4, y4 float64, c4 Color, z ZPos, mode AlphaMode,
) error {
	return g.submit(render.NewQuad(
		render.Vertex{X: x1, Y: y1, Color: c1},
		render.Vertex{X: x2, Y: y2, Color: c2},
		render.Vertex{X: x3, Y: y3, Color: c3},
		render.Vertex{X: x4, Y: y4, Color: c4},
		z, mode))
}

// DrawImage queues img with its top-left corner at (x, y), scaled by
// scaleX and scaleY and tinted by c. Negative scales mirror the image.
func (g *Graphics) DrawImage(img *Image, x, y float64, z ZPos, scaleX, scaleY float64, c Color, mode AlphaMode) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrReleasedImage)
	}
	w := float64(img.Width()) * scaleX
	h := float64(img.Height()) * scaleY
	return g.DrawImageQuad(img,
		x, y, c,
		x+w, y, c,
		x+w, y+h, c,
		x, y+h, c,
		z, mode)
}

// DrawImageQuad queues img mapped onto an arbitrary quad. The corners map
// to the image's top-left, top-right, bottom-right and bottom-left, and
// their colors modulate the texels.
func (g *Graphics) DrawImageQuad(img *Image, x1, y1 float64, c1 Color, x2, y2 float64, c2 Color,
	x3, y3 float64, c3 Color, x4, y4 float64, c4 Color, z ZPos, mode AlphaMode,
) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrReleasedImage)
	}
	tex := img.Texture()
	if tex == nil {
		return ErrReleasedImage
	}
	u0, v0, u1, v1 := img.TexCoords()
	p := render.NewQuad(
		render.Vertex{X: x1, Y: y1, Color: c1, U: u0, V: v0},
		render.Vertex{X: x2, Y: y2, Color: c2, U: u1, V: v0},
		render.Vertex{X: x3, Y: y3, Color: c3, U: u1, V: v1},
		render.Vertex{X: x4, Y: y4, Color: c4, U: u0, V: v1},
		z, mode)
	p.Texture = tex
	return g.submit(p)
}

// CreateImage copies the w x h rectangle at (x, y) of src into the texture
// atlas. flags selects, per edge, soft or hard. A soft edge is padded with a
// copy of the source edge pixels. A hard edge has no padding and sits flush
// against whatever is packed next to it, so bilinear sampling at that edge
// may read the neighbouring block. A rectangle outside src returns
// ErrOutOfBounds.
func (g *Graphics) CreateImage(src image.Image, x, y, w, h int, flags BorderFlags) (*Image, error) {
	if g.closed {
		return nil, ErrClosed
	}
	return g.carver.CreateImage(src, x, y, w, h, flags)
}

// Close abandons an open frame, releases every atlas page and closes the
// backend. Images created by g cannot be drawn afterwards. Close is
// idempotent.
func (g *Graphics) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.compositor.Abandon()
	err := errors.Join(g.carver.Close(), g.backend.Close())
	Logger().Info("gfx: graphics closed", "frames", g.compositor.Stats().Frames)
	return err
}
