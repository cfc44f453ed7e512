package backend

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx/internal/blend"
	"github.com/gogpu/gfx/internal/logging"
	"github.com/gogpu/gfx/internal/raster"
	"github.com/gogpu/gfx/render"
)

// Software is a CPU backend rendering into an *image.NRGBA framebuffer.
//
// Lines and triangles are scan-converted by internal/raster and every
// covered pixel is blended with the primitive's blend state. Textured quads
// are sampled bilinearly with clamp-to-edge addressing and tinted by the
// interpolated vertex color.
//
// Software is what tests and headless tools draw with. PresentFunc, when
// set, receives the finished frame on Present.
type Software struct {
	// PresentFunc is called by Present with the framebuffer. The image is
	// reused by the next frame and must not be retained.
	PresentFunc func(frame *image.NRGBA) error

	fb       *image.NRGBA
	lost     bool
	closed   bool
	frames   int
	textures map[*Texture]struct{}
}

var (
	_ render.Backend                  = (*Software)(nil)
	_ gpucontext.TextureCreator       = (*Software)(nil)
	_ gpucontext.Texture              = (*Texture)(nil)
	_ gpucontext.TextureUpdater       = (*Texture)(nil)
	_ gpucontext.TextureRegionUpdater = (*Texture)(nil)
)

// NewSoftware returns an uninitialized software backend.
func NewSoftware() *Software {
	return &Software{textures: make(map[*Texture]struct{})}
}

// Init allocates a width x height framebuffer, discarding any previous one.
func (s *Software) Init(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s.fb = image.NewNRGBA(image.Rect(0, 0, width, height))
	logging.Logger().Debug("backend: software surface ready", "width", width, "height", height)
	return nil
}

// Width returns the framebuffer width, or 0 before Init.
func (s *Software) Width() int {
	if s.fb == nil {
		return 0
	}
	return s.fb.Rect.Dx()
}

// Height returns the framebuffer height, or 0 before Init.
func (s *Software) Height() int {
	if s.fb == nil {
		return 0
	}
	return s.fb.Rect.Dy()
}

// Ready reports whether a frame can be drawn.
func (s *Software) Ready() bool {
	return s.fb != nil && !s.closed && !s.lost
}

// SetLost marks the surface lost or restored. While lost, Ready returns
// false and Clear, DrawPrimitive and Present return ErrSurfaceLost. Hosts
// call it when their window is minimized or the device resets.
func (s *Software) SetLost(lost bool) {
	s.lost = lost
}

// Image returns the framebuffer. It is nil before Init.
func (s *Software) Image() *image.NRGBA {
	return s.fb
}

// Frames returns the number of frames presented.
func (s *Software) Frames() int {
	return s.frames
}

func (s *Software) check() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.fb == nil:
		return ErrNotInitialized
	case s.lost:
		return ErrSurfaceLost
	}
	return nil
}

// Clear fills the framebuffer with c.
func (s *Software) Clear(c render.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	px := [4]byte{c.Red(), c.Green(), c.Blue(), c.Alpha()}
	for i := 0; i < len(s.fb.Pix); i += 4 {
		copy(s.fb.Pix[i:i+4], px[:])
	}
	return nil
}

// DrawPrimitive rasterizes p into the framebuffer.
func (s *Software) DrawPrimitive(p *render.Primitive) error {
	if err := s.check(); err != nil {
		return err
	}

	state := p.Mode.BlendState()
	clip := s.fb.Rect
	v := &p.Vertices

	switch p.Kind {
	case render.KindLine:
		raster.Line(point(v[0]), point(v[1]), clip, func(x, y int, t float64) {
			s.blendPixel(x, y, pixel(render.Lerp(v[0].Color, v[1].Color, t)), state)
		})
		return nil

	case render.KindTriangle, render.KindQuad:
		var tex *Texture
		if p.Texture != nil {
			var err error
			if tex, err = s.ownTexture(p.Texture); err != nil {
				return err
			}
		}
		for _, tri := range p.Triangles() {
			s.fillTriangle(tri, tex, state, clip)
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", render.ErrInvalidPrimitive, p.Kind)
	}
}

func (s *Software) fillTriangle(tri [3]render.Vertex, tex *Texture, state gputypes.BlendState, clip image.Rectangle) {
	raster.Triangle(point(tri[0]), point(tri[1]), point(tri[2]), clip, func(x, y int, b0, b1, b2 float64) {
		src := pixel(render.Lerp3(tri[0].Color, tri[1].Color, tri[2].Color, b0, b1, b2))
		if tex != nil {
			u := b0*tri[0].U + b1*tri[1].U + b2*tri[2].U
			v := b0*tri[0].V + b1*tri[1].V + b2*tri[2].V
			src = blend.Modulate(tex.Sample(u, v), src)
		}
		s.blendPixel(x, y, src, state)
	})
}

func (s *Software) ownTexture(t gpucontext.Texture) (*Texture, error) {
	tex, ok := t.(*Texture)
	if !ok || tex.owner != s {
		return nil, ErrForeignTexture
	}
	if tex.destroyed {
		return nil, ErrTextureDestroyed
	}
	return tex, nil
}

func (s *Software) blendPixel(x, y int, src blend.Pixel, state gputypes.BlendState) {
	i := s.fb.PixOffset(x, y)
	d := s.fb.Pix[i : i+4 : i+4]
	out := blend.Apply(state, src, blend.Pixel{R: d[0], G: d[1], B: d[2], A: d[3]})
	d[0], d[1], d[2], d[3] = out.R, out.G, out.B, out.A
}

// Present finishes the frame and hands it to PresentFunc.
func (s *Software) Present() error {
	if err := s.check(); err != nil {
		return err
	}
	s.frames++
	if s.PresentFunc != nil {
		return s.PresentFunc(s.fb)
	}
	return nil
}

// At returns the framebuffer pixel at (x, y).
func (s *Software) At(x, y int) render.Color {
	if s.fb == nil {
		return render.None
	}
	return render.FromColor(s.fb.NRGBAAt(x, y))
}

// NewTextureFromRGBA creates a texture owned by s from width*height*4 bytes
// of straight-alpha RGBA data. A nil data slice yields a transparent
// texture.
func (s *Software) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: texture %dx%d", ErrInvalidSize, width, height)
	}
	t := &Texture{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
		owner:  s,
	}
	if data != nil {
		if err := t.UpdateData(data); err != nil {
			return nil, err
		}
	}
	if s.textures == nil {
		s.textures = make(map[*Texture]struct{})
	}
	s.textures[t] = struct{}{}
	return t, nil
}

// Textures returns the number of live textures.
func (s *Software) Textures() int {
	return len(s.textures)
}

// Close destroys every texture and drops the framebuffer.
func (s *Software) Close() error {
	if s.closed {
		return nil
	}
	for t := range s.textures {
		t.Destroy()
	}
	s.fb = nil
	s.closed = true
	return nil
}

func point(v render.Vertex) raster.Point {
	return raster.Point{X: v.X, Y: v.Y}
}

func pixel(c render.Color) blend.Pixel {
	return blend.Pixel{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

func nrgba(p blend.Pixel) color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
