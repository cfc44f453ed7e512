package atlas

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gpucontext"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gfx/internal/logging"
)

// DefaultPageSize is the width and height of a shared atlas page.
const DefaultPageSize = 1024

// Carver packs carved bitmap regions into atlas pages.
//
// A Carver is not safe for concurrent use.
type Carver struct {
	creator  gpucontext.TextureCreator
	pageSize int
	pages    []*page
	nextID   int
	closed   bool
}

// NewCarver returns a carver creating pages through creator. A pageSize of
// zero or less selects DefaultPageSize.
func NewCarver(creator gpucontext.TextureCreator, pageSize int) *Carver {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Carver{creator: creator, pageSize: pageSize}
}

// PageSize returns the size of shared pages.
func (c *Carver) PageSize() int {
	return c.pageSize
}

// Pages returns the number of live pages.
func (c *Carver) Pages() int {
	return len(c.pages)
}

// CreateImage carves the w x h rectangle at (x, y) of src into an atlas page.
// Coordinates are relative to src.Bounds().Min. The rectangle must be
// non-empty and lie inside src, otherwise the error wraps ErrOutOfBounds.
//
// Soft edges in flags get one pixel of padding that repeats the source edge;
// hard edges get none. src is only read.
func (c *Carver) CreateImage(src image.Image, x, y, w, h int, flags BorderFlags) (*Image, error) {
	if c.closed {
		return nil, ErrClosed
	}
	sb := src.Bounds()
	if w <= 0 || h <= 0 || x < 0 || y < 0 || w > sb.Dx()-x || h > sb.Dy()-y {
		return nil, fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d bitmap",
			ErrOutOfBounds, w, h, x, y, sb.Dx(), sb.Dy())
	}

	block, inner := extrude(src, image.Rect(x, y, x+w, y+h).Add(sb.Min), flags)

	p, r, err := c.place(block)
	if err != nil {
		return nil, err
	}

	inner = inner.Add(r.Min)
	pw, ph := p.size()
	p.refs++

	img := &Image{
		carver: c,
		page:   p,
		inner:  inner,
		block:  r,
		u0:     float64(inner.Min.X) / float64(pw),
		v0:     float64(inner.Min.Y) / float64(ph),
		u1:     float64(inner.Max.X) / float64(pw),
		v1:     float64(inner.Max.Y) / float64(ph),
	}
	logging.Logger().Debug("atlas: carved image",
		"page", p.id, "rect", inner, "flags", flags)
	return img, nil
}

// extrude copies rect of src into a new bitmap with one pixel of edge
// replication on every soft side. It returns the bitmap and the position
// of the source pixels inside it.
func extrude(src image.Image, rect image.Rectangle, flags BorderFlags) (*image.NRGBA, image.Rectangle) {
	l, t, r, b := flags.padding()
	w, h := rect.Dx(), rect.Dy()

	block := image.NewNRGBA(image.Rect(0, 0, l+w+r, t+h+b))
	inner := image.Rect(l, t, l+w, t+h)
	xdraw.Draw(block, inner, src, rect.Min, xdraw.Src)

	// Columns first, then full rows, so corners repeat the source corner.
	if l > 0 {
		copyRect(block, image.Rect(0, t, 1, t+h), block, image.Pt(l, t))
	}
	if r > 0 {
		copyRect(block, image.Rect(l+w, t, l+w+1, t+h), block, image.Pt(l+w-1, t))
	}
	full := block.Rect.Dx()
	if t > 0 {
		copyRect(block, image.Rect(0, 0, full, 1), block, image.Pt(0, t))
	}
	if b > 0 {
		copyRect(block, image.Rect(0, t+h, full, t+h+1), block, image.Pt(0, t+h-1))
	}
	return block, inner
}

// copyRect copies src pixels starting at sp into dst's r.
func copyRect(dst *image.NRGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	xdraw.Copy(dst, r.Min, src, image.Rectangle{Min: sp, Max: sp.Add(r.Size())}, xdraw.Src, nil)
}

// place finds room for block, creating a page if needed, and uploads it.
func (c *Carver) place(block *image.NRGBA) (*page, image.Rectangle, error) {
	bw, bh := block.Rect.Dx(), block.Rect.Dy()

	if bw > c.pageSize || bh > c.pageSize {
		// Too big to share: a page of exactly this size, created with the
		// pixels in place.
		p, err := c.newPage(bw, bh, block.Pix)
		if err != nil {
			return nil, image.Rectangle{}, err
		}
		p.dedicated = true
		r, _ := p.packer.allocate(bw, bh)
		return p, r, nil
	}

	for _, p := range c.pages {
		if p.dedicated {
			continue
		}
		if r, ok := p.packer.allocate(bw, bh); ok {
			if err := p.upload(r, block); err != nil {
				p.packer.undo()
				return nil, image.Rectangle{}, fmt.Errorf("atlas: upload to page %d: %w", p.id, err)
			}
			return p, r, nil
		}
	}

	p, err := c.newPage(c.pageSize, c.pageSize, nil)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	r, _ := p.packer.allocate(bw, bh)
	if err := p.upload(r, block); err != nil {
		c.drop(p)
		return nil, image.Rectangle{}, fmt.Errorf("atlas: upload to page %d: %w", p.id, err)
	}
	return p, r, nil
}

// newPage creates a w x h page texture. A nil data slice starts it
// transparent.
func (c *Carver) newPage(w, h int, data []byte) (*page, error) {
	if data == nil {
		data = make([]byte, w*h*4)
	}
	tex, err := c.creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		return nil, fmt.Errorf("atlas: create %dx%d page: %w", w, h, err)
	}
	c.nextID++
	p := &page{id: c.nextID, tex: tex, packer: newPacker(w, h)}
	c.pages = append(c.pages, p)
	logging.Logger().Debug("atlas: page created", "page", p.id, "width", w, "height", h)
	return p, nil
}

func (c *Carver) release(p *page) {
	if p.release() {
		c.pages = slices.DeleteFunc(c.pages, func(q *page) bool { return q == p })
	}
}

// drop destroys a page that never received an image.
func (c *Carver) drop(p *page) {
	p.retire()
	c.pages = slices.DeleteFunc(c.pages, func(q *page) bool { return q == p })
}

// Utilization returns, per live page, the fraction of its area in use.
func (c *Carver) Utilization() []float64 {
	out := make([]float64, len(c.pages))
	for i, p := range c.pages {
		out[i] = p.packer.utilization()
	}
	return out
}

// Close destroys every page. Images carved earlier no longer have a texture;
// releasing them is still allowed.
func (c *Carver) Close() error {
	if c.closed {
		return nil
	}
	for _, p := range c.pages {
		p.retire()
	}
	c.pages = nil
	c.closed = true
	return nil
}
