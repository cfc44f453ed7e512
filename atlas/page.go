package atlas

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gfx/internal/logging"
)

// destroyer is implemented by textures that hold releasable resources.
type destroyer interface {
	Destroy()
}

// page is one atlas texture and the images carved into it.
type page struct {
	id        int
	tex       gpucontext.Texture
	packer    *packer
	refs      int
	dedicated bool
	retired   bool

	// shadow mirrors the texture for backends without region updates.
	shadow *image.NRGBA
}

func (p *page) size() (int, int) {
	return p.packer.width, p.packer.height
}

// upload writes block at r.
func (p *page) upload(r image.Rectangle, block *image.NRGBA) error {
	if u, ok := p.tex.(gpucontext.TextureRegionUpdater); ok {
		return u.UpdateRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), block.Pix)
	}

	u, ok := p.tex.(gpucontext.TextureUpdater)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUploadUnsupported, p.tex)
	}
	if p.shadow == nil {
		w, h := p.size()
		p.shadow = image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	copyRect(p.shadow, r, block, image.Point{})
	return u.UpdateData(p.shadow.Pix)
}

// release drops one reference and retires the page when none are left.
func (p *page) release() bool {
	if p.retired {
		return false
	}
	p.refs--
	if p.refs > 0 {
		return false
	}
	p.retire()
	return true
}

func (p *page) retire() {
	if p.retired {
		return
	}
	p.retired = true
	p.shadow = nil
	if d, ok := p.tex.(destroyer); ok {
		d.Destroy()
	}
	logging.Logger().Debug("atlas: page destroyed", "page", p.id)
}
