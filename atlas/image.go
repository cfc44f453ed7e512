package atlas

import (
	"image"

	"github.com/gogpu/gpucontext"
)

// Image is a carved rectangle living on an atlas page.
//
// The texture-coordinate rectangle is fixed at carve time. An Image is owned
// by whoever created it and must be released once; Release is idempotent.
type Image struct {
	carver *Carver
	page   *page
	inner  image.Rectangle
	block  image.Rectangle

	u0, v0, u1, v1 float64

	released bool
}

// Width returns the width of the carved region in pixels.
func (img *Image) Width() int { return img.inner.Dx() }

// Height returns the height of the carved region in pixels.
func (img *Image) Height() int { return img.inner.Dy() }

// TexCoords returns the normalized texture rectangle of the carved pixels,
// excluding padding.
func (img *Image) TexCoords() (u0, v0, u1, v1 float64) {
	return img.u0, img.v0, img.u1, img.v1
}

// Bounds returns the carved pixels' rectangle on the page.
func (img *Image) Bounds() image.Rectangle { return img.inner }

// Block returns the rectangle reserved on the page, padding included.
func (img *Image) Block() image.Rectangle { return img.block }

// Page returns the id of the page holding the image.
func (img *Image) Page() int { return img.page.id }

// Texture returns the page texture, or nil once the image is released.
func (img *Image) Texture() gpucontext.Texture {
	if img.released || img.page.retired {
		return nil
	}
	return img.page.tex
}

// Released reports whether Release has been called.
func (img *Image) Released() bool { return img.released }

// Release gives up the image. When it was the last image on its page, the
// page texture is destroyed.
func (img *Image) Release() {
	if img.released {
		return
	}
	img.released = true
	img.carver.release(img.page)
}
