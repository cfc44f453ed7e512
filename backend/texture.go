package backend

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx/internal/blend"
)

// Texture is an RGBA8 texture owned by a Software backend.
//
// It is sampled with linear filtering and clamp-to-edge addressing, the
// sampler state gputypes.LinearSamplerDescriptor describes.
type Texture struct {
	width, height int
	pix           []byte
	owner         *Software
	destroyed     bool
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Format returns the texel format.
func (t *Texture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool { return t.destroyed }

// Destroy releases the texture. Further updates fail and draws using it
// return ErrTextureDestroyed. Destroy is idempotent.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.pix = nil
	if t.owner != nil {
		delete(t.owner.textures, t)
	}
}

// UpdateData replaces the whole texture.
func (t *Texture) UpdateData(data []byte) error {
	return t.UpdateRegion(0, 0, t.width, t.height, data)
}

// UpdateRegion replaces the w x h block at (x, y) with densely packed RGBA
// rows.
func (t *Texture) UpdateRegion(x, y, w, h int, data []byte) error {
	if t.destroyed {
		return ErrTextureDestroyed
	}
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > t.width || y+h > t.height {
		return fmt.Errorf("%w: region %dx%d at (%d,%d) outside %dx%d texture",
			ErrTextureData, w, h, x, y, t.width, t.height)
	}
	if len(data) != w*h*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrTextureData, len(data), w*h*4)
	}
	stride := t.width * 4
	for row := 0; row < h; row++ {
		dst := (y+row)*stride + x*4
		copy(t.pix[dst:dst+w*4], data[row*w*4:(row+1)*w*4])
	}
	return nil
}

// At returns the texel at (x, y), clamped to the texture.
func (t *Texture) At(x, y int) color.NRGBA {
	return nrgba(t.texel(x, y))
}

func (t *Texture) texel(x, y int) blend.Pixel {
	x = clamp(x, 0, t.width-1)
	y = clamp(y, 0, t.height-1)
	i := (y*t.width + x) * 4
	p := t.pix[i : i+4 : i+4]
	return blend.Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Sample returns the bilinear sample at normalized coordinates (u, v).
// Texel centres sit at (i+0.5)/size; coordinates beyond the texture clamp
// to the edge texels.
func (t *Texture) Sample(u, v float64) blend.Pixel {
	if t.destroyed {
		return blend.Pixel{}
	}

	fx := u*float64(t.width) - 0.5
	fy := v*float64(t.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	p00 := t.texel(x0, y0)
	p10 := t.texel(x0+1, y0)
	p01 := t.texel(x0, y0+1)
	p11 := t.texel(x0+1, y0+1)

	return blend.Pixel{
		R: lerp2D(p00.R, p10.R, p01.R, p11.R, tx, ty),
		G: lerp2D(p00.G, p10.G, p01.G, p11.G, tx, ty),
		B: lerp2D(p00.B, p10.B, p01.B, p11.B, tx, ty),
		A: lerp2D(p00.A, p10.A, p01.A, p11.A, tx, ty),
	}
}

func lerp2D(v00, v10, v01, v11 byte, tx, ty float64) byte {
	top := float64(v00)*(1-tx) + float64(v10)*tx
	bottom := float64(v01)*(1-tx) + float64(v11)*tx
	return byte(math.Round(top*(1-ty) + bottom*ty))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
