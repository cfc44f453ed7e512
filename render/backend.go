// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gpucontext"

// Backend is the device surface a Compositor paints into.
//
// Implementations own the framebuffer and the textures created through
// NewTextureFromRGBA. Within a frame the compositor calls Clear once, then
// DrawPrimitive for each primitive in paint order, then Present.
//
// Coordinates passed to DrawPrimitive are device pixels. The blend function
// for a primitive is p.Mode.BlendState().
type Backend interface {
	gpucontext.TextureCreator

	// Init allocates a surface of the given size.
	Init(width, height int) error

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Ready reports whether the surface can accept a frame. It returns false
	// while the surface is lost, for example when a window is minimized.
	Ready() bool

	// Clear fills the whole surface with c, ignoring blending.
	Clear(c Color) error

	// DrawPrimitive rasterizes p onto the surface.
	DrawPrimitive(p *Primitive) error

	// Present makes the finished frame visible.
	Present() error

	// Close releases the surface. The backend cannot be used afterwards.
	Close() error
}
