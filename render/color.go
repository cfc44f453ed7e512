// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit-per-channel color with straight alpha, laid out as
// 0xAARRGGBB.
type Color uint32

// Predefined colors.
const (
	None    Color = 0x00000000
	Black   Color = 0xff000000
	Gray    Color = 0xff808080
	White   Color = 0xffffffff
	Aqua    Color = 0xff00ffff
	Red     Color = 0xffff0000
	Green   Color = 0xff00ff00
	Blue    Color = 0xff0000ff
	Yellow  Color = 0xffffff00
	Fuchsia Color = 0xffff00ff
	Cyan          = Aqua
)

// ARGB builds a color from channel values. Values outside [0, 255] are
// clamped.
func ARGB(a, r, g, b int) Color {
	return Color(uint32(clampByte(a))<<24 |
		uint32(clampByte(r))<<16 |
		uint32(clampByte(g))<<8 |
		uint32(clampByte(b)))
}

// RGB builds an opaque color. Values outside [0, 255] are clamped.
func RGB(r, g, b int) Color {
	return ARGB(255, r, g, b)
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(int(n.A), int(n.R), int(n.G), int(n.B))
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a int) Color {
	return Color(uint32(c)&0x00ffffff | uint32(clampByte(a))<<24)
}

// NRGBA converts c to the standard non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Lerp3 returns the barycentric blend of three vertex colors. Backends use
// it to shade triangle interiors.
func Lerp3(c0, c1, c2 Color, b0, b1, b2 float64) Color {
	ch := func(shift uint) int {
		v := float64(uint8(c0>>shift))*b0 + float64(uint8(c1>>shift))*b1 + float64(uint8(c2>>shift))*b2
		return int(v + 0.5)
	}
	return ARGB(ch(24), ch(16), ch(8), ch(0))
}

// Lerp returns the linear blend of two colors at t in [0, 1].
func Lerp(c0, c1 Color, t float64) Color {
	return Lerp3(c0, c1, 0, 1-t, t, 0)
}
