package gfx

import (
	"github.com/gogpu/gfx/atlas"
	"github.com/gogpu/gfx/display"
	"github.com/gogpu/gfx/render"
)

// Aliases for the types callers need most, so simple programs only import gfx.
type (
	Color       = render.Color
	ZPos        = render.ZPos
	AlphaMode   = render.AlphaMode
	BorderFlags = atlas.BorderFlags
	Image       = atlas.Image
	Mode        = display.Mode
)

// Predefined colors.
const (
	None    = render.None
	Black   = render.Black
	Gray    = render.Gray
	White   = render.White
	Aqua    = render.Aqua
	Red     = render.Red
	Green   = render.Green
	Blue    = render.Blue
	Yellow  = render.Yellow
	Fuchsia = render.Fuchsia
	Cyan    = render.Cyan
)

// Alpha modes.
const (
	AlphaDefault  = render.AlphaDefault
	AlphaAdditive = render.AlphaAdditive
	AlphaMultiply = render.AlphaMultiply
)

// Border flags for CreateImage.
const (
	BorderSoft       = atlas.Soft
	BorderHardLeft   = atlas.HardLeft
	BorderHardTop    = atlas.HardTop
	BorderHardRight  = atlas.HardRight
	BorderHardBottom = atlas.HardBottom
	BorderHard       = atlas.Hard
)

// ARGB builds a color from channel values clamped to [0, 255].
func ARGB(a, r, g, b int) Color { return render.ARGB(a, r, g, b) }

// RGB builds an opaque color.
func RGB(r, g, b int) Color { return render.RGB(r, g, b) }
