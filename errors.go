package gfx

import (
	"errors"

	"github.com/gogpu/gfx/atlas"
	"github.com/gogpu/gfx/render"
)

var (
	// ErrOutOfBounds is returned by CreateImage when the carve rectangle does
	// not lie inside the source bitmap.
	ErrOutOfBounds = atlas.ErrOutOfBounds

	// ErrInvalidState is returned by draw calls and End outside a frame, and
	// by BeginFrame while a frame is open.
	ErrInvalidState = render.ErrInvalidState

	// ErrDeviceUnavailable is returned by BeginFrame when the device cannot
	// accept a frame.
	ErrDeviceUnavailable = render.ErrDeviceUnavailable

	// ErrInvalidResolution is returned for a non-positive or non-finite
	// virtual resolution.
	ErrInvalidResolution = errors.New("gfx: invalid virtual resolution")

	// ErrReleasedImage is returned when drawing an image after Release or
	// after the Graphics was closed.
	ErrReleasedImage = errors.New("gfx: image released")

	// ErrClosed is returned by operations on a closed Graphics.
	ErrClosed = errors.New("gfx: graphics closed")
)
