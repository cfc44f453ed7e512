package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gfx/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when a backend is used before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrClosed is returned when a backend is used after Close.
	ErrClosed = errors.New("backend: closed")

	// ErrSurfaceLost is returned when a lost surface is drawn to or
	// presented. It wraps render.ErrDeviceUnavailable so the compositor
	// abandons the frame.
	ErrSurfaceLost = fmt.Errorf("%w: surface lost", render.ErrDeviceUnavailable)

	// ErrInvalidSize is returned for non-positive surface or texture sizes.
	ErrInvalidSize = errors.New("backend: invalid size")

	// ErrForeignTexture is returned when a primitive carries a texture that
	// was not created by the drawing backend.
	ErrForeignTexture = errors.New("backend: texture belongs to another backend")

	// ErrTextureDestroyed is returned when a destroyed texture is updated or
	// drawn.
	ErrTextureDestroyed = errors.New("backend: texture destroyed")

	// ErrTextureData is returned when uploaded pixel data does not match the
	// target region.
	ErrTextureData = errors.New("backend: invalid texture data")
)
