package atlas

import "errors"

var (
	// ErrOutOfBounds is returned when a carve rectangle is empty or does not
	// lie inside the source bitmap.
	ErrOutOfBounds = errors.New("atlas: region out of bounds")

	// ErrClosed is returned by a Carver after Close.
	ErrClosed = errors.New("atlas: carver closed")

	// ErrUploadUnsupported is returned when a page texture accepts neither
	// region nor whole-texture updates.
	ErrUploadUnsupported = errors.New("atlas: texture cannot be updated")
)
