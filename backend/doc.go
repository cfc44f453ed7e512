// Package backend provides render.Backend implementations and a registry to
// select between them.
//
// The software backend rasterizes into an in-memory *image.NRGBA and is
// always available. Other backends, such as the terminal presenter in
// backend/term, register themselves on import:
//
//	import _ "github.com/gogpu/gfx/backend/term"
//
// # Backend Selection
//
// Use Default to get the best available backend, or Get to request one by
// name:
//
//	b := backend.Default()
//
//	b, err := backend.Get(backend.NameSoftware)
//
// # Textures
//
// Textures created by a backend are only valid for that backend. The
// software backend refuses to draw a texture it did not create and reports
// ErrForeignTexture.
package backend
