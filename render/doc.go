// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render orders and composites the 2D primitives of a frame.
//
// A frame is a list of lines, triangles and quads, each vertex carrying its
// own [Color], each primitive carrying a paint order ([ZPos]) and a blend
// selector ([AlphaMode]). The [Compositor] collects them in a [Queue] while
// the frame is open and, when the frame ends, hands them to a [Backend] in
// ascending Z order. Primitives with equal Z keep their submission order.
//
// # Frame Lifecycle
//
//	comp := render.NewCompositor(b)
//
//	if err := comp.Begin(render.Black); err != nil {
//	    // errors.Is(err, render.ErrDeviceUnavailable): skip this frame
//	    return
//	}
//	comp.Submit(render.NewQuad(v0, v1, v2, v3, 0, render.AlphaDefault))
//	err := comp.End(render.Identity())
//
// # Backends
//
// A [Backend] is the paintable device surface. It receives primitives one at
// a time in paint order with device coordinates, and maps each primitive's
// [AlphaMode] to a blend state through [AlphaMode.BlendState]. The software
// backend in package backend evaluates that state per pixel; a GPU backend
// would bind it to its pipeline.
//
// # Quads
//
// Quad vertices are given in perimeter order. A quad is drawn as the two
// triangles (v0, v1, v2) and (v0, v2, v3), which share the v0-v2 diagonal.
// Backends must cover each pixel of that diagonal once, otherwise
// translucent quads show a seam.
//
// # Thread Safety
//
// Compositor and Queue are not safe for concurrent use. A frame is driven
// from a single goroutine.
package render
