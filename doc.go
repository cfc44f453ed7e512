// Package gfx provides the 2D compositing core of a game graphics layer.
//
// # Overview
//
// A [Graphics] owns a device surface of fixed size, a texture atlas and a
// per-frame primitive queue. Each frame, callers submit colored lines,
// triangles and quads, and textured quads cut from bitmaps, each with a paint
// order ([ZPos]) and a blend selector ([AlphaMode]). When the frame ends the
// primitives are drawn in ascending Z order, with ties kept in submission
// order, and the surface is presented.
//
// # Quick Start
//
//	import "github.com/gogpu/gfx"
//
//	g, err := gfx.New(gfx.Mode{Width: 640, Height: 480, BitDepth: 32})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	if g.Begin(gfx.Black) {
//	    g.DrawQuad(10, 10, gfx.Red, 90, 10, gfx.Red, 90, 90, gfx.Red, 10, 90, gfx.Red, 0, gfx.AlphaDefault)
//	    if err := g.End(); err != nil {
//	        log.Print(err)
//	    }
//	}
//
// # Virtual Resolution
//
// Draw coordinates are virtual. By default the virtual resolution equals the
// device size; [Graphics.SetVirtualResolution] changes it and every vertex is
// scaled by [Graphics.FactorX] and [Graphics.FactorY] when the frame ends.
//
// # Images
//
// [Graphics.CreateImage] copies a rectangle of any [image.Image] into an
// atlas page. Border flags choose, per edge, whether the image is padded with
// its own edge pixels (soft, no filtering seams when scaled) or left flush
// (hard, for tiles that abut). Filtering at a hard edge may read the
// neighbouring block on the page.
//
// # Backends
//
// The software backend renders into an [image.NRGBA] and is always
// available. The terminal backend presents the same frame through tcell
// using half-block cells. Backends register themselves in package backend;
// import a backend package for its side effect to make it selectable:
//
//	import _ "github.com/gogpu/gfx/backend/term"
//
// # Thread Safety
//
// A Graphics is driven from a single goroutine. [SetLogger] and the backend
// registry are safe for concurrent use.
package gfx
