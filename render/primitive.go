// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// ZPos is the paint order of a primitive. Higher values are drawn later,
// on top. Equal values keep submission order.
type ZPos float64

// Kind identifies the geometry of a Primitive.
type Kind uint8

const (
	// KindLine is a one-pixel line between two vertices.
	KindLine Kind = iota + 1
	// KindTriangle is a filled triangle.
	KindTriangle
	// KindQuad is a filled quadrilateral given in perimeter order.
	KindQuad
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindTriangle:
		return "Triangle"
	case KindQuad:
		return "Quad"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// VertexCount returns how many vertices a primitive of kind k uses, or 0 for
// an unknown kind.
func (k Kind) VertexCount() int {
	switch k {
	case KindLine:
		return 2
	case KindTriangle:
		return 3
	case KindQuad:
		return 4
	default:
		return 0
	}
}

// Topology returns the GPU primitive topology used to draw kind k. Quads are
// submitted as two triangles.
func (k Kind) Topology() gputypes.PrimitiveTopology {
	if k == KindLine {
		return gputypes.PrimitiveTopologyLineList
	}
	return gputypes.PrimitiveTopologyTriangleList
}

// Vertex is one corner of a primitive. U and V are texture coordinates and
// are only read for textured quads.
type Vertex struct {
	X, Y  float64
	Color Color
	U, V  float64
}

// Primitive is one queued draw call.
type Primitive struct {
	Kind     Kind
	Vertices [4]Vertex
	Z        ZPos
	Mode     AlphaMode

	// Texture, when set, is sampled with the vertex UVs and modulated by the
	// vertex colors. Only quads may carry a texture.
	Texture gpucontext.Texture
}

// NewLine returns a line primitive.
func NewLine(a, b Vertex, z ZPos, mode AlphaMode) Primitive {
	return Primitive{Kind: KindLine, Vertices: [4]Vertex{a, b}, Z: z, Mode: mode}
}

// NewTriangle returns a triangle primitive.
func NewTriangle(a, b, c Vertex, z ZPos, mode AlphaMode) Primitive {
	return Primitive{Kind: KindTriangle, Vertices: [4]Vertex{a, b, c}, Z: z, Mode: mode}
}

// NewQuad returns a quad primitive. The vertices go around the perimeter.
func NewQuad(a, b, c, d Vertex, z ZPos, mode AlphaMode) Primitive {
	return Primitive{Kind: KindQuad, Vertices: [4]Vertex{a, b, c, d}, Z: z, Mode: mode}
}

// Validate checks the structure of p. Geometry is not inspected: zero-area
// shapes are valid and simply cover nothing.
func (p *Primitive) Validate() error {
	if p.Kind.VertexCount() == 0 {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidPrimitive, uint8(p.Kind))
	}
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: unknown alpha mode %d", ErrInvalidPrimitive, uint8(p.Mode))
	}
	if p.Texture != nil && p.Kind != KindQuad {
		return fmt.Errorf("%w: texture on %s", ErrInvalidPrimitive, p.Kind)
	}
	return nil
}

// Points returns the vertices p actually uses.
func (p *Primitive) Points() []Vertex {
	return p.Vertices[:p.Kind.VertexCount()]
}

// Triangles splits a filled primitive into triangles. A quad becomes
// (v0, v1, v2) and (v0, v2, v3). Lines yield nothing.
func (p *Primitive) Triangles() [][3]Vertex {
	v := &p.Vertices
	switch p.Kind {
	case KindTriangle:
		return [][3]Vertex{{v[0], v[1], v[2]}}
	case KindQuad:
		return [][3]Vertex{{v[0], v[1], v[2]}, {v[0], v[2], v[3]}}
	default:
		return nil
	}
}

// Transform returns a copy of p with every vertex position mapped by m.
func (p Primitive) Transform(m Affine) Primitive {
	if m.IsIdentity() {
		return p
	}
	for i := range p.Vertices {
		p.Vertices[i].X, p.Vertices[i].Y = m.Apply(p.Vertices[i].X, p.Vertices[i].Y)
	}
	return p
}
