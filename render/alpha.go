// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// AlphaMode selects the blend function a primitive is composited with.
// The zero value is AlphaDefault.
type AlphaMode uint8

const (
	// AlphaDefault is standard alpha-over:
	// dst = src*srcA + dst*(1-srcA).
	AlphaDefault AlphaMode = iota

	// AlphaAdditive adds the alpha-weighted source to the destination:
	// dst = src*srcA + dst. Used for glows and particles.
	AlphaAdditive

	// AlphaMultiply darkens the destination by the source color:
	// dst = src*dst. Destination alpha is kept.
	AlphaMultiply
)

// String returns the mode name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaDefault:
		return "Default"
	case AlphaAdditive:
		return "Additive"
	case AlphaMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m AlphaMode) Valid() bool {
	return m <= AlphaMultiply
}

// BlendState returns the fixed-function blend state for m. Unknown modes
// fall back to alpha-over.
func (m AlphaMode) BlendState() gputypes.BlendState {
	switch m {
	case AlphaAdditive:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case AlphaMultiply:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDst,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	default:
		return gputypes.BlendStateAlpha()
	}
}
