// Package blend evaluates fixed-function blend states on 8-bit pixels.
//
// A GPU backend hands a gputypes.BlendState to the pipeline; the software
// backend hands the same state to Apply, so both paths share one vocabulary
// for what an alpha mode means.
//
// Channels are straight (non-premultiplied) alpha in the range 0-255.
//
// References:
//   - WebGPU blend state: https://www.w3.org/TR/webgpu/#blend-state
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

import "github.com/gogpu/gputypes"

// Pixel is one RGBA sample with straight alpha.
type Pixel struct {
	R, G, B, A byte
}

// Apply combines src with dst using state and returns the new destination.
//
// For each channel the result is op(src*srcFactor, dst*dstFactor), clamped
// to 0-255. Constant blend factors read the blend constant as opaque white.
func Apply(state gputypes.BlendState, src, dst Pixel) Pixel {
	return Pixel{
		R: channel(state.Color, src.R, dst.R, src, dst, false),
		G: channel(state.Color, src.G, dst.G, src, dst, false),
		B: channel(state.Color, src.B, dst.B, src, dst, false),
		A: channel(state.Alpha, src.A, dst.A, src, dst, true),
	}
}

// channel evaluates one blend component for a single channel pair.
func channel(c gputypes.BlendComponent, s, d byte, src, dst Pixel, alpha bool) byte {
	sf := factor(c.SrcFactor, 255, s, d, src, dst, alpha)
	df := factor(c.DstFactor, 0, s, d, src, dst, alpha)

	switch c.Operation {
	case gputypes.BlendOperationMin:
		// min and max ignore the factors
		return minByte(s, d)
	case gputypes.BlendOperationMax:
		return maxByte(s, d)
	}

	st := mulDiv255(s, sf)
	dt := mulDiv255(d, df)

	switch c.Operation {
	case gputypes.BlendOperationSubtract:
		return subClamp(st, dt)
	case gputypes.BlendOperationReverseSubtract:
		return subClamp(dt, st)
	default:
		return addClamp(st, dt)
	}
}

// factor resolves a blend factor to a 0-255 weight. Undefined factors
// resolve to undef, which makes a zero BlendState a plain replace.
func factor(f gputypes.BlendFactor, undef, s, d byte, src, dst Pixel, alpha bool) byte {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 255
	case gputypes.BlendFactorSrc:
		return s
	case gputypes.BlendFactorOneMinusSrc:
		return inv255(s)
	case gputypes.BlendFactorSrcAlpha:
		return src.A
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return inv255(src.A)
	case gputypes.BlendFactorDst:
		return d
	case gputypes.BlendFactorOneMinusDst:
		return inv255(d)
	case gputypes.BlendFactorDstAlpha:
		return dst.A
	case gputypes.BlendFactorOneMinusDstAlpha:
		return inv255(dst.A)
	case gputypes.BlendFactorSrcAlphaSaturated:
		if alpha {
			return 255
		}
		return minByte(src.A, inv255(dst.A))
	case gputypes.BlendFactorConstant:
		return 255
	case gputypes.BlendFactorOneMinusConstant:
		return 0
	default:
		return undef
	}
}

// Modulate multiplies p by tint channel-wise. Textured primitives use it to
// tint texels with the interpolated vertex color.
func Modulate(p, tint Pixel) Pixel {
	return Pixel{
		R: mulDiv255(p.R, tint.R),
		G: mulDiv255(p.G, tint.G),
		B: mulDiv255(p.B, tint.B),
		A: mulDiv255(p.A, tint.A),
	}
}
