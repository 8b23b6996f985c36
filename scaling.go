package imgfont

import "math"

// Scaling modes determine how fractional values are handled when
// glyph dimensions are scaled to match a target text height. Image
// fonts are usually pixel art, so whether a 7.5px-wide scaled glyph
// becomes 7px, 8px or stays fractional is directly visible on screen.
//
// The zero value is [ScaleRound], which is also the default used by
// [RenderConfig].
type ScalingMode uint8

const (
	// Round the scaled value to the nearest whole number, halves
	// rounding away from zero (math.Round). The convention matters:
	// a 15px glyph scaled by 0.5 is 7.5px, and rounding half up vs
	// half to even is a visible one-pixel difference.
	ScaleRound ScalingMode = 0

	// Truncate the scaled value toward zero. Guarantees glyphs never
	// grow past the exact scaled size, at the cost of up to one pixel
	// of accumulated shrinkage per glyph.
	ScaleTruncate ScalingMode = 1

	// Keep the scaled value as is. For sub-pixel positioning and
	// smooth animations, where snapping would make glyphs jitter.
	ScaleExact ScalingMode = 2
)

// Applies the scaling mode to the given value: multiplies it by the
// scale factor and snaps the result according to the mode.
//
// Apply is total: it is defined for zero, negative and even infinite
// scale factors, returns a finite result for finite inputs, and a
// zero factor yields zero in every mode.
func (self ScalingMode) Apply(value, scaleFactor float32) float32 {
	scaled := float64(value) * float64(scaleFactor)
	switch self {
	case ScaleRound    : return float32(math.Round(scaled))
	case ScaleTruncate : return float32(math.Trunc(scaled))
	case ScaleExact    : return float32(scaled)
	default:
		panic("unhandled scaling mode")
	}
}

// Returns a textual representation of the scaling mode.
func (self ScalingMode) String() string {
	switch self {
	case ScaleRound    : return "ScaleRound"
	case ScaleTruncate : return "ScaleTruncate"
	case ScaleExact    : return "ScaleExact"
	default:
		return "ScalingMode(invalid)"
	}
}
