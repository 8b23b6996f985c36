package imgfont

import "github.com/jens-hj/imgfont/geom"

// An Anchor is the normalized point of a text block that ends up at
// the text's logical position. Coordinates live in [-0.5, 0.5]² with
// y pointing up: (0, 0) is the center of the block, (-0.5, 0.5) its
// top-left corner.
//
// The named presets cover the nine standard alignments; custom values
// in between are legal too.
type Anchor struct {
	X float32
	Y float32
}

var (
	AnchorCenter       = Anchor{ 0.0,  0.0}
	AnchorCenterLeft   = Anchor{-0.5,  0.0}
	AnchorCenterRight  = Anchor{ 0.5,  0.0}
	AnchorTopCenter    = Anchor{ 0.0,  0.5}
	AnchorTopLeft      = Anchor{-0.5,  0.5}
	AnchorTopRight     = Anchor{ 0.5,  0.5}
	AnchorBottomCenter = Anchor{ 0.0, -0.5}
	AnchorBottomLeft   = Anchor{-0.5, -0.5}
	AnchorBottomRight  = Anchor{ 0.5, -0.5}
)

// The two offset vectors that together implement anchor alignment:
// whole positions the entire text block relative to the anchor point,
// individual re-centers each glyph within its own advance.
type anchorOffsets struct {
	whole      geom.Vec
	individual geom.Vec
}

// Converts the anchor into its pair of alignment offsets.
//
// centerIndividual requests the extra half-glyph-width nudge that
// center-pivoted glyph visuals need (sprite backend); the image
// backend composites from the glyph's left edge and passes false.
func (self Anchor) offsets(centerIndividual bool) anchorOffsets {
	individual := geom.Vec{}
	if centerIndividual { individual = geom.XY(0.5, 0) }
	return anchorOffsets{
		whole:      geom.XY(self.X, self.Y).Add(individual).Neg(),
		individual: individual,
	}
}

// Everything a single glyph placement depends on. Widths, heights and
// the text width are the post-scaling-policy values from
// [RenderContext.CharacterDimensions]; maxHeight and charOffset are
// raw font-space values that get scaled inside the computation.
type transformParams struct {
	xPos            float32
	scaledTextWidth float32
	scaledWidth     float32
	scaledHeight    float32
	maxHeight       int
	charOffset      geom.Vec
	scale           float32
}

// Composes a glyph's final placement from the alignment offsets and
// the layout parameters. Pure function; the cursor advance happens in
// [RenderContext.Transform], not here.
func (self anchorOffsets) computeTransform(params transformParams) geom.Transform {
	maxHeight := float32(params.maxHeight)

	// cursor position, then block alignment, then per-glyph alignment
	translation := geom.XY(params.xPos, 0)
	translation = translation.Add(geom.XY(
		params.scaledTextWidth*self.whole.X,
		maxHeight*self.whole.Y*params.scale,
	))
	translation = translation.Add(geom.XY(params.scaledWidth*self.individual.X, 0))

	// re-center the glyph within the line's height envelope, so
	// glyphs of differing heights share a baseline instead of all
	// top-aligning to the tallest one. Recovering the unscaled height
	// divides by scale; at scale zero the quotient is non-finite and
	// treated as zero, keeping the degenerate transform legal.
	unscaledHeight := params.scaledHeight / params.scale
	if !geom.IsFinite(unscaledHeight) { unscaledHeight = 0 }
	translation = translation.Add(geom.XY(0, (maxHeight-unscaledHeight)*params.scale*0.5))

	// per-character baseline offset from the font metadata
	translation = translation.Add(params.charOffset.Scale(params.scale))

	return geom.Place(translation, params.scale)
}
