package imgfont

import "fmt"
import "image"
import "image/color"

import "github.com/jens-hj/imgfont/geom"

// A RenderConfig controls how one layout pass positions and styles
// its glyphs. It is a small value type, orthogonal to [Text]: the
// same text can be laid out with different configs (the two backends
// do exactly that).
type RenderConfig struct {
	// Which point of the text block sits at the text's logical
	// position.
	Anchor Anchor

	// Whether each glyph gets the extra half-width centering nudge.
	// Glyph visuals with a center pivot (sprite backend) need it;
	// left-edge compositing (image backend) doesn't.
	OffsetCharacters bool

	// Whether the text's target height scales glyph dimensions at
	// all. The image backend composites at native size first and
	// only scales afterwards, so it starts with this off.
	ApplyScaling bool

	// Extra space added to every glyph's width, in pixels at the
	// font's native height; it scales along with the text.
	LetterSpacing float32

	// How fractional scaled dimensions are snapped.
	ScalingMode ScalingMode

	// Uniform tint applied to every glyph.
	Tint color.RGBA
}

// Converts a whole-pixel letter spacing to the float32 the config
// carries. Purely a readability helper for pixel-perfect use cases.
func LetterSpacingPx(pixels int) float32 {
	return float32(pixels)
}

// A RenderContext binds a font, a text and a render configuration
// together for the duration of one layout pass, and answers every
// geometric question the backends have: per-character dimensions,
// advances and transforms, total text width, maximum glyph height.
//
// Contexts are short-lived: construct one per change notification,
// run the pass, throw it away. The memoized max height is only
// coherent within that lifetime, so a context must never be kept
// across text or font mutations.
type RenderContext struct {
	font     *Font
	text     *Text
	config   RenderConfig
	atlases  []*Atlas
	filtered FilteredText

	// Cached maximum glyph height; 0 means "not computed yet", which
	// is unambiguous because the real value is floored at 1.
	maxHeight int
}

// Creates a render context for one layout pass, resolving the font
// and every atlas it references out of the library.
//
// Construction fails with [ErrFontNotLoaded] or [ErrAtlasNotLoaded]
// while the assets are still loading. This is an expected transient
// state, not a fault: callers must tolerate repeated failures across
// repeated layout attempts and simply retry on the next change
// notification.
func NewRenderContext(library *Library, text *Text, config RenderConfig) (*RenderContext, error) {
	font, found := library.Font(text.Font)
	if !found { return nil, fmt.Errorf("font %d: %w", text.Font, ErrFontNotLoaded) }

	atlases := make([]*Atlas, len(font.atlases))
	for index, handle := range font.atlases {
		atlas, found := library.Atlas(handle)
		if !found { return nil, fmt.Errorf("atlas %d: %w", handle, ErrAtlasNotLoaded) }
		atlases[index] = atlas
	}

	return &RenderContext{
		font:     font,
		text:     text,
		config:   config,
		atlases:  atlases,
		filtered: font.Filter(text.Content),
	}, nil
}

// Returns the filtered text this context lays out.
func (self *RenderContext) Text() FilteredText { return self.filtered }

// Returns the render configuration this context was built with.
func (self *RenderContext) Config() RenderConfig { return self.config }

// Flips the [RenderConfig.ApplyScaling] flag. The image backend uses
// this between its native-size compositing pass and its resize pass;
// there is no other reason to mutate a live context.
func (self *RenderContext) SetApplyScaling(apply bool) {
	self.config.ApplyScaling = apply
}

// Returns the uniform scale factor implied by the text's target
// height: targetHeight / maxHeight, or 1 when no target height is
// set. A target height of zero legally yields scale zero.
func (self *RenderContext) Scale() float32 {
	if !self.text.HasHeight { return 1.0 }
	return self.text.Height / float32(self.MaxHeight())
}

// Returns the height of the tallest glyph among the filtered
// characters, at native size. Never less than 1, so it is always a
// safe divisor, even for empty text or zero-height regions.
//
// The value is computed on first access and memoized for the rest of
// the context's lifetime.
func (self *RenderContext) MaxHeight() int {
	if self.maxHeight == 0 {
		maxHeight := 1
		iter := self.filtered.Iter()
		for character := iter.Next(); character != -1; character = iter.Next() {
			height := self.region(character).Dy()
			if height > maxHeight { maxHeight = height }
		}
		self.maxHeight = maxHeight
	}
	return self.maxHeight
}

// Returns the glyph dimensions for the given character: the atlas
// region size, width padded by the letter spacing, both passed
// through the scaling mode when a target height is set and
// [RenderConfig.ApplyScaling] is on.
func (self *RenderContext) CharacterDimensions(character rune) (width, height float32) {
	rect := self.region(character)
	width = float32(rect.Dx()) + self.config.LetterSpacing
	height = float32(rect.Dy())

	if self.text.HasHeight && self.config.ApplyScaling {
		scaleFactor := self.text.Height / float32(self.MaxHeight())
		width = self.config.ScalingMode.Apply(width, scaleFactor)
		height = self.config.ScalingMode.Apply(height, scaleFactor)
	}
	return width, height
}

// Returns the total width of the filtered text: the sum of every
// character's dimensions. Recomputed on every call; contexts are
// discarded after one pass, so there is nothing worth memoizing here.
func (self *RenderContext) TextWidth() float32 {
	width := float32(0)
	iter := self.filtered.Iter()
	for character := iter.Next(); character != -1; character = iter.Next() {
		charWidth, _ := self.CharacterDimensions(character)
		width += charWidth
	}
	return width
}

// Returns how far the cursor moves after placing the given character:
// the font's explicit advance if it has one, the glyph width
// otherwise.
func (self *RenderContext) CharacterAdvance(character rune) float32 {
	entry := self.font.charmap[character]
	if entry.HasAdvance { return entry.Advance }
	width, _ := self.CharacterDimensions(character)
	return width
}

// Computes the placement for the given character with the cursor at
// *xPos, then advances the cursor by the character's advance. Both
// backends drive a left-to-right scan with this: same inputs, same
// cursor, bit-identical placements.
func (self *RenderContext) Transform(xPos *float32, character rune) geom.Transform {
	x := *xPos
	width, height := self.CharacterDimensions(character)
	*xPos += self.CharacterAdvance(character)

	entry := self.font.charmap[character]
	return self.config.Anchor.offsets(self.config.OffsetCharacters).computeTransform(transformParams{
		xPos:            x,
		scaledTextWidth: self.TextWidth(),
		scaledWidth:     width,
		scaledHeight:    height,
		maxHeight:       self.MaxHeight(),
		charOffset:      entry.Offset,
		scale:           self.Scale(),
	})
}

// Returns the page handle holding the given character's pixels. Used
// by the sprite backend to point visuals at the right texture.
func (self *RenderContext) Page(character rune) PageHandle {
	return self.font.pages[self.font.charmap[character].Page]
}

// Returns the index of the character's region within its page atlas.
func (self *RenderContext) RegionIndex(character rune) int {
	return self.font.charmap[character].Region
}

// The region rectangle for a filtered character. The filter already
// guaranteed the charmap entry exists and the library validated the
// indices at store time, so a miss here would be data corruption
// upstream, not a condition to handle.
func (self *RenderContext) region(character rune) image.Rectangle {
	entry := self.font.charmap[character]
	return self.atlases[entry.Page].Regions[entry.Region]
}
