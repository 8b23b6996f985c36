package imgfont

import "image"

import "github.com/jens-hj/imgfont/geom"

// A Character describes where one glyph lives and how it behaves
// during layout: which atlas page holds its pixels, which region of
// that page's [Atlas] bounds them, plus the optional metadata that
// rich font formats (BMFont) provide and simple grid fonts don't.
type Character struct {
	// Index into the font's page/atlas lists.
	Page int

	// Index into the page's [Atlas.Regions].
	Region int

	// Baseline adjustment applied to the glyph at the end of the
	// transform computation, given at the font's native height and
	// scaled with the text. Zero for fonts without per-glyph metrics.
	Offset geom.Vec

	// Horizontal advance override, at native height. Only meaningful
	// when HasAdvance is true; otherwise the glyph width (plus letter
	// spacing) is used as the advance.
	Advance    float32
	HasAdvance bool
}

// An Atlas is the region table of a single font page: for each glyph
// stored in that page, the axis-aligned pixel rectangle bounding it.
type Atlas struct {
	// Pixel size of the page the regions index into.
	Size image.Point

	// Glyph bounding rectangles; [Character.Region] indexes into this.
	Regions []image.Rectangle
}

// Creates an empty atlas for a page of the given pixel size.
func NewAtlas(size image.Point) *Atlas {
	return &Atlas{ Size: size }
}

// Appends a region to the atlas and returns its index.
func (self *Atlas) AddRegion(rect image.Rectangle) int {
	self.Regions = append(self.Regions, rect)
	return len(self.Regions) - 1
}

// A Font maps characters to glyph regions across one or more texture
// pages. Fonts are immutable once stored in a [Library]: reloading a
// font from disk produces a brand-new Font value and a [FontEvent],
// never an in-place edit, so render passes can borrow a font without
// worrying about it changing under them.
//
// Every charmap entry must index a valid page and a valid region of
// that page's atlas. [Library.SetFont] enforces this at store time,
// which is why the layout hot path never checks it again.
type Font struct {
	pages   []PageHandle
	atlases []AtlasHandle
	charmap map[rune]Character
}

// Creates a font from its parts. The i-th atlas describes the regions
// of the i-th page, so both slices must have the same length; this and
// the charmap indices are validated when the font is stored in a
// [Library], not here.
func NewFont(pages []PageHandle, atlases []AtlasHandle, charmap map[rune]Character) *Font {
	return &Font{ pages: pages, atlases: atlases, charmap: charmap }
}

// Returns the entry for the given character. The second return value
// is false when the font doesn't support the character, which is a
// normal outcome, not a fault: unsupported characters are simply
// skipped during rendering.
func (self *Font) Lookup(character rune) (Character, bool) {
	entry, found := self.charmap[character]
	return entry, found
}

// Returns the number of pages in the font.
func (self *Font) NumPages() int { return len(self.pages) }

// Returns the number of characters the font can render.
func (self *Font) NumCharacters() int { return len(self.charmap) }
