package imgfont

import "fmt"
import "image"
import "image/draw"

import xdraw "golang.org/x/image/draw"

// RenderToImage rasterizes the text into a single standalone image.
//
// Glyphs are first composited left to right at the font's native
// size, each blitted at its whole-pixel cursor position; only then,
// if the text has a target height, is the whole strip resized with
// nearest-neighbor sampling. Scaling once at the end keeps pixel art
// crisp: per-glyph scaling would round each glyph independently and
// open up seams.
//
// Empty or fully filtered text yields a 1x1 transparent image, which
// keeps downstream consumers free of nil checks.
//
// Fails with [ErrFontNotLoaded] or [ErrAtlasNotLoaded] while assets
// are loading, [ErrPageNotLoaded] or [ErrBadPageImage] when a page is
// missing or lacks pixel data, and [ErrRegionOutOfBounds] when an
// atlas region spills outside its page.
func RenderToImage(library *Library, text *Text) (*image.RGBA, error) {
	context, err := NewRenderContext(library, text, RenderConfig{
		Anchor:           AnchorCenter,
		OffsetCharacters: false,
		ApplyScaling:     false,
		ScalingMode:      ScaleTruncate,
	})
	if err != nil { return nil, err }

	if context.Text().IsEmpty() {
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}

	width := int(context.TextWidth())
	height := context.MaxHeight()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	xPos := float32(0)
	iter := context.Text().Iter()
	for character := iter.Next(); character != -1; character = iter.Next() {
		page, found := library.Page(context.Page(character))
		if !found {
			return nil, fmt.Errorf("page %d: %w", context.Page(character), ErrPageNotLoaded)
		}
		if page == nil {
			return nil, fmt.Errorf("page %d: %w", context.Page(character), ErrBadPageImage)
		}
		region := context.region(character)
		if !region.In(page.Bounds()) {
			return nil, fmt.Errorf("character %q region %v outside page bounds %v: %w",
				character, region, page.Bounds(), ErrRegionOutOfBounds)
		}

		x := int(xPos)
		context.Transform(&xPos, character) // advances the cursor
		glyphWidth, glyphHeight := region.Dx(), region.Dy()
		target := image.Rect(x, 0, x+glyphWidth, glyphHeight)
		draw.Draw(canvas, target, page, region.Min, draw.Over)
	}

	if !text.HasHeight { return canvas, nil }

	// Resize pass. Scaling flips on so TextWidth reports the final
	// strip width; the height is the target height verbatim.
	context.SetApplyScaling(true)
	scaledWidth := int(context.TextWidth())
	scaledHeight := int(text.Height)
	if scaledWidth < 1 { scaledWidth = 1 }
	if scaledHeight < 1 { scaledHeight = 1 }
	scaled := image.NewRGBA(image.Rect(0, 0, scaledWidth, scaledHeight))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return scaled, nil
}

// An ImageSink receives the finished strips the [ImageRenderer]
// produces and hands back whatever reference the caller's world uses
// for them.
type ImageSink interface {
	Store(owner EntityID, img *image.RGBA)
}

// An ImageRenderer drives [RenderToImage] for tracked entities with
// the same retry-friendly failure handling as the sprite backend:
// transient failures are logged once per entity and the previous
// image, if any, stays in place.
type ImageRenderer struct {
	library  *Library
	sink     ImageSink
	reported map[EntityID]bool
}

// Creates an image renderer drawing from the given library into the
// given sink.
func NewImageRenderer(library *Library, sink ImageSink) *ImageRenderer {
	return &ImageRenderer{
		library:  library,
		sink:     sink,
		reported: make(map[EntityID]bool),
	}
}

// Render rasterizes the entity's text and stores the result in the
// sink. Failures leave the sink untouched; the first failure per
// loading period is logged, later ones are silent until a render
// succeeds again.
func (self *ImageRenderer) Render(entity EntityID, text *Text) {
	img, err := RenderToImage(self.library, text)
	if err != nil {
		if !self.reported[entity] {
			self.reported[entity] = true
			tracer().Errorf("text %d not rendered: %v", entity, err)
		}
		return
	}
	self.reported[entity] = false
	self.sink.Store(entity, img)
}

// Drop forgets the renderer's bookkeeping for the entity.
func (self *ImageRenderer) Drop(entity EntityID) {
	delete(self.reported, entity)
}
