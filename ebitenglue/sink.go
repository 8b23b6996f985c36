package ebitenglue

import "fmt"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/jens-hj/imgfont"

// A glyphSprite is one retained glyph: the texture slice to draw and
// its current placement.
type glyphSprite struct {
	owner  imgfont.EntityID
	visual imgfont.GlyphVisual
}

// A GlyphSink is an imgfont.VisualSink that retains every spawned
// glyph and draws the whole set each frame. Page images are uploaded
// to the GPU lazily, the first time a glyph from that page is drawn,
// and re-uploaded when the library replaces the page's pixels.
type GlyphSink struct {
	library *imgfont.Library
	pages   map[imgfont.PageHandle]*ebiten.Image
	sprites map[imgfont.VisualID]*glyphSprite
	lastID  imgfont.VisualID
}

// Creates a glyph sink drawing pages from the given library.
func NewGlyphSink(library *imgfont.Library) *GlyphSink {
	return &GlyphSink{
		library: library,
		pages:   make(map[imgfont.PageHandle]*ebiten.Image),
		sprites: make(map[imgfont.VisualID]*glyphSprite),
	}
}

// Spawn retains a new glyph sprite and returns its id.
func (self *GlyphSink) Spawn(owner imgfont.EntityID, visual imgfont.GlyphVisual) imgfont.VisualID {
	self.lastID++
	self.sprites[self.lastID] = &glyphSprite{ owner: owner, visual: visual }
	return self.lastID
}

// Update replaces the state of an existing glyph sprite. It fails
// only if the id is unknown, which means the host dropped the sprite
// behind the renderer's back.
func (self *GlyphSink) Update(id imgfont.VisualID, visual imgfont.GlyphVisual) error {
	sprite, found := self.sprites[id]
	if !found { return fmt.Errorf("unknown glyph sprite %d", id) }
	sprite.visual = visual
	return nil
}

// Despawn discards a glyph sprite. Unknown ids are ignored.
func (self *GlyphSink) Despawn(id imgfont.VisualID) {
	delete(self.sprites, id)
}

// Invalidate drops the GPU copy of a page so the next draw re-uploads
// it. Call it after replacing page pixels via the library (hot
// reload).
func (self *GlyphSink) Invalidate(page imgfont.PageHandle) {
	delete(self.pages, page)
}

// Draw renders every retained glyph onto the target. Placements are
// in y-up coordinates relative to (originX, originY) on the target;
// a glyph's translation names its center point.
func (self *GlyphSink) Draw(target *ebiten.Image, originX, originY float64) {
	for _, sprite := range self.sprites {
		page := self.page(sprite.visual.Page)
		if page == nil { continue }
		atlas, found := self.library.PageAtlas(sprite.visual.Page)
		if !found || sprite.visual.Region >= len(atlas.Regions) { continue }
		region := atlas.Regions[sprite.visual.Region]
		slice := page.SubImage(region).(*ebiten.Image)

		transform := sprite.visual.Transform
		opts := ebiten.DrawImageOptions{ Filter: ebiten.FilterNearest }
		opts.GeoM.Translate(-float64(region.Dx())/2, -float64(region.Dy())/2)
		opts.GeoM.Scale(float64(transform.Scale), float64(transform.Scale))
		opts.GeoM.Translate(
			originX+float64(transform.Translation.X),
			originY-float64(transform.Translation.Y),
		)
		opts.ColorScale.ScaleWithColor(sprite.visual.Tint)
		target.DrawImage(slice, &opts)
	}
}

// SpriteCount reports how many glyph sprites are currently retained.
// Mostly useful for debug overlays.
func (self *GlyphSink) SpriteCount() int { return len(self.sprites) }

func (self *GlyphSink) page(handle imgfont.PageHandle) *ebiten.Image {
	uploaded, found := self.pages[handle]
	if found { return uploaded }
	pixels, found := self.library.Page(handle)
	if !found || pixels == nil { return nil }
	uploaded = ebiten.NewImageFromImage(pixels)
	self.pages[handle] = uploaded
	return uploaded
}
