package imgfont

import "image/color"

import "github.com/jens-hj/imgfont/geom"

// EntityID identifies an owner of a text block in the caller's world.
// The library never interprets these; it only keys its bookkeeping
// with them.
type EntityID uint64

// VisualID identifies one spawned glyph visual in the caller's scene.
// Assigned by the [VisualSink], opaque to the library.
type VisualID uint64

// A GlyphVisual is everything the sink needs to show one glyph:
// which page texture, which region of it, what tint and where.
type GlyphVisual struct {
	Page      PageHandle
	Region    int
	Tint      color.RGBA
	Transform geom.Transform
}

// A VisualSink is the scene the sprite backend renders into. The
// ebiten implementation lives in the ebitenglue subpackage; tests use a
// trivial in-memory one.
//
// Update may fail for visuals the scene dropped behind the backend's
// back. Spawn and Despawn are assumed to succeed.
type VisualSink interface {
	Spawn(owner EntityID, visual GlyphVisual) VisualID
	Update(id VisualID, visual GlyphVisual) error
	Despawn(id VisualID)
}

// Per-entity sprite bookkeeping. The glyph list holds the visuals in
// character order; the flag throttles missing-font logging to one
// line per entity per loading period.
type textRecord struct {
	glyphs              []VisualID
	reportedMissingFont bool
}

// A SpriteRenderer maintains one glyph visual per filtered character
// of every tracked text, updating visuals in place where possible and
// spawning or despawning only the difference when the character count
// changes.
type SpriteRenderer struct {
	library *Library
	sink    VisualSink
	records map[EntityID]*textRecord
}

// Creates a sprite renderer drawing from the given library into the
// given sink.
func NewSpriteRenderer(library *Library, sink VisualSink) *SpriteRenderer {
	return &SpriteRenderer{
		library: library,
		sink:    sink,
		records: make(map[EntityID]*textRecord),
	}
}

// Returns how many glyph visuals the renderer currently holds for the
// entity.
func (self *SpriteRenderer) GlyphCount(entity EntityID) int {
	record, tracked := self.records[entity]
	if !tracked { return 0 }
	return len(record.glyphs)
}

// Drop despawns every glyph visual owned by the entity and forgets
// its record. Call it when the entity itself goes away.
func (self *SpriteRenderer) Drop(entity EntityID) {
	record, tracked := self.records[entity]
	if !tracked { return }
	for _, id := range record.glyphs { self.sink.Despawn(id) }
	delete(self.records, entity)
}

// Sync reconciles the entity's glyph visuals with its current text.
// Existing visuals are updated in place, surplus ones despawned,
// missing ones spawned; after a successful pass the visual count
// equals the filtered character count exactly.
//
// While the font or its atlases are still loading, existing visuals
// are deliberately left untouched: stale text beats flicker. The
// failure is logged once per entity and the log re-arms as soon as a
// pass succeeds.
func (self *SpriteRenderer) Sync(entity EntityID, text *Text, config RenderConfig) {
	record, tracked := self.records[entity]

	context, err := NewRenderContext(self.library, text, config)
	if err != nil {
		if tracked && record.reportedMissingFont { return }
		if !tracked {
			record = &textRecord{}
			self.records[entity] = record
		}
		record.reportedMissingFont = true
		tracer().Errorf("text %d not rendered: %v", entity, err)
		return
	}
	if !tracked {
		record = &textRecord{}
		self.records[entity] = record
	}
	record.reportedMissingFont = false

	xPos := float32(0)
	charCount := 0
	iter := context.Text().Iter()

	// First pass: update existing visuals in place, zipping the
	// character stream against the recorded glyph list and stopping
	// at whichever runs out first.
	for charCount < len(record.glyphs) {
		character := iter.Next()
		if character == -1 { break }
		visual := self.glyphVisual(context, &xPos, character)
		err := self.sink.Update(record.glyphs[charCount], visual)
		if err != nil { tracer().Errorf("glyph %d of text %d not updated: %v", charCount, entity, err) }
		charCount++
	}

	// Shrink: the text got shorter, despawn the surplus.
	for _, id := range record.glyphs[charCount:] { self.sink.Despawn(id) }
	record.glyphs = record.glyphs[:charCount]

	// Grow: the text got longer, spawn the rest. The cursor keeps
	// advancing from where the update loop left it.
	for character := iter.Next(); character != -1; character = iter.Next() {
		visual := self.glyphVisual(context, &xPos, character)
		record.glyphs = append(record.glyphs, self.sink.Spawn(entity, visual))
	}
}

func (self *SpriteRenderer) glyphVisual(context *RenderContext, xPos *float32, character rune) GlyphVisual {
	return GlyphVisual{
		Page:      context.Page(character),
		Region:    context.RegionIndex(character),
		Tint:      context.Config().Tint,
		Transform: context.Transform(xPos, character),
	}
}
