package imgfont

import "errors"
import "image/color"
import "testing"

type fakeSink struct {
	visuals  map[VisualID]GlyphVisual
	owners   map[VisualID]EntityID
	lastID   VisualID
	updates  int
	despawns int
	broken   map[VisualID]bool
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		visuals: make(map[VisualID]GlyphVisual),
		owners:  make(map[VisualID]EntityID),
		broken:  make(map[VisualID]bool),
	}
}

func (self *fakeSink) Spawn(owner EntityID, visual GlyphVisual) VisualID {
	self.lastID++
	self.visuals[self.lastID] = visual
	self.owners[self.lastID] = owner
	return self.lastID
}

func (self *fakeSink) Update(id VisualID, visual GlyphVisual) error {
	self.updates++
	if self.broken[id] { return errors.New("visual vanished") }
	if _, found := self.visuals[id]; !found { return errors.New("unknown visual") }
	self.visuals[id] = visual
	return nil
}

func (self *fakeSink) Despawn(id VisualID) {
	self.despawns++
	delete(self.visuals, id)
	delete(self.owners, id)
}

func testSpriteSetup(t *testing.T) (*Library, FontHandle, *fakeSink, *SpriteRenderer) {
	t.Helper()
	library := NewLibrary()
	handle := newMonoFont(t, library, "ABC", 5, 12)
	sink := newFakeSink()
	return library, handle, sink, NewSpriteRenderer(library, sink)
}

func TestSpriteCountConvergence(t *testing.T) {
	_, handle, sink, renderer := testSpriteSetup(t)
	entity := EntityID(7)
	text := &Text{ Content: "AB", Font: handle }
	config := RenderConfig{ Anchor: AnchorCenter, OffsetCharacters: true }

	// grow from nothing
	renderer.Sync(entity, text, config)
	if count := renderer.GlyphCount(entity); count != 2 { t.Fatalf("expected 2 glyphs, got %d", count) }
	if len(sink.visuals) != 2 { t.Fatalf("expected 2 visuals, got %d", len(sink.visuals)) }

	// grow further: existing visuals update in place
	text.Content = "ABCA"
	renderer.Sync(entity, text, config)
	if count := renderer.GlyphCount(entity); count != 4 { t.Fatalf("expected 4 glyphs, got %d", count) }
	if sink.despawns != 0 { t.Fatalf("expected no despawns, got %d", sink.despawns) }

	// shrink: surplus trailing visuals go away
	text.Content = "C"
	renderer.Sync(entity, text, config)
	if count := renderer.GlyphCount(entity); count != 1 { t.Fatalf("expected 1 glyph, got %d", count) }
	if sink.despawns != 3 { t.Fatalf("expected 3 despawns, got %d", sink.despawns) }
	if len(sink.visuals) != 1 { t.Fatalf("expected 1 visual, got %d", len(sink.visuals)) }

	// equal: structure untouched
	spawnsBefore := sink.lastID
	renderer.Sync(entity, text, config)
	if sink.lastID != spawnsBefore { t.Fatal("expected no new spawns") }
	if count := renderer.GlyphCount(entity); count != 1 { t.Fatalf("expected 1 glyph, got %d", count) }
}

func TestSpriteVisualContent(t *testing.T) {
	library, handle, sink, renderer := testSpriteSetup(t)
	entity := EntityID(1)
	tint := color.RGBA{ R: 255, G: 10, B: 10, A: 255 }
	text := &Text{ Content: "AB", Font: handle }
	config := RenderConfig{ Anchor: AnchorCenter, OffsetCharacters: true, Tint: tint }

	renderer.Sync(entity, text, config)

	font, _ := library.Font(handle)
	entryA, _ := font.Lookup('A')
	for id, visual := range sink.visuals {
		if visual.Tint != tint { t.Fatalf("visual %d has tint %v", id, visual.Tint) }
		if visual.Transform.Scale != 1.0 { t.Fatalf("visual %d has scale %f", id, visual.Transform.Scale) }
	}

	// two glyphs centered as a block: centers at -2.5 and +2.5
	first := sink.visuals[1]
	if first.Region != entryA.Region { t.Fatalf("expected region %d, got %d", entryA.Region, first.Region) }
	if first.Transform.Translation.X != -2.5 { testFailFloats(t, -2.5, first.Transform.Translation.X) }
	second := sink.visuals[2]
	if second.Transform.Translation.X != 2.5 { testFailFloats(t, 2.5, second.Transform.Translation.X) }
}

func TestSpriteMissingFontKeepsVisuals(t *testing.T) {
	library, handle, sink, renderer := testSpriteSetup(t)
	entity := EntityID(3)
	text := &Text{ Content: "AB", Font: handle }
	config := RenderConfig{}

	renderer.Sync(entity, text, config)
	if count := renderer.GlyphCount(entity); count != 2 { t.Fatalf("expected 2 glyphs, got %d", count) }

	// point the text at a font that never loads: stale visuals stay
	text.Font = library.ReserveFont()
	renderer.Sync(entity, text, config)
	renderer.Sync(entity, text, config)
	if count := renderer.GlyphCount(entity); count != 2 { t.Fatalf("expected 2 stale glyphs, got %d", count) }
	if len(sink.visuals) != 2 { t.Fatalf("expected 2 visuals, got %d", len(sink.visuals)) }
	if !renderer.records[entity].reportedMissingFont { t.Fatal("expected the failure to be recorded") }

	// the font comes back: layout resumes and the log re-arms
	text.Font = handle
	renderer.Sync(entity, text, config)
	if renderer.records[entity].reportedMissingFont { t.Fatal("expected the failure flag to reset") }
}

func TestSpriteMissingFontBeforeFirstLayout(t *testing.T) {
	library, _, sink, renderer := testSpriteSetup(t)
	entity := EntityID(9)
	text := &Text{ Content: "AB", Font: library.ReserveFont() }

	renderer.Sync(entity, text, RenderConfig{})
	if count := renderer.GlyphCount(entity); count != 0 { t.Fatalf("expected 0 glyphs, got %d", count) }
	if len(sink.visuals) != 0 { t.Fatalf("expected no visuals, got %d", len(sink.visuals)) }
	if record := renderer.records[entity]; record == nil || !record.reportedMissingFont {
		t.Fatal("expected an empty record with the failure recorded")
	}
}

func TestSpriteInvalidHandleSkipsOneGlyph(t *testing.T) {
	_, handle, sink, renderer := testSpriteSetup(t)
	entity := EntityID(4)
	text := &Text{ Content: "ABC", Font: handle }

	renderer.Sync(entity, text, RenderConfig{})

	// the host drops the middle visual behind the renderer's back
	sink.broken[2] = true
	before := sink.visuals[3]
	text.Content = "CBA"
	renderer.Sync(entity, text, RenderConfig{})

	// the broken glyph is skipped, the rest still update
	if count := renderer.GlyphCount(entity); count != 3 { t.Fatalf("expected 3 glyphs, got %d", count) }
	font, _ := renderer.library.Font(handle)
	entryC, _ := font.Lookup('C')
	if sink.visuals[1].Region != entryC.Region { t.Fatal("expected the first visual to update") }
	if sink.visuals[3] == before { t.Fatal("expected the third visual to update") }
}

func TestSpriteDrop(t *testing.T) {
	_, handle, sink, renderer := testSpriteSetup(t)
	entity := EntityID(5)
	text := &Text{ Content: "ABC", Font: handle }

	renderer.Sync(entity, text, RenderConfig{})
	renderer.Drop(entity)
	if count := renderer.GlyphCount(entity); count != 0 { t.Fatalf("expected 0 glyphs, got %d", count) }
	if len(sink.visuals) != 0 { t.Fatalf("expected no visuals, got %d", len(sink.visuals)) }

	// dropping an untracked entity is a no-op
	renderer.Drop(EntityID(12345))
}

func TestSpriteSeparateEntities(t *testing.T) {
	_, handle, sink, renderer := testSpriteSetup(t)
	first := &Text{ Content: "AB", Font: handle }
	second := &Text{ Content: "C", Font: handle }

	renderer.Sync(EntityID(1), first, RenderConfig{})
	renderer.Sync(EntityID(2), second, RenderConfig{})
	if count := renderer.GlyphCount(EntityID(1)); count != 2 { t.Fatalf("expected 2 glyphs, got %d", count) }
	if count := renderer.GlyphCount(EntityID(2)); count != 1 { t.Fatalf("expected 1 glyph, got %d", count) }

	renderer.Drop(EntityID(1))
	if len(sink.visuals) != 1 { t.Fatalf("expected 1 visual left, got %d", len(sink.visuals)) }
	if sink.owners[3] != EntityID(2) { t.Fatal("expected the survivor to belong to entity 2") }
}
