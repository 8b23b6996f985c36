package imgfont

import "fmt"
import "image"

// Handles are opaque references into a [Library]. The zero value of
// each handle type is never allocated and can be used as "no asset".
type FontHandle uint32
type AtlasHandle uint32
type PageHandle uint32

// The kinds of [FontEvent] a library emits.
type FontEventKind uint8

const (
	// The font asset became available for the first time.
	FontLoaded FontEventKind = iota

	// An already-available font was replaced with a new value
	// (hot reload).
	FontModified
)

// A change notification for a font asset. Hosts drain these once per
// scheduling tick (see [Library.DrainFontEvents]) and re-run the
// layout pass for every affected text entity (see [MarkChangedFonts]).
type FontEvent struct {
	Kind FontEventKind
	Font FontHandle
}

// A collection of font assets and the page images and atlases they
// reference, accessible by handle.
//
// The goal of a library is to give texts something stable to point at
// while the underlying assets come and go: a [Text] holds a
// [FontHandle] that may be reserved before the font finishes loading,
// and render passes that find the asset missing simply report
// "not ready" and retry on the next change event.
//
// A library is not safe for concurrent mutation; it is meant to be
// owned by the host's update loop, which is also the only place that
// drains events.
type Library struct {
	fonts   map[FontHandle]*Font
	atlases map[AtlasHandle]*Atlas
	pages   map[PageHandle]*image.RGBA

	// Page-to-atlas pairing recorded as fonts are stored, so sinks
	// that only hold a page handle can still resolve region rects.
	pageAtlas map[PageHandle]AtlasHandle

	lastFont  FontHandle
	lastAtlas AtlasHandle
	lastPage  PageHandle

	events []FontEvent
}

// Creates a new, empty asset [Library].
func NewLibrary() *Library {
	return &Library{
		fonts:     make(map[FontHandle]*Font),
		atlases:   make(map[AtlasHandle]*Atlas),
		pages:     make(map[PageHandle]*image.RGBA),
		pageAtlas: make(map[PageHandle]AtlasHandle),
	}
}

// Stores a page image and returns its handle.
func (self *Library) AddPage(page *image.RGBA) PageHandle {
	self.lastPage++
	self.pages[self.lastPage] = page
	return self.lastPage
}

// Replaces the image behind an existing page handle. Fonts referencing
// the handle observe the new pixels on their next render pass.
func (self *Library) SetPage(handle PageHandle, page *image.RGBA) {
	self.pages[handle] = page
}

// Returns the page image for the given handle, or (nil, false) if the
// page hasn't been loaded yet.
func (self *Library) Page(handle PageHandle) (*image.RGBA, bool) {
	page, found := self.pages[handle]
	return page, found
}

// Stores an atlas and returns its handle.
func (self *Library) AddAtlas(atlas *Atlas) AtlasHandle {
	self.lastAtlas++
	self.atlases[self.lastAtlas] = atlas
	return self.lastAtlas
}

// Returns the atlas for the given handle, or (nil, false) if the
// atlas hasn't been loaded yet.
func (self *Library) Atlas(handle AtlasHandle) (*Atlas, bool) {
	atlas, found := self.atlases[handle]
	return atlas, found
}

// Returns the atlas describing the given page's glyph regions, or
// (nil, false) if no stored font pairs the page with an atlas yet.
func (self *Library) PageAtlas(handle PageHandle) (*Atlas, bool) {
	atlasHandle, found := self.pageAtlas[handle]
	if !found { return nil, false }
	atlas, found := self.atlases[atlasHandle]
	return atlas, found
}

// Allocates a font handle without providing the font yet. This models
// asynchronous loading: texts can reference the handle immediately,
// render passes will report "not ready" until [Library.SetFont] fills
// it in.
func (self *Library) ReserveFont() FontHandle {
	self.lastFont++
	return self.lastFont
}

// Stores a font behind a previously reserved (or already filled)
// handle and emits the corresponding [FontEvent]. The font is
// validated first: a charmap entry with a dangling page or region
// index is a programming error in the loader, reported here once so
// the layout hot path never has to defend against it.
func (self *Library) SetFont(handle FontHandle, font *Font) error {
	err := self.validateFont(font)
	if err != nil { return err }

	kind := FontModified
	_, present := self.fonts[handle]
	if !present { kind = FontLoaded }
	self.fonts[handle] = font
	for index, page := range font.pages { self.pageAtlas[page] = font.atlases[index] }
	self.events = append(self.events, FontEvent{ Kind: kind, Font: handle })
	tracer().Debugf("library stores font %d (%d pages, %d characters)", handle, font.NumPages(), font.NumCharacters())
	return nil
}

// Shorthand for [Library.ReserveFont] followed by [Library.SetFont].
func (self *Library) AddFont(font *Font) (FontHandle, error) {
	handle := self.ReserveFont()
	err := self.SetFont(handle, font)
	if err != nil { return 0, err }
	return handle, nil
}

// Returns the font for the given handle, or (nil, false) if the font
// hasn't been loaded yet.
func (self *Library) Font(handle FontHandle) (*Font, bool) {
	font, found := self.fonts[handle]
	return font, found
}

// Returns all font events accumulated since the previous drain and
// clears the queue.
func (self *Library) DrainFontEvents() []FontEvent {
	events := self.events
	self.events = nil
	return events
}

func (self *Library) validateFont(font *Font) error {
	if font == nil { return fmt.Errorf("can't store a nil font") }
	if len(font.pages) == 0 {
		return fmt.Errorf("font has no pages")
	}
	if len(font.pages) != len(font.atlases) {
		return fmt.Errorf("font has %d pages but %d atlases", len(font.pages), len(font.atlases))
	}
	for character, entry := range font.charmap {
		if entry.Page < 0 || entry.Page >= len(font.atlases) {
			return fmt.Errorf("character %q references page %d of a %d-page font", character, entry.Page, len(font.pages))
		}
		atlas, found := self.atlases[font.atlases[entry.Page]]
		if !found {
			return fmt.Errorf("character %q references atlas %d, which is not loaded", character, font.atlases[entry.Page])
		}
		if entry.Region < 0 || entry.Region >= len(atlas.Regions) {
			return fmt.Errorf("character %q references region %d of a %d-region atlas", character, entry.Region, len(atlas.Regions))
		}
	}
	return nil
}
