package imgfont

import "errors"

// Asset-availability errors are transient: assets load asynchronously,
// so a render pass finding one missing simply ends early and is
// retried wholesale when the next change notification arrives. The
// sprite backend logs these once per entity; the image backend
// returns them to the caller.
var (
	// The text's font handle has no font behind it yet.
	ErrFontNotLoaded = errors.New("image font asset not loaded")

	// One of the font's atlas handles has no atlas behind it yet.
	ErrAtlasNotLoaded = errors.New("font atlas layout not loaded")

	// One of the font's page handles has no image behind it yet.
	// Only the image backend needs page pixels, so only it can
	// report this.
	ErrPageNotLoaded = errors.New("font page texture not loaded")
)

// Data errors indicate a corrupt font description rather than a
// loading race. They are still returned, not panicked: the caller
// decides whether to retry, skip or propagate.
var (
	// A page image has malformed dimensions or a pixel buffer that
	// doesn't match them.
	ErrBadPageImage = errors.New("font page image has malformed pixel data")

	// A glyph region reaches outside its page image.
	ErrRegionOutOfBounds = errors.New("glyph region out of page bounds")
)
