// imgfont is a layout and rendering engine for image fonts: fonts
// defined by one or more texture pages and a map from characters to
// pixel regions inside those pages. This kind of font is common in
// pixel-art games, where glyphs are drawn by hand directly into an
// atlas instead of being rasterized from a vector outline.
//
// The engine takes a [Font], a [Text] and a [RenderConfig] and turns
// them into positioned, scaled glyph placements. Two backends consume
// those placements:
//   - The sprite backend ([SpriteRenderer]) keeps one glyph visual per
//     filtered character alive through a [VisualSink], updating them
//     incrementally as the text changes.
//   - The image backend ([RenderToImage]) composites all glyphs into a
//     single freshly allocated RGBA image per change.
//
// Both backends share the same geometry through [RenderContext], so a
// string laid out as sprites and the same string rendered to an image
// always agree on every glyph position.
//
// Unsupported characters are silently skipped, fonts are immutable
// once loaded (a hot reload produces a brand-new font value plus a
// change event), and nothing in this package panics during normal
// operation: missing assets are transient, reported once, and retried
// on the next change notification.
//
// Fonts are parsed from on-disk descriptions by the loader subpackage;
// Ebitengine integration lives in the ebitenglue subpackage.
package imgfont

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'imgfont'.
func tracer() tracing.Trace {
	return tracing.Select("imgfont")
}
