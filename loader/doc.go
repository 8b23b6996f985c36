// Package loader reads image fonts off a file system and stores them
// in an imgfont Library.
//
// Two on-disk formats are supported:
//   - a JSON descriptor next to the page image, with three layout
//     flavors of increasing generality (automatic character grid,
//     monospace coordinates, explicit rectangles); see [Descriptor].
//   - the AngelCode BMFont text format (.fnt), including multi-page
//     fonts and per-glyph offsets and advances; see [LoadBMFont].
//
// Loading goes through an fs.FS, so assets can come from disk, an
// embed.FS or an in-memory file system in tests, and hot reloading is
// just calling [Reload] with the handle of an already-loaded font.
package loader

import "github.com/npillmayer/schuko/tracing"

// tracer writes to the imgfont.loader trace.
func tracer() tracing.Trace { return tracing.Select("imgfont.loader") }
