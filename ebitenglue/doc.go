// Package ebitenglue connects imgfont's backends to Ebitengine.
//
// It provides the two sink implementations a game needs: [GlyphSink]
// realizes imgfont.VisualSink as a retained set of drawable glyph
// sprites, and [ImageStore] realizes imgfont.ImageSink by uploading
// composited strips as textures. Both sample with nearest filtering,
// which is what pixel fonts want.
package ebitenglue
