package imgfont

import "image"
import "image/color"
import "sort"
import "testing"

// Builds a single-page monospace font where every character of chars
// is glyphWidth x glyphHeight, laid out left to right in the order
// given. Each glyph is filled with a distinct solid color so
// compositing tests can tell them apart.
func newMonoFont(t *testing.T, library *Library, chars string, glyphWidth, glyphHeight int) FontHandle {
	t.Helper()
	widths := make(map[rune]int)
	for _, character := range chars { widths[character] = glyphWidth }
	return newVarFont(t, library, widths, glyphHeight)
}

// Like newMonoFont, but with a per-character width. Glyphs are laid
// out in ascending rune order.
func newVarFont(t *testing.T, library *Library, widths map[rune]int, glyphHeight int) FontHandle {
	t.Helper()

	chars := make([]rune, 0, len(widths))
	for character := range widths { chars = append(chars, character) }
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	pageWidth := 0
	for _, character := range chars { pageWidth += widths[character] }
	if pageWidth == 0 { pageWidth = 1 }
	page := image.NewRGBA(image.Rect(0, 0, pageWidth, glyphHeight))

	atlas := NewAtlas(image.Pt(pageWidth, glyphHeight))
	charmap := make(map[rune]Character)
	x := 0
	for index, character := range chars {
		width := widths[character]
		rect := image.Rect(x, 0, x+width, glyphHeight)
		fillRect(page, rect, testGlyphColor(index))
		charmap[character] = Character{ Page: 0, Region: atlas.AddRegion(rect) }
		x += width
	}

	pageHandle := library.AddPage(page)
	atlasHandle := library.AddAtlas(atlas)
	font := NewFont([]PageHandle{pageHandle}, []AtlasHandle{atlasHandle}, charmap)
	handle, err := library.AddFont(font)
	if err != nil { t.Fatalf("unexpected font setup error: %v", err) }
	return handle
}

// A fully opaque page image for hand-built test fonts.
func newTestPage(width, height int) *image.RGBA {
	page := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range page.Pix { page.Pix[i] = 255 }
	return page
}

func rectAt(x, y, width, height int) image.Rectangle {
	return image.Rect(x, y, x+width, y+height)
}

// The solid fill of the index-th test glyph, in ascending rune order.
func testGlyphColor(index int) color.RGBA {
	return color.RGBA{ R: uint8(50 + index*40), G: uint8(index * 25), B: 200, A: 255 }
}

func fillRect(page *image.RGBA, rect image.Rectangle, fill color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			page.SetRGBA(x, y, fill)
		}
	}
}
