package loader

import "errors"
import "fmt"
import "image"
import "io/fs"
import "path"
import "sort"
import "strconv"
import "strings"
import "unicode/utf8"

import "github.com/jens-hj/imgfont"
import "github.com/jens-hj/imgfont/geom"

// BMFont files the loader refuses.
var (
	ErrCharsetUnsupported = errors.New("only unicode BMFont files are supported")
	ErrPackedUnsupported  = errors.New("packed BMFont files are not supported")
)

// bmChar is one parsed "char" line of a BMFont file.
type bmChar struct {
	id                  int
	x, y, width, height int
	xOffset, yOffset    int
	xAdvance            int
	page                int
}

// LoadBMFont reads an AngelCode BMFont text descriptor (.fnt), loads
// every page image it references and stores the resulting font in
// the library.
//
// Unlike the JSON format, BMFont carries per-glyph metrics: x/y
// offsets become the character's baseline offset (with the vertical
// axis flipped to y-up) and xadvance becomes its explicit advance.
// Only unicode, non-packed fonts are accepted.
func LoadBMFont(library *imgfont.Library, fsys fs.FS, fontPath string) (imgfont.FontHandle, error) {
	handle := library.ReserveFont()
	err := ReloadBMFont(library, fsys, fontPath, handle)
	if err != nil { return 0, err }
	return handle, nil
}

// ReloadBMFont is the hot-reload variant of [LoadBMFont]: it replaces
// the font behind an existing handle and emits a modified event.
func ReloadBMFont(library *imgfont.Library, fsys fs.FS, fontPath string, handle imgfont.FontHandle) error {
	data, err := fs.ReadFile(fsys, fontPath)
	if err != nil { return err }

	pageFiles := make(map[int]string)
	var chars []bmChar
	unicode := false

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		tag, fields := parseBMLine(line)
		switch tag {
		case "info":
			unicode = fields["unicode"] == "1"
		case "common":
			if fields["packed"] == "1" {
				return fmt.Errorf("%s: %w", fontPath, ErrPackedUnsupported)
			}
		case "page":
			pageFiles[intField(fields, "id")] = fields["file"]
		case "char":
			chars = append(chars, bmChar{
				id:       intField(fields, "id"),
				x:        intField(fields, "x"),
				y:        intField(fields, "y"),
				width:    intField(fields, "width"),
				height:   intField(fields, "height"),
				xOffset:  intField(fields, "xoffset"),
				yOffset:  intField(fields, "yoffset"),
				xAdvance: intField(fields, "xadvance"),
				page:     intField(fields, "page"),
			})
		}
	}

	if !unicode { return fmt.Errorf("%s: %w", fontPath, ErrCharsetUnsupported) }
	if len(pageFiles) == 0 { return fmt.Errorf("%s: %w", fontPath, ErrEmptyImagePath) }
	if len(chars) == 0 { return fmt.Errorf("%s: %w", fontPath, ErrEmptyLayout) }

	// Page ids are assumed dense but not ordered in the file; sort
	// them so page index i is page id i.
	pageIDs := make([]int, 0, len(pageFiles))
	for id := range pageFiles { pageIDs = append(pageIDs, id) }
	sort.Ints(pageIDs)
	pageIndex := make(map[int]int, len(pageIDs))
	for index, id := range pageIDs { pageIndex[id] = index }

	pageHandles := make([]imgfont.PageHandle, len(pageIDs))
	atlases := make([]*imgfont.Atlas, len(pageIDs))
	atlasHandles := make([]imgfont.AtlasHandle, len(pageIDs))
	for index, id := range pageIDs {
		imagePath := path.Join(path.Dir(fontPath), pageFiles[id])
		page, err := decodeImage(fsys, imagePath)
		if err != nil { return err }
		pageHandles[index] = library.AddPage(page)
		atlases[index] = imgfont.NewAtlas(page.Bounds().Size())
	}

	charmap := make(map[rune]imgfont.Character, len(chars))
	for _, char := range chars {
		character := rune(char.id)
		if char.id < 0 || !utf8.ValidRune(character) {
			tracer().Infof("%s: skipping invalid character id %d", fontPath, char.id)
			continue
		}
		index, known := pageIndex[char.page]
		if !known {
			tracer().Infof("%s: character %q references unknown page %d, skipped", fontPath, character, char.page)
			continue
		}
		region := atlases[index].AddRegion(rect(char.x, char.y, char.width, char.height))
		charmap[character] = imgfont.Character{
			Page:   index,
			Region: region,
			// BMFont offsets are y-down from the cell's top edge;
			// placement math runs y-up.
			Offset:     geom.XY(float32(char.xOffset), float32(-char.yOffset)),
			Advance:    float32(char.xAdvance),
			HasAdvance: true,
		}
	}

	for index, atlas := range atlases {
		atlasHandles[index] = library.AddAtlas(atlas)
	}
	font := imgfont.NewFont(pageHandles, atlasHandles, charmap)
	tracer().Debugf("loaded %s: %d characters across %d pages", fontPath, len(charmap), len(pageIDs))
	return library.SetFont(handle, font)
}

// Splits one BMFont line into its tag and key=value fields. Values
// may be double-quoted (page file names usually are).
func parseBMLine(line string) (tag string, fields map[string]string) {
	parts := strings.Fields(line)
	if len(parts) == 0 { return "", nil }
	fields = make(map[string]string, len(parts)-1)
	for _, part := range parts[1:] {
		key, value, found := strings.Cut(part, "=")
		if !found { continue }
		fields[key] = strings.Trim(value, "\"")
	}
	return parts[0], fields
}

func intField(fields map[string]string, key string) int {
	value, _ := strconv.Atoi(fields[key])
	return value
}

func rect(x, y, width, height int) image.Rectangle {
	return image.Rect(x, y, x+width, y+height)
}
