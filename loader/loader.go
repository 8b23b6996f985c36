package loader

import "encoding/json"
import "errors"
import "fmt"
import "image"
import "image/draw"
import "io/fs"
import "path"
import "sort"

import _ "image/png"

import _ "golang.org/x/image/bmp"

import "github.com/jens-hj/imgfont"

// ErrNotAnImage reports that a page file exists but couldn't be
// decoded as a supported image format (PNG or BMP).
var ErrNotAnImage = errors.New("not a decodable image")

// Load reads a JSON font descriptor from the file system, loads the
// page image it points to and stores everything in the library,
// returning the new font's handle.
//
// The page image path is resolved relative to the descriptor file.
func Load(library *imgfont.Library, fsys fs.FS, descriptorPath string) (imgfont.FontHandle, error) {
	handle := library.ReserveFont()
	err := Reload(library, fsys, descriptorPath, handle)
	if err != nil { return 0, err }
	return handle, nil
}

// Reload re-reads a font descriptor and replaces the font behind an
// existing handle, emitting a modified event that marks every text
// using the font for re-layout. This is the hot-reload path; for the
// first load, use [Load].
func Reload(library *imgfont.Library, fsys fs.FS, descriptorPath string, handle imgfont.FontHandle) error {
	data, err := fs.ReadFile(fsys, descriptorPath)
	if err != nil { return err }

	var descriptor Descriptor
	err = json.Unmarshal(data, &descriptor)
	if err != nil { return fmt.Errorf("%s: %w", descriptorPath, err) }
	err = descriptor.Validate()
	if err != nil { return fmt.Errorf("%s: %w", descriptorPath, err) }

	imagePath := path.Join(path.Dir(descriptorPath), descriptor.Image)
	page, err := decodeImage(fsys, imagePath)
	if err != nil { return err }

	charMap, err := descriptor.Layout.charMap(page.Bounds().Size())
	if err != nil { return fmt.Errorf("%s: %w", descriptorPath, err) }

	// Region indices are assigned in ascending character order so
	// reloading an unchanged descriptor yields an identical font.
	characters := make([]rune, 0, len(charMap))
	for character := range charMap { characters = append(characters, character) }
	sort.Slice(characters, func(i, j int) bool { return characters[i] < characters[j] })

	atlas := imgfont.NewAtlas(page.Bounds().Size())
	charmap := make(map[rune]imgfont.Character, len(charMap))
	for _, character := range characters {
		charmap[character] = imgfont.Character{
			Page:   0,
			Region: atlas.AddRegion(charMap[character]),
		}
	}

	pageHandle := library.AddPage(page)
	atlasHandle := library.AddAtlas(atlas)
	font := imgfont.NewFont(
		[]imgfont.PageHandle{pageHandle},
		[]imgfont.AtlasHandle{atlasHandle},
		charmap,
	)
	tracer().Debugf("loaded %s: %d characters from %s", descriptorPath, len(charmap), imagePath)
	return library.SetFont(handle, font)
}

// Reads and decodes a page image, converting it to RGBA. PNG and BMP
// decoders are registered; anything else fails with [ErrNotAnImage].
func decodeImage(fsys fs.FS, imagePath string) (*image.RGBA, error) {
	file, err := fsys.Open(imagePath)
	if err != nil { return nil, err }
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil { return nil, fmt.Errorf("%s: %w: %v", imagePath, ErrNotAnImage, err) }

	if rgba, ok := decoded.(*image.RGBA); ok { return rgba, nil }
	rgba := image.NewRGBA(decoded.Bounds())
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	return rgba, nil
}
