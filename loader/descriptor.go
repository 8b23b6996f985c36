package loader

import "errors"
import "fmt"
import "image"
import "strings"
import "unicode/utf8"

// Descriptor parsing and validation failures.
var (
	ErrEmptyImagePath = errors.New("image path is empty")
	ErrEmptyLayout    = errors.New("layout is empty")
	ErrManyLayouts    = errors.New("more than one layout flavor given")
	ErrBadCharacter   = errors.New("layout key is not a single character")
)

// A Descriptor is the on-disk JSON representation of an image font,
// written to be easy for humans to author: an image path relative to
// the descriptor file and one of three layout flavors.
type Descriptor struct {
	// Path of the page image, relative to the descriptor file.
	Image string `json:"image"`

	// Where each character lives within the image.
	Layout Layout `json:"layout"`
}

// A Layout locates the characters within the font image. Exactly one
// of the three fields must be set.
type Layout struct {
	// The image interpreted as a uniform grid: each line of this
	// string is a row, each character a cell, in reading order.
	// Leading and trailing newlines are stripped. Spaces are kept,
	// since fonts may use them as padding.
	Automatic string `json:"automatic,omitempty"`

	// Uniform glyph size with a per-character top-left position.
	Monospace *MonospaceLayout `json:"monospace,omitempty"`

	// Fully explicit per-character rectangles. The most general case.
	Manual map[string]Region `json:"manual,omitempty"`
}

// A MonospaceLayout places same-sized glyphs at explicit positions.
type MonospaceLayout struct {
	// Glyph width and height in pixels, shared by all characters.
	Size [2]int `json:"size"`

	// Top-left corner of each character's glyph, keyed by the
	// character itself.
	Coords map[string][2]int `json:"coords"`
}

// A Region is one glyph's bounding rectangle in page pixels.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (self Region) rect() image.Rectangle {
	return image.Rect(self.X, self.Y, self.X+self.Width, self.Y+self.Height)
}

// Validate checks that the descriptor is complete: a non-empty image
// path and exactly one non-empty layout flavor.
func (self *Descriptor) Validate() error {
	if strings.TrimSpace(self.Image) == "" { return ErrEmptyImagePath }

	flavors := 0
	if self.Layout.Automatic != "" { flavors++ }
	if self.Layout.Monospace != nil { flavors++ }
	if self.Layout.Manual != nil { flavors++ }
	switch {
	case flavors == 0:
		return ErrEmptyLayout
	case flavors > 1:
		return ErrManyLayouts
	}

	if self.Layout.Automatic != "" && trimNewlines(self.Layout.Automatic) == "" {
		return ErrEmptyLayout
	}
	return nil
}

// charMap resolves the layout against the page size, returning each
// character's region rectangle.
func (self *Layout) charMap(size image.Point) (map[rune]image.Rectangle, error) {
	switch {
	case self.Automatic != "":
		return self.automaticCharMap(size), nil
	case self.Monospace != nil:
		return self.monospaceCharMap()
	default:
		return self.manualCharMap()
	}
}

func (self *Layout) automaticCharMap(size image.Point) map[rune]image.Rectangle {
	grid := trimNewlines(self.Automatic)
	lines := strings.Split(grid, "\n")

	maxPerLine := 0
	for _, line := range lines {
		count := utf8.RuneCountInString(strings.TrimSuffix(line, "\r"))
		if count > maxPerLine { maxPerLine = count }
	}

	if size.X%maxPerLine != 0 {
		tracer().Infof("image width %d is not an exact multiple of character count %d", size.X, maxPerLine)
	}
	if size.Y%len(lines) != 0 {
		tracer().Infof("image height %d is not an exact multiple of line count %d", size.Y, len(lines))
	}

	cellWidth := size.X / maxPerLine
	cellHeight := size.Y / len(lines)

	charMap := make(map[rune]image.Rectangle)
	for row, line := range lines {
		col := 0
		for _, character := range strings.TrimSuffix(line, "\r") {
			charMap[character] = image.Rect(
				cellWidth*col, cellHeight*row,
				cellWidth*(col+1), cellHeight*(row+1),
			)
			col++
		}
	}
	return charMap
}

func (self *Layout) monospaceCharMap() (map[rune]image.Rectangle, error) {
	width, height := self.Monospace.Size[0], self.Monospace.Size[1]
	charMap := make(map[rune]image.Rectangle, len(self.Monospace.Coords))
	for key, corner := range self.Monospace.Coords {
		character, err := singleRune(key)
		if err != nil { return nil, err }
		charMap[character] = image.Rect(
			corner[0], corner[1],
			corner[0]+width, corner[1]+height,
		)
	}
	return charMap, nil
}

func (self *Layout) manualCharMap() (map[rune]image.Rectangle, error) {
	charMap := make(map[rune]image.Rectangle, len(self.Manual))
	for key, region := range self.Manual {
		character, err := singleRune(key)
		if err != nil { return nil, err }
		charMap[character] = region.rect()
	}
	return charMap, nil
}

func singleRune(key string) (rune, error) {
	character, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || character == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrBadCharacter, key)
	}
	return character, nil
}

// Strips leading and trailing newlines but not other whitespace.
func trimNewlines(value string) string {
	return strings.Trim(value, "\r\n")
}
