package imgfont

import "strings"
import "unicode/utf8"

// A FilteredText is a view of a string restricted to the characters a
// font can render, in their original order. It never copies the
// underlying string: iteration decodes runes in place and skips the
// unsupported ones, so filtering a long string costs nothing until
// someone actually walks it.
//
// Use [Font.Filter] to obtain one.
type FilteredText struct {
	text string
	font *Font
}

// Returns a view of the given text restricted to the characters this
// font can render.
func (self *Font) Filter(text string) FilteredText {
	return FilteredText{ text: text, font: self }
}

// Returns a fresh iterator over the filtered characters. Iterators
// are independent: each call restarts from the beginning of the text.
func (self FilteredText) Iter() FilteredIterator {
	return FilteredIterator{ text: self.text, font: self.font }
}

// Returns whether the filtered sequence yields zero characters.
// Short-circuits on the first supported character instead of walking
// the whole string.
func (self FilteredText) IsEmpty() bool {
	iter := self.Iter()
	return iter.Next() == -1
}

// Returns the number of filtered characters. O(n) on the text length.
func (self FilteredText) Count() int {
	count := 0
	iter := self.Iter()
	for iter.Next() != -1 { count++ }
	return count
}

// Materializes the filtered sequence as a string. This is the only
// operation on a FilteredText that allocates; it exists for display
// and debugging, the render paths never need it.
func (self FilteredText) String() string {
	var builder strings.Builder
	iter := self.Iter()
	for codePoint := iter.Next(); codePoint != -1; codePoint = iter.Next() {
		builder.WriteRune(codePoint)
	}
	return builder.String()
}

// A FilteredIterator walks the supported characters of a text from
// left to right. [FilteredIterator.Next] returns -1 once the text is
// exhausted.
type FilteredIterator struct {
	text  string
	font  *Font
	index int
}

// Returns the next supported character, or -1 if there are none left.
func (self *FilteredIterator) Next() rune {
	for self.index < len(self.text) {
		codePoint, runeSize := utf8.DecodeRuneInString(self.text[self.index:])
		self.index += runeSize
		_, supported := self.font.charmap[codePoint]
		if supported { return codePoint }
	}
	return -1
}

// Like [FilteredIterator.Next], but doesn't advance the iterator.
func (self *FilteredIterator) PeekNext() rune {
	index := self.index
	for index < len(self.text) {
		codePoint, runeSize := utf8.DecodeRuneInString(self.text[index:])
		index += runeSize
		_, supported := self.font.charmap[codePoint]
		if supported { return codePoint }
	}
	return -1
}
