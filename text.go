package imgfont

// A Text is one piece of content to render with an image font. Texts
// are mutable and owned by the caller (typically one per visual
// entity); whenever one changes, the host re-runs the layout pass for
// its entity.
type Text struct {
	// The string to render. Characters the font doesn't support are
	// skipped, not errors.
	Content string

	// The font to render with. May be a reserved handle whose font
	// hasn't finished loading yet; layout reports "not ready" until
	// it has.
	Font FontHandle

	// Target height in pixels, only honored while HasHeight is true.
	// Without a target height glyphs render at their native pixel
	// size. Integer multiples of the native height keep pixel
	// accuracy, but fractional (and even zero) values are legal, for
	// animations.
	Height    float32
	HasHeight bool
}

// Sets the target height. Shorthand for assigning Height and
// HasHeight.
func (self *Text) SetHeight(height float32) {
	self.Height = height
	self.HasHeight = true
}

// Removes the target height, going back to native glyph size.
func (self *Text) ClearHeight() {
	self.Height = 0
	self.HasHeight = false
}
