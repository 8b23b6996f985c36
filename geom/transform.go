package geom

// A glyph placement: a translation followed by a uniform scale.
// This is the full extent of what an image font layout can do to a
// glyph; rotation, shearing and non-uniform scaling are intentionally
// unrepresentable.
//
// A Scale of zero is a legal degenerate transform that collapses
// everything onto the translation point. It shows up when text is
// animated down to a zero target height, and must not be treated as
// an error anywhere in the pipeline.
type Transform struct {
	Translation Vec
	Scale       float32
}

// Creates a transform with the given translation and scale factor.
func Place(translation Vec, scale float32) Transform {
	return Transform{ Translation: translation, Scale: scale }
}

// Applies the transform to a point: scales it uniformly around the
// origin, then translates it.
func (self Transform) Apply(point Vec) Vec {
	return point.Scale(self.Scale).Add(self.Translation)
}

// Returns a textual representation of the transform.
func (self Transform) String() string {
	return "translate" + self.Translation.String() + " scale " + XY(self.Scale, self.Scale).String()
}
