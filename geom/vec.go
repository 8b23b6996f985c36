package geom

import "math"
import "strconv"

// A pair of float32 coordinates. The y axis points up, matching the
// world-space convention of most 2D engines, so positive Y offsets
// move glyphs towards the top of the screen.
type Vec struct {
	X float32
	Y float32
}

// Creates a vector from a pair of float32 values.
func XY(x, y float32) Vec {
	return Vec{ X: x, Y: y }
}

// Returns the result of adding the given vector to the current one.
func (self Vec) Add(vec Vec) Vec {
	self.X += vec.X
	self.Y += vec.Y
	return self
}

// Returns the result of subtracting the given vector from the
// current one.
func (self Vec) Sub(vec Vec) Vec {
	self.X -= vec.X
	self.Y -= vec.Y
	return self
}

// Returns the vector with both coordinates negated.
func (self Vec) Neg() Vec {
	return Vec{ X: -self.X, Y: -self.Y }
}

// Returns the vector with both coordinates multiplied by the given
// factor.
func (self Vec) Scale(factor float32) Vec {
	self.X *= factor
	self.Y *= factor
	return self
}

// Returns whether both coordinates are finite (not NaN, not ±Inf).
func (self Vec) IsFinite() bool {
	return IsFinite(self.X) && IsFinite(self.Y)
}

// Returns a textual representation of the vector (e.g.: "(2.5, -4)").
func (self Vec) String() string {
	x := strconv.FormatFloat(float64(self.X), 'f', -1, 32)
	y := strconv.FormatFloat(float64(self.Y), 'f', -1, 32)
	return "(" + x + ", " + y + ")"
}

// Returns whether the value is finite (not NaN, not ±Inf).
func IsFinite(value float32) bool {
	f64 := float64(value)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}
