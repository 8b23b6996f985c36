// Image fonts live on the pixel grid, but layout math doesn't: anchor
// offsets, letter spacing and target-height scaling all produce
// fractional positions that only get snapped (or not) at the very end,
// depending on the configured scaling mode.
//
// The geom subpackage defines the small set of geometric types that
// the layout engine passes around: [Vec], a 2D float vector with y
// pointing up, and [Transform], a uniform-scale-plus-translation
// placement. Pixel rectangles are represented with the stdlib
// [image.Rectangle] type directly, since atlas regions are always
// axis-aligned and integral.
package geom
