// Package shape is the boundary with the text shaping engine.
//
// It wraps github.com/go-text/typesetting behind a small surface: a
// font Library, a Shaper that turns text plus constraints into a
// shaped Buffer, and geometry queries (hit-testing, caret placement,
// selection highlighting) against that Buffer. Shaping is the single
// expensive operation in the system; everything above this package
// exists to avoid calling Shape more often than necessary.
package shape
