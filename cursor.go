package textstate

import "github.com/rivo/uniseg"

// Cursor offsets are byte offsets into the state's text. Movement
// steps over grapheme clusters, not runes, so a combining sequence or
// an emoji with modifiers moves as one unit.

// nextBoundary returns the byte offset of the next grapheme boundary
// after off, or len(s) when off is at or past the end.
func nextBoundary(s string, off int) int {
	if off >= len(s) {
		return len(s)
	}
	if off < 0 {
		off = 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[off:], -1)
	return off + len(cluster)
}

// prevBoundary returns the byte offset of the previous grapheme
// boundary before off, or 0 when off is at or before the start.
func prevBoundary(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s) {
		return len(s)
	}

	// Grapheme segmentation is forward-only; walk from the start and
	// keep the last boundary before off.
	prev, pos := 0, 0
	rest := s
	state := -1
	for len(rest) > 0 && pos < off {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// clampOffset limits off to [0, len(s)] and snaps it back to the
// nearest grapheme boundary at or before it, so an offset that lands
// inside a multi-byte cluster after a text mutation becomes valid
// again.
func clampOffset(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(s) {
		return len(s)
	}

	pos := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := pos + len(cluster)
		if next > off {
			return pos
		}
		pos = next
	}
	return pos
}
