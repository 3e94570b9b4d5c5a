package textstate

// Selection is a pair of byte offsets into the state's text. Anchor is
// where the selection started, Caret is the active end that moves.
// Anchor == Caret denotes a caret with no range selected.
//
// Offsets are positions into the current text and become stale when
// the text changes; every mutation re-clamps them.
type Selection struct {
	Anchor int `json:"anchor"`
	Caret  int `json:"caret"`
}

// IsCaret reports whether the selection is empty.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Caret
}

// Start returns the lower of the two offsets.
func (s Selection) Start() int {
	if s.Caret < s.Anchor {
		return s.Caret
	}
	return s.Anchor
}

// End returns the higher of the two offsets.
func (s Selection) End() int {
	if s.Caret > s.Anchor {
		return s.Caret
	}
	return s.Anchor
}

// Len returns the length of the selected range in bytes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Caret returns a caret selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Caret: offset}
}

// Range returns a selection spanning [anchor, caret].
func Range(anchor, caret int) Selection {
	return Selection{Anchor: anchor, Caret: caret}
}

// clampTo snaps both offsets to valid grapheme boundaries of text.
func (s Selection) clampTo(text string) Selection {
	return Selection{
		Anchor: clampOffset(text, s.Anchor),
		Caret:  clampOffset(text, s.Caret),
	}
}
