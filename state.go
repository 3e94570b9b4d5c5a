package textstate

import (
	"github.com/gogpu/textstate/shape"
)

// State is one managed text block: its content, style, outer size
// constraint, scroll offset, selection, enable flags, caller metadata,
// and the cached shaped layout. The type parameter M is an opaque
// caller payload; the core imposes no behavior on it.
//
// The cached layout, when present, is valid for the current (text,
// style, outer size) triple. Mutating any of the three marks the state
// dirty; [State.Recalculate] is the only operation that reshapes, and
// every measurement or hit-test recalculates first, so stale geometry
// is never served.
//
// A State is not safe for concurrent use.
type State[M any] struct {
	text  string
	style Style
	outer Size
	scale float64
	dirty bool

	buffer *shape.Buffer
	inner  Size

	sel      Selection
	selRects []Rect
	caretPos Point
	caretH   float64
	scroll   Point

	// Editable gates text mutation actions, Selectable gates selection
	// and cursor actions, ActionsEnabled gates everything. A gated
	// action is a silent no-op.
	Editable       bool
	Selectable     bool
	ActionsEnabled bool

	// CaretWidth is the caret thickness in pixels, used when keeping
	// the caret inside the viewport.
	CaretWidth float64

	// Metadata is the caller's payload, carried but never interpreted.
	Metadata M
}

func newState[M any](text string, metadata M) *State[M] {
	return &State[M]{
		text:           text,
		style:          DefaultStyle(),
		scale:          1,
		dirty:          true,
		sel:            Selection{},
		ActionsEnabled: true,
		Selectable:     true,
		CaretWidth:     1,
		Metadata:       metadata,
	}
}

// Text returns the current text content.
func (s *State[M]) Text() string {
	return s.text
}

// SetText replaces the text content. The selection is re-clamped to
// the new text and the layout marked dirty. Setting identical text is
// a no-op.
func (s *State[M]) SetText(text string) {
	if text == s.text {
		return
	}
	s.text = text
	s.sel = s.sel.clampTo(text)
	s.markDirty()
}

// Style returns the current style.
func (s *State[M]) Style() Style {
	return s.style
}

// SetStyle replaces the style. Assigning an equal style is a no-op;
// any field change marks the layout dirty.
func (s *State[M]) SetStyle(st Style) {
	if st == s.style {
		return
	}
	s.style = st
	s.markDirty()
}

// OuterSize returns the outer size constraint (available space).
func (s *State[M]) OuterSize() Size {
	return s.outer
}

// SetOuterSize replaces the outer size constraint. Changes below the
// layout epsilon are ignored. Only the width constrains shaping, so a
// height-only change re-clamps the scroll and shifts the vertical
// alignment offset without invalidating the cached layout.
func (s *State[M]) SetOuterSize(size Size) {
	if sizeApproxEq(size, s.outer) {
		return
	}
	widthChanged := !approxEq(size.Width, s.outer.Width)
	s.outer = size
	if widthChanged {
		s.markDirty()
		return
	}
	s.scroll = s.clampScroll(s.scroll)
}

// Scale returns the display scale factor applied to the font size.
func (s *State[M]) Scale() float64 {
	return s.scale
}

// SetScale sets the display scale factor. All shaped geometry is in
// scaled pixels. Values at or below zero are ignored; changes below
// the layout epsilon are ignored.
func (s *State[M]) SetScale(scale float64) {
	if scale <= 0 || approxEq(scale, s.scale) {
		return
	}
	s.scale = scale
	s.markDirty()
}

// Dirty reports whether the cached layout is out of date.
func (s *State[M]) Dirty() bool {
	return s.dirty || s.buffer == nil
}

func (s *State[M]) markDirty() {
	s.dirty = true
	s.selRects = nil
}

// Recalculate reshapes the text if the layout is dirty, threading the
// shared layout context. It is a no-op when the cached layout already
// matches the current text, style, and outer size; setters never shape
// synchronously, so any number of mutations costs one reshape here.
func (s *State[M]) Recalculate(ctx *Context) error {
	if !s.dirty && s.buffer != nil {
		return nil
	}

	maxWidth := 0.0
	if s.outer.Width > 0 {
		maxWidth = s.outer.Width
	}
	buf, err := ctx.Shaper.Shape(shape.Input{
		Text:       s.text,
		Family:     s.style.Family,
		Size:       s.style.FontSize * s.scale,
		LineHeight: s.style.LineHeight,
		MaxWidth:   maxWidth,
		Wrap:       s.style.Wrap,
		Align:      s.style.Align,
	})
	if err != nil {
		return err
	}

	s.buffer = buf
	s.inner = buf.Size()
	s.dirty = false
	s.scroll = s.clampScroll(s.scroll)
	s.refreshSelectionGeometry()
	Logger().Debug("textstate: reshaped",
		"bytes", len(s.text), "lines", buf.LineCount(),
		"inner", s.inner, "outer", s.outer)
	return nil
}

// Layout returns the shaped buffer, recalculating first if dirty. The
// caller renders from it; the buffer must be treated as read-only and
// becomes stale after the next mutation.
func (s *State[M]) Layout(ctx *Context) (*shape.Buffer, error) {
	if err := s.Recalculate(ctx); err != nil {
		return nil, err
	}
	return s.buffer, nil
}

// InnerSize returns the measured content extent, recalculating first
// if dirty.
func (s *State[M]) InnerSize(ctx *Context) (Size, error) {
	if err := s.Recalculate(ctx); err != nil {
		return Size{}, err
	}
	return s.inner, nil
}

// VerticalOffset returns the vertical alignment offset applied when
// mapping content geometry to the outer box. It is computed from the
// outer and measured heights after shaping and never forces a reshape
// by itself.
func (s *State[M]) VerticalOffset() float64 {
	slack := s.outer.Height - s.inner.Height
	if slack <= 0 {
		return 0
	}
	switch s.style.VAlign {
	case VAlignMiddle:
		return slack / 2
	case VAlignBottom:
		return slack
	default:
		return 0
	}
}

// Scroll returns the current scroll offset into the content.
func (s *State[M]) Scroll() Point {
	return s.scroll
}

// SetScroll sets the scroll offset, clamped to [0, inner-outer] on
// each axis against the most recent measurement. Vertical scrolling is
// only available with VAlignNone; other vertical alignments pin Y to
// zero.
func (s *State[M]) SetScroll(p Point) {
	s.scroll = s.clampScroll(p)
}

// ScrollBy adjusts the scroll offset by a delta, with SetScroll
// clamping.
func (s *State[M]) ScrollBy(delta Point) {
	s.SetScroll(s.scroll.Add(delta))
}

func (s *State[M]) clampScroll(p Point) Point {
	maxX := s.inner.Width - s.outer.Width
	if maxX < 0 {
		maxX = 0
	}
	p.X = clamp(p.X, 0, maxX)

	if s.style.VAlign != VAlignNone {
		p.Y = 0
		return p
	}
	maxY := s.inner.Height - s.outer.Height
	if maxY < 0 {
		maxY = 0
	}
	p.Y = clamp(p.Y, 0, maxY)
	return p
}

// Selection returns the current selection.
func (s *State[M]) Selection() Selection {
	return s.sel
}

// SetSelection sets the selection, clamping both offsets to grapheme
// boundaries of the current text.
func (s *State[M]) SetSelection(sel Selection) {
	s.sel = sel.clampTo(s.text)
	s.refreshSelectionGeometry()
}

// SelectedText returns the substring covered by the selection.
func (s *State[M]) SelectedText() string {
	return s.text[s.sel.Start():s.sel.End()]
}

// SelectionRects returns the selection highlight rectangles in content
// space, one per visual line covered. Valid after the last
// recalculation; nil for a caret.
func (s *State[M]) SelectionRects() []Rect {
	return s.selRects
}

// CaretRect returns the caret rectangle in content space, valid after
// the last recalculation.
func (s *State[M]) CaretRect() Rect {
	return Rect{
		Min: s.caretPos,
		Max: Pt(s.caretPos.X+s.CaretWidth, s.caretPos.Y+s.caretH),
	}
}

func (s *State[M]) refreshSelectionGeometry() {
	if s.buffer == nil {
		return
	}
	s.caretPos, s.caretH = s.buffer.Caret(s.sel.Caret)
	if s.sel.IsCaret() {
		s.selRects = nil
	} else {
		s.selRects = s.buffer.Highlight(s.sel.Start(), s.sel.End())
	}
}

// Apply dispatches one action against the state. Geometry-dependent
// actions recalculate first, so callers may dispatch immediately after
// mutations. Actions gated off by the enable flags report
// OutcomeDisabled or OutcomeNone and change nothing.
func (s *State[M]) Apply(ctx *Context, a Action) (ActionResult, error) {
	if !s.ActionsEnabled {
		return ActionResult{Outcome: OutcomeDisabled}, nil
	}
	if !s.Selectable {
		return ActionResult{}, nil
	}
	switch a.Op {
	case OpInsert, OpPaste, OpBackspace, OpDelete, OpCut:
		if !s.Editable {
			return ActionResult{}, nil
		}
	}

	if err := s.Recalculate(ctx); err != nil {
		return ActionResult{}, err
	}

	switch a.Op {
	case OpCopy:
		if s.sel.IsCaret() {
			return ActionResult{}, nil
		}
		return ActionResult{Outcome: OutcomeClipboard, Clipboard: s.SelectedText()}, nil

	case OpSelectAll:
		old := s.sel
		s.sel = Selection{Anchor: 0, Caret: len(s.text)}
		s.refreshSelectionGeometry()
		if s.sel == old {
			return ActionResult{}, nil
		}
		return ActionResult{Outcome: OutcomeCursorMoved}, nil

	case OpInsert, OpPaste:
		s.replaceSelection(a.Text)
		return s.finishMutation(ctx)

	case OpBackspace:
		if s.sel.IsCaret() {
			prev := prevBoundary(s.text, s.sel.Caret)
			if prev == s.sel.Caret {
				return ActionResult{}, nil
			}
			s.sel = Selection{Anchor: prev, Caret: s.sel.Caret}
		}
		s.replaceSelection("")
		return s.finishMutation(ctx)

	case OpDelete:
		if s.sel.IsCaret() {
			next := nextBoundary(s.text, s.sel.Caret)
			if next == s.sel.Caret {
				return ActionResult{}, nil
			}
			s.sel = Selection{Anchor: s.sel.Caret, Caret: next}
		}
		s.replaceSelection("")
		return s.finishMutation(ctx)

	case OpCut:
		if s.sel.IsCaret() {
			return ActionResult{}, nil
		}
		clip := s.SelectedText()
		s.replaceSelection("")
		if _, err := s.finishMutation(ctx); err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Outcome: OutcomeClipboard, Clipboard: clip}, nil

	default:
		moved := s.applyMovement(a)
		s.refreshSelectionGeometry()
		s.scrollToCaret()
		if !moved {
			return ActionResult{}, nil
		}
		return ActionResult{Outcome: OutcomeCursorMoved}, nil
	}
}

// applyMovement updates the selection for a cursor or pointer action
// and reports whether it changed. The layout is clean on entry.
func (s *State[M]) applyMovement(a Action) bool {
	old := s.sel
	caret := old.Caret
	var target int

	switch a.Op {
	case OpMoveLeft:
		if !a.Extend && !old.IsCaret() {
			target = old.Start()
		} else {
			target = prevBoundary(s.text, caret)
		}
	case OpMoveRight:
		if !a.Extend && !old.IsCaret() {
			target = old.End()
		} else {
			target = nextBoundary(s.text, caret)
		}
	case OpMoveUp:
		target = s.verticalTarget(caret, -1)
	case OpMoveDown:
		target = s.verticalTarget(caret, +1)
	case OpLineStart:
		target = s.buffer.LineStart(s.buffer.LineForOffset(caret))
	case OpLineEnd:
		target = s.buffer.LineEnd(s.buffer.LineForOffset(caret))
	case OpDocStart:
		target = 0
	case OpDocEnd:
		target = len(s.text)
	case OpClick, OpDrag:
		target = s.hitOuter(a.Pos)
	default:
		return false
	}

	sel := Selection{Anchor: old.Anchor, Caret: target}
	if a.Op != OpDrag && !a.Extend {
		sel.Anchor = target
	}
	s.sel = sel.clampTo(s.text)
	return s.sel != old
}

// verticalTarget maps the caret to the nearest offset on an adjacent
// visual line, preserving the caret's horizontal position. Moving past
// the first or last line goes to the document edge.
func (s *State[M]) verticalTarget(caret, dir int) int {
	line := s.buffer.LineForOffset(caret)
	target := line + dir
	if target < 0 {
		return 0
	}
	if target >= s.buffer.LineCount() {
		return len(s.text)
	}
	p, _ := s.buffer.Caret(caret)
	tl := s.buffer.Lines[target]
	return s.buffer.Hit(Pt(p.X+0.01, tl.Y+tl.Height/2))
}

// hitOuter maps a pointer position in outer coordinates to a byte
// offset, applying scroll and vertical alignment.
func (s *State[M]) hitOuter(pos Point) int {
	return s.buffer.Hit(pos.Add(s.scroll).Sub(Pt(0, s.VerticalOffset())))
}

// replaceSelection substitutes the selected range (or the caret
// position) with ins and collapses the selection to the end of the
// inserted text. The layout is marked dirty.
func (s *State[M]) replaceSelection(ins string) {
	start, end := s.sel.Start(), s.sel.End()
	s.text = s.text[:start] + ins + s.text[end:]
	off := start + len(ins)
	s.sel = Selection{Anchor: off, Caret: off}
	s.markDirty()
}

// finishMutation reshapes after a text mutation and keeps the caret
// inside the viewport.
func (s *State[M]) finishMutation(ctx *Context) (ActionResult, error) {
	if err := s.Recalculate(ctx); err != nil {
		return ActionResult{}, err
	}
	s.scrollToCaret()
	return ActionResult{Outcome: OutcomeTextChanged}, nil
}

// scrollToCaret nudges the scroll offset so the caret stays visible.
// Vertical adjustment only applies with VAlignNone, matching the
// scrolling policy. Unlike SetScroll this may hold the offset past the
// content edge by up to the caret width, so a caret at the very end of
// a line is never clipped.
func (s *State[M]) scrollToCaret() {
	sc := s.scroll
	if s.outer.Width > 0 {
		if s.caretPos.X < sc.X {
			sc.X = s.caretPos.X
		}
		if right := s.caretPos.X + s.CaretWidth; right > sc.X+s.outer.Width {
			sc.X = right - s.outer.Width
		}
	}
	if s.style.VAlign == VAlignNone && s.outer.Height > 0 {
		if s.caretPos.Y < sc.Y {
			sc.Y = s.caretPos.Y
		}
		if bottom := s.caretPos.Y + s.caretH; bottom > sc.Y+s.outer.Height {
			sc.Y = bottom - s.outer.Height
		}
	}
	if sc.X < 0 {
		sc.X = 0
	}
	if sc.Y < 0 || s.style.VAlign != VAlignNone {
		sc.Y = 0
	}
	s.scroll = sc
}
