package textstate

// ActionOp identifies one selection or editing operation.
type ActionOp uint8

const (
	OpNone ActionOp = iota

	// Text mutations. Require Editable.
	OpInsert
	OpPaste
	OpBackspace
	OpDelete
	OpCut

	// Non-mutating selection operations. Require Selectable.
	OpCopy
	OpSelectAll

	// Cursor movement. Requires Selectable.
	OpMoveLeft
	OpMoveRight
	OpMoveUp
	OpMoveDown
	OpLineStart
	OpLineEnd
	OpDocStart
	OpDocEnd

	// Pointer operations. Require Selectable. Positions are in the
	// caller's outer coordinate space; the state applies scroll and
	// vertical alignment before hit-testing.
	OpClick
	OpDrag
)

// String returns the name of the operation.
func (op ActionOp) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpInsert:
		return "Insert"
	case OpPaste:
		return "Paste"
	case OpBackspace:
		return "Backspace"
	case OpDelete:
		return "Delete"
	case OpCut:
		return "Cut"
	case OpCopy:
		return "Copy"
	case OpSelectAll:
		return "SelectAll"
	case OpMoveLeft:
		return "MoveLeft"
	case OpMoveRight:
		return "MoveRight"
	case OpMoveUp:
		return "MoveUp"
	case OpMoveDown:
		return "MoveDown"
	case OpLineStart:
		return "LineStart"
	case OpLineEnd:
		return "LineEnd"
	case OpDocStart:
		return "DocStart"
	case OpDocEnd:
		return "DocEnd"
	case OpClick:
		return "Click"
	case OpDrag:
		return "Drag"
	default:
		return unknownStr
	}
}

// Action is one operation dispatched against a state with
// [State.Apply]. Build actions with the constructors below.
type Action struct {
	Op ActionOp

	// Text is the content for Insert and Paste.
	Text string

	// Pos is the pointer position for Click and Drag, in outer
	// coordinates.
	Pos Point

	// Extend preserves the selection anchor so the operation grows or
	// shrinks the selected range instead of collapsing it.
	Extend bool
}

// Insert inserts typed text at the caret, replacing any selection.
func Insert(text string) Action {
	return Action{Op: OpInsert, Text: text}
}

// Paste inserts clipboard text at the caret, replacing any selection.
func Paste(text string) Action {
	return Action{Op: OpPaste, Text: text}
}

// Backspace deletes the selection, or the grapheme before the caret.
func Backspace() Action {
	return Action{Op: OpBackspace}
}

// Delete deletes the selection, or the grapheme after the caret.
func Delete() Action {
	return Action{Op: OpDelete}
}

// Cut copies the selection into the result and deletes it.
func Cut() Action {
	return Action{Op: OpCut}
}

// Copy reads the selection into the result without mutating.
func Copy() Action {
	return Action{Op: OpCopy}
}

// SelectAll selects the whole text.
func SelectAll() Action {
	return Action{Op: OpSelectAll}
}

// MoveLeft moves the caret one grapheme left. With extend the anchor
// stays put; without, an existing selection collapses to its left edge.
func MoveLeft(extend bool) Action {
	return Action{Op: OpMoveLeft, Extend: extend}
}

// MoveRight moves the caret one grapheme right.
func MoveRight(extend bool) Action {
	return Action{Op: OpMoveRight, Extend: extend}
}

// MoveUp moves the caret to the nearest offset on the previous visual
// line, or to the document start from the first line.
func MoveUp(extend bool) Action {
	return Action{Op: OpMoveUp, Extend: extend}
}

// MoveDown moves the caret to the nearest offset on the next visual
// line, or to the document end from the last line.
func MoveDown(extend bool) Action {
	return Action{Op: OpMoveDown, Extend: extend}
}

// LineStart moves the caret to the start of its visual line.
func LineStart(extend bool) Action {
	return Action{Op: OpLineStart, Extend: extend}
}

// LineEnd moves the caret to the end of its visual line.
func LineEnd(extend bool) Action {
	return Action{Op: OpLineEnd, Extend: extend}
}

// DocStart moves the caret to offset 0.
func DocStart(extend bool) Action {
	return Action{Op: OpDocStart, Extend: extend}
}

// DocEnd moves the caret to the end of the text.
func DocEnd(extend bool) Action {
	return Action{Op: OpDocEnd, Extend: extend}
}

// Click places the caret at the hit-tested position. With extend the
// anchor is preserved, growing a selection from the previous click.
func Click(pos Point, extend bool) Action {
	return Action{Op: OpClick, Pos: pos, Extend: extend}
}

// Drag moves only the caret to the hit-tested position, keeping the
// anchor from the click that started the drag.
func Drag(pos Point) Action {
	return Action{Op: OpDrag, Pos: pos}
}

// Outcome classifies what an applied action did.
type Outcome uint8

const (
	// OutcomeNone means the action ran but changed nothing observable.
	OutcomeNone Outcome = iota

	// OutcomeDisabled means the relevant enable flag gated the action
	// off. Disabled actions are silent no-ops, never errors.
	OutcomeDisabled

	// OutcomeCursorMoved means the selection or caret changed.
	OutcomeCursorMoved

	// OutcomeTextChanged means the text was mutated and the layout
	// reshaped.
	OutcomeTextChanged

	// OutcomeClipboard means Clipboard carries text for the caller.
	OutcomeClipboard
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeDisabled:
		return "Disabled"
	case OutcomeCursorMoved:
		return "CursorMoved"
	case OutcomeTextChanged:
		return "TextChanged"
	case OutcomeClipboard:
		return "Clipboard"
	default:
		return unknownStr
	}
}

// ActionResult reports the effect of one applied action.
type ActionResult struct {
	Outcome Outcome

	// Clipboard is the text read by Copy or Cut.
	Clipboard string
}
