package textstate

import (
	"errors"
	"testing"
)

func TestRecalculateBatchesSetters(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello")
	ctx := m.Context()

	// Any number of mutations costs one reshape.
	st.SetText("hello world")
	st.SetStyle(DefaultStyle().WithFontSize(18))
	st.SetOuterSize(Size{Width: 400, Height: 200})
	st.SetText("hello again")

	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if gs.calls != 1 {
		t.Errorf("Shape called %d times; want 1", gs.calls)
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello")
	ctx := m.Context()

	for i := 0; i < 3; i++ {
		if err := st.Recalculate(ctx); err != nil {
			t.Fatalf("Recalculate: %v", err)
		}
	}
	if gs.calls != 1 {
		t.Errorf("Shape called %d times; want 1", gs.calls)
	}

	st.SetText("changed")
	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if gs.calls != 2 {
		t.Errorf("Shape called %d times after mutation; want 2", gs.calls)
	}
}

func TestSettersNopOnEqualValues(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello")
	ctx := m.Context()

	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	st.SetText("hello")
	st.SetStyle(st.Style())
	st.SetOuterSize(st.OuterSize())
	// Sub-epsilon size changes do not dirty either.
	st.SetOuterSize(Size{Width: 1e-5, Height: 0})

	if st.Dirty() {
		t.Error("equal-value setters marked the state dirty")
	}
	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if gs.calls != 1 {
		t.Errorf("Shape called %d times; want 1", gs.calls)
	}
}

func TestInnerSizeRecalculatesImplicitly(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello")
	ctx := m.Context()

	if !st.Dirty() {
		t.Fatal("fresh state should be dirty")
	}
	size, err := st.InnerSize(ctx)
	if err != nil {
		t.Fatalf("InnerSize: %v", err)
	}
	if st.Dirty() {
		t.Error("InnerSize left the state dirty")
	}
	if gs.calls != 1 {
		t.Errorf("Shape called %d times; want 1", gs.calls)
	}

	// 5 glyphs at charW 10; one line at 16 * 1.5.
	if size.Width != 50 || size.Height != 24 {
		t.Errorf("InnerSize = %v; want {50 24}", size)
	}
}

func TestInnerSizeScenario(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "Hello, world!")
	st.SetOuterSize(Size{Width: 400, Height: 200})
	st.SetStyle(DefaultStyle().WithFontSize(16))

	size, err := st.InnerSize(m.Context())
	if err != nil {
		t.Fatalf("InnerSize: %v", err)
	}
	if size.Height <= 0 || size.Height > 200 {
		t.Errorf("single-line height = %v; want in (0, 200]", size.Height)
	}
}

func TestRecalculateErrorPropagates(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello")
	ctx := m.Context()

	gs.err = errors.New("boom")
	if err := st.Recalculate(ctx); err == nil {
		t.Fatal("Recalculate swallowed the shaper error")
	}
	if !st.Dirty() {
		t.Error("failed recalculation cleared the dirty flag")
	}

	gs.err = nil
	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate after recovery: %v", err)
	}
	if st.Dirty() {
		t.Error("state still dirty after successful recalculation")
	}
}

func TestLayoutReturnsBuffer(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "ab\ncd")

	buf, err := st.Layout(m.Context())
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if buf.LineCount() != 2 {
		t.Errorf("LineCount = %d; want 2", buf.LineCount())
	}
}

func TestScrollClamped(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "0123456789\nabcdefghij\nklmnopqrst")
	st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1))
	st.SetOuterSize(Size{Width: 50, Height: 20})
	if err := st.Recalculate(m.Context()); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	// Content is 100x30: max scroll is {50, 10}.

	st.SetScroll(Pt(999, 999))
	if got := st.Scroll(); got != Pt(50, 10) {
		t.Errorf("Scroll = %v; want {50 10}", got)
	}

	st.SetScroll(Pt(-5, -5))
	if got := st.Scroll(); got != Pt(0, 0) {
		t.Errorf("Scroll = %v; want {0 0}", got)
	}

	st.ScrollBy(Pt(10, 5))
	if got := st.Scroll(); got != Pt(10, 5) {
		t.Errorf("ScrollBy = %v; want {10 5}", got)
	}
}

func TestScrollPinnedByVAlign(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "one\ntwo\nthree")
	st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1).WithVAlign(VAlignMiddle))
	st.SetOuterSize(Size{Width: 100, Height: 10})
	if err := st.Recalculate(m.Context()); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	st.SetScroll(Pt(0, 20))
	if got := st.Scroll().Y; got != 0 {
		t.Errorf("vertical scroll with VAlignMiddle = %v; want 0", got)
	}
}

func TestVerticalOffset(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := m.Context()

	tests := []struct {
		valign VAlign
		want   float64
	}{
		{VAlignNone, 0},
		{VAlignTop, 0},
		{VAlignMiddle, 45},
		{VAlignBottom, 90},
	}
	for _, tt := range tests {
		t.Run(tt.valign.String(), func(t *testing.T) {
			st := m.CreateOrReplace(NewID("a"), "x", "")
			st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1).WithVAlign(tt.valign))
			st.SetOuterSize(Size{Width: 100, Height: 100})
			if err := st.Recalculate(ctx); err != nil {
				t.Fatalf("Recalculate: %v", err)
			}
			// Content height 10 in a 100 outer box.
			if got := st.VerticalOffset(); got != tt.want {
				t.Errorf("VerticalOffset = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestVerticalOffsetOverflowingContent(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "a\nb\nc\nd")
	st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1).WithVAlign(VAlignBottom))
	st.SetOuterSize(Size{Width: 100, Height: 20})
	if err := st.Recalculate(m.Context()); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	// Content taller than the box never offsets.
	if got := st.VerticalOffset(); got != 0 {
		t.Errorf("VerticalOffset = %v; want 0", got)
	}
}

func TestSetTextReclampsSelection(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello world")
	st.SetSelection(Range(0, 11))

	st.SetText("hi")
	sel := st.Selection()
	if sel.Anchor != 0 || sel.Caret != 2 {
		t.Errorf("selection after SetText = %+v; want {0 2}", sel)
	}
}

func TestSelectionGeometry(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "abcdef")
	st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1))
	if err := st.Recalculate(m.Context()); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	st.SetSelection(Range(1, 3))
	rects := st.SelectionRects()
	if len(rects) != 1 {
		t.Fatalf("SelectionRects: %d rects; want 1", len(rects))
	}
	if rects[0].Min.X != 10 || rects[0].Max.X != 30 {
		t.Errorf("rect = %v; want X 10..30", rects[0])
	}

	caret := st.CaretRect()
	if caret.Min.X != 30 {
		t.Errorf("CaretRect.Min.X = %v; want 30", caret.Min.X)
	}
	if caret.Height() != 10 {
		t.Errorf("CaretRect height = %v; want 10", caret.Height())
	}

	st.SetSelection(Caret(2))
	if st.SelectionRects() != nil {
		t.Error("caret selection should have no rects")
	}
}

func TestSetScale(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "abc")
	st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1))

	inner, err := st.InnerSize(m.Context())
	if err != nil {
		t.Fatalf("InnerSize: %v", err)
	}
	if inner.Height != 10 {
		t.Fatalf("Height = %v; want 10", inner.Height)
	}

	st.SetScale(2)
	if !st.Dirty() {
		t.Error("SetScale did not mark dirty")
	}
	inner, err = st.InnerSize(m.Context())
	if err != nil {
		t.Fatalf("InnerSize: %v", err)
	}
	if inner.Height != 20 {
		t.Errorf("Height = %v; want 20", inner.Height)
	}

	calls := gs.calls
	st.SetScale(2)
	st.SetScale(0)
	st.SetScale(-1)
	if st.Dirty() {
		t.Error("equal or invalid scale marked dirty")
	}
	if _, err := st.InnerSize(m.Context()); err != nil {
		t.Fatalf("InnerSize: %v", err)
	}
	if gs.calls != calls {
		t.Errorf("Shape calls = %d; want %d", gs.calls, calls)
	}
	if st.Scale() != 2 {
		t.Errorf("Scale = %v; want 2", st.Scale())
	}
}

func TestHeightOnlyResizeSkipsReshape(t *testing.T) {
	m, gs := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "hello")
	ctx := m.Context()

	st.SetOuterSize(Size{Width: 400, Height: 200})
	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if gs.calls != 1 {
		t.Fatalf("Shape called %d times; want 1", gs.calls)
	}

	// Height never constrains shaping, so growing it keeps the layout.
	st.SetOuterSize(Size{Width: 400, Height: 300})
	if st.Dirty() {
		t.Error("height-only change marked the state dirty")
	}
	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if gs.calls != 1 {
		t.Errorf("Shape called %d times after height change; want 1", gs.calls)
	}
	if got := st.OuterSize(); got != (Size{Width: 400, Height: 300}) {
		t.Errorf("OuterSize = %v; want {400 300}", got)
	}

	// Width changes still reshape.
	st.SetOuterSize(Size{Width: 200, Height: 300})
	if !st.Dirty() {
		t.Error("width change did not mark the state dirty")
	}
	if err := st.Recalculate(ctx); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	if gs.calls != 2 {
		t.Errorf("Shape called %d times after width change; want 2", gs.calls)
	}
}

func TestHeightOnlyResizeReclampsScroll(t *testing.T) {
	m, _ := newTestManager(t)
	st := mustCreate(t, m, NewID("a"), "a\nb\nc")
	st.SetStyle(DefaultStyle().WithFontSize(10).WithLineHeight(1))
	st.SetOuterSize(Size{Width: 100, Height: 10})
	if err := st.Recalculate(m.Context()); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	st.SetScroll(Pt(0, 20))
	if got := st.Scroll().Y; got != 20 {
		t.Fatalf("Scroll.Y = %v; want 20", got)
	}

	// Content is 30 tall; a 25-tall box leaves at most 5 of scroll.
	st.SetOuterSize(Size{Width: 100, Height: 25})
	if got := st.Scroll().Y; got != 5 {
		t.Errorf("Scroll.Y = %v; want 5", got)
	}
	if got := st.VerticalOffset(); got != 0 {
		t.Errorf("VerticalOffset = %v; want 0", got)
	}
}
