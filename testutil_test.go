package textstate

import (
	"strings"
	"testing"

	"github.com/gogpu/textstate/shape"
)

// gridShaper is a deterministic test shaper: every byte becomes one
// glyph of fixed width charW, lines advance by Size*LineHeight, and
// glyph-level wrapping packs MaxWidth/charW bytes per line. It counts
// Shape calls so tests can assert the batching properties.
type gridShaper struct {
	charW float64
	calls int
	err   error
}

func newGridShaper() *gridShaper {
	return &gridShaper{charW: 10}
}

func (g *gridShaper) Shape(in shape.Input) (*shape.Buffer, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}

	lineHeight := in.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}
	advance := lineHeight * in.Size

	perLine := 0
	if in.Wrap != shape.WrapNone && in.MaxWidth > 0 {
		perLine = int(in.MaxWidth / g.charW)
		if perLine < 1 {
			perLine = 1
		}
	}

	buf := &shape.Buffer{Text: in.Text}
	base := 0
	for _, para := range strings.Split(in.Text, "\n") {
		chunks := [][2]int{{base, base + len(para)}}
		if perLine > 0 && len(para) > perLine {
			chunks = chunks[:0]
			for s := 0; s < len(para); s += perLine {
				e := s + perLine
				if e > len(para) {
					e = len(para)
				}
				chunks = append(chunks, [2]int{base + s, base + e})
			}
		}
		for _, c := range chunks {
			line := shape.Line{
				Start:  c[0],
				End:    c[1],
				Y:      buf.Height,
				Height: advance,
			}
			var x float64
			for off := c[0]; off < c[1]; off++ {
				line.Glyphs = append(line.Glyphs, shape.Glyph{
					Cluster: off,
					X:       x,
					Advance: g.charW,
				})
				x += g.charW
			}
			line.Width = x
			if x > buf.Width {
				buf.Width = x
			}
			buf.Height += advance
			buf.Lines = append(buf.Lines, line)
		}
		base += len(para) + 1
	}

	width := in.MaxWidth
	if width <= 0 {
		width = buf.Width
	}
	for i := range buf.Lines {
		slack := width - buf.Lines[i].Width
		if slack <= 0 {
			continue
		}
		switch in.Align {
		case shape.AlignCenter:
			buf.Lines[i].XOffset = slack / 2
		case shape.AlignRight:
			buf.Lines[i].XOffset = slack
		}
	}
	return buf, nil
}

// newTestManager wires a Manager to a fresh gridShaper.
func newTestManager(t *testing.T) (*Manager[string], *gridShaper) {
	t.Helper()
	gs := newGridShaper()
	return NewManager[string](WithShaper(gs)), gs
}

// mustCreate creates a state or fails the test.
func mustCreate(t *testing.T, m *Manager[string], id ID, text string) *State[string] {
	t.Helper()
	st, err := m.Create(id, text, "")
	if err != nil {
		t.Fatalf("Create(%v): %v", id, err)
	}
	return st
}
