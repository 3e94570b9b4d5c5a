package shape

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Input describes one shaping request: the text plus every parameter
// that affects layout. Two equal Inputs produce equivalent Buffers.
type Input struct {
	// Text is the source text. Hard line breaks are '\n'.
	Text string

	// Family is a comma-separated family query resolved against the
	// Library, like "Inter, Noto Sans".
	Family string

	// Size is the font size in pixels.
	Size float64

	// LineHeight is a multiplier on Size giving the vertical advance
	// between lines. Values <= 0 mean 1.
	LineHeight float64

	// MaxWidth constrains soft wrapping. 0 or negative means
	// unconstrained.
	MaxWidth float64

	// Wrap selects the soft-wrapping policy.
	Wrap Wrap

	// Align selects horizontal alignment of lines. Center and right
	// alignment are relative to MaxWidth when set, otherwise to the
	// widest line.
	Align Align
}

// Shaper turns an Input into a shaped Buffer.
type Shaper interface {
	Shape(in Input) (*Buffer, error)
}

// Engine is the HarfBuzz-backed Shaper. It resolves fonts through a
// Library and pools the underlying shaper instances, so a single
// Engine is safe for concurrent use.
type Engine struct {
	fonts *Library

	// pool holds shaping.HarfbuzzShaper instances. They carry mutable
	// buffers and are not safe for concurrent use.
	pool sync.Pool
}

// NewEngine creates an Engine shaping with fonts from the library.
func NewEngine(fonts *Library) *Engine {
	return &Engine{
		fonts: fonts,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Fonts returns the Library the engine resolves families against.
func (e *Engine) Fonts() *Library {
	return e.fonts
}

// Shape implements Shaper. The text is split into paragraphs on hard
// line breaks, each paragraph is shaped as one bidi run and soft
// wrapped per the input's policy, and the lines are stacked top to
// bottom. Line vertical advance is Size times LineHeight regardless of
// font extents, so layouts stay stable across font fallback.
func (e *Engine) Shape(in Input) (*Buffer, error) {
	fnt, err := e.fonts.Resolve(in.Family)
	if err != nil {
		return nil, err
	}

	lineHeight := in.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}
	advance := lineHeight * in.Size

	// font.Face is not safe for concurrent use; one per call.
	face := font.NewFace(fnt)
	hb := e.pool.Get().(*shaping.HarfbuzzShaper)
	defer e.pool.Put(hb)

	buf := &Buffer{Text: in.Text}
	rest := in.Text
	base := 0
	for {
		para := rest
		next := -1
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			para, next = rest[:i], i+1
		}

		lines := e.shapeParagraph(hb, face, in, para, base)
		for i := range lines {
			lines[i].Y = buf.Height
			lines[i].Height = advance
			if lines[i].Width > buf.Width {
				buf.Width = lines[i].Width
			}
			buf.Height += advance
			buf.Lines = append(buf.Lines, lines[i])
		}

		if next < 0 {
			break
		}
		rest = rest[next:]
		base += next
	}

	applyAlignment(buf, in)
	return buf, nil
}

// shapeParagraph shapes one paragraph (no hard breaks) into one or
// more visual lines. base is the byte offset of the paragraph within
// the full text; the returned lines carry absolute byte offsets and a
// zero Y and Height, filled in by the caller.
func (e *Engine) shapeParagraph(hb *shaping.HarfbuzzShaper, face *font.Face, in Input, para string, base int) []Line {
	runes, byteOff := runeOffsets(para, base)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(para),
		Face:      face,
		Size:      floatToFixed(in.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := hb.Shape(input)

	if in.Wrap == WrapNone || in.MaxWidth <= 0 || len(runes) == 0 {
		return []Line{buildLine([]shaping.Output{out}, byteOff)}
	}

	cfg := shaping.WrapConfig{BreakPolicy: breakPolicy(in.Wrap)}
	var wrapper shaping.LineWrapper
	wrapped, _ := wrapper.WrapParagraph(cfg, int(in.MaxWidth), runes, shaping.NewSliceIterator([]shaping.Output{out}))

	lines := make([]Line, 0, len(wrapped))
	for _, wl := range wrapped {
		lines = append(lines, buildLine(wl, byteOff))
	}
	if len(lines) == 0 {
		lines = append(lines, buildLine([]shaping.Output{out}, byteOff))
	}
	return lines
}

// buildLine flattens the shaped runs of one visual line, converting
// rune cluster indices to absolute byte offsets via byteOff.
func buildLine(runs []shaping.Output, byteOff []int) Line {
	line := Line{Start: byteOff[len(byteOff)-1]}

	var x float64
	for _, run := range runs {
		if s := byteOff[run.Runes.Offset]; s < line.Start {
			line.Start = s
		}
		if e := byteOff[run.Runes.Offset+run.Runes.Count]; e > line.End {
			line.End = e
		}
		if a := fixedToFloat(run.LineBounds.Ascent); a > line.Ascent {
			line.Ascent = a
		}
		if d := -fixedToFloat(run.LineBounds.Descent); d > line.Descent {
			line.Descent = d
		}
		for _, g := range run.Glyphs {
			adv := fixedToFloat(g.XAdvance)
			line.Glyphs = append(line.Glyphs, Glyph{
				GID:     uint32(g.GlyphID),
				Cluster: byteOff[g.ClusterIndex],
				X:       x + fixedToFloat(g.XOffset),
				Advance: adv,
			})
			x += adv
		}
	}
	line.Width = x
	if line.End < line.Start {
		line.End = line.Start
	}
	return line
}

// applyAlignment sets each line's XOffset. Start and left alignment
// leave lines at zero.
func applyAlignment(buf *Buffer, in Input) {
	if in.Align == AlignStart || in.Align == AlignLeft {
		return
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
		case AlignCenter:
			buf.Lines[i].XOffset = slack / 2
		case AlignRight:
			buf.Lines[i].XOffset = slack
		}
	}
}

// breakPolicy maps a Wrap mode to the wrapper's break policy. WrapNone
// never reaches the wrapper.
func breakPolicy(w Wrap) shaping.LineBreakPolicy {
	if w == WrapGlyph {
		return shaping.Always
	}
	return shaping.WhenNecessary
}

// paragraphDirection returns the base direction of a paragraph from
// its first strong bidi run, defaulting to LTR.
func paragraphDirection(text string) di.Direction {
	var p bidi.Paragraph
	_, _ = p.SetString(text, bidi.DefaultDirection(bidi.Neutral))
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune, used as
// the shaping script for the whole paragraph. Mixed-script paragraphs
// shape with the dominant script's rules.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// runeOffsets decomposes a paragraph into runes plus a table mapping
// rune index to absolute byte offset. The table has one extra entry
// for the paragraph end.
func runeOffsets(s string, base int) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offs := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offs = append(offs, base+i)
	}
	offs = append(offs, base+len(s))
	return runes, offs
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
