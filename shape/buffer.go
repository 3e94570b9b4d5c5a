package shape

import "sort"

// Glyph is a positioned glyph within a Line.
type Glyph struct {
	// GID is the glyph index within the font.
	GID uint32

	// Cluster is the byte offset into Buffer.Text of the cluster this
	// glyph belongs to. Several glyphs may share one cluster.
	Cluster int

	// X is the pen position relative to the line start, before the
	// alignment offset is applied.
	X float64

	// Advance is the horizontal advance of the glyph.
	Advance float64
}

// Line is one visual line of a shaped Buffer. Soft-wrapped paragraphs
// produce several Lines covering adjacent byte ranges.
type Line struct {
	Glyphs []Glyph

	// Start and End are byte offsets into Buffer.Text covered by this
	// line. End excludes a trailing hard line break.
	Start, End int

	// Y is the top of the line in buffer space.
	Y float64

	// Height is the vertical advance to the next line.
	Height float64

	// Ascent and Descent are the font extents above and below the
	// baseline, both positive.
	Ascent, Descent float64

	// Width is the total advance of the line.
	Width float64

	// XOffset is the horizontal alignment shift applied to the line.
	XOffset float64
}

// Buffer is the shaped representation of one text at one set of
// constraints. It is produced by a Shaper and queried for geometry; it
// is never mutated after creation.
type Buffer struct {
	// Text is the source text the buffer was shaped from.
	Text string

	// Lines are the visual lines, top to bottom.
	Lines []Line

	// Width and Height are the measured content extent.
	Width, Height float64
}

// Size returns the measured content extent (the inner size).
func (b *Buffer) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

// LineCount returns the number of visual lines.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// LineForOffset returns the index of the visual line containing the
// byte offset. Offsets past the end map to the last line.
func (b *Buffer) LineForOffset(offset int) int {
	if len(b.Lines) == 0 {
		return 0
	}
	i := sort.Search(len(b.Lines), func(i int) bool {
		return b.Lines[i].Start > offset
	}) - 1
	if i < 0 {
		return 0
	}
	return i
}

// LineStart returns the byte offset of the first byte of line i.
func (b *Buffer) LineStart(i int) int {
	if len(b.Lines) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(b.Lines) {
		i = len(b.Lines) - 1
	}
	return b.Lines[i].Start
}

// LineEnd returns the byte offset one past the last byte of line i,
// excluding a trailing hard line break.
func (b *Buffer) LineEnd(i int) int {
	if len(b.Lines) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(b.Lines) {
		i = len(b.Lines) - 1
	}
	return b.Lines[i].End
}

// Caret returns the top-left position of a caret placed at the byte
// offset, and the height of the line it sits on. The position includes
// the line's alignment offset.
func (b *Buffer) Caret(offset int) (Point, float64) {
	if len(b.Lines) == 0 {
		return Point{}, 0
	}
	line := &b.Lines[b.LineForOffset(offset)]
	return Point{X: line.XOffset + xAtOffset(line, offset), Y: line.Y}, line.Height
}

// Hit maps a position in buffer space to the nearest byte offset.
// Positions outside the content clamp to the nearest line edge, so the
// result is always within [0, len(Text)].
func (b *Buffer) Hit(p Point) int {
	if len(b.Lines) == 0 {
		return 0
	}

	line := &b.Lines[b.lineAtY(p.Y)]
	x := p.X - line.XOffset
	if x <= 0 {
		return line.Start
	}

	for i := range line.Glyphs {
		g := &line.Glyphs[i]
		if x < g.X || x >= g.X+g.Advance {
			continue
		}
		if x < g.X+g.Advance/2 {
			return g.Cluster
		}
		return clusterEnd(line, g.Cluster)
	}
	return line.End
}

// Highlight returns one rectangle per visual line covered by the byte
// range [start, end). A selection across a soft wrap yields one
// rectangle per line, not a single contiguous one.
func (b *Buffer) Highlight(start, end int) []Rect {
	if start > end {
		start, end = end, start
	}
	if start == end {
		return nil
	}

	var rects []Rect
	for i := range b.Lines {
		line := &b.Lines[i]
		if end <= line.Start || start > line.End {
			continue
		}
		s, e := start, end
		if s < line.Start {
			s = line.Start
		}
		if e > line.End {
			e = line.End
		}
		// A selection starting exactly at a soft wrap collapses on the
		// previous line; that line is not covered.
		if s == e && end > line.End {
			continue
		}
		sx := line.XOffset + xAtOffset(line, s)
		ex := line.XOffset + xAtOffset(line, e)
		rects = append(rects, Rect{
			Min: Point{X: sx, Y: line.Y},
			Max: Point{X: ex, Y: line.Y + line.Height},
		})
	}
	return rects
}

// lineAtY returns the index of the line covering the vertical position,
// clamped to the first/last line.
func (b *Buffer) lineAtY(y float64) int {
	for i := range b.Lines {
		if y < b.Lines[i].Y+b.Lines[i].Height {
			return i
		}
	}
	return len(b.Lines) - 1
}

// xAtOffset returns the pen position of the byte offset within the
// line, before the alignment offset.
func xAtOffset(line *Line, offset int) float64 {
	if offset <= line.Start {
		if len(line.Glyphs) > 0 && line.Glyphs[0].Cluster <= line.Start {
			return line.Glyphs[0].X
		}
		return 0
	}
	for i := range line.Glyphs {
		if line.Glyphs[i].Cluster >= offset {
			return line.Glyphs[i].X
		}
	}
	return line.Width
}

// clusterEnd returns the byte offset one past the cluster, which is the
// start of the next cluster on the line or the line end.
func clusterEnd(line *Line, cluster int) int {
	end := line.End
	for i := range line.Glyphs {
		c := line.Glyphs[i].Cluster
		if c > cluster && c < end {
			end = c
		}
	}
	return end
}
