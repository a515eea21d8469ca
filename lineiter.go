package ringterm

// LineIter assigns (col, row) display coordinates to a sequence of glyphs,
// simulating fixed-width line wrapping. The bookkeeping depends only on input
// order, so the same iterator serves forward layout in renderers and the
// backward row counting done by Buffer.Tail.
//
// A LineIter consumes its input once and is not restartable.
type LineIter struct {
	glyphs []*Glyph
	next   int
	col    int
	row    int
	maxCol int
}

// NewLineIter creates an iterator over glyphs with wrap width maxCol.
func NewLineIter(glyphs []*Glyph, maxCol int) *LineIter {
	return &LineIter{glyphs: glyphs, maxCol: maxCol}
}

// Next returns the next glyph and the cell it occupies. The reported position
// is the glyph's own, before any advance. A newline forces a wrap regardless
// of the column budget; any other glyph advances one column, wrapping once
// the budget is reached. ok is false when the input is exhausted.
func (it *LineIter) Next() (col, row int, g *Glyph, ok bool) {
	if it.next >= len(it.glyphs) {
		return 0, 0, nil, false
	}
	g = it.glyphs[it.next]
	it.next++

	col, row = it.col, it.row

	if g.Char == GlyphNewline {
		it.row++
		it.col = 0
	} else {
		it.col++
	}
	if it.col >= it.maxCol {
		it.row++
		it.col = 0
	}

	return col, row, g, true
}
