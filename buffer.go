package ringterm

import (
	"fmt"
	"strings"
)

// Buffer is a fixed-capacity circular glyph store with a moving write cursor.
// The cursor is the index of the next cell to be overwritten, never the index
// of the last-written cell, and all cursor arithmetic is modulo capacity.
//
// A Buffer has one logical owner; no method is safe for concurrent use, and a
// Tail result must be fully consumed before the next mutating operation.
type Buffer struct {
	glyphs []Glyph
	cursor int
}

// New creates a buffer of capacity empty glyphs with the cursor at 0.
// Capacity must be positive: every wraparound computation divides by it.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ringterm: buffer capacity must be positive, got %d", capacity)
	}

	glyphs := make([]Glyph, capacity)
	for i := range glyphs {
		glyphs[i] = NewGlyph(GlyphEmpty)
	}

	return &Buffer{glyphs: glyphs}, nil
}

// Capacity returns the fixed number of cells.
func (b *Buffer) Capacity() int {
	return len(b.glyphs)
}

// Cursor returns the index of the next cell to be written.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Glyph returns a pointer to the cell at index i.
// Returns nil if i is out of range.
func (b *Buffer) Glyph(i int) *Glyph {
	if i < 0 || i >= len(b.glyphs) {
		return nil
	}
	return &b.glyphs[i]
}

// PushGlyph overwrites the cell at the cursor with g and advances the cursor
// by one, wrapping at capacity.
func (b *Buffer) PushGlyph(g Glyph) {
	b.glyphs[b.cursor] = g
	b.SeekCursor(1)
}

// PushText pushes each character of text in order as a default-attributed
// glyph. Use PushGlyph to override attributes per character.
func (b *Buffer) PushText(text string) {
	for _, r := range text {
		b.PushGlyph(NewGlyph(r))
	}
}

// SetGlyph overwrites the cell at the cursor with g without advancing the
// cursor. It exists so input policies outside this package can express
// destructive edits (such as the default Backspace) through public
// operations.
func (b *Buffer) SetGlyph(g Glyph) {
	b.glyphs[b.cursor] = g
}

// SeekCursor moves the cursor by the signed offset n, wrapping in both
// directions: negative offsets wrap to the high end. Cell contents are not
// touched.
func (b *Buffer) SeekCursor(n int) {
	c := (b.cursor + n) % len(b.glyphs)
	if c < 0 {
		c += len(b.glyphs)
	}
	b.cursor = c
}

// IsAtCursor reports whether g is identically the cell currently addressed by
// the cursor. Identity, not value equality: a value-equal glyph at another
// position is not at the cursor. Renderers use this to draw the cursor marker
// in place of the stored character.
func (b *Buffer) IsAtCursor(g *Glyph) bool {
	return g == &b.glyphs[b.cursor]
}

// Tail returns the glyphs visible in a viewport of maxCol columns by maxRow
// rows: the most recent maxRow wrapped lines ending at the cursor, oldest
// first. The result holds references into the buffer and is only valid until
// the next mutating operation. A non-positive viewport yields nil.
//
// The window is computed over the head segment (cells 0 through the cursor,
// inclusive) followed by the stale tail segment: cells after the cursor up to
// the first newline or empty cell. Including that leftover content from a
// previous wrap cycle is intentional, so a line that wraps around the ring
// boundary still renders as one continuous line.
func (b *Buffer) Tail(maxCol, maxRow int) []*Glyph {
	if maxCol <= 0 || maxRow <= 0 {
		return nil
	}

	logical := b.logical()

	reversed := make([]*Glyph, len(logical))
	for i, g := range logical {
		reversed[len(logical)-1-i] = g
	}

	// Walk backward from the cursor, counting wrapped rows, until the row
	// budget is spent. A newline is charged to the row it terminates, so a
	// boundary newline does not itself exceed the budget.
	var kept []*Glyph
	it := NewLineIter(reversed, maxCol)
	for {
		_, row, g, ok := it.Next()
		if !ok {
			break
		}
		effectiveRow := row
		if g.Char == GlyphNewline {
			effectiveRow = row + 1
		}
		if effectiveRow >= maxRow {
			break
		}
		kept = append(kept, g)
	}

	// Restore chronological order.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// logical returns the head segment followed by the stale tail segment, oldest
// first: the full currently-relevant content ending at the trailing edge.
func (b *Buffer) logical() []*Glyph {
	offset := b.cursor + 1

	out := make([]*Glyph, 0, len(b.glyphs))
	for i := 0; i < offset; i++ {
		out = append(out, &b.glyphs[i])
	}
	for i := offset; i < len(b.glyphs); i++ {
		g := &b.glyphs[i]
		if g.Char == GlyphNewline || g.Char == GlyphEmpty {
			break
		}
		out = append(out, g)
	}
	return out
}

// String returns the logical content as text, skipping empty cells.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, g := range b.logical() {
		if g.Char == GlyphEmpty {
			continue
		}
		sb.WriteRune(g.Char)
	}
	return sb.String()
}
