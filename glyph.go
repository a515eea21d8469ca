package ringterm

import "image/color"

const (
	// GlyphEmpty is the sentinel character of a cell that has never been
	// written (or was reset).
	GlyphEmpty rune = 0
	// GlyphNewline is the line terminator character.
	GlyphNewline rune = '\n'
)

// Glyph stores one character cell with its display attributes. Fg and Bg are
// carried verbatim and never interpreted by the buffer logic; renderers give
// them meaning.
type Glyph struct {
	Char rune
	Fg   color.Color
	Bg   color.Color
}

// NewGlyph creates a glyph with default attributes: opaque white foreground
// on a fully transparent black background.
func NewGlyph(r rune) Glyph {
	return Glyph{
		Char: r,
		Fg:   DefaultForeground,
		Bg:   DefaultBackground,
	}
}

// NewStyledGlyph creates a glyph with explicit colors.
func NewStyledGlyph(r rune, fg, bg color.Color) Glyph {
	return Glyph{Char: r, Fg: fg, Bg: bg}
}

// IsEmpty reports whether the cell holds the unwritten sentinel.
func (g *Glyph) IsEmpty() bool {
	return g.Char == GlyphEmpty
}

// IsNewline reports whether the glyph terminates a line.
func (g *Glyph) IsNewline() bool {
	return g.Char == GlyphNewline
}
