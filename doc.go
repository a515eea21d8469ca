// Package ringterm provides a fixed-capacity circular text buffer with a
// moving write cursor, plus the windowing algorithm that computes which
// glyphs are visible in a bounded viewport.
//
// # Quick Start
//
// Create a buffer, push some text, and read the visible tail:
//
//	buf, err := ringterm.New(1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf.PushText("hello\nworld")
//
//	for _, g := range buf.Tail(80, 24) {
//		fmt.Print(string(g.Char))
//	}
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Buffer]: the circular glyph store with its write cursor
//   - [Glyph]: a single character with foreground/background colors
//   - [LineIter]: assigns (col, row) coordinates under fixed-width wrapping
//   - [BufferHandler]: pluggable key/text input policy
//   - [Writer]: feeds ANSI byte streams into a Buffer
//
// # The Ring
//
// A Buffer holds exactly its construction capacity of glyphs. The cursor is
// the index of the next cell to be overwritten; pushes advance it modulo
// capacity, so old content is eventually reused in place. [Buffer.SeekCursor]
// moves the cursor in either direction without touching cell contents.
//
// # Tail Windows
//
// [Buffer.Tail] returns the glyphs that fit in a viewport of maxCol columns
// by maxRow rows, ending at the cursor. The result deliberately includes
// leftover content from a previous wrap cycle when it still continues the
// current unterminated line, so a line crossing the ring boundary renders as
// one continuous line. See the Tail documentation for the exact rules.
//
// The returned glyphs are references into the buffer and become stale after
// the next mutating operation.
//
// # Input
//
// [DefaultHandler] implements a minimal editing policy over tcell key events:
// Enter, the horizontal arrows, Backspace, and printable runes. Callers can
// supply any [BufferHandler] built on the Buffer's public operations.
//
// # ANSI
//
// [Writer] implements io.Writer and decodes ANSI escape sequences, stamping
// SGR foreground/background colors onto pushed glyphs:
//
//	w := ringterm.NewWriter(buf)
//	w.WriteString("\x1b[31mred\x1b[0m plain")
//
// # Rendering
//
// [Screenshot] renders the tail window to an image using golang.org/x/image
// fonts, drawing the cursor cell as a bar marker. It is a reference consumer
// of the Tail/LineIter contract; interactive front ends follow the same
// pattern.
//
// # Concurrency
//
// A Buffer has a single logical owner. No method is safe for concurrent use;
// callers that share a buffer across goroutines must serialize access
// themselves.
package ringterm
