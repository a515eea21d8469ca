package ringterm

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// Writer feeds an ANSI byte stream into a Buffer. Printable characters become
// glyphs stamped with the current SGR foreground/background, line feeds
// become newline glyphs, and backspace retreats the cursor. Everything that
// assumes a two-dimensional screen is accepted and discarded: a ring has no
// rows to address.
type Writer struct {
	buf     *Buffer
	decoder *ansicode.Decoder

	// SGR template applied to pushed glyphs
	fg color.Color
	bg color.Color
}

// Ensure Writer implements ansicode.Handler
var _ ansicode.Handler = (*Writer)(nil)

// NewWriter creates a Writer that pushes decoded output into buf.
func NewWriter(buf *Buffer) *Writer {
	w := &Writer{
		buf: buf,
		fg:  DefaultForeground,
		bg:  DefaultBackground,
	}
	w.decoder = ansicode.NewDecoder(w)
	return w
}

// Write decodes data and applies it to the buffer. Implements io.Writer.
func (w *Writer) Write(data []byte) (int, error) {
	return w.decoder.Write(data)
}

// WriteString is a convenience method that converts the string to bytes and calls Write.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Input pushes one printable character with the current template colors.
func (w *Writer) Input(r rune) {
	w.buf.PushGlyph(NewStyledGlyph(r, w.fg, w.bg))
}

// LineFeed pushes a line terminator carrying the current template colors.
func (w *Writer) LineFeed() {
	w.buf.PushGlyph(NewStyledGlyph(GlyphNewline, w.fg, w.bg))
}

// Backspace retreats the cursor one cell without erasing it.
func (w *Writer) Backspace() {
	w.buf.SeekCursor(-1)
}

// SetTerminalCharAttribute updates the SGR template. Only reset, foreground,
// and background are meaningful here; glyphs carry no other styling.
func (w *Writer) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		w.fg = DefaultForeground
		w.bg = DefaultBackground

	case ansicode.CharAttributeForeground:
		w.fg = resolveColor(attr, true)

	case ansicode.CharAttributeBackground:
		w.bg = resolveColor(attr, false)
	}
}

// ResetState resets the SGR template and rewinds the cursor to the origin.
// Cell contents are left in place; pushes will overwrite them.
func (w *Writer) ResetState() {
	w.fg = DefaultForeground
	w.bg = DefaultBackground
	w.buf.SeekCursor(-w.buf.Cursor())
}

// The remaining ansicode.Handler callbacks address a two-dimensional screen
// (cursor positioning, scroll regions, erase, modes, OSC state). None of them
// have a meaning for a one-dimensional ring, so they are no-ops.

func (w *Writer) Bell()                                       {}
func (w *Writer) CarriageReturn()                             {}
func (w *Writer) Tab(n int)                                   {}
func (w *Writer) ClearLine(mode ansicode.LineClearMode)       {}
func (w *Writer) ClearScreen(mode ansicode.ClearMode)         {}
func (w *Writer) ClearTabs(mode ansicode.TabulationClearMode) {}
func (w *Writer) Goto(row, col int)                           {}
func (w *Writer) GotoLine(row int)                            {}
func (w *Writer) GotoCol(col int)                             {}
func (w *Writer) MoveUp(n int)                                {}
func (w *Writer) MoveDown(n int)                              {}
func (w *Writer) MoveForward(n int)                           {}
func (w *Writer) MoveBackward(n int)                          {}
func (w *Writer) MoveUpCr(n int)                              {}
func (w *Writer) MoveDownCr(n int)                            {}
func (w *Writer) MoveForwardTabs(n int)                       {}
func (w *Writer) MoveBackwardTabs(n int)                      {}
func (w *Writer) InsertBlank(n int)                           {}
func (w *Writer) InsertBlankLines(n int)                      {}
func (w *Writer) DeleteChars(n int)                           {}
func (w *Writer) DeleteLines(n int)                           {}
func (w *Writer) EraseChars(n int)                            {}
func (w *Writer) ScrollUp(n int)                              {}
func (w *Writer) ScrollDown(n int)                            {}
func (w *Writer) SetScrollingRegion(top, bottom int)          {}
func (w *Writer) SetMode(mode ansicode.TerminalMode)          {}
func (w *Writer) UnsetMode(mode ansicode.TerminalMode)        {}
func (w *Writer) SetTitle(title string)                       {}
func (w *Writer) SetCursorStyle(style ansicode.CursorStyle)   {}
func (w *Writer) SaveCursorPosition()                         {}
func (w *Writer) RestoreCursorPosition()                      {}
func (w *Writer) ReverseIndex()                               {}
func (w *Writer) Substitute()                                 {}
func (w *Writer) Decaln()                                     {}
func (w *Writer) DeviceStatus(n int)                          {}
func (w *Writer) IdentifyTerminal(b byte)                     {}

func (w *Writer) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}

func (w *Writer) SetActiveCharset(n int)                                {}
func (w *Writer) SetKeypadApplicationMode()                             {}
func (w *Writer) UnsetKeypadApplicationMode()                           {}
func (w *Writer) SetColor(index int, c color.Color)                     {}
func (w *Writer) ResetColor(i int)                                      {}
func (w *Writer) SetDynamicColor(prefix string, index int, term string) {}
func (w *Writer) ClipboardLoad(clipboard byte, terminator string)       {}
func (w *Writer) ClipboardStore(clipboard byte, data []byte)            {}
func (w *Writer) SetHyperlink(hyperlink *ansicode.Hyperlink)            {}
func (w *Writer) PushTitle()                                            {}
func (w *Writer) PopTitle()                                             {}
func (w *Writer) TextAreaSizeChars()                                    {}
func (w *Writer) TextAreaSizePixels()                                   {}
func (w *Writer) HorizontalTabSet()                                     {}

func (w *Writer) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}

func (w *Writer) PushKeyboardMode(mode ansicode.KeyboardMode)        {}
func (w *Writer) PopKeyboardMode(n int)                              {}
func (w *Writer) ReportKeyboardMode()                                {}
func (w *Writer) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (w *Writer) ReportModifyOtherKeys()                             {}
func (w *Writer) ApplicationCommandReceived(data []byte)             {}
func (w *Writer) PrivacyMessageReceived(data []byte)                 {}
func (w *Writer) StartOfStringReceived(data []byte)                  {}
