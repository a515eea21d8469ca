package ringterm

import "github.com/gdamore/tcell/v2"

// BufferHandler turns key and text events into buffer mutations. The event
// loop owns the buffer and passes it in on every call. Implementations must
// restrict themselves to the Buffer's public operations.
type BufferHandler interface {
	// OnKey handles a single key event.
	OnKey(buf *Buffer, ev *tcell.EventKey)
	// OnText handles pasted or typed text.
	OnText(buf *Buffer, text string)
}

// DefaultHandler is the built-in editing policy:
//
//   - Enter pushes a newline
//   - Left/Right seek the cursor one cell
//   - Backspace retreats one cell and overwrites it with a space
//   - rune keys are routed to OnText
//
// All other keys are ignored. Backspace is destructive: it mutates a
// previously written cell instead of relying on the ring's natural reuse.
type DefaultHandler struct{}

var _ BufferHandler = DefaultHandler{}

// OnKey applies the default key bindings to buf.
func (DefaultHandler) OnKey(buf *Buffer, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		buf.PushText("\n")
	case tcell.KeyLeft:
		buf.SeekCursor(-1)
	case tcell.KeyRight:
		buf.SeekCursor(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		buf.SeekCursor(-1)
		buf.SetGlyph(NewGlyph(' '))
	case tcell.KeyRune:
		// tcell delivers printable input as rune keys.
		buf.PushText(string(ev.Rune()))
	}
}

// OnText pushes each character of text in order.
func (DefaultHandler) OnText(buf *Buffer, text string) {
	buf.PushText(text)
}
