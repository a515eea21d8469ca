package ringterm

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func TestDefaultHandlerEnterPushesNewline(t *testing.T) {
	b := mustNew(t, 5)
	var h DefaultHandler

	h.OnKey(b, keyEvent(tcell.KeyEnter))

	if b.Glyph(0).Char != '\n' {
		t.Errorf("expected newline at cell 0, got %q", b.Glyph(0).Char)
	}
	if b.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", b.Cursor())
	}
}

func TestDefaultHandlerArrowsSeek(t *testing.T) {
	b := mustNew(t, 5)
	b.PushText("abc")
	var h DefaultHandler

	h.OnKey(b, keyEvent(tcell.KeyLeft))
	if b.Cursor() != 2 {
		t.Errorf("expected cursor 2 after left, got %d", b.Cursor())
	}

	h.OnKey(b, keyEvent(tcell.KeyRight))
	if b.Cursor() != 3 {
		t.Errorf("expected cursor 3 after right, got %d", b.Cursor())
	}
}

func TestDefaultHandlerBackspaceIsDestructive(t *testing.T) {
	b := mustNew(t, 5)
	b.PushText("abc")
	var h DefaultHandler

	h.OnKey(b, keyEvent(tcell.KeyBackspace2))

	if b.Cursor() != 2 {
		t.Errorf("expected cursor 2, got %d", b.Cursor())
	}
	if b.Glyph(2).Char != ' ' {
		t.Errorf("expected cell 2 overwritten with space, got %q", b.Glyph(2).Char)
	}
	if b.Glyph(0).Char != 'a' || b.Glyph(1).Char != 'b' {
		t.Error("expected earlier cells untouched")
	}
}

func TestDefaultHandlerBackspaceWrapsToHighEnd(t *testing.T) {
	b := mustNew(t, 4)
	var h DefaultHandler

	h.OnKey(b, keyEvent(tcell.KeyBackspace))

	if b.Cursor() != 3 {
		t.Errorf("expected cursor wrapped to 3, got %d", b.Cursor())
	}
	if b.Glyph(3).Char != ' ' {
		t.Errorf("expected cell 3 overwritten with space, got %q", b.Glyph(3).Char)
	}
}

func TestDefaultHandlerRuneKeysBecomeText(t *testing.T) {
	b := mustNew(t, 5)
	var h DefaultHandler

	h.OnKey(b, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))

	if b.Glyph(0).Char != 'x' {
		t.Errorf("expected 'x' at cell 0, got %q", b.Glyph(0).Char)
	}
}

func TestDefaultHandlerIgnoresOtherKeys(t *testing.T) {
	b := mustNew(t, 5)
	b.PushText("ab")
	var h DefaultHandler

	h.OnKey(b, keyEvent(tcell.KeyF1))
	h.OnKey(b, keyEvent(tcell.KeyUp))
	h.OnKey(b, keyEvent(tcell.KeyEsc))

	if b.Cursor() != 2 {
		t.Errorf("expected cursor unchanged at 2, got %d", b.Cursor())
	}
	if got := b.String(); got != "ab" {
		t.Errorf("expected content unchanged, got %q", got)
	}
}

func TestDefaultHandlerOnText(t *testing.T) {
	b := mustNew(t, 10)
	var h DefaultHandler

	h.OnText(b, "hi there")

	if got := b.String(); got != "hi there" {
		t.Errorf("expected %q, got %q", "hi there", got)
	}
}
