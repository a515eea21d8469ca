package ringterm

import (
	"testing"
)

func glyphRefs(s string) []*Glyph {
	glyphs := make([]Glyph, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, NewGlyph(r))
	}
	refs := make([]*Glyph, len(glyphs))
	for i := range glyphs {
		refs[i] = &glyphs[i]
	}
	return refs
}

type cell struct {
	col, row int
	char     rune
}

func collect(t *testing.T, it *LineIter) []cell {
	t.Helper()
	var out []cell
	for {
		col, row, g, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, cell{col, row, g.Char})
	}
}

func assertCells(t *testing.T, got, want []cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLineIterAdvancesColumns(t *testing.T) {
	it := NewLineIter(glyphRefs("abc"), 10)

	assertCells(t, collect(t, it), []cell{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{2, 0, 'c'},
	})
}

func TestLineIterEmitsPreAdvancePosition(t *testing.T) {
	it := NewLineIter(glyphRefs("\nx"), 10)

	// The newline itself sits at (0,0); the wrap applies to what follows.
	assertCells(t, collect(t, it), []cell{
		{0, 0, '\n'},
		{0, 1, 'x'},
	})
}

func TestLineIterNewlineForcesWrap(t *testing.T) {
	it := NewLineIter(glyphRefs("a\nb"), 10)

	assertCells(t, collect(t, it), []cell{
		{0, 0, 'a'},
		{1, 0, '\n'},
		{0, 1, 'b'},
	})
}

func TestLineIterColumnBudgetWrap(t *testing.T) {
	it := NewLineIter(glyphRefs("abcde"), 2)

	assertCells(t, collect(t, it), []cell{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{0, 1, 'c'},
		{1, 1, 'd'},
		{0, 2, 'e'},
	})
}

func TestLineIterNewlineAtBudgetWrapsOnce(t *testing.T) {
	it := NewLineIter(glyphRefs("ab\ncd"), 3)

	// The newline at column 2 resets to column 0 before the budget check, so
	// it wraps exactly one row.
	assertCells(t, collect(t, it), []cell{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{2, 0, '\n'},
		{0, 1, 'c'},
		{1, 1, 'd'},
	})
}

func TestLineIterLengthMatchesInput(t *testing.T) {
	refs := glyphRefs("one\ntwo three\nfour")
	it := NewLineIter(refs, 4)

	if got := collect(t, it); len(got) != len(refs) {
		t.Errorf("expected %d cells, got %d", len(refs), len(got))
	}
}

func TestLineIterExhaustion(t *testing.T) {
	it := NewLineIter(glyphRefs("a"), 5)

	if _, _, _, ok := it.Next(); !ok {
		t.Fatal("expected one glyph")
	}
	for i := 0; i < 3; i++ {
		if _, _, g, ok := it.Next(); ok || g != nil {
			t.Error("expected exhausted iterator to keep returning ok=false")
		}
	}
}
