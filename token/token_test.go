package token

import "testing"

func collect(text string) []Slice {
	var out []Slice
	for s := range Tokenize(text) {
		out = append(out, s)
	}
	return out
}

func TestTokenizeSimpleWord(t *testing.T) {
	got := collect("foo")
	want := []Slice{{Text: "foo", Line: 0, Column: 0, Offset: 0, Partial: false}}
	assertSlices(t, got, want)
}

func TestTokenizeDigitBoundary(t *testing.T) {
	got := collect("foo123bar")
	want := []Slice{
		{Text: "foo123bar", Line: 0, Column: 0, Offset: 0, Partial: false},
		{Text: "foo", Line: 0, Column: 0, Offset: 0, Partial: true},
		{Text: "123", Line: 0, Column: 0, Offset: 3, Partial: true},
		{Text: "bar", Line: 0, Column: 0, Offset: 6, Partial: true},
	}
	assertSlices(t, got, want)
}

func TestTokenizeCamelCaseWithDigits(t *testing.T) {
	got := collect("FooBar123")
	want := []Slice{
		{Text: "FooBar123", Line: 0, Column: 0, Offset: 0, Partial: false},
		{Text: "Foo", Line: 0, Column: 0, Offset: 0, Partial: true},
		{Text: "Bar", Line: 0, Column: 0, Offset: 3, Partial: true},
		{Text: "123", Line: 0, Column: 0, Offset: 6, Partial: true},
	}
	assertSlices(t, got, want)
}

func TestTokenizeInitialism(t *testing.T) {
	got := collect("XMLHttpRequest")
	want := []Slice{
		{Text: "XMLHttpRequest", Line: 0, Column: 0, Offset: 0, Partial: false},
		{Text: "XML", Line: 0, Column: 0, Offset: 0, Partial: true},
		{Text: "Http", Line: 0, Column: 0, Offset: 3, Partial: true},
		{Text: "Request", Line: 0, Column: 0, Offset: 7, Partial: true},
	}
	assertSlices(t, got, want)
}

func TestTokenizeLineAndColumnTracking(t *testing.T) {
	got := collect("foo\n  \n  bar")
	want := []Slice{
		{Text: "foo", Line: 0, Column: 0, Offset: 0, Partial: false},
		{Text: "bar", Line: 2, Column: 2, Offset: 9, Partial: false},
	}
	assertSlices(t, got, want)
}

func TestTokenizeEmptyString(t *testing.T) {
	got := collect("")
	if len(got) != 0 {
		t.Errorf("expected no tokens for empty string, got %v", got)
	}
}

func TestTokenizeOrdinaryCamelCaseStaysIntact(t *testing.T) {
	// A single uppercase letter followed by lowercase is not split (rule 1).
	got := collect("Foo")
	want := []Slice{{Text: "Foo", Line: 0, Column: 0, Offset: 0, Partial: false}}
	assertSlices(t, got, want)
}

func TestTokenizeSingleClassHasNoPartials(t *testing.T) {
	for _, word := range []string{"foo", "FOO", "123"} {
		got := collect(word)
		if len(got) != 1 {
			t.Errorf("%q: expected exactly 1 token (no partials), got %d: %v", word, len(got), got)
		}
	}
}

func TestTokenizePrimaryRangesReconstructAlphanumericSubstrings(t *testing.T) {
	// Property from §8: re-joining every partial=false token's byte range
	// reproduces the alphanumeric-extracted substrings of s in order.
	s := "Hello, World! foo123Bar"
	var primaries []string
	for slice := range Tokenize(s) {
		if !slice.Partial {
			primaries = append(primaries, slice.Text)
		}
	}
	want := []string{"Hello", "World", "foo123Bar"}
	if len(primaries) != len(want) {
		t.Fatalf("got %v, want %v", primaries, want)
	}
	for i := range want {
		if primaries[i] != want[i] {
			t.Errorf("primaries[%d] = %q, want %q", i, primaries[i], want[i])
		}
	}
}

func assertSlices(t *testing.T, got, want []Slice) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
