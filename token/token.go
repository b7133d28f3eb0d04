// Package token implements the Unicode-aware lexical scanner: text in,
// a lazy stream of annotated token slices out, each primary word
// followed by its CamelCase/initialism/digit-boundary sub-tokens.
package token

import (
	"unicode"
	"unicode/utf8"
)

// Slice is a non-owning view into the text passed to Tokenize. A Slice
// with Partial == false is a maximal alphanumeric run from the source
// text; a Slice with Partial == true is a sub-range of the preceding
// non-partial slice.
type Slice struct {
	Text    string
	Line    int
	Column  int
	Offset  int
	Partial bool
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize scans text and streams every primary word followed by its
// sub-tokens on the returned channel, then closes it. The channel is
// unbuffered; the caller drives the scan by ranging over it.
func Tokenize(text string) <-chan Slice {
	out := make(chan Slice)
	go func() {
		defer close(out)
		scan(text, out)
	}()
	return out
}

// scan walks text once, byte offset tracked alongside decoded runes, the
// way merge.go's channel-pipeline stages (e.g. CreateFusers) walk their
// inputs a single time.
func scan(text string, out chan<- Slice) {
	line := 0
	column := 0
	i := 0
	n := len(text)

	for i < n {
		// Skip to the next alphanumeric rune, tracking line/column as we go.
		var start int
		var wordColumn, wordLine int
		found := false
		for i < n {
			r, size := utf8.DecodeRuneInString(text[i:])
			wordColumn = column
			wordLine = line
			column++
			if isAlnum(r) {
				start = i
				found = true
				i += size
				break
			}
			if r == '\n' {
				line++
				column = 0
			}
			i += size
		}
		if !found {
			return
		}

		// Find the end of the word.
		end := n
		endedWithNewline := false
		for i < n {
			r, size := utf8.DecodeRuneInString(text[i:])
			column++
			if !isAlnum(r) {
				end = i
				if r == '\n' {
					endedWithNewline = true
					column = 0
				}
				i += size
				break
			}
			i += size
		}

		word := text[start:end]
		out <- Slice{Text: word, Line: wordLine, Column: wordColumn, Offset: start, Partial: false}
		for _, rng := range splitSubTokens(word) {
			out <- Slice{
				Text:    word[rng[0]:rng[1]],
				Line:    wordLine,
				Column:  wordColumn,
				Offset:  start + rng[0],
				Partial: true,
			}
		}

		if endedWithNewline {
			line++
		}
	}
}
