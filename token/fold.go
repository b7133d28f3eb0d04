package token

import "golang.org/x/text/cases"

var folder = cases.Fold()

// Fold normalizes a token's text to its case-insensitive folded form,
// the same helper xplore.go reaches for (golang.org/x/text/cases) when
// comparing tag names case-insensitively. Ingestion and search both
// fold through this before using a token's text as a term key, so a
// query for "Foo" matches a document indexed as "foo".
func Fold(s string) string {
	return folder.String(s)
}
