// Package scorer supplies two ready-made implementations of the
// query.Scorer contract (§4.7): a constant scorer for "any match"
// ranking and a plain term-frequency scorer, the way the corpus
// pairs a generic mechanism (search's merge loop) with a couple of
// concrete, swappable policies rather than baking one in.
package scorer

import (
	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/record"
)

// ConstantScorer scores every candidate 1.0, so the merge loop's
// ascending-doc-id tie-break becomes the only ordering that matters.
// Useful when callers only need "does this document match at all".
type ConstantScorer struct{}

func (ConstantScorer) Score(
	docid.ID,
	record.DocumentRecord,
	[]string,
	[]record.TermRecord,
	[]record.DocumentTermRecord,
) float32 {
	return 1.0
}

// TFScorer scores a candidate by its plain term frequency: the sum of
// body and path occurrence counts across every query term, divided by
// the document's length so longer documents don't win purely by virtue
// of containing more words. Not BM25 or TF-IDF — no corpus-wide rarity
// term is involved.
type TFScorer struct{}

func (TFScorer) Score(
	_ docid.ID,
	doc record.DocumentRecord,
	_ []string,
	_ []record.TermRecord,
	docTermRecords []record.DocumentTermRecord,
) float32 {
	var total float32
	for _, d := range docTermRecords {
		total += float32(d.BodyCount + d.PathCount)
	}
	length := doc.Length
	if length == 0 {
		length = 1
	}
	return total / float32(length)
}
