package ingest

import "github.com/kindex/ftsindex/record"

// accumulator collects the per-document state add_document builds up
// while tokenizing a path and body, before it is flushed to the store
// in a single finalize pass (§4.5 step 7).
type accumulator struct {
	length uint64 // max(position+1) over primary tokens seen so far

	// terms holds the per-term deltas this document contributes. The
	// design intentionally does not distinguish "first time seen in this
	// document" from "seen again": TermRecord.count is the count WITHIN
	// this document, not a running corpus total, and document_count is
	// pinned to 1 rather than incremented — both per §4.5 step 5 and the
	// Open Questions this spec preserves rather than silently corrects.
	terms map[string]*termDelta
}

type termDelta struct {
	bodyCount uint64
	pathCount uint64
}

func newAccumulator() *accumulator {
	return &accumulator{terms: make(map[string]*termDelta)}
}

func (a *accumulator) entry(term string) *termDelta {
	d, ok := a.terms[term]
	if !ok {
		d = &termDelta{}
		a.terms[term] = d
	}
	return d
}

// observePath records a token (primary or partial) encountered while
// tokenizing the document's path.
func (a *accumulator) observePath(term string) {
	a.entry(term).pathCount++
}

// observeBody records a token (primary or partial) encountered while
// tokenizing the document's body, and, for primary tokens, advances
// length to reflect the token's ordinal position.
func (a *accumulator) observeBody(term string, position int, partial bool) {
	a.entry(term).bodyCount++
	if !partial {
		if l := uint64(position + 1); l > a.length {
			a.length = l
		}
	}
}

// termRecord builds the TermRecord this document's occurrences of term
// produce, per §4.5 step 5/6: count is the within-document occurrence
// count (primary and partial counted identically), document_count is
// always set to 1.
func (d *termDelta) termRecord() record.TermRecord {
	return record.TermRecord{
		Count:         d.bodyCount + d.pathCount,
		DocumentCount: 1,
	}
}

// documentTermRecord builds the posting value for this document's
// occurrences of term.
func (d *termDelta) documentTermRecord() record.DocumentTermRecord {
	return record.DocumentTermRecord{BodyCount: d.bodyCount, PathCount: d.pathCount}
}
