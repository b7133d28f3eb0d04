package query

import (
	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/record"
	"github.com/kindex/ftsindex/store"
	"github.com/kindex/ftsindex/token"
)

// Search implements the disjunctive merge described in §4.6: a document
// is scored if any query term's posting list contains it. Terms
// contributing nothing at a given document are passed to the scorer as
// zero records. maxDocs bounds the result; zero returns no candidates.
// Lookups fold terms the same way ingestion folds them before storing,
// so a search for "Foo" reaches documents indexed as "foo".
func Search(idx *store.IndexStore, terms []string, scorer Scorer, maxDocs int) ([]docid.ID, error) {
	keys := make([]string, len(terms))
	for i, term := range terms {
		keys[i] = token.Fold(term)
	}

	termRecords := make([]record.TermRecord, len(terms))
	for i, key := range keys {
		rec, _, err := idx.Terms().Get(key)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving term %q", terms[i])
		}
		termRecords[i] = rec // zero record if absent, per §4.6 step 1
	}

	iters := make([]*store.PostingIterator, len(terms))
	for i, key := range keys {
		iters[i] = idx.Postings().Get(key)
	}
	defer func() {
		for _, it := range iters {
			it.Close()
		}
	}()

	heap := newTopK(maxDocs)
	docTermRecords := make([]record.DocumentTermRecord, len(terms))

	for {
		firstDoc, any, err := nextDoc(iters)
		if err != nil {
			return nil, errors.Wrap(err, "merging posting lists")
		}
		if !any {
			break
		}

		for i, it := range iters {
			id, rec, ok, err := it.Peek()
			if err != nil {
				return nil, errors.Wrapf(err, "reading posting list for %q", terms[i])
			}
			if ok && id.Equal(firstDoc) {
				it.Next()
				docTermRecords[i] = rec
			} else {
				docTermRecords[i] = record.DocumentTermRecord{}
			}
		}

		doc, _, err := idx.Documents().Get(firstDoc)
		if err != nil {
			return nil, errors.Wrapf(err, "loading document record for %s", firstDoc)
		}

		score := scorer.Score(firstDoc, doc, terms, termRecords, docTermRecords)
		heap.push(firstDoc, score)
	}

	return heap.drain(), nil
}

// nextDoc reports the smallest doc id among every iterator's current
// head (§4.6 step 3a). any is false once all iterators are exhausted.
func nextDoc(iters []*store.PostingIterator) (id docid.ID, any bool, err error) {
	for _, it := range iters {
		candidate, _, ok, err := it.Peek()
		if err != nil {
			return docid.ID{}, false, err
		}
		if !ok {
			continue
		}
		if !any || candidate.Less(id) {
			id = candidate
			any = true
		}
	}
	return id, any, nil
}
