// Package ingest implements add_document (§4.5): tokenize a document's
// path and body, accumulate per-term counts, then flush them to an
// IndexStore in one finalize pass, the way merge.go's report-builder
// stages (e.g. CreatePresenters/CreateFusers) accumulate into a map
// before a single write-out step.
package ingest

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/record"
	"github.com/kindex/ftsindex/store"
	"github.com/kindex/ftsindex/token"
)

// ErrReader wraps a failure draining the document reader.
var ErrReader = errors.New("ingest: reader error")

// AddDocument implements §4.5 end to end. On any store error, the
// returned DocumentId has already been consumed (allocated, possibly
// partially written) and must be treated as invalid by the caller; no
// rollback is attempted.
func AddDocument(idx *store.IndexStore, path string, body io.Reader) (docid.ID, error) {
	id, err := idx.Documents().NewID()
	if err != nil {
		return docid.ID{}, errors.Wrap(err, "allocating document id")
	}

	acc := newAccumulator()

	for t := range token.Tokenize(path) {
		acc.observePath(token.Fold(t.Text))
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return id, errors.Wrap(ErrReader, err.Error())
	}

	position := 0
	for t := range token.Tokenize(string(content)) {
		acc.observeBody(token.Fold(t.Text), position, t.Partial)
		if !t.Partial {
			position++
		}
	}

	if err := finalize(idx, id, path, acc); err != nil {
		return id, err
	}
	return id, nil
}

// finalize writes the DocumentRecord, then every TermRecord, then every
// posting, per §4.5 step 7's ordering.
func finalize(idx *store.IndexStore, id docid.ID, path string, acc *accumulator) error {
	doc := record.DocumentRecord{Path: path, Length: acc.length}
	if err := idx.Documents().Put(id, doc); err != nil {
		return errors.Wrap(err, "writing document record")
	}

	for term, delta := range acc.terms {
		if err := idx.Terms().Put(term, delta.termRecord()); err != nil {
			return errors.Wrapf(err, "writing term record for %q", term)
		}
	}

	for term, delta := range acc.terms {
		if err := idx.Postings().Put(term, id, delta.documentTermRecord()); err != nil {
			return errors.Wrapf(err, "writing posting for %q", term)
		}
	}

	return nil
}
