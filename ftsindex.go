// Package ftsindex is the public entry point: open or create a
// keyspace, add documents to it, and search it (§6). It wires together
// package store (persistence), package ingest (add_document) and
// package query (search) behind the three operations the design
// exposes as its external interface.
package ftsindex

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/ingest"
	"github.com/kindex/ftsindex/query"
	"github.com/kindex/ftsindex/store"
)

// Index is a handle to an open keyspace and the three partitions it
// hosts. It is not safe for concurrent add_document calls; concurrent
// Search calls are supported (§5).
type Index struct {
	keyspace *store.Keyspace
	indexed  *store.IndexStore
}

// Create opens (creating if necessary) a keyspace rooted at path.
func Create(path string) (*Index, error) {
	return Open(path)
}

// Open opens a keyspace rooted at path, the same operation Create
// performs; a keyspace directory that does not yet exist is created.
func Open(path string) (*Index, error) {
	ks, err := store.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening index")
	}
	idx, err := ks.Open()
	if err != nil {
		ks.Close()
		return nil, errors.Wrap(err, "opening index partitions")
	}
	return &Index{keyspace: ks, indexed: idx}, nil
}

// Close releases the underlying keyspace.
func (x *Index) Close() error {
	return x.keyspace.Close()
}

// AddDocument implements add_document (§4.5): path and the full
// contents of reader are tokenized and accumulated, then flushed to
// the store as a new document. A store error may leave a partial
// document behind; the caller must treat the returned id as invalid.
func (x *Index) AddDocument(path string, reader io.Reader) (docid.ID, error) {
	return ingest.AddDocument(x.indexed, path, reader)
}

// Search implements search (§4.6): a disjunctive merge over one
// posting-list iterator per term, scored by scorer and bounded to the
// top maxDocs candidates by score descending (ties by doc id
// ascending).
func (x *Index) Search(terms []string, scorer query.Scorer, maxDocs int) ([]docid.ID, error) {
	return query.Search(x.indexed, terms, scorer, maxDocs)
}

// Dump streams a gzip-compressed backup of the entire keyspace to w.
func (x *Index) Dump(w io.Writer) error {
	return x.keyspace.Dump(w)
}

// Load replays a stream previously produced by Dump into the keyspace.
func (x *Index) Load(r io.Reader) error {
	return x.keyspace.Load(r)
}

// Delete drops every partition in the keyspace, for test use only
// (§4.3).
func (x *Index) Delete() error {
	return x.indexed.Delete()
}
