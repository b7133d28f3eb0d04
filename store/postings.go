package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/key"
	"github.com/kindex/ftsindex/record"
)

// PostingStore is the postings partition: (term, doc_id) → DocumentTermRecord.
type PostingStore struct {
	db *badger.DB
}

// Get opens a peekable iterator over term's posting list, a prefix scan
// that yields entries in ascending document-id order (§4.2/§4.3). The
// caller must Close the returned iterator.
func (s *PostingStore) Get(term string) *PostingIterator {
	prefix := withPrefix(partitionPostings, key.PostingPrefix(term))
	return newPostingIterator(s.db, prefix)
}

// Put upserts the DocumentTermRecord for (term, doc).
func (s *PostingStore) Put(term string, doc docid.ID, rec record.DocumentTermRecord) error {
	k := withPrefix(partitionPostings, key.PostingKey(term, doc))
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, rec.Encode())
	})
	return errors.Wrapf(err, "writing posting (%q, %s)", term, doc)
}
