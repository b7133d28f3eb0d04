package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/key"
	"github.com/kindex/ftsindex/record"
)

type postingEntry struct {
	id  docid.ID
	rec record.DocumentTermRecord
}

// PostingIterator is a peekable cursor over one term's posting list, in
// ascending document-id order. It borrows the partition's underlying
// read transaction; advancing it (via Next) is the only mutating
// operation, per the ownership rules in §3. Callers must Close it when
// done to release the underlying Badger transaction.
type PostingIterator struct {
	it     *badger.Iterator
	txn    *badger.Txn
	prefix []byte
	cur    *postingEntry
	err    error
	closed bool
}

func newPostingIterator(db *badger.DB, prefix []byte) *PostingIterator {
	txn := db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	it.Seek(prefix)
	pi := &PostingIterator{it: it, txn: txn, prefix: prefix}
	pi.advance()
	return pi
}

// advance loads the entry at the iterator's current position into cur,
// then moves the underlying Badger iterator past it, so cur always
// reflects the head a subsequent Peek should report.
func (pi *PostingIterator) advance() {
	if pi.err != nil || !pi.it.ValidForPrefix(pi.prefix) {
		pi.cur = nil
		return
	}
	item := pi.it.Item()
	rawKey := item.KeyCopy(nil)[1:] // strip the partition prefix byte
	_, id, err := key.ParsePostingKey(rawKey)
	if err != nil {
		pi.err = errors.Wrap(err, "parsing posting key")
		pi.cur = nil
		return
	}
	var rec record.DocumentTermRecord
	verr := item.Value(func(val []byte) error {
		decoded, err := record.DecodeDocumentTermRecord(val)
		if err != nil {
			return err
		}
		rec = decoded
		return nil
	})
	if verr != nil {
		pi.err = errors.Wrap(verr, "decoding posting record")
		pi.cur = nil
		return
	}
	pi.cur = &postingEntry{id: id, rec: rec}
	pi.it.Next()
}

// Peek reports the iterator's current head without consuming it. ok is
// false once the posting list is exhausted. A non-nil error means the
// iterator failed while loading its current head; it fails fast and
// further calls keep returning the same error.
func (pi *PostingIterator) Peek() (id docid.ID, rec record.DocumentTermRecord, ok bool, err error) {
	if pi.err != nil {
		return docid.ID{}, record.DocumentTermRecord{}, false, pi.err
	}
	if pi.cur == nil {
		return docid.ID{}, record.DocumentTermRecord{}, false, nil
	}
	return pi.cur.id, pi.cur.rec, true, nil
}

// Next consumes and returns the iterator's current head, advancing it.
func (pi *PostingIterator) Next() (id docid.ID, rec record.DocumentTermRecord, ok bool, err error) {
	id, rec, ok, err = pi.Peek()
	if !ok || err != nil {
		return
	}
	pi.advance()
	return
}

// Close releases the iterator's borrowed read transaction.
func (pi *PostingIterator) Close() {
	if pi.closed {
		return
	}
	pi.closed = true
	pi.it.Close()
	pi.txn.Discard()
}
