package store

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
	"github.com/kindex/ftsindex/key"
	"github.com/kindex/ftsindex/record"
)

// DocumentStore is the documents partition: doc_id → DocumentRecord,
// plus the persisted counter NewID allocates from.
type DocumentStore struct {
	db *badger.DB
}

// Get returns the DocumentRecord for id, or (zero, false, nil) if absent.
func (s *DocumentStore) Get(id docid.ID) (record.DocumentRecord, bool, error) {
	var rec record.DocumentRecord
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(withPrefix(partitionDocuments, key.DocumentKey(id)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading document %s", id)
		}
		return item.Value(func(val []byte) error {
			rec, err = record.DecodeDocumentRecord(val)
			if err != nil {
				return errors.Wrapf(err, "decoding document record for %s", id)
			}
			found = true
			return nil
		})
	})
	return rec, found, err
}

// Put upserts the DocumentRecord for id.
func (s *DocumentStore) Put(id docid.ID, rec record.DocumentRecord) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(withPrefix(partitionDocuments, key.DocumentKey(id)), rec.Encode())
	})
	return errors.Wrapf(err, "writing document %s", id)
}

// NewID allocates a fresh, monotonically increasing document id from a
// counter persisted in the documents partition (§4.3). The read-modify-
// write happens inside a single Badger transaction, so concurrent
// allocation (were it supported — ingestion callers must still
// serialize add_document per §5) could never hand out the same id twice.
func (s *DocumentStore) NewID() (docid.ID, error) {
	var id docid.ID
	err := s.db.Update(func(txn *badger.Txn) error {
		var counter uint64
		item, err := txn.Get(counterKey)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			counter = 0
		case err != nil:
			return errors.Wrap(err, "reading document id counter")
		default:
			if err := item.Value(func(val []byte) error {
				counter = binary.BigEndian.Uint64(val)
				return nil
			}); err != nil {
				return errors.Wrap(err, "decoding document id counter")
			}
		}
		counter++
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], counter)
		if err := txn.Set(counterKey, buf[:]); err != nil {
			return errors.Wrap(err, "persisting document id counter")
		}
		id = docid.ID{Lo: counter}
		return nil
	})
	return id, err
}
