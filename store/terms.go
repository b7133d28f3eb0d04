package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/key"
	"github.com/kindex/ftsindex/record"
)

// TermStore is the terms partition: term → TermRecord.
type TermStore struct {
	db *badger.DB
}

// Get returns the TermRecord for term, or (zero, false, nil) if absent.
func (s *TermStore) Get(term string) (record.TermRecord, bool, error) {
	var rec record.TermRecord
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(withPrefix(partitionTerms, key.TermKey(term)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading term %q", term)
		}
		return item.Value(func(val []byte) error {
			rec, err = record.DecodeTermRecord(val)
			if err != nil {
				return errors.Wrapf(err, "decoding term record for %q", term)
			}
			found = true
			return nil
		})
	})
	return rec, found, err
}

// Put upserts the TermRecord for term.
func (s *TermStore) Put(term string, rec record.TermRecord) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(withPrefix(partitionTerms, key.TermKey(term)), rec.Encode())
	})
	return errors.Wrapf(err, "writing term %q", term)
}
