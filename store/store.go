package store

import "github.com/pkg/errors"

// IndexStore groups the three typed partitions a keyspace hosts. Its
// lifetime is tied to the enclosing Keyspace; releasing the Keyspace
// invalidates every handle obtained from it.
type IndexStore struct {
	terms     TermStore
	documents DocumentStore
	postings  PostingStore
}

// Open opens (or creates) the terms/documents/postings partitions
// within ks.
func (ks *Keyspace) Open() (*IndexStore, error) {
	return &IndexStore{
		terms:     TermStore{db: ks.db},
		documents: DocumentStore{db: ks.db},
		postings:  PostingStore{db: ks.db},
	}, nil
}

// Terms returns the terms partition.
func (s *IndexStore) Terms() *TermStore { return &s.terms }

// Documents returns the documents partition.
func (s *IndexStore) Documents() *DocumentStore { return &s.documents }

// Postings returns the postings partition.
func (s *IndexStore) Postings() *PostingStore { return &s.postings }

// Delete drops all three partitions, used exclusively by tests to
// reset state between runs (§4.3).
func (s *IndexStore) Delete() error {
	db := s.terms.db
	prefixes := [][]byte{
		{partitionTerms},
		{partitionDocuments},
		{partitionPostings},
	}
	for _, p := range prefixes {
		if err := db.DropPrefix(p); err != nil {
			return errors.Wrapf(err, "dropping partition %x", p)
		}
	}
	return nil
}
