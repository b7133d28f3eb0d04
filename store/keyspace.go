// Package store layers three typed partitions (terms, documents,
// postings) over an embedded ordered LSM engine (Badger), the way
// §4.3 of the design specifies. A Keyspace is the root handle; each
// partition is addressed by prefixing a single reserved byte onto the
// key scheme from package key, since Badger itself has no notion of
// named column families.
package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/internal/tuning"
)

// Keyspace is the root handle to the underlying ordered key-value
// engine; it hosts the three named partitions an IndexStore opens.
type Keyspace struct {
	db *badger.DB
}

// Open opens (creating if necessary) a keyspace rooted at dir.
func Open(dir string) (*Keyspace, error) {
	opts := badger.DefaultOptions(dir)
	opts = tuning.ApplyBadgerOptions(opts)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening keyspace at %s", dir)
	}
	return &Keyspace{db: db}, nil
}

// Close releases the keyspace's underlying engine handle. Any posting
// iterators still open on partitions of this keyspace must not be used
// afterward.
func (k *Keyspace) Close() error {
	return errors.Wrap(k.db.Close(), "closing keyspace")
}
