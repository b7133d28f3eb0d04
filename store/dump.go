package store

import (
	"io"

	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// Dump streams every key/value pair in the keyspace to w as a
// gzip-compressed Badger backup stream (parallelised via pgzip, the
// same way merge.go/poster.go/extern.go archive large segment
// outputs). This is not part of the core design; it exists so a
// keyspace can be checkpointed and restored without replaying ingestion.
func (k *Keyspace) Dump(w io.Writer) error {
	gz, err := pgzip.NewWriterLevel(w, pgzip.DefaultCompression)
	if err != nil {
		return errors.Wrap(err, "opening dump compressor")
	}
	if _, err := k.db.Backup(gz, 0); err != nil {
		gz.Close()
		return errors.Wrap(err, "writing keyspace backup")
	}
	return errors.Wrap(gz.Close(), "flushing dump compressor")
}

// Load replays a stream previously produced by Dump into the keyspace,
// overlaying rather than replacing any existing keys.
func (k *Keyspace) Load(r io.Reader) error {
	gz, err := pgzip.NewReader(r)
	if err != nil {
		return errors.Wrap(err, "opening dump decompressor")
	}
	defer gz.Close()
	if err := k.db.Load(gz, 16); err != nil {
		return errors.Wrap(err, "loading keyspace backup")
	}
	return nil
}
