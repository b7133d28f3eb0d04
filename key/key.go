// Package key implements the composite binary key encodings for the
// three store partitions (§4.2 of the design): the delimiter-joined
// posting-list key, its scan prefix, and the plain document/term keys.
package key

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/kindex/ftsindex/docid"
)

// delimiter separates the term from the doc id in a posting-list key.
// UTF-8 text never contains a literal NUL byte, so term bytes can never
// collide with it.
const delimiter = 0x00

// ErrMalformedKey is returned when a posting-list key is shorter than
// the minimum 17 trailing bytes or is missing the delimiter byte.
var ErrMalformedKey = errors.New("malformed posting-list key")

// PostingKey composes the posting-list key term‖0x00‖doc_id_be128.
func PostingKey(term string, id docid.ID) []byte {
	idBytes := id.Bytes()
	buf := make([]byte, 0, len(term)+1+docid.Len)
	buf = append(buf, term...)
	buf = append(buf, delimiter)
	buf = append(buf, idBytes[:]...)
	return buf
}

// PostingPrefix composes the term‖0x00 prefix used to scan a term's
// entire posting list in ascending document-id order.
func PostingPrefix(term string) []byte {
	buf := make([]byte, 0, len(term)+1)
	buf = append(buf, term...)
	buf = append(buf, delimiter)
	return buf
}

// ParsePostingKey splits a posting-list key back into its term and
// document id. It fails with ErrMalformedKey if the key is shorter than
// 17 bytes or the delimiter byte is missing, and with a UTF-8 error if
// the term bytes are not valid UTF-8.
func ParsePostingKey(raw []byte) (string, docid.ID, error) {
	const trailing = docid.Len + 1
	if len(raw) < trailing {
		return "", docid.ID{}, errors.Wrapf(ErrMalformedKey, "key length %d < %d", len(raw), trailing)
	}
	termLen := len(raw) - trailing
	if raw[termLen] != delimiter {
		return "", docid.ID{}, errors.Wrap(ErrMalformedKey, "missing delimiter byte")
	}
	termBytes := raw[:termLen]
	if !utf8.Valid(termBytes) {
		return "", docid.ID{}, errors.New("posting key term is not valid UTF-8")
	}
	id := docid.FromBytes(raw[termLen+1:])
	return string(termBytes), id, nil
}

// DocumentKey composes the 16-byte big-endian document-record key.
func DocumentKey(id docid.ID) []byte {
	b := id.Bytes()
	return b[:]
}

// TermKey composes the term-record key: the term's raw UTF-8 bytes.
func TermKey(term string) []byte {
	return []byte(term)
}
