// Package docid defines the 128-bit document identifier shared by the
// record, key, store, ingest, and query packages.
package docid

import (
	"encoding/binary"
	"fmt"
)

// Len is the encoded width of an ID in bytes.
const Len = 16

// ID is an unsigned 128-bit document identifier, split into high and low
// 64-bit halves so arithmetic never needs a big.Int. Encoded on the wire
// as 16 big-endian bytes (Hi first), which is also the sort order: IDs
// compare the same way their byte encodings do.
type ID struct {
	Hi uint64
	Lo uint64
}

// Zero is the zero-valued ID, distinct from any ID handed out by a
// document store's counter (which starts at 1).
var Zero = ID{}

// Bytes encodes the ID as 16 big-endian bytes.
func (id ID) Bytes() [Len]byte {
	var buf [Len]byte
	binary.BigEndian.PutUint64(buf[0:8], id.Hi)
	binary.BigEndian.PutUint64(buf[8:16], id.Lo)
	return buf
}

// FromBytes decodes an ID from a 16-byte big-endian slice. The caller
// must ensure len(b) == Len; key.ParsePostingKey performs that check
// before calling it.
func FromBytes(b []byte) ID {
	return ID{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// Next returns the ID one greater than id, carrying from Lo into Hi.
func (id ID) Next() ID {
	lo := id.Lo + 1
	hi := id.Hi
	if lo == 0 {
		hi++
	}
	return ID{Hi: hi, Lo: lo}
}

// Less reports whether id sorts before other, matching big-endian byte
// comparison order.
func (id ID) Less(other ID) bool {
	if id.Hi != other.Hi {
		return id.Hi < other.Hi
	}
	return id.Lo < other.Lo
}

// Equal reports whether id and other are the same document id.
func (id ID) Equal(other ID) bool {
	return id.Hi == other.Hi && id.Lo == other.Lo
}

func (id ID) String() string {
	if id.Hi == 0 {
		return fmt.Sprintf("%d", id.Lo)
	}
	return fmt.Sprintf("%d:%d", id.Hi, id.Lo)
}
