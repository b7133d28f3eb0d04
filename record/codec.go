// Package record implements the field-tagged binary record types stored
// in the index's three partitions (§4.1 of the design) and the codec
// that (de)serializes them.
//
// No library in the example corpus offers a generic (field_id, value)
// tagged binary scheme with skip-unknown-field semantics — the closest
// analogs (teacher's xml.go/json.go) are wire-format-specific encoders
// for a fixed external schema, not a reusable tagged record codec. This
// is implemented on encoding/binary for that reason; see DESIGN.md.
package record

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrDeserialization is returned (possibly wrapped) when a record's byte
// stream is truncated, uses an unrecognized wire type, or fails UTF-8
// validation on a string field.
var ErrDeserialization = errors.New("deserialization error")

// wire types for the (field_id, wire_type, value) entry scheme.
const (
	wireVarint = 0 // value is a uvarint
	wireBytes  = 1 // value is a uvarint length followed by that many bytes
)

type fieldEncoder struct {
	buf bytes.Buffer
}

func (e *fieldEncoder) putUint64(id uint32, v uint64) {
	if v == 0 {
		return // zero value is the default; omit it from the wire
	}
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(id))
	e.buf.Write(tmp[:n])
	e.buf.WriteByte(wireVarint)
	n = binary.PutUvarint(tmp[:], v)
	e.buf.Write(tmp[:n])
}

func (e *fieldEncoder) putString(id uint32, v string) {
	if v == "" {
		return
	}
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(id))
	e.buf.Write(tmp[:n])
	e.buf.WriteByte(wireBytes)
	n = binary.PutUvarint(tmp[:], uint64(len(v)))
	e.buf.Write(tmp[:n])
	e.buf.WriteString(v)
}

func (e *fieldEncoder) bytes() []byte {
	return e.buf.Bytes()
}

type fieldEntry struct {
	id   uint32
	wire byte
	raw  []byte // for wireVarint: a single varint-encoded uint64; for wireBytes: the raw string bytes
}

// decodeFields walks a tagged byte stream, calling fn for every entry in
// wire order. It returns ErrDeserialization if the stream is truncated
// or an entry uses an unrecognized wire type.
func decodeFields(data []byte, fn func(fieldEntry) error) error {
	r := bytes.NewReader(data)
	for r.Len() > 0 {
		id, err := binary.ReadUvarint(r)
		if err != nil {
			return errors.Wrap(ErrDeserialization, "truncated field id")
		}
		wire, err := r.ReadByte()
		if err != nil {
			return errors.Wrap(ErrDeserialization, "truncated wire type")
		}
		switch wire {
		case wireVarint:
			v, err := binary.ReadUvarint(r)
			if err != nil {
				return errors.Wrap(ErrDeserialization, "truncated varint value")
			}
			var tmp [binary.MaxVarintLen64]byte
			n := binary.PutUvarint(tmp[:], v)
			if err := fn(fieldEntry{id: uint32(id), wire: wire, raw: tmp[:n]}); err != nil {
				return err
			}
		case wireBytes:
			length, err := binary.ReadUvarint(r)
			if err != nil {
				return errors.Wrap(ErrDeserialization, "truncated length")
			}
			buf := make([]byte, length)
			if _, err := readFull(r, buf); err != nil {
				return errors.Wrap(ErrDeserialization, "truncated bytes value")
			}
			if err := fn(fieldEntry{id: uint32(id), wire: wire, raw: buf}); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrDeserialization, "unknown wire type %d", wire)
		}
	}
	return nil
}

func readFull(r *bytes.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, errors.New("short read")
		}
	}
	return n, nil
}

func decodeUint64(e fieldEntry) (uint64, error) {
	if e.wire != wireVarint {
		return 0, errors.Wrapf(ErrDeserialization, "field %d: expected varint wire type", e.id)
	}
	v, n := binary.Uvarint(e.raw)
	if n <= 0 {
		return 0, errors.Wrapf(ErrDeserialization, "field %d: malformed varint", e.id)
	}
	return v, nil
}

func decodeString(e fieldEntry) (string, error) {
	if e.wire != wireBytes {
		return "", errors.Wrapf(ErrDeserialization, "field %d: expected bytes wire type", e.id)
	}
	if !utf8.Valid(e.raw) {
		return "", errors.Wrapf(ErrDeserialization, "field %d: invalid UTF-8", e.id)
	}
	return string(e.raw), nil
}
