package record

// DocumentRecord is the value stored under a document id in the
// documents partition. length is the 1-based maximum token position
// observed during ingestion, used by scorers as a length proxy.
type DocumentRecord struct {
	Path   string
	Length uint64
}

// Encode serializes a DocumentRecord using field ids 0 (path) and
// 1 (length), per §4.1.
func (d DocumentRecord) Encode() []byte {
	var e fieldEncoder
	e.putString(0, d.Path)
	e.putUint64(1, d.Length)
	return e.bytes()
}

// DecodeDocumentRecord deserializes a DocumentRecord, defaulting any
// missing field to its zero value and skipping unrecognized field ids.
func DecodeDocumentRecord(data []byte) (DocumentRecord, error) {
	var d DocumentRecord
	err := decodeFields(data, func(e fieldEntry) error {
		switch e.id {
		case 0:
			s, err := decodeString(e)
			if err != nil {
				return err
			}
			d.Path = s
		case 1:
			v, err := decodeUint64(e)
			if err != nil {
				return err
			}
			d.Length = v
		}
		return nil
	})
	return d, err
}

// TermRecord is the value stored under a term in the terms partition.
// ingest.AddDocument overwrites it for every document it ingests, so the
// stored record reflects only the most recently ingested document that
// contains the term; neither field is accumulated across documents.
type TermRecord struct {
	Count         uint64 // occurrences of the term within that document
	DocumentCount uint64 // always 1 as written by ingest.AddDocument
}

// Encode serializes a TermRecord using field ids 0 (count) and
// 1 (document_count), per §4.1.
func (t TermRecord) Encode() []byte {
	var e fieldEncoder
	e.putUint64(0, t.Count)
	e.putUint64(1, t.DocumentCount)
	return e.bytes()
}

// DecodeTermRecord deserializes a TermRecord.
func DecodeTermRecord(data []byte) (TermRecord, error) {
	var t TermRecord
	err := decodeFields(data, func(e fieldEntry) error {
		switch e.id {
		case 0:
			v, err := decodeUint64(e)
			if err != nil {
				return err
			}
			t.Count = v
		case 1:
			v, err := decodeUint64(e)
			if err != nil {
				return err
			}
			t.DocumentCount = v
		}
		return nil
	})
	return t, err
}

// DocumentTermRecord is the per-(term, document) posting value.
type DocumentTermRecord struct {
	BodyCount uint64
	PathCount uint64
}

// Encode serializes a DocumentTermRecord using field ids 0 (body_count)
// and 1 (path_count), per §4.1.
func (d DocumentTermRecord) Encode() []byte {
	var e fieldEncoder
	e.putUint64(0, d.BodyCount)
	e.putUint64(1, d.PathCount)
	return e.bytes()
}

// DecodeDocumentTermRecord deserializes a DocumentTermRecord.
func DecodeDocumentTermRecord(data []byte) (DocumentTermRecord, error) {
	var d DocumentTermRecord
	err := decodeFields(data, func(e fieldEntry) error {
		switch e.id {
		case 0:
			v, err := decodeUint64(e)
			if err != nil {
				return err
			}
			d.BodyCount = v
		case 1:
			v, err := decodeUint64(e)
			if err != nil {
				return err
			}
			d.PathCount = v
		}
		return nil
	})
	return d, err
}
