package record

import "testing"

func TestDocumentRecordRoundTrip(t *testing.T) {
	cases := []DocumentRecord{
		{},
		{Path: "/a/b.txt", Length: 42},
		{Path: "", Length: 7},
		{Path: "unicode/résumé.txt", Length: 1},
	}
	for _, want := range cases {
		got, err := DecodeDocumentRecord(want.Encode())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != want {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestTermRecordRoundTrip(t *testing.T) {
	cases := []TermRecord{
		{},
		{Count: 5, DocumentCount: 2},
		{Count: 0, DocumentCount: 9},
	}
	for _, want := range cases {
		got, err := DecodeTermRecord(want.Encode())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != want {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestDocumentTermRecordRoundTrip(t *testing.T) {
	cases := []DocumentTermRecord{
		{},
		{BodyCount: 3, PathCount: 1},
	}
	for _, want := range cases {
		got, err := DecodeDocumentTermRecord(want.Encode())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got != want {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
		}
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	var e fieldEncoder
	e.putUint64(0, 3)
	e.putUint64(99, 1234) // unknown field, must be skipped
	e.putUint64(1, 4)
	got, err := DecodeTermRecord(e.bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := TermRecord{Count: 3, DocumentCount: 4}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodeTruncatedFails(t *testing.T) {
	var e fieldEncoder
	e.putString(0, "hello")
	raw := e.bytes()
	// n == 0 is a legitimately empty record, not a truncated one; every
	// other prefix length cuts a field entry mid-way and must fail.
	for n := 1; n < len(raw); n++ {
		if _, err := DecodeDocumentRecord(raw[:n]); err == nil {
			t.Errorf("expected error decoding truncated input of length %d", n)
		}
	}
}

func TestDecodeInvalidUTF8Fails(t *testing.T) {
	var e fieldEncoder
	e.putString(0, "\xff\xfe")
	if _, err := DecodeDocumentRecord(e.bytes()); err == nil {
		t.Error("expected error decoding invalid UTF-8 string field")
	}
}
