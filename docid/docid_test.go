package docid

import "testing"

func TestBytesRoundTrip(t *testing.T) {
	cases := []ID{
		Zero,
		{Lo: 1},
		{Lo: 0xffffffffffffffff},
		{Hi: 1, Lo: 0},
		{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10},
	}
	for _, id := range cases {
		buf := id.Bytes()
		got := FromBytes(buf[:])
		if !got.Equal(id) {
			t.Errorf("FromBytes(Bytes(%v)) = %v, want %v", id, got, id)
		}
	}
}

func TestNextCarries(t *testing.T) {
	id := ID{Lo: 0xffffffffffffffff}
	next := id.Next()
	want := ID{Hi: 1, Lo: 0}
	if !next.Equal(want) {
		t.Errorf("Next() = %v, want %v", next, want)
	}
}

func TestNextOrdinary(t *testing.T) {
	id := ID{Lo: 41}
	next := id.Next()
	want := ID{Lo: 42}
	if !next.Equal(want) {
		t.Errorf("Next() = %v, want %v", next, want)
	}
}

func TestLessMatchesByteOrder(t *testing.T) {
	cases := []struct {
		a, b ID
		less bool
	}{
		{ID{Lo: 1}, ID{Lo: 2}, true},
		{ID{Lo: 2}, ID{Lo: 1}, false},
		{ID{Hi: 1, Lo: 0}, ID{Hi: 0, Lo: 0xffffffffffffffff}, false},
		{ID{Hi: 0, Lo: 0xffffffffffffffff}, ID{Hi: 1, Lo: 0}, true},
		{Zero, Zero, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.less {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.less)
		}
		ab, bb := c.a.Bytes(), c.b.Bytes()
		byteLess := string(ab[:]) < string(bb[:])
		if byteLess != c.less {
			t.Errorf("byte-order comparison disagrees with Less for %v vs %v", c.a, c.b)
		}
	}
}

func TestStringFormat(t *testing.T) {
	if got := (ID{Lo: 42}).String(); got != "42" {
		t.Errorf("String() = %q, want %q", got, "42")
	}
	if got := (ID{Hi: 1, Lo: 2}).String(); got != "1:2" {
		t.Errorf("String() = %q, want %q", got, "1:2")
	}
}
