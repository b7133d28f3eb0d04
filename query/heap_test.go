package query

import (
	"testing"

	"github.com/kindex/ftsindex/docid"
)

func ids(out []docid.ID) []uint64 {
	lo := make([]uint64, len(out))
	for i, id := range out {
		lo[i] = id.Lo
	}
	return lo
}

func TestTopKDrainsDescendingByScore(t *testing.T) {
	tk := newTopK(10)
	tk.push(docid.ID{Lo: 1}, 1.0)
	tk.push(docid.ID{Lo: 2}, 3.0)
	tk.push(docid.ID{Lo: 3}, 2.0)

	got := ids(tk.drain())
	want := []uint64{2, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestTopKTiesBreakByAscendingDocID(t *testing.T) {
	tk := newTopK(10)
	tk.push(docid.ID{Lo: 3}, 5.0)
	tk.push(docid.ID{Lo: 1}, 5.0)
	tk.push(docid.ID{Lo: 2}, 5.0)

	got := ids(tk.drain())
	want := []uint64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestTopKEvictsMinimumPastBound(t *testing.T) {
	tk := newTopK(2)
	tk.push(docid.ID{Lo: 1}, 1.0)
	tk.push(docid.ID{Lo: 2}, 2.0)
	tk.push(docid.ID{Lo: 3}, 3.0)

	got := ids(tk.drain())
	want := []uint64{3, 2}
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 results", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestTopKZeroBoundDropsEverything(t *testing.T) {
	tk := newTopK(0)
	tk.push(docid.ID{Lo: 1}, 1.0)
	if got := tk.drain(); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
