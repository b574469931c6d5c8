package metrics

import (
	"strings"
	"testing"

	"github.com/npillmayer/augtree/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func fromString(t *testing.T, st *cords.Store, s string) cords.Cord {
	t.Helper()
	c, err := st.FromString(s)
	if err != nil {
		t.Fatal(err.Error())
	}
	return c
}

func TestWordsWholeCord(t *testing.T) {
	st := cords.NewStore()
	c := fromString(t, st, "Hello  my\nname\tis Simon")
	spans, err := Words(c, 0, c.Len())
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	want := []Span{
		{Pos: 0, Len: 5},
		{Pos: 7, Len: 2},
		{Pos: 10, Len: 4},
		{Pos: 15, Len: 2},
		{Pos: 18, Len: 5},
	}
	if len(spans) != len(want) {
		t.Fatalf("unexpected spans len: got=%d want=%d", len(spans), len(want))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("span %d mismatch: got=%+v want=%+v", i, spans[i], want[i])
		}
	}
	materialized, err := Materialize(st, c, spans)
	if err != nil {
		t.Fatal(err.Error())
	}
	if materialized.String() != "HellomynameisSimon" {
		t.Fatalf("unexpected materialized text: got=%q", materialized.String())
	}
}

func TestWordsSubrange(t *testing.T) {
	c := fromString(t, cords.NewStore(), "xx Hello world yy")
	spans, err := Words(c, 3, 14)
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("unexpected spans len: got=%d want=2", len(spans))
	}
	if spans[0] != (Span{Pos: 3, Len: 5}) || spans[1] != (Span{Pos: 9, Len: 5}) {
		t.Fatalf("span mismatch: got=%+v", spans)
	}
}

func TestWordsBoundsValidation(t *testing.T) {
	c := fromString(t, cords.NewStore(), "abc")
	if _, err := Words(c, 2, 1); err == nil {
		t.Fatalf("expected error for invalid range")
	}
	if _, err := Words(c, 0, 4); err == nil {
		t.Fatalf("expected error for range beyond the end")
	}
}

func TestWrapFirstFit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "augtree")
	defer teardown()
	//
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 5)
	c := fromString(t, cords.NewStore(), text)
	breaks := Wrap(c, 20, nil)
	if len(breaks) < 2 || breaks[len(breaks)-1] != c.Len() {
		t.Fatalf("unexpected breaks %v", breaks)
	}
	var prev uint64
	for _, b := range breaks {
		if b <= prev && prev > 0 {
			t.Fatalf("breaks not increasing: %v", breaks)
		}
		line := text[prev:b]
		t.Logf("|%s|", line)
		if len(strings.TrimRight(line, " ")) > 20 {
			t.Errorf("line %q is too long", line)
		}
		if strings.HasPrefix(line, " ") {
			t.Errorf("line %q starts with a space", line)
		}
		prev = b
	}
}
