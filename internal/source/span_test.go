package source

import "testing"

func TestSpan_Basics(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	if s.Empty() {
		t.Errorf("non-empty span reported empty")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d", s.Len())
	}
	if (Span{Start: 5, End: 5}).Empty() != true {
		t.Errorf("empty span not reported empty")
	}
	if s.String() != "0:3-7" {
		t.Errorf("String = %q", s.String())
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 10 {
		t.Errorf("Cover = [%d, %d), want [2, 10)", got.Start, got.End)
	}

	// другой файл игнорируется
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op")
	}
}
