package bitid

import "testing"

func TestSetBasics(t *testing.T) {
	s := NewSet(1, 2, 3)
	if !s.Has(2) || s.Has(9) {
		t.Fatalf("Has: got membership %v/%v", s.Has(2), s.Has(9))
	}
	s2 := s.With(9)
	if s.Has(9) {
		t.Fatal("With mutated the receiver")
	}
	if !s2.Has(9) {
		t.Fatal("With did not add to the copy")
	}
	s3 := s2.Without(1)
	if !s2.Has(1) {
		t.Fatal("Without mutated the receiver")
	}
	if s3.Has(1) {
		t.Fatal("Without did not remove from the copy")
	}
}

func TestUnionDisjointSubset(t *testing.T) {
	a := NewSet(1, 2)
	b := NewSet(2, 3)
	u := Union(a, b)
	for _, want := range []int{1, 2, 3} {
		if !u.Has(want) {
			t.Fatalf("Union missing %d", want)
		}
	}
	if Disjoint(a, b) {
		t.Fatal("a and b share 2, should not be disjoint")
	}
	if !Disjoint(NewSet(1), NewSet(2)) {
		t.Fatal("disjoint sets reported as overlapping")
	}
	if !Subset(NewSet(1, 2), a.With(2)) {
		t.Fatal("expected subset")
	}
	if Subset(NewSet(1, 5), a) {
		t.Fatal("5 is not in a, should not be a subset")
	}
}

func TestSliceSorted(t *testing.T) {
	s := NewSet(5, 1, 3)
	got := s.Slice()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() = %v, want %v", got, want)
		}
	}
}
