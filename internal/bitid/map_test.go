package bitid

import "testing"

func TestTotalMapDefault(t *testing.T) {
	m := NewTotalMap(false)
	if m.Get(42) != false {
		t.Fatal("expected zero value for unset key")
	}
	m2 := m.Set(42, true)
	if m.Get(42) {
		t.Fatal("Set mutated the receiver")
	}
	if !m2.Get(42) {
		t.Fatal("Set did not take effect on the copy")
	}
	if m2.Get(7) {
		t.Fatal("unrelated key should still read the zero value")
	}
}
