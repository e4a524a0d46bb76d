package cost

import (
	"testing"

	"github.com/revsynth/revsynth/internal/gate"
)

func TestFromCircuitTalliesByKind(t *testing.T) {
	c := gate.Circuit{
		gate.NOT(0),
		gate.CNOT(0, 1),
		gate.CNOT(1, 2),
		gate.TOFF(0, 1, 2),
	}
	got := FromCircuit(c, []int{5, 6})
	want := Count{NOT: 1, CNOT: 2, TOFF: 1, Ancillas: 2}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", got.Total())
	}
}

func TestFromCircuitEmpty(t *testing.T) {
	got := FromCircuit(nil, nil)
	if got.Total() != 0 || got.Ancillas != 0 {
		t.Fatalf("expected zero counts, got %+v", got)
	}
}

func TestReportString(t *testing.T) {
	r := Report{Strategy: "pebbled", Count: Count{NOT: 1, CNOT: 2, TOFF: 1, Ancillas: 0}}
	s := r.String()
	if s == "" {
		t.Fatal("expected non-empty report string")
	}
}
