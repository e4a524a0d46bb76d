// Package cost tallies a compiled circuit's gate and qubit counts: the
// synthesizer's one sanctioned notion of cost (no search, no
// stochastic optimization).
package cost

import (
	"fmt"

	"github.com/revsynth/revsynth/internal/gate"
)

// Count is a circuit's gate-kind tallies plus how many ancilla bits it
// used.
type Count struct {
	NOT      int
	CNOT     int
	TOFF     int
	Ancillas int
}

// Total returns the circuit's overall gate count.
func (c Count) Total() int {
	return c.NOT + c.CNOT + c.TOFF
}

// FromCircuit tallies c's gates by kind and records len(ancillas), the
// number of scratch bits the compile reported live on return.
func FromCircuit(c gate.Circuit, ancillas []int) Count {
	var out Count
	for _, g := range c {
		switch g.Kind {
		case gate.KindNOT:
			out.NOT++
		case gate.KindCNOT:
			out.CNOT++
		case gate.KindTOFF:
			out.TOFF++
		}
	}
	out.Ancillas = len(ancillas)
	return out
}

// Report renders a one-line summary of a compile's cost, the form the
// CLI prints after a compile.
type Report struct {
	Strategy string
	Count    Count
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d gates (NOT=%d CNOT=%d TOFF=%d), %d live ancilla(s)",
		r.Strategy, r.Count.Total(), r.Count.NOT, r.Count.CNOT, r.Count.TOFF, r.Count.Ancillas)
}
