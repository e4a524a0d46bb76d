// Package verify provides equivalence-checking and randomized-testing
// infrastructure for the synthesizer: a random BExp generator, a
// truth-table fingerprint for fast inequality rejection, and quick and
// exhaustive equivalence checks between an expression and a compiled
// circuit.
package verify

import (
	"math/rand"

	"github.com/revsynth/revsynth/internal/boolexpr"
	"github.com/revsynth/revsynth/internal/gate"
)

// RandomExpr generates a random BExp over variables 0..maxVar-1 with
// at most maxDepth nested connectives.
func RandomExpr(rng *rand.Rand, maxVar, maxDepth int) boolexpr.BExp {
	if maxVar <= 0 {
		maxVar = 1
	}
	if maxDepth <= 0 || rng.Intn(3) == 0 {
		if rng.Intn(5) == 0 {
			return boolexpr.False{}
		}
		return boolexpr.Var{I: rng.Intn(maxVar)}
	}
	switch rng.Intn(3) {
	case 0:
		return boolexpr.Not{X: RandomExpr(rng, maxVar, maxDepth-1)}
	case 1:
		return boolexpr.And{X: RandomExpr(rng, maxVar, maxDepth-1), Y: RandomExpr(rng, maxVar, maxDepth-1)}
	default:
		return boolexpr.Xor{X: RandomExpr(rng, maxVar, maxDepth-1), Y: RandomExpr(rng, maxVar, maxDepth-1)}
	}
}

// testBits enumerates a fixed, small sample of bit assignments for
// maxVar variables, used by QuickCheck to reject most non-equivalent
// pairs cheaply without enumerating the full truth table.
func testBits(maxVar int) [][]bool {
	patterns := []uint64{
		0x0000000000000000, 0xFFFFFFFFFFFFFFFF, 0x5555555555555555,
		0xAAAAAAAAAAAAAAAA, 0x0F0F0F0F0F0F0F0F, 0x3333333333333333,
	}
	out := make([][]bool, len(patterns))
	for i, p := range patterns {
		bits := make([]bool, maxVar)
		for v := 0; v < maxVar; v++ {
			bits[v] = (p>>uint(v))&1 == 1
		}
		out[i] = bits
	}
	return out
}

func evalBits(e boolexpr.BExp, bits []bool) bool {
	return boolexpr.Eval(e, func(i int) bool {
		if i < 0 || i >= len(bits) {
			return false
		}
		return bits[i]
	})
}

func evalCircuitBits(c gate.Circuit, maxVar, r int, bits []bool) bool {
	st := gate.NewState()
	for i, b := range bits {
		st = st.Set(i, b)
	}
	return gate.EvalCircuit(c, st).Get(r)
}

// Fingerprint computes a compact hash of e's truth table over
// maxVar variables: one bit per assignment, packed into a byte slice.
// Expressions with different fingerprints are guaranteed non-equivalent.
func Fingerprint(e boolexpr.BExp, maxVar int) []byte {
	n := 1 << uint(maxVar)
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		bits := make([]bool, maxVar)
		for v := 0; v < maxVar; v++ {
			bits[v] = (i>>uint(v))&1 == 1
		}
		if evalBits(e, bits) {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// QuickCheck compares e against the circuit c (reading its result from
// bit r) on a small fixed sample of assignments, rejecting most
// mismatches cheaply.
func QuickCheck(e boolexpr.BExp, maxVar int, c gate.Circuit, r int) bool {
	for _, bits := range testBits(maxVar) {
		if evalBits(e, bits) != evalCircuitBits(c, maxVar, r, bits) {
			return false
		}
	}
	return true
}

// ExhaustiveCheck compares e against c over every assignment of
// maxVar variables. Feasible only for small maxVar (the synthesizer's
// test suite keeps this under a dozen variables).
func ExhaustiveCheck(e boolexpr.BExp, maxVar int, c gate.Circuit, r int) bool {
	n := 1 << uint(maxVar)
	for i := 0; i < n; i++ {
		bits := make([]bool, maxVar)
		for v := 0; v < maxVar; v++ {
			bits[v] = (i>>uint(v))&1 == 1
		}
		if evalBits(e, bits) != evalCircuitBits(c, maxVar, r, bits) {
			return false
		}
	}
	return true
}
