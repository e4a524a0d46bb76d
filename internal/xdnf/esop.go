package xdnf

import (
	"sort"

	"github.com/revsynth/revsynth/internal/boolexpr"
)

// Cube is a conjunction of variables, represented as their indices.
type Cube []int

// ESOP is a sum (XOR) of cubes: the empty ESOP is False, the ESOP
// containing only the empty cube is True, and a singleton cube [[v]]
// is Var v.
type ESOP []Cube

// XorESOP returns the symmetric difference of a and b as an ESOP:
// cubes present in exactly one of a, b survive, matching XOR's
// self-cancellation over the cube algebra.
func XorESOP(a, b ESOP) ESOP {
	counts := map[string]int{}
	cubes := map[string]Cube{}
	for _, c := range a {
		k := cubeKey(c)
		counts[k]++
		cubes[k] = c
	}
	for _, c := range b {
		k := cubeKey(c)
		counts[k]++
		cubes[k] = c
	}
	var out ESOP
	var keys []string
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k]%2 == 1 {
			out = append(out, cubes[k])
		}
	}
	return out
}

// AndESOP multiplies a and b distributively: every pair of cubes (one
// from each operand) merges into the union of their variables, and the
// resulting cube list is summed with XorESOP semantics (duplicate
// cubes across pairs cancel).
func AndESOP(a, b ESOP) ESOP {
	var out ESOP
	for _, ca := range a {
		var row ESOP
		for _, cb := range b {
			row = append(row, mergeCube(ca, cb))
		}
		out = XorESOP(out, row)
	}
	return out
}

func mergeCube(a, b Cube) Cube {
	seen := map[int]struct{}{}
	var out Cube
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func cubeKey(c Cube) string {
	sorted := append(Cube{}, c...)
	sort.Ints(sorted)
	b := make([]byte, 0, len(sorted)*4)
	for _, v := range sorted {
		b = append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v), ',')
	}
	return string(b)
}

// ToESOP converts a BExp already in XDNF shape (an XOR of AND-of-Var /
// AND-of-Not(False) literals) into its ESOP representation.
func ToESOP(e boolexpr.BExp) ESOP {
	switch t := e.(type) {
	case boolexpr.False:
		return ESOP{}
	case boolexpr.Var:
		return ESOP{Cube{t.I}}
	case boolexpr.Not:
		if _, ok := t.X.(boolexpr.False); ok {
			return ESOP{{}}
		}
		return ToESOP(xdnfNot(t))
	case boolexpr.And:
		return AndESOP(ToESOP(t.X), ToESOP(t.Y))
	case boolexpr.Xor:
		return XorESOP(ToESOP(t.X), ToESOP(t.Y))
	default:
		return ESOP{}
	}
}

func xdnfNot(n boolexpr.Not) boolexpr.BExp {
	return boolexpr.Xor{X: boolexpr.Not{X: boolexpr.False{}}, Y: n.X}
}

// FromESOP rebuilds a BExp from an ESOP: the empty list is False, each
// cube becomes a left-nested And of Vars (the empty cube is
// Not(False), i.e. literal true), and the cubes are combined with Xor.
func FromESOP(s ESOP) boolexpr.BExp {
	if len(s) == 0 {
		return boolexpr.False{}
	}
	var e boolexpr.BExp = cubeToBExp(s[0])
	for _, c := range s[1:] {
		e = boolexpr.Xor{X: e, Y: cubeToBExp(c)}
	}
	return e
}

func cubeToBExp(c Cube) boolexpr.BExp {
	if len(c) == 0 {
		return boolexpr.Not{X: boolexpr.False{}}
	}
	var e boolexpr.BExp = boolexpr.Var{I: c[0]}
	for _, v := range c[1:] {
		e = boolexpr.And{X: e, Y: boolexpr.Var{I: v}}
	}
	return e
}
