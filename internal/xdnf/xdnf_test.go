package xdnf

import (
	"math/rand"
	"testing"

	"github.com/revsynth/revsynth/internal/boolexpr"
)

func randExpr(r *rand.Rand, maxVar, depth int) boolexpr.BExp {
	if depth <= 0 || r.Intn(3) == 0 {
		if r.Intn(4) == 0 {
			return boolexpr.False{}
		}
		return boolexpr.Var{I: r.Intn(maxVar)}
	}
	switch r.Intn(3) {
	case 0:
		return boolexpr.Not{X: randExpr(r, maxVar, depth-1)}
	case 1:
		return boolexpr.And{X: randExpr(r, maxVar, depth-1), Y: randExpr(r, maxVar, depth-1)}
	default:
		return boolexpr.Xor{X: randExpr(r, maxVar, depth-1), Y: randExpr(r, maxVar, depth-1)}
	}
}

func evalAt(e boolexpr.BExp, bits []bool) bool {
	return boolexpr.Eval(e, func(i int) bool {
		if i < 0 || i >= len(bits) {
			return false
		}
		return bits[i]
	})
}

func TestToXDNFPreservesSemantics(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		e := randExpr(r, 5, 4)
		x := ToXDNF(e)
		for trial := 0; trial < 10; trial++ {
			bits := []bool{r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1}
			if evalAt(e, bits) != evalAt(x, bits) {
				t.Fatalf("ToXDNF changed semantics for %s -> %s", boolexpr.PrettyPrint(e), boolexpr.PrettyPrint(x))
			}
		}
	}
}

func TestUnXDNFPreservesSemantics(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		e := randExpr(r, 5, 4)
		u := UnXDNF(e)
		for trial := 0; trial < 10; trial++ {
			bits := []bool{r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1}
			if evalAt(e, bits) != evalAt(u, bits) {
				t.Fatalf("UnXDNF changed semantics for %s -> %s", boolexpr.PrettyPrint(e), boolexpr.PrettyPrint(u))
			}
		}
	}
}

func TestUnXDNFRefactorsSharedConjunct(t *testing.T) {
	a, b, d := boolexpr.Var{I: 0}, boolexpr.Var{I: 1}, boolexpr.Var{I: 2}
	e := boolexpr.Xor{X: boolexpr.And{X: a, Y: b}, Y: boolexpr.And{X: a, Y: d}}
	got := UnXDNF(e)
	want := boolexpr.And{X: a, Y: boolexpr.Xor{X: b, Y: d}}
	if !boolexpr.Equal(got, want) {
		t.Fatalf("UnXDNF = %s, want %s", boolexpr.PrettyPrint(got), boolexpr.PrettyPrint(want))
	}
}

func TestDistribPlainAnd(t *testing.T) {
	a, b := boolexpr.Var{I: 0}, boolexpr.Var{I: 1}
	got := Distrib(a, b)
	want := boolexpr.And{X: a, Y: b}
	if !boolexpr.Equal(got, want) {
		t.Fatalf("Distrib = %s, want %s", boolexpr.PrettyPrint(got), boolexpr.PrettyPrint(want))
	}
}

func TestDistribOverXor(t *testing.T) {
	a, b, c := boolexpr.Var{I: 0}, boolexpr.Var{I: 1}, boolexpr.Var{I: 2}
	got := Distrib(boolexpr.Xor{X: a, Y: b}, c)
	want := boolexpr.Xor{X: boolexpr.And{X: a, Y: c}, Y: boolexpr.And{X: b, Y: c}}
	if !boolexpr.Equal(got, want) {
		t.Fatalf("Distrib = %s, want %s", boolexpr.PrettyPrint(got), boolexpr.PrettyPrint(want))
	}
}

func TestESOPRoundTripSemantics(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		e := randExpr(r, 5, 3)
		x := ToXDNF(e)
		s := ToESOP(x)
		back := FromESOP(s)
		for trial := 0; trial < 10; trial++ {
			bits := []bool{r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1, r.Intn(2) == 1}
			if evalAt(e, bits) != evalAt(back, bits) {
				t.Fatalf("ESOP round trip changed semantics for %s", boolexpr.PrettyPrint(e))
			}
		}
	}
}

func TestXorESOPCancelsDuplicateCubes(t *testing.T) {
	a := ESOP{{0}, {1}}
	b := ESOP{{1}, {2}}
	got := XorESOP(a, b)
	want := ESOP{{0}, {2}}
	if len(got) != len(want) {
		t.Fatalf("XorESOP = %v, want %v", got, want)
	}
}

func TestAndESOPDistributes(t *testing.T) {
	a := ESOP{{0}}
	b := ESOP{{1}, {2}}
	got := AndESOP(a, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 cubes, got %v", got)
	}
}

func TestESOPEmptyIsFalse(t *testing.T) {
	if !boolexpr.Equal(FromESOP(ESOP{}), boolexpr.False{}) {
		t.Fatal("empty ESOP should be False")
	}
}

func TestESOPEmptyCubeIsTrue(t *testing.T) {
	got := FromESOP(ESOP{{}})
	if !evalAt(got, nil) {
		t.Fatal("[[]] should evaluate to true under any state")
	}
}
