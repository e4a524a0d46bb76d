package boolexpr

import "testing"

func stFrom(vals map[int]bool) func(int) bool {
	return func(i int) bool { return vals[i] }
}

func TestEval(t *testing.T) {
	e := And{Xor{Var{0}, Var{1}}, Not{Var{2}}}
	st := stFrom(map[int]bool{0: true, 1: false, 2: false})
	if !Eval(e, st) {
		t.Fatal("expected true")
	}
	st2 := stFrom(map[int]bool{0: true, 1: false, 2: true})
	if Eval(e, st2) {
		t.Fatal("expected false when var 2 is true")
	}
}

func TestVarsAndVarMax(t *testing.T) {
	e := And{Xor{Var{3}, Var{1}}, Not{Var{7}}}
	vs := Vars(e)
	for _, want := range []int{1, 3, 7} {
		if !vs.Has(want) {
			t.Fatalf("missing var %d", want)
		}
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 vars, got %d", len(vs))
	}
	if VarMax(e) != 7 {
		t.Fatalf("VarMax = %d, want 7", VarMax(e))
	}
}

func TestVarMaxClosed(t *testing.T) {
	if VarMax(False{}) != 0 {
		t.Fatal("VarMax of a closed expression should be 0")
	}
}

func TestOccurs(t *testing.T) {
	e := Xor{Var{2}, Var{5}}
	if !Occurs(2, e) || !Occurs(5, e) {
		t.Fatal("expected both vars to occur")
	}
	if Occurs(9, e) {
		t.Fatal("var 9 does not occur")
	}
}

func TestAndDepth(t *testing.T) {
	cases := []struct {
		e    BExp
		want int
	}{
		{False{}, 0},
		{Var{0}, 0},
		{Not{Var{0}}, 0},
		{Xor{Var{0}, Var{1}}, 0},
		{And{Var{0}, Var{1}}, 1},
		{And{Xor{Var{0}, Var{1}}, Var{2}}, 1},
		{And{And{Var{0}, Var{1}}, Var{2}}, 2},
		{Xor{And{Var{0}, Var{1}}, And{And{Var{2}, Var{3}}, Var{4}}}, 2},
	}
	for _, c := range cases {
		if got := AndDepth(c.e); got != c.want {
			t.Fatalf("AndDepth(%s) = %d, want %d", PrettyPrint(c.e), got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := And{Xor{Var{0}, Var{1}}, Not{Var{2}}}
	b := And{Xor{Var{0}, Var{1}}, Not{Var{2}}}
	c := And{Xor{Var{0}, Var{1}}, Not{Var{3}}}
	if !Equal(a, b) {
		t.Fatal("expected structurally identical expressions to be equal")
	}
	if Equal(a, c) {
		t.Fatal("expected different expressions to be unequal")
	}
}

func TestSubstBExp(t *testing.T) {
	e := And{Var{0}, Var{1}}
	sigma := map[int]BExp{0: Xor{Var{2}, Var{3}}}
	got := SubstBExp(e, sigma)
	want := And{Xor{Var{2}, Var{3}}, Var{1}}
	if !Equal(got, want) {
		t.Fatalf("SubstBExp = %s, want %s", PrettyPrint(got), PrettyPrint(want))
	}
}

func TestSubstVar(t *testing.T) {
	e := And{Var{0}, Var{1}}
	got := SubstVar(e, map[int]int{0: 9})
	want := And{Var{9}, Var{1}}
	if !Equal(got, want) {
		t.Fatalf("SubstVar = %s, want %s", PrettyPrint(got), PrettyPrint(want))
	}
}

func TestPrettyPrintParseRoundTrip(t *testing.T) {
	exprs := []BExp{
		False{},
		Var{3},
		Not{Var{3}},
		And{Var{0}, Var{1}},
		Xor{Var{0}, And{Var{1}, Not{Var{2}}}},
	}
	for _, e := range exprs {
		s := PrettyPrint(e)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if !Equal(got, e) {
			t.Fatalf("round trip mismatch: %s -> %s", s, PrettyPrint(got))
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"(var)",
		"(var x)",
		"(and (var 0))",
		"(unknown (var 0))",
		"(var 0) extra",
	}
	for _, s := range bad {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) expected error, got none", s)
		}
	}
}
