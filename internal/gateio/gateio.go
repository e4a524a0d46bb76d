// Package gateio implements the synthesizer's sole wire format: one
// gate per line, tokens NOT/CNOT/TOFF followed by their bit indices.
package gateio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revsynth/revsynth/internal/gate"
)

// Format renders c in the canonical line-per-gate textual format.
func Format(c gate.Circuit) string {
	var b strings.Builder
	for _, g := range c {
		switch g.Kind {
		case gate.KindNOT:
			fmt.Fprintf(&b, "NOT %d\n", g.Target)
		case gate.KindCNOT:
			fmt.Fprintf(&b, "CNOT %d %d\n", g.C1, g.Target)
		case gate.KindTOFF:
			fmt.Fprintf(&b, "TOFF %d %d %d\n", g.C1, g.C2, g.Target)
		}
	}
	return b.String()
}

// Parse is Format's inverse: it reads one gate per non-blank line.
func Parse(s string) (gate.Circuit, error) {
	var c gate.Circuit
	for lineNo, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		g, err := parseGate(fields)
		if err != nil {
			return nil, fmt.Errorf("gateio: line %d: %w", lineNo+1, err)
		}
		c = append(c, g)
	}
	return c, nil
}

func parseGate(fields []string) (gate.Gate, error) {
	if len(fields) == 0 {
		return gate.Gate{}, fmt.Errorf("empty line")
	}
	switch fields[0] {
	case "NOT":
		ints, err := parseInts(fields[1:], 1)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.NOT(ints[0]), nil
	case "CNOT":
		ints, err := parseInts(fields[1:], 2)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.CNOT(ints[0], ints[1]), nil
	case "TOFF":
		ints, err := parseInts(fields[1:], 3)
		if err != nil {
			return gate.Gate{}, err
		}
		return gate.TOFF(ints[0], ints[1], ints[2]), nil
	default:
		return gate.Gate{}, fmt.Errorf("unknown gate token %q", fields[0])
	}
}

func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d bit indices, got %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad bit index %q: %w", f, err)
		}
		out[i] = n
	}
	return out, nil
}
