package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/revsynth/revsynth/internal/boolexpr"
	"github.com/revsynth/revsynth/internal/cost"
	"github.com/revsynth/revsynth/internal/gateio"
	"github.com/revsynth/revsynth/internal/simplify"
	"github.com/revsynth/revsynth/internal/synth"
	"github.com/revsynth/revsynth/internal/verify"
	"github.com/revsynth/revsynth/internal/xdnf"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "revsynth",
		Short: "Reversible-circuit synthesizer — lower Boolean expressions to NOT/CNOT/Toffoli circuits",
	}

	var strategyName string

	compileCmd := &cobra.Command{
		Use:   "compile [expr]",
		Short: "Compile a Boolean expression into a reversible circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := boolexpr.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse expression: %w", err)
			}
			strat, err := parseStrategy(strategyName)
			if err != nil {
				return err
			}
			res := synth.CompileProgram(e, strat)
			fmt.Print(gateio.Format(res.C))
			fmt.Printf("result bit: %d\n", res.R)
			fmt.Println(cost.Report{Strategy: strat.String(), Count: cost.FromCircuit(res.C, res.A)})
			return nil
		},
	}
	compileCmd.Flags().StringVar(&strategyName, "strategy", "boundaries", "ancilla strategy: boundaries, pebbled, or bennett")

	simplifyCmd := &cobra.Command{
		Use:   "simplify [expr]",
		Short: "Simplify a Boolean expression and print its XDNF normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := boolexpr.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse expression: %w", err)
			}
			fmt.Printf("simplified: %s\n", boolexpr.PrettyPrint(simplify.Simplify(e)))
			fmt.Printf("xdnf:       %s\n", boolexpr.PrettyPrint(simplify.Simplify(xdnf.ToXDNF(e))))
			return nil
		},
	}

	var verifyMaxVar int
	var verifyTrials int

	verifyCmd := &cobra.Command{
		Use:   "verify [expr]",
		Short: "Compile an expression under every strategy and check equivalence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := boolexpr.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse expression: %w", err)
			}
			maxVar := verifyMaxVar
			if v := boolexpr.VarMax(e) + 1; v > maxVar {
				maxVar = v
			}
			for _, strat := range []synth.Strategy{synth.Boundaries, synth.Pebbled, synth.Bennett} {
				res := synth.CompileProgram(e, strat)
				if !verify.ExhaustiveCheck(e, maxVar, res.C, res.R) {
					return fmt.Errorf("strategy %s miscompiled %s", strat, args[0])
				}
				fmt.Printf("%s: OK (%s)\n", strat, cost.Report{Strategy: strat.String(), Count: cost.FromCircuit(res.C, res.A)})
			}
			if verifyTrials > 0 {
				r := rand.New(rand.NewSource(1))
				for i := 0; i < verifyTrials; i++ {
					re := verify.RandomExpr(r, maxVar, 4)
					res := synth.CompileProgram(re, synth.Boundaries)
					if !verify.ExhaustiveCheck(re, maxVar, res.C, res.R) {
						return fmt.Errorf("random trial %d failed for %s", i, boolexpr.PrettyPrint(re))
					}
				}
				fmt.Printf("%d random trials passed\n", verifyTrials)
			}
			return nil
		},
	}
	verifyCmd.Flags().IntVar(&verifyMaxVar, "max-var", 0, "variable count for exhaustive checking (defaults to varMax(expr)+1)")
	verifyCmd.Flags().IntVar(&verifyTrials, "random-trials", 0, "additionally run N random expressions through exhaustive checking")

	rootCmd.AddCommand(compileCmd, simplifyCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseStrategy(s string) (synth.Strategy, error) {
	switch s {
	case "boundaries":
		return synth.Boundaries, nil
	case "pebbled":
		return synth.Pebbled, nil
	case "bennett":
		return synth.Bennett, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want boundaries, pebbled, or bennett)", s)
	}
}
