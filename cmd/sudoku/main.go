// Command sudoku is a batch solver harness: it reads 81-character
// grids (one per line, '0' for empty) from files or arguments, solves
// each, and reports totals. It also generates puzzles.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-cp/internal/domain"
	"svw.info/sudoku-cp/internal/generator"
	"svw.info/sudoku-cp/internal/ports"
	"svw.info/sudoku-cp/internal/solver"
)

var (
	solverKind string
	cpuProfile bool
	quiet      bool
)

func pickSolver(kind string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(), nil
	case "parallel":
		return solver.NewParallelSolver(), nil
	case "", "constraint":
		return solver.NewConstraintSolver(), nil
	}
	return nil, fmt.Errorf("unknown solver %q", kind)
}

// readGrids collects grids from the arguments: an argument that parses
// as a grid is taken literally, anything else is read as a file with
// one grid per line. Blank lines and '#' comments are skipped.
func readGrids(args []string) ([]string, error) {
	var grids []string
	for _, arg := range args {
		if len(strings.TrimSpace(arg)) == domain.GridLen {
			grids = append(grids, strings.TrimSpace(arg))
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			grids = append(grids, line)
		}
		closeErr := f.Close()
		if err := sc.Err(); err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}
	}
	return grids, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := pickSolver(solverKind)
	if err != nil {
		return err
	}
	grids, err := readGrids(args)
	if err != nil {
		return err
	}
	if len(grids) == 0 {
		return fmt.Errorf("no grids to solve")
	}
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	start := time.Now()
	var total ports.Stats
	solved := 0
	for n, g := range grids {
		b, err := domain.ParseGrid(g)
		if err != nil {
			return fmt.Errorf("grid %d: %w", n, err)
		}
		out, st, err := s.Solve(cmd.Context(), b)
		total.Add(st)
		if err != nil {
			fmt.Fprintf(os.Stderr, "no solution for grid %d: %v\n", n, err)
			continue
		}
		solved++
		if !quiet {
			fmt.Print(out.Pretty())
			fmt.Println()
		}
	}
	fmt.Printf("solved %d of %d grids in %v (nodes=%d guesses=%d)\n",
		solved, len(grids), time.Since(start).Round(time.Microsecond), total.Nodes, total.Guesses)
	return nil
}

var (
	genSeed int64
	genDiff string
)

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := pickSolver(solverKind)
	if err != nil {
		return err
	}
	g := generator.NewUniqueGenerator(s)
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.Medium
	switch strings.ToLower(genDiff) {
	case "easy":
		diff = domain.Easy
	case "hard":
		diff = domain.Hard
	case "expert":
		diff = domain.Expert
	}
	p, st, err := g.Generate(cmd.Context(), seed, diff)
	if err != nil {
		return err
	}
	fmt.Println(p.Board.Grid())
	if !quiet {
		fmt.Print(p.Board.Pretty())
		fmt.Printf("seed=%d difficulty=%s nodes=%d dur=%v\n",
			seed, diff, st.Nodes, st.Duration.Round(time.Microsecond))
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Constraint-propagation Sudoku solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&solverKind, "solver", "constraint", "solver engine: constraint|backtrack|parallel")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-grid output")

	solveCmd := &cobra.Command{
		Use:   "solve [grid|file]...",
		Short: "Solve grids given inline or one per line in files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the current directory")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().StringVar(&genDiff, "difficulty", "medium", "easy|medium|hard|expert")

	root.AddCommand(solveCmd, generateCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
