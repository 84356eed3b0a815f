package dimacs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/sable/internal/cli"
	"github.com/constraint-framework/sable/internal/sat"
	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/solver"
)

func NewDimacsCommand() *cobra.Command {
	var verify bool
	var flags *cli.Flags
	cmd := &cobra.Command{
		Use:   "dimacs <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], flags, verify)
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the sat/unsat verdict with a SAT solver")
	flags = cli.AddSolverFlags(cmd)
	return cmd
}

func solve(path string, flags *cli.Flags, verify bool) error {
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	d, err := NewDimacs(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}
	problem, err := GenerateProblem(d)
	if err != nil {
		return err
	}

	options := cli.SolverOptions[int, bool](flags)
	if flags.Trace {
		options = append(options, solver.WithTracer[int, bool](solver.LoggingTracer[int, bool]{Writer: os.Stderr}))
	}
	so, err := solver.NewSolver(problem, options...)
	if err != nil {
		return err
	}

	solution, err := so.Solve(context.Background())
	switch {
	case errors.Is(err, csp.ErrNotSatisfiable):
		fmt.Println("no solution found")
	case err != nil:
		return err
	default:
		fmt.Println("solution found:")
		for i := 1; i <= d.NumVariables(); i++ {
			fmt.Printf("%d = %t\n", i, solution[i])
		}
	}

	if verify {
		want, verr := sat.Satisfiable(d.Clauses())
		if verr != nil {
			return verr
		}
		if got := err == nil; got != want {
			return fmt.Errorf("verification failed: engine reports satisfiable=%t, sat solver reports %t", got, want)
		}
		fmt.Println("verdict verified against sat solver")
	}
	return nil
}
