package sudoku

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/sable/internal/cli"
	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/solver"
)

func NewSudokuCommand() *cobra.Command {
	var flags *cli.Flags
	cmd := &cobra.Command{
		Use:   "sudoku <path>",
		Short: "Solves a sudoku board",
		Long: `Solves a sudoku board read from a YAML or JSON file containing
nine rows of nine values, with 0 marking a blank cell. For instance:

- [5, 3, 0, 0, 7, 0, 0, 0, 0]
- [6, 0, 0, 1, 9, 5, 0, 0, 0]
...
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], flags)
		},
	}
	flags = cli.AddSolverFlags(cmd)
	return cmd
}

// boardTracer reprints the board at every search frame.
type boardTracer struct {
	writer io.Writer
	board  Board
}

func (t boardTracer) Trace(p solver.SearchPosition[Cell, int]) {
	RenderBoard(t.writer, p.Assignment(), t.board)
	fmt.Fprintln(t.writer)
}

func solve(path string, flags *cli.Flags) error {
	board, err := LoadBoard(path)
	if err != nil {
		return err
	}
	problem, err := NewProblem(board)
	if err != nil {
		return err
	}

	options := cli.SolverOptions[Cell, int](flags)
	if flags.Trace {
		options = append(options, solver.WithTracer[Cell, int](boardTracer{writer: os.Stderr, board: board}))
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
		RenderBoard(os.Stdout, solution, board)
	}
	return nil
}
