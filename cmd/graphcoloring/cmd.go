package graphcoloring

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/sable/internal/cli"
	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/solver"
)

func NewColorCommand() *cobra.Command {
	var colors []string
	var flags *cli.Flags
	cmd := &cobra.Command{
		Use:   "color <path>",
		Short: "Colors a graph so no two adjacent points share a color",
		Long: `Colors a graph read from a YAML or JSON file declaring points and
edges. For instance:

points: [WA, NT, SA]
edges:
  - [WA, NT]
  - [WA, SA]
  - [NT, SA]
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], colors, flags)
		},
	}
	cmd.Flags().StringSliceVar(&colors, "colors", []string{"red", "green", "blue", "purple"}, "the color palette")
	flags = cli.AddSolverFlags(cmd)
	return cmd
}

func solve(path string, colors []string, flags *cli.Flags) error {
	graph, err := LoadGraph(path)
	if err != nil {
		return err
	}
	problem, err := NewProblem(graph, colors)
	if err != nil {
		return err
	}

	options := cli.SolverOptions[string, string](flags)
	if flags.Trace {
		options = append(options, solver.WithTracer[string, string](solver.LoggingTracer[string, string]{Writer: os.Stderr}))
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
		for _, point := range graph.Points {
			fmt.Printf("%s = %s\n", point, solution[point])
		}
	}
	return nil
}
