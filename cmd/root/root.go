package root

import (
	"github.com/spf13/cobra"

	"github.com/constraint-framework/sable/cmd/dimacs"
	"github.com/constraint-framework/sable/cmd/graphcoloring"
	"github.com/constraint-framework/sable/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sable",
		Short: "Sable is a backtracking constraint-satisfaction solver",
		Long: `A generic constraint-satisfaction solver with forward checking,
arc consistency and variable-ordering heuristics, with sudoku, graph-coloring
and dimacs front-ends.`,
	}

	// add sub-commands
	rootCmd.AddCommand(dimacs.NewDimacsCommand())
	rootCmd.AddCommand(graphcoloring.NewColorCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())

	return rootCmd
}
