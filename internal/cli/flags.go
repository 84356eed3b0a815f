package cli

import (
	"github.com/spf13/cobra"

	"github.com/constraint-framework/sable/pkg/csp/solver"
)

// Flags holds the solver-configuration flags shared by every subcommand.
type Flags struct {
	AC3              bool
	MRV              bool
	Degree           bool
	DegreeUnassigned bool
	LoopCheck        bool
	Trace            bool
}

// AddSolverFlags registers the shared solver flags on a command. The
// defaults mirror forward checking with MRV and the assigned-neighbor
// degree tie-break.
func AddSolverFlags(cmd *cobra.Command) *Flags {
	f := &Flags{}
	cmd.Flags().BoolVar(&f.AC3, "ac3", false, "propagate with arc consistency instead of forward checking")
	cmd.Flags().BoolVar(&f.MRV, "mrv", true, "select variables by minimum remaining values")
	cmd.Flags().BoolVar(&f.Degree, "degree", true, "break MRV ties by degree (requires --mrv)")
	cmd.Flags().BoolVar(&f.DegreeUnassigned, "degree-unassigned", false, "count unassigned instead of assigned neighbors for the degree tie-break")
	cmd.Flags().BoolVar(&f.LoopCheck, "loop-check", false, "abort if the search revisits an identical assignment (debug)")
	cmd.Flags().BoolVar(&f.Trace, "trace", false, "print search progress")
	return f
}

// SolverOptions translates parsed flags into solver options. Tracing is
// left to each command so it can render domain-appropriate output.
func SolverOptions[V comparable, D comparable](f *Flags) []solver.Option[V, D] {
	options := []solver.Option[V, D]{}
	if f.AC3 {
		options = append(options, solver.WithAC3[V, D]())
	} else {
		options = append(options, solver.WithForwardChecking[V, D]())
	}
	if f.MRV {
		options = append(options, solver.WithMRV[V, D]())
	}
	if f.Degree && f.MRV {
		orientation := solver.CountAssigned
		if f.DegreeUnassigned {
			orientation = solver.CountUnassigned
		}
		options = append(options, solver.WithDegreeTieBreak[V, D](orientation))
	}
	if f.LoopCheck {
		options = append(options, solver.WithLoopDetection(solver.NewLoopDetector[V, D]()))
	}
	return options
}
