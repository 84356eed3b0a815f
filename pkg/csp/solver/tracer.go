package solver

import (
	"fmt"
	"io"
	"maps"

	"github.com/constraint-framework/sable/pkg/csp"
)

// SearchPosition describes one frame of the backtracking search.
type SearchPosition[V comparable, D comparable] interface {
	// Depth is the number of variables assigned when the frame was entered.
	Depth() int
	// Variable is the variable selected for assignment at this frame.
	Variable() V
	// Candidates is the selected variable's remaining domain, in trial order.
	Candidates() []D
	// Assignment is the partial assignment the frame was entered with.
	Assignment() csp.Assignment[V, D]
}

// Tracer observes the search frame by frame.
type Tracer[V comparable, D comparable] interface {
	Trace(p SearchPosition[V, D])
}

type DefaultTracer[V comparable, D comparable] struct{}

func (DefaultTracer[V, D]) Trace(_ SearchPosition[V, D]) {
}

// LoggingTracer writes one line per search frame.
type LoggingTracer[V comparable, D comparable] struct {
	Writer io.Writer
}

func (t LoggingTracer[V, D]) Trace(p SearchPosition[V, D]) {
	fmt.Fprintf(t.Writer, "depth=%d variable=%v candidates=%v\n", p.Depth(), p.Variable(), p.Candidates())
}

type searchPosition[V comparable, D comparable] struct {
	depth      int
	variable   V
	candidates []D
	assignment csp.Assignment[V, D]
}

func (p searchPosition[V, D]) Depth() int                       { return p.depth }
func (p searchPosition[V, D]) Variable() V                      { return p.variable }
func (p searchPosition[V, D]) Candidates() []D                  { return p.candidates }
func (p searchPosition[V, D]) Assignment() csp.Assignment[V, D] { return p.assignment }

// LoopDetector records every assignment snapshot the search attempts and
// flags repeats. A repeat means the engine is re-exploring a state it
// already tried, which is a defect. The detector is inert unless injected
// via WithLoopDetection.
type LoopDetector[V comparable, D comparable] struct {
	history []csp.Assignment[V, D]
}

func NewLoopDetector[V comparable, D comparable]() *LoopDetector[V, D] {
	return &LoopDetector[V, D]{}
}

// Seen reports whether the snapshot was attempted before, recording it if
// not.
func (l *LoopDetector[V, D]) Seen(assignment csp.Assignment[V, D]) bool {
	for _, previous := range l.history {
		if maps.Equal(previous, assignment) {
			return true
		}
	}
	l.history = append(l.history, assignment.Clone())
	return false
}
