package graphcoloring

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/constraint"
)

// Graph is the points-and-edges input for the coloring command.
type Graph struct {
	Points []string   `yaml:"points"`
	Edges  [][]string `yaml:"edges"`
}

// LoadGraph reads a graph from a YAML (or JSON) file.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening graph file (%s): %w", path, err)
	}
	var graph Graph
	if err := yaml.Unmarshal(data, &graph); err != nil {
		return nil, fmt.Errorf("error parsing graph file (%s): %w", path, err)
	}
	if len(graph.Points) == 0 {
		return nil, fmt.Errorf("graph file (%s) declares no points", path)
	}
	for _, edge := range graph.Edges {
		if len(edge) != 2 {
			return nil, fmt.Errorf("invalid edge %v: an edge joins exactly two points", edge)
		}
	}
	return &graph, nil
}

// NewProblem builds a coloring CSP: every point may take any color from the
// palette, and adjacent points must differ.
func NewProblem(graph *Graph, colors []string) (*csp.Problem[string, string], error) {
	domains := make(csp.Domains[string, string], len(graph.Points))
	for _, point := range graph.Points {
		domains[point] = slices.Clone(colors)
	}
	problem, err := csp.NewProblem(graph.Points, domains)
	if err != nil {
		return nil, err
	}
	for _, edge := range graph.Edges {
		if err := problem.AddConstraint(constraint.NotEqual[string, string](edge[0], edge[1])); err != nil {
			return nil, err
		}
	}
	return problem, nil
}
