package graphcoloring

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constraint-framework/sable/internal/cli"
	"github.com/constraint-framework/sable/pkg/csp"
	"github.com/constraint-framework/sable/pkg/csp/solver"
)

func australia() *Graph {
	return &Graph{
		Points: []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"},
		Edges: [][]string{
			{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
			{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"},
			{"NSW", "V"},
		},
	}
}

func solveGraph(t *testing.T, graph *Graph, colors []string) (csp.Assignment[string, string], error) {
	t.Helper()
	problem, err := NewProblem(graph, colors)
	require.NoError(t, err)
	s, err := solver.NewSolver(problem, cli.SolverOptions[string, string](&cli.Flags{MRV: true, Degree: true})...)
	require.NoError(t, err)
	return s.Solve(context.Background())
}

func TestSolveMapColoring(t *testing.T) {
	graph := australia()
	solution, err := solveGraph(t, graph, []string{"red", "green", "blue"})
	require.NoError(t, err)
	require.Len(t, solution, len(graph.Points))
	for _, edge := range graph.Edges {
		assert.NotEqual(t, solution[edge[0]], solution[edge[1]], "edge %v", edge)
	}
}

func TestSolveTriangleNeedsThreeColors(t *testing.T) {
	triangle := &Graph{
		Points: []string{"a", "b", "c"},
		Edges:  [][]string{{"a", "b"}, {"b", "c"}, {"a", "c"}},
	}

	_, err := solveGraph(t, triangle, []string{"red", "blue"})
	assert.ErrorIs(t, err, csp.ErrNotSatisfiable)

	solution, err := solveGraph(t, triangle, []string{"red", "green", "blue"})
	require.NoError(t, err)
	assert.Len(t, solution, 3)
}

func TestNewProblemRejectsUnknownEndpoint(t *testing.T) {
	graph := &Graph{
		Points: []string{"a"},
		Edges:  [][]string{{"a", "b"}},
	}
	_, err := NewProblem(graph, []string{"red"})
	assert.ErrorContains(t, err, "not declared in the problem")
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("points: [a, b, c]\nedges:\n  - [a, b]\n  - [b, c]\n"), 0600))
	graph, err := LoadGraph(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, graph.Points)
	assert.Len(t, graph.Edges, 2)

	// the loader also accepts the JSON flavor of the same shape
	jsonPath := filepath.Join(dir, "graph.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"points": ["a", "b"], "edges": [["a", "b"]]}`), 0600))
	graph, err = LoadGraph(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, graph.Points)
}

func TestLoadGraphErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("points: []\n"), 0600))
	_, err := LoadGraph(empty)
	assert.ErrorContains(t, err, "declares no points")

	badEdge := filepath.Join(dir, "edge.yaml")
	require.NoError(t, os.WriteFile(badEdge, []byte("points: [a, b]\nedges:\n  - [a]\n"), 0600))
	_, err = LoadGraph(badEdge)
	assert.ErrorContains(t, err, "an edge joins exactly two points")
}
