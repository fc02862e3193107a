// Package render serializes an assembled reference graph into Graphviz DOT
// form and writes the graph description file.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emicklei/dot"

	"github.com/vk/refgraph/internal/graph"
)

// OutputFileName is the deterministic name of the graph description file.
const OutputFileName = "graph.gv"

// DOT renders the graph as a directed DOT digraph: one box-shaped node per
// unique label and one edge per deduplicated reference.
func DOT(g *graph.Graph) string {
	dg := dot.NewGraph(dot.Directed)
	for _, n := range g.Nodes {
		dg.Node(n.ID).Attr("label", n.Label).Attr("shape", "box")
	}
	for _, e := range g.Edges {
		dg.Edge(dg.Node(e.From), dg.Node(e.To))
	}
	return dg.String()
}

// WriteDOT renders g into dir/graph.gv and returns the written path.
func WriteDOT(g *graph.Graph, dir string) (string, error) {
	path := filepath.Join(dir, OutputFileName)
	if err := os.WriteFile(path, []byte(DOT(g)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write graph file %s: %w", path, err)
	}
	return path, nil
}
