// Package graph materializes extracted references into a renderable directed
// graph: deduplicated edges between stable, label-derived node identities.
// The graph may be cyclic; no shape analysis happens here.
package graph

import (
	"strings"

	"github.com/vk/refgraph/internal/scan"
)

// Node is a rendered graph node: a stable identity plus the human-readable
// label shown for it.
type Node struct {
	ID    string
	Label string
}

// Edge is a directed connection between two node IDs.
type Edge struct {
	From string
	To   string
}

// Graph is the assembled node and edge set, in first-seen order.
type Graph struct {
	Nodes []Node
	Edges []Edge

	index map[string]int
}

// NodeID derives the renderer identity for a label. The same label always
// maps to the same ID. Colons are replaced because DOT reserves them for
// port syntax; the original label survives as the node's display text.
func NodeID(label string) string {
	return strings.ReplaceAll(label, ":", "-")
}

// Build assembles the final graph from extracted references. Orphans
// (references with no resolved origin) are dropped, and references that are
// value-identical collapse to a single edge.
func Build(refs []scan.Reference) *Graph {
	g := &Graph{index: make(map[string]int)}
	seen := make(map[scan.Reference]struct{}, len(refs))
	for _, r := range refs {
		if r.From == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		g.Edges = append(g.Edges, Edge{
			From: g.addNode(r.From),
			To:   g.addNode(r.To),
		})
	}
	return g
}

// Lookup returns the node registered under id.
func (g *Graph) Lookup(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

func (g *Graph) addNode(label string) string {
	id := NodeID(label)
	if _, ok := g.index[id]; !ok {
		g.index[id] = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
	}
	return id
}
