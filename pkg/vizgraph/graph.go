// Package vizgraph defines the domain-neutral labelled graph handed to
// visualization consumers: every node and edge carries a label, a kind tag,
// and a metadata map. Normalize fills missing fields with defaults without
// overwriting; Validate checks the contract without mutating and reports the
// first violation found.
package vizgraph

import (
	"fmt"
	"strings"
)

// Node is a labelled graph node keyed by ID.
type Node struct {
	ID    string
	Label string
	Kind  string
	Meta  map[string]any
}

// Edge is a labelled edge between two node IDs. Parallel edges are allowed.
type Edge struct {
	From  string
	To    string
	Label string
	Kind  string
	Meta  map[string]any
}

// Graph is an edge-list multigraph with labelled nodes and edges.
type Graph struct {
	Nodes []*Node
	Edges []*Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a node and returns it.
func (g *Graph) AddNode(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	return n
}

// AddEdge appends an edge and returns it.
func (g *Graph) AddEdge(e *Edge) *Edge {
	g.Edges = append(g.Edges, e)
	return e
}

// Node returns the first node with the given ID, or nil.
func (g *Graph) Node(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Normalize fills in contract defaults in place and returns g. Existing
// values are never overwritten: a node gets its ID as label and kind "node",
// an edge gets a label joined from its "nets" metadata (or "") and kind
// "edge", and nil metadata maps become empty maps.
func (g *Graph) Normalize() *Graph {
	for _, n := range g.Nodes {
		if n.Label == "" {
			n.Label = n.ID
		}
		if n.Kind == "" {
			n.Kind = "node"
		}
		if n.Meta == nil {
			n.Meta = map[string]any{}
		}
	}
	for _, e := range g.Edges {
		if e.Meta == nil {
			e.Meta = map[string]any{}
		}
		if e.Label == "" {
			e.Label = deriveEdgeLabel(e.Meta)
		}
		if e.Kind == "" {
			e.Kind = "edge"
		}
	}
	return g
}

// deriveEdgeLabel joins the net names in meta["nets"] when present.
func deriveEdgeLabel(meta map[string]any) string {
	nets, ok := meta["nets"]
	if !ok {
		return ""
	}
	switch v := nets.(type) {
	case []string:
		return strings.Join(v, ",")
	case [2]string:
		return v[0] + "," + v[1]
	case []any:
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = fmt.Sprint(x)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

// Validate checks the contract without mutating the graph: every node and
// edge must have a non-empty label, a non-empty kind, and a non-nil metadata
// map. The returned error describes the first violation; nil means the
// graph satisfies the contract. Stricter than Normalize: run Normalize first
// when defaults are wanted.
func (g *Graph) Validate() error {
	for _, n := range g.Nodes {
		if n.Label == "" {
			return fmt.Errorf("node %q: missing label", n.ID)
		}
		if n.Kind == "" {
			return fmt.Errorf("node %q: missing kind", n.ID)
		}
		if n.Meta == nil {
			return fmt.Errorf("node %q: missing meta", n.ID)
		}
	}
	for i, e := range g.Edges {
		if e.Label == "" {
			return fmt.Errorf("edge %d (%s -- %s): missing label", i, e.From, e.To)
		}
		if e.Kind == "" {
			return fmt.Errorf("edge %d (%s -- %s): missing kind", i, e.From, e.To)
		}
		if e.Meta == nil {
			return fmt.Errorf("edge %d (%s -- %s): missing meta", i, e.From, e.To)
		}
	}
	return nil
}
