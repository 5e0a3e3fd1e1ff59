package netgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// MarshalDOT renders a projection's multigraph in Graphviz DOT form. Node
// and line attributes (kind, pin indices, bridged nets) are carried into
// the output.
func MarshalDOT(g graph.Multigraph, name string) ([]byte, error) {
	return dot.MarshalMulti(g, name, "", "  ")
}
