package netgraph

import (
	"gonum.org/v1/gonum/graph/encoding"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// NodeKind distinguishes the two node classes of the projections.
type NodeKind int

const (
	NodeNet NodeKind = iota
	NodeComponent
)

func (k NodeKind) String() string {
	switch k {
	case NodeNet:
		return "net"
	case NodeComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Node is a graph node backed by a net or a component of the source
// netlist. It implements gonum's graph.Node, dot.Node, and
// encoding.Attributer.
type Node struct {
	id   int64
	Name string
	Kind NodeKind

	// Ground is set on net nodes whose net is the ground reference.
	Ground bool

	// Net is the originating net; nil for component nodes.
	Net *schematic.Net
	// Component is the originating component; nil for net nodes.
	Component *schematic.Component
}

// ID returns the node's graph identifier, assigned in discovery order.
func (n *Node) ID() int64 { return n.id }

// DOTID returns the node name used in DOT output.
func (n *Node) DOTID() string { return n.Name }

// Attributes returns the node's DOT attributes.
func (n *Node) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "kind", Value: n.Kind.String()}}
	if n.Ground {
		attrs = append(attrs, encoding.Attribute{Key: "is_ground", Value: "true"})
	}
	return attrs
}
