package netgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// IncidenceLine is one edge of the bipartite projection: a single pin
// attachment between a net node and a component node. Implements gonum's
// graph.Line and encoding.Attributer.
type IncidenceLine struct {
	from, to graph.Node
	id       int64

	PinIndex  int
	Net       *schematic.Net
	Component *schematic.Component
}

func (l *IncidenceLine) From() graph.Node { return l.from }
func (l *IncidenceLine) To() graph.Node   { return l.to }
func (l *IncidenceLine) ID() int64        { return l.id }

func (l *IncidenceLine) ReversedLine() graph.Line {
	r := *l
	r.from, r.to = l.to, l.from
	return &r
}

// Attributes returns the line's DOT attributes.
func (l *IncidenceLine) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "pin_index", Value: fmt.Sprintf("%d", l.PinIndex)}}
}

// Bipartite is the net-component incidence multigraph: one node per input
// net (isolated nets included), one node per component encountered through
// any net's connections, and one line per attached pin. Multiple pins of a
// component on the same net yield parallel lines, each carrying its own pin
// index.
type Bipartite struct {
	g      *multi.UndirectedGraph
	nodes  []*Node
	byName map[string]*Node
	lines  []*IncidenceLine
}

// NewBipartite builds the bipartite projection of the given nets. Nets and
// components share one name space of node keys, and node insertion is
// idempotent, so a net appearing twice in the input contributes a single
// node (its attachments are recorded once per occurrence).
func NewBipartite(nets []*schematic.Net) *Bipartite {
	b := &Bipartite{
		g:      multi.NewUndirectedGraph(),
		byName: make(map[string]*Node),
	}
	for _, net := range nets {
		nn := b.ensure(&Node{Name: net.Name(), Kind: NodeNet, Ground: net.IsGround(), Net: net})
		for _, conn := range net.Connections() {
			cn := b.ensure(&Node{Name: conn.Component.Name(), Kind: NodeComponent, Component: conn.Component})
			for _, idx := range conn.PinIndices {
				l := &IncidenceLine{
					from:      nn,
					to:        cn,
					id:        int64(len(b.lines)),
					PinIndex:  idx,
					Net:       net,
					Component: conn.Component,
				}
				b.g.SetLine(l)
				b.lines = append(b.lines, l)
			}
		}
	}
	return b
}

// ensure returns the node registered under n.Name, inserting n when absent.
func (b *Bipartite) ensure(n *Node) *Node {
	if existing, ok := b.byName[n.Name]; ok {
		return existing
	}
	n.id = int64(len(b.nodes))
	b.byName[n.Name] = n
	b.nodes = append(b.nodes, n)
	b.g.AddNode(n)
	return n
}

// Graph exposes the underlying gonum multigraph.
func (b *Bipartite) Graph() *multi.UndirectedGraph { return b.g }

// Node returns the node registered under the given name, or nil.
func (b *Bipartite) Node(name string) *Node { return b.byName[name] }

// Nodes returns all nodes in discovery order.
func (b *Bipartite) Nodes() []*Node {
	out := make([]*Node, len(b.nodes))
	copy(out, b.nodes)
	return out
}

// Lines returns all incidence lines in creation order.
func (b *Bipartite) Lines() []*IncidenceLine {
	out := make([]*IncidenceLine, len(b.lines))
	copy(out, b.lines)
	return out
}
