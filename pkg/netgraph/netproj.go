package netgraph

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// BridgeLine is one edge of the net-projected multigraph: a component
// bridging a pair of distinct nets. Implements gonum's graph.Line and
// encoding.Attributer.
type BridgeLine struct {
	from, to graph.Node
	id       int64

	// Component is the bridging component.
	Component     *schematic.Component
	ComponentName string

	// Nets holds the bridged net names in visit order, not normalized.
	Nets [2]string

	// PinMap records, for each of the two nets, the complete set of the
	// component's pin indices attached to that net (ascending) — not just
	// the pins behind this one edge.
	PinMap map[string][]int
}

func (l *BridgeLine) From() graph.Node { return l.from }
func (l *BridgeLine) To() graph.Node   { return l.to }
func (l *BridgeLine) ID() int64        { return l.id }

func (l *BridgeLine) ReversedLine() graph.Line {
	r := *l
	r.from, r.to = l.to, l.from
	return &r
}

// Attributes returns the line's DOT attributes. Pin sets are rendered per
// net in net-name order, e.g. "GND:1;VOUT:0".
func (l *BridgeLine) Attributes() []encoding.Attribute {
	names := make([]string, 0, len(l.PinMap))
	for name := range l.PinMap {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		pins := make([]string, 0, len(l.PinMap[name]))
		for _, idx := range l.PinMap[name] {
			pins = append(pins, fmt.Sprintf("%d", idx))
		}
		parts = append(parts, name+":"+strings.Join(pins, ","))
	}
	return []encoding.Attribute{
		{Key: "component", Value: l.ComponentName},
		{Key: "nets", Value: l.Nets[0] + "," + l.Nets[1]},
		{Key: "pin_map", Value: strings.Join(parts, ";")},
	}
}

// NetGraph is the net-projected multigraph: nodes are nets (isolated nets
// included) and every component touching k >= 2 distinct nets contributes
// one line per unordered pair of those nets.
type NetGraph struct {
	g      *multi.UndirectedGraph
	nodes  []*Node
	byName map[string]*Node
	lines  []*BridgeLine
}

// NewNetGraph builds the net projection of the given nets. Node insertion
// is idempotent for duplicate nets in the input; pin sets are accumulated
// as sets, so duplicates do not inflate the pin maps. Pair enumeration per
// component follows the order its nets are first discovered while scanning
// the input.
func NewNetGraph(nets []*schematic.Net) *NetGraph {
	ng := &NetGraph{
		g:      multi.NewUndirectedGraph(),
		byName: make(map[string]*Node),
	}
	for _, net := range nets {
		ng.ensure(net)
	}

	// Per-component net sets and pin maps, in discovery order.
	type compEntry struct {
		comp     *schematic.Component
		netOrder []*schematic.Net
		pins     map[*schematic.Net]map[int]struct{}
	}
	var order []*compEntry
	byComp := make(map[*schematic.Component]*compEntry)
	for _, net := range nets {
		for _, conn := range net.Connections() {
			e, ok := byComp[conn.Component]
			if !ok {
				e = &compEntry{comp: conn.Component, pins: make(map[*schematic.Net]map[int]struct{})}
				byComp[conn.Component] = e
				order = append(order, e)
			}
			set, ok := e.pins[net]
			if !ok {
				set = make(map[int]struct{})
				e.pins[net] = set
				e.netOrder = append(e.netOrder, net)
			}
			for _, idx := range conn.PinIndices {
				set[idx] = struct{}{}
			}
		}
	}

	for _, e := range order {
		if len(e.netOrder) < 2 {
			continue
		}
		for i := 0; i < len(e.netOrder); i++ {
			for j := i + 1; j < len(e.netOrder); j++ {
				a, b := e.netOrder[i], e.netOrder[j]
				l := &BridgeLine{
					from:          ng.byName[a.Name()],
					to:            ng.byName[b.Name()],
					id:            int64(len(ng.lines)),
					Component:     e.comp,
					ComponentName: e.comp.Name(),
					Nets:          [2]string{a.Name(), b.Name()},
					PinMap: map[string][]int{
						a.Name(): ascending(e.pins[a]),
						b.Name(): ascending(e.pins[b]),
					},
				}
				ng.g.SetLine(l)
				ng.lines = append(ng.lines, l)
			}
		}
	}
	return ng
}

func (ng *NetGraph) ensure(net *schematic.Net) *Node {
	if existing, ok := ng.byName[net.Name()]; ok {
		return existing
	}
	n := &Node{
		id:     int64(len(ng.nodes)),
		Name:   net.Name(),
		Kind:   NodeNet,
		Ground: net.IsGround(),
		Net:    net,
	}
	ng.byName[n.Name] = n
	ng.nodes = append(ng.nodes, n)
	ng.g.AddNode(n)
	return n
}

// Graph exposes the underlying gonum multigraph.
func (ng *NetGraph) Graph() *multi.UndirectedGraph { return ng.g }

// Node returns the net node registered under the given name, or nil.
func (ng *NetGraph) Node(name string) *Node { return ng.byName[name] }

// Nodes returns all net nodes in discovery order.
func (ng *NetGraph) Nodes() []*Node {
	out := make([]*Node, len(ng.nodes))
	copy(out, ng.nodes)
	return out
}

// Lines returns all bridge lines in creation order.
func (ng *NetGraph) Lines() []*BridgeLine {
	out := make([]*BridgeLine, len(ng.lines))
	copy(out, ng.lines)
	return out
}

func ascending(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for idx := range set {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
