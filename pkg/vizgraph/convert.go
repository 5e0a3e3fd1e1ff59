package vizgraph

import (
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netgraph"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// netHubPrefix namespaces net hub node IDs away from component names.
const netHubPrefix = "__NET__:"

// FromNetGraph re-expresses the net-projected multigraph as a labelled
// graph: one node per net, one edge per bridging component. Edge labels are
// left empty for Normalize to derive from the nets metadata.
func FromNetGraph(ng *netgraph.NetGraph) *Graph {
	g := New()
	for _, n := range ng.Nodes() {
		g.AddNode(&Node{
			ID:    n.Name,
			Label: n.Name,
			Kind:  "net",
			Meta:  map[string]any{"is_ground": n.Ground},
		})
	}
	for _, l := range ng.Lines() {
		g.AddEdge(&Edge{
			From: l.Nets[0],
			To:   l.Nets[1],
			Kind: "component",
			Meta: map[string]any{
				"component": l.ComponentName,
				"nets":      []string{l.Nets[0], l.Nets[1]},
				"pin_map":   l.PinMap,
			},
		})
	}
	return g
}

// FromBipartite re-expresses the bipartite incidence multigraph as a
// labelled graph, one edge per attached pin.
func FromBipartite(b *netgraph.Bipartite) *Graph {
	g := New()
	for _, n := range b.Nodes() {
		g.AddNode(&Node{
			ID:    n.Name,
			Label: n.Name,
			Kind:  n.Kind.String(),
			Meta:  map[string]any{"is_ground": n.Ground},
		})
	}
	for _, l := range b.Lines() {
		g.AddEdge(&Edge{
			From:  l.Net.Name(),
			To:    l.Component.Name(),
			Label: l.Net.Name(),
			Kind:  "incidence",
			Meta:  map[string]any{"pin_index": l.PinIndex},
		})
	}
	return g
}

// ComponentCentric builds the component-centric hub view of a netlist:
// component nodes plus one hub node per net that has connections, with one
// edge per (component, net) incidence. Edge metadata carries the component's
// pin names (not indices) on that net.
func ComponentCentric(nets []*schematic.Net) *Graph {
	g := New()

	// Per-component net info in discovery order, pin indices converted to
	// pin names.
	type netPins struct {
		net   *schematic.Net
		names []string
	}
	type compEntry struct {
		comp *schematic.Component
		nets []netPins
	}
	var order []*compEntry
	byComp := make(map[*schematic.Component]*compEntry)
	for _, net := range nets {
		for _, conn := range net.Connections() {
			e, ok := byComp[conn.Component]
			if !ok {
				e = &compEntry{comp: conn.Component}
				byComp[conn.Component] = e
				order = append(order, e)
			}
			pins := conn.Component.Pins()
			names := make([]string, 0, len(conn.PinIndices))
			for _, idx := range conn.PinIndices {
				names = append(names, pins[idx].Name())
			}
			found := false
			for i := range e.nets {
				if e.nets[i].net == net {
					e.nets[i].names = append(e.nets[i].names, names...)
					found = true
					break
				}
			}
			if !found {
				e.nets = append(e.nets, netPins{net: net, names: names})
			}
		}
	}

	for _, e := range order {
		g.AddNode(&Node{
			ID:    e.comp.Name(),
			Label: e.comp.Name(),
			Kind:  "component",
			Meta:  map[string]any{"kind": e.comp.Kind().String()},
		})
	}

	hubs := make(map[string]bool)
	for _, e := range order {
		for _, np := range e.nets {
			hubID := netHubPrefix + np.net.Name()
			if !hubs[hubID] {
				hubs[hubID] = true
				g.AddNode(&Node{
					ID:    hubID,
					Label: np.net.Name(),
					Kind:  "net",
					Meta:  map[string]any{"net": np.net.Name()},
				})
			}
			g.AddEdge(&Edge{
				From:  hubID,
				To:    e.comp.Name(),
				Label: np.net.Name(),
				Kind:  "net",
				Meta: map[string]any{
					"nets":    []string{np.net.Name()},
					"pin_map": map[string][]string{e.comp.Name(): np.names},
				},
			})
		}
	}
	return g
}
