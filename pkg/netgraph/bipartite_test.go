package netgraph

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

func TestBipartiteDivider(t *testing.T) {
	s := divider(t)
	b := NewBipartite(s.Nets())

	nodes := b.Nodes()
	if len(nodes) != 5 { // VCC, VOUT, GND, R1, R2
		t.Fatalf("expected 5 nodes, got %d", len(nodes))
	}

	netCount, compCount := 0, 0
	for _, n := range nodes {
		switch n.Kind {
		case NodeNet:
			netCount++
			if n.Net == nil || n.Component != nil {
				t.Errorf("net node %s has wrong object references", n.Name)
			}
		case NodeComponent:
			compCount++
			if n.Component == nil || n.Net != nil {
				t.Errorf("component node %s has wrong object references", n.Name)
			}
		}
	}
	if netCount != 3 || compCount != 2 {
		t.Errorf("expected 3 net and 2 component nodes, got %d and %d", netCount, compCount)
	}

	if b.Node("GND") == nil || !b.Node("GND").Ground {
		t.Errorf("GND node should carry the ground flag")
	}

	lines := b.Lines()
	if len(lines) != 4 { // one per pin attachment
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
}

func TestBipartiteParallelEdges(t *testing.T) {
	// Two pins of one component on the same net must remain distinct edges.
	c, err := schematic.NewComponent("X1", schematic.KindIC, []string{"A", "B"}, nil)
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}
	n := schematic.NewNet("N1")
	if err := n.Connect(c, schematic.PinName("A")); err != nil {
		t.Fatalf("connect A: %v", err)
	}
	if err := n.Connect(c, schematic.PinName("B")); err != nil {
		t.Fatalf("connect B: %v", err)
	}

	b := NewBipartite([]*schematic.Net{n})
	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 parallel lines, got %d", len(lines))
	}
	if lines[0].PinIndex != 0 || lines[1].PinIndex != 1 {
		t.Errorf("expected pin indices 0 and 1, got %d and %d", lines[0].PinIndex, lines[1].PinIndex)
	}
	for _, l := range lines {
		if l.Net != n || l.Component != c {
			t.Errorf("line should reference the originating net and component")
		}
	}

	// The gonum container must agree on the multiplicity.
	it := b.Graph().Lines(b.Node("N1").ID(), b.Node("X1").ID())
	count := 0
	for it.Next() {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 lines in the multigraph, got %d", count)
	}
}

func TestBipartiteIsolatedNetVisible(t *testing.T) {
	s := divider(t)
	spare := schematic.NewNet("SPARE")

	b := NewBipartite(append(s.Nets(), spare))
	n := b.Node("SPARE")
	if n == nil {
		t.Fatalf("isolated net should still appear as a node")
	}
	if b.Graph().Node(n.ID()) == nil {
		t.Errorf("isolated net missing from the gonum graph")
	}
}

func TestBipartiteDuplicateInputNets(t *testing.T) {
	s := divider(t)
	nets := s.Nets()
	dup := append(append([]*schematic.Net{}, nets...), nets[0])

	b := NewBipartite(dup)
	if len(b.Nodes()) != 5 {
		t.Errorf("duplicate input net must not create duplicate nodes, got %d", len(b.Nodes()))
	}
}

func TestBipartiteDOT(t *testing.T) {
	s := divider(t)
	b := NewBipartite(s.Nets())

	out, err := MarshalDOT(b.Graph(), "divider")
	if err != nil {
		t.Fatalf("MarshalDOT: %v", err)
	}
	dot := string(out)
	for _, want := range []string{"graph divider", "VCC", "R1", "kind", "pin_index"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}
