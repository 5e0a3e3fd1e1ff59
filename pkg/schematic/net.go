package schematic

import (
	"fmt"
	"sort"
	"strings"
)

// Net is a named electrical node joining pins across components. Each
// attachment is recorded both in the net's connection map and as a
// back-reference on the pin; the two sides never desynchronize.
//
// Component iteration order is the order components were first attached, so
// reads over the same net state are deterministic.
type Net struct {
	name   string
	ground bool
	conns  map[*Component]map[int]struct{}
	order  []*Component
}

// NewNet creates an empty net.
func NewNet(name string) *Net {
	return &Net{name: name, conns: make(map[*Component]map[int]struct{})}
}

// NewGroundNet creates an empty net flagged as the ground reference.
func NewGroundNet(name string) *Net {
	n := NewNet(name)
	n.ground = true
	return n
}

// Name returns the net's name, unique within a schematic.
func (n *Net) Name() string { return n.name }

// IsGround reports whether this net is the designated reference potential.
func (n *Net) IsGround() bool { return n.ground }

// Connect attaches one pin of c to this net. The pin must not already be
// connected to any net, including this one.
func (n *Net) Connect(c *Component, sel PinSelector) error {
	p, err := sel.resolve(c)
	if err != nil {
		return err
	}
	if p.net != nil {
		return fmt.Errorf("%w: pin %q of %q is on net %q",
			ErrAlreadyConnected, p.name, c.name, p.net.name)
	}
	n.attach(c, p)
	return nil
}

// attach records the (component, pin) pair and sets the back-reference. It
// skips the exclusivity check and is reserved for callers that have already
// established the pin is free (Connect) or mid-transfer (merge).
func (n *Net) attach(c *Component, p *Pin) {
	set, ok := n.conns[c]
	if !ok {
		set = make(map[int]struct{})
		n.conns[c] = set
		n.order = append(n.order, c)
	}
	set[p.index] = struct{}{}
	p.net = n
}

// Connection is one component's attachments to a net.
type Connection struct {
	Component  *Component
	PinIndices []int // ascending
}

// Connections returns a snapshot of the net's attachments: one entry per
// component in first-attachment order, pin indices ascending. Mutating the
// snapshot does not affect the net.
func (n *Net) Connections() []Connection {
	out := make([]Connection, 0, len(n.order))
	for _, c := range n.order {
		out = append(out, Connection{Component: c, PinIndices: sortedIndices(n.conns[c])})
	}
	return out
}

// Degree returns the total number of (component, pin) attachments.
func (n *Net) Degree() int {
	d := 0
	for _, set := range n.conns {
		d += len(set)
	}
	return d
}

func (n *Net) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<Net %s degree=%d [", n.name, n.Degree())
	for i, c := range n.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%v", c.name, sortedIndices(n.conns[c]))
	}
	b.WriteString("]>")
	return b.String()
}

func sortedIndices(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
