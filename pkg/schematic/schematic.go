package schematic

import "fmt"

// autoNetPrefix prefixes synthesized net names like "net-001".
const autoNetPrefix = "net-"

// Schematic owns the full set of components and nets by name and enforces the
// global invariants: name uniqueness, one net per pin, and the one-way frozen
// transition.
//
// Not safe for concurrent mutation; see the package documentation.
type Schematic struct {
	nets       map[string]*Net
	netOrder   []*Net
	components map[string]*Component
	compOrder  []*Component
	frozen     bool
	autoNet    int
}

// New creates an empty, mutable schematic.
func New() *Schematic {
	return &Schematic{
		nets:       make(map[string]*Net),
		components: make(map[string]*Component),
	}
}

// Frozen reports whether structural mutation has been disabled.
func (s *Schematic) Frozen() bool { return s.frozen }

// Freeze disables all structural mutation. The transition is one-way; read
// queries and Validate keep working afterwards.
func (s *Schematic) Freeze() { s.frozen = true }

// Nets returns the registered nets in registration order.
func (s *Schematic) Nets() []*Net {
	out := make([]*Net, len(s.netOrder))
	copy(out, s.netOrder)
	return out
}

// Components returns the registered components in registration order.
func (s *Schematic) Components() []*Component {
	out := make([]*Component, len(s.compOrder))
	copy(out, s.compOrder)
	return out
}

// AddNet registers a net under its name.
func (s *Schematic) AddNet(n *Net) error {
	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.nets[n.name]; ok {
		return fmt.Errorf("%w: net %q", ErrDuplicateName, n.name)
	}
	s.nets[n.name] = n
	s.netOrder = append(s.netOrder, n)
	return nil
}

// AddComponent registers a component under its name.
func (s *Schematic) AddComponent(c *Component) error {
	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.components[c.name]; ok {
		return fmt.Errorf("%w: component %q", ErrDuplicateName, c.name)
	}
	s.components[c.name] = c
	s.compOrder = append(s.compOrder, c)
	return nil
}

// Net looks up a registered net by name.
func (s *Schematic) Net(name string) (*Net, error) {
	n, ok := s.nets[name]
	if !ok {
		return nil, fmt.Errorf("%w: net %q", ErrNotFound, name)
	}
	return n, nil
}

// Component looks up a registered component by name.
func (s *Schematic) Component(name string) (*Component, error) {
	c, ok := s.components[name]
	if !ok {
		return nil, fmt.Errorf("%w: component %q", ErrNotFound, name)
	}
	return c, nil
}

// Connect attaches one pin of the named component to the named net.
func (s *Schematic) Connect(netName, compName string, sel PinSelector) error {
	if s.frozen {
		return ErrFrozen
	}
	n, err := s.Net(netName)
	if err != nil {
		return err
	}
	c, err := s.Component(compName)
	if err != nil {
		return err
	}
	return n.Connect(c, sel)
}

// ConnectCreateNet is Connect that first creates the net when it does not
// exist yet. Repeated calls with the same net name reuse the created net.
func (s *Schematic) ConnectCreateNet(netName, compName string, sel PinSelector) error {
	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.nets[netName]; !ok {
		if err := s.AddNet(NewNet(netName)); err != nil {
			return err
		}
	}
	return s.Connect(netName, compName, sel)
}

// ComponentRef designates a component for ConnectPins, either by name or as
// an already-registered instance.
type ComponentRef interface {
	resolveIn(s *Schematic) (*Component, error)
}

// ComponentName references a component by its registered name.
type ComponentName string

func (n ComponentName) resolveIn(s *Schematic) (*Component, error) {
	return s.Component(string(n))
}

func (c *Component) resolveIn(s *Schematic) (*Component, error) {
	if s.components[c.name] != c {
		return nil, fmt.Errorf("%w: component %q", ErrNotRegistered, c.name)
	}
	return c, nil
}

// ConnectPinsOptions tunes ConnectPins. The zero value creates auto-named
// nets and refuses to merge.
type ConnectPinsOptions struct {
	// NetName names the net created (or reused) when neither pin is wired.
	// Empty means synthesize a fresh auto name.
	NetName string

	// AllowMerge permits merging two existing nets when the pins are on
	// different nets. Merging is destructive and never implicit.
	AllowMerge bool
}

// ConnectPins wires two pins onto one net and returns that net.
//
// Neither pin wired: a net is created (NetName, an existing net of that name,
// or a fresh auto name) and both pins attach to it. One pin wired: the other
// attaches to its net. Both on the same net: no-op. Both on different nets:
// ErrUnmergedNets, unless AllowMerge is set, in which case the second pin's
// net is merged into the first pin's net and the first net survives under its
// own name.
func (s *Schematic) ConnectPins(a ComponentRef, pinA PinSelector, b ComponentRef, pinB PinSelector, opts ConnectPinsOptions) (*Net, error) {
	if s.frozen {
		return nil, ErrFrozen
	}

	compA, err := a.resolveIn(s)
	if err != nil {
		return nil, err
	}
	compB, err := b.resolveIn(s)
	if err != nil {
		return nil, err
	}
	pa, err := pinA.resolve(compA)
	if err != nil {
		return nil, err
	}
	pb, err := pinB.resolve(compB)
	if err != nil {
		return nil, err
	}

	if pa == pb {
		return nil, fmt.Errorf("%w: %q.%q wired to itself", ErrAlreadyConnected, compA.name, pa.name)
	}

	netA, netB := pa.net, pb.net
	switch {
	case netA == nil && netB == nil:
		n, err := s.netFor(opts.NetName)
		if err != nil {
			return nil, err
		}
		n.attach(compA, pa)
		n.attach(compB, pb)
		return n, nil

	case netA != nil && netB == nil:
		netA.attach(compB, pb)
		return netA, nil

	case netA == nil && netB != nil:
		netB.attach(compA, pa)
		return netB, nil

	case netA == netB:
		return netA, nil

	default:
		if !opts.AllowMerge {
			return nil, fmt.Errorf("%w: %q.%q on %q, %q.%q on %q",
				ErrUnmergedNets, compA.name, pa.name, netA.name, compB.name, pb.name, netB.name)
		}
		s.merge(netA, netB)
		return netA, nil
	}
}

// MergeNets merges the net named from into the net named into and returns
// the surviving net. The source net is removed from the registry and must
// not be used afterwards.
func (s *Schematic) MergeNets(into, from string) (*Net, error) {
	if s.frozen {
		return nil, ErrFrozen
	}
	dst, err := s.Net(into)
	if err != nil {
		return nil, err
	}
	src, err := s.Net(from)
	if err != nil {
		return nil, err
	}
	if dst == src {
		return dst, nil
	}
	s.merge(dst, src)
	return dst, nil
}

// merge moves every attachment of src onto dst and drops src from the
// registry. Pins are mid-transfer, not double-connected, so the re-attach
// bypasses the Connect exclusivity check.
func (s *Schematic) merge(dst, src *Net) {
	for _, c := range src.order {
		for _, idx := range sortedIndices(src.conns[c]) {
			p := c.pins[idx]
			p.net = nil
			dst.attach(c, p)
		}
	}
	src.conns = make(map[*Component]map[int]struct{})
	src.order = nil

	delete(s.nets, src.name)
	for i, n := range s.netOrder {
		if n == src {
			s.netOrder = append(s.netOrder[:i], s.netOrder[i+1:]...)
			break
		}
	}
}

// netFor resolves the net to use for an all-unwired ConnectPins: the named
// net when it exists, a new net under the given name, or a fresh auto-named
// net when name is empty.
func (s *Schematic) netFor(name string) (*Net, error) {
	if name != "" {
		if n, ok := s.nets[name]; ok {
			return n, nil
		}
		n := NewNet(name)
		if err := s.AddNet(n); err != nil {
			return nil, err
		}
		return n, nil
	}
	for {
		s.autoNet++
		name = fmt.Sprintf("%s%03d", autoNetPrefix, s.autoNet)
		if _, ok := s.nets[name]; !ok {
			break
		}
	}
	n := NewNet(name)
	if err := s.AddNet(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Ground returns the single net flagged as ground.
func (s *Schematic) Ground() (*Net, error) {
	var found *Net
	for _, n := range s.netOrder {
		if !n.ground {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q and %q", ErrMultipleGrounds, found.name, n.name)
		}
		found = n
	}
	if found == nil {
		return nil, ErrNoGround
	}
	return found, nil
}

// Validate reports the first pin found with no net, walking components in
// registration order and pins in index order. It may be called before or
// after Freeze; neither order is enforced.
func (s *Schematic) Validate() error {
	for _, c := range s.compOrder {
		for _, p := range c.pins {
			if p.net == nil {
				return fmt.Errorf("%w: component %q pin %q", ErrUnconnectedPin, c.name, p.name)
			}
		}
	}
	return nil
}
