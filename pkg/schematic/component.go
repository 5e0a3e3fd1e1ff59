package schematic

import (
	"fmt"
	"iter"
	"strings"
)

// Component is a device with an ordered, named set of pins. The pin topology
// (count and names) is fixed at construction; only the nets the pins attach
// to change over the component's lifetime.
type Component struct {
	name   string
	kind   ComponentKind
	pins   []*Pin
	byName map[string]*Pin
	params map[string]any
}

// NewComponent builds a component with the given pin names, in order.
// At least one pin is required and pin names must be pairwise distinct.
// params may be nil; the engine never interprets parameter values.
func NewComponent(name string, kind ComponentKind, pinNames []string, params map[string]any) (*Component, error) {
	if len(pinNames) == 0 {
		return nil, fmt.Errorf("%w: component %q has no pins", ErrInvalidDefinition, name)
	}

	c := &Component{
		name:   name,
		kind:   kind,
		pins:   make([]*Pin, len(pinNames)),
		byName: make(map[string]*Pin, len(pinNames)),
		params: make(map[string]any, len(params)),
	}
	for i, pn := range pinNames {
		p := &Pin{index: i, name: pn}
		c.pins[i] = p
		c.byName[pn] = p
	}
	if len(c.byName) != len(c.pins) {
		return nil, fmt.Errorf("%w: component %q has duplicate pin names", ErrInvalidDefinition, name)
	}
	for k, v := range params {
		c.params[k] = v
	}
	return c, nil
}

// Name returns the component's name, unique within a schematic.
func (c *Component) Name() string { return c.name }

// Kind returns the component's device class.
func (c *Component) Kind() ComponentKind { return c.kind }

// Pins returns the component's pins in index order. The slice is a copy; the
// pins themselves are shared.
func (c *Component) Pins() []*Pin {
	out := make([]*Pin, len(c.pins))
	copy(out, c.pins)
	return out
}

// NumPins returns the number of pins.
func (c *Component) NumPins() int { return len(c.pins) }

// Pin looks up a pin by name.
func (c *Component) Pin(name string) (*Pin, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: component %q has no pin named %q", ErrNotFound, c.name, name)
	}
	return p, nil
}

// Parameters returns a copy of the component's free-form parameters.
func (c *Component) Parameters() map[string]any {
	out := make(map[string]any, len(c.params))
	for k, v := range c.params {
		out[k] = v
	}
	return out
}

// Parameter returns a single parameter value.
func (c *Component) Parameter(name string) (any, bool) {
	v, ok := c.params[name]
	return v, ok
}

// ConnectedNets yields the net of each connected pin in pin order, skipping
// unconnected pins. A net reached through several pins is yielded once per
// pin; collect into a set when distinctness matters. The sequence is
// restartable.
func (c *Component) ConnectedNets() iter.Seq[*Net] {
	return func(yield func(*Net) bool) {
		for _, p := range c.pins {
			if p.net == nil {
				continue
			}
			if !yield(p.net) {
				return
			}
		}
	}
}

func (c *Component) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s %s [", c.kind, c.name)
	for i, p := range c.pins {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.net == nil {
			fmt.Fprintf(&b, "%d:NC", p.index)
		} else {
			fmt.Fprintf(&b, "%d:%s", p.index, p.net.name)
		}
	}
	b.WriteString("]>")
	return b.String()
}
