package schematic

import "fmt"

// Pin is a single terminal of a component. Pins are created by their owning
// component and have no independent lifecycle.
type Pin struct {
	index int
	name  string
	net   *Net
}

// Index returns the pin's stable position in the owning component's pin list.
func (p *Pin) Index() int { return p.index }

// Name returns the pin's name within its component.
func (p *Pin) Name() string { return p.name }

// Net returns the net this pin is attached to, or nil when unconnected.
func (p *Pin) Net() *Net { return p.net }

func (p *Pin) String() string {
	if p.net == nil {
		return fmt.Sprintf("<Pin %s -> NC>", p.name)
	}
	return fmt.Sprintf("<Pin %s -> %s>", p.name, p.net.name)
}

// PinSelector designates one pin of a component, either by name or by index.
type PinSelector interface {
	resolve(c *Component) (*Pin, error)
}

// PinName selects a pin by its name within the component.
type PinName string

func (n PinName) resolve(c *Component) (*Pin, error) {
	return c.Pin(string(n))
}

// PinIndex selects a pin by its zero-based position.
type PinIndex int

func (i PinIndex) resolve(c *Component) (*Pin, error) {
	if i < 0 || int(i) >= len(c.pins) {
		return nil, fmt.Errorf("%w: pin index %d for component %q with %d pins",
			ErrOutOfRange, int(i), c.name, len(c.pins))
	}
	return c.pins[i], nil
}
