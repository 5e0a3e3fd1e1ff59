package schematic

import (
	"errors"
	"testing"
)

func mustComponent(t *testing.T, name string, kind ComponentKind, pins ...string) *Component {
	t.Helper()
	c, err := NewComponent(name, kind, pins, nil)
	if err != nil {
		t.Fatalf("NewComponent(%s): %v", name, err)
	}
	return c
}

func TestComponentRequiresAtLeastOnePin(t *testing.T) {
	_, err := NewComponent("X1", KindIC, nil, nil)
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestComponentCreatesNamedPins(t *testing.T) {
	c := mustComponent(t, "X1", KindIC, "A", "B", "C")

	pins := c.Pins()
	if len(pins) != 3 {
		t.Fatalf("expected 3 pins, got %d", len(pins))
	}
	for i, want := range []string{"A", "B", "C"} {
		if pins[i].Name() != want {
			t.Errorf("pin %d: expected name %q, got %q", i, want, pins[i].Name())
		}
		if pins[i].Index() != i {
			t.Errorf("pin %q: expected index %d, got %d", want, i, pins[i].Index())
		}
	}
}

func TestDuplicatePinNamesAreRejected(t *testing.T) {
	_, err := NewComponent("X1", KindIC, []string{"A", "A"}, nil)
	if !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestPinLookupByName(t *testing.T) {
	c := mustComponent(t, "X1", KindMOSFET, "D", "S", "G")

	p, err := c.Pin("G")
	if err != nil {
		t.Fatalf("Pin(G): %v", err)
	}
	if p != c.Pins()[2] {
		t.Errorf("Pin(G) should be the third pin")
	}
}

func TestPinLookupInvalidName(t *testing.T) {
	c := mustComponent(t, "X1", KindIC, "A", "B")

	if _, err := c.Pin("C"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestComponentParametersAreCopied(t *testing.T) {
	c, err := NewComponent("R1", KindResistor, []string{"1", "2"}, map[string]any{"resistance": 10e3})
	if err != nil {
		t.Fatalf("NewComponent: %v", err)
	}

	params := c.Parameters()
	params["resistance"] = 0.0

	v, ok := c.Parameter("resistance")
	if !ok || v != 10e3 {
		t.Errorf("parameter mutated through snapshot: got %v", v)
	}
}

func TestConnectedNets(t *testing.T) {
	c := mustComponent(t, "X1", KindIC, "A", "B", "C")
	n1 := NewNet("N1")
	n2 := NewNet("N2")

	if err := n1.Connect(c, PinName("A")); err != nil {
		t.Fatalf("connect A: %v", err)
	}
	if err := n2.Connect(c, PinName("C")); err != nil {
		t.Fatalf("connect C: %v", err)
	}

	// Pin B is unconnected and must be skipped; order follows pin order.
	var got []*Net
	for n := range c.ConnectedNets() {
		got = append(got, n)
	}
	if len(got) != 2 || got[0] != n1 || got[1] != n2 {
		t.Errorf("expected [N1 N2], got %v", got)
	}

	// The sequence is restartable.
	count := 0
	for range c.ConnectedNets() {
		count++
	}
	if count != 2 {
		t.Errorf("restarted sequence yielded %d nets, expected 2", count)
	}
}

func TestConnectedNetsDoesNotDeduplicate(t *testing.T) {
	c := mustComponent(t, "X1", KindIC, "A", "B")
	n := NewNet("N1")

	if err := n.Connect(c, PinName("A")); err != nil {
		t.Fatalf("connect A: %v", err)
	}
	if err := n.Connect(c, PinName("B")); err != nil {
		t.Fatalf("connect B: %v", err)
	}

	count := 0
	for range c.ConnectedNets() {
		count++
	}
	if count != 2 {
		t.Errorf("expected one yield per connected pin, got %d", count)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("opamp")
	if err != nil {
		t.Fatalf("ParseKind: %v", err)
	}
	if k != KindOpAmp {
		t.Errorf("expected KindOpAmp, got %v", k)
	}
	if k.String() != "opamp" {
		t.Errorf("String: expected opamp, got %s", k.String())
	}

	if _, err := ParseKind("flux-capacitor"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStringRenderings(t *testing.T) {
	c := mustComponent(t, "R1", KindResistor, "1", "2")
	n := NewNet("VCC")
	if err := n.Connect(c, PinName("1")); err != nil {
		t.Fatalf("connect: %v", err)
	}

	if got, want := c.String(), "<resistor R1 [0:VCC, 1:NC]>"; got != want {
		t.Errorf("component string: got %q, want %q", got, want)
	}
	if got, want := n.String(), "<Net VCC degree=1 [R1:[0]]>"; got != want {
		t.Errorf("net string: got %q, want %q", got, want)
	}
}
