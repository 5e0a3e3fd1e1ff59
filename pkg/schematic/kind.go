package schematic

import "fmt"

// ComponentKind identifies the device class of a component. The engine never
// varies behavior by kind; it is carried for consumers (catalogs, exporters,
// visualization).
type ComponentKind int

const (
	KindResistor ComponentKind = iota
	KindCapacitor
	KindInductor
	KindDiode
	KindBJT
	KindMOSFET
	KindJFET
	KindOpAmp
	KindPotentiometer
	KindTransformer
	KindIC
)

var kindNames = [...]string{
	KindResistor:      "resistor",
	KindCapacitor:     "capacitor",
	KindInductor:      "inductor",
	KindDiode:         "diode",
	KindBJT:           "bjt",
	KindMOSFET:        "mosfet",
	KindJFET:          "jfet",
	KindOpAmp:         "opamp",
	KindPotentiometer: "potentiometer",
	KindTransformer:   "transformer",
	KindIC:            "ic",
}

func (k ComponentKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind by its lowercase name, e.g. "resistor".
func ParseKind(s string) (ComponentKind, error) {
	for k, name := range kindNames {
		if name == s {
			return ComponentKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: component kind %q", ErrNotFound, s)
}
