package netgraph

import (
	"iter"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// Incidence is a single (net, component, pin index) attachment of the star
// expansion.
type Incidence struct {
	Net       *schematic.Net
	Component *schematic.Component
	PinIndex  int
}

// IterIncidences yields the star expansion of the given nets lazily: one
// incidence per recorded pin attachment, in net, then component
// first-attachment, then ascending pin-index order. The sequence is
// restartable and yields the same triples as Incidences in the same order.
func IterIncidences(nets []*schematic.Net) iter.Seq[Incidence] {
	return func(yield func(Incidence) bool) {
		for _, net := range nets {
			for _, conn := range net.Connections() {
				for _, idx := range conn.PinIndices {
					if !yield(Incidence{Net: net, Component: conn.Component, PinIndex: idx}) {
						return
					}
				}
			}
		}
	}
}

// Incidences returns the star expansion of the given nets as a slice.
func Incidences(nets []*schematic.Net) []Incidence {
	var out []Incidence
	for inc := range IterIncidences(nets) {
		out = append(out, inc)
	}
	return out
}
