package netgraph

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// divider builds the reference voltage divider:
//
//	VCC -- R1 --+-- VOUT
//	            |
//	           R2
//	            |
//	           GND
func divider(t *testing.T) *schematic.Schematic {
	t.Helper()
	s := schematic.New()
	for _, n := range []*schematic.Net{
		schematic.NewNet("VCC"),
		schematic.NewNet("VOUT"),
		schematic.NewGroundNet("GND"),
	} {
		if err := s.AddNet(n); err != nil {
			t.Fatalf("AddNet(%s): %v", n.Name(), err)
		}
	}
	for _, name := range []string{"R1", "R2"} {
		c, err := schematic.NewComponent(name, schematic.KindResistor, []string{"1", "2"},
			map[string]any{"resistance": 10e3})
		if err != nil {
			t.Fatalf("NewComponent(%s): %v", name, err)
		}
		if err := s.AddComponent(c); err != nil {
			t.Fatalf("AddComponent(%s): %v", name, err)
		}
	}
	for _, conn := range []struct{ net, comp, pin string }{
		{"VCC", "R1", "1"},
		{"VOUT", "R1", "2"},
		{"VOUT", "R2", "1"},
		{"GND", "R2", "2"},
	} {
		if err := s.Connect(conn.net, conn.comp, schematic.PinName(conn.pin)); err != nil {
			t.Fatalf("Connect(%s, %s.%s): %v", conn.net, conn.comp, conn.pin, err)
		}
	}
	return s
}

type triple struct {
	net, comp string
	pin       int
}

func triples(incs []Incidence) []triple {
	out := make([]triple, len(incs))
	for i, inc := range incs {
		out[i] = triple{inc.Net.Name(), inc.Component.Name(), inc.PinIndex}
	}
	return out
}

func TestIncidencesDivider(t *testing.T) {
	s := divider(t)
	got := triples(Incidences(s.Nets()))
	want := []triple{
		{"VCC", "R1", 0},
		{"VOUT", "R1", 1},
		{"VOUT", "R2", 0},
		{"GND", "R2", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d incidences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("incidence %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIncidencesEmptyNets(t *testing.T) {
	nets := []*schematic.Net{schematic.NewNet("A"), schematic.NewNet("B")}
	if got := Incidences(nets); len(got) != 0 {
		t.Errorf("expected no incidences for empty nets, got %v", got)
	}
}

func TestIterMatchesEager(t *testing.T) {
	s := divider(t)
	eager := triples(Incidences(s.Nets()))

	var lazy []triple
	for inc := range IterIncidences(s.Nets()) {
		lazy = append(lazy, triple{inc.Net.Name(), inc.Component.Name(), inc.PinIndex})
	}

	if len(eager) != len(lazy) {
		t.Fatalf("eager has %d triples, lazy has %d", len(eager), len(lazy))
	}
	for i := range eager {
		if eager[i] != lazy[i] {
			t.Errorf("triple %d differs: eager %v, lazy %v", i, eager[i], lazy[i])
		}
	}
}

func TestIterIsRestartable(t *testing.T) {
	s := divider(t)
	seq := IterIncidences(s.Nets())

	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 4 || second != 4 {
		t.Errorf("expected 4 incidences on both passes, got %d then %d", first, second)
	}
}

func TestIterEarlyStop(t *testing.T) {
	s := divider(t)
	count := 0
	for range IterIncidences(s.Nets()) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected early stop after 2, got %d", count)
	}
}

func TestProjectionDeterminism(t *testing.T) {
	s := divider(t)

	a := triples(Incidences(s.Nets()))
	b := triples(Incidences(s.Nets()))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star expansion not reproducible at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
