package netdsl

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

const dividerCkt = `
-- voltage divider
net VCC
net VOUT
ground GND

component R1 resistor (1 2) { value = 10k }
component R2 resistor (1 2) { value = 4.7k }

connect VCC R1.1
connect VOUT R1.2
connect VOUT R2.1
connect GND R2.2
`

func parseAndBuild(t *testing.T, input string) *schematic.Schematic {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	f, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	s, err := Build(f)
	if err != nil {
		t.Fatalf("Failed to build: %v", err)
	}
	return s
}

func TestBuildDivider(t *testing.T) {
	s := parseAndBuild(t, dividerCkt)

	if got := len(s.Nets()); got != 3 {
		t.Fatalf("Expected 3 nets, got %d", got)
	}
	if got := len(s.Components()); got != 2 {
		t.Fatalf("Expected 2 components, got %d", got)
	}

	gnd, err := s.Ground()
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if gnd.Name() != "GND" {
		t.Errorf("Expected ground GND, got %s", gnd.Name())
	}

	vout, err := s.Net("VOUT")
	if err != nil {
		t.Fatalf("Net(VOUT): %v", err)
	}
	if vout.Degree() != 2 {
		t.Errorf("Expected VOUT degree 2, got %d", vout.Degree())
	}

	r1, err := s.Component("R1")
	if err != nil {
		t.Fatalf("Component(R1): %v", err)
	}
	v, ok := r1.Parameter("value")
	if !ok {
		t.Fatalf("R1 has no value parameter")
	}
	if f, ok := v.(float64); !ok || math.Abs(f-10000) > 1e-9 {
		t.Errorf("Expected value 10000, got %v", v)
	}

	if err := s.Validate(); err != nil {
		t.Errorf("Divider should validate: %v", err)
	}
}

func TestBuildJoinIntoNamedNet(t *testing.T) {
	s := parseAndBuild(t, `
	net VCC
	ground GND
	component R1 resistor (1 2)
	component R2 resistor (1 2)
	connect VCC R1.1
	connect GND R2.2
	join R1.2 R2.1 into VOUT
	`)

	vout, err := s.Net("VOUT")
	if err != nil {
		t.Fatalf("join should have created VOUT: %v", err)
	}
	if vout.Degree() != 2 {
		t.Errorf("Expected VOUT degree 2, got %d", vout.Degree())
	}
}

func TestBuildJoinAutoNamesNet(t *testing.T) {
	s := parseAndBuild(t, `
	component R1 resistor (1 2)
	component R2 resistor (1 2)
	join R1.1 R2.1
	`)

	if _, err := s.Net("net-001"); err != nil {
		t.Errorf("Expected an auto-named net-001: %v", err)
	}
}

func TestBuildJoinMerge(t *testing.T) {
	input := `
	net A
	net B
	component R1 resistor (1 2)
	component R2 resistor (1 2)
	connect A R1.1
	connect B R2.1
	join R1.1 R2.1
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	// Without the merge flag, joining two wired pins fails.
	f, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if _, err := Build(f); !errors.Is(err, schematic.ErrUnmergedNets) {
		t.Fatalf("Expected ErrUnmergedNets, got %v", err)
	}

	// With the flag, B folds into A.
	f, err = parser.ParseString(strings.Replace(input, "join R1.1 R2.1", "join R1.1 R2.1 merge", 1))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	s, err := Build(f)
	if err != nil {
		t.Fatalf("Failed to build: %v", err)
	}
	a, err := s.Net("A")
	if err != nil {
		t.Fatalf("Net(A): %v", err)
	}
	if a.Degree() != 2 {
		t.Errorf("Expected merged net A degree 2, got %d", a.Degree())
	}
	if _, err := s.Net("B"); !errors.Is(err, schematic.ErrNotFound) {
		t.Errorf("Expected B gone after merge, got %v", err)
	}
}

func TestBuildErrorsNameStatement(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unknown kind", `component X widget (1 2)`, schematic.ErrNotFound},
		{"undeclared net", "component R1 resistor (1 2)\nconnect VCC R1.1", schematic.ErrNotFound},
		{"duplicate net", "net VCC\nnet VCC", schematic.ErrDuplicateName},
		{"unknown pin", "net VCC\ncomponent R1 resistor (1 2)\nconnect VCC R1.7", schematic.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := parser.ParseString(tc.input)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			_, err = Build(f)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
			if err == nil || !strings.Contains(err.Error(), "statement") {
				t.Errorf("Error should name the failing statement, got %v", err)
			}
		})
	}
}

func TestBuildPinByNameAndIndex(t *testing.T) {
	s := parseAndBuild(t, `
	net N1
	net N2
	net N3
	component Q1 bjt (B C E)
	connect N1 Q1.B
	connect N2 Q1.1
	connect N3 Q1.E
	`)

	q1, err := s.Component("Q1")
	if err != nil {
		t.Fatalf("Component(Q1): %v", err)
	}
	pins := q1.Pins()
	if pins[1].Net() == nil || pins[1].Net().Name() != "N2" {
		t.Errorf("Q1.1 should resolve to the collector pin by index")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("All pins wired, Validate should pass: %v", err)
	}
}
