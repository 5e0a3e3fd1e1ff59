package netdsl

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
)

// Build constructs a fresh schematic from a parsed circuit description.
func Build(f *File) (*schematic.Schematic, error) {
	s := schematic.New()
	if err := Apply(s, f); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply executes a parsed circuit description against an existing schematic,
// statement by statement in file order. The first failing statement aborts
// the run; earlier statements keep their effect.
func Apply(s *schematic.Schematic, f *File) error {
	for i, st := range f.Statements {
		if err := applyStatement(s, st); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}

func applyStatement(s *schematic.Schematic, st *Statement) error {
	switch {
	case st.Net != nil:
		return s.AddNet(schematic.NewNet(st.Net.Name))

	case st.Ground != nil:
		return s.AddNet(schematic.NewGroundNet(st.Ground.Name))

	case st.Component != nil:
		return applyComponent(s, st.Component)

	case st.Connect != nil:
		c, err := s.Component(st.Connect.Pin.Component)
		if err != nil {
			return err
		}
		return s.Connect(st.Connect.Net, c.Name(), pinSelector(c, st.Connect.Pin.Pin))

	case st.Join != nil:
		return applyJoin(s, st.Join)

	default:
		return fmt.Errorf("empty statement")
	}
}

func applyComponent(s *schematic.Schematic, decl *ComponentDecl) error {
	kind, err := schematic.ParseKind(decl.Kind)
	if err != nil {
		return err
	}

	var params map[string]any
	if len(decl.Params) > 0 {
		params = make(map[string]any, len(decl.Params))
		for _, p := range decl.Params {
			v, err := p.Value.Interpret()
			if err != nil {
				return fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			params[p.Name] = v
		}
	}

	c, err := schematic.NewComponent(decl.Name, kind, decl.Pins, params)
	if err != nil {
		return err
	}
	return s.AddComponent(c)
}

func applyJoin(s *schematic.Schematic, j *JoinStmt) error {
	ca, err := s.Component(j.A.Component)
	if err != nil {
		return err
	}
	cb, err := s.Component(j.B.Component)
	if err != nil {
		return err
	}
	_, err = s.ConnectPins(
		schematic.ComponentName(j.A.Component), pinSelector(ca, j.A.Pin),
		schematic.ComponentName(j.B.Component), pinSelector(cb, j.B.Pin),
		schematic.ConnectPinsOptions{NetName: j.Into, AllowMerge: j.Merge},
	)
	return err
}

// pinSelector picks a selector for a textual pin reference: the pin name when
// the component has one by that name, a numeric index otherwise.
func pinSelector(c *schematic.Component, pin string) schematic.PinSelector {
	if _, err := c.Pin(pin); err == nil {
		return schematic.PinName(pin)
	}
	if idx, err := strconv.Atoi(pin); err == nil {
		return schematic.PinIndex(idx)
	}
	return schematic.PinName(pin)
}
