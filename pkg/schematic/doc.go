// Package schematic models an electrical schematic as components with typed
// pins joined by nets, and maintains the connectivity between them.
//
// # Overview
//
// The model is a bipartite-like structure:
//
//   - A Component owns an ordered list of named Pins. Pin topology is fixed
//     at construction; only each pin's net binding changes afterwards.
//   - A Net is a named electrical node recording, per component, the set of
//     pin indices attached to it. Every attachment is mirrored by a
//     back-reference from the pin to the net, and both sides are kept in
//     lockstep by every mutating operation.
//   - A Schematic owns components and nets by name, enforces name uniqueness
//     and the one-net-per-pin rule, and provides the higher-level wiring
//     operations.
//
// # Usage
//
// Basic wiring:
//
//	sch := schematic.New()
//	vcc := schematic.NewNet("VCC")
//	gnd := schematic.NewGroundNet("GND")
//	sch.AddNet(vcc)
//	sch.AddNet(gnd)
//
//	r1, _ := schematic.NewComponent("R1", schematic.KindResistor,
//		[]string{"1", "2"}, map[string]any{"resistance": 10e3})
//	sch.AddComponent(r1)
//
//	sch.Connect("VCC", "R1", schematic.PinName("1"))
//	sch.Connect("GND", "R1", schematic.PinName("2"))
//
// ConnectPins wires two pins together regardless of their current state: it
// creates a net when neither pin has one, reuses the existing net when one
// side is already wired, and merges two existing nets when asked to:
//
//	net, err := sch.ConnectPins(
//		schematic.ComponentName("R1"), schematic.PinName("2"),
//		schematic.ComponentName("R2"), schematic.PinName("1"),
//		schematic.ConnectPinsOptions{NetName: "VOUT"})
//
// Once wiring is complete the schematic can be frozen, after which all
// structural mutation is rejected while reads keep working:
//
//	sch.Freeze()
//	if err := sch.Validate(); err != nil {
//		// a pin was left unconnected
//	}
//
// # Concurrency
//
// Mutation methods are not safe for concurrent use; callers must serialize
// all writes to one Schematic. Read accessors return snapshots and may be
// used concurrently once mutation has ceased.
//
// For graph projections of the netlist, see package netgraph.
package schematic
