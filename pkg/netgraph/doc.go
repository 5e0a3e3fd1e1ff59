// Package netgraph derives graph projections from a netlist without
// re-deriving connectivity from scratch.
//
// All entry points are pure, read-only functions over a sequence of nets
// (typically Schematic.Nets()); they never mutate the nets or components
// they read, and a fixed input yields byte-for-byte identical output.
//
// Three projections are provided:
//
//   - Incidences / IterIncidences: the star expansion, a flat list of
//     (net, component, pin index) triples.
//   - NewBipartite: the net-component incidence multigraph, one edge per
//     attached pin.
//   - NewNetGraph: the net-projected multigraph, where each component
//     bridging k distinct nets contributes an edge per unordered net pair.
//
// The multigraph projections are backed by gonum's graph/multi containers,
// so they compose with gonum's graph algorithms and encoders; MarshalDOT
// renders either projection in Graphviz DOT form, and IsPlanar runs a
// left-right planarity test over any undirected gonum graph.
package netgraph
