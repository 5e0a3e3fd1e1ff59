package netgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// IsPlanar reports whether g admits an embedding in the plane with no edge
// crossings, using the left-right planarity test (Brandes' formulation of
// the de Fraysseix-Rosenstiehl criterion).
//
// Parallel lines and self-loops never change planarity, so g is first
// reduced to its simple underlying graph. Disconnected graphs are handled;
// the test runs once per DFS root.
func IsPlanar(g graph.Undirected) bool {
	p := newLRPlanarity(g)
	return p.run()
}

// lrEdge is a directed half-edge between node slots. The zero value is a
// valid edge, so absence is always the explicit noEdge sentinel.
type lrEdge struct{ u, v int }

var noEdge = lrEdge{-1, -1}

// lrInterval is a maximal set of return edges sharing the same side,
// bounded by its lowest and highest return edge.
type lrInterval struct{ low, high lrEdge }

func (i lrInterval) empty() bool { return i.low == noEdge && i.high == noEdge }

var emptyInterval = lrInterval{low: noEdge, high: noEdge}

// conflictPair couples the intervals that must embed on opposite sides.
type conflictPair struct{ l, r lrInterval }

func (c *conflictPair) swap() { c.l, c.r = c.r, c.l }

type lrPlanarity struct {
	adj [][]int // simple adjacency by node slot
	m   int     // simple edge count

	height      []int
	parentEdge  []lrEdge
	roots       []int
	oriented    map[lrEdge]struct{}
	orientedAdj [][]lrEdge

	lowpt    map[lrEdge]int
	lowpt2   map[lrEdge]int
	nesting  map[lrEdge]int
	lowptEdge map[lrEdge]lrEdge
	ref       map[lrEdge]lrEdge

	stack       []*conflictPair
	stackBottom map[lrEdge]int
}

func newLRPlanarity(g graph.Undirected) *lrPlanarity {
	slot := make(map[int64]int)
	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		slot[id] = len(slot)
	}

	n := len(slot)
	p := &lrPlanarity{
		adj:         make([][]int, n),
		height:      make([]int, n),
		parentEdge:  make([]lrEdge, n),
		oriented:    make(map[lrEdge]struct{}),
		orientedAdj: make([][]lrEdge, n),
		lowpt:       make(map[lrEdge]int),
		lowpt2:      make(map[lrEdge]int),
		nesting:     make(map[lrEdge]int),
		lowptEdge:   make(map[lrEdge]lrEdge),
		ref:         make(map[lrEdge]lrEdge),
		stackBottom: make(map[lrEdge]int),
	}
	for i := range p.height {
		p.height[i] = -1
		p.parentEdge[i] = noEdge
	}

	seen := make(map[[2]int]struct{})
	nodes = g.Nodes()
	for nodes.Next() {
		u := slot[nodes.Node().ID()]
		to := g.From(nodes.Node().ID())
		for to.Next() {
			v := slot[to.Node().ID()]
			if u == v {
				continue // self-loop
			}
			key := [2]int{min(u, v), max(u, v)}
			if _, ok := seen[key]; ok {
				continue // parallel edge
			}
			seen[key] = struct{}{}
			p.adj[u] = append(p.adj[u], v)
			p.adj[v] = append(p.adj[v], u)
			p.m++
		}
	}
	return p
}

func (p *lrPlanarity) run() bool {
	n := len(p.adj)
	if n < 5 {
		return true
	}
	if p.m > 3*n-6 {
		return false // Euler bound
	}

	// Phase 1: orient the graph into a DFS forest and compute low points
	// and nesting depths.
	for v := range p.adj {
		if p.height[v] == -1 {
			p.height[v] = 0
			p.roots = append(p.roots, v)
			p.dfsOrient(v)
		}
	}
	for v := range p.orientedAdj {
		sort.SliceStable(p.orientedAdj[v], func(i, j int) bool {
			return p.nesting[p.orientedAdj[v][i]] < p.nesting[p.orientedAdj[v][j]]
		})
	}

	// Phase 2: test for a consistent left-right partition of return edges.
	for _, root := range p.roots {
		if !p.dfsTest(root) {
			return false
		}
	}
	return true
}

func (p *lrPlanarity) dfsOrient(v int) {
	e := p.parentEdge[v]
	for _, w := range p.adj[v] {
		vw := lrEdge{v, w}
		if _, ok := p.oriented[vw]; ok {
			continue
		}
		if _, ok := p.oriented[lrEdge{w, v}]; ok {
			continue
		}
		p.oriented[vw] = struct{}{}
		p.orientedAdj[v] = append(p.orientedAdj[v], vw)

		p.lowpt[vw] = p.height[v]
		p.lowpt2[vw] = p.height[v]
		if p.height[w] == -1 { // tree edge
			p.parentEdge[w] = vw
			p.height[w] = p.height[v] + 1
			p.dfsOrient(w)
		} else { // back edge
			p.lowpt[vw] = p.height[w]
		}

		p.nesting[vw] = 2 * p.lowpt[vw]
		if p.lowpt2[vw] < p.height[v] {
			p.nesting[vw]++ // chordal: nest inside
		}

		if e != noEdge {
			switch {
			case p.lowpt[vw] < p.lowpt[e]:
				p.lowpt2[e] = min(p.lowpt[e], p.lowpt2[vw])
				p.lowpt[e] = p.lowpt[vw]
			case p.lowpt[vw] > p.lowpt[e]:
				p.lowpt2[e] = min(p.lowpt2[e], p.lowpt[vw])
			default:
				p.lowpt2[e] = min(p.lowpt2[e], p.lowpt2[vw])
			}
		}
	}
}

func (p *lrPlanarity) dfsTest(v int) bool {
	e := p.parentEdge[v]
	for i, ei := range p.orientedAdj[v] {
		p.stackBottom[ei] = len(p.stack)
		w := ei.v
		if p.parentEdge[w] == ei { // tree edge
			if !p.dfsTest(w) {
				return false
			}
		} else { // back edge
			p.lowptEdge[ei] = ei
			p.stack = append(p.stack, &conflictPair{l: emptyInterval, r: lrInterval{low: ei, high: ei}})
		}
		if p.lowpt[ei] < p.height[v] { // ei has a return edge
			if i == 0 {
				p.lowptEdge[e] = p.lowptEdge[ei]
			} else if !p.addConstraints(ei, e) {
				return false
			}
		}
	}
	if e != noEdge {
		p.removeBackEdges(e)
	}
	return true
}

func (p *lrPlanarity) addConstraints(ei, e lrEdge) bool {
	merged := &conflictPair{l: emptyInterval, r: emptyInterval}

	// Merge the return edges of ei into the right interval.
	for {
		q := p.pop()
		if !q.l.empty() {
			q.swap()
		}
		if !q.l.empty() {
			return false // interval on both sides: not planar
		}
		if p.lowpt[q.r.low] > p.lowpt[e] {
			if merged.r.empty() {
				merged.r.high = q.r.high
			} else {
				p.ref[merged.r.low] = q.r.high
			}
			merged.r.low = q.r.low
		} else {
			p.ref[q.r.low] = p.lowptEdge[e]
		}
		if len(p.stack) == p.stackBottom[ei] {
			break
		}
	}

	// Merge the conflicting return edges of the earlier siblings into the
	// left interval.
	for len(p.stack) > 0 && (p.conflicting(p.top().l, ei) || p.conflicting(p.top().r, ei)) {
		q := p.pop()
		if p.conflicting(q.r, ei) {
			q.swap()
		}
		if p.conflicting(q.r, ei) {
			return false // conflicts on both sides: not planar
		}
		p.ref[merged.r.low] = q.r.high
		if q.r.low != noEdge {
			merged.r.low = q.r.low
		}
		if merged.l.empty() {
			merged.l.high = q.l.high
		} else {
			p.ref[merged.l.low] = q.l.high
		}
		merged.l.low = q.l.low
	}

	if !(merged.l.empty() && merged.r.empty()) {
		p.stack = append(p.stack, merged)
	}
	return true
}

// removeBackEdges trims the conflict stack of return edges that end at the
// parent of e's subtree and records e's own return-edge reference.
func (p *lrPlanarity) removeBackEdges(e lrEdge) {
	u := e.u

	// Drop whole conflict pairs returning to u.
	for len(p.stack) > 0 && p.lowest(p.top()) == p.height[u] {
		p.pop()
	}

	if len(p.stack) > 0 {
		q := p.pop()
		for q.l.high != noEdge && q.l.high.v == u {
			q.l.high = p.refOf(q.l.high)
		}
		if q.l.high == noEdge && q.l.low != noEdge { // interval just emptied
			p.ref[q.l.low] = q.r.low
			q.l.low = noEdge
		}
		for q.r.high != noEdge && q.r.high.v == u {
			q.r.high = p.refOf(q.r.high)
		}
		if q.r.high == noEdge && q.r.low != noEdge {
			p.ref[q.r.low] = q.l.low
			q.r.low = noEdge
		}
		p.stack = append(p.stack, q)
	}

	if p.lowpt[e] < p.height[u] && len(p.stack) > 0 { // e has a return edge
		top := p.top()
		hl, hr := top.l.high, top.r.high
		if hl != noEdge && (hr == noEdge || p.lowpt[hl] > p.lowpt[hr]) {
			p.ref[e] = hl
		} else {
			p.ref[e] = hr
		}
	}
}

func (p *lrPlanarity) conflicting(i lrInterval, b lrEdge) bool {
	return !i.empty() && p.lowpt[i.high] > p.lowpt[b]
}

func (p *lrPlanarity) lowest(c *conflictPair) int {
	if c.l.empty() {
		return p.lowpt[c.r.low]
	}
	if c.r.empty() {
		return p.lowpt[c.l.low]
	}
	return min(p.lowpt[c.l.low], p.lowpt[c.r.low])
}

func (p *lrPlanarity) refOf(e lrEdge) lrEdge {
	if r, ok := p.ref[e]; ok {
		return r
	}
	return noEdge
}

func (p *lrPlanarity) top() *conflictPair { return p.stack[len(p.stack)-1] }

func (p *lrPlanarity) pop() *conflictPair {
	c := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	return c
}
