package cycle

import "github.com/AbheetChaudhary/PolyGone/pkg/graph"

// HasClosedChain reports whether edges contain a closed chain (a cycle).
//
// The edges induce an undirected adjacency map. A depth-first traversal
// starts at the A endpoint of the last edge, skips the vertex it just came
// from, and shares one visited set across the whole walk. Reaching an
// already visited vertex through any other neighbor closes a chain.
//
// Only the component containing the last edge is explored. That is enough
// for a selection that is re-checked after every single addition: a new
// cycle can only appear through the newest edge.
//
// The traversal uses an explicit stack, so it is safe on long chains.
// HasClosedChain returns false for an empty slice.
func HasClosedChain(edges []graph.Edge) bool {
	if len(edges) == 0 {
		return false
	}
	adj := adjacency(edges)
	start := edges[len(edges)-1].A

	type frame struct {
		v, parent graph.VertexID
		root      bool
		next      int
	}

	visited := map[graph.VertexID]bool{start: true}
	stack := []frame{{v: start, root: true}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := adj[top.v]
		if top.next == len(neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := neighbors[top.next]
		top.next++

		if !top.root && n == top.parent {
			continue
		}
		if visited[n] {
			return true
		}
		visited[n] = true
		stack = append(stack, frame{v: n, parent: top.v})
	}
	return false
}

// ResolveChain returns the edges of selection that form its closed chain.
//
// Each edge is tested by leaving it out: if the remaining edges no longer
// contain a closed chain, the edge belongs to the chain. Edges whose removal
// leaves a chain intact are chords and are excluded. For a selection holding
// exactly one simple cycle the result is that cycle's edge set.
//
// The result keeps selection order. Callers should only invoke ResolveChain
// when [HasClosedChain] holds for selection; otherwise every edge is
// reported. The cost is O(n²) in the selection length.
func ResolveChain(selection []graph.Edge) []graph.Edge {
	var chain []graph.Edge
	rest := make([]graph.Edge, 0, len(selection))
	for i, e := range selection {
		rest = append(rest[:0], selection[:i]...)
		rest = append(rest, selection[i+1:]...)
		if !HasClosedChain(rest) {
			chain = append(chain, e)
		}
	}
	return chain
}

// adjacency maps every vertex to its distinct neighbors, in the order they
// were first seen. Keeping first-seen order makes traversals deterministic.
func adjacency(edges []graph.Edge) map[graph.VertexID][]graph.VertexID {
	adj := make(map[graph.VertexID][]graph.VertexID, 2*len(edges))
	seen := make(map[graph.Edge]struct{}, len(edges))
	for _, e := range edges {
		c := e.Canonical()
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	return adj
}
