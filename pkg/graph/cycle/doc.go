// Package cycle detects and resolves closed chains in a selection of
// undirected edges.
//
// [HasClosedChain] answers whether a selection contains a cycle, using a
// parent-excluding depth-first walk from the newest edge. [ResolveChain]
// finds which selected edges make up that cycle by leave-one-out testing:
// an edge belongs to the chain when dropping it breaks every cycle.
//
//	if cycle.HasClosedChain(selected) {
//	    chain := cycle.ResolveChain(selected)
//	    g.RemoveEdges(chain)
//	}
//
// Both functions are pure and never modify their input.
package cycle
