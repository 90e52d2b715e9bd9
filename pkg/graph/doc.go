// Package graph owns the undirected game graph: its vertices, its edges and
// the two mutations the game allows on it.
//
// # Overview
//
// A [Graph] is built once from initial data with [New] (usually through a
// [Level]) and then only shrinks. When a closed chain of edges is removed,
// [Graph.RemoveEdges] drops those edges and [Graph.PruneIsolatedVertices]
// drops the vertices that no longer have any incident edge:
//
//	g, _ := graph.DefaultLevel().Build()
//	removed := g.RemoveEdges(chain)
//	pruned := g.PruneIsolatedVertices(keep)
//
// # Edges
//
// An [Edge] is an unordered pair of distinct vertices. [NewEdge] returns the
// canonical form (A < B), so canonical edges compare with == and work as map
// keys. [Edge.Equal] compares edges in either orientation. Multi-edges are
// not modeled: [New] collapses duplicates.
//
// # Levels
//
// Starting graphs are described by [Level] values, read from TOML or JSON
// files with [ReadLevelFile], or taken from [DefaultLevel]. Level files are
// input only.
//
// # Concurrency
//
// Graph is not safe for concurrent use. The game runs every operation on a
// single goroutine.
package graph
