// Package digraph implements a simple directed graph held in memory.
//
// Nodes may be of any comparable type. The graph keeps its nodes and each
// node's successors in insertion order, so queries and traversals are
// deterministic. Removing a node leaves other nodes' successor sequences
// untouched; the entries left behind are dangling successors, which
// Neighbors reports as-is and the traversals skip (see DelNode).
package digraph

import (
	"slices"
)

// DirectedGraph implements the data structure of the graph.
type DirectedGraph[N comparable] struct {
	succ  map[N][]N
	order []N
}

// Edge is a single directed edge of the graph.
type Edge[N comparable] struct {
	From N
	To   N
}

// New creates / initializes a new DirectedGraph.
func New[N comparable]() *DirectedGraph[N] {
	return &DirectedGraph[N]{
		succ: make(map[N][]N),
	}
}

// AddNode adds the node n to the graph.
//
// AddNode returns an error, if n is already in the graph.
func (g *DirectedGraph[N]) AddNode(n N) error {
	if _, ok := g.succ[n]; ok {
		return NewDuplicateNodeError(n)
	}
	g.insert(n)
	return nil
}

// DelNode removes the node n and its successor sequence from the graph.
// Successor sequences of other nodes are not touched: entries pointing at n
// remain as dangling successors, which Neighbors reports as-is and the
// traversals skip.
//
// DelNode returns an error, if n is not in the graph.
func (g *DirectedGraph[N]) DelNode(n N) error {
	if _, ok := g.succ[n]; !ok {
		return NewMissingNodeError(n)
	}
	delete(g.succ, n)
	i := slices.Index(g.order, n)
	g.order = slices.Delete(g.order, i, i+1)
	return nil
}

// AddEdge adds an edge from the node from to the node to. Nodes not yet in
// the graph are added first. Self references are allowed.
//
// AddEdge returns an error, if the edge already exists.
func (g *DirectedGraph[N]) AddEdge(from, to N) error {
	if slices.Contains(g.succ[from], to) {
		return NewDuplicateEdgeError(from, to)
	}
	if _, ok := g.succ[from]; !ok {
		g.insert(from)
	}
	if _, ok := g.succ[to]; !ok {
		g.insert(to)
	}
	g.succ[from] = append(g.succ[from], to)
	return nil
}

// DelEdge removes the edge between from and to.
//
// DelEdge returns an error, if from is not in the graph or to is not a
// successor of from.
func (g *DirectedGraph[N]) DelEdge(from, to N) error {
	i := slices.Index(g.succ[from], to)
	if i < 0 {
		return NewMissingEdgeError(from, to)
	}
	g.succ[from] = slices.Delete(g.succ[from], i, i+1)
	return nil
}

// HasNode returns true, if the node n is in the graph.
func (g *DirectedGraph[N]) HasNode(n N) bool {
	_, ok := g.succ[n]
	return ok
}

// Adjacent returns true, if the graph contains an edge from the node from
// to the node to.
//
// Adjacent returns an error, if from or to are not in the graph.
func (g *DirectedGraph[N]) Adjacent(from, to N) (bool, error) {
	if _, ok := g.succ[from]; !ok {
		return false, NewMissingNodeError(from)
	}
	if _, ok := g.succ[to]; !ok {
		return false, NewMissingNodeError(to)
	}
	return slices.Contains(g.succ[from], to), nil
}

// Neighbors returns the successors of the node n, i.e. the destinations of
// its outgoing edges, in the order the edges were added. The returned slice
// is a copy and may be modified freely.
//
// Neighbors returns an error, if n is not in the graph.
func (g *DirectedGraph[N]) Neighbors(n N) ([]N, error) {
	succ, ok := g.succ[n]
	if !ok {
		return nil, NewMissingNodeError(n)
	}
	neighbors := make([]N, len(succ))
	copy(neighbors, succ)
	return neighbors, nil
}

// Nodes returns the nodes of the graph, in the order they were added.
func (g *DirectedGraph[N]) Nodes() []N {
	nodes := make([]N, len(g.order))
	copy(nodes, g.order)
	return nodes
}

// Edges returns the edges of the graph as (from, to) pairs. Pairs follow
// node order and, per node, the order its edges were added. Edges whose
// destination was removed (see DelNode) are reported too.
func (g *DirectedGraph[N]) Edges() []Edge[N] {
	edges := make([]Edge[N], 0, g.Size())
	for _, from := range g.order {
		for _, to := range g.succ[from] {
			edges = append(edges, Edge[N]{From: from, To: to})
		}
	}
	return edges
}

// Order returns the number of nodes in the graph.
func (g *DirectedGraph[N]) Order() int {
	return len(g.order)
}

// Size returns the number of edges in the graph.
func (g *DirectedGraph[N]) Size() int {
	size := 0
	for _, succ := range g.succ {
		size += len(succ)
	}
	return size
}

func (g *DirectedGraph[N]) insert(n N) {
	g.succ[n] = []N{}
	g.order = append(g.order, n)
}
