package digraph

// DepthFirst returns the nodes reachable from start in depth-first order:
// a node is emitted before its successors, and successors are expanded in
// the order their edges were added. Each reachable node is emitted exactly
// once, no matter how many paths lead to it.
//
// DepthFirst returns an error, if start is not in the graph.
func (g *DirectedGraph[N]) DepthFirst(start N) ([]N, error) {
	if _, ok := g.succ[start]; !ok {
		return nil, NewMissingNodeError(start)
	}
	path := make([]N, 0, len(g.order))
	visited := make(map[N]bool, len(g.order))
	stack := []N{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		path = append(path, n)
		succ := g.succ[n]
		for i := len(succ) - 1; i >= 0; i-- {
			s := succ[i]
			if _, ok := g.succ[s]; !ok {
				continue // dangling successor (see DelNode)
			}
			if !visited[s] {
				stack = append(stack, s)
			}
		}
	}
	return path, nil
}

// BreadthFirst returns the nodes reachable from start in breadth-first
// order: start first, then its successors in the order their edges were
// added, then their successors, one layer at a time. Each reachable node is
// emitted exactly once, at its first discovery.
//
// BreadthFirst returns an error, if start is not in the graph.
func (g *DirectedGraph[N]) BreadthFirst(start N) ([]N, error) {
	if _, ok := g.succ[start]; !ok {
		return nil, NewMissingNodeError(start)
	}
	path := []N{start}
	visited := map[N]bool{start: true}
	return g.expand([]N{start}, path, visited), nil
}

// BreadthFirstFrom continues a breadth-first traversal beyond the nodes of
// frontier: it returns the nodes strictly below the frontier in
// breadth-first order, treating the frontier nodes themselves as already
// visited. A node reachable from several frontier nodes is emitted once.
//
// BreadthFirstFrom returns an error, if any node of frontier is not in the
// graph.
func (g *DirectedGraph[N]) BreadthFirstFrom(frontier []N) ([]N, error) {
	visited := make(map[N]bool, len(frontier))
	for _, n := range frontier {
		if _, ok := g.succ[n]; !ok {
			return nil, NewMissingNodeError(n)
		}
		visited[n] = true
	}
	return g.expand(frontier, make([]N, 0), visited), nil
}

// expand grows path layer by layer until no new nodes are discovered.
func (g *DirectedGraph[N]) expand(frontier []N, path []N, visited map[N]bool) []N {
	for len(frontier) > 0 {
		var next []N
		for _, n := range frontier {
			for _, s := range g.succ[n] {
				if _, ok := g.succ[s]; !ok {
					continue // dangling successor (see DelNode)
				}
				if !visited[s] {
					visited[s] = true
					path = append(path, s)
					next = append(next, s)
				}
			}
		}
		frontier = next
	}
	return path
}
