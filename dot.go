package digraph

import (
	"fmt"
	"strings"

	"github.com/emicklei/dot"
)

// DotGraph adds the nodes and edges of the graph to the (dot-) graph dg and
// returns the mapping between graph nodes and dot nodes.
func (g *DirectedGraph[N]) DotGraph(dg *dot.Graph) map[N]dot.Node {

	// mapping between graph nodes and dot nodes
	nodeMapping := make(map[N]dot.Node, len(g.order))
	for _, n := range g.order {
		label := fmt.Sprint(n)
		nodeMapping[n] = dg.Node(label).Label(label)
	}

	// add edges, leaving out dangling successors
	for _, e := range g.Edges() {
		to, ok := nodeMapping[e.To]
		if !ok {
			continue
		}
		dg.Edge(nodeMapping[e.From], to)
	}
	return nodeMapping
}

// String returns a (graphviz) dot representation of the graph.
func (g *DirectedGraph[N]) String() string {

	// transform to dot graph
	dg := dot.NewGraph(dot.Directed)
	g.DotGraph(dg)

	// get the dot string
	return dg.String()
}

// Mermaid returns a (mermaid-) flowchart representation of the graph.
func (g *DirectedGraph[N]) Mermaid() string {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")

	// mapping between graph nodes and flowchart identifiers
	ids := make(map[N]string, len(g.order))
	for i, n := range g.order {
		id := fmt.Sprintf("n%d", i+1)
		ids[n] = id
		fmt.Fprintf(&sb, "    %s[\"%v\"]\n", id, n)
	}
	for _, e := range g.Edges() {
		to, ok := ids[e.To]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", ids[e.From], to)
	}
	return sb.String()
}
