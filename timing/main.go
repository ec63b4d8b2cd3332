package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hveem/digraph"
)

const (
	chainLength = 100
	rounds      = 1000
	repeats     = 3
)

func main() {
	g := fillChain(chainLength)
	for i := 0; i < repeats; i++ {
		timeDepthFirst(g, rounds)
	}
	for i := 0; i < repeats; i++ {
		timeBreadthFirst(g, rounds)
	}
}

// fillChain builds a graph whose edges form a single chain with the given
// number of edges.
func fillChain(length int) *digraph.DirectedGraph[string] {
	start := time.Now()
	g := digraph.New[string]()
	for i := 0; i < length; i++ {
		_ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1))
	}
	end := time.Now()
	fmt.Printf("%fs to add %d nodes and %d edges\n", end.Sub(start).Seconds(), g.Order(), g.Size())
	return g
}

func timeDepthFirst(g *digraph.DirectedGraph[string], rounds int) {
	start := time.Now()
	var pathLength int
	for i := 0; i < rounds; i++ {
		path, err := g.DepthFirst("0")
		if err != nil {
			panic(err)
		}
		pathLength = len(path)
	}
	end := time.Now()
	fmt.Printf("%fs for %d depth-first runs over %d nodes\n", end.Sub(start).Seconds(), rounds, pathLength)
}

func timeBreadthFirst(g *digraph.DirectedGraph[string], rounds int) {
	start := time.Now()
	var pathLength int
	for i := 0; i < rounds; i++ {
		path, err := g.BreadthFirst("0")
		if err != nil {
			panic(err)
		}
		pathLength = len(path)
	}
	end := time.Now()
	fmt.Printf("%fs for %d breadth-first runs over %d nodes\n", end.Sub(start).Seconds(), rounds, pathLength)
}
