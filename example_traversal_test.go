package digraph_test

import (
	"fmt"
	"strconv"

	"github.com/hveem/digraph"
)

func ExampleDirectedGraph_DepthFirst() {

	g := digraph.New[int]()
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 4)

	path, _ := g.DepthFirst(1)
	fmt.Println(path)

	// Output:
	// [1 2 4 3]
}

func ExampleDirectedGraph_BreadthFirst() {

	g := digraph.New[int]()
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(2, 4)

	path, _ := g.BreadthFirst(1)
	fmt.Println(path)

	// Output:
	// [1 2 3 4]
}

func ExampleDirectedGraph_Neighbors() {

	// a star: all edges lead away from "0"
	g := digraph.New[string]()
	_ = g.AddNode("0")
	for i := 1; i < 10; i++ {
		dstKey := strconv.Itoa(i)
		_ = g.AddEdge("0", dstKey)
	}

	// get order and size
	fmt.Printf("order: %d\nsize: %d\n", g.Order(), g.Size())

	fmt.Printf("successors:\n")
	succ, _ := g.Neighbors("0")
	for _, key := range succ {
		fmt.Printf("- %s\n", key)
	}

	// Output:
	// order: 10
	// size: 9
	// successors:
	// - 1
	// - 2
	// - 3
	// - 4
	// - 5
	// - 6
	// - 7
	// - 8
	// - 9
}
