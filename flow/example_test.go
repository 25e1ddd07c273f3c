package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pennant/core"
	"github.com/katalvlaran/pennant/flow"
)

////////////////////////////////////////////////////////////////////////////////
// Ford–Fulkerson Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleFordFulkerson_simple demonstrates max-flow on a single-edge network.
// Graph: s→t with capacity 5
func ExampleFordFulkerson_simple() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "t", 5)

	res, _ := flow.FordFulkerson(context.Background(), g, "s", "t", nil)
	fmt.Println(res.MaxFlow)
	// Output:
	// 5
}

////////////////////////////////////////////////////////////////////////////////
// Edmonds–Karp Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleEdmondsKarp_cut reads the minimum cut off the residual network.
// Graph:
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
//
// Expected flow 4; a stays reachable through its unused unit.
func ExampleEdmondsKarp_cut() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 3)
	_, _ = g.AddEdge("a", "t", 2)
	_, _ = g.AddEdge("s", "b", 2)
	_, _ = g.AddEdge("b", "t", 3)

	res, _ := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	fmt.Println(res.MaxFlow)
	fmt.Println(res.SourceSide())
	// Output:
	// 4
	// [s a]
}

////////////////////////////////////////////////////////////////////////////////
// Dinic Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleDinic_medium demonstrates Dinic on a network with two augmenting paths.
// Graph:
//
//	s→a(5)→t(4)
//	s→b(3)→t(6)
//
// Expected max-flow = 4 + 3 = 7
func ExampleDinic_medium() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 5)
	_, _ = g.AddEdge("a", "t", 4)
	_, _ = g.AddEdge("s", "b", 3)
	_, _ = g.AddEdge("b", "t", 6)

	res, _ := flow.Dinic(context.Background(), g, "s", "t", nil)
	fmt.Println(res.MaxFlow)
	// Output:
	// 7
}
