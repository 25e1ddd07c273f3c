package flow_test

import (
	"github.com/katalvlaran/pennant/core"
)

// clrsNetwork builds the textbook six-vertex network:
//
//	s→v1(16) s→v2(13) v1→v3(12) v2→v1(4) v2→v4(14)
//	v3→v2(9) v3→t(20) v4→v3(7) v4→t(4)
//
// Max flow 23, minimum cut {s, v1, v2, v4}.
func clrsNetwork() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range []string{"s", "v1", "v2", "v3", "v4", "t"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("s", "v1", 16)
	_, _ = g.AddEdge("s", "v2", 13)
	_, _ = g.AddEdge("v1", "v3", 12)
	_, _ = g.AddEdge("v2", "v1", 4)
	_, _ = g.AddEdge("v2", "v4", 14)
	_, _ = g.AddEdge("v3", "v2", 9)
	_, _ = g.AddEdge("v3", "t", 20)
	_, _ = g.AddEdge("v4", "v3", 7)
	_, _ = g.AddEdge("v4", "t", 4)

	return g
}
