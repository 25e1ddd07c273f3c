// Package flow implements maximum-flow / minimum-cut algorithms on networks
// represented by *core.Graph. Edge weights are capacities; the constant
// Unbounded marks edges that no feasible flow can saturate.
//
// The algorithms offered are:
//
//	Ford–Fulkerson   DFS for any augmenting path           O(E · F), F = total flow
//	Edmonds–Karp     BFS for shortest augmenting paths     O(V · E²) (default)
//	Dinic            BFS level graph + DFS blocking flow   O(V² · E), O(E·√V) on unit capacities
//
// All three share one signature:
//
//	func EdmondsKarp(
//	    ctx context.Context,
//	    g *core.Graph,
//	    source, sink string,
//	    opts *FlowOptions,
//	) (*Result, error)
//
// and Solve picks one by Algorithm value.
//
// # Result
//
// A Result carries MaxFlow plus the final residual network:
//
//	res.Flow(edgeID)      flow carried by an input edge
//	res.Capacity(edgeID)  its capacity
//	res.Saturated(edgeID) forward residual is zero
//	res.InCut(vertex)     reachable from source in the residual network
//	res.SourceSide()      the whole source side of the minimum cut
//	res.Residual()        residual capacities as a *core.Graph
//
// By max-flow/min-cut duality the source side is the same for every maximum
// flow, so InCut does not depend on the algorithm chosen.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	ErrSourceIsSink   - if source == sink.
//	EdgeError         - if a negative capacity is encountered.
//	ErrUnboundedFlow  - if the sink is reachable through Unbounded edges only.
//	context.Canceled / context.DeadlineExceeded - if ctx is canceled.
package flow
