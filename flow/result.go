package flow

import (
	"fmt"

	"github.com/katalvlaran/pennant/core"
)

// Result is the outcome of a maximum-flow computation.
//
// Besides the flow value it keeps the final residual network, so callers can
// inspect per-edge flow (by core edge ID) and read the minimum s–t cut: the
// set of vertices still reachable from the source.
type Result struct {
	// MaxFlow is the total flow value from source to sink.
	MaxFlow int64

	// Augmentations counts augmenting paths (or blocking-flow pushes for Dinic).
	Augmentations int

	// Algorithm is the strategy that produced this result.
	Algorithm Algorithm

	res   *residual
	reach []bool
}

func newResult(alg Algorithm, r *residual, maxFlow int64, augmentations int) *Result {
	return &Result{
		MaxFlow:       maxFlow,
		Augmentations: augmentations,
		Algorithm:     alg,
		res:           r,
		reach:         r.reachable(),
	}
}

func (res *Result) arcOf(edgeID string) (int, error) {
	a, ok := res.res.edgeArc[edgeID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrEdgeNotFound, edgeID)
	}

	return a, nil
}

// Flow returns the flow carried by edge edgeID. For undirected edges the
// value is the net flow From→To and may be negative.
func (res *Result) Flow(edgeID string) (int64, error) {
	a, err := res.arcOf(edgeID)
	if err != nil {
		return 0, err
	}

	return res.res.arcs[a].flow, nil
}

// Capacity returns the capacity of edge edgeID as it was in the input graph.
func (res *Result) Capacity(edgeID string) (int64, error) {
	a, err := res.arcOf(edgeID)
	if err != nil {
		return 0, err
	}

	return res.res.arcs[a].cap, nil
}

// Saturated reports whether edge edgeID has no residual capacity left in
// its forward direction. Self-loops are never saturated.
func (res *Result) Saturated(edgeID string) (bool, error) {
	a, err := res.arcOf(edgeID)
	if err != nil {
		return false, err
	}
	c := res.res.arcs[a]
	if c.from == c.to {
		return false, nil
	}

	return res.res.remaining(a) == 0, nil
}

// InCut reports whether vertex id is reachable from the source in the final
// residual network, i.e. lies on the source side of the minimum cut.
// Unknown vertices report false.
func (res *Result) InCut(id string) bool {
	i, ok := res.res.index[id]

	return ok && res.reach[i]
}

// SourceSide returns the source side of the minimum cut in vertex order.
func (res *Result) SourceSide() []string {
	var out []string
	for i, id := range res.res.ids {
		if res.reach[i] {
			out = append(out, id)
		}
	}

	return out
}

// Residual returns the residual graph: for every ordered pair (u, v) with
// positive remaining capacity, one edge u→v whose weight is the total
// remaining capacity across parallel arcs (saturating at Unbounded).
//
// The graph is directed, weighted and keeps the solved graph's vertex order.
//
// Complexity: O(V + E).
func (res *Result) Residual() *core.Graph {
	r := res.res
	out := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range r.ids {
		_ = out.AddVertex(id)
	}
	for u := range r.ids {
		totals := make(map[int]int64)
		var order []int
		for _, a := range r.adj[u] {
			rem := r.remaining(a)
			if rem <= 0 {
				continue
			}
			v := r.arcs[a].to
			prev, seen := totals[v]
			if !seen {
				order = append(order, v)
			}
			if prev > Unbounded-rem {
				totals[v] = Unbounded
			} else {
				totals[v] = prev + rem
			}
		}
		for _, v := range order {
			// endpoints exist and (u, v) is unique here, so AddEdge cannot fail
			_, _ = out.AddEdge(r.ids[u], r.ids[v], totals[v])
		}
	}

	return out
}
