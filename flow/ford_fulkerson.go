package flow

import (
	"context"

	"github.com/katalvlaran/pennant/core"
)

// FordFulkerson computes the maximum flow from `source` to `sink` in `g`
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Build the residual network, validating source, sink and capacities (O(V + E)).
//  3. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iteratively DFS to find any path s→t with positive capacity (O(E)).
//     c. If none found, break.
//     d. Augment along the path by its bottleneck.
//     e. If opts.Verbose, log path and delta.
//  4. Read the minimum cut from the final residual network.
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow (sum of all augmentations).
//	Memory: O(V + E) for the residual network and DFS stack.
//
// Suitable for small integral networks; for stronger guarantees,
// prefer Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (*Result, error) {
	o := normalize(opts)

	r, err := buildResidual(ctx, g, source, sink)
	if err != nil {
		return nil, err
	}

	var maxFlow int64
	augmentations := 0
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		path := r.dfsAugmentingPath()
		if len(path) == 0 {
			break
		}
		delta := r.bottleneck(path)
		if delta == Unbounded {
			return nil, ErrUnboundedFlow
		}
		if o.Verbose {
			o.Logger.Debug().
				Str("algorithm", AlgorithmFordFulkerson.String()).
				Strs("path", r.pathVertices(path)).
				Int64("flow", delta).
				Msg("augmenting path")
		}

		r.augment(path, delta)
		maxFlow += delta
		augmentations++
	}

	return newResult(AlgorithmFordFulkerson, r, maxFlow, augmentations), nil
}

// dfsAugmentingPath runs an iterative DFS from the source and returns the
// arcs of the first source→sink path found, or nil.
func (r *residual) dfsAugmentingPath() []int {
	parent := make([]int, len(r.ids))
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, len(r.ids))
	visited[r.source] = true

	stack := []int{r.source}
	for len(stack) > 0 {
		// pop last entry (LIFO)
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if visited[v] || r.remaining(a) <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = a
			if v == r.sink {
				return r.pathTo(parent)
			}
			stack = append(stack, v)
		}
	}

	return nil
}
