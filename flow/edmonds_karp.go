package flow

import (
	"context"

	"github.com/katalvlaran/pennant/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a *Result carrying the flow value, per-edge flows and the
// minimum cut, or an error on missing vertices, negative capacities,
// unbounded source–sink paths or context cancellation.
//
// Options (nil uses defaults):
//   - Logger:  destination for traces
//   - Verbose: log each augmentation at debug level
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (*Result, error) {
	o := normalize(opts)

	// 1) Build residual network (validates endpoints and capacities)
	r, err := buildResidual(ctx, g, source, sink)
	if err != nil {
		return nil, err
	}

	// 2) Main loop: find BFS augmenting paths until none remain
	var maxFlow int64
	augmentations := 0
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		path := r.bfsAugmentingPath()
		if len(path) == 0 {
			break
		}
		bottle := r.bottleneck(path)
		if bottle == Unbounded {
			return nil, ErrUnboundedFlow
		}
		if o.Verbose {
			o.Logger.Debug().
				Str("algorithm", AlgorithmEdmondsKarp.String()).
				Strs("path", r.pathVertices(path)).
				Int64("flow", bottle).
				Msg("augmenting path")
		}

		// 3) Augment along the path
		r.augment(path, bottle)
		maxFlow += bottle
		augmentations++
	}

	return newResult(AlgorithmEdmondsKarp, r, maxFlow, augmentations), nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path in the residual
// network from source→sink with positive capacity, and returns its arcs.
// Returns nil if no path exists.
func (r *residual) bfsAugmentingPath() []int {
	// parent[v] = arc used to reach v
	parent := make([]int, len(r.ids))
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, len(r.ids))
	visited[r.source] = true

	queue := []int{r.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
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
			queue = append(queue, v)
		}
	}

	return nil
}
