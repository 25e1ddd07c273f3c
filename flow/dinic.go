package flow

import (
	"context"

	"github.com/katalvlaran/pennant/core"
)

// Dinic computes the maximum flow from `source` to `sink` in `g` using
// Dinic’s algorithm (level graph + blocking flows).
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Build the residual network (O(V + E)).
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding the level graph every LevelRebuildInterval augmentations.
//  4. Read the minimum cut from the final residual network.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E) for levels, arc iterators and recursion state.
func Dinic(
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

		level := r.levels()
		if level[r.sink] < 0 {
			break
		}

		// iter[u] = next arc position in adj[u] to try
		iter := make([]int, len(r.ids))
		for {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			pushed := r.dinicPush(level, iter, r.source, Unbounded)
			if pushed == 0 {
				break
			}
			if pushed == Unbounded {
				return nil, ErrUnboundedFlow
			}
			maxFlow += pushed
			augmentations++
			if o.Verbose {
				o.Logger.Debug().
					Str("algorithm", AlgorithmDinic.String()).
					Int64("pushed", pushed).
					Int64("total", maxFlow).
					Msg("blocking flow push")
			}
			if o.LevelRebuildInterval > 0 && augmentations%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return newResult(AlgorithmDinic, r, maxFlow, augmentations), nil
}

// levels returns the BFS distance of every vertex from the source over arcs
// with positive residual capacity; unreachable vertices get -1.
func (r *residual) levels() []int {
	level := make([]int, len(r.ids))
	for i := range level {
		level[i] = -1
	}
	level[r.source] = 0
	queue := []int{r.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if level[v] < 0 && r.remaining(a) > 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

// dinicPush recursively pushes flow along the level graph, updates the
// residual network in place and returns the amount actually sent.
func (r *residual) dinicPush(level, iter []int, u int, available int64) int64 {
	if u == r.sink {
		return available
	}
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		a := r.adj[u][iter[u]]
		v := r.arcs[a].to
		if level[v] != level[u]+1 {
			continue
		}
		rem := r.remaining(a)
		if rem <= 0 {
			continue
		}
		send := available
		if rem < send {
			send = rem
		}
		pushed := r.dinicPush(level, iter, v, send)
		if pushed > 0 {
			if pushed != Unbounded {
				r.push(a, pushed)
			}
			return pushed
		}
	}

	return 0
}
