package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pennant/core"
)

// Solve dispatches to the algorithm selected by alg.
func Solve(
	ctx context.Context,
	alg Algorithm,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (*Result, error) {
	switch alg {
	case AlgorithmEdmondsKarp:
		return EdmondsKarp(ctx, g, source, sink, opts)
	case AlgorithmFordFulkerson:
		return FordFulkerson(ctx, g, source, sink, opts)
	case AlgorithmDinic:
		return Dinic(ctx, g, source, sink, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}
