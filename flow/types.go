package flow

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// Unbounded is the capacity of an edge that can never be saturated by a
// feasible flow. It is larger than any sum of finite capacities the solver
// will see, and the solver never adds to it, so it cannot overflow.
const Unbounded int64 = math.MaxInt64

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrSourceIsSink is returned when source and sink name the same vertex.
var ErrSourceIsSink = errors.New("flow: source and sink must differ")

// ErrEdgeNotFound is returned by Result lookups for an edge ID that was not
// part of the solved graph.
var ErrEdgeNotFound = errors.New("flow: edge not found")

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Solve.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Logger: destination for augmentation traces (default: disabled).
//   - Verbose: if true, logs each augmentation at debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Logger               *zerolog.Logger
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: no logging, no forced
// level rebuilds.
func DefaultOptions() *FlowOptions {
	nop := zerolog.Nop()
	return &FlowOptions{Logger: &nop}
}

// normalize returns a copy of opts with every nil field defaulted.
func normalize(opts *FlowOptions) FlowOptions {
	out := FlowOptions{}
	if opts != nil {
		out = *opts
	}
	if out.Logger == nil {
		nop := zerolog.Nop()
		out.Logger = &nop
	}
	if out.LevelRebuildInterval < 0 {
		out.LevelRebuildInterval = 0
	}

	return out
}

// Algorithm selects an augmenting-path strategy.
type Algorithm int

const (
	// AlgorithmEdmondsKarp augments along shortest paths found by BFS.
	AlgorithmEdmondsKarp Algorithm = iota
	// AlgorithmFordFulkerson augments along any path found by DFS.
	AlgorithmFordFulkerson
	// AlgorithmDinic pushes blocking flows over BFS level graphs.
	AlgorithmDinic
)

var algorithmNames = map[Algorithm]string{
	AlgorithmEdmondsKarp:   "edmonds-karp",
	AlgorithmFordFulkerson: "ford-fulkerson",
	AlgorithmDinic:         "dinic",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name ("edmonds-karp", "ford-fulkerson",
// "dinic") to an Algorithm. The empty string selects Edmonds–Karp.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return AlgorithmEdmondsKarp, nil
	}
	for alg, n := range algorithmNames {
		if n == key {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
