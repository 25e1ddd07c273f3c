// Package core defines the Graph, Vertex and Edge types that every network in
// pennant is built from, with thread-safe primitives for building and querying.
//
// A Graph keeps two locks: muVert for the vertex catalog and muEdgeAdj for the
// edge catalog and adjacency. Enumeration is deterministic: Vertices() returns
// IDs in insertion order and Edges() returns edges in creation order, so two
// networks built by the same sequence of calls are indistinguishable.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a connection between two vertices.
//
// For flow networks Weight is the edge capacity.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge.
	Weight int64

	// Directed is the graph default at creation time.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices and vertexOrder; muEdgeAdj protects edges,
// edgeOrder and adjacency. Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	// Configuration flags
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID  uint64
	vertices    map[string]*Vertex
	vertexOrder []string
	edges       map[string]*Edge
	edgeOrder   []string

	// adjacency[from] = IDs of edges leaving from, in creation order.
	// Undirected edges are listed under both endpoints.
	adjacency map[string][]string
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected, unweighted, without loops or multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
