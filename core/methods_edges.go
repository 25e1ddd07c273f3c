// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/Neighbors.
// Determinism:
//   - Edges() and Neighbors() return edges in creation order.
//   - Edge IDs are monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate the ID, store the edge, append to adjacency
//     (both endpoints for undirected graphs).
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from] = append(g.adjacency[from], eid)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges match in both directions.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// hasEdgeLocked expects muEdgeAdj to be held.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, eid := range g.adjacency[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// Edges returns all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// Neighbors returns the edges incident from id in creation order.
// For undirected graphs this includes edges where id is the To endpoint.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}

	return out, nil
}
