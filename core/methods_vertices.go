// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, register the vertex and remember its position.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap its adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}
	g.vertexOrder = append(g.vertexOrder, id)

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}
