package flow

import (
	"context"
	"errors"

	"github.com/katalvlaran/pennant/core"
)

// ErrUnboundedFlow is returned when the sink is reachable from the source
// through Unbounded edges only, so no finite maximum flow exists.
var ErrUnboundedFlow = errors.New("flow: source-sink path has unbounded capacity")

// arc is one direction of a residual edge. Arcs are stored in pairs:
// arcs[i^1] is the reverse of arcs[i], and flow[i] == -flow[i^1].
type arc struct {
	from, to int
	cap      int64
	flow     int64
}

// residual is the index-based residual network shared by all algorithms.
//
// Every core edge u→v becomes a forward arc (cap = weight) and a reverse arc
// (cap = 0 for directed edges, cap = weight for undirected ones). Parallel
// edges stay separate so per-edge flow can be reported exactly.
type residual struct {
	ids     []string
	index   map[string]int
	arcs    []arc
	adj     [][]int
	edgeArc map[string]int
	source  int
	sink    int
}

// buildResidual validates the endpoints and capacities of g and constructs
// its residual network.
//
// Steps:
//  1. Check ctx for early cancellation.
//  2. Validate source/sink presence and distinctness.
//  3. Index vertices in g.Vertices() order (O(V)).
//  4. For each edge in creation order (O(E)): reject negative capacity with
//     EdgeError, append the forward/reverse arc pair.
//
// Complexity: O(V + E) time and memory.
func buildResidual(ctx context.Context, g *core.Graph, source, sink string) (*residual, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	vertices := g.Vertices()
	edges := g.Edges()
	r := &residual{
		ids:     vertices,
		index:   make(map[string]int, len(vertices)),
		arcs:    make([]arc, 0, 2*len(edges)),
		adj:     make([][]int, len(vertices)),
		edgeArc: make(map[string]int, len(edges)),
	}
	for i, id := range vertices {
		r.index[id] = i
	}
	r.source = r.index[source]
	r.sink = r.index[sink]

	for _, e := range edges {
		if e.Weight < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		back := int64(0)
		if !e.Directed {
			back = e.Weight
		}
		r.edgeArc[e.ID] = len(r.arcs)
		r.addArcPair(r.index[e.From], r.index[e.To], e.Weight, back)
	}

	return r, nil
}

func (r *residual) addArcPair(u, v int, forward, backward int64) {
	r.adj[u] = append(r.adj[u], len(r.arcs))
	r.arcs = append(r.arcs, arc{from: u, to: v, cap: forward})
	r.adj[v] = append(r.adj[v], len(r.arcs))
	r.arcs = append(r.arcs, arc{from: v, to: u, cap: backward})
}

// remaining returns the residual capacity of arc a.
func (r *residual) remaining(a int) int64 {
	c := r.arcs[a]
	if c.from == c.to {
		return 0
	}
	if c.cap == Unbounded {
		return Unbounded
	}

	return c.cap - c.flow
}

// push sends d units along arc a and records the opposite on its pair.
func (r *residual) push(a int, d int64) {
	r.arcs[a].flow += d
	r.arcs[a^1].flow -= d
}

// augment pushes d units along every arc of path.
func (r *residual) augment(path []int, d int64) {
	for _, a := range path {
		r.push(a, d)
	}
}

// bottleneck returns the minimum residual capacity along path.
func (r *residual) bottleneck(path []int) int64 {
	b := Unbounded
	for _, a := range path {
		if rem := r.remaining(a); rem < b {
			b = rem
		}
	}

	return b
}

// pathVertices renders an arc path as vertex IDs for logging.
func (r *residual) pathVertices(path []int) []string {
	if len(path) == 0 {
		return nil
	}
	out := make([]string, 0, len(path)+1)
	out = append(out, r.ids[r.arcs[path[0]].from])
	for _, a := range path {
		out = append(out, r.ids[r.arcs[a].to])
	}

	return out
}

// pathTo walks parent arcs back from the sink and returns the path in
// source→sink order.
func (r *residual) pathTo(parent []int) []int {
	var rev []int
	for v := r.sink; v != r.source; v = r.arcs[parent[v]].from {
		rev = append(rev, parent[v])
	}
	path := make([]int, len(rev))
	for i, a := range rev {
		path[len(rev)-1-i] = a
	}

	return path
}

// reachable marks every vertex reachable from the source through arcs with
// positive residual capacity. After a maximum flow this is the source side
// of a minimum cut.
func (r *residual) reachable() []bool {
	seen := make([]bool, len(r.ids))
	seen[r.source] = true
	queue := []int{r.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.adj[u] {
			v := r.arcs[a].to
			if seen[v] || r.remaining(a) <= 0 {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return seen
}
