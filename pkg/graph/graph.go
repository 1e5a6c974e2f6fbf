package graph

import (
	"errors"
	"slices"
)

var (
	// ErrVertexNotFound is returned when an operation references a VertexID
	// that does not exist or has been removed.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound is returned when an operation references an edge that
	// does not exist between the given vertices.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same vertex. Self-loops have no meaning for the payloads this container
	// is built for.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// VertexID is an opaque index into a graph's vertex arena.
//
// IDs are stable across vertex and edge mutations but are invalidated by
// [Graph.Sort], which compacts and reorders the arena.
type VertexID int

// vertexRecord is one arena slot. Removed vertices leave a tombstone so that
// the IDs of the remaining vertices stay valid.
type vertexRecord[V, E any] struct {
	payload V
	adj     map[VertexID]E
	live    bool
}

// Graph is an undirected graph with vertex payloads V and edge payloads E.
//
// The zero value is not usable; create instances with [New].
type Graph[V, E any] struct {
	arena []vertexRecord[V, E]
	order int // live vertex count
	size  int // edge count (each undirected edge counted once)
}

// New creates an empty graph.
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{}
}

// Order returns the number of vertices.
func (g *Graph[V, E]) Order() int { return g.order }

// Size returns the number of undirected edges.
func (g *Graph[V, E]) Size() int { return g.size }

// AddVertex appends a vertex to the arena and returns its ID.
// Vertices keep their insertion order until [Graph.Sort] is called.
func (g *Graph[V, E]) AddVertex(v V) VertexID {
	g.arena = append(g.arena, vertexRecord[V, E]{
		payload: v,
		adj:     make(map[VertexID]E),
		live:    true,
	})
	g.order++
	return VertexID(len(g.arena) - 1)
}

// RemoveVertex removes a vertex and every edge incident to it in one
// operation, leaving no dangling endpoints.
func (g *Graph[V, E]) RemoveVertex(id VertexID) error {
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}
	rec := &g.arena[id]
	for nb := range rec.adj {
		delete(g.arena[nb].adj, id)
		g.size--
	}
	var zero V
	rec.payload = zero
	rec.adj = nil
	rec.live = false
	g.order--
	return nil
}

// HasVertex reports whether id refers to a live vertex.
func (g *Graph[V, E]) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.arena) && g.arena[id].live
}

// Vertex returns the payload stored at id.
func (g *Graph[V, E]) Vertex(id VertexID) (V, error) {
	if !g.HasVertex(id) {
		var zero V
		return zero, ErrVertexNotFound
	}
	return g.arena[id].payload, nil
}

// SetVertex replaces the payload stored at id.
func (g *Graph[V, E]) SetVertex(id VertexID, v V) error {
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}
	g.arena[id].payload = v
	return nil
}

// VertexIDs returns the IDs of all live vertices in arena order.
func (g *Graph[V, E]) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, g.order)
	for i := range g.arena {
		if g.arena[i].live {
			ids = append(ids, VertexID(i))
		}
	}
	return ids
}

// AddEdge stores an edge between a and b. The payload is stored under both
// (a,b) and (b,a); if an edge already exists, its payload is replaced on both
// sides so the symmetric pair stays value-equal.
func (g *Graph[V, E]) AddEdge(a, b VertexID, e E) error {
	if a == b {
		return ErrSelfLoop
	}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	if _, exists := g.arena[a].adj[b]; !exists {
		g.size++
	}
	g.arena[a].adj[b] = e
	g.arena[b].adj[a] = e
	return nil
}

// RemoveEdge deletes the edge between a and b from both adjacency sets.
func (g *Graph[V, E]) RemoveEdge(a, b VertexID) error {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return ErrVertexNotFound
	}
	if _, exists := g.arena[a].adj[b]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.arena[a].adj, b)
	delete(g.arena[b].adj, a)
	g.size--
	return nil
}

// HasEdge reports whether an edge between a and b exists.
func (g *Graph[V, E]) HasEdge(a, b VertexID) bool {
	if !g.HasVertex(a) {
		return false
	}
	_, exists := g.arena[a].adj[b]
	return exists
}

// Edge returns the payload of the edge between a and b.
func (g *Graph[V, E]) Edge(a, b VertexID) (E, error) {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		var zero E
		return zero, ErrVertexNotFound
	}
	e, exists := g.arena[a].adj[b]
	if !exists {
		var zero E
		return zero, ErrEdgeNotFound
	}
	return e, nil
}

// Neighbors returns the IDs adjacent to id in ascending order.
// The ascending order makes traversals deterministic.
func (g *Graph[V, E]) Neighbors(id VertexID) ([]VertexID, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	nbs := make([]VertexID, 0, len(g.arena[id].adj))
	for nb := range g.arena[id].adj {
		nbs = append(nbs, nb)
	}
	slices.Sort(nbs)
	return nbs, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph[V, E]) Degree(id VertexID) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	return len(g.arena[id].adj), nil
}

// EachEdge calls fn once per undirected edge, with a < b.
// Iteration order is deterministic (ascending by endpoint IDs).
func (g *Graph[V, E]) EachEdge(fn func(a, b VertexID, e E)) {
	for _, a := range g.VertexIDs() {
		nbs, _ := g.Neighbors(a)
		for _, b := range nbs {
			if a < b {
				fn(a, b, g.arena[a].adj[b])
			}
		}
	}
}

// Clone copies the graph structure. When copyV and copyE are nil the copy is
// shallow: it shares payloads with the receiver, so mutating a payload through
// one graph is visible through the other (documented sharing, not an
// accident). Supplying clone functions produces a deep copy with fully
// independent payloads.
//
// The clone's arena is compacted: tombstones are dropped and IDs are
// renumbered in arena order.
func (g *Graph[V, E]) Clone(copyV func(V) V, copyE func(E) E) *Graph[V, E] {
	out := New[V, E]()
	remap := make(map[VertexID]VertexID, g.order)
	for _, id := range g.VertexIDs() {
		v := g.arena[id].payload
		if copyV != nil {
			v = copyV(v)
		}
		remap[id] = out.AddVertex(v)
	}
	g.EachEdge(func(a, b VertexID, e E) {
		if copyE != nil {
			e = copyE(e)
		}
		_ = out.AddEdge(remap[a], remap[b], e)
	})
	return out
}
