package graph

import "slices"

// connectivity holds the refinement values used for canonical ordering.
// cv1 is the degree; cv2 and cv3 are successive sums of neighbor values, so
// vertices are distinguished by progressively larger neighborhoods.
type connectivity struct {
	cv1, cv2, cv3 int
}

// connectivities computes the refinement values for every live vertex.
func (g *Graph[V, E]) connectivities() map[VertexID]connectivity {
	values := make(map[VertexID]connectivity, g.order)
	for _, id := range g.VertexIDs() {
		values[id] = connectivity{cv1: len(g.arena[id].adj)}
	}
	for round := 0; round < 2; round++ {
		next := make(map[VertexID]connectivity, len(values))
		for id, cv := range values {
			sum := 0
			for nb := range g.arena[id].adj {
				if round == 0 {
					sum += values[nb].cv1
				} else {
					sum += values[nb].cv2
				}
			}
			if round == 0 {
				cv.cv2 = sum
			} else {
				cv.cv3 = sum
			}
			next[id] = cv
		}
		values = next
	}
	return values
}

// Sort reorders the arena into a canonical order: descending by connectivity
// values, with ties broken by the caller-supplied payload comparator (and by
// previous position as the final stable tiebreak). The tiebreak comparator
// follows the cmp convention: negative when a sorts before b.
//
// Sorting compacts the arena (tombstones are dropped) and renumbers every
// VertexID, so IDs held before the call are invalid afterwards. For a given
// structure the resulting order is deterministic, which makes serialized
// output reproducible.
func (g *Graph[V, E]) Sort(tiebreak func(a, b V) int) {
	values := g.connectivities()
	ids := g.VertexIDs()

	slices.SortStableFunc(ids, func(a, b VertexID) int {
		va, vb := values[a], values[b]
		switch {
		case va.cv3 != vb.cv3:
			return vb.cv3 - va.cv3
		case va.cv2 != vb.cv2:
			return vb.cv2 - va.cv2
		case va.cv1 != vb.cv1:
			return vb.cv1 - va.cv1
		}
		if tiebreak != nil {
			if c := tiebreak(g.arena[a].payload, g.arena[b].payload); c != 0 {
				return c
			}
		}
		return int(a) - int(b)
	})

	// Rebuild the arena in the new order and remap adjacency IDs.
	remap := make(map[VertexID]VertexID, len(ids))
	for newIdx, oldID := range ids {
		remap[oldID] = VertexID(newIdx)
	}
	arena := make([]vertexRecord[V, E], len(ids))
	for newIdx, oldID := range ids {
		old := g.arena[oldID]
		adj := make(map[VertexID]E, len(old.adj))
		for nb, e := range old.adj {
			adj[remap[nb]] = e
		}
		arena[newIdx] = vertexRecord[V, E]{payload: old.payload, adj: adj, live: true}
	}
	g.arena = arena
}
