package graph

// Isomorphic reports whether a and b are isomorphic under the supplied
// equivalence predicates. A mapping is accepted only if every mapped vertex
// pair satisfies vertexEq, every edge maps onto an edge satisfying edgeEq,
// and non-edges map onto non-edges.
//
// Matching is a backtracking search seeded with degree and connectivity-value
// compatibility, which prunes most of the candidate space for the sparse
// graphs this package is used for. Worst case remains exponential, as for any
// exact isomorphism test.
func Isomorphic[V, E any](a, b *Graph[V, E], vertexEq func(V, V) bool, edgeEq func(E, E) bool) bool {
	if a.Order() != b.Order() || a.Size() != b.Size() {
		return false
	}
	if a.Order() == 0 {
		return true
	}

	aIDs := a.VertexIDs()
	bIDs := b.VertexIDs()
	aCV := a.connectivities()
	bCV := b.connectivities()

	// candidates[i] lists the b-vertices structurally compatible with aIDs[i].
	candidates := make([][]VertexID, len(aIDs))
	for i, av := range aIDs {
		for _, bv := range bIDs {
			if aCV[av] != bCV[bv] {
				continue
			}
			if !vertexEq(a.arena[av].payload, b.arena[bv].payload) {
				continue
			}
			candidates[i] = append(candidates[i], bv)
		}
		if len(candidates[i]) == 0 {
			return false
		}
	}

	mapping := make(map[VertexID]VertexID, len(aIDs))
	used := make(map[VertexID]bool, len(bIDs))

	var match func(i int) bool
	match = func(i int) bool {
		if i == len(aIDs) {
			return true
		}
		av := aIDs[i]
		for _, bv := range candidates[i] {
			if used[bv] {
				continue
			}
			if !consistent(a, b, av, bv, mapping, edgeEq) {
				continue
			}
			mapping[av] = bv
			used[bv] = true
			if match(i + 1) {
				return true
			}
			delete(mapping, av)
			delete(used, bv)
		}
		return false
	}
	return match(0)
}

// consistent checks av→bv against the partial mapping: every already-mapped
// neighbor relation must be mirrored, with equivalent edge payloads.
func consistent[V, E any](a, b *Graph[V, E], av, bv VertexID, mapping map[VertexID]VertexID, edgeEq func(E, E) bool) bool {
	for mappedA, mappedB := range mapping {
		ae, aHas := a.arena[av].adj[mappedA]
		be, bHas := b.arena[bv].adj[mappedB]
		if aHas != bHas {
			return false
		}
		if aHas && !edgeEq(ae, be) {
			return false
		}
	}
	return true
}
