package graph

// bridges returns the set of bridge edges keyed as [2]VertexID with a < b.
// A bridge is an edge whose removal disconnects its component; an edge lies on
// a cycle exactly when it is not a bridge. Uses the low-link DFS, iterative to
// stay safe on deep chains.
func (g *Graph[V, E]) bridges() map[[2]VertexID]bool {
	disc := make(map[VertexID]int, g.order)
	low := make(map[VertexID]int, g.order)
	result := make(map[[2]VertexID]bool)
	timer := 0

	type frame struct {
		v, parent VertexID
		nbs       []VertexID
		next      int
	}

	for _, start := range g.VertexIDs() {
		if _, seen := disc[start]; seen {
			continue
		}
		nbs, _ := g.Neighbors(start)
		stack := []frame{{v: start, parent: -1, nbs: nbs}}
		disc[start], low[start] = timer, timer
		timer++

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(f.nbs) {
				nb := f.nbs[f.next]
				f.next++
				if nb == f.parent {
					continue
				}
				if d, seen := disc[nb]; seen {
					if d < low[f.v] {
						low[f.v] = d
					}
					continue
				}
				disc[nb], low[nb] = timer, timer
				timer++
				childNbs, _ := g.Neighbors(nb)
				stack = append(stack, frame{v: nb, parent: f.v, nbs: childNbs})
				continue
			}
			// Unwind: propagate low-link to the parent and classify the edge.
			stack = stack[:len(stack)-1]
			if f.parent >= 0 {
				if low[f.v] < low[f.parent] {
					low[f.parent] = low[f.v]
				}
				if low[f.v] > disc[f.parent] {
					result[edgeKey(f.parent, f.v)] = true
				}
			}
		}
	}
	return result
}

func edgeKey(a, b VertexID) [2]VertexID {
	if a > b {
		a, b = b, a
	}
	return [2]VertexID{a, b}
}

// VertexInCycle reports whether id lies on at least one cycle, i.e. whether
// any of its incident edges is not a bridge.
func (g *Graph[V, E]) VertexInCycle(id VertexID) (bool, error) {
	if !g.HasVertex(id) {
		return false, ErrVertexNotFound
	}
	if len(g.arena[id].adj) < 2 {
		return false, nil
	}
	bridges := g.bridges()
	for nb := range g.arena[id].adj {
		if !bridges[edgeKey(id, nb)] {
			return true, nil
		}
	}
	return false, nil
}

// EdgeInCycle reports whether the edge between a and b lies on a cycle.
func (g *Graph[V, E]) EdgeInCycle(a, b VertexID) (bool, error) {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return false, ErrVertexNotFound
	}
	if !g.HasEdge(a, b) {
		return false, ErrEdgeNotFound
	}
	return !g.bridges()[edgeKey(a, b)], nil
}
