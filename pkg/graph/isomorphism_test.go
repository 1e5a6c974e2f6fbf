package graph

import "testing"

func intEq(a, b int) bool    { return a == b }
func strEq(a, b string) bool { return a == b }

func TestIsomorphicRings(t *testing.T) {
	g1, _ := ring(5)
	g2, _ := ring(5)
	if !Isomorphic(g1, g2, intEq, strEq) {
		t.Error("equal rings not isomorphic")
	}

	g3, _ := ring(6)
	if Isomorphic(g1, g3, intEq, strEq) {
		t.Error("rings of different length reported isomorphic")
	}
}

func TestIsomorphicRespectsVertexPredicate(t *testing.T) {
	build := func(labels []string) *Graph[string, string] {
		g := New[string, string]()
		var prev VertexID = -1
		for _, l := range labels {
			id := g.AddVertex(l)
			if prev >= 0 {
				if err := g.AddEdge(prev, id, "s"); err != nil {
					panic(err)
				}
			}
			prev = id
		}
		return g
	}

	g1 := build([]string{"C", "C", "O"})
	g2 := build([]string{"O", "C", "C"}) // same chain read backwards
	g3 := build([]string{"C", "O", "C"}) // oxygen in the middle

	if !Isomorphic(g1, g2, strEq, strEq) {
		t.Error("reversed chain not isomorphic")
	}
	if Isomorphic(g1, g3, strEq, strEq) {
		t.Error("structurally different chains reported isomorphic")
	}
}

func TestIsomorphicRespectsEdgePredicate(t *testing.T) {
	build := func(orders []string) *Graph[string, string] {
		g := New[string, string]()
		a := g.AddVertex("C")
		b := g.AddVertex("C")
		c := g.AddVertex("C")
		if err := g.AddEdge(a, b, orders[0]); err != nil {
			panic(err)
		}
		if err := g.AddEdge(b, c, orders[1]); err != nil {
			panic(err)
		}
		return g
	}

	single := build([]string{"single", "single"})
	mixed := build([]string{"single", "double"})
	mixedRev := build([]string{"double", "single"})

	if Isomorphic(single, mixed, strEq, strEq) {
		t.Error("edge payload mismatch ignored")
	}
	if !Isomorphic(mixed, mixedRev, strEq, strEq) {
		t.Error("mirror-image bond pattern not matched")
	}
}

func TestIsomorphicEmptyAndSingle(t *testing.T) {
	e1 := New[int, string]()
	e2 := New[int, string]()
	if !Isomorphic(e1, e2, intEq, strEq) {
		t.Error("empty graphs not isomorphic")
	}

	s1 := New[int, string]()
	s1.AddVertex(7)
	s2 := New[int, string]()
	s2.AddVertex(7)
	s3 := New[int, string]()
	s3.AddVertex(8)
	if !Isomorphic(s1, s2, intEq, strEq) {
		t.Error("equal singletons not isomorphic")
	}
	if Isomorphic(s1, s3, intEq, strEq) {
		t.Error("different singletons reported isomorphic")
	}
}

func TestIsomorphicOrderInsensitive(t *testing.T) {
	// The same branched structure built in two insertion orders.
	build := func(reversed bool) *Graph[string, string] {
		g := New[string, string]()
		labels := []string{"C", "C", "C", "O"}
		if reversed {
			labels = []string{"O", "C", "C", "C"}
		}
		ids := make([]VertexID, len(labels))
		for i, l := range labels {
			ids[i] = g.AddVertex(l)
		}
		// Central carbon bonded to the other three.
		var center VertexID
		for _, id := range ids {
			v, _ := g.Vertex(id)
			if v == "C" {
				center = id
				break
			}
		}
		// Re-pick: use the second carbon as center for the reversed build, to
		// vary IDs while keeping structure identical.
		count := 0
		for _, id := range ids {
			v, _ := g.Vertex(id)
			if v == "C" {
				count++
				if count == 2 {
					center = id
				}
			}
		}
		for _, id := range ids {
			if id != center {
				if err := g.AddEdge(center, id, "single"); err != nil {
					panic(err)
				}
			}
		}
		return g
	}

	if !Isomorphic(build(false), build(true), strEq, strEq) {
		t.Error("insertion order changed isomorphism result")
	}
}
