// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// Islands partitions the dynamic bodies of a World into connected groups
// via union-find over the current contact pairs: two dynamic bodies are in
// the same island when they are directly or transitively touching. Static
// bodies never merge islands (a dynamic body resting on the ground doesn't
// pull unrelated bodies resting on the same ground into one island).
//
// This is a read-only diagnostic: step solves every contact every frame
// regardless of island membership. It does not gate or skip solving.
func (w *World) Islands() [][]BodyRef {
	parent := map[BodyRef]BodyRef{}
	for ref, b := range w.bodies {
		if b.kind == Dynamic {
			parent[ref] = ref
		}
	}

	var find func(x BodyRef) BodyRef
	find = func(x BodyRef) BodyRef {
		if parent[x] == x {
			return x
		}
		parent[x] = find(parent[x])
		return parent[x]
	}
	union := func(x, y BodyRef) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}

	for _, c := range w.lastContacts {
		bodyA, bodyB := w.bodies[c.A], w.bodies[c.B]
		if bodyA.kind == Dynamic && bodyB.kind == Dynamic {
			union(c.A, c.B)
		}
	}

	groups := map[BodyRef][]BodyRef{}
	for ref := range parent {
		root := find(ref)
		groups[root] = append(groups[root], ref)
	}
	islands := make([][]BodyRef, 0, len(groups))
	for _, members := range groups {
		islands = append(islands, members)
	}
	return islands
}
