// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/galvanized/impulse/math/lin"
	"github.com/google/uuid"
)

func boxAt(x, y, z float64) Abox {
	return Abox{Sx: x - 0.5, Sy: y - 0.5, Sz: z - 0.5, Lx: x + 0.5, Ly: y + 0.5, Lz: z + 0.5}
}

func TestBVHInsertAndQueryFindsOverlapping(t *testing.T) {
	tree := newBVH()
	refNear := BodyRef(uuid.New())
	refFar := BodyRef(uuid.New())
	tree.Insert(refNear, boxAt(0, 0, 0))
	tree.Insert(refFar, boxAt(100, 0, 0))

	hits := tree.Query(Abox{Sx: -1, Sy: -1, Sz: -1, Lx: 1, Ly: 1, Lz: 1}, nil)
	if len(hits) != 1 || hits[0] != refNear {
		t.Fatalf("got %v, want only the nearby body", hits)
	}
}

func TestBVHRemoveDropsFromQueries(t *testing.T) {
	tree := newBVH()
	ref := BodyRef(uuid.New())
	tree.Insert(ref, boxAt(0, 0, 0))
	tree.Remove(ref)

	hits := tree.Query(Abox{Sx: -1, Sy: -1, Sz: -1, Lx: 1, Ly: 1, Lz: 1}, nil)
	if len(hits) != 0 {
		t.Fatalf("got %v, want no hits after remove", hits)
	}
}

func TestBVHPairsFindsOverlappingLeavesOnly(t *testing.T) {
	tree := newBVH()
	a := BodyRef(uuid.New())
	b := BodyRef(uuid.New())
	c := BodyRef(uuid.New())
	tree.Insert(a, boxAt(0, 0, 0))
	tree.Insert(b, boxAt(0.4, 0, 0)) // overlaps a (boxes are 1-wide, fattened further).
	tree.Insert(c, boxAt(100, 0, 0))

	pairs := tree.Pairs()
	foundAB := false
	for _, p := range pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			foundAB = true
		}
		if p[0] == c || p[1] == c {
			t.Fatalf("got pair %v involving the far body, want no such pair", p)
		}
	}
	if !foundAB {
		t.Fatalf("got pairs %v, want a pair between the two nearby bodies", pairs)
	}
}

func TestBVHPairsDoesNotDuplicate(t *testing.T) {
	tree := newBVH()
	a := BodyRef(uuid.New())
	b := BodyRef(uuid.New())
	tree.Insert(a, boxAt(0, 0, 0))
	tree.Insert(b, boxAt(0.2, 0, 0))

	pairs := tree.Pairs()
	count := 0
	for _, p := range pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("got %d copies of the (a,b) pair, want exactly 1", count)
	}
}

func TestBVHUpdateMovesLeaf(t *testing.T) {
	tree := newBVH()
	ref := BodyRef(uuid.New())
	tree.Insert(ref, boxAt(0, 0, 0))
	tree.Update(ref, boxAt(50, 0, 0))

	hits := tree.Query(Abox{Sx: -1, Sy: -1, Sz: -1, Lx: 1, Ly: 1, Lz: 1}, nil)
	for _, h := range hits {
		if h == ref {
			t.Fatalf("expected the moved body to no longer overlap its old location")
		}
	}
	hits = tree.Query(Abox{Sx: 49, Sy: -1, Sz: -1, Lx: 51, Ly: 1, Lz: 1}, nil)
	found := false
	for _, h := range hits {
		if h == ref {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the moved body to overlap its new location")
	}
}

func TestBVHBonsaiPruneRebuildsWithoutLosingLeaves(t *testing.T) {
	tree := newBVH()
	tree.opsBudget = 4
	refs := make([]BodyRef, 10)
	for i := range refs {
		refs[i] = BodyRef(uuid.New())
		tree.Insert(refs[i], boxAt(float64(i)*2, 0, 0))
	}
	for _, ref := range refs {
		hits := tree.Query(boxAt(0, 0, 0), nil)
		_ = hits
		if _, ok := tree.nodeOf[ref]; !ok {
			t.Fatalf("body %v missing from the tree after periodic re-pruning", ref)
		}
	}
}

func TestBVHTraceHitsBoxAlongRay(t *testing.T) {
	tree := newBVH()
	ref := BodyRef(uuid.New())
	tree.Insert(ref, boxAt(10, 0, 0))

	hits := tree.Trace(lin.V3{X: -1}, lin.V3{X: 20}, lin.V3{}, nil)
	found := false
	for _, h := range hits {
		if h == ref {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a ray along +X to hit a box at x=10")
	}
}

func TestBVHTraceMissesOffAxisBox(t *testing.T) {
	tree := newBVH()
	ref := BodyRef(uuid.New())
	tree.Insert(ref, boxAt(10, 50, 0))

	hits := tree.Trace(lin.V3{X: -1}, lin.V3{X: 20}, lin.V3{}, nil)
	for _, h := range hits {
		if h == ref {
			t.Fatalf("ray along +X at y=0 should not hit a box far off the axis at y=50")
		}
	}
}
