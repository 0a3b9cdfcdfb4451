// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestWorldStepRestsBoxOnFloor(t *testing.T) {
	w := NewWorld()
	floorT := lin.NewT().SetI()
	floorT.Loc.Y = -10
	floor, _ := NewBoxBody(50, 10, 50, 0, floorT)
	w.AddBody(floor)

	boxT := lin.NewT().SetI()
	boxT.Loc.Y = 0.45 // below resting height (1), starting 0.55 deep in the floor surface.
	box, _ := NewBoxBody(1, 1, 1, 1, boxT)
	ref := w.AddBody(box)

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}

	settled := w.Body(ref)
	if settled.Transform().Loc.Y < -1 || settled.Transform().Loc.Y > 2 {
		t.Fatalf("got resting height %g, want roughly near the floor surface (~0-1)", settled.Transform().Loc.Y)
	}
	if settled.lvel.Len() > 5 {
		t.Fatalf("got resting speed %g, want a body that has mostly settled", settled.lvel.Len())
	}
}

func TestWorldRemoveBodyDropsFromBroadphase(t *testing.T) {
	w := NewWorld()
	box, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	ref := w.AddBody(box)
	w.RemoveBody(ref)

	if w.Body(ref) != nil {
		t.Fatalf("expected a removed body to no longer be found by reference")
	}
	hits := w.OverlapBox(Abox{Sx: -1, Sy: -1, Sz: -1, Lx: 1, Ly: 1, Lz: 1})
	for _, h := range hits {
		if h == ref {
			t.Fatalf("removed body still present in broadphase query")
		}
	}
}

func TestWorldStepSkipsStaticStaticPairs(t *testing.T) {
	w := NewWorld()
	a, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())
	b, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())
	w.AddBody(a)
	w.AddBody(b)
	w.Step(1.0 / 60.0) // two overlapping statics should not panic or generate work.
}

func TestWorldRaycastFindsBodyAlongRay(t *testing.T) {
	w := NewWorld()
	boxT := lin.NewT().SetI()
	boxT.Loc.X = 10
	box, _ := NewBoxBody(1, 1, 1, 1, boxT)
	ref := w.AddBody(box)

	hits := w.Raycast(lin.V3{}, lin.V3{X: 20}, lin.V3{})
	found := false
	for _, h := range hits {
		if h == ref {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected raycast along +X to find the body at x=10")
	}
}

func TestWorldAddBodiesBulkLoadsFindableByOverlap(t *testing.T) {
	w := NewWorld()
	var refs []BodyRef
	var bodies []*Body
	for i := 0; i < 5; i++ {
		bt := lin.NewT().SetI()
		bt.Loc.X = float64(i) * 10
		b, _ := NewBoxBody(1, 1, 1, 0, bt)
		bodies = append(bodies, b)
		refs = append(refs, b.Ref())
	}
	if err := w.AddBodies(bodies); err != nil {
		t.Fatalf("AddBodies returned error: %v", err)
	}

	for i, ref := range refs {
		x := float64(i) * 10
		hits := w.OverlapBox(Abox{Sx: x - 1, Sy: -1, Sz: -1, Lx: x + 1, Ly: 1, Lz: 1})
		found := false
		for _, h := range hits {
			if h == ref {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected bulk-loaded body %d at x=%g to be found by an overlapping query", i, x)
		}
	}
}
