// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestIslandsGroupsTouchingDynamicBodies(t *testing.T) {
	w := NewWorld()
	aT := lin.NewT().SetI()
	bT := lin.NewT().SetI()
	bT.Loc.X = 1.9 // touching a.
	cT := lin.NewT().SetI()
	cT.Loc.X = 100 // far away, its own island.

	a, _ := NewBoxBody(1, 1, 1, 1, aT)
	b, _ := NewBoxBody(1, 1, 1, 1, bT)
	c, _ := NewBoxBody(1, 1, 1, 1, cT)
	refA, refB, refC := w.AddBody(a), w.AddBody(b), w.AddBody(c)

	w.Step(1.0 / 60.0)
	islands := w.Islands()

	find := func(ref BodyRef) int {
		for i, members := range islands {
			for _, m := range members {
				if m == ref {
					return i
				}
			}
		}
		return -1
	}

	ia, ib, ic := find(refA), find(refB), find(refC)
	if ia < 0 || ib < 0 || ic < 0 {
		t.Fatalf("expected every dynamic body to appear in some island")
	}
	if ia != ib {
		t.Fatalf("touching bodies a and b should share an island")
	}
	if ia == ic {
		t.Fatalf("a distant body should not share an island with a and b")
	}
}

func TestIslandsExcludesStaticBodies(t *testing.T) {
	w := NewWorld()
	floor, _ := NewBoxBody(10, 1, 10, 0, lin.NewT().SetI())
	w.AddBody(floor)

	boxT := lin.NewT().SetI()
	boxT.Loc.Y = 1.9
	box, _ := NewBoxBody(1, 1, 1, 1, boxT)
	ref := w.AddBody(box)

	w.Step(1.0 / 60.0)
	islands := w.Islands()

	for _, members := range islands {
		for _, m := range members {
			if m == floor.Ref() {
				t.Fatalf("a static body should never appear in an island")
			}
		}
	}
	found := false
	for _, members := range islands {
		for _, m := range members {
			if m == ref {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("the dynamic body should appear in exactly one island even resting alone on a static floor")
	}
}
