// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestIsCollidingReportsSimplexOnOverlap(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	ta := lin.NewT().SetI()
	tb := lin.NewT().SetI()
	tb.Loc.X = 1
	a := NewHull(def, ta, lin.V3{X: 1, Y: 1, Z: 1})
	b := NewHull(def, tb, lin.V3{X: 1, Y: 1, Z: 1})

	var simplex gjkSimplex
	if !isColliding(a, b, &simplex) {
		t.Fatalf("expected overlapping boxes to collide")
	}
	if simplex.num != 4 {
		t.Fatalf("got simplex.num=%d, want a terminating tetrahedron (4)", simplex.num)
	}
}

func TestIsCollidingNestedBoxes(t *testing.T) {
	outerDef := NewBoxHullDef(1, 1, 1)
	innerDef := NewBoxHullDef(1, 1, 1)
	identity := lin.NewT().SetI()
	outer := NewHull(outerDef, identity, lin.V3{X: 2, Y: 2, Z: 2})
	inner := NewHull(innerDef, identity, lin.V3{X: 0.5, Y: 0.5, Z: 0.5})
	if !isColliding(outer, inner, nil) {
		t.Fatalf("a box fully containing another should report a collision")
	}
}

func TestTripleCross(t *testing.T) {
	a := lin.V3{X: 1}
	b := lin.V3{Y: 1}
	c := lin.V3{X: 1}
	got := tripleCross(a, b, c)
	// (a x b) x c = b*(a.c) - a*(b.c); a.c=1, b.c=0 here, so this reduces to b.
	if got.X != 0 || got.Y != 1 || got.Z != 0 {
		t.Fatalf("got %+v, want (0,1,0)", got)
	}
}

func TestAddToSimplexBuildsTetrahedronMostRecentFirst(t *testing.T) {
	var s gjkSimplex
	addToSimplex(&s, lin.V3{X: 1})
	addToSimplex(&s, lin.V3{X: 2})
	addToSimplex(&s, lin.V3{X: 3})
	addToSimplex(&s, lin.V3{X: 4})
	if s.num != 4 {
		t.Fatalf("got num=%d, want 4", s.num)
	}
	if s.a.X != 4 || s.b.X != 3 || s.c.X != 2 || s.d.X != 1 {
		t.Fatalf("got a,b,c,d = %g,%g,%g,%g, want 4,3,2,1", s.a.X, s.b.X, s.c.X, s.d.X)
	}
}
