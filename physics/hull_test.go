// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestNewBoxHullDefValid(t *testing.T) {
	def := NewBoxHullDef(1, 2, 3)
	if len(def.Verts) != 8 {
		t.Fatalf("got %d verts, want 8", len(def.Verts))
	}
	if len(def.faces) != 6 {
		t.Fatalf("got %d faces, want 6", len(def.faces))
	}
	if len(def.edges) != 12 {
		t.Fatalf("got %d edges, want 12", len(def.edges))
	}
	for _, e := range def.edges {
		if e.f0 < 0 || e.f1 < 0 {
			t.Fatalf("edge %+v missing a face", e)
		}
	}
}

func TestNewHullDefRejectsOpenSurface(t *testing.T) {
	verts := []lin.V3{{X: 0}, {X: 1}, {X: 0, Y: 1}, {X: 0, Z: 1}}
	faces := [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}} // 3 faces: not closed.
	if _, err := NewHullDef(verts, faces); err == nil {
		t.Fatalf("expected InvalidShape for an open surface")
	}
}

func TestHullSupportPicksExtremeVertex(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	h := NewHull(def, lin.NewT().SetI(), lin.V3{X: 1, Y: 1, Z: 1})
	s := h.Support(lin.V3{X: 1})
	if s.X != 1 {
		t.Fatalf("support along +X got %+v, want X=1", s)
	}
}

func TestHullAABBTranslates(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	transform := lin.NewT().SetI()
	transform.Loc.X = 5
	h := NewHull(def, transform, lin.V3{X: 1, Y: 1, Z: 1})
	box := h.AABB()
	if box.Sx != 4 || box.Lx != 6 {
		t.Fatalf("got box %+v, want centered on x=5", box)
	}
}

func TestIsMinkowskiFacePrunesNonAdjacentAxis(t *testing.T) {
	// Two faces sharing an edge on a box (+X and +Y) and the Minkowski-
	// space-negated pair from another box's edge (-X and -Y): these arcs
	// lie on opposite sides of the same great circle and do not cross, so
	// the edge pair is pruned.
	a := lin.V3{X: 1}
	b := lin.V3{Y: 1}
	c := lin.V3{X: -1}
	d := lin.V3{Y: -1}
	if isMinkowskiFace(a, b, c, d) {
		t.Fatalf("expected non-crossing arcs to be pruned")
	}
}

func TestTwoSeparatedBoxesDoNotCollide(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	ta := lin.NewT().SetI()
	tb := lin.NewT().SetI()
	tb.Loc.X = 10
	ha := NewHull(def, ta, lin.V3{X: 1, Y: 1, Z: 1})
	hb := NewHull(def, tb, lin.V3{X: 1, Y: 1, Z: 1})
	if isColliding(ha, hb, nil) {
		t.Fatalf("boxes 10 units apart should not overlap")
	}
}

func TestTwoOverlappingBoxesCollide(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	ta := lin.NewT().SetI()
	tb := lin.NewT().SetI()
	tb.Loc.X = 1.5
	ha := NewHull(def, ta, lin.V3{X: 1, Y: 1, Z: 1})
	hb := NewHull(def, tb, lin.V3{X: 1, Y: 1, Z: 1})
	if !isColliding(ha, hb, nil) {
		t.Fatalf("boxes overlapping by 0.5 units should collide")
	}
}
