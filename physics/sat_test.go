// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestSatTestFlatFaceStackPicksFace(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	ta := lin.NewT().SetI()
	tb := lin.NewT().SetI()
	tb.Loc.Y = 1.9
	a := NewHull(def, ta, lin.V3{X: 1, Y: 1, Z: 1})
	b := NewHull(def, tb, lin.V3{X: 1, Y: 1, Z: 1})

	res := satTest(a, b)
	if res.kind != satFaceA && res.kind != satFaceB {
		t.Fatalf("got axis kind %v, want a face axis for a flush face stack", res.kind)
	}
	if res.depth <= 0 {
		t.Fatalf("got depth %g, want a positive penetration", res.depth)
	}
}

func TestSatTestEdgeOnEdgeCornerCollision(t *testing.T) {
	def := NewBoxHullDef(1, 1, 1)
	ta := lin.NewT().SetI()
	tb := lin.NewT().SetI()
	// Rotate b 45 degrees about Y so one of its edges meets a's face edge-on.
	tb.SetAa(0, 1, 0, lin.HalfPi/2)
	tb.Loc.X, tb.Loc.Y, tb.Loc.Z = 1.6, 0, 1.6
	a := NewHull(def, ta, lin.V3{X: 1, Y: 1, Z: 1})
	b := NewHull(def, tb, lin.V3{X: 1, Y: 1, Z: 1})

	if !isColliding(a, b, nil) {
		t.Skip("rotated corner placement doesn't overlap at this offset; geometry-dependent")
	}
	res := satTest(a, b)
	if res.depth <= 0 {
		t.Fatalf("got depth %g, want a positive penetration", res.depth)
	}
}
