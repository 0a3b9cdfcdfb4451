// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestPointInPlane(t *testing.T) {
	plane := &clipPlane{normal: lin.V3{Y: 1}, point: lin.V3{Y: 0}}
	if !pointInPlane(plane, lin.V3{Y: 1}) {
		t.Fatalf("point above the plane along its normal should be inside")
	}
	if pointInPlane(plane, lin.V3{Y: -1}) {
		t.Fatalf("point below the plane should be outside")
	}
}

func TestClipEdgeAgainstPlane(t *testing.T) {
	plane := &clipPlane{normal: lin.V3{Y: 1}, point: lin.V3{Y: 0}}
	var out lin.V3
	ok := clipEdgeAgainstPlane(plane, lin.V3{Y: -1}, lin.V3{Y: 1}, &out)
	if !ok {
		t.Fatalf("expected an intersection for a segment crossing the plane")
	}
	if math.Abs(out.Y) > 1e-9 {
		t.Fatalf("got intersection y=%g, want 0", out.Y)
	}
}

func TestClipEdgeAgainstPlaneParallel(t *testing.T) {
	plane := &clipPlane{normal: lin.V3{Y: 1}, point: lin.V3{Y: 0}}
	var out lin.V3
	ok := clipEdgeAgainstPlane(plane, lin.V3{X: -1, Y: 1}, lin.V3{X: 1, Y: 1}, &out)
	if ok {
		t.Fatalf("expected no intersection for a segment parallel to the plane")
	}
}

func TestSutherlandHodgmanClipsSquareToHalfPlane(t *testing.T) {
	square := []lin.V3{{X: -1, Z: -1}, {X: 1, Z: -1}, {X: 1, Z: 1}, {X: -1, Z: 1}}
	planes := []clipPlane{{normal: lin.V3{X: 1}, point: lin.V3{}}} // keep x >= 0.
	out := sutherlandHodgman(square, planes, false)
	for _, p := range out {
		if p.X < -1e-9 {
			t.Fatalf("got point %+v with x < 0 after clipping to x >= 0", p)
		}
	}
	if len(out) < 3 {
		t.Fatalf("expected a clipped polygon with at least 3 vertices, got %d", len(out))
	}
}

func TestSutherlandHodgmanDropOutsideDiscardsWithoutClipping(t *testing.T) {
	square := []lin.V3{{X: -1, Z: -1}, {X: 1, Z: -1}, {X: 1, Z: 1}, {X: -1, Z: 1}}
	planes := []clipPlane{{normal: lin.V3{X: 1}, point: lin.V3{}}}
	out := sutherlandHodgman(square, planes, true)
	if len(out) != 2 {
		t.Fatalf("got %d surviving vertices, want exactly the 2 with x>=0", len(out))
	}
}

func TestClosestPointsBetweenSkewLines(t *testing.T) {
	p1, d1 := lin.V3{X: -1, Y: 0, Z: 0}, lin.V3{X: 1, Y: 0, Z: 0}
	p2, d2 := lin.V3{X: 0, Y: -1, Z: 1}, lin.V3{X: 0, Y: 1, Z: 0}
	l1, l2, ok := closestPointsBetweenSkewLines(p1, d1, p2, d2)
	if !ok {
		t.Fatalf("expected skew (non-parallel) lines to report a closest-point pair")
	}
	if math.Abs(l1.Z) > 1e-9 || math.Abs(l2.Z-1) > 1e-9 {
		t.Fatalf("got l1=%+v l2=%+v, want closest points on each input line's own z", l1, l2)
	}
}

func TestClosestPointsBetweenParallelLines(t *testing.T) {
	p1, d1 := lin.V3{}, lin.V3{X: 1}
	p2, d2 := lin.V3{Y: 1}, lin.V3{X: 1}
	_, _, ok := closestPointsBetweenSkewLines(p1, d1, p2, d2)
	if ok {
		t.Fatalf("expected parallel lines to report no unique closest-point pair")
	}
}
