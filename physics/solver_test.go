// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestSolveStopsBodiesFromInterpenetrating(t *testing.T) {
	a, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI()) // static floor.
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.lvel = lin.V3{Y: -5} // falling into the floor.

	mp := ManifoldPoint{OnA: lin.V3{Y: 1}, OnB: lin.V3{Y: 0.9}, Depth: 0.1}
	cc := buildContactConstraint(a, b, lin.V3{Y: 1}, mp, 1.0/60.0)
	solve([]*contactConstraint{cc})

	if b.lvel.Y < 0 {
		t.Fatalf("got lvel.Y=%g after solving, want non-negative (no longer approaching)", b.lvel.Y)
	}
}

func TestSolveClampsNormalImpulseNonNegative(t *testing.T) {
	a, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.lvel = lin.V3{Y: 5} // already separating.

	mp := ManifoldPoint{OnA: lin.V3{Y: 1}, OnB: lin.V3{Y: 0.9}, Depth: 0.1}
	cc := buildContactConstraint(a, b, lin.V3{Y: 1}, mp, 1.0/60.0)
	solve([]*contactConstraint{cc})

	if cc.accumNormal < 0 {
		t.Fatalf("got accumulated normal impulse %g, want >= 0", cc.accumNormal)
	}
}

func TestSolveFrictionClampedToCoulombCone(t *testing.T) {
	a, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.lvel = lin.V3{X: 100} // sliding hard sideways while resting on the floor.
	b.SetMaterial(0.5, 0)
	a.SetMaterial(0.5, 0)

	mp := ManifoldPoint{OnA: lin.V3{Y: 1}, OnB: lin.V3{Y: 1}, Depth: linearSlop}
	cc := buildContactConstraint(a, b, lin.V3{Y: 1}, mp, 1.0/60.0)
	solve([]*contactConstraint{cc})

	limit := cc.friction * cc.accumNormal
	if math.Abs(cc.accumT1) > limit+1e-6 || math.Abs(cc.accumT2) > limit+1e-6 {
		t.Fatalf("got accumT1=%g accumT2=%g, want within Coulomb limit %g", cc.accumT1, cc.accumT2, limit)
	}
}

func TestApplyImpulseSkipsStaticBodies(t *testing.T) {
	a, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	j := buildJacobian(lin.V3{Y: 1}, lin.V3{}, lin.V3{})
	applyImpulse(a, b, j, 10)
	if a.lvel != (lin.V3{}) {
		t.Fatalf("got static body velocity %+v, want untouched", a.lvel)
	}
	if b.lvel.Y <= 0 {
		t.Fatalf("got dynamic body lvel.Y=%g, want positive after a positive normal impulse", b.lvel.Y)
	}
}
