// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/galvanized/impulse/math/lin"
)

func TestNewBoxBodyIsDynamicWithPositiveMass(t *testing.T) {
	b, err := NewBoxBody(1, 1, 1, 2, lin.NewT().SetI())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind() != Dynamic {
		t.Fatalf("got kind %v, want Dynamic", b.Kind())
	}
	if b.imass != 0.5 {
		t.Fatalf("got imass %g, want 0.5 for mass 2", b.imass)
	}
}

func TestNewBoxBodyIsStaticWithZeroMass(t *testing.T) {
	b, err := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind() != Static {
		t.Fatalf("got kind %v, want Static", b.Kind())
	}
	if b.imass != 0 {
		t.Fatalf("got imass %g, want 0 for a static body", b.imass)
	}
}

func TestBoxInertiaSingularForDegenerateSize(t *testing.T) {
	_, err := boxInertia(1, lin.V3{X: 0, Y: 0, Z: 0})
	if err == nil {
		t.Fatalf("expected SingularInertia for a zero-size body")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != SingularInertia {
		t.Fatalf("got error %v, want kind SingularInertia", err)
	}
}

func TestApplyForceOnlyAffectsDynamicBodies(t *testing.T) {
	dyn, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	stat, _ := NewBoxBody(1, 1, 1, 0, lin.NewT().SetI())

	dyn.ApplyForce(lin.V3{Y: 10})
	stat.ApplyForce(lin.V3{Y: 10})

	if dyn.lfor.Y != 10 {
		t.Fatalf("got dynamic body force %g, want 10", dyn.lfor.Y)
	}
	if stat.lfor.Y != 0 {
		t.Fatalf("got static body force %g, want 0 (forces on statics are ignored)", stat.lfor.Y)
	}
}

func TestIntegrateVelocitiesAppliesGravityForce(t *testing.T) {
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.applyGravity(-Gravity)
	b.integrateVelocities(1.0)
	if math.Abs(b.lvel.Y+Gravity) > 1e-9 {
		t.Fatalf("got lvel.Y=%g after 1s under gravity, want %g", b.lvel.Y, -Gravity)
	}
}

func TestIntegrateVelocitiesClampsAngularSpeed(t *testing.T) {
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.ApplyTorque(lin.V3{Y: 1000})
	b.integrateVelocities(1.0)
	if speed := b.avel.Len(); speed*1.0 > lin.HalfPi+1e-9 {
		t.Fatalf("got angular displacement %g over dt=1, want capped at HalfPi", speed)
	}
}

func TestApplyDampingDecaysVelocity(t *testing.T) {
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.lvel = lin.V3{X: 10}
	b.ldamp = 0.5
	b.applyDamping(1.0)
	if b.lvel.X >= 10 || b.lvel.X <= 0 {
		t.Fatalf("got lvel.X=%g after damping, want strictly between 0 and 10", b.lvel.X)
	}
}

func TestClearForcesResetsAccumulators(t *testing.T) {
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.ApplyForce(lin.V3{X: 1, Y: 2, Z: 3})
	b.ApplyTorque(lin.V3{X: 1})
	b.clearForces()
	if b.lfor != (lin.V3{}) || b.afor != (lin.V3{}) {
		t.Fatalf("got lfor=%+v afor=%+v, want both zeroed", b.lfor, b.afor)
	}
}

func TestCombinedFrictionAndRestitution(t *testing.T) {
	a, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	a.SetMaterial(0.5, 0.5)
	b.SetMaterial(0.5, 0.0)
	if got := combinedFriction(a, b); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("got combined friction %g, want 0.5", got)
	}
	if got := combinedRestitution(a, b); got != 0 {
		t.Fatalf("got combined restitution %g, want 0 (one body is non-bouncy)", got)
	}
}

func TestVelocityAtPointIncludesAngularContribution(t *testing.T) {
	b, _ := NewBoxBody(1, 1, 1, 1, lin.NewT().SetI())
	b.avel = lin.V3{Z: 1} // spinning about Z.
	v := b.velocityAtPoint(lin.V3{X: 1})
	// omega x r = (0,0,1) x (1,0,0) = (0,1,0).
	if math.Abs(v.Y-1) > 1e-9 {
		t.Fatalf("got velocity %+v at point (1,0,0) under spin about Z, want Y=1", v)
	}
}
