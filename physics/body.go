// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/galvanized/impulse/math/lin"
	"github.com/google/uuid"
)

// maxFriction bounds the combined-friction coefficient of a contact pair.
const maxFriction = 10.0

// BodyRef identifies a Body within a World. It is opaque and stable across
// the body's lifetime, including reuse of the underlying storage slot
// after a remove.
type BodyRef uuid.UUID

// Kind distinguishes bodies the solver moves from immovable scenery.
type Kind int

const (
	// Static bodies have infinite mass, never move, and never receive
	// impulses; their Jacobian terms are skipped on whichever side of a
	// contact pair they appear.
	Static Kind = iota
	// Dynamic bodies have finite mass and participate fully in
	// integration and constraint solving.
	Dynamic
)

// Body is a single rigid body tracked by a World: its shape, world
// transform, motion state, and mass properties.
type Body struct {
	ref  BodyRef
	kind Kind
	hull *Hull

	world *lin.T

	imass float64 // 1/mass; 0 for Static.
	iit   lin.V3  // inverse local-space principal inertia.
	iitw  lin.M3  // inverse inertia tensor in world orientation.

	lvel, lfor lin.V3
	avel, afor lin.V3
	ldamp      float64
	adamp      float64

	friction    float64
	restitution float64
	baumgarte   float64 // β: per-body Baumgarte stabilization coefficient.
}

// newBody constructs a Static or Dynamic body depending on mass: mass <= 0
// produces a Static body with infinite effective mass.
func newBody(hull *Hull, transform *lin.T, mass float64) (*Body, error) {
	b := &Body{
		ref:         BodyRef(uuid.New()),
		hull:        hull,
		world:       lin.NewT().Set(transform),
		friction:    0.5,
		restitution: 0.0,
		baumgarte:   0.2,
		iitw:        *lin.NewM3().Set(lin.M3I),
	}
	if mass > 0 {
		b.kind = Dynamic
		b.imass = 1.0 / mass
		localIT, err := boxInertia(mass, hull.size)
		if err != nil {
			return nil, err
		}
		b.iit = localIT
		b.updateInertiaTensor()
	}
	return b, nil
}

// boxInertia approximates a body's local-space principal inverse inertia
// using its hull's half-extent bounding box, the standard cuboid inertia
// formula I = m/12 * (h^2+d^2, w^2+d^2, w^2+h^2) applied to full extents
// 2*size. Returns SingularInertia if the resulting tensor cannot be
// inverted (a degenerate, near-planar shape).
func boxInertia(mass float64, size lin.V3) (lin.V3, error) {
	w, h, d := 2*size.X, 2*size.Y, 2*size.Z
	ix := mass / 12 * (h*h + d*d)
	iy := mass / 12 * (w*w + d*d)
	iz := mass / 12 * (w*w + h*h)
	diag := lin.M3{
		Xx: ix, Yy: iy, Zz: iz,
	}
	inv, ok := lin.NewM3().InvEps(&diag, 1e-3)
	if !ok {
		return lin.V3{}, newError(SingularInertia, "body inertia tensor is singular for size %+v, mass %g", size, mass)
	}
	return lin.V3{X: inv.Xx, Y: inv.Yy, Z: inv.Zz}, nil
}

// Ref returns the body's stable identifier.
func (b *Body) Ref() BodyRef { return b.ref }

// Kind reports whether the body is Static or Dynamic.
func (b *Body) Kind() Kind { return b.kind }

// Transform returns the body's current world transform.
func (b *Body) Transform() *lin.T { return b.world }

// Velocity returns the body's current linear and angular velocity.
func (b *Body) Velocity() (linear, angular lin.V3) { return b.lvel, b.avel }

// ApplyForce adds a force (not an impulse) acting through the body's
// center of mass, to be integrated over the next step and cleared after.
func (b *Body) ApplyForce(f lin.V3) {
	if b.kind == Dynamic {
		b.lfor.Add(&b.lfor, &f)
	}
}

// ApplyTorque adds a torque to be integrated over the next step.
func (b *Body) ApplyTorque(t lin.V3) {
	if b.kind == Dynamic {
		b.afor.Add(&b.afor, &t)
	}
}

// SetMaterial sets the body's friction and restitution coefficients.
func (b *Body) SetMaterial(friction, restitution float64) {
	b.friction = friction
	b.restitution = restitution
}

// SetBaumgarte sets the body's Baumgarte stabilization coefficient β, used
// to combine with a contact partner's β as βA·βB when biasing the normal
// constraint toward resolving penetration.
func (b *Body) SetBaumgarte(beta float64) {
	b.baumgarte = beta
}

// updateInertiaTensor recomputes the world-space inverse inertia tensor
// from the current orientation: R * diag(iit) * R^T.
func (b *Body) updateInertiaTensor() {
	if b.kind != Dynamic {
		return
	}
	rot := lin.NewM3().SetQ(b.world.Rot)
	rotT := lin.NewM3().Transpose(rot)
	b.iitw.Mult(rot.ScaleV(&b.iit), rotT)
}

// applyGravity accumulates gravity into this body's force accumulator.
// Static bodies are unaffected.
func (b *Body) applyGravity(gravityY float64) {
	if b.kind == Dynamic {
		b.lfor.Y += gravityY * (1.0 / b.imass)
	}
}

// integrateVelocities advances linear and angular velocity by the current
// accumulated forces over dt, then clamps angular speed so a single step
// can't rotate a body implausibly far (collision response assumes small
// angular displacement per step).
func (b *Body) integrateVelocities(dt float64) {
	if b.kind != Dynamic {
		return
	}
	b.lvel.X += b.lfor.X * b.imass * dt
	b.lvel.Y += b.lfor.Y * b.imass * dt
	b.lvel.Z += b.lfor.Z * b.imass * dt

	torque := lin.NewV3().MultMv(&b.iitw, &b.afor)
	b.avel.X += torque.X * dt
	b.avel.Y += torque.Y * dt
	b.avel.Z += torque.Z * dt

	if speed := b.avel.Len(); speed*dt > lin.HalfPi {
		b.avel.Scale(&b.avel, lin.HalfPi/dt/speed)
	}
}

// applyDamping scales linear and angular velocity by their respective
// per-second damping factors raised to the step length.
func (b *Body) applyDamping(dt float64) {
	b.lvel.Scale(&b.lvel, math.Pow(1.0-b.ldamp, dt))
	b.avel.Scale(&b.avel, math.Pow(1.0-b.adamp, dt))
}

// velocityAtPoint returns the linear velocity of the body's material point
// at world-space offset r from its center of mass.
func (b *Body) velocityAtPoint(r lin.V3) lin.V3 {
	v := lin.NewV3().Cross(&b.avel, &r)
	return *v.Add(v, &b.lvel)
}

// integrate advances the world transform by the current velocities over
// dt and refreshes the cached world-space hull and inertia tensor.
func (b *Body) integrate(dt float64) {
	if b.kind != Dynamic {
		return
	}
	next := lin.NewT().Integrate(b.world, &b.lvel, &b.avel, dt)
	b.world.Set(next)
	b.updateInertiaTensor()
	b.hull.Update(b.world)
}

// clearForces resets the force and torque accumulators after a step.
func (b *Body) clearForces() {
	b.lfor = lin.V3{}
	b.afor = lin.V3{}
}

// combinedFriction is the Coulomb friction coefficient used between a and
// b's materials, clamped to a reasonable range.
func combinedFriction(a, b *Body) float64 {
	return lin.Clamp(math.Sqrt(a.friction*b.friction), -maxFriction, maxFriction)
}

// combinedRestitution is the bounciness coefficient used between a and b.
func combinedRestitution(a, b *Body) float64 {
	return a.restitution * b.restitution
}

// combinedBaumgarte is the β used to scale a contact's positional-bias
// term, the product βA·βB of the two bodies' own coefficients.
func combinedBaumgarte(a, b *Body) float64 {
	return a.baumgarte * b.baumgarte
}
