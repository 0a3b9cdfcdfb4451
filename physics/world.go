// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/galvanized/impulse/math/lin"

// Gravity is the downward linear acceleration (meters/second^2) applied
// to every dynamic body each step, along -Y.
const Gravity = 9.8

// Contact summarizes one resolved narrowphase pair from the most recent
// step, kept only for diagnostics (Islands) and caller introspection; it
// plays no part in the next step's solve (the engine does not warm-start
// across steps).
type Contact struct {
	A, B     BodyRef
	Manifold *Manifold
}

// World owns every body in a simulation and advances them together:
// broadphase culling via a dynamic BVH, GJK/SAT/clip narrowphase,
// sequential-impulse solving, then velocity/position integration.
type World struct {
	bodies       map[BodyRef]*Body
	tree         *bvh
	lastContacts []Contact
	gravity      float64
}

// NewWorld returns an empty World using the standard gravity constant.
func NewWorld() *World {
	return &World{bodies: map[BodyRef]*Body{}, tree: newBVH(), gravity: Gravity}
}

// SetGravity overrides the downward acceleration applied each step.
func (w *World) SetGravity(g float64) { w.gravity = g }

// AddBody inserts an already-constructed body into the world's broadphase
// and bookkeeping. Bodies are typically constructed with NewBoxBody or
// NewHullBody and then added here.
func (w *World) AddBody(b *Body) BodyRef {
	w.bodies[b.ref] = b
	w.tree.Insert(b.ref, b.hull.AABB())
	return b.ref
}

// AddBodies bulk-loads many bodies at once via a binned-SAH build rather
// than one incremental insert per body, the cheaper path for a batch of
// bodies that aren't already part of this World's broadphase (e.g. static
// level geometry loaded up front). Any body already present is dropped
// from the tree and rebuilt in along with the rest. Returns an error only
// if an internal partition invariant is violated.
func (w *World) AddBodies(bodies []*Body) error {
	refs := make([]BodyRef, 0, len(w.bodies)+len(bodies))
	boxes := make([]Abox, 0, len(w.bodies)+len(bodies))
	for ref, b := range w.bodies {
		refs = append(refs, ref)
		boxes = append(boxes, b.hull.AABB())
	}
	for _, b := range bodies {
		w.bodies[b.ref] = b
		refs = append(refs, b.ref)
		boxes = append(boxes, b.hull.AABB())
	}
	return w.tree.Build(refs, boxes)
}

// RemoveBody drops a body from the world; its BodyRef becomes invalid.
func (w *World) RemoveBody(ref BodyRef) {
	delete(w.bodies, ref)
	w.tree.Remove(ref)
}

// Body looks up a body by reference, returning nil if it isn't in this
// World (e.g. already removed).
func (w *World) Body(ref BodyRef) *Body { return w.bodies[ref] }

// Step advances the simulation by dt: applies gravity, finds candidate
// pairs via the BVH, runs GJK/SAT/clip narrowphase on each candidate
// pair, builds contact constraints, runs the sequential-impulse solver,
// integrates velocities into new transforms, and refits the BVH.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.kind == Dynamic {
			b.applyGravity(-w.gravity)
			b.integrateVelocities(dt)
			b.applyDamping(dt)
		}
	}

	pairs := w.tree.Pairs()
	var constraints []*contactConstraint
	contacts := w.lastContacts[:0]

	for _, pr := range pairs {
		bodyA, bodyB := w.bodies[pr[0]], w.bodies[pr[1]]
		if bodyA == nil || bodyB == nil {
			continue
		}
		if bodyA.kind != Dynamic && bodyB.kind != Dynamic {
			continue // two static bodies never generate a constraint.
		}
		m := Collide(bodyA.hull, bodyB.hull)
		if m == nil {
			continue
		}
		contacts = append(contacts, Contact{A: pr[0], B: pr[1], Manifold: m})
		for _, p := range m.Points {
			constraints = append(constraints, buildContactConstraint(bodyA, bodyB, m.Normal, p, dt))
		}
	}
	w.lastContacts = contacts

	solve(constraints)

	for _, b := range w.bodies {
		if b.kind == Dynamic {
			b.integrate(dt)
			w.tree.Update(b.ref, b.hull.AABB())
		}
		b.clearForces()
	}
}

// OverlapBox returns every body whose (fattened) broadphase AABB
// intersects box. This is a broadphase-only query: callers that need an
// exact overlap should run Collide against the returned bodies' hulls.
func (w *World) OverlapBox(box Abox) []BodyRef {
	return w.tree.Query(box, nil)
}

// Raycast returns every body whose broadphase AABB the swept segment from
// origin o to o+d, expanded by half(size) on each axis, crosses. Nearest
// first is not guaranteed: this is a broadphase candidate list, not a
// resolved hit point. Callers wanting an exact first hit should test each
// returned body's Hull.Support along -d or clip the segment against its
// faces.
func (w *World) Raycast(o, d, size lin.V3) []BodyRef {
	return w.tree.Trace(o, d, size, nil)
}
