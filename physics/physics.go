// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package physics is a real-time rigid-body simulation for convex
// polyhedra in 3D: a dynamic broadphase BVH, a GJK/SAT/clipping
// narrowphase, and a sequential-impulse constraint solver.
//
// The engine is single-threaded and non-suspending: World.Step does all of
// broadphase, narrowphase, solving, and integration inline and returns
// once the frame's bodies have been updated. Step visits bodies in Go map
// order, so the BVH's shape, and with it the order in which contacts are
// solved, can differ between runs given the same inputs.
package physics

import "github.com/galvanized/impulse/math/lin"

// unitBoxDef is the canonical half-unit box HullDef shared by every box
// body: NewBoxBody scales it per body via Hull.size rather than baking
// dimensions into a fresh HullDef each time.
var unitBoxDef = NewBoxHullDef(1, 1, 1)

// NewBoxBody is a convenience constructor for a box-shaped body: it
// shares the canonical unit-box HullDef and scales it to (hx,hy,hz) via
// the returned Hull's per-instance size, per the Hull/HullDef split
// (HullDef shared across shapes of one topology, Hull holding the
// per-body world-space cache and scale).
func NewBoxBody(hx, hy, hz, mass float64, transform *lin.T) (*Body, error) {
	hull := NewHull(unitBoxDef, transform, lin.V3{X: hx, Y: hy, Z: hz})
	return newBody(hull, transform, mass)
}

// NewHullBody constructs a body sharing the given immutable HullDef,
// scaled by size (applied to the def's local vertices before rotation).
func NewHullBody(def *HullDef, size lin.V3, mass float64, transform *lin.T) (*Body, error) {
	hull := NewHull(def, transform, size)
	return newBody(hull, transform, mass)
}
