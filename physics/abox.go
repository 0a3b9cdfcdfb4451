// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/galvanized/impulse/math/lin"
)

// Abox is an axis aligned bounding box. Vertices of the full axis aligned
// box are:
//
//	Sx, Sy, Sz -- smallest vertex (minimum point)
//	Lx, Ly, Lz -- largest vertex (maximum point)
type Abox struct {
	Sx, Sy, Sz float64
	Lx, Ly, Lz float64
}

// Overlaps returns true if Abox a and b intersect. Touching along a single
// point, edge, or face is not considered an overlap.
func (a *Abox) Overlaps(b *Abox) bool {
	return a.Lx > b.Sx && a.Sx < b.Lx &&
		a.Ly > b.Sy && a.Sy < b.Ly &&
		a.Lz > b.Sz && a.Sz < b.Lz
}

// Contains returns true if Abox a fully contains Abox b.
func (a *Abox) Contains(b *Abox) bool {
	return a.Sx <= b.Sx && a.Sy <= b.Sy && a.Sz <= b.Sz &&
		a.Lx >= b.Lx && a.Ly >= b.Ly && a.Lz >= b.Lz
}

// Union updates a to be the smallest box containing both b and c.
func (a *Abox) Union(b, c *Abox) *Abox {
	a.Sx, a.Sy, a.Sz = math.Min(b.Sx, c.Sx), math.Min(b.Sy, c.Sy), math.Min(b.Sz, c.Sz)
	a.Lx, a.Ly, a.Lz = math.Max(b.Lx, c.Lx), math.Max(b.Ly, c.Ly), math.Max(b.Lz, c.Lz)
	return a
}

// Set copies box b's extents into box a.
func (a *Abox) Set(b *Abox) *Abox {
	*a = *b
	return a
}

// Expand grows box a by pad on every side.
func (a *Abox) Expand(pad float64) *Abox {
	a.Sx, a.Sy, a.Sz = a.Sx-pad, a.Sy-pad, a.Sz-pad
	a.Lx, a.Ly, a.Lz = a.Lx+pad, a.Ly+pad, a.Lz+pad
	return a
}

// Center returns the midpoint of box a.
func (a *Abox) Center() lin.V3 {
	return lin.V3{X: (a.Sx + a.Lx) * 0.5, Y: (a.Sy + a.Ly) * 0.5, Z: (a.Sz + a.Lz) * 0.5}
}

// SurfaceArea returns the SAH surface-area proxy xy+xz+yz (half the true
// surface area; the factor of 2 cancels out of every SAH cost comparison
// so it is omitted, matching the formula in spec.md's bulk-build step).
func (a *Abox) SurfaceArea() float64 {
	dx, dy, dz := a.Lx-a.Sx, a.Ly-a.Sy, a.Lz-a.Sz
	return dx*dy + dx*dz + dy*dz
}

// aboxFromPoints computes the AABB of a set of world-space points.
func aboxFromPoints(pts []lin.V3) Abox {
	ab := Abox{Sx: lin.Large, Sy: lin.Large, Sz: lin.Large, Lx: -lin.Large, Ly: -lin.Large, Lz: -lin.Large}
	for _, p := range pts {
		ab.Sx, ab.Sy, ab.Sz = math.Min(ab.Sx, p.X), math.Min(ab.Sy, p.Y), math.Min(ab.Sz, p.Z)
		ab.Lx, ab.Ly, ab.Lz = math.Max(ab.Lx, p.X), math.Max(ab.Ly, p.Y), math.Max(ab.Lz, p.Z)
	}
	return ab
}
