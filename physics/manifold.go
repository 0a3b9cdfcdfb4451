// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/galvanized/impulse/math/lin"
)

// ManifoldPoint is one contact point in a resolved manifold: the point on
// each hull's surface closest to the other and the penetration depth
// along the contact normal, which is stored once on the Manifold.
type ManifoldPoint struct {
	OnA, OnB lin.V3
	Depth    float64
}

// Manifold is the result of narrowphase collision between two hulls: a
// shared contact normal and up to four contact points.
type Manifold struct {
	Normal lin.V3
	Points []ManifoldPoint
}

// maxManifoldPoints bounds every manifold to a stable quad: more points
// don't improve a rigid-body contact's stability and cost solver time.
const maxManifoldPoints = 4

// Collide runs the narrowphase pipeline between two hulls: a GJK boolean
// overlap test, then (on overlap) a SAT face/edge test for the axis of
// least penetration, then either an edge-edge closest-point contact or a
// Sutherland-Hodgman face clip, reduced to at most four points. Returns
// nil when the hulls do not overlap.
func Collide(a, b *Hull) *Manifold {
	if !isColliding(a, b, nil) {
		return nil
	}
	sat := satTest(a, b)
	switch sat.kind {
	case satEdge:
		return edgeManifold(a, b, sat)
	case satFaceA:
		return faceManifold(a, b, sat.faceA, true)
	default:
		return faceManifold(b, a, sat.faceB, false)
	}
}

// edgeManifold builds a single-point manifold from the closest points
// between the two witness edges of an edge-edge SAT axis.
func edgeManifold(a, b *Hull, sat satResult) *Manifold {
	pa, qa := a.queryEdge(sat.edgeA)
	pb, qb := b.queryEdge(sat.edgeB)
	da := *lin.NewV3().Sub(&qa, &pa)
	db := *lin.NewV3().Sub(&qb, &pb)
	onA, onB, ok := closestPointsBetweenSkewLines(pa, da, pb, db)
	if !ok {
		onA, onB = pa, pb
	}
	normal := sat.axis
	return &Manifold{
		Normal: normal,
		Points: []ManifoldPoint{{OnA: onA, OnB: onB, Depth: sat.depth}},
	}
}

// faceManifold clips the incident hull's closest face to the reference
// hull's reference-face side planes, producing a face contact manifold.
// refIsA indicates whether hull ref is hull A of the pair (so the caller
// can orient the normal from A towards B).
func faceManifold(ref, inc *Hull, refFace int, refIsA bool) *Manifold {
	refNormal := ref.faceNormal(refFace)
	negRefNormal := *lin.NewV3().Neg(&refNormal)

	// The incident face is whichever face of inc has its normal most
	// anti-parallel to the reference normal.
	bestFace, bestDot := 0, lin.Large
	for i := 0; i < len(inc.def.faces); i++ {
		n := inc.faceNormal(i)
		if d := n.Dot(&refNormal); d < bestDot {
			bestDot = d
			bestFace = i
		}
	}
	incVerts := inc.faceVerts(bestFace)

	var sidePlanes []clipPlane
	for _, adj := range ref.adjacentFaces(refFace) {
		adjNormal := ref.faceNormal(adj)
		sidePlanes = append(sidePlanes, clipPlane{
			normal: *lin.NewV3().Neg(&adjNormal),
			point:  ref.faceVerts(adj)[0],
		})
	}
	clipped := sutherlandHodgman(incVerts, sidePlanes, false)

	refPlane := clipPlane{normal: negRefNormal, point: ref.faceVerts(refFace)[0]}
	clipped = sutherlandHodgman(clipped, []clipPlane{refPlane}, true)

	var points []ManifoldPoint
	for _, p := range clipped {
		closest := closestPointOnPlane(p, &refPlane)
		diff := lin.NewV3().Sub(&p, &closest)
		depth := diff.Dot(&negRefNormal)
		if depth <= 0 {
			continue // not actually penetrating the reference face.
		}
		if refIsA {
			points = append(points, ManifoldPoint{OnA: closest, OnB: p, Depth: depth})
		} else {
			points = append(points, ManifoldPoint{OnA: p, OnB: closest, Depth: depth})
		}
	}

	// The normal is reported from A towards B. The outward reference
	// normal already points away from its own hull, so it points towards
	// the other hull when ref is A, and away from the other hull (hence
	// negated) when ref is B.
	normal := refNormal
	if !refIsA {
		normal = negRefNormal
	}

	return &Manifold{Normal: normal, Points: reduceManifold(points, normal)}
}

// reduceManifold keeps at most maxManifoldPoints of the given points via
// the max/min signed-area quad pick, then merges near-duplicates (within
// a quantized lattice).
func reduceManifold(points []ManifoldPoint, normal lin.V3) []ManifoldPoint {
	if len(points) > maxManifoldPoints {
		points = selectQuad(points, normal)
	}
	return dedupManifoldPoints(points)
}

// selectQuad picks a stable 4-point subset of points: A is any point (the
// last one), B is the point farthest from A, C maximizes the signed area
// of triangle (A,B,C) along normal, and D minimizes that same signed area
// (the opposite side of line A-B). This is winding-neutral and needs no
// special case for the deepest point.
func selectQuad(points []ManifoldPoint, normal lin.V3) []ManifoldPoint {
	aIdx := len(points) - 1
	a := points[aIdx].OnB

	bIdx, bestDist := -1, -1.0
	for i, p := range points {
		if i == aIdx {
			continue
		}
		d := lin.NewV3().Sub(&p.OnB, &a).LenSqr()
		if d > bestDist {
			bestDist, bIdx = d, i
		}
	}
	b := points[bIdx].OnB

	cIdx, bestArea := -1, math.Inf(-1)
	dIdx, worstArea := -1, math.Inf(1)
	for i, p := range points {
		if i == aIdx || i == bIdx {
			continue
		}
		area := signedTriangleArea(a, b, p.OnB, normal)
		if area > bestArea {
			bestArea, cIdx = area, i
		}
		if area < worstArea {
			worstArea, dIdx = area, i
		}
	}

	chosen := []int{aIdx, bIdx}
	if cIdx >= 0 {
		chosen = append(chosen, cIdx)
	}
	if dIdx >= 0 && dIdx != cIdx {
		chosen = append(chosen, dIdx)
	}

	out := make([]ManifoldPoint, 0, len(chosen))
	for _, i := range chosen {
		out = append(out, points[i])
	}
	return out
}

// signedTriangleArea returns twice the area of triangle (a,b,c), signed by
// its alignment with normal under the right-hand rule.
func signedTriangleArea(a, b, c, normal lin.V3) float64 {
	e1 := lin.NewV3().Sub(&b, &a)
	e2 := lin.NewV3().Sub(&c, &a)
	cross := lin.NewV3().Cross(e1, e2)
	return cross.Dot(&normal)
}

// dedupManifoldPoints merges points whose contact locations round to the
// same cell of a small fixed-size lattice, keeping the deeper of the two.
func dedupManifoldPoints(points []ManifoldPoint) []ManifoldPoint {
	const cell = 1e-4
	type key struct{ x, y, z int64 }
	seen := map[key]int{}
	var out []ManifoldPoint
	for _, p := range points {
		k := key{
			int64(math.Round(p.OnB.X / cell)),
			int64(math.Round(p.OnB.Y / cell)),
			int64(math.Round(p.OnB.Z / cell)),
		}
		if idx, ok := seen[k]; ok {
			if p.Depth > out[idx].Depth {
				out[idx] = p
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, p)
	}
	return out
}
