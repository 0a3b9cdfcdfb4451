// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/galvanized/impulse/math/lin"

// satAxisKind distinguishes which class of separating axis produced the
// smallest penetration, which in turn decides how the manifold is built.
type satAxisKind int

const (
	satFaceA satAxisKind = iota
	satFaceB
	satEdge
)

// satResult is the axis of least penetration between two hulls that GJK
// has already reported as overlapping.
type satResult struct {
	kind  satAxisKind
	axis  lin.V3 // only set for satEdge; face axes are read from the winning hull's normal.
	depth float64
	faceA int
	faceB int
	edgeA int
	edgeB int
}

// satBias favors face contacts over edge contacts when the two separations
// are close: face manifolds are more stable, and edge axes near parallel
// edges are prone to numerical jitter.
const satBias = 0.01

// satTest runs the SAT face queries on both hulls and the Gauss-map-pruned
// edge query, and returns the axis of least penetration. Faces win ties
// per satBias.
func satTest(a, b *Hull) satResult {
	faceA, distA := a.queryFaceDirections(b)
	faceB, distB := b.queryFaceDirections(a)
	edgeAxis, edgeDist, edgeA, edgeB := a.queryEdgeDirections(b)

	// The queries return separations (negative when overlapping); depth is
	// reported as the positive penetration along the winning axis.
	if distA+satBias >= edgeDist && distA >= distB {
		return satResult{kind: satFaceA, depth: -distA, faceA: faceA}
	}
	if distB+satBias >= edgeDist && distB >= distA {
		return satResult{kind: satFaceB, depth: -distB, faceB: faceB}
	}
	return satResult{kind: satEdge, axis: edgeAxis, depth: -edgeDist, edgeA: edgeA, edgeB: edgeB}
}
