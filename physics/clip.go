// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/galvanized/impulse/math/lin"
)

// clipPlane is a plane used to clip an incident face against a reference
// face's side planes, given as an outward normal and a point on the plane.
type clipPlane struct {
	normal lin.V3
	point  lin.V3
}

func pointInPlane(p *clipPlane, v lin.V3) bool {
	d := -p.normal.Dot(&p.point)
	return v.Dot(&p.normal)+d >= 0.0
}

// clipEdgeAgainstPlane finds where segment (start,end) crosses plane p,
// clamped to the segment. Returns false if the edge runs parallel to p.
func clipEdgeAgainstPlane(p *clipPlane, start, end lin.V3, out *lin.V3) bool {
	const eps = 1e-6
	ab := lin.NewV3().Sub(&end, &start)
	abp := p.normal.Dot(ab)
	if math.Abs(abp) <= eps {
		return false
	}
	d := -p.normal.Dot(&p.point)
	pointOnPlane := lin.NewV3().Scale(&p.normal, -d)
	t := -p.normal.Dot(lin.NewV3().Sub(&start, pointOnPlane)) / abp
	t = math.Min(math.Max(t, 0.0), 1.0)
	out.Add(&start, ab.Scale(ab, t))
	return true
}

// sutherlandHodgman clips polygon against every plane in planes in turn,
// keeping the half-space each plane's normal points into. When dropOutside
// is true, vertices outside a plane are discarded rather than clipped to
// the plane (used for the final reference-plane pass, which only needs to
// drop incident points below the reference face, not reshape the polygon).
func sutherlandHodgman(polygon []lin.V3, planes []clipPlane, dropOutside bool) []lin.V3 {
	input := append([]lin.V3{}, polygon...)
	var output []lin.V3

	for i := range planes {
		if len(input) == 0 {
			break
		}
		plane := &planes[i]
		output = output[:0]
		startPoint := input[len(input)-1]
		for _, endPoint := range input {
			startIn := pointInPlane(plane, startPoint)
			endIn := pointInPlane(plane, endPoint)
			var cross lin.V3
			switch {
			case dropOutside:
				if endIn {
					output = append(output, endPoint)
				}
			case startIn && endIn:
				output = append(output, endPoint)
			case startIn && !endIn:
				if clipEdgeAgainstPlane(plane, startPoint, endPoint, &cross) {
					output = append(output, cross)
				}
			case !startIn && endIn:
				if clipEdgeAgainstPlane(plane, startPoint, endPoint, &cross) {
					output = append(output, cross)
				}
				output = append(output, endPoint)
			}
			startPoint = endPoint
		}
		input, output = output, input
	}
	return input
}

// closestPointOnPlane projects p orthogonally onto plane.
func closestPointOnPlane(p lin.V3, plane *clipPlane) lin.V3 {
	d := -plane.normal.Dot(&plane.point)
	t := plane.normal.Dot(&p) + d
	return *lin.NewV3().Sub(&p, lin.NewV3().Scale(&plane.normal, t))
}

// closestPointsBetweenSkewLines finds the closest points between finite
// segments p1->p1+d1 and p2->p2+d2 (d1, d2 need not be unit length): the
// segment parameters s, t are clamped to [0,1] so witness edges are
// treated as bounded segments, not infinite lines. Returns false when the
// lines are parallel.
func closestPointsBetweenSkewLines(p1, d1, p2, d2 lin.V3) (l1, l2 lin.V3, ok bool) {
	n1 := d1.Dot(&d2)
	n2 := d2.Dot(&d2)
	m1 := -d1.Dot(&d1)
	m2 := -d2.Dot(&d1)
	diff := lin.NewV3().Sub(&p1, &p2)
	r1 := d1.Dot(diff)
	r2 := d2.Dot(diff)

	det := n1*m2 - n2*m1
	if math.Abs(det) < lin.Epsilon {
		return l1, l2, false
	}
	s := lin.Clamp((r1*m2-r2*m1)/det, 0, 1)
	t := lin.Clamp((n1*r2-n2*r1)/det, 0, 1)
	l1 = *lin.NewV3().Add(&p1, lin.NewV3().Scale(&d1, t))
	l2 = *lin.NewV3().Add(&p2, lin.NewV3().Scale(&d2, s))
	return l1, l2, true
}
