// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"github.com/galvanized/impulse/math/lin"
)

// maxGJKIterations bounds the simplex-refinement loop. Convex polyhedra
// colliding at engine scale converge well within this; a hull pair that
// doesn't is reported as not colliding rather than looping indefinitely.
const maxGJKIterations = 8

// gjkSimplex holds up to 4 support points of the evolving simplex, most
// recently added point first (a).
type gjkSimplex struct {
	a, b, c, d lin.V3
	num        int
}

func addToSimplex(s *gjkSimplex, point lin.V3) {
	switch s.num {
	case 0:
		s.a = point
	case 1:
		s.b, s.a = s.a, point
	case 2:
		s.c, s.b, s.a = s.b, s.a, point
	case 3:
		s.d, s.c, s.b, s.a = s.c, s.b, s.a, point
	}
	s.num++
}

func tripleCross(a, b, c lin.V3) lin.V3 {
	tc := lin.NewV3().Cross(&a, &b)
	tc.Cross(tc, &c)
	return *tc
}

// simplexLine handles the 2-point (line) simplex case.
func simplexLine(s *gjkSimplex, dir *lin.V3) bool {
	a, b := s.a, s.b
	ao := lin.NewV3().Neg(&a)
	ab := lin.NewV3().Sub(&b, &a)
	if ab.Dot(ao) >= 0 {
		s.a, s.b, s.num = a, b, 2
		*dir = tripleCross(*ab, *ao, *ab)
	} else {
		s.a, s.num = a, 1
		*dir = *ao
	}
	return false
}

// simplexTriangle handles the 3-point (triangle) simplex case.
func simplexTriangle(s *gjkSimplex, dir *lin.V3) bool {
	a, b, c := s.a, s.b, s.c
	ao := lin.NewV3().Neg(&a)
	ab := lin.NewV3().Sub(&b, &a)
	ac := lin.NewV3().Sub(&c, &a)
	abc := lin.NewV3().Cross(ab, ac)

	if lin.NewV3().Cross(abc, ac).Dot(ao) >= 0 {
		if ac.Dot(ao) >= 0 {
			s.a, s.b, s.num = a, c, 2
			*dir = tripleCross(*ac, *ao, *ac)
		} else if ab.Dot(ao) >= 0 {
			s.a, s.b, s.num = a, b, 2
			*dir = tripleCross(*ab, *ao, *ab)
		} else {
			s.a, s.num = a, 1
			*dir = *ao
		}
		return false
	}
	if lin.NewV3().Cross(ab, abc).Dot(ao) >= 0 {
		if ab.Dot(ao) >= 0 {
			s.a, s.b, s.num = a, b, 2
			*dir = tripleCross(*ab, *ao, *ab)
		} else {
			s.a, s.num = a, 1
			*dir = *ao
		}
		return false
	}
	if abc.Dot(ao) >= 0 {
		s.a, s.b, s.c, s.num = a, b, c, 3
		*dir = *abc
	} else {
		s.a, s.b, s.c, s.num = a, c, b, 3
		*dir = *abc.Neg(abc)
	}
	return false
}

// simplexTetrahedron handles the 4-point (tetrahedron) simplex case,
// returning true when the origin is enclosed (collision detected).
func simplexTetrahedron(s *gjkSimplex, dir *lin.V3) bool {
	a, b, c, d := s.a, s.b, s.c, s.d
	ao := lin.NewV3().Neg(&a)
	ab := lin.NewV3().Sub(&b, &a)
	ac := lin.NewV3().Sub(&c, &a)
	ad := lin.NewV3().Sub(&d, &a)
	abc := lin.NewV3().Cross(ab, ac)
	acd := lin.NewV3().Cross(ac, ad)
	adb := lin.NewV3().Cross(ad, ab)

	onABC := abc.Dot(ao) >= 0
	onACD := acd.Dot(ao) >= 0
	onADB := adb.Dot(ao) >= 0

	switch {
	case !onABC && !onACD && !onADB:
		return true // origin enclosed by the tetrahedron.
	case onABC && !onACD && !onADB:
		s.a, s.b, s.c, s.num = a, b, c, 3
		return simplexTriangle(s, dir)
	case !onABC && onACD && !onADB:
		s.a, s.b, s.c, s.num = a, c, d, 3
		return simplexTriangle(s, dir)
	case !onABC && !onACD && onADB:
		s.a, s.b, s.c, s.num = a, d, b, 3
		return simplexTriangle(s, dir)
	case onABC && onACD && !onADB:
		s.a, s.b, s.num = a, c, 2
		return simplexLine(s, dir)
	case !onABC && onACD && onADB:
		s.a, s.b, s.num = a, d, 2
		return simplexLine(s, dir)
	case onABC && !onACD && onADB:
		s.a, s.b, s.num = a, b, 2
		return simplexLine(s, dir)
	default:
		s.a, s.num = a, 1
		*dir = *ao
		return false
	}
}

func doSimplex(s *gjkSimplex, dir *lin.V3) bool {
	switch s.num {
	case 2:
		return simplexLine(s, dir)
	case 3:
		return simplexTriangle(s, dir)
	case 4:
		return simplexTetrahedron(s, dir)
	}
	return false
}

// minkowskiSupport returns the support point of the Minkowski difference
// hullA - hullB along direction d.
func minkowskiSupport(hullA, hullB *Hull, d lin.V3) lin.V3 {
	sa := hullA.Support(d)
	sb := hullB.Support(*lin.NewV3().Neg(&d))
	return *lin.NewV3().Sub(&sa, &sb)
}

// isColliding is the GJK boolean overlap test: builds a Minkowski-
// difference simplex via Casey Muratori's shortcut, refining the simplex
// through point/line/triangle/tetrahedron Voronoi-region case analysis for
// up to maxGJKIterations steps. When the caller needs the terminating
// simplex (for manifold bootstrapping) it is written into outSimplex.
func isColliding(hullA, hullB *Hull, outSimplex *gjkSimplex) bool {
	var simplex gjkSimplex
	seed := lin.V3{X: 0, Y: 0, Z: 1}
	simplex.a = minkowskiSupport(hullA, hullB, seed)
	simplex.num = 1
	dir := lin.NewV3().Scale(&simplex.a, -1)

	for i := 0; i < maxGJKIterations; i++ {
		next := minkowskiSupport(hullA, hullB, *dir)
		if next.Dot(dir) <= lin.Epsilon {
			return false // direction of travel can't reach the origin: no overlap.
		}
		addToSimplex(&simplex, next)
		if doSimplex(&simplex, dir) {
			if outSimplex != nil {
				*outSimplex = simplex
			}
			return true
		}
	}
	return false
}
