// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/galvanized/impulse/math/lin"
)

// hullFace is a single CCW-wound, planar face of a convex polyhedron.
type hullFace struct {
	verts  []int   // indices into HullDef.Verts, CCW when viewed from outside.
	normal lin.V3  // local-space outward plane normal.
}

// hullEdge is an undirected edge shared by exactly two faces.
type hullEdge struct {
	v0, v1 int // vertex indices.
	f0, f1 int // the two adjacent face indices.
}

// HullDef is the immutable, local-space description of a convex polyhedron:
// vertices, CCW-wound faces with plane normals, and edges with their two
// adjacent faces. A HullDef is built once per distinct shape and shared by
// every Hull (and therefore every Body) that uses that shape -- it is never
// mutated after NewHullDef/NewBoxHullDef returns.
type HullDef struct {
	Verts []lin.V3
	faces []hullFace
	edges []hullEdge
}

// NewHullDef builds an immutable convex-polyhedron descriptor from a vertex
// list and a list of faces, each face given as a CCW-ordered list of vertex
// indices (outward normal following the right-hand rule). Edge adjacency is
// derived from shared face edges. Returns InvalidShape if a face is
// degenerate (fewer than 3 vertices, or its first three vertices are
// collinear), if a vertex lies in front of a face's plane (the hull is
// not convex, or a face is wound inward), or if any edge does not end up
// bordering exactly two faces (the hull is not a closed manifold).
func NewHullDef(verts []lin.V3, faces [][]int) (*HullDef, error) {
	if len(verts) < 4 {
		return nil, newError(InvalidShape, "hull needs at least 4 vertices, got %d", len(verts))
	}
	if len(faces) < 4 {
		return nil, newError(InvalidShape, "hull needs at least 4 faces, got %d", len(faces))
	}
	def := &HullDef{Verts: verts}
	type edgeKey struct{ a, b int }
	edgeIndex := map[edgeKey]int{}

	for fi, loop := range faces {
		if len(loop) < 3 {
			return nil, newError(InvalidShape, "face %d has fewer than 3 vertices", fi)
		}
		v0, v1, v2 := verts[loop[0]], verts[loop[1]], verts[loop[2]]
		e1 := lin.NewV3().Sub(&v1, &v0)
		e2 := lin.NewV3().Sub(&v2, &v0)
		normal := lin.NewV3().Cross(e1, e2)
		if normal.LenSqr() < lin.Epsilon {
			return nil, newError(InvalidShape, "face %d's first three vertices are collinear", fi)
		}
		normal.Unit()
		for vi := range verts {
			if lin.NewV3().Sub(&verts[vi], &v0).Dot(normal) > lin.Epsilon {
				return nil, newError(InvalidShape, "vertex %d lies outside face %d: hull is not convex", vi, fi)
			}
		}
		def.faces = append(def.faces, hullFace{verts: append([]int{}, loop...), normal: *normal})

		for i := 0; i < len(loop); i++ {
			a, b := loop[i], loop[(i+1)%len(loop)]
			key := edgeKey{a, b}
			rev := edgeKey{b, a}
			if idx, ok := edgeIndex[rev]; ok {
				if def.edges[idx].f1 >= 0 {
					return nil, newError(InvalidShape, "edge (%d,%d) borders more than two faces", a, b)
				}
				def.edges[idx].f1 = fi
				continue
			}
			if _, ok := edgeIndex[key]; ok {
				// same directed edge seen twice: non-manifold / inconsistent winding.
				return nil, newError(InvalidShape, "edge (%d,%d) repeated with same winding", a, b)
			}
			edgeIndex[key] = len(def.edges)
			def.edges = append(def.edges, hullEdge{v0: a, v1: b, f0: fi, f1: -1})
		}
	}
	for _, e := range def.edges {
		if e.f1 < 0 {
			return nil, newError(InvalidShape, "edge (%d,%d) borders only one face", e.v0, e.v1)
		}
	}
	return def, nil
}

// NewBoxHullDef builds a box HullDef from half-extents, vertex/face layout
// grounded on the same Blender-cube winding the engine's box constructor
// has always used.
func NewBoxHullDef(hx, hy, hz float64) *HullDef {
	hx, hy, hz = math.Abs(hx), math.Abs(hy), math.Abs(hz)
	verts := []lin.V3{
		{X: -hx, Y: -hy, Z: -hz}, // 0
		{X: +hx, Y: -hy, Z: -hz}, // 1
		{X: +hx, Y: +hy, Z: -hz}, // 2
		{X: -hx, Y: +hy, Z: -hz}, // 3
		{X: -hx, Y: -hy, Z: +hz}, // 4
		{X: +hx, Y: -hy, Z: +hz}, // 5
		{X: +hx, Y: +hy, Z: +hz}, // 6
		{X: -hx, Y: +hy, Z: +hz}, // 7
	}
	faces := [][]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}
	def, err := NewHullDef(verts, faces)
	if err != nil {
		panic(err) // box winding is fixed and known-good; a failure here is a library bug.
	}
	return def
}

// Hull is a per-body instance of a HullDef: the shared local descriptor
// plus this body's world transform and cached world-space vertices, face
// normals, and AABB. The cache is recomputed whenever Update is called with
// a new transform.
type Hull struct {
	def    *HullDef
	size   lin.V3 // per-axis scale applied to local vertices before rotation.
	wverts []lin.V3
	wnorms []lin.V3
	aabb   Abox
}

// NewHull creates a Hull bound to the given shared descriptor, sized and
// transformed as given. Update must be called (directly or via NewHull) any
// time the owning body's transform changes.
func NewHull(def *HullDef, transform *lin.T, size lin.V3) *Hull {
	h := &Hull{def: def, size: size}
	h.wverts = make([]lin.V3, len(def.Verts))
	h.wnorms = make([]lin.V3, len(def.faces))
	h.Update(transform)
	return h
}

// Update recomputes world-space vertices, face normals, and the AABB from
// the given transform. Local vertices are scaled per axis before rotation.
func (h *Hull) Update(transform *lin.T) {
	for i, v := range h.def.Verts {
		local := lin.V3{X: v.X * h.size.X, Y: v.Y * h.size.Y, Z: v.Z * h.size.Z}
		h.wverts[i] = *transform.App(&local)
	}
	for i, f := range h.def.faces {
		n := f.normal
		h.wnorms[i] = *lin.NewV3().MultvQ(&n, transform.Rot).Unit()
	}
	h.aabb = aboxFromPoints(h.wverts)
}

// AABB returns the current world-space axis-aligned bounding box.
func (h *Hull) AABB() Abox { return h.aabb }

// Support returns the world vertex maximizing dot(v, d).
func (h *Hull) Support(d lin.V3) lin.V3 {
	best := 0
	bestDot := -lin.Large
	for i, v := range h.wverts {
		dot := v.Dot(&d)
		if dot > bestDot {
			bestDot = dot
			best = i
		}
	}
	return h.wverts[best]
}

// queryFaceDirections returns the face of h most separating h from other:
// for each face (n,w) the candidate separation is dot(n, other.Support(-n)) - w.
// The returned distance is the maximum such separation; a positive value
// means the hulls are disjoint along that face's normal.
func (h *Hull) queryFaceDirections(other *Hull) (face int, dist float64) {
	dist = -lin.Large
	for i, n := range h.wnorms {
		w := n.Dot(&h.wverts[h.def.faces[i].verts[0]])
		neg := lin.NewV3().Neg(&n)
		p := other.Support(*neg)
		d := n.Dot(&p) - w
		if d > dist {
			dist = d
			face = i
		}
	}
	return face, dist
}

// isMinkowskiFace determines whether the arc between face normals a,b (the
// two faces adjacent to one edge) and the arc between c,d (the two faces
// adjacent to the other hull's edge, already negated into Minkowski-
// difference space) cross on the Gauss map -- i.e. whether this edge pair
// can contribute a separating axis at all. Based on Dirk Gregorius's GDC
// 2013 "Separating Axis Test Revisited" edge-pruning test.
func isMinkowskiFace(a, b, c, d lin.V3) bool {
	bxa := lin.NewV3().Cross(&b, &a)
	dxc := lin.NewV3().Cross(&d, &c)
	cba := c.Dot(bxa)
	dba := d.Dot(bxa)
	adc := a.Dot(dxc)
	bdc := b.Dot(dxc)
	return cba*dba < 0 && adc*bdc < 0 && cba*bdc > 0
}

// queryEdgeDirections enumerates edge pairs (one from h, one from other),
// prunes non-contributing pairs via Gauss-map adjacency, and returns the
// maximum signed separation along any remaining axis together with the
// winning edge indices.
func (h *Hull) queryEdgeDirections(other *Hull) (axis lin.V3, dist float64, edgeA, edgeB int) {
	dist = -lin.Large
	edgeA, edgeB = -1, -1
	var center lin.V3 // vertex centroid of h, used to orient each axis away from h.
	for i := range h.wverts {
		center.Add(&center, &h.wverts[i])
	}
	center.Scale(&center, 1/float64(len(h.wverts)))
	for ia, ea := range h.def.edges {
		pa := h.wverts[ea.v0]
		da := lin.NewV3().Sub(&h.wverts[ea.v1], &pa)
		na0, na1 := h.wnorms[ea.f0], h.wnorms[ea.f1]
		for ib, eb := range other.def.edges {
			pb := other.wverts[eb.v0]
			db := lin.NewV3().Sub(&other.wverts[eb.v1], &pb)
			nb0 := *lin.NewV3().Neg(&other.wnorms[eb.f0])
			nb1 := *lin.NewV3().Neg(&other.wnorms[eb.f1])
			if !isMinkowskiFace(na0, na1, nb0, nb1) {
				continue
			}
			cand := lin.NewV3().Cross(da, db)
			lenSqr := cand.LenSqr()
			if lenSqr < lin.Epsilon {
				continue // parallel edges: no contributing axis.
			}
			cand.Unit()
			outward := lin.NewV3().Sub(&pa, &center)
			if cand.Dot(outward) < 0 {
				cand.Neg(cand)
			}
			d := cand.Dot(&pb) - cand.Dot(&pa)
			if d > dist {
				dist, axis, edgeA, edgeB = d, *cand, ia, ib
			}
		}
	}
	return axis, dist, edgeA, edgeB
}

// queryEdge returns the two world-space endpoints of edge i.
func (h *Hull) queryEdge(i int) (a, b lin.V3) {
	e := h.def.edges[i]
	return h.wverts[e.v0], h.wverts[e.v1]
}

// faceVerts returns the world-space vertices of face i, in CCW winding.
func (h *Hull) faceVerts(i int) []lin.V3 {
	f := h.def.faces[i]
	out := make([]lin.V3, len(f.verts))
	for j, vi := range f.verts {
		out[j] = h.wverts[vi]
	}
	return out
}

// faceNormal returns the world-space outward normal of face i.
func (h *Hull) faceNormal(i int) lin.V3 { return h.wnorms[i] }

// adjacentFaces returns the faces neighboring face i (sharing an edge).
func (h *Hull) adjacentFaces(i int) []int {
	var adj []int
	for _, e := range h.def.edges {
		switch i {
		case e.f0:
			adj = append(adj, e.f1)
		case e.f1:
			adj = append(adj, e.f0)
		}
	}
	return adj
}
