// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/galvanized/impulse/math/lin"
)

// bvhNil marks an absent child/parent/freelist link.
const bvhNil uint32 = math.MaxUint32

// bvhFatten pads a leaf's tight AABB so that small motions don't force a
// tree update every step.
const bvhFatten = 0.1

// bvhNode is one slot of the BVH's slab-allocated node pool. Leaves have
// left == bvhNil and carry a body reference in leafRef; internal nodes
// have both children set and an invalid leafRef.
type bvhNode struct {
	box          Abox
	parent       uint32
	left, right  uint32
	leafRef      BodyRef
	isLeaf       bool
}

// bvh is a dynamic bounding volume hierarchy over fattened body AABBs,
// bulk-built with binned SAH and maintained incrementally thereafter via
// rotation-balanced insert/remove.
type bvh struct {
	nodes     []bvhNode
	free      uint32
	root      uint32
	nodeOf    map[BodyRef]uint32
	ops       int // inserts+removes since the last bonsai re-prune.
	opsBudget int
}

func newBVH() *bvh {
	return &bvh{root: bvhNil, free: bvhNil, nodeOf: map[BodyRef]uint32{}, opsBudget: 256}
}

func (t *bvh) allocNode() uint32 {
	if t.free != bvhNil {
		idx := t.free
		t.free = t.nodes[idx].left
		return idx
	}
	t.nodes = append(t.nodes, bvhNode{})
	return uint32(len(t.nodes) - 1)
}

func (t *bvh) freeNode(idx uint32) {
	t.nodes[idx] = bvhNode{left: t.free, right: bvhNil}
	t.free = idx
}

// Insert adds a body's current AABB to the tree, fattened by bvhFatten.
func (t *bvh) Insert(ref BodyRef, tight Abox) {
	box := *(&tight)
	box.Expand(bvhFatten)

	leaf := t.allocNode()
	t.nodes[leaf] = bvhNode{box: box, parent: bvhNil, left: bvhNil, right: bvhNil, leafRef: ref, isLeaf: true}
	t.nodeOf[ref] = leaf
	t.insertLeaf(leaf)

	t.ops++
	if t.ops >= t.opsBudget {
		t.bonsaiPrune()
		t.ops = 0
	}
}

// Remove deletes a body from the tree.
func (t *bvh) Remove(ref BodyRef) {
	leaf, ok := t.nodeOf[ref]
	if !ok {
		return
	}
	delete(t.nodeOf, ref)
	t.removeLeaf(leaf)
	t.freeNode(leaf)
	t.ops++
}

// Update refreshes a body's position in the tree when its tight AABB has
// moved outside the cached fattened box; a no-op otherwise.
func (t *bvh) Update(ref BodyRef, tight Abox) {
	leaf, ok := t.nodeOf[ref]
	if !ok {
		return
	}
	if t.nodes[leaf].box.Contains(&tight) {
		return
	}
	t.removeLeaf(leaf)
	box := tight
	box.Expand(bvhFatten)
	t.nodes[leaf].box = box
	t.insertLeaf(leaf)
	t.ops++
	if t.ops >= t.opsBudget {
		t.bonsaiPrune()
		t.ops = 0
	}
}

// insertLeaf walks down from the root picking, at each step, whichever
// child's enlargement to include the new leaf costs least (the classic
// Catto/Ericson dynamic-tree insertion heuristic), then splits that leaf
// into a new internal node pairing it with the inserted leaf.
func (t *bvh) insertLeaf(leaf uint32) {
	if t.root == bvhNil {
		t.root = leaf
		t.nodes[leaf].parent = bvhNil
		return
	}

	leafBox := t.nodes[leaf].box
	cur := t.root
	for !t.nodes[cur].isLeaf {
		n := &t.nodes[cur]
		left, right := n.left, n.right
		var combined Abox
		combined.Union(&n.box, &leafBox)
		area := n.box.SurfaceArea()
		combinedArea := combined.SurfaceArea()
		costHere := 2 * combinedArea
		costInherit := 2 * (combinedArea - area)

		costLeft := childCost(t, left, leafBox) + costInherit
		costRight := childCost(t, right, leafBox) + costInherit
		if costHere < costLeft && costHere < costRight {
			break
		}
		if costLeft < costRight {
			cur = left
		} else {
			cur = right
		}
	}

	sibling := cur
	oldParent := t.nodes[sibling].parent
	newParent := t.allocNode()
	t.nodes[newParent].parent = oldParent
	t.nodes[newParent].box.Union(&leafBox, &t.nodes[sibling].box)
	t.nodes[newParent].isLeaf = false
	t.nodes[newParent].left = sibling
	t.nodes[newParent].right = leaf
	t.nodes[sibling].parent = newParent
	t.nodes[leaf].parent = newParent

	if oldParent == bvhNil {
		t.root = newParent
	} else {
		if t.nodes[oldParent].left == sibling {
			t.nodes[oldParent].left = newParent
		} else {
			t.nodes[oldParent].right = newParent
		}
	}

	t.refitUpward(newParent)
}

func childCost(t *bvh, child uint32, leafBox Abox) float64 {
	var combined Abox
	combined.Union(&t.nodes[child].box, &leafBox)
	if t.nodes[child].isLeaf {
		return combined.SurfaceArea()
	}
	return combined.SurfaceArea() - t.nodes[child].box.SurfaceArea()
}

// removeLeaf detaches a leaf, collapsing its now-childless parent and
// promoting the sibling in its place.
func (t *bvh) removeLeaf(leaf uint32) {
	parent := t.nodes[leaf].parent
	if parent == bvhNil {
		t.root = bvhNil
		return
	}
	grandparent := t.nodes[parent].parent
	var sibling uint32
	if t.nodes[parent].left == leaf {
		sibling = t.nodes[parent].right
	} else {
		sibling = t.nodes[parent].left
	}

	if grandparent == bvhNil {
		t.root = sibling
		t.nodes[sibling].parent = bvhNil
	} else {
		if t.nodes[grandparent].left == parent {
			t.nodes[grandparent].left = sibling
		} else {
			t.nodes[grandparent].right = sibling
		}
		t.nodes[sibling].parent = grandparent
		t.refitUpward(grandparent)
	}
	t.freeNode(parent)
}

// refitUpward recomputes ancestor AABBs and applies a single rotation
// step at each level to keep the tree reasonably balanced, matching the
// incremental SAH-rotation strategy of dynamic bounding volume trees.
func (t *bvh) refitUpward(node uint32) {
	for node != bvhNil {
		left, right := t.nodes[node].left, t.nodes[node].right
		t.nodes[node].box.Union(&t.nodes[left].box, &t.nodes[right].box)
		t.tryRotate(node)
		node = t.nodes[node].parent
	}
}

// tryRotate swaps a node's child with its grandchild when doing so
// reduces the combined surface area, a cheap local rebalancing step run
// after every structural change.
func (t *bvh) tryRotate(node uint32) {
	n := &t.nodes[node]
	if n.isLeaf {
		return
	}
	left, right := n.left, n.right
	if !t.nodes[left].isLeaf && t.tryRotateChild(node, left, right) {
		return
	}
	if !t.nodes[right].isLeaf {
		t.tryRotateChild(node, right, left)
	}
}

func (t *bvh) tryRotateChild(parent, internal, other uint32) bool {
	a, b := t.nodes[internal].left, t.nodes[internal].right
	currentArea := t.nodes[internal].box.SurfaceArea()

	var swapA, swapB Abox
	swapA.Union(&t.nodes[other].box, &t.nodes[b].box)
	swapB.Union(&t.nodes[other].box, &t.nodes[a].box)

	if swapA.SurfaceArea() < currentArea && swapA.SurfaceArea() <= swapB.SurfaceArea() {
		t.swapChildren(parent, other, internal, a)
		return true
	} else if swapB.SurfaceArea() < currentArea {
		t.swapChildren(parent, other, internal, b)
		return true
	}
	return false
}

// swapChildren exchanges grandchild `moved` (a child of `internal`) with
// `other` (internal's sibling under parent).
func (t *bvh) swapChildren(parent, other, internal, moved uint32) {
	if t.nodes[parent].left == other {
		t.nodes[parent].left = moved
	} else {
		t.nodes[parent].right = moved
	}
	if t.nodes[internal].left == moved {
		t.nodes[internal].left = other
	} else {
		t.nodes[internal].right = other
	}
	t.nodes[moved].parent = parent
	t.nodes[other].parent = internal
	var box Abox
	box.Union(&t.nodes[t.nodes[internal].left].box, &t.nodes[t.nodes[internal].right].box)
	t.nodes[internal].box = box
}

// Query collects every leaf body whose fattened AABB overlaps box.
func (t *bvh) Query(box Abox, out []BodyRef) []BodyRef {
	if t.root == bvhNil {
		return out
	}
	q := newQueue(12)
	_ = q.enqueue(t.root)
	for !q.empty() {
		idx := q.dequeue()
		n := &t.nodes[idx]
		if !n.box.Overlaps(&box) {
			continue
		}
		if n.isLeaf {
			out = append(out, n.leafRef)
			continue
		}
		// The queue holds the pending nodes of the breadth-first walk, at
		// most 2^12 at once. If it fills, the walk stops here and the hits
		// found so far are returned.
		if q.enqueue(n.left) != nil || q.enqueue(n.right) != nil {
			break
		}
	}
	return out
}

// Pairs enumerates every pair of leaves whose fattened AABBs overlap,
// used once per step to generate broadphase candidate pairs.
func (t *bvh) Pairs() [][2]BodyRef {
	var pairs [][2]BodyRef
	if t.root == bvhNil {
		return pairs
	}
	t.selfCross(t.root, t.root, &pairs)
	return pairs
}

// selfCross recursively descends pairs of (possibly equal) subtrees
// rooted at na and nb, emitting a leaf/leaf pair exactly once whenever
// their boxes overlap. Splitting the larger of the two whenever both are
// internal keeps this close to the tree's O(n log n) typical cost rather
// than the O(n^2) all-leaf-pairs scan a flat pair test would need.
func (t *bvh) selfCross(na, nb uint32, pairs *[][2]BodyRef) {
	a, b := &t.nodes[na], &t.nodes[nb]
	if !a.box.Overlaps(&b.box) {
		return
	}
	switch {
	case a.isLeaf && b.isLeaf:
		if na != nb {
			*pairs = append(*pairs, [2]BodyRef{a.leafRef, b.leafRef})
		}
	case a.isLeaf:
		t.selfCross(na, b.left, pairs)
		t.selfCross(na, b.right, pairs)
	case b.isLeaf:
		t.selfCross(a.left, nb, pairs)
		t.selfCross(a.right, nb, pairs)
	case na == nb:
		// splitting the same internal node against itself: recurse into
		// the three distinct combinations of its two children.
		t.selfCross(a.left, a.left, pairs)
		t.selfCross(a.right, a.right, pairs)
		t.selfCross(a.left, a.right, pairs)
	default:
		t.selfCross(a.left, b.left, pairs)
		t.selfCross(a.left, b.right, pairs)
		t.selfCross(a.right, b.left, pairs)
		t.selfCross(a.right, b.right, pairs)
	}
}

func (t *bvh) collectLeaves(node uint32, out *[]uint32) {
	if node == bvhNil {
		return
	}
	n := &t.nodes[node]
	if n.isLeaf {
		*out = append(*out, node)
		return
	}
	t.collectLeaves(n.left, out)
	t.collectLeaves(n.right, out)
}

// Trace walks the tree along a segment from origin o to o+d (parametrized t
// in [0, 1], d need not be unit length), treating each node's box as swept
// by a volume of the given size -- every box is expanded by half(size) on
// each axis before the slab test -- and returns every leaf whose expanded
// box the segment crosses (0 <= tMin <= 1 and tMin <= tMax).
func (t *bvh) Trace(o, d, size lin.V3, out []BodyRef) []BodyRef {
	if t.root == bvhNil {
		return out
	}
	inv := lin.V3{X: safeInv(d.X), Y: safeInv(d.Y), Z: safeInv(d.Z)}
	half := lin.V3{X: size.X * 0.5, Y: size.Y * 0.5, Z: size.Z * 0.5}
	q := newQueue(12)
	_ = q.enqueue(t.root)
	for !q.empty() {
		idx := q.dequeue()
		n := &t.nodes[idx]
		if !rayBoxSlab(o, inv, half, &n.box) {
			continue
		}
		if n.isLeaf {
			out = append(out, n.leafRef)
			continue
		}
		if q.enqueue(n.left) != nil || q.enqueue(n.right) != nil {
			break
		}
	}
	return out
}

func safeInv(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}
	return 1.0 / x
}

// rayBoxSlab tests segment o+t*d (1/d given as inv), t in [0,1], against box
// expanded by half on each axis -- i.e. the volume box's Minkowski sum with
// a box of half-extents half, the standard way to turn a point-ray test
// into a swept-volume test.
func rayBoxSlab(o, inv, half lin.V3, box *Abox) bool {
	tMin, tMax := 0.0, 1.0

	t1 := (box.Sx - half.X - o.X) * inv.X
	t2 := (box.Lx + half.X - o.X) * inv.X
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tMin, tMax = math.Max(tMin, t1), math.Min(tMax, t2)

	t1 = (box.Sy - half.Y - o.Y) * inv.Y
	t2 = (box.Ly + half.Y - o.Y) * inv.Y
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tMin, tMax = math.Max(tMin, t1), math.Min(tMax, t2)
	if tMin > tMax {
		return false
	}

	t1 = (box.Sz - half.Z - o.Z) * inv.Z
	t2 = (box.Lz + half.Z - o.Z) * inv.Z
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tMin, tMax = math.Max(tMin, t1), math.Min(tMax, t2)
	return tMin <= tMax
}

// bonsaiThreshold is the fraction of the root's SAH cost below which a
// branch is considered cheap enough to rebuild from scratch by bonsaiPrune.
const bonsaiThreshold = 0.05

// bonsaiPrune is a post-build optimization run periodically (every
// opsBudget structural changes) rather than every step: incremental
// insert/remove keeps the tree valid but can let it drift from
// SAH-optimal after many updates. It first runs a bottom-up rotation pass
// over every internal node, then walks back down from the root: any
// branch whose SAH cost is at or below bonsaiThreshold of the root's cost
// is freed wholesale (its subtree returned to the freelist) and its
// leaves re-inserted one at a time via the incremental path; branches
// above the threshold are descended into instead. This rebuilds only the
// cheap, probably-stale corners of the tree while leaving its dense upper
// levels alone -- a bonsai tree gets an occasional hard prune, not
// constant full replanting.
func (t *bvh) bonsaiPrune() {
	if t.root == bvhNil || t.nodes[t.root].isLeaf {
		return
	}
	t.bottomUpRotate(t.root)
	rootCost := t.nodes[t.root].box.SurfaceArea()
	t.prunePass(t.root, rootCost)
}

// bottomUpRotate visits every internal node post-order, calling tryRotate
// only after both children have already been rotated.
func (t *bvh) bottomUpRotate(node uint32) {
	n := &t.nodes[node]
	if n.isLeaf {
		return
	}
	left, right := n.left, n.right
	t.bottomUpRotate(left)
	t.bottomUpRotate(right)
	t.tryRotate(node)
}

// prunePass descends from node, freeing and reinserting any branch whose
// surface-area cost is at or below bonsaiThreshold of rootCost.
func (t *bvh) prunePass(node uint32, rootCost float64) {
	if node == bvhNil || t.nodes[node].isLeaf {
		return
	}
	if t.nodes[node].box.SurfaceArea() <= bonsaiThreshold*rootCost {
		var leafIdx []uint32
		t.collectLeaves(node, &leafIdx)
		refs := make([]BodyRef, len(leafIdx))
		boxes := make([]Abox, len(leafIdx))
		for i, idx := range leafIdx {
			refs[i] = t.nodes[idx].leafRef
			boxes[i] = t.nodes[idx].box
		}
		t.removeLeaf(node)
		t.freeSubtree(node)
		for i, ref := range refs {
			leaf := t.allocNode()
			t.nodes[leaf] = bvhNode{box: boxes[i], parent: bvhNil, left: bvhNil, right: bvhNil, leafRef: ref, isLeaf: true}
			t.nodeOf[ref] = leaf
			t.insertLeaf(leaf)
		}
		return
	}
	left, right := t.nodes[node].left, t.nodes[node].right
	t.prunePass(left, rootCost)
	t.prunePass(right, rootCost)
}

// freeSubtree returns every node slot under (and including) node to the
// freelist, post-order so a node is only freed after both its children.
func (t *bvh) freeSubtree(node uint32) {
	if t.nodes[node].isLeaf {
		t.freeNode(node)
		return
	}
	left, right := t.nodes[node].left, t.nodes[node].right
	t.freeSubtree(left)
	t.freeSubtree(right)
	t.freeNode(node)
}

// Build replaces the tree wholesale with a binned-SAH bulk build over refs
// and their boxes (each fattened by bvhFatten, matching Insert). This is
// the "Bulk build" construction strategy -- appropriate for loading a
// batch of bodies at once (e.g. static level geometry) -- as distinct from
// the incremental insert/bonsai-prune path used for a tree that is
// already live and being maintained step to step.
func (t *bvh) Build(refs []BodyRef, boxes []Abox) error {
	t.nodes = t.nodes[:0]
	t.free = bvhNil
	t.nodeOf = map[BodyRef]uint32{}
	t.root = bvhNil
	t.ops = 0
	if len(refs) == 0 {
		return nil
	}
	items := make([]sahItem, len(refs))
	for i, ref := range refs {
		box := boxes[i]
		box.Expand(bvhFatten)
		items[i] = sahItem{ref: ref, box: box}
	}
	root, err := t.sahBuild(items)
	if err != nil {
		return err
	}
	t.nodes[root].parent = bvhNil
	t.root = root
	return nil
}

// sahItem is one leaf's payload during bulk build, before it has a node
// slot assigned.
type sahItem struct {
	ref BodyRef
	box Abox
}

// sahBuild recursively partitions items using binned surface-area-
// heuristic cost estimation: for each of 3 axes, items are bucketed into
// a fixed number of bins by centroid, bin bounds/costs are accumulated,
// and the cheapest split plane across all axes and bins is chosen. Falls
// back to a median split on the largest axis when no bin split leaves
// items on both sides (e.g. a near-degenerate, coplanar-centroid cluster).
// The cost of not splitting is not considered.
func (t *bvh) sahBuild(items []sahItem) (uint32, error) {
	if len(items) == 0 {
		return bvhNil, newError(PartitionDegenerate, "sahBuild called with an empty leaf range")
	}
	if len(items) == 1 {
		leaf := t.allocNode()
		t.nodes[leaf] = bvhNode{box: items[0].box, parent: bvhNil, left: bvhNil, right: bvhNil, leafRef: items[0].ref, isLeaf: true}
		t.nodeOf[items[0].ref] = leaf
		return leaf, nil
	}

	const bins = 12
	var bounds Abox
	bounds = items[0].box
	var centroidBounds Abox
	centroidBounds = Abox{Sx: bounds.Center().X, Sy: bounds.Center().Y, Sz: bounds.Center().Z,
		Lx: bounds.Center().X, Ly: bounds.Center().Y, Lz: bounds.Center().Z}
	for _, it := range items[1:] {
		bounds.Union(&bounds, &it.box)
		c := it.box.Center()
		centroidBounds.Sx, centroidBounds.Sy, centroidBounds.Sz = minf(centroidBounds.Sx, c.X), minf(centroidBounds.Sy, c.Y), minf(centroidBounds.Sz, c.Z)
		centroidBounds.Lx, centroidBounds.Ly, centroidBounds.Lz = maxf(centroidBounds.Lx, c.X), maxf(centroidBounds.Ly, c.Y), maxf(centroidBounds.Lz, c.Z)
	}

	bestAxis, bestBin, bestCost := -1, -1, math.Inf(1)
	extents := [3]float64{centroidBounds.Lx - centroidBounds.Sx, centroidBounds.Ly - centroidBounds.Sy, centroidBounds.Lz - centroidBounds.Sz}

	for axis := 0; axis < 3; axis++ {
		if extents[axis] < lin.Epsilon {
			continue
		}
		type bin struct {
			box   Abox
			count int
		}
		var binSet [bins]bin
		for _, it := range items {
			c := centroidOf(it.box, axis)
			lo := centroidMin(centroidBounds, axis)
			bi := int(float64(bins) * (c - lo) / extents[axis])
			if bi >= bins {
				bi = bins - 1
			}
			if bi < 0 {
				bi = 0
			}
			if binSet[bi].count == 0 {
				binSet[bi].box = it.box
			} else {
				binSet[bi].box.Union(&binSet[bi].box, &it.box)
			}
			binSet[bi].count++
		}

		for split := 1; split < bins; split++ {
			var leftBox, rightBox Abox
			leftCount, rightCount := 0, 0
			leftInit, rightInit := false, false
			for i := 0; i < split; i++ {
				if binSet[i].count == 0 {
					continue
				}
				if !leftInit {
					leftBox, leftInit = binSet[i].box, true
				} else {
					leftBox.Union(&leftBox, &binSet[i].box)
				}
				leftCount += binSet[i].count
			}
			for i := split; i < bins; i++ {
				if binSet[i].count == 0 {
					continue
				}
				if !rightInit {
					rightBox, rightInit = binSet[i].box, true
				} else {
					rightBox.Union(&rightBox, &binSet[i].box)
				}
				rightCount += binSet[i].count
			}
			if leftCount == 0 || rightCount == 0 {
				continue
			}
			cost := leftBox.SurfaceArea()*float64(leftCount) + rightBox.SurfaceArea()*float64(rightCount)
			if cost < bestCost {
				bestCost, bestAxis, bestBin = cost, axis, split
			}
		}
	}

	if bestAxis < 0 {
		return t.medianSplitBuild(items, bounds)
	}

	lo := centroidMin(centroidBounds, bestAxis)
	var left, right []sahItem
	for _, it := range items {
		c := centroidOf(it.box, bestAxis)
		bi := int(float64(bins) * (c - lo) / extents[bestAxis])
		if bi >= bins {
			bi = bins - 1
		}
		if bi < bestBin {
			left = append(left, it)
		} else {
			right = append(right, it)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return t.medianSplitBuild(items, bounds)
	}

	node := t.allocNode()
	leftIdx, err := t.sahBuild(left)
	if err != nil {
		return bvhNil, err
	}
	rightIdx, err := t.sahBuild(right)
	if err != nil {
		return bvhNil, err
	}
	var box Abox
	box.Union(&t.nodes[leftIdx].box, &t.nodes[rightIdx].box)
	t.nodes[node] = bvhNode{box: box, left: leftIdx, right: rightIdx, isLeaf: false}
	t.nodes[leftIdx].parent, t.nodes[rightIdx].parent = node, node
	return node, nil
}

// medianSplitBuild is the near-degenerate-partition fallback: sort by the
// bounding box's longest axis and split the item list at its midpoint.
// items is always non-empty here (callers only reach it with len(items)
// >= 2), so the only error this can propagate is from the recursive calls.
func (t *bvh) medianSplitBuild(items []sahItem, bounds Abox) (uint32, error) {
	dx, dy, dz := bounds.Lx-bounds.Sx, bounds.Ly-bounds.Sy, bounds.Lz-bounds.Sz
	axis := 0
	if dy > dx && dy >= dz {
		axis = 1
	} else if dz > dx && dz >= dy {
		axis = 2
	}
	sortByCentroid(items, axis)
	mid := len(items) / 2
	node := t.allocNode()
	leftIdx, err := t.sahBuild(items[:mid])
	if err != nil {
		return bvhNil, err
	}
	rightIdx, err := t.sahBuild(items[mid:])
	if err != nil {
		return bvhNil, err
	}
	var box Abox
	box.Union(&t.nodes[leftIdx].box, &t.nodes[rightIdx].box)
	t.nodes[node] = bvhNode{box: box, left: leftIdx, right: rightIdx, isLeaf: false}
	t.nodes[leftIdx].parent, t.nodes[rightIdx].parent = node, node
	return node, nil
}

func sortByCentroid(items []sahItem, axis int) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && centroidOf(items[j].box, axis) < centroidOf(items[j-1].box, axis); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

func centroidOf(box Abox, axis int) float64 {
	c := box.Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

func centroidMin(bounds Abox, axis int) float64 {
	switch axis {
	case 0:
		return bounds.Sx
	case 1:
		return bounds.Sy
	default:
		return bounds.Sz
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
