// Package epa implements the Expanding Polytope Algorithm: given the
// tetrahedron GJK converges to when two convex shapes overlap, it expands a
// polytope in Minkowski-difference space toward the origin until it finds
// the face closest to it, yielding the penetration depth, contact normal,
// and witness points on each shape.
package epa

import (
	"container/heap"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/simplex"
	"github.com/rivenphys/narrowphase/support"
)

// Result is the penetration-depth outcome of Run: contact normal (pointing
// from shape A toward shape B), penetration depth, and witness points on
// each shape's surface.
type Result struct {
	Normal mgl64.Vec3
	Depth  float64
	PointA mgl64.Vec3
	PointB mgl64.Vec3
}

// Run expands tetra (GJK's terminal simplex) into the Minkowski difference
// of supportA and supportB until the closest polytope face converges, then
// reconstructs witness points from that face's cached barycentric weights.
//
// The priority queue always holds every triangle still eligible to improve
// the answer (facing the origin, or interior-footed and within bound), so
// the expansion loop just pops the heap's minimum each iteration; only the
// final read-off, after the heap drains or a size cap is hit, falls back to
// a linear scan over the handful of surviving faces.
func Run(supportA, supportB support.Function, tetra *simplex.Simplex) (Result, error) {
	b := Pool.Get().(*Builder)
	b.Reset()
	defer Pool.Put(b)

	if err := b.BuildInitial(tetra); err != nil {
		return Result{}, err
	}

	for b.queue.Len() > 0 {
		item := heap.Pop(&b.queue).(queueItem)
		tri := &b.triangles[item.triIdx]
		if tri.removed {
			continue
		}
		tri.inQueue = false

		w := supportA.GetSupport(tri.normal)
		v := supportB.GetSupport(tri.normal.Mul(-1))
		y := w.Sub(v)

		extension := tri.normal.Dot(y) - tri.normal.Dot(tri.vertex(&b.pts, 0))
		if extension < ConvergenceTolerance {
			return faceResult(tri, b), nil
		}

		if !b.addPoint(w, v, item.triIdx, maxValue) {
			break
		}
	}

	idx := b.closestFaceIndex()
	if idx < 0 {
		return Result{}, fmt.Errorf("epa: polytope has no faces")
	}
	return faceResult(&b.triangles[idx], b), nil
}

func faceResult(t *triangle, b *Builder) Result {
	i0 := t.edges[0].startIndex
	i1 := t.edges[1].startIndex
	i2 := t.edges[2].startIndex
	w0, w1, w2 := t.barycentric()

	pointA := b.pts.p[i0].Mul(w0).Add(b.pts.p[i1].Mul(w1)).Add(b.pts.p[i2].Mul(w2))
	pointB := b.pts.q[i0].Mul(w0).Add(b.pts.q[i1].Mul(w1)).Add(b.pts.q[i2].Mul(w2))
	depth := t.normal.Dot(t.vertex(&b.pts, 0))

	return Result{Normal: t.normal, Depth: depth, PointA: pointA, PointB: pointB}
}
