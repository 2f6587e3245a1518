package epa

import (
	"container/heap"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/simplex"
)

// Builder incrementally expands a polytope in Minkowski-difference space,
// starting from GJK's terminal tetrahedron. It is pooled (see Pool below) so
// repeated EPA calls don't allocate a fresh builder every time.
type Builder struct {
	pts       points
	triangles []triangle
	free      []int
	queue     triangleQueue
}

// Pool hands out Builders backed by a sync.Pool so callers don't pay an
// allocation per penetration query.
var Pool = sync.Pool{
	New: func() interface{} {
		return &Builder{
			triangles: make([]triangle, 0, 16),
			queue:     make(triangleQueue, 0, 16),
		}
	},
}

// Reset empties the builder for reuse.
func (b *Builder) Reset() {
	b.pts.y = b.pts.y[:0]
	b.pts.p = b.pts.p[:0]
	b.pts.q = b.pts.q[:0]
	b.triangles = b.triangles[:0]
	b.free = b.free[:0]
	b.queue = b.queue[:0]
}

func (b *Builder) liveCount() int { return len(b.triangles) - len(b.free) }

func (b *Builder) allocTriangle() (int, bool) {
	if len(b.free) > 0 {
		idx := b.free[len(b.free)-1]
		b.free = b.free[:len(b.free)-1]
		b.triangles[idx] = triangle{}
		return idx, true
	}
	if b.liveCount() >= MaxTriangles {
		return 0, false
	}
	b.triangles = append(b.triangles, triangle{})
	return len(b.triangles) - 1, true
}

func (b *Builder) freeTriangle(i int) {
	b.triangles[i].removed = true
	b.free = append(b.free, i)
}

// maybeEnqueue pushes t onto the priority queue when it either faces the
// origin (closestLengthSq < 0, meaning the polytope hasn't expanded past it
// yet) or its closest point is strictly interior and within boundSq of the
// origin — the two conditions under which expanding past this triangle can
// still improve the answer.
func (b *Builder) maybeEnqueue(idx int, boundSq float64) {
	t := &b.triangles[idx]
	if t.degenerate {
		return
	}
	if t.closestLengthSq < 0 || (t.closestPointInterior && t.closestLengthSq < boundSq) {
		t.inQueue = true
		heap.Push(&b.queue, queueItem{triIdx: idx, key: t.closestLengthSq})
	}
}

// BuildInitial seeds the polytope with the four faces of the tetrahedron
// GJK converged on. tetra must hold exactly four SimplexPoints.
func (b *Builder) BuildInitial(tetra *simplex.Simplex) error {
	if tetra.Size != 4 {
		return fmt.Errorf("epa: initial simplex has %d vertices, want 4", tetra.Size)
	}

	vi := [4]int{}
	for i := 0; i < 4; i++ {
		p := tetra.Points[i]
		vi[i] = b.pts.add(p.P, p.Q)
	}

	// The four faces of the tetrahedron, each opposite one vertex. Orient
	// each outward by flipping its winding if the raw cross product points
	// toward the opposite vertex.
	type faceSpec struct{ i0, i1, i2, opp int }
	specs := [4]faceSpec{
		{vi[0], vi[1], vi[2], vi[3]},
		{vi[0], vi[2], vi[3], vi[1]},
		{vi[0], vi[3], vi[1], vi[2]},
		{vi[1], vi[3], vi[2], vi[0]},
	}

	triIdx := [4]int{}
	for f, spec := range specs {
		i0, i1, i2 := spec.i0, spec.i1, spec.i2
		y0, y1, y2 := b.pts.y[i0], b.pts.y[i1], b.pts.y[i2]
		n := y1.Sub(y0).Cross(y2.Sub(y0))
		if n.Dot(b.pts.y[spec.opp].Sub(y0)) > 0 {
			i1, i2 = i2, i1
		}
		idx, ok := b.allocTriangle()
		if !ok {
			return fmt.Errorf("epa: triangle pool exhausted seeding initial tetrahedron")
		}
		b.triangles[idx].edges[0].startIndex = i0
		b.triangles[idx].edges[1].startIndex = i1
		b.triangles[idx].edges[2].startIndex = i2
		triIdx[f] = idx
	}

	// Link back-links: every directed edge (s, e) in one face pairs with
	// the reverse directed edge (e, s) in exactly one other face.
	type key struct{ s, e int }
	pending := make(map[key]struct{ tri, edge int })
	for _, ti := range triIdx {
		t := &b.triangles[ti]
		for e := 0; e < 3; e++ {
			s := t.edges[e].startIndex
			d := t.edges[(e+1)%3].startIndex
			if match, ok := pending[key{d, s}]; ok {
				t.edges[e].neighbourTriangle = match.tri
				t.edges[e].neighbourEdge = match.edge
				b.triangles[match.tri].edges[match.edge].neighbourTriangle = ti
				b.triangles[match.tri].edges[match.edge].neighbourEdge = e
				delete(pending, key{d, s})
			} else {
				pending[key{s, d}] = struct{ tri, edge int }{ti, e}
			}
		}
	}

	for _, ti := range triIdx {
		b.triangles[ti].finalize(&b.pts)
		b.maybeEnqueue(ti, maxValue)
	}
	return nil
}

// addPoint expands the polytope to include a new support point (p, q) found
// along fromTriangle's normal: every triangle visible from the new point is
// removed, and the silhouette boundary it leaves behind is stitched to the
// new point with fresh outward-facing triangles. boundSq limits which newly
// created triangles get queued for further expansion (MaxValue for
// unbounded). Returns false if a pool/size cap was hit or the silhouette
// degenerated, in which case the caller should stop expanding and report the
// best face found so far.
func (b *Builder) addPoint(p, q mgl64.Vec3, fromTriangle int, boundSq float64) bool {
	if len(b.pts.y) >= MaxPoints {
		return false
	}
	newIdx := b.pts.add(p, q)
	newY := b.pts.y[newIdx]

	visible := map[int]bool{fromTriangle: true}
	queue := []int{fromTriangle}
	for len(queue) > 0 {
		if len(visible) > MaxEdgeLength {
			return false
		}
		cur := queue[0]
		queue = queue[1:]
		t := &b.triangles[cur]
		for e := 0; e < 3; e++ {
			nb := t.edges[e].neighbourTriangle
			if visible[nb] {
				continue
			}
			nbT := &b.triangles[nb]
			if newY.Sub(nbT.vertex(&b.pts, 0)).Dot(nbT.normal) > 0 {
				visible[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	type boundaryEdge struct {
		startIdx, endIdx        int
		neighbourTri, neighbour int
	}
	var boundary []boundaryEdge
	for idx := range visible {
		t := &b.triangles[idx]
		for e := 0; e < 3; e++ {
			nb := t.edges[e].neighbourTriangle
			if visible[nb] {
				continue
			}
			boundary = append(boundary, boundaryEdge{
				startIdx:     t.edges[e].startIndex,
				endIdx:       t.edges[(e+1)%3].startIndex,
				neighbourTri: nb,
				neighbour:    t.edges[e].neighbourEdge,
			})
		}
	}
	if len(boundary) < 3 || len(boundary) > MaxEdgeLength {
		return false
	}

	for idx := range visible {
		b.freeTriangle(idx)
	}

	newTris := make([]int, len(boundary))
	byStart := make(map[int]int, len(boundary))
	for i, be := range boundary {
		ti, ok := b.allocTriangle()
		if !ok {
			return false
		}
		newTris[i] = ti
		byStart[be.startIdx] = ti

		t := &b.triangles[ti]
		t.edges[0] = edge{startIndex: be.startIdx, neighbourTriangle: be.neighbourTri, neighbourEdge: be.neighbour}
		t.edges[1] = edge{startIndex: be.endIdx}
		t.edges[2] = edge{startIndex: newIdx}
		b.triangles[be.neighbourTri].edges[be.neighbour].neighbourTriangle = ti
		b.triangles[be.neighbourTri].edges[be.neighbour].neighbourEdge = 0
	}
	for i, be := range boundary {
		ti := newTris[i]
		other, ok := byStart[be.endIdx]
		if !ok {
			return false
		}
		b.triangles[ti].edges[1].neighbourTriangle = other
		b.triangles[ti].edges[1].neighbourEdge = 2
		b.triangles[other].edges[2].neighbourTriangle = ti
		b.triangles[other].edges[2].neighbourEdge = 1
	}

	for _, ti := range newTris {
		b.triangles[ti].finalize(&b.pts)
		b.maybeEnqueue(ti, boundSq)
	}
	return true
}

// closestFaceIndex linearly scans every live, non-degenerate triangle for
// the one nearest the origin. It is the fallback used only once, to read
// off the final answer after the priority queue (which drives expansion
// order, not the final read) has drained or a cap stopped expansion early —
// scanning the handful of remaining hull faces once is cheaper than keeping
// a second always-valid heap in sync with every removal.
func (b *Builder) closestFaceIndex() int {
	best := -1
	var bestDist float64
	for i := range b.triangles {
		t := &b.triangles[i]
		if t.removed || t.degenerate {
			continue
		}
		d := t.closestLengthSq
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
