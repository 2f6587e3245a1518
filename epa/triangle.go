package epa

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/simplex"
)

// points is the shared (y, p, q) arena every triangle's vertices index into:
// y is the Minkowski-difference point, p and q are its contributing points
// on shape A and shape B respectively.
type points struct {
	y, p, q []mgl64.Vec3
}

func (pts *points) add(p, q mgl64.Vec3) int {
	idx := len(pts.y)
	pts.y = append(pts.y, p.Sub(q))
	pts.p = append(pts.p, p)
	pts.q = append(pts.q, q)
	return idx
}

// edge is one directed side of a triangle: it starts at the triangle's
// vertex at the same slot and ends at the next vertex (mod 3). Every
// non-removed triangle's edge is paired with exactly one other non-removed
// triangle's edge traversing the same two vertices in reverse.
type edge struct {
	startIndex        int
	neighbourTriangle int
	neighbourEdge     int
}

// triangle is one face of the expanding polytope.
type triangle struct {
	edges [3]edge

	normal   mgl64.Vec3
	centroid mgl64.Vec3

	// closestLengthSq is negative when the triangle's plane still has the
	// origin on its outward side (the polytope hasn't yet expanded past
	// it); otherwise it is the squared distance from the origin to the
	// triangle's closest point.
	closestLengthSq float64

	// lambda holds two of the triangle's three barycentric weights for its
	// closest point, the third implied by summing to 1. lambdaRelativeTo0
	// selects which vertex is left implicit: false (chosen when vertex 0
	// carries the least weight) leaves vertex 1 implicit, with lambda holding
	// the weights of vertices 0 and 2; true leaves vertex 0 implicit, with
	// lambda holding the weights of vertices 1 and 2.
	lambda            [2]float64
	lambdaRelativeTo0 bool

	closestPointInterior bool
	degenerate           bool
	removed              bool
	inQueue              bool
}

func (t *triangle) vertex(pts *points, slot int) mgl64.Vec3 {
	return pts.y[t.edges[slot].startIndex]
}

// finalize computes a triangle's normal, closest-point classification, and
// cached barycentric weights from its three vertex indices (already stored
// in t.edges[*].startIndex). The normal is the cross product of whichever
// two of the triangle's three edges are shortest, the better-conditioned
// choice when the third edge is much longer.
func (t *triangle) finalize(pts *points) {
	y0, y1, y2 := t.vertex(pts, 0), t.vertex(pts, 1), t.vertex(pts, 2)
	e10 := y1.Sub(y0)
	e20 := y2.Sub(y0)
	e21 := y2.Sub(y1)

	l10, l20, l21 := e10.Dot(e10), e20.Dot(e20), e21.Dot(e21)
	var normal mgl64.Vec3
	switch {
	case l21 >= l10 && l21 >= l20:
		normal = e10.Cross(e20)
	case l20 >= l10 && l20 >= l21:
		normal = e10.Cross(e21)
	default:
		normal = e20.Cross(e21)
	}

	lenSq := normal.Dot(normal)
	if lenSq < MinTriangleArea {
		t.degenerate = true
		t.normal = mgl64.Vec3{0, 0, 0}
		t.closestLengthSq = math.MaxFloat64
		return
	}

	normal = normal.Mul(1 / math.Sqrt(lenSq))
	t.normal = normal
	t.centroid = y0.Add(y1).Add(y2).Mul(1.0 / 3)

	planeOffset := normal.Dot(y0)
	cp := simplex.ClosestOnTriangle(y0, y1, y2, false, 1e-20)
	t.closestPointInterior = cp.Set == 0b111

	if planeOffset < 0 {
		// Origin is on the outward side of this face: the polytope must
		// still expand past it.
		t.closestLengthSq = planeOffset
	} else {
		t.closestLengthSq = cp.Point.Dot(cp.Point)
	}

	if cp.Weights[0] <= cp.Weights[1] && cp.Weights[0] <= cp.Weights[2] {
		t.lambdaRelativeTo0 = false
		t.lambda = [2]float64{cp.Weights[0], cp.Weights[2]}
	} else {
		t.lambdaRelativeTo0 = true
		t.lambda = [2]float64{cp.Weights[1], cp.Weights[2]}
	}
}

// barycentric reconstructs the full (w0, w1, w2) weight triple from the
// cached lambda pair.
func (t *triangle) barycentric() (w0, w1, w2 float64) {
	if t.lambdaRelativeTo0 {
		w1, w2 = t.lambda[0], t.lambda[1]
		w0 = 1 - w1 - w2
	} else {
		w0, w2 = t.lambda[0], t.lambda[1]
		w1 = 1 - w0 - w2
	}
	return
}

// queueItem is one entry in the expansion priority queue: a candidate
// triangle and the closestLengthSq it had when queued. A triangle can be
// queued, removed, and never revisited; the heap just skips stale entries
// on pop rather than supporting arbitrary removal.
type queueItem struct {
	triIdx int
	key    float64
}

// triangleQueue is a container/heap min-heap on closestLengthSq, per the
// expanding polytope's invariant that the most urgent triangle (the one
// facing the origin, or else the nearest interior foot) is always processed
// next.
type triangleQueue []queueItem

func (q triangleQueue) Len() int            { return len(q) }
func (q triangleQueue) Less(i, j int) bool  { return q[i].key < q[j].key }
func (q triangleQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *triangleQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *triangleQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
