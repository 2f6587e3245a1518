// Package shapes supplements the narrowphase core with the concrete convex
// shape adapters a caller actually collides: Sphere, Box, Capsule, Plane,
// ConvexHull, and Triangle, plus Transformed/Scaled wrappers.
package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase"
)

// Sphere is a ball of the given radius centered at the origin in local
// space; its entire boundary is expressed as convex radius around a
// zero-extent core.
type Sphere struct {
	Radius float64
}

func (s Sphere) Kind() narrowphase.Kind { return narrowphase.KindSphere }

func (s Sphere) Support(mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{0, 0, 0} }

func (s Sphere) ConvexRadius() float64 { return s.Radius }

func (s Sphere) LocalBounds() narrowphase.AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return narrowphase.AABB{Min: r.Mul(-1), Max: r}
}

// Box is an axis-aligned (in local space) rectangular prism defined by its
// half-extents.
type Box struct {
	HalfExtents mgl64.Vec3
}

func (b Box) Kind() narrowphase.Kind { return narrowphase.KindBox }

func (b Box) Support(direction mgl64.Vec3) mgl64.Vec3 {
	sign := func(x float64) float64 {
		if x < 0 {
			return -1
		}
		return 1
	}
	return mgl64.Vec3{
		sign(direction.X()) * b.HalfExtents.X(),
		sign(direction.Y()) * b.HalfExtents.Y(),
		sign(direction.Z()) * b.HalfExtents.Z(),
	}
}

func (b Box) ConvexRadius() float64 { return 0 }

func (b Box) LocalBounds() narrowphase.AABB {
	return narrowphase.AABB{Min: b.HalfExtents.Mul(-1), Max: b.HalfExtents}
}

// SupportingFace returns the four corners of whichever of the box's six
// faces is most nearly aligned with direction.
func (b Box) SupportingFace(direction mgl64.Vec3) []mgl64.Vec3 {
	axis, sign := dominantAxis(direction)
	h := b.HalfExtents

	face := make([]mgl64.Vec3, 4)
	signs := [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	u, v := (axis+1)%3, (axis+2)%3
	for i, s := range signs {
		var corner mgl64.Vec3
		corner[axis] = sign * h[axis]
		corner[u] = s[0] * h[u]
		corner[v] = s[1] * h[v]
		face[i] = corner
	}
	return face
}

// dominantAxis returns the axis (0=X, 1=Y, 2=Z) and sign of direction's
// largest-magnitude component.
func dominantAxis(direction mgl64.Vec3) (axis int, sign float64) {
	best := 0
	for i := 1; i < 3; i++ {
		if math.Abs(direction[i]) > math.Abs(direction[best]) {
			best = i
		}
	}
	if direction[best] < 0 {
		return best, -1
	}
	return best, 1
}

// Capsule is a line segment of the given half-length along the local Y axis,
// inflated by radius — a cylinder with hemispherical caps.
type Capsule struct {
	HalfLength float64
	Radius     float64
}

func (c Capsule) Kind() narrowphase.Kind { return narrowphase.KindCapsule }

func (c Capsule) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.Y() >= 0 {
		return mgl64.Vec3{0, c.HalfLength, 0}
	}
	return mgl64.Vec3{0, -c.HalfLength, 0}
}

func (c Capsule) ConvexRadius() float64 { return c.Radius }

func (c Capsule) LocalBounds() narrowphase.AABB {
	r := mgl64.Vec3{c.Radius, c.Radius, c.Radius}
	top := mgl64.Vec3{0, c.HalfLength, 0}
	return narrowphase.AABB{Min: top.Mul(-1).Sub(r), Max: top.Add(r)}
}

// Plane is a finite stand-in for an infinite half-space: queries against it
// use a very large but finite support so it can participate in the same
// GJK/EPA pipeline as bounded shapes. Normal must be a unit vector; the
// plane passes through the origin offset along Normal by -Distance.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

const planeHalfSpan = 1e4

func (p Plane) Kind() narrowphase.Kind { return narrowphase.KindPlane }

func (p Plane) Support(direction mgl64.Vec3) mgl64.Vec3 {
	tangent1, tangent2 := tangentBasis(p.Normal)
	center := p.Normal.Mul(-p.Distance)

	alongNormal := -planeHalfSpan
	if direction.Dot(p.Normal) >= 0 {
		alongNormal = 0
	}
	s1 := planeHalfSpan
	if direction.Dot(tangent1) < 0 {
		s1 = -planeHalfSpan
	}
	s2 := planeHalfSpan
	if direction.Dot(tangent2) < 0 {
		s2 = -planeHalfSpan
	}

	return center.Add(p.Normal.Mul(alongNormal)).Add(tangent1.Mul(s1)).Add(tangent2.Mul(s2))
}

func (p Plane) ConvexRadius() float64 { return 0 }

// SupportingFace returns the finite patch's four corners, regardless of
// direction — the whole plane is a single flat face.
func (p Plane) SupportingFace(mgl64.Vec3) []mgl64.Vec3 {
	tangent1, tangent2 := tangentBasis(p.Normal)
	center := p.Normal.Mul(-p.Distance)
	t1 := tangent1.Mul(planeHalfSpan)
	t2 := tangent2.Mul(planeHalfSpan)
	return []mgl64.Vec3{
		center.Add(t1).Add(t2),
		center.Sub(t1).Add(t2),
		center.Sub(t1).Sub(t2),
		center.Add(t1).Sub(t2),
	}
}

func (p Plane) LocalBounds() narrowphase.AABB {
	span := mgl64.Vec3{planeHalfSpan, planeHalfSpan, planeHalfSpan}
	center := p.Normal.Mul(-p.Distance)
	return narrowphase.AABB{Min: center.Sub(span), Max: center.Add(span)}
}

func tangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	seed := mgl64.Vec3{1, 0, 0}
	if math.Abs(normal.X()) > 0.9 {
		seed = mgl64.Vec3{0, 1, 0}
	}
	t1 := seed.Sub(normal.Mul(seed.Dot(normal))).Normalize()
	t2 := normal.Cross(t1).Normalize()
	return t1, t2
}

// ConvexHull is an explicit point cloud whose support is the brute-force
// farthest vertex along the query direction. Suitable for small hulls
// (dozens of vertices); a caller needing a large hull would pre-reduce it.
type ConvexHull struct {
	Vertices []mgl64.Vec3
}

func (h ConvexHull) Kind() narrowphase.Kind { return narrowphase.KindConvexHull }

func (h ConvexHull) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := h.Vertices[0]
	bestDot := best.Dot(direction)
	for _, v := range h.Vertices[1:] {
		if d := v.Dot(direction); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

func (h ConvexHull) ConvexRadius() float64 { return 0 }

// SupportingFace returns every vertex within faceEpsilon of the farthest
// one along direction — an approximation of the true face in the absence
// of precomputed face/edge topology, adequate for a contact manifold.
func (h ConvexHull) SupportingFace(direction mgl64.Vec3) []mgl64.Vec3 {
	const faceEpsilon = 1e-6
	bestDot := h.Vertices[0].Dot(direction)
	for _, v := range h.Vertices[1:] {
		if d := v.Dot(direction); d > bestDot {
			bestDot = d
		}
	}
	var face []mgl64.Vec3
	for _, v := range h.Vertices {
		if bestDot-v.Dot(direction) <= faceEpsilon {
			face = append(face, v)
		}
	}
	return face
}

func (h ConvexHull) LocalBounds() narrowphase.AABB {
	min, max := h.Vertices[0], h.Vertices[0]
	for _, v := range h.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}
	return narrowphase.AABB{Min: min, Max: max}
}

// Triangle is the degenerate three-vertex convex hull, kept distinct from
// ConvexHull so mesh-collision callers can special-case it (e.g. one-sided
// culling by winding) without paying ConvexHull's linear-scan support on
// every call.
type Triangle struct {
	A, B, C mgl64.Vec3
}

func (t Triangle) Kind() narrowphase.Kind { return narrowphase.KindTriangle }

func (t Triangle) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := t.A
	bestDot := t.A.Dot(direction)
	for _, v := range [2]mgl64.Vec3{t.B, t.C} {
		if d := v.Dot(direction); d > bestDot {
			best, bestDot = v, d
		}
	}
	return best
}

func (t Triangle) ConvexRadius() float64 { return 0 }

// SupportingFace returns the triangle's three vertices: being flat, it has
// exactly one face regardless of which side direction approaches from.
func (t Triangle) SupportingFace(mgl64.Vec3) []mgl64.Vec3 {
	return []mgl64.Vec3{t.A, t.B, t.C}
}

func (t Triangle) LocalBounds() narrowphase.AABB {
	min, max := t.A, t.A
	for _, v := range [2]mgl64.Vec3{t.B, t.C} {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}
	return narrowphase.AABB{Min: min, Max: max}
}
