// Package support implements support-function wrappers: a uniform interface
// over convex shapes, plus the transform, convex-radius, and point-shape
// adapters layered on top of a shape's raw support.
//
// Rotate direction into local space, call the shape's Support, rotate the
// result back, add translation — composed into reusable wrappers so GJK and
// EPA never need to know which combination of transform/scale/radius/point a
// caller used.
package support

import "github.com/go-gl/mathgl/mgl64"

// Mode distinguishes whether a support represents the shrunken core shape
// (radius accounted for separately by the caller) or the fully inflated
// shape (radius folded into the support itself).
type Mode int

const (
	// IncludeConvexRadius means the support already reflects the shape's
	// convex radius; callers must not add it again.
	IncludeConvexRadius Mode = iota
	// ExcludeConvexRadius means the support is the bare core shape;
	// ConvexRadius() reports the radius for the caller to apply separately.
	ExcludeConvexRadius
)

// Function is the capability exposed by every support wrapper: a support
// query, plus the convex radius it advertises under its current mode.
type Function interface {
	GetSupport(direction mgl64.Vec3) mgl64.Vec3
	ConvexRadius() float64
}

// Raw adapts a bare shape support (no radius, no transform) into a Function.
// Shape adapters that already expose a Support(direction) method (e.g. the
// shapes package) wrap it with Raw before composing with Transformed/
// AddConvexRadius/Point.
type Raw struct {
	SupportFn func(direction mgl64.Vec3) mgl64.Vec3
	Radius    float64
}

func (r Raw) GetSupport(direction mgl64.Vec3) mgl64.Vec3 { return r.SupportFn(direction) }
func (r Raw) ConvexRadius() float64                       { return r.Radius }

// Transformed rotates the incoming direction by the inverse of Rotation,
// calls Inner.GetSupport, then rotates the result by Rotation and adds
// Translation — the world<->local support wrapper.
type Transformed struct {
	Inner       Function
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

func (t Transformed) GetSupport(direction mgl64.Vec3) mgl64.Vec3 {
	localDir := t.Rotation.Conjugate().Rotate(direction)
	localSupport := t.Inner.GetSupport(localDir)
	return t.Rotation.Rotate(localSupport).Add(t.Translation)
}

func (t Transformed) ConvexRadius() float64 { return t.Inner.ConvexRadius() }

// AddConvexRadius returns GetSupport(d) = inner.GetSupport(d) + r*normalize(d),
// advertising inner.ConvexRadius()+r as its own radius.
type AddConvexRadius struct {
	Inner  Function
	Radius float64
}

func (a AddConvexRadius) GetSupport(direction mgl64.Vec3) mgl64.Vec3 {
	base := a.Inner.GetSupport(direction)
	n := direction.Len()
	if n < 1e-12 {
		return base
	}
	return base.Add(direction.Mul(a.Radius / n))
}

func (a AddConvexRadius) ConvexRadius() float64 { return a.Inner.ConvexRadius() + a.Radius }

// Point always returns a fixed point regardless of direction; it is used by
// point-in-shape queries (collidePointVsShape treats the query point as a
// degenerate zero-radius shape).
type Point struct {
	At mgl64.Vec3
}

func (p Point) GetSupport(mgl64.Vec3) mgl64.Vec3 { return p.At }
func (p Point) ConvexRadius() float64             { return 0 }
