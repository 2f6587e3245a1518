package narrowphase

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box, used to cheaply reject a shape pair
// before running the full convex-vs-convex pipeline.
type AABB struct {
	Min, Max mgl64.Vec3
}

// ContainsPoint reports whether point lies within the box (inclusive).
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps reports whether a and other intersect on all three axes.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Expand grows the box by a fixed margin on every axis. CollideShapeVsShape
// uses it to pad shape A's bounds by MaxSeparationDistance before the
// AABB rejection test.
func (a AABB) Expand(margin float64) AABB {
	m := mgl64.Vec3{margin, margin, margin}
	return AABB{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}
