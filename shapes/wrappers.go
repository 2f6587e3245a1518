package shapes

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase"
)

// Transformed applies an additional local-space offset and rotation to an
// inner shape before it reaches the pose a query supplies — e.g. a sensor
// shape fixed to a point on a larger body.
type Transformed struct {
	Inner       narrowphase.Shape
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

func (t Transformed) Kind() narrowphase.Kind { return t.Inner.Kind() }

func (t Transformed) Support(direction mgl64.Vec3) mgl64.Vec3 {
	localDir := t.Rotation.Conjugate().Rotate(direction)
	return t.Rotation.Rotate(t.Inner.Support(localDir)).Add(t.Translation)
}

func (t Transformed) ConvexRadius() float64 { return t.Inner.ConvexRadius() }

// SupportingFace passes the query through to Inner when it has a flat face
// of its own, so wrapping a face-capable shape doesn't silently lose that
// capability.
func (t Transformed) SupportingFace(direction mgl64.Vec3) []mgl64.Vec3 {
	fs, ok := t.Inner.(narrowphase.FaceSupplier)
	if !ok {
		return []mgl64.Vec3{t.Support(direction)}
	}
	localDir := t.Rotation.Conjugate().Rotate(direction)
	face := fs.SupportingFace(localDir)
	out := make([]mgl64.Vec3, len(face))
	for i, v := range face {
		out[i] = t.Rotation.Rotate(v).Add(t.Translation)
	}
	return out
}

func (t Transformed) LocalBounds() narrowphase.AABB {
	inner := t.Inner.LocalBounds()
	corners := [8]mgl64.Vec3{
		{inner.Min.X(), inner.Min.Y(), inner.Min.Z()},
		{inner.Max.X(), inner.Min.Y(), inner.Min.Z()},
		{inner.Min.X(), inner.Max.Y(), inner.Min.Z()},
		{inner.Max.X(), inner.Max.Y(), inner.Min.Z()},
		{inner.Min.X(), inner.Min.Y(), inner.Max.Z()},
		{inner.Max.X(), inner.Min.Y(), inner.Max.Z()},
		{inner.Min.X(), inner.Max.Y(), inner.Max.Z()},
		{inner.Max.X(), inner.Max.Y(), inner.Max.Z()},
	}
	world := t.Rotation.Rotate(corners[0]).Add(t.Translation)
	min, max := world, world
	for i := 1; i < 8; i++ {
		world = t.Rotation.Rotate(corners[i]).Add(t.Translation)
		for axis := 0; axis < 3; axis++ {
			if world[axis] < min[axis] {
				min[axis] = world[axis]
			}
			if world[axis] > max[axis] {
				max[axis] = world[axis]
			}
		}
	}
	return narrowphase.AABB{Min: min, Max: max}
}

// Scaled applies a non-uniform local-space scale to an inner shape's support.
// Scaling a support function isn't simply "scale the returned point" in
// general, but it is exact for shapes whose support is scale-equivariant
// along each axis (true of Box, ConvexHull, and Triangle; Scaled should not
// be applied to a shape with a nonzero ConvexRadius, since a sphere's radius
// doesn't scale anisotropically into another sphere).
type Scaled struct {
	Inner narrowphase.Shape
	Scale mgl64.Vec3
}

func (s Scaled) Kind() narrowphase.Kind { return s.Inner.Kind() }

func (s Scaled) Support(direction mgl64.Vec3) mgl64.Vec3 {
	localDir := mgl64.Vec3{direction.X() * s.Scale.X(), direction.Y() * s.Scale.Y(), direction.Z() * s.Scale.Z()}
	p := s.Inner.Support(localDir)
	return mgl64.Vec3{p.X() * s.Scale.X(), p.Y() * s.Scale.Y(), p.Z() * s.Scale.Z()}
}

func (s Scaled) ConvexRadius() float64 { return 0 }

// SupportingFace scales Inner's face vertices the same way Support scales a
// single point, when Inner has a face of its own to report.
func (s Scaled) SupportingFace(direction mgl64.Vec3) []mgl64.Vec3 {
	fs, ok := s.Inner.(narrowphase.FaceSupplier)
	if !ok {
		return []mgl64.Vec3{s.Support(direction)}
	}
	localDir := mgl64.Vec3{direction.X() * s.Scale.X(), direction.Y() * s.Scale.Y(), direction.Z() * s.Scale.Z()}
	face := fs.SupportingFace(localDir)
	out := make([]mgl64.Vec3, len(face))
	for i, v := range face {
		out[i] = mgl64.Vec3{v.X() * s.Scale.X(), v.Y() * s.Scale.Y(), v.Z() * s.Scale.Z()}
	}
	return out
}

func (s Scaled) LocalBounds() narrowphase.AABB {
	inner := s.Inner.LocalBounds()
	scale := func(v mgl64.Vec3) mgl64.Vec3 {
		return mgl64.Vec3{v.X() * s.Scale.X(), v.Y() * s.Scale.Y(), v.Z() * s.Scale.Z()}
	}
	a, b := scale(inner.Min), scale(inner.Max)
	min, max := a, a
	for axis := 0; axis < 3; axis++ {
		if b[axis] < min[axis] {
			min[axis] = b[axis]
		}
		if b[axis] > max[axis] {
			max[axis] = b[axis]
		}
	}
	return narrowphase.AABB{Min: min, Max: max}
}
