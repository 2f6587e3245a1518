package narrowphase

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/support"
)

// Kind identifies a shape's concrete type so the root package can look up
// the right handler in its dispatch tables without a type switch at every
// call site.
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindCapsule
	KindPlane
	KindConvexHull
	KindTriangle
)

// Shape is the narrowphase adapter every collidable geometry implements:
// a raw (un-transformed, un-inflated) support function, a convex radius, and
// an AABB in local space, narrowed to exactly the capability GJK/EPA need.
type Shape interface {
	Kind() Kind
	// Support returns the farthest point of the shape's core geometry (not
	// including its convex radius) in the given local-space direction.
	Support(direction mgl64.Vec3) mgl64.Vec3
	// ConvexRadius is added around Support to form the shape's true
	// boundary (0 for shapes with none, e.g. Box/ConvexHull as modeled here).
	ConvexRadius() float64
	// LocalBounds is the shape's AABB before any Pose is applied.
	LocalBounds() AABB
}

// SupportFunction builds the full support.Function for shape s as seen from
// world space at the given pose: transform wrapper composed with a
// convex-radius wrapper around the shape's raw support.
func SupportFunction(s Shape, pose Pose) support.Function {
	return SupportFunctionMode(s, pose, support.IncludeConvexRadius)
}

// SupportFunctionMode builds the support.Function for shape s under the
// requested mode: IncludeConvexRadius folds the radius into the support
// itself (the common case), while ExcludeConvexRadius exposes the bare core
// geometry so a caller — penetration.Depth, in particular — can apply the
// radius itself once it knows how far apart the cores actually are.
func SupportFunctionMode(s Shape, pose Pose, mode support.Mode) support.Function {
	raw := support.Raw{SupportFn: s.Support, Radius: 0}
	var inner support.Function = raw
	if mode == support.IncludeConvexRadius {
		if r := s.ConvexRadius(); r > 0 {
			inner = support.AddConvexRadius{Inner: raw, Radius: r}
		}
	}
	return support.Transformed{Inner: inner, Translation: pose.Position, Rotation: pose.Rotation}
}

// FaceSupplier is implemented by shapes with a flat supporting face — Box,
// ConvexHull, Triangle, Plane — so collectFaces queries can report a contact
// polygon instead of a single point. Shapes with no flat face of their own
// (Sphere, Capsule) don't implement it; SupportingFace falls back to their
// ordinary support point.
type FaceSupplier interface {
	// SupportingFace returns, in local space, the polygon most nearly facing
	// direction: the vertices of whichever face is farthest along it.
	SupportingFace(direction mgl64.Vec3) []mgl64.Vec3
}

// SupportingFace returns shape s's supporting face in world space for the
// given world-space direction.
func SupportingFace(s Shape, pose Pose, direction mgl64.Vec3) []mgl64.Vec3 {
	localDir := pose.Rotation.Conjugate().Rotate(direction)

	var local []mgl64.Vec3
	if fs, ok := s.(FaceSupplier); ok {
		local = fs.SupportingFace(localDir)
	} else {
		local = []mgl64.Vec3{s.Support(localDir)}
	}

	world := make([]mgl64.Vec3, len(local))
	for i, v := range local {
		world[i] = pose.Rotation.Rotate(v).Add(pose.Position)
	}
	return world
}

// WorldBounds transforms s's local AABB by pose into a conservative
// world-space AABB (the exact rotated box's corners are re-bounded on each
// axis).
func WorldBounds(s Shape, pose Pose) AABB {
	local := s.LocalBounds()
	corners := [8]mgl64.Vec3{
		{local.Min.X(), local.Min.Y(), local.Min.Z()},
		{local.Max.X(), local.Min.Y(), local.Min.Z()},
		{local.Min.X(), local.Max.Y(), local.Min.Z()},
		{local.Max.X(), local.Max.Y(), local.Min.Z()},
		{local.Min.X(), local.Min.Y(), local.Max.Z()},
		{local.Max.X(), local.Min.Y(), local.Max.Z()},
		{local.Min.X(), local.Max.Y(), local.Max.Z()},
		{local.Max.X(), local.Max.Y(), local.Max.Z()},
	}

	world := pose.Rotation.Rotate(corners[0]).Add(pose.Position)
	min, max := world, world
	for i := 1; i < 8; i++ {
		world = pose.Rotation.Rotate(corners[i]).Add(pose.Position)
		for axis := 0; axis < 3; axis++ {
			if world[axis] < min[axis] {
				min[axis] = world[axis]
			}
			if world[axis] > max[axis] {
				max[axis] = world[axis]
			}
		}
	}

	radius := s.ConvexRadius()
	if radius > 0 {
		pad := mgl64.Vec3{radius, radius, radius}
		min, max = min.Sub(pad), max.Add(pad)
	}
	return AABB{Min: min, Max: max}
}
