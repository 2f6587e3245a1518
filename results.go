package narrowphase

import "github.com/go-gl/mathgl/mgl64"

// CastRayHit is one ray-vs-shape intersection.
type CastRayHit struct {
	Fraction float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3

	SubShapeID SubShapeID
	BodyIDB    BodyID
	MaterialID MaterialID
}

// CollectorScore ranks ray hits by how early along the ray they occur.
func (h CastRayHit) CollectorScore() float64 { return h.Fraction }

// CastShapeHit is one shape-cast-vs-shape intersection.
type CastShapeHit struct {
	Fraction float64
	PointA   mgl64.Vec3
	PointB   mgl64.Vec3
	Normal   mgl64.Vec3

	SubShapeIDA SubShapeID
	SubShapeIDB SubShapeID
	MaterialIDA MaterialID
	MaterialIDB MaterialID
	BodyIDB     BodyID

	// FaceA and FaceB hold supporting faces in world space; CastShapeVsShape
	// leaves them nil, since CastShapeSettings has no face-collection option.
	FaceA []mgl64.Vec3
	FaceB []mgl64.Vec3
}

func (h CastShapeHit) CollectorScore() float64 { return h.Fraction }

// CollideShapeHit is one shape-vs-shape overlap result: either a separating
// distance or a penetration depth, matching penetration.DepthResult.
type CollideShapeHit struct {
	Overlapping  bool
	SeparationSq float64
	Depth        float64
	Normal       mgl64.Vec3
	PointA       mgl64.Vec3
	PointB       mgl64.Vec3

	SubShapeIDA SubShapeID
	SubShapeIDB SubShapeID
	MaterialIDA MaterialID
	MaterialIDB MaterialID
	BodyIDB     BodyID

	// FaceA and FaceB are each shape's supporting face along the contact
	// normal, in world space, populated only when the query was made with
	// CollideShapeSettings.CollectFaces.
	FaceA []mgl64.Vec3
	FaceB []mgl64.Vec3
}

// CollectorScore ranks overlap results by depth when overlapping (deeper
// penetration sorts first, so Closest keeps it by negating depth) and by
// separation distance otherwise.
func (h CollideShapeHit) CollectorScore() float64 {
	if h.Overlapping {
		return -h.Depth
	}
	return h.SeparationSq
}

// CollidePointHit reports whether a point lies inside a shape and, if so,
// how deep it is from the nearest surface.
type CollidePointHit struct {
	Inside bool
	Depth  float64

	SubShapeIDB SubShapeID
	BodyIDB     BodyID
	MaterialID  MaterialID
}

func (h CollidePointHit) CollectorScore() float64 {
	if h.Inside {
		return -h.Depth
	}
	return h.Depth
}
