package narrowphase

import "github.com/go-gl/mathgl/mgl64"

// CastRaySettings configures CastRayVsShape.
type CastRaySettings struct {
	// MaxFraction bounds the search along the ray, expressing a cast's
	// range as a fraction of the ray rather than an absolute distance.
	MaxFraction float64

	// TreatConvexAsSolid decides what happens when the ray's own origin is
	// already inside the shape: true reports a hit at fraction 0, false
	// reports a silent miss.
	TreatConvexAsSolid bool
}

// DefaultCastRaySettings returns the settings used when a caller doesn't
// need anything beyond the full unit ray, treating the shape as solid.
func DefaultCastRaySettings() CastRaySettings {
	return CastRaySettings{MaxFraction: 1.0, TreatConvexAsSolid: true}
}

// CastShapeSettings configures CastShapeVsShape.
type CastShapeSettings struct {
	MaxFraction float64
}

func DefaultCastShapeSettings() CastShapeSettings {
	return CastShapeSettings{MaxFraction: 1.0}
}

// CollideShapeSettings configures CollideShapeVsShape.
type CollideShapeSettings struct {
	// InitialDirection seeds GJK's first support direction. HasInitialDirection
	// false means "no preference": CollideShapeVsShape falls back to the
	// vector between the two poses' positions.
	InitialDirection    mgl64.Vec3
	HasInitialDirection bool

	// MaxSeparationDistance reports contacts up to this far apart, not just
	// true overlaps, by inflating shape A's radius before the GJK/EPA pass
	// and correcting the result back out afterward. Must be in [0, 1].
	MaxSeparationDistance float64
	// CollisionTolerance is not read by CollideShapeVsShape: GJK converges
	// against the fixed tolerances of package gjk.
	CollisionTolerance float64
	// PenetrationTolerance is not read by CollideShapeVsShape: EPA converges
	// against the fixed tolerances of package epa.
	PenetrationTolerance float64
	// ReturnDeepestPoint is not read by CollideShapeVsShape: EPA runs exactly
	// when GJK cannot resolve the core distance, whatever this field holds.
	ReturnDeepestPoint bool
	// CollideWithBackfaces is not read by CollideShapeVsShape: no query culls
	// the back faces of Triangle or Plane.
	CollideWithBackfaces bool
	// CollectFaces populates CollideShapeHit.FaceA/FaceB with each shape's
	// supporting face along the contact normal.
	CollectFaces bool
}

// DefaultCollideShapeSettings returns settings with no initial direction,
// zero MaxSeparationDistance, CollectFaces off, and the unread tolerance and
// ReturnDeepestPoint fields filled in.
func DefaultCollideShapeSettings() CollideShapeSettings {
	return CollideShapeSettings{
		CollisionTolerance:   1e-4,
		PenetrationTolerance: 1e-4,
		ReturnDeepestPoint:   true,
	}
}

// CollidePointSettings configures CollidePointVsShape.
type CollidePointSettings struct{}

func DefaultCollidePointSettings() CollidePointSettings {
	return CollidePointSettings{}
}
