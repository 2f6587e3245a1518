package narrowphase

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/shapes"
)

func TestCollideOverride(t *testing.T) {
	const kindMarker = KindPlane

	RegisterCollideOverride(KindSphere, kindMarker, func(a, b Shape, poseA, poseB Pose, initialDir mgl64.Vec3) (CollideShapeHit, error) {
		return CollideShapeHit{Overlapping: true, Depth: 42}, nil
	})
	defer delete(collideOverrides, [2]Kind{KindSphere, kindMarker})

	sphere := shapes.Sphere{Radius: 1}
	plane := shapes.Plane{Normal: mgl64.Vec3{0, 1, 0}}

	hit, err := CollideShapeVsShape(sphere, Identity(), plane, Identity(), DefaultCollideShapeSettings())
	if err != nil {
		t.Fatalf("CollideShapeVsShape error: %v", err)
	}
	if hit.Depth != 42 {
		t.Errorf("Depth = %v, want 42 (from override)", hit.Depth)
	}

	// Registered as (Sphere, Plane); querying (Plane, Sphere) must find it
	// swapped and invert the result back into (a, b) order.
	hitSwapped, err := CollideShapeVsShape(plane, Identity(), sphere, Identity(), DefaultCollideShapeSettings())
	if err != nil {
		t.Fatalf("CollideShapeVsShape error: %v", err)
	}
	if hitSwapped.Depth != 42 {
		t.Errorf("Depth = %v, want 42 (from swapped override)", hitSwapped.Depth)
	}
}
