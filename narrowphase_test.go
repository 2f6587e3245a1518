package narrowphase

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/shapes"
)

func TestCollideShapeVsShape(t *testing.T) {
	t.Run("separated spheres beyond AABB overlap report no hit", func(t *testing.T) {
		a := shapes.Sphere{Radius: 1}
		b := shapes.Sphere{Radius: 1}

		hit, err := CollideShapeVsShape(
			a, Pose{Position: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.QuatIdent()},
			b, Pose{Position: mgl64.Vec3{5, 0, 0}, Rotation: mgl64.QuatIdent()},
			DefaultCollideShapeSettings(),
		)
		if err != nil {
			t.Fatalf("CollideShapeVsShape error: %v", err)
		}
		if hit.Overlapping {
			t.Fatalf("expected no overlap")
		}
	})

	t.Run("separated spheres within MaxSeparationDistance report separation", func(t *testing.T) {
		a := shapes.Sphere{Radius: 1}
		b := shapes.Sphere{Radius: 1}
		settings := DefaultCollideShapeSettings()
		settings.MaxSeparationDistance = 1.0

		hit, err := CollideShapeVsShape(
			a, Pose{Position: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.QuatIdent()},
			b, Pose{Position: mgl64.Vec3{2.5, 0, 0}, Rotation: mgl64.QuatIdent()},
			settings,
		)
		if err != nil {
			t.Fatalf("CollideShapeVsShape error: %v", err)
		}
		if !hit.Overlapping {
			t.Fatalf("expected MaxSeparationDistance to report the near-miss as a contact")
		}
		if math.Abs(hit.Depth-(-0.5)) > 0.05 {
			t.Errorf("Depth = %v, want ~-0.5 (surfaces 0.5 apart)", hit.Depth)
		}
	})

	t.Run("overlapping box and sphere report depth", func(t *testing.T) {
		a := shapes.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}
		b := shapes.Sphere{Radius: 1}

		hit, err := CollideShapeVsShape(
			a, Identity(),
			b, Pose{Position: mgl64.Vec3{1.5, 0, 0}, Rotation: mgl64.QuatIdent()},
			DefaultCollideShapeSettings(),
		)
		if err != nil {
			t.Fatalf("CollideShapeVsShape error: %v", err)
		}
		if !hit.Overlapping {
			t.Fatalf("expected overlap")
		}
		if hit.Depth <= 0 || hit.Depth > 1 {
			t.Errorf("Depth = %v, want in (0, 1]", hit.Depth)
		}
	})

	t.Run("collectFaces populates the contact faces", func(t *testing.T) {
		a := shapes.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}
		b := shapes.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}
		settings := DefaultCollideShapeSettings()
		settings.CollectFaces = true

		hit, err := CollideShapeVsShape(
			a, Identity(),
			b, Pose{Position: mgl64.Vec3{1.5, 0, 0}, Rotation: mgl64.QuatIdent()},
			settings,
		)
		if err != nil {
			t.Fatalf("CollideShapeVsShape error: %v", err)
		}
		if !hit.Overlapping {
			t.Fatalf("expected overlap")
		}
		if len(hit.FaceA) != 4 || len(hit.FaceB) != 4 {
			t.Errorf("FaceA/FaceB = %d/%d vertices, want 4/4 (box faces)", len(hit.FaceA), len(hit.FaceB))
		}
	})

	t.Run("AABBs that don't overlap never run GJK/EPA", func(t *testing.T) {
		a := shapes.Sphere{Radius: 1}
		b := shapes.Sphere{Radius: 1}

		hit, err := CollideShapeVsShape(
			a, Identity(),
			b, Pose{Position: mgl64.Vec3{100, 0, 0}, Rotation: mgl64.QuatIdent()},
			DefaultCollideShapeSettings(),
		)
		if err != nil {
			t.Fatalf("CollideShapeVsShape error: %v", err)
		}
		if hit.Overlapping {
			t.Fatalf("expected no overlap")
		}
	})
}

func TestCastRayVsShape(t *testing.T) {
	s := shapes.Sphere{Radius: 1}
	pose := Pose{Position: mgl64.Vec3{5, 0, 0}, Rotation: mgl64.QuatIdent()}

	settings := DefaultCastRaySettings()
	settings.MaxFraction = 10
	hit, ok := CastRayVsShape(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, s, pose, settings)
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(hit.Fraction-4) > 1e-4 {
		t.Errorf("Fraction = %v, want 4", hit.Fraction)
	}
}

func TestCollidePointVsShape(t *testing.T) {
	s := shapes.Box{HalfExtents: mgl64.Vec3{2, 2, 2}}

	inside, err := CollidePointVsShape(mgl64.Vec3{0, 0, 0}, s, Identity(), DefaultCollidePointSettings())
	if err != nil {
		t.Fatalf("CollidePointVsShape error: %v", err)
	}
	if !inside.Inside {
		t.Errorf("expected point at origin to be inside the box")
	}

	outside, err := CollidePointVsShape(mgl64.Vec3{10, 0, 0}, s, Identity(), DefaultCollidePointSettings())
	if err != nil {
		t.Fatalf("CollidePointVsShape error: %v", err)
	}
	if outside.Inside {
		t.Errorf("expected point far outside the box to be outside")
	}
}
