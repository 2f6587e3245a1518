package penetration

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/support"
)

func sphereSupport(center mgl64.Vec3, radius float64) support.Function {
	return support.Transformed{
		Inner:       support.AddConvexRadius{Inner: support.Point{At: mgl64.Vec3{0, 0, 0}}, Radius: radius},
		Translation: center,
	}
}

func TestDepth(t *testing.T) {
	t.Run("separated spheres report separation, not overlap", func(t *testing.T) {
		a := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		b := sphereSupport(mgl64.Vec3{5, 0, 0}, 1.0)

		res, err := Depth(a, b, 0, 0, mgl64.Vec3{1, 0, 0})
		if err != nil {
			t.Fatalf("Depth returned error: %v", err)
		}
		if res.Overlapping {
			t.Fatalf("expected no overlap")
		}
		// With rA+rB = 0 the GJK early-out bound is 0, so the first support
		// point short of the origin proves the cores too far apart.
		if res.SeparationSq != math.MaxFloat64 {
			t.Errorf("SeparationSq = %v, want math.MaxFloat64", res.SeparationSq)
		}
	})

	t.Run("overlapping spheres report depth and normal", func(t *testing.T) {
		a := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		b := sphereSupport(mgl64.Vec3{1.5, 0, 0}, 1.0)

		res, err := Depth(a, b, 0, 0, mgl64.Vec3{1, 0, 0})
		if err != nil {
			t.Fatalf("Depth returned error: %v", err)
		}
		if !res.Overlapping {
			t.Fatalf("expected overlap")
		}
		if math.Abs(res.Depth-0.5) > 0.05 {
			t.Errorf("Depth = %v, want ~0.5", res.Depth)
		}
	})
}

func TestDepthRadiusAdvance(t *testing.T) {
	t.Run("cores apart but within combined radius reports collision via GJK alone", func(t *testing.T) {
		coreA := support.Point{At: mgl64.Vec3{0, 0, 0}}
		coreB := support.Point{At: mgl64.Vec3{1.5, 0, 0}}

		res, err := Depth(coreA, coreB, 1.0, 1.0, mgl64.Vec3{1, 0, 0})
		if err != nil {
			t.Fatalf("Depth returned error: %v", err)
		}
		if !res.Overlapping {
			t.Fatalf("expected the inflated radii to bring the points into contact")
		}
		if math.Abs(res.Depth-0.5) > 1e-9 {
			t.Errorf("Depth = %v, want 0.5", res.Depth)
		}
	})

	t.Run("cores farther apart than combined radius report separation", func(t *testing.T) {
		coreA := support.Point{At: mgl64.Vec3{0, 0, 0}}
		coreB := support.Point{At: mgl64.Vec3{5, 0, 0}}

		res, err := Depth(coreA, coreB, 1.0, 1.0, mgl64.Vec3{1, 0, 0})
		if err != nil {
			t.Fatalf("Depth returned error: %v", err)
		}
		if res.Overlapping {
			t.Fatalf("expected no overlap")
		}
	})
}

func TestCastShape(t *testing.T) {
	t.Run("shape already overlapping at start reports zero fraction with depth", func(t *testing.T) {
		a := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		b := sphereSupport(mgl64.Vec3{0.5, 0, 0}, 1.0)

		res, err := CastShape(a, b, mgl64.Vec3{1, 0, 0}, 10.0)
		if err != nil {
			t.Fatalf("CastShape returned error: %v", err)
		}
		if !res.Hit || res.Fraction != 0 {
			t.Fatalf("expected hit at fraction 0, got %+v", res)
		}
	})

	t.Run("shape cast hits target ahead on path", func(t *testing.T) {
		a := sphereSupport(mgl64.Vec3{10, 0, 0}, 1.0)
		b := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)

		res, err := CastShape(a, b, mgl64.Vec3{1, 0, 0}, 20.0)
		if err != nil {
			t.Fatalf("CastShape returned error: %v", err)
		}
		if !res.Hit {
			t.Fatalf("expected hit")
		}
		if math.Abs(res.Fraction-8.0) > 1e-4 {
			t.Errorf("Fraction = %v, want 8", res.Fraction)
		}
	})
}
